package camera

import (
	"math"

	"CityRipple/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Limites de elevação: nunca abaixo do horizonte (ângulo polar máximo = π/2).
const (
	minElevation = -89.0 * rl.Deg2rad
	maxElevation = 0.0
)

// CameraController orbita a câmera ao redor de um alvo fixo.
// Botão esquerdo gira, a roda do mouse aproxima/afasta.
type CameraController struct {
	// Estado interno do Raylib
	RLCamera rl.Camera3D

	// Configurações
	MinZoom      float32
	MaxZoom      float32
	RotateSpeed  float32
	ZoomSpeed    float32
	SmoothFactor float32 // 0.0 a 1.0 (quanto menor, mais suave/lento)

	// Estado alvo (para interpolação suave)
	Target       rl.Vector3
	TargetZoom   float32
	TargetAngleY float32 // azimute (radianos)
	TargetAngleX float32 // elevação (radianos, negativa olhando de cima)

	// Estado atual (interpolado)
	CurrentZoom   float32
	CurrentAngleY float32
	CurrentAngleX float32
}

// New cria um controlador a partir da posição inicial da câmera e do alvo.
func New(position, target rl.Vector3, fovy float32) *CameraController {
	offset := mgl32.Vec3{position.X - target.X, position.Y - target.Y, position.Z - target.Z}
	dist := offset.Len()
	if dist == 0 {
		dist = 1
	}

	angleX := -float32(math.Asin(float64(offset.Y() / dist)))
	angleY := float32(math.Atan2(float64(offset.X()), float64(offset.Z())))

	c := &CameraController{
		MinZoom:      10.0,
		MaxZoom:      400.0,
		RotateSpeed:  2.0,
		ZoomSpeed:    5.0,
		SmoothFactor: 0.2,

		Target:       target,
		TargetZoom:   dist,
		TargetAngleY: angleY,
		TargetAngleX: util.Clamp(angleX, minElevation, maxElevation),
	}

	// Inicializa os valores atuais com os alvos para não "saltar" no início
	c.CurrentZoom = c.TargetZoom
	c.CurrentAngleY = c.TargetAngleY
	c.CurrentAngleX = c.TargetAngleX

	c.RLCamera = rl.Camera3D{
		Target:     target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       fovy,
		Projection: rl.CameraPerspective,
	}
	c.updatePosition()
	return c
}

// Update interpola rumo ao estado alvo e recalcula a posição. Chamado uma vez por frame.
func (c *CameraController) Update(dt float32) {
	factor := util.Clamp(c.SmoothFactor*60.0*dt, 0, 1) // Normaliza para 60 FPS

	cur := mgl32.Vec3{c.CurrentAngleX, c.CurrentAngleY, c.CurrentZoom}
	tgt := mgl32.Vec3{c.TargetAngleX, c.TargetAngleY, c.TargetZoom}
	lerped := cur.Add(tgt.Sub(cur).Mul(factor))

	c.CurrentAngleX, c.CurrentAngleY, c.CurrentZoom = lerped.X(), lerped.Y(), lerped.Z()
	c.updatePosition()
}

// updatePosition converte coordenadas esféricas (ângulos + zoom) em cartesianas.
func (c *CameraController) updatePosition() {
	cosX := float32(math.Cos(float64(c.CurrentAngleX)))
	sinX := float32(math.Sin(float64(c.CurrentAngleX)))
	cosY := float32(math.Cos(float64(c.CurrentAngleY)))
	sinY := float32(math.Sin(float64(c.CurrentAngleY)))

	dist := c.CurrentZoom
	c.RLCamera.Position = rl.Vector3{
		X: c.Target.X + dist*cosX*sinY,
		Y: c.Target.Y + dist*-sinX, // Y é UP no Raylib
		Z: c.Target.Z + dist*cosX*cosY,
	}
	c.RLCamera.Target = c.Target
}

// Orbit aplica um deslocamento de arraste (em pixels) aos ângulos alvo.
func (c *CameraController) Orbit(dx, dy float32) {
	c.TargetAngleY -= dx * c.RotateSpeed * 0.005
	c.TargetAngleX = util.Clamp(c.TargetAngleX-dy*c.RotateSpeed*0.005, minElevation, maxElevation)
}

// Zoom aproxima (wheel > 0) ou afasta a câmera dentro dos limites.
func (c *CameraController) Zoom(wheel float32) {
	c.TargetZoom = util.Clamp(c.TargetZoom-wheel*c.ZoomSpeed, c.MinZoom, c.MaxZoom)
}

// HandleInput processa o mouse. Retorna true se houve interação.
func (c *CameraController) HandleInput() bool {
	moved := false

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		c.Zoom(wheel)
		moved = true
	}

	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		delta := rl.GetMouseDelta()
		if delta.X != 0 || delta.Y != 0 {
			c.Orbit(delta.X, delta.Y)
			moved = true
		}
	}

	return moved
}
