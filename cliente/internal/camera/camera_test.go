package camera

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-2
}

func TestNewReproducesInitialPosition(t *testing.T) {
	pos := rl.Vector3{X: -80, Y: 50, Z: 80}
	c := New(pos, rl.Vector3{}, 20)

	got := c.RLCamera.Position
	if !near(got.X, pos.X) || !near(got.Y, pos.Y) || !near(got.Z, pos.Z) {
		t.Errorf("posição = %+v, want %+v", got, pos)
	}
	if c.RLCamera.Fovy != 20 {
		t.Errorf("fovy = %v, want 20", c.RLCamera.Fovy)
	}
	if c.RLCamera.Projection != rl.CameraPerspective {
		t.Errorf("projeção deve ser perspectiva")
	}
}

func TestOrbitNeverGoesBelowHorizon(t *testing.T) {
	c := New(rl.Vector3{X: -80, Y: 50, Z: 80}, rl.Vector3{}, 20)

	// Arrasta para baixo até o zênite
	for i := 0; i < 200; i++ {
		c.Orbit(0, 100)
	}
	if c.TargetAngleX < minElevation {
		t.Fatalf("elevação %v passou do zênite", c.TargetAngleX)
	}

	// E para cima até o horizonte
	for i := 0; i < 200; i++ {
		c.Orbit(0, -100)
	}
	if c.TargetAngleX > maxElevation {
		t.Fatalf("elevação %v passou do horizonte", c.TargetAngleX)
	}

	c.Update(1)
	if c.RLCamera.Position.Y < -1e-2 {
		t.Errorf("câmera abaixo do chão: y = %v", c.RLCamera.Position.Y)
	}
}

func TestZoomClamped(t *testing.T) {
	c := New(rl.Vector3{X: -80, Y: 50, Z: 80}, rl.Vector3{}, 20)

	c.Zoom(1000)
	if c.TargetZoom != c.MinZoom {
		t.Errorf("zoom = %v, want mínimo %v", c.TargetZoom, c.MinZoom)
	}
	c.Zoom(-1000)
	if c.TargetZoom != c.MaxZoom {
		t.Errorf("zoom = %v, want máximo %v", c.TargetZoom, c.MaxZoom)
	}
}

func TestUpdateConvergesToTarget(t *testing.T) {
	c := New(rl.Vector3{X: -80, Y: 50, Z: 80}, rl.Vector3{}, 20)
	c.Orbit(50, 0)

	// factor satura em 1 com dt grande: chega ao alvo em um passo
	c.Update(1)
	if !near(c.CurrentAngleY, c.TargetAngleY) {
		t.Errorf("azimute = %v, want %v", c.CurrentAngleY, c.TargetAngleY)
	}
}
