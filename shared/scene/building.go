package scene

import "github.com/go-gl/mathgl/mgl32"

// Building é uma instância posicionada de um protótipo.
type Building struct {
	Prototype int
	Row, Col  int

	// Position é local ao grupo de prédios; Y é animado a cada frame.
	Position mgl32.Vec3

	// InitialOffset é a altura de descanso abaixo do chão (sempre <= 0).
	InitialOffset float32

	Scale         float32
	CastShadow    bool
	ReceiveShadow bool
}

// Resting informa se o prédio já chegou ao nível do chão.
func (b *Building) Resting() bool {
	return b.Position.Y() >= 0
}

// Transform retorna a matriz T*S do prédio já com o deslocamento do grupo.
func (b *Building) Transform(origin mgl32.Vec3) mgl32.Mat4 {
	p := b.Position.Add(origin)
	return mgl32.Translate3D(p.X(), p.Y(), p.Z()).Mul4(mgl32.Scale3D(b.Scale, b.Scale, b.Scale))
}
