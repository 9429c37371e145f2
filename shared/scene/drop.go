package scene

// DefaultDropStep é a subida por frame dos prédios.
const DefaultDropStep = 0.2

// snapEpsilon absorve o erro acumulado de float32 perto do chão.
const snapEpsilon = 1e-4

// DropAnimator faz cada prédio subir da sua altura inicial até y = 0.
type DropAnimator struct {
	Step float32
}

// Advance sobe em um passo todos os prédios que ainda estão abaixo do chão.
// O passo é limitado para que nenhum prédio ultrapasse y = 0.
func (d DropAnimator) Advance(buildings []*Building) {
	for _, b := range buildings {
		y := b.Position.Y()
		if y >= 0 {
			continue
		}
		y += d.Step
		if y > -snapEpsilon {
			y = 0
		}
		b.Position[1] = y
	}
}

// Reset devolve todos os prédios às suas alturas iniciais.
func (d DropAnimator) Reset(buildings []*Building) {
	for _, b := range buildings {
		b.Position[1] = b.InitialOffset
	}
}
