package ripple

// DefaultSpeedFactor converte segundos em raio da onda (unidades de cena).
const DefaultSpeedFactor = 18.0

// State é o estado da onda consumido pelo shader.
type State struct {
	Elapsed     float64
	SpeedFactor float64
	Uniform     *Uniform
}

// NewState cria o estado com uma célula de uniform própria. O valor inicial -1
// mantém a onda fora da cena até o primeiro frame.
func NewState(speedFactor float64) State {
	if speedFactor <= 0 {
		speedFactor = DefaultSpeedFactor
	}
	return State{
		SpeedFactor: speedFactor,
		Uniform:     NewUniform(-1),
	}
}

// Update grava o tempo decorrido e recalcula o valor derivado do uniform.
func (s *State) Update(elapsed float64) {
	s.Elapsed = elapsed
	s.Uniform.Set(float32(elapsed * s.SpeedFactor))
}

// Value retorna o valor atualmente publicado para o shader.
func (s *State) Value() float32 {
	return s.Uniform.Value()
}
