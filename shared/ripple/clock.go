package ripple

// Clock mede o tempo decorrido do ciclo atual a partir dos deltas de frame.
// Assim como um relógio com auto-start, a primeira leitura apenas liga o relógio
// e retorna 0. Um reset descarta o relógio inteiro e cria outro (NewClock) em vez
// de zerar o campo, para que nenhum resíduo do ciclo anterior contamine o próximo.
type Clock struct {
	elapsed float64
	started bool
}

// NewClock cria um relógio parado.
func NewClock() *Clock {
	return &Clock{}
}

// Tick avança o relógio em dt segundos e retorna o tempo decorrido.
func (c *Clock) Tick(dt float64) float64 {
	if !c.started {
		c.started = true
		return 0
	}
	if dt > 0 {
		c.elapsed += dt
	}
	return c.elapsed
}

// Elapsed retorna o tempo decorrido sem avançar o relógio.
func (c *Clock) Elapsed() float64 {
	return c.elapsed
}

// Started informa se o relógio já foi lido ao menos uma vez.
func (c *Clock) Started() bool {
	return c.started
}
