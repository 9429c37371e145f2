package ripple

// Uniform é uma célula escalar compartilhada entre a lógica por frame e o shader.
// Existe exatamente um escritor (o loop de animação); o renderizador apenas lê
// o valor dentro do mesmo frame, depois da escrita, por isso não há lock.
type Uniform struct {
	value float32
}

// NewUniform cria uma célula com o valor inicial informado.
func NewUniform(v float32) *Uniform {
	return &Uniform{value: v}
}

// Set grava um novo valor na célula.
func (u *Uniform) Set(v float32) {
	u.value = v
}

// Value retorna o valor atual.
func (u *Uniform) Value() float32 {
	return u.value
}
