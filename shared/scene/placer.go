package scene

import (
	"errors"
	"math"
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrEmptyPool indica que nenhum protótipo utilizável foi carregado.
var ErrEmptyPool = errors.New("nenhum protótipo de prédio disponível")

// Prototype é um modelo base que pode ser clonado na grade.
type Prototype interface {
	// Height retorna a altura da caixa delimitadora em escala 1.
	Height() float32
}

// Placer distribui protótipos pela grade.
type Placer struct {
	grid GridConfig
	rng  *rand.Rand
}

// NewPlacer cria um posicionador. Com rng nil usa uma fonte baseada no relógio.
func NewPlacer(grid GridConfig, rng *rand.Rand) *Placer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Placer{grid: grid, rng: rng}
}

// PoolSize retorna quantos protótipos entram no sorteio: os primeiros
// ceil(total*fração), ou seja, todo índice i com i < total*fração.
func (p *Placer) PoolSize(total int) int {
	if total <= 0 {
		return 0
	}
	n := int(math.Ceil(float64(total) * p.grid.PoolFraction))
	if n < 1 {
		n = 1
	}
	if n > total {
		n = total
	}
	return n
}

// Place produz rows*cols prédios em ordem de linha. Com o pacote vazio não
// posiciona nada e retorna ErrEmptyPool: sem prédios é aceitável, grade parcial não.
func (p *Placer) Place(protos []Prototype) ([]*Building, error) {
	if err := p.grid.Validate(); err != nil {
		return nil, err
	}
	pool := p.PoolSize(len(protos))
	if pool == 0 {
		return nil, ErrEmptyPool
	}

	buildings := make([]*Building, 0, p.grid.Count())
	for row := 0; row < p.grid.Rows; row++ {
		for col := 0; col < p.grid.Cols; col++ {
			idx := p.rng.Intn(pool)
			height := protos[idx].Height() * p.grid.Scale
			offset := p.grid.InitialOffset(height, row, col)
			x, z := p.grid.Planar(row, col)

			buildings = append(buildings, &Building{
				Prototype:     idx,
				Row:           row,
				Col:           col,
				Position:      mgl32.Vec3{x, offset, z},
				InitialOffset: offset,
				Scale:         p.grid.Scale,
				CastShadow:    true,
				ReceiveShadow: true,
			})
		}
	}
	return buildings, nil
}
