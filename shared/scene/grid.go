package scene

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidGrid indica parâmetros de grade impossíveis de posicionar.
var ErrInvalidGrid = errors.New("grade inválida")

// GridConfig descreve a grade de prédios. É imutável depois de construída.
type GridConfig struct {
	Rows int
	Cols int
	Gap  float32

	// Origin desloca o grupo inteiro (observado: -7 em X para centralizar sob a câmera).
	Origin mgl32.Vec3

	// Scale é a escala uniforme aplicada a cada clone.
	Scale float32

	// PoolFraction limita o sorteio aos primeiros protótipos do pacote.
	PoolFraction float64
}

// DefaultGrid retorna a grade padrão da cena (17x25, gap 2).
func DefaultGrid() GridConfig {
	return GridConfig{
		Rows:         17,
		Cols:         25,
		Gap:          2,
		Origin:       mgl32.Vec3{-7, 0, 0},
		Scale:        0.01,
		PoolFraction: 0.5,
	}
}

// Validate verifica os limites da grade.
func (g GridConfig) Validate() error {
	switch {
	case g.Rows <= 0 || g.Cols <= 0:
		return fmt.Errorf("%w: %dx%d", ErrInvalidGrid, g.Rows, g.Cols)
	case g.Gap <= 0:
		return fmt.Errorf("%w: gap %v", ErrInvalidGrid, g.Gap)
	case g.Scale <= 0:
		return fmt.Errorf("%w: escala %v", ErrInvalidGrid, g.Scale)
	case g.PoolFraction <= 0 || g.PoolFraction > 1:
		return fmt.Errorf("%w: fração do pacote %v", ErrInvalidGrid, g.PoolFraction)
	}
	return nil
}

// Count retorna o número de prédios da grade.
func (g GridConfig) Count() int {
	return g.Rows * g.Cols
}

// center retorna o centro real (não inteiro) da grade.
func (g GridConfig) center() (float32, float32) {
	return float32(g.Rows) / 2, float32(g.Cols) / 2
}

// Falloff é o decaimento radial: distância quadrada ao centro, reduzida por 10.
// Prédios mais distantes começam mais fundos e demoram mais para subir.
func (g GridConfig) Falloff(row, col int) float32 {
	cr, cc := g.center()
	dr := float32(row) - cr
	dc := float32(col) - cc
	return (dr*dr + dc*dc) / 10
}

// Planar retorna a posição X/Z local do slot (row, col), sem o deslocamento do grupo.
func (g GridConfig) Planar(row, col int) (x, z float32) {
	cr, cc := g.center()
	return (float32(row) - cr) * g.Gap, (float32(col) - cc) * g.Gap
}

// InitialOffset é a altura de partida de um prédio com a altura informada.
func (g GridConfig) InitialOffset(height float32, row, col int) float32 {
	return -height - g.Falloff(row, col)
}
