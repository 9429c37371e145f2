package scene

import (
	"errors"
	"math"
	"testing"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestGridValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*GridConfig)
		ok     bool
	}{
		{"padrão", func(g *GridConfig) {}, true},
		{"sem linhas", func(g *GridConfig) { g.Rows = 0 }, false},
		{"colunas negativas", func(g *GridConfig) { g.Cols = -3 }, false},
		{"gap zero", func(g *GridConfig) { g.Gap = 0 }, false},
		{"escala zero", func(g *GridConfig) { g.Scale = 0 }, false},
		{"fração zero", func(g *GridConfig) { g.PoolFraction = 0 }, false},
		{"fração acima de 1", func(g *GridConfig) { g.PoolFraction = 1.5 }, false},
		{"fração inteira", func(g *GridConfig) { g.PoolFraction = 1 }, true},
	}

	for _, tt := range tests {
		g := DefaultGrid()
		tt.modify(&g)
		err := g.Validate()
		if tt.ok && err != nil {
			t.Errorf("%s: erro inesperado %v", tt.name, err)
		}
		if !tt.ok && !errors.Is(err, ErrInvalidGrid) {
			t.Errorf("%s: err = %v, want ErrInvalidGrid", tt.name, err)
		}
	}
}

func TestGridPlanarAndFalloff(t *testing.T) {
	g := DefaultGrid()

	x, z := g.Planar(8, 12)
	if x != -1 || z != -1 {
		t.Errorf("Planar(8, 12) = (%v, %v), want (-1, -1)", x, z)
	}
	x, z = g.Planar(0, 0)
	if x != -17 || z != -25 {
		t.Errorf("Planar(0, 0) = (%v, %v), want (-17, -25)", x, z)
	}

	if got := g.Falloff(8, 12); !approx(got, 0.05) {
		t.Errorf("Falloff(8, 12) = %v, want 0.05", got)
	}
	if got := g.InitialOffset(1.5, 8, 12); !approx(got, -1.55) {
		t.Errorf("InitialOffset(1.5, 8, 12) = %v, want -1.55", got)
	}
}

func TestFalloffGrowsWithDistance(t *testing.T) {
	g := DefaultGrid()
	// Ao longo de uma linha que sai do centro, o decaimento nunca diminui.
	prev := g.Falloff(8, 13)
	for col := 14; col < g.Cols; col++ {
		cur := g.Falloff(8, col)
		if cur < prev {
			t.Fatalf("Falloff(8, %d) = %v < %v", col, cur, prev)
		}
		prev = cur
	}
}
