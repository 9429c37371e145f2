package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Prototype é uma malha do OBJ já residente na GPU.
type Prototype struct {
	Index  int // posição em Renderer.Prototypes
	Mesh   rl.Mesh
	Bounds rl.BoundingBox
}

// Height retorna a altura da caixa delimitadora em escala 1.
func (p *Prototype) Height() float32 {
	return p.Bounds.Max.Y - p.Bounds.Min.Y
}

// Batch agrupa as transformações de todos os prédios de um mesmo protótipo.
type Batch struct {
	Proto      *Prototype
	Transforms []rl.Matrix
}

// BatchManager reaproveita os buffers de transformação entre frames (zero garbage).
type BatchManager struct {
	Batches map[*Prototype]*Batch
	order   []*Batch
}

func NewBatchManager() *BatchManager {
	return &BatchManager{
		Batches: make(map[*Prototype]*Batch),
	}
}

// Clear zera os buffers sem desalocar memória.
func (bm *BatchManager) Clear() {
	for _, b := range bm.order {
		b.Transforms = b.Transforms[:0]
	}
}

// Reset descarta todos os lotes (protótipos descarregados).
func (bm *BatchManager) Reset() {
	bm.Batches = make(map[*Prototype]*Batch)
	bm.order = nil
}

// Add registra uma instância do protótipo.
func (bm *BatchManager) Add(p *Prototype, transform rl.Matrix) {
	b, ok := bm.Batches[p]
	if !ok {
		b = &Batch{Proto: p, Transforms: make([]rl.Matrix, 0, 64)}
		bm.Batches[p] = b
		bm.order = append(bm.order, b)
	}
	b.Transforms = append(b.Transforms, transform)
}

// Count retorna o total de instâncias registradas no frame.
func (bm *BatchManager) Count() int {
	n := 0
	for _, b := range bm.order {
		n += len(b.Transforms)
	}
	return n
}

// DrawAll desenha todas as instâncias com o material compartilhado.
// A ordem de inserção é preservada para que o desenho seja determinístico.
func (bm *BatchManager) DrawAll(material rl.Material) {
	for _, b := range bm.order {
		for _, m := range b.Transforms {
			rl.DrawMesh(b.Proto.Mesh, material, m)
		}
	}
}
