package util

// Ring é um buffer circular de capacidade fixa que sobrescreve o item mais
// antigo quando cheio. Usado para médias móveis de tempo de frame no HUD.
type Ring[T any] struct {
	entries []T
	mask    uint64
	next    uint64
}

// NewRing cria um buffer com a capacidade dada (será arredondada para potência de 2).
func NewRing[T any](capacity int) *Ring[T] {
	actualCap := nextPowerOfTwo(capacity)
	return &Ring[T]{
		entries: make([]T, actualCap),
		mask:    uint64(actualCap - 1),
	}
}

// Push adiciona um item, descartando o mais antigo se necessário.
func (r *Ring[T]) Push(item T) {
	r.entries[r.next&r.mask] = item
	r.next++
}

// Len retorna quantos itens válidos existem.
func (r *Ring[T]) Len() int {
	if r.next < uint64(len(r.entries)) {
		return int(r.next)
	}
	return len(r.entries)
}

// Cap retorna a capacidade real.
func (r *Ring[T]) Cap() int {
	return len(r.entries)
}

// Each percorre os itens do mais antigo ao mais novo.
func (r *Ring[T]) Each(fn func(T)) {
	n := uint64(r.Len())
	for i := r.next - n; i < r.next; i++ {
		fn(r.entries[i&r.mask])
	}
}

// Mean retorna a média de um Ring de float32 (0 se vazio).
func Mean(r *Ring[float32]) float32 {
	n := r.Len()
	if n == 0 {
		return 0
	}
	var sum float32
	r.Each(func(v float32) { sum += v })
	return sum / float32(n)
}

func nextPowerOfTwo(x int) int {
	res := 2
	for res < x {
		res <<= 1
	}
	return res
}
