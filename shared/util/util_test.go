package util

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float32
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0, 0, 0, 0},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(2, 4, 0.5); got != 3 {
		t.Errorf("Lerp = %v, want 3", got)
	}
	if got := Lerp(2, 4, 0); got != 2 {
		t.Errorf("Lerp com amount 0 = %v, want 2", got)
	}
}

func TestRingOverwritesOldest(t *testing.T) {
	r := NewRing[float32](3)
	if r.Cap() != 4 {
		t.Fatalf("capacidade = %d, want 4", r.Cap())
	}
	if Mean(r) != 0 {
		t.Errorf("média de ring vazio deve ser 0")
	}

	for i := 1; i <= 6; i++ {
		r.Push(float32(i))
	}
	if r.Len() != 4 {
		t.Fatalf("Len = %d, want 4", r.Len())
	}

	var got []float32
	r.Each(func(v float32) { got = append(got, v) })
	want := []float32{3, 4, 5, 6}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Each = %v, want %v", got, want)
		}
	}
	if m := Mean(r); m != 4.5 {
		t.Errorf("Mean = %v, want 4.5", m)
	}
}
