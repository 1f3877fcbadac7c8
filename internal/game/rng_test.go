package game

import "testing"

// scriptedRand replays fixed draws. Once a script runs out it keeps returning
// its fallback, so probability checks default to "no".
type scriptedRand struct {
	floats []float64
	ints   []int
	fi, ii int

	fallbackFloat float64
}

func newScriptedRand(floats []float64, ints []int) *scriptedRand {
	return &scriptedRand{floats: floats, ints: ints, fallbackFloat: 0.99}
}

func (s *scriptedRand) Float64() float64 {
	if s.fi >= len(s.floats) {
		return s.fallbackFloat
	}
	v := s.floats[s.fi]
	s.fi++
	return v
}

func (s *scriptedRand) Intn(n int) int {
	if s.ii >= len(s.ints) {
		return 0
	}
	v := s.ints[s.ii] % n
	s.ii++
	return v
}

func TestUniform_Range(t *testing.T) {
	rng := newScriptedRand([]float64{0, 0.5, 0.999}, nil)
	if got := uniform(rng, 10, 20); got != 10 {
		t.Fatalf("uniform at 0 = %v, want 10", got)
	}
	if got := uniform(rng, 10, 20); got != 15 {
		t.Fatalf("uniform at 0.5 = %v, want 15", got)
	}
	if got := uniform(rng, 10, 20); got >= 20 {
		t.Fatalf("uniform must stay below hi, got %v", got)
	}
}

func TestNewRand_Deterministic(t *testing.T) {
	a, b := NewRand(7), NewRand(7)
	for i := 0; i < 10; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("same seed diverged at draw %d", i)
		}
	}
}
