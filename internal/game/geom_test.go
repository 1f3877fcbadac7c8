package game

import (
	"math"
	"testing"
)

func TestCirclesOverlap_TouchingCounts(t *testing.T) {
	if !circlesOverlap(V(0, 0), 5, V(10, 0), 5) {
		t.Fatal("circles whose edges touch must overlap")
	}
	if circlesOverlap(V(0, 0), 5, V(10.01, 0), 5) {
		t.Fatal("separated circles must not overlap")
	}
	if !circlesOverlap(V(3, 3), 1, V(3, 3), 1) {
		t.Fatal("concentric circles must overlap")
	}
}

func TestNormalize_Degenerate(t *testing.T) {
	if _, ok := V(0, 0).Normalize(); ok {
		t.Fatal("zero vector must not normalize")
	}
	n, ok := V(3, 4).Normalize()
	if !ok {
		t.Fatal("3,4 should normalize")
	}
	if math.Abs(n.Len()-1) > 1e-12 || math.Abs(n.X-0.6) > 1e-12 {
		t.Fatalf("unexpected unit vector %+v", n)
	}
}

func TestBounds_ClampInset(t *testing.T) {
	b := Bounds{W: 100, H: 50}
	got := b.ClampInset(V(-10, 80), 5)
	if got.X != 5 || got.Y != 45 {
		t.Fatalf("clamp = %+v, want (5,45)", got)
	}
	inside := V(40, 20)
	if !b.ClampInset(inside, 5).Equal(inside) {
		t.Fatal("inside point must not move")
	}
}

func TestBounds_ContainsMargin(t *testing.T) {
	b := Bounds{W: 100, H: 50}
	cases := []struct {
		p    Vec2
		want bool
	}{
		{V(-9, 10), true},
		{V(-11, 10), false},
		{V(109, 59), true},
		{V(50, 61), false},
	}
	for _, c := range cases {
		if got := b.ContainsMargin(c.p, 10); got != c.want {
			t.Errorf("ContainsMargin(%+v) = %t, want %t", c.p, got, c.want)
		}
	}
}
