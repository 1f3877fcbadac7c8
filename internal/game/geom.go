package game

import "math"

// degenerateLenSq is the squared length under which a direction is treated as zero.
const degenerateLenSq = 1e-6

// Vec2 is a 2D position or velocity in play-area pixels.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}.
func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }
func (v Vec2) LenSq() float64 { return v.X*v.X + v.Y*v.Y }
func (v Vec2) Len() float64 { return math.Sqrt(v.LenSq()) }
func (v Vec2) Dist(o Vec2) float64 { return v.Sub(o).Len() }
func (v Vec2) IsDegenerate() bool { return v.LenSq() <= degenerateLenSq }
func (v Vec2) Equal(o Vec2) bool { return v.X == o.X && v.Y == o.Y }
func (v Vec2) DistSq(o Vec2) float64 { return v.Sub(o).LenSq() }
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t}
}

// Normalize returns the unit vector in v's direction. The second result is
// false when v is too short to have a direction; callers treat that as "no action".
func (v Vec2) Normalize() (Vec2, bool) {
	lsq := v.LenSq()
	if lsq <= degenerateLenSq {
		return Vec2{}, false
	}
	l := math.Sqrt(lsq)
	return Vec2{v.X / l, v.Y / l}, true
}

// Bounds is the play-area rectangle, origin at the top-left corner.
type Bounds struct {
	W, H float64
}

// Center returns the middle of the play area.
func (b Bounds) Center() Vec2 { return Vec2{b.W / 2, b.H / 2} }

// ClampInset clamps p into the rectangle shrunk by inset on every side.
func (b Bounds) ClampInset(p Vec2, inset float64) Vec2 {
	return Vec2{clamp(p.X, inset, b.W-inset), clamp(p.Y, inset, b.H-inset)}
}

// ContainsMargin reports whether p lies inside the rectangle grown by margin.
func (b Bounds) ContainsMargin(p Vec2, margin float64) bool {
	return p.X >= -margin && p.X <= b.W+margin && p.Y >= -margin && p.Y <= b.H+margin
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// circlesOverlap is the single collision primitive: touching counts as overlap.
func circlesOverlap(a Vec2, ra float64, b Vec2, rb float64) bool {
	return a.Dist(b) <= ra+rb
}
