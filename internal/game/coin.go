package game

import "math"

const (
	coinRadius = 6.0
	coinPull   = 600.0 // px/s² toward the player inside the magnet radius

	// The drag was tuned as ×0.98 per frame at 60 FPS. It is applied as an
	// exponential decay over dt so coins slow the same at any tick rate.
	coinDragPerFrame = 0.98
	coinDragRefRate  = 60.0

	coinPickupMargin = 4.0 // added to the player radius for pickup tests
)

// Coin is a currency drop that drifts, slows, and homes in on the player.
type Coin struct {
	Pos    Vec2
	Vel    Vec2
	Value  int
	Radius float64
}

// NewCoin creates a coin with the standard radius.
func NewCoin(pos, vel Vec2, value int) *Coin {
	return &Coin{Pos: pos, Vel: vel, Value: value, Radius: coinRadius}
}

// Update applies drag, magnet pull and wall clamping.
func (c *Coin) Update(dt float64, playerPos Vec2, magnetRadius float64, bounds Bounds) {
	c.Vel = c.Vel.Scale(math.Pow(coinDragPerFrame, dt*coinDragRefRate))

	to := playerPos.Sub(c.Pos)
	if to.LenSq() < magnetRadius*magnetRadius {
		if dir, ok := to.Normalize(); ok {
			c.Vel = c.Vel.Add(dir.Scale(coinPull * dt))
		}
	}
	c.Pos = c.Pos.Add(c.Vel.Scale(dt))

	if c.Pos.X < c.Radius {
		c.Pos.X, c.Vel.X = c.Radius, 0
	}
	if c.Pos.X > bounds.W-c.Radius {
		c.Pos.X, c.Vel.X = bounds.W-c.Radius, 0
	}
	if c.Pos.Y < c.Radius {
		c.Pos.Y, c.Vel.Y = c.Radius, 0
	}
	if c.Pos.Y > bounds.H-c.Radius {
		c.Pos.Y, c.Vel.Y = bounds.H-c.Radius, 0
	}
}
