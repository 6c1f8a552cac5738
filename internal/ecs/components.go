package ecs

import "math/rand"

// Vec2 is a 2D vector in world units.
// World space has its origin at the bottom-left corner of the screen, Y up.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

// Scale returns v * s
func (v Vec2) Scale(s float64) Vec2 { return Vec2{X: v.X * s, Y: v.Y * s} }

// LengthSq returns the squared length of v
func (v Vec2) LengthSq() float64 { return v.X*v.X + v.Y*v.Y }

// Velocity is a direction vector and a scalar speed multiplier.
// The direction is not normalized; the per-tick displacement is Direction * Multiplier.
type Velocity struct {
	Direction  Vec2
	Multiplier float64
}

// Step returns the displacement for one tick
func (v Velocity) Step() Vec2 {
	return v.Direction.Scale(v.Multiplier)
}

// Enemy holds enemy-specific data.
// The label entity is owned by the enemy and destroyed with it.
type Enemy struct {
	Label EntityID
}

// Word is the optional word attached to an enemy
type Word string

// Label is a screen-space text node pinned to its owner's position.
// Left and Bottom are UI offsets from the bottom-left corner of the screen.
type Label struct {
	Owner  EntityID
	Text   string
	Left   float64
	Bottom float64

	// Owner position the label was last synced to
	Anchor Vec2
	Synced bool
}

// Range is a half-open interval [Min, Max) for uniform sampling
type Range struct {
	Min, Max float64
}

// Sample draws a uniform value from the range
func (r Range) Sample(rng *rand.Rand) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// RandomVec2 draws each axis independently from r
func RandomVec2(rng *rand.Rand, r Range) Vec2 {
	return Vec2{X: r.Sample(rng), Y: r.Sample(rng)}
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
