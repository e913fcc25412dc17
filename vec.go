package plinth

import "math"

// Vec2 is a 2D vector in normalized device coordinates.
type Vec2 struct {
	X, Y float32
}

// V2 is a convenience function to create a Vec2.
func V2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul multiplies both components by their counterparts in w.
func (v Vec2) Mul(w Vec2) Vec2 {
	return Vec2{X: v.X * w.X, Y: v.Y * w.Y}
}

// Rotate rotates v counter-clockwise by angle radians around the origin.
func (v Vec2) Rotate(angle float32) Vec2 {
	s, c := math.Sincos(float64(angle))
	x, y := float64(v.X), float64(v.Y)
	return Vec2{X: float32(x*c - y*s), Y: float32(x*s + y*c)}
}
