package plinth

// Transform places a shape: scale first, then rotation (radians,
// counter-clockwise), then translation.
type Transform struct {
	Position Vec2
	Scale    Vec2
	Rotation float32
}

// Identity returns the transform that leaves geometry unchanged.
func Identity() Transform {
	return Transform{Scale: V2(1, 1)}
}

// NewTransform creates a transform from its parts.
func NewTransform(position, scale Vec2, rotation float32) Transform {
	return Transform{Position: position, Scale: scale, Rotation: rotation}
}

// WithPosition returns a copy of t with the translation replaced.
func (t Transform) WithPosition(p Vec2) Transform {
	t.Position = p
	return t
}

// WithScale returns a copy of t with the scale replaced.
func (t Transform) WithScale(s Vec2) Transform {
	t.Scale = s
	return t
}

// WithRotation returns a copy of t with the rotation replaced.
func (t Transform) WithRotation(radians float32) Transform {
	t.Rotation = radians
	return t
}

// Apply maps a local-space point the same way the vertex shaders do.
func (t Transform) Apply(p Vec2) Vec2 {
	return p.Mul(t.Scale).Rotate(t.Rotation).Add(t.Position)
}
