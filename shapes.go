package plinth

// ShapeKind identifies the geometry family of a shape. The numeric order is
// the order in which kinds are drawn.
type ShapeKind uint8

// Shape kinds in draw order.
const (
	KindCircle ShapeKind = iota
	KindRectangle
	KindTriangle
)

// Kinds lists every kind in draw order.
func Kinds() []ShapeKind {
	return []ShapeKind{KindCircle, KindRectangle, KindTriangle}
}

// String returns the kind name.
func (k ShapeKind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindRectangle:
		return "rectangle"
	case KindTriangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// Shape is the common view the renderer needs of every shape kind.
//
// Implementations are pointers so that a style override can write the
// resolved color back into the caller's value.
type Shape interface {
	Kind() ShapeKind

	// Class returns the style class name, or "" when the shape has none.
	Class() string

	// CurrentColor returns the color that will be drawn.
	CurrentColor() Color

	// ApplyStyleOverride replaces the shape's color unconditionally.
	// The previous explicit color is not kept.
	ApplyStyleOverride(c Color)
}

// Circle is a filled circle.
type Circle struct {
	Center     Vec2
	Radius     float32
	Color      Color
	Transform  Transform
	StyleClass string
}

// NewCircle creates a white circle with an identity transform and no class.
func NewCircle(center Vec2, radius float32) Circle {
	return Circle{Center: center, Radius: radius, Color: White, Transform: Identity()}
}

// WithColor returns a copy with the explicit color replaced.
func (c Circle) WithColor(col Color) Circle {
	c.Color = col
	return c
}

// WithStyleClass returns a copy tagged with the given class.
func (c Circle) WithStyleClass(name string) Circle {
	c.StyleClass = name
	return c
}

// WithTransform returns a copy with the transform replaced.
func (c Circle) WithTransform(t Transform) Circle {
	c.Transform = t
	return c
}

// Kind returns KindCircle.
func (c *Circle) Kind() ShapeKind {
	return KindCircle
}

// Class returns the style class name, or "" if the shape has none.
func (c *Circle) Class() string {
	return c.StyleClass
}

// CurrentColor returns the color the shape would be drawn with now.
func (c *Circle) CurrentColor() Color {
	return c.Color
}

// ApplyStyleOverride replaces the color with a resolved class color.
func (c *Circle) ApplyStyleOverride(o Color) {
	c.Color = o
}

// Rectangle is an axis-aligned rectangle before transformation. Position is
// the bottom-left corner.
type Rectangle struct {
	Position   Vec2
	Size       Vec2
	Color      Color
	Transform  Transform
	StyleClass string
}

// NewRectangle creates a white rectangle with an identity transform.
func NewRectangle(position, size Vec2) Rectangle {
	return Rectangle{Position: position, Size: size, Color: White, Transform: Identity()}
}

// DefaultRectangle returns a unit square at the origin.
func DefaultRectangle() Rectangle {
	return NewRectangle(V2(0, 0), V2(1, 1))
}

// WithColor returns a copy with the explicit color replaced.
func (r Rectangle) WithColor(col Color) Rectangle {
	r.Color = col
	return r
}

// WithStyleClass returns a copy tagged with the given class.
func (r Rectangle) WithStyleClass(name string) Rectangle {
	r.StyleClass = name
	return r
}

// WithTransform returns a copy with the transform replaced.
func (r Rectangle) WithTransform(t Transform) Rectangle {
	r.Transform = t
	return r
}

// Kind returns KindRectangle.
func (r *Rectangle) Kind() ShapeKind {
	return KindRectangle
}

// Class returns the style class name, or "" if the shape has none.
func (r *Rectangle) Class() string {
	return r.StyleClass
}

// CurrentColor returns the color the shape would be drawn with now.
func (r *Rectangle) CurrentColor() Color {
	return r.Color
}

// ApplyStyleOverride replaces the color with a resolved class color.
func (r *Rectangle) ApplyStyleOverride(o Color) {
	r.Color = o
}

// Triangle is a filled triangle given by three vertices.
type Triangle struct {
	Vertices   [3]Vec2
	Color      Color
	Transform  Transform
	StyleClass string
}

// NewTriangle creates a white triangle with an identity transform.
func NewTriangle(a, b, c Vec2) Triangle {
	return Triangle{Vertices: [3]Vec2{a, b, c}, Color: White, Transform: Identity()}
}

// DefaultTriangle returns an upright triangle centered on the origin.
func DefaultTriangle() Triangle {
	return NewTriangle(V2(0, 0.5), V2(-0.5, -0.5), V2(0.5, -0.5))
}

// WithColor returns a copy with the explicit color replaced.
func (t Triangle) WithColor(col Color) Triangle {
	t.Color = col
	return t
}

// WithStyleClass returns a copy tagged with the given class.
func (t Triangle) WithStyleClass(name string) Triangle {
	t.StyleClass = name
	return t
}

// WithTransform returns a copy with the transform replaced.
func (t Triangle) WithTransform(tr Transform) Triangle {
	t.Transform = tr
	return t
}

// Kind returns KindTriangle.
func (t *Triangle) Kind() ShapeKind {
	return KindTriangle
}

// Class returns the style class name, or "" if the shape has none.
func (t *Triangle) Class() string {
	return t.StyleClass
}

// CurrentColor returns the color the shape would be drawn with now.
func (t *Triangle) CurrentColor() Color {
	return t.Color
}

// ApplyStyleOverride replaces the color with a resolved class color.
func (t *Triangle) ApplyStyleOverride(o Color) {
	t.Color = o
}

var (
	_ Shape = (*Circle)(nil)
	_ Shape = (*Rectangle)(nil)
	_ Shape = (*Triangle)(nil)
)
