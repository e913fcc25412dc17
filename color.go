package plinth

import "image/color"

// Color is an 8-bit per channel, straight-alpha RGBA color.
type Color struct {
	R, G, B, A uint8
}

// Common colors.
var (
	White       = Color{R: 255, G: 255, B: 255, A: 255}
	Black       = Color{A: 255}
	Transparent = Color{}
	Red         = Color{R: 255, A: 255}
	Green       = Color{G: 255, A: 255}
	Blue        = Color{B: 255, A: 255}
)

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA creates a color with explicit alpha.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Ptr returns a pointer to a copy of c. Style classes use pointers to mark
// a slot as present.
func Ptr(c Color) *Color {
	return &c
}

// Floats returns the channels normalized to [0, 1] in R, G, B, A order.
// This is the layout written into GPU instance records.
func (c Color) Floats() [4]float32 {
	return [4]float32{
		float32(c.R) / 255,
		float32(c.G) / 255,
		float32(c.B) / 255,
		float32(c.A) / 255,
	}
}

// NRGBA converts c to the standard library representation.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromColor converts any color.Color to a straight-alpha Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}
