package style

import "github.com/gogpu/plinth"

// Slot names one of the color properties a class can override.
type Slot uint8

const (
	SlotColor Slot = iota
	SlotBackgroundColor
	SlotBorderColor
)

func (s Slot) String() string {
	switch s {
	case SlotColor:
		return "color"
	case SlotBackgroundColor:
		return "background_color"
	case SlotBorderColor:
		return "border_color"
	default:
		return "unknown"
	}
}

// Class is a named set of optional color overrides. A nil slot is absent.
type Class struct {
	Name            string
	Color           *plinth.Color
	BackgroundColor *plinth.Color
	BorderColor     *plinth.Color
}

// NewClass creates a class with every slot absent.
func NewClass(name string) Class {
	return Class{Name: name}
}

// WithColor returns a copy with the color slot set.
func (c Class) WithColor(col plinth.Color) Class {
	c.Color = plinth.Ptr(col)
	return c
}

// WithBackgroundColor returns a copy with the background slot set.
func (c Class) WithBackgroundColor(col plinth.Color) Class {
	c.BackgroundColor = plinth.Ptr(col)
	return c
}

// WithBorderColor returns a copy with the border slot set.
func (c Class) WithBorderColor(col plinth.Color) Class {
	c.BorderColor = plinth.Ptr(col)
	return c
}

// Get returns the color stored in slot. There is no fallback between slots.
func (c Class) Get(slot Slot) (plinth.Color, bool) {
	var p *plinth.Color
	switch slot {
	case SlotColor:
		p = c.Color
	case SlotBackgroundColor:
		p = c.BackgroundColor
	case SlotBorderColor:
		p = c.BorderColor
	}
	if p == nil {
		return plinth.Color{}, false
	}
	return *p, true
}

// clone detaches the slot pointers so registry state never aliases caller
// memory.
func (c Class) clone() Class {
	if c.Color != nil {
		c.Color = plinth.Ptr(*c.Color)
	}
	if c.BackgroundColor != nil {
		c.BackgroundColor = plinth.Ptr(*c.BackgroundColor)
	}
	if c.BorderColor != nil {
		c.BorderColor = plinth.Ptr(*c.BorderColor)
	}
	return c
}
