// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/plinth"
	"github.com/gogpu/plinth/style"
)

// Resolver looks up a style slot for a class. *style.Registry implements it.
type Resolver interface {
	Resolve(name string, slot style.Slot) (plinth.Color, bool)
}

// ApplyStyleOverrides writes the resolved color slot of each shape's class
// into the shape. Shapes without a class, or whose class has no color, keep
// their current color. It returns the number of shapes overridden.
func ApplyStyleOverrides(r Resolver, shapes []plinth.Shape) int {
	if r == nil {
		return 0
	}
	n := 0
	for _, s := range shapes {
		if s == nil {
			continue
		}
		class := s.Class()
		if class == "" {
			continue
		}
		if c, ok := r.Resolve(class, style.SlotColor); ok {
			s.ApplyStyleOverride(c)
			n++
		}
	}
	return n
}
