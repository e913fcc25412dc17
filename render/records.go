// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/plinth"
)

// Instance record sizes in bytes. Each ends with one float of padding.
const (
	CircleInstanceSize    = 52
	RectangleInstanceSize = 56
	TriangleInstanceSize  = 64
)

// record is implemented by every instance record type.
type record interface {
	CircleInstance | RectangleInstance | TriangleInstance

	// put writes the record into dst, which is exactly one stride long.
	put(dst []byte)
}

// CircleInstance is the per-instance data of one circle.
type CircleInstance struct {
	Center            [2]float32
	Radius            float32
	Color             [4]float32
	TransformPosition [2]float32
	TransformScale    [2]float32
	TransformRotation float32
}

// RectangleInstance is the per-instance data of one rectangle.
type RectangleInstance struct {
	Position          [2]float32
	Size              [2]float32
	Color             [4]float32
	TransformPosition [2]float32
	TransformScale    [2]float32
	TransformRotation float32
}

// TriangleInstance is the per-instance data of one triangle.
type TriangleInstance struct {
	Vertices          [3][2]float32
	Color             [4]float32
	TransformPosition [2]float32
	TransformScale    [2]float32
	TransformRotation float32
}

func (r CircleInstance) put(dst []byte) {
	w := floatWriter{dst: dst}
	w.vec(r.Center[:])
	w.f32(r.Radius)
	w.vec(r.Color[:])
	w.vec(r.TransformPosition[:])
	w.vec(r.TransformScale[:])
	w.f32(r.TransformRotation)
	w.f32(0)
}

func (r RectangleInstance) put(dst []byte) {
	w := floatWriter{dst: dst}
	w.vec(r.Position[:])
	w.vec(r.Size[:])
	w.vec(r.Color[:])
	w.vec(r.TransformPosition[:])
	w.vec(r.TransformScale[:])
	w.f32(r.TransformRotation)
	w.f32(0)
}

func (r TriangleInstance) put(dst []byte) {
	w := floatWriter{dst: dst}
	for _, v := range r.Vertices {
		w.vec(v[:])
	}
	w.vec(r.Color[:])
	w.vec(r.TransformPosition[:])
	w.vec(r.TransformScale[:])
	w.f32(r.TransformRotation)
	w.f32(0)
}

// floatWriter writes consecutive little-endian float32 values.
type floatWriter struct {
	dst []byte
	off int
}

func (w *floatWriter) f32(v float32) {
	binary.LittleEndian.PutUint32(w.dst[w.off:], math.Float32bits(v))
	w.off += 4
}

func (w *floatWriter) vec(vs []float32) {
	for _, v := range vs {
		w.f32(v)
	}
}

func vec2(v plinth.Vec2) [2]float32 {
	return [2]float32{v.X, v.Y}
}

func circleRecord(c plinth.Circle) CircleInstance {
	return CircleInstance{
		Center:            vec2(c.Center),
		Radius:            c.Radius,
		Color:             c.Color.Floats(),
		TransformPosition: vec2(c.Transform.Position),
		TransformScale:    vec2(c.Transform.Scale),
		TransformRotation: c.Transform.Rotation,
	}
}

func rectangleRecord(r plinth.Rectangle) RectangleInstance {
	return RectangleInstance{
		Position:          vec2(r.Position),
		Size:              vec2(r.Size),
		Color:             r.Color.Floats(),
		TransformPosition: vec2(r.Transform.Position),
		TransformScale:    vec2(r.Transform.Scale),
		TransformRotation: r.Transform.Rotation,
	}
}

func triangleRecord(t plinth.Triangle) TriangleInstance {
	return TriangleInstance{
		Vertices:          [3][2]float32{vec2(t.Vertices[0]), vec2(t.Vertices[1]), vec2(t.Vertices[2])},
		Color:             t.Color.Floats(),
		TransformPosition: vec2(t.Transform.Position),
		TransformScale:    vec2(t.Transform.Scale),
		TransformRotation: t.Transform.Rotation,
	}
}
