// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/plinth"
)

func floatAt(b []byte, off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b[off:]))
}

func TestCircleRecordLayout(t *testing.T) {
	c := plinth.NewCircle(plinth.V2(0.25, -0.5), 0.125).
		WithColor(plinth.RGBA(255, 0, 51, 255)).
		WithTransform(plinth.NewTransform(plinth.V2(1, 2), plinth.V2(3, 4), 0.5))

	b := NewCircleBatch()
	b.Add(c)
	data := b.Bytes()
	if len(data) != CircleInstanceSize {
		t.Fatalf("len = %d, want %d", len(data), CircleInstanceSize)
	}

	checks := []struct {
		off  int
		want float32
	}{
		{0, 0.25}, {4, -0.5}, {8, 0.125},
		{12, 1}, {16, 0}, {20, 0.2}, {24, 1},
		{28, 1}, {32, 2}, {36, 3}, {40, 4},
		{44, 0.5}, {48, 0},
	}
	for _, c := range checks {
		if got := floatAt(data, c.off); got != c.want {
			t.Errorf("float at %d = %v, want %v", c.off, got, c.want)
		}
	}
}

func TestRectangleRecordLayout(t *testing.T) {
	r := plinth.NewRectangle(plinth.V2(-1, -1), plinth.V2(0.5, 0.25)).WithColor(plinth.Blue)
	b := NewRectangleBatch()
	b.Add(r)
	data := b.Bytes()
	if len(data) != RectangleInstanceSize {
		t.Fatalf("len = %d, want %d", len(data), RectangleInstanceSize)
	}
	checks := []struct {
		off  int
		want float32
	}{
		{0, -1}, {4, -1}, {8, 0.5}, {12, 0.25},
		{16, 0}, {20, 0}, {24, 1}, {28, 1},
		{32, 0}, {36, 0}, {40, 1}, {44, 1}, {48, 0}, {52, 0},
	}
	for _, c := range checks {
		if got := floatAt(data, c.off); got != c.want {
			t.Errorf("float at %d = %v, want %v", c.off, got, c.want)
		}
	}
}

func TestTriangleRecordLayout(t *testing.T) {
	tri := plinth.DefaultTriangle().WithColor(plinth.Green).
		WithTransform(plinth.Identity().WithRotation(1.5))
	b := NewTriangleBatch()
	b.Add(tri)
	data := b.Bytes()
	if len(data) != TriangleInstanceSize {
		t.Fatalf("len = %d, want %d", len(data), TriangleInstanceSize)
	}
	checks := []struct {
		off  int
		want float32
	}{
		{0, 0}, {4, 0.5}, {8, -0.5}, {12, -0.5}, {16, 0.5}, {20, -0.5},
		{24, 0}, {28, 1}, {32, 0}, {36, 1},
		{40, 0}, {44, 0}, {48, 1}, {52, 1}, {56, 1.5}, {60, 0},
	}
	for _, c := range checks {
		if got := floatAt(data, c.off); got != c.want {
			t.Errorf("float at %d = %v, want %v", c.off, got, c.want)
		}
	}
}

func TestVertexLayoutsMatchRecords(t *testing.T) {
	tests := []struct {
		name    string
		layouts []gputypes.VertexBufferLayout
		stride  uint64
		offsets []uint64
	}{
		{"circle", circleVertexLayout(), CircleInstanceSize, []uint64{0, 8, 12, 28, 36, 44}},
		{"rectangle", rectangleVertexLayout(), RectangleInstanceSize, []uint64{0, 8, 16, 32, 40, 48}},
		{"triangle", triangleVertexLayout(), TriangleInstanceSize, []uint64{0, 8, 16, 24, 40, 48, 56}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.layouts) != 1 {
				t.Fatalf("got %d buffer layouts, want 1", len(tt.layouts))
			}
			l := tt.layouts[0]
			if uint64(l.ArrayStride) != tt.stride {
				t.Errorf("ArrayStride = %d, want %d", l.ArrayStride, tt.stride)
			}
			if l.StepMode != gputypes.VertexStepModeInstance {
				t.Errorf("StepMode = %v, want instance", l.StepMode)
			}
			if len(l.Attributes) != len(tt.offsets) {
				t.Fatalf("got %d attributes, want %d", len(l.Attributes), len(tt.offsets))
			}
			for i, a := range l.Attributes {
				if uint64(a.Offset) != tt.offsets[i] {
					t.Errorf("attribute %d offset = %d, want %d", i, a.Offset, tt.offsets[i])
				}
				if int(a.ShaderLocation) != i {
					t.Errorf("attribute %d location = %d", i, a.ShaderLocation)
				}
			}
		})
	}
}
