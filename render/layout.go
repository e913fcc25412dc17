// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/gputypes"

// Vertices drawn per instance. Circles and rectangles expand a quad (two
// triangles) in the vertex shader; triangles draw their own three corners.
const (
	circleVertices    = 6
	rectangleVertices = 6
	triangleVertices  = 3
)

func circleVertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: CircleInstanceSize,
			StepMode:    gputypes.VertexStepModeInstance,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},  // center
				{Format: gputypes.VertexFormatFloat32, Offset: 8, ShaderLocation: 1},    // radius
				{Format: gputypes.VertexFormatFloat32x4, Offset: 12, ShaderLocation: 2}, // color
				{Format: gputypes.VertexFormatFloat32x2, Offset: 28, ShaderLocation: 3}, // transform position
				{Format: gputypes.VertexFormatFloat32x2, Offset: 36, ShaderLocation: 4}, // transform scale
				{Format: gputypes.VertexFormatFloat32, Offset: 44, ShaderLocation: 5},   // transform rotation
			},
		},
	}
}

func rectangleVertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: RectangleInstanceSize,
			StepMode:    gputypes.VertexStepModeInstance,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},  // position
				{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},  // size
				{Format: gputypes.VertexFormatFloat32x4, Offset: 16, ShaderLocation: 2}, // color
				{Format: gputypes.VertexFormatFloat32x2, Offset: 32, ShaderLocation: 3}, // transform position
				{Format: gputypes.VertexFormatFloat32x2, Offset: 40, ShaderLocation: 4}, // transform scale
				{Format: gputypes.VertexFormatFloat32, Offset: 48, ShaderLocation: 5},   // transform rotation
			},
		},
	}
}

func triangleVertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: TriangleInstanceSize,
			StepMode:    gputypes.VertexStepModeInstance,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},  // v0
				{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},  // v1
				{Format: gputypes.VertexFormatFloat32x2, Offset: 16, ShaderLocation: 2}, // v2
				{Format: gputypes.VertexFormatFloat32x4, Offset: 24, ShaderLocation: 3}, // color
				{Format: gputypes.VertexFormatFloat32x2, Offset: 40, ShaderLocation: 4}, // transform position
				{Format: gputypes.VertexFormatFloat32x2, Offset: 48, ShaderLocation: 5}, // transform scale
				{Format: gputypes.VertexFormatFloat32, Offset: 56, ShaderLocation: 6},   // transform rotation
			},
		},
	}
}
