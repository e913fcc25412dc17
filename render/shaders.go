// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import _ "embed"

// Shader entry points shared by every kind.
const (
	vertexEntry   = "vs_main"
	fragmentEntry = "fs_main"
)

//go:embed shaders/circle.wgsl
var circleShaderSource string

//go:embed shaders/rectangle.wgsl
var rectangleShaderSource string

//go:embed shaders/triangle.wgsl
var triangleShaderSource string
