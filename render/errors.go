// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "errors"

var (
	// ErrNilDevice is returned when a session is created without a device.
	ErrNilDevice = errors.New("render: nil device")

	// ErrNilSurface is returned when a session is created without a surface.
	ErrNilSurface = errors.New("render: nil surface")

	// ErrClosed is returned by RenderFrame after Close.
	ErrClosed = errors.New("render: session closed")
)
