// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/plinth"
)

// SessionOption configures a Session during creation.
//
// Example:
//
//	s, err := render.NewSession(dev, surf, reg,
//	    render.WithPipelineFormat(gputypes.TextureFormatRGBA8Unorm),
//	)
type SessionOption func(*sessionOptions)

type sessionOptions struct {
	format     gputypes.TextureFormat
	background plinth.Color
}

// WithPipelineFormat overrides the color format pipelines are built for.
// By default the surface's format is used.
func WithPipelineFormat(f gputypes.TextureFormat) SessionOption {
	return func(o *sessionOptions) {
		o.format = f
	}
}

// WithBackground sets the clear color used by Render.
func WithBackground(c plinth.Color) SessionOption {
	return func(o *sessionOptions) {
		o.background = c
	}
}
