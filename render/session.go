// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/plinth"
	"github.com/gogpu/plinth/gpucore"
)

// FrameStats describes the most recently rendered frame.
type FrameStats struct {
	// Instances counts the shapes drawn per kind.
	Instances [3]int
	// DrawCalls is the number of instanced draws issued.
	DrawCalls int
	// Overrides is the number of shapes whose color came from a class.
	Overrides int
	// Skipped counts shapes of a kind the session has no batch for.
	Skipped int
}

// Session renders frames of shapes onto a surface.
//
// A Session is not safe for concurrent use. The resolver it was given may
// be updated concurrently if it is itself safe for that, as
// *style.Registry is.
type Session struct {
	dev      gpucore.Device
	surface  gpucore.Surface
	resolver Resolver
	opts     sessionOptions

	// batches are indexed by kind and drawn in that order.
	batches []Batch

	stats  FrameStats
	closed bool
}

// NewSession creates one batch and pipeline per shape kind. The resolver
// may be nil, in which case shapes always keep their own colors.
func NewSession(dev gpucore.Device, surface gpucore.Surface, resolver Resolver, opts ...SessionOption) (*Session, error) {
	if dev == nil {
		return nil, ErrNilDevice
	}
	if surface == nil {
		return nil, ErrNilSurface
	}
	o := sessionOptions{background: plinth.Black}
	for _, opt := range opts {
		opt(&o)
	}
	if o.format == gputypes.TextureFormatUndefined {
		o.format = surface.Format()
	}

	s := &Session{
		dev:      dev,
		surface:  surface,
		resolver: resolver,
		opts:     o,
		batches:  []Batch{NewCircleBatch(), NewRectangleBatch(), NewTriangleBatch()},
	}
	for _, b := range s.batches {
		if err := b.CreatePipeline(dev, o.format); err != nil {
			s.Close()
			return nil, err
		}
	}
	plinth.Logger().Debug("render: session created", "format", o.format)
	return s, nil
}

// Batch returns the batch holding shapes of kind k, or nil.
func (s *Session) Batch(k plinth.ShapeKind) Batch {
	if int(k) >= len(s.batches) {
		return nil
	}
	return s.batches[k]
}

// Stats returns statistics of the last rendered frame.
func (s *Session) Stats() FrameStats {
	return s.stats
}

// Resize forwards new dimensions to the surface.
func (s *Session) Resize(width, height uint32) error {
	return s.surface.Resize(width, height)
}

// Render draws shapes on the configured background.
func (s *Session) Render(shapes []plinth.Shape) error {
	return s.RenderFrame(shapes, s.opts.background)
}

// RenderFrame draws one frame containing exactly shapes, cleared to
// background. Shapes with a resolvable style class have their color
// replaced before they are packed.
func (s *Session) RenderFrame(shapes []plinth.Shape, background plinth.Color) error {
	if s.closed {
		return ErrClosed
	}
	var stats FrameStats

	for _, b := range s.batches {
		b.Clear()
	}

	stats.Overrides = ApplyStyleOverrides(s.resolver, shapes)

	for _, sh := range shapes {
		if sh == nil {
			continue
		}
		b := s.Batch(sh.Kind())
		if b == nil || !b.addShape(sh) {
			stats.Skipped++
		}
	}

	for _, b := range s.batches {
		if err := b.Sync(s.dev); err != nil {
			return err
		}
	}

	target, err := s.surface.AcquireTarget()
	if err != nil {
		return fmt.Errorf("render: acquire target: %w", err)
	}
	bg := background.Floats()
	pass, err := s.dev.BeginRenderPass(&gpucore.RenderPassDesc{
		Label:  "plinth_frame",
		Target: target,
		ClearColor: gputypes.Color{
			R: float64(bg[0]),
			G: float64(bg[1]),
			B: float64(bg[2]),
			A: float64(bg[3]),
		},
	})
	if err != nil {
		return fmt.Errorf("render: begin pass: %w", err)
	}
	for _, b := range s.batches {
		if !b.IsEmpty() {
			stats.Instances[b.Kind()] = b.Len()
			stats.DrawCalls++
		}
		b.Render(pass)
	}
	pass.End()

	if err := s.dev.Submit(); err != nil {
		return fmt.Errorf("render: submit: %w", err)
	}
	if err := s.surface.Present(); err != nil {
		return fmt.Errorf("render: present: %w", err)
	}

	s.stats = stats
	return nil
}

// Close releases every batch's GPU resources. The device and surface stay
// owned by the caller.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	for _, b := range s.batches {
		b.Destroy(s.dev)
	}
}
