// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render draws plinth shapes with one instanced draw call per shape
// kind.
//
// # Instance batches
//
// Each shape kind has an [InstanceBatch] that transcodes shapes into packed,
// GPU-ready instance records. A batch tracks a dirty flag: [InstanceBatch.Sync]
// uploads all records in one write when something changed and does nothing
// otherwise. [InstanceBatch.Render] issues a single instanced draw, or
// nothing when the batch is empty.
//
// Record layouts are little-endian float32 and must match the vertex
// attributes declared by the kind's pipeline:
//
//	circle     center(0) radius(8) color(12) t_pos(28) t_scale(36) t_rot(44)     stride 52
//	rectangle  position(0) size(8) color(16) t_pos(32) t_scale(40) t_rot(48)     stride 56
//	triangle   v0(0) v1(8) v2(16) color(24) t_pos(40) t_scale(48) t_rot(56)      stride 64
//
// # Session
//
// A [Session] owns one batch per kind and renders a frame in a fixed order:
// clear batches, apply style overrides, add shapes, sync, begin the pass,
// draw circles then rectangles then triangles, submit and present. Nothing
// carries over between frames; callers pass the full shape list each time.
//
// The package only talks to the GPU through gpucore, so any backend that
// implements [gpucore.Device] and [gpucore.Surface] can host it.
package render
