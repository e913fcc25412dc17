// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"slices"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/plinth"
	"github.com/gogpu/plinth/gpucore"
)

// Batch is the kind-independent view of an InstanceBatch the session uses
// for bookkeeping.
type Batch interface {
	Kind() plinth.ShapeKind
	Len() int
	IsEmpty() bool
	Clear()
	Sync(dev gpucore.Device) error
	Render(pass gpucore.RenderPassEncoder)
	CreatePipeline(dev gpucore.Device, format gputypes.TextureFormat) error
	Destroy(dev gpucore.Device)

	// addShape appends s if it is of the batch's kind.
	addShape(s plinth.Shape) bool
}

// kindInfo is everything that differs between shape kinds.
type kindInfo[S any, R record] struct {
	kind     plinth.ShapeKind
	stride   int
	vertices uint32
	shader   string
	layout   func() []gputypes.VertexBufferLayout
	encode   func(S) R
}

// InstanceBatch collects the instance records of one shape kind and keeps
// a GPU buffer in step with them.
//
// The buffer is rewritten in full whenever the batch is dirty and non-empty.
// A batch that is cleared and synced while empty keeps its old buffer but
// draws nothing.
type InstanceBatch[S any, R record] struct {
	info    kindInfo[S, R]
	records []R
	dirty   bool

	buffer     gpucore.BufferID
	bufferSize uint64
	pipeline   gpucore.PipelineID

	scratch []byte
}

// Concrete batch types.
type (
	CircleBatch    = InstanceBatch[plinth.Circle, CircleInstance]
	RectangleBatch = InstanceBatch[plinth.Rectangle, RectangleInstance]
	TriangleBatch  = InstanceBatch[plinth.Triangle, TriangleInstance]
)

// NewCircleBatch creates an empty circle batch.
func NewCircleBatch() *CircleBatch {
	return &CircleBatch{info: kindInfo[plinth.Circle, CircleInstance]{
		kind:     plinth.KindCircle,
		stride:   CircleInstanceSize,
		vertices: circleVertices,
		shader:   circleShaderSource,
		layout:   circleVertexLayout,
		encode:   circleRecord,
	}}
}

// NewRectangleBatch creates an empty rectangle batch.
func NewRectangleBatch() *RectangleBatch {
	return &RectangleBatch{info: kindInfo[plinth.Rectangle, RectangleInstance]{
		kind:     plinth.KindRectangle,
		stride:   RectangleInstanceSize,
		vertices: rectangleVertices,
		shader:   rectangleShaderSource,
		layout:   rectangleVertexLayout,
		encode:   rectangleRecord,
	}}
}

// NewTriangleBatch creates an empty triangle batch.
func NewTriangleBatch() *TriangleBatch {
	return &TriangleBatch{info: kindInfo[plinth.Triangle, TriangleInstance]{
		kind:     plinth.KindTriangle,
		stride:   TriangleInstanceSize,
		vertices: triangleVertices,
		shader:   triangleShaderSource,
		layout:   triangleVertexLayout,
		encode:   triangleRecord,
	}}
}

// Kind returns the shape kind this batch holds.
func (b *InstanceBatch[S, R]) Kind() plinth.ShapeKind { return b.info.kind }

// Stride returns the record size in bytes.
func (b *InstanceBatch[S, R]) Stride() int { return b.info.stride }

// VerticesPerInstance returns the vertex count of each instance's draw.
func (b *InstanceBatch[S, R]) VerticesPerInstance() uint32 { return b.info.vertices }

// Add transcodes s into a record and appends it.
func (b *InstanceBatch[S, R]) Add(s S) {
	b.records = append(b.records, b.info.encode(s))
	b.dirty = true
}

// AddMany appends every shape in order.
func (b *InstanceBatch[S, R]) AddMany(shapes []S) {
	if len(shapes) == 0 {
		return
	}
	b.records = slices.Grow(b.records, len(shapes))
	for _, s := range shapes {
		b.records = append(b.records, b.info.encode(s))
	}
	b.dirty = true
}

func (b *InstanceBatch[S, R]) addShape(s plinth.Shape) bool {
	v, ok := any(s).(*S)
	if !ok || v == nil {
		return false
	}
	b.Add(*v)
	return true
}

// Clear drops all records. The GPU buffer is kept for reuse.
func (b *InstanceBatch[S, R]) Clear() {
	b.records = b.records[:0]
	b.dirty = true
}

// Len returns the number of records.
func (b *InstanceBatch[S, R]) Len() int { return len(b.records) }

// IsEmpty reports whether the batch holds no records.
func (b *InstanceBatch[S, R]) IsEmpty() bool { return len(b.records) == 0 }

// Dirty reports whether the records changed since the last upload.
func (b *InstanceBatch[S, R]) Dirty() bool { return b.dirty }

// Records returns a copy of the records in insertion order.
func (b *InstanceBatch[S, R]) Records() []R {
	out := make([]R, len(b.records))
	copy(out, b.records)
	return out
}

// Bytes returns the packed records exactly as Sync uploads them.
func (b *InstanceBatch[S, R]) Bytes() []byte {
	out := make([]byte, len(b.records)*b.info.stride)
	b.pack(out)
	return out
}

func (b *InstanceBatch[S, R]) pack(dst []byte) {
	for i, r := range b.records {
		r.put(dst[i*b.info.stride : (i+1)*b.info.stride])
	}
}

// Sync uploads the records if they changed. The buffer is reallocated when
// its size no longer matches the record count; otherwise it is rewritten in
// place. An empty dirty batch uploads nothing and leaves the old buffer.
func (b *InstanceBatch[S, R]) Sync(dev gpucore.Device) error {
	if !b.dirty || len(b.records) == 0 {
		return nil
	}

	size := uint64(len(b.records) * b.info.stride)
	if b.buffer == gpucore.InvalidID || b.bufferSize != size {
		if b.buffer != gpucore.InvalidID {
			dev.DestroyBuffer(b.buffer)
			b.buffer, b.bufferSize = gpucore.InvalidID, 0
		}
		id, err := dev.CreateBuffer(b.info.kind.String()+"_instances", size,
			gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst)
		if err != nil {
			return fmt.Errorf("render: %s instance buffer: %w", b.info.kind, err)
		}
		b.buffer, b.bufferSize = id, size
	}

	if cap(b.scratch) < int(size) {
		b.scratch = make([]byte, size)
	}
	data := b.scratch[:size]
	b.pack(data)
	if err := dev.WriteBuffer(b.buffer, 0, data); err != nil {
		return fmt.Errorf("render: upload %s instances: %w", b.info.kind, err)
	}
	b.dirty = false

	plinth.Logger().Debug("render: batch synced", "kind", b.info.kind.String(), "instances", len(b.records), "bytes", size)
	return nil
}

// CreatePipeline builds the kind's render pipeline for the given target
// format, replacing any previous one.
func (b *InstanceBatch[S, R]) CreatePipeline(dev gpucore.Device, format gputypes.TextureFormat) error {
	id, err := dev.CreateRenderPipeline(&gpucore.RenderPipelineDesc{
		Label:              b.info.kind.String() + "_pipeline",
		Shader:             b.info.shader,
		VertexEntry:        vertexEntry,
		FragmentEntry:      fragmentEntry,
		VertexBuffers:      b.info.layout(),
		Format:             format,
		Topology:           gputypes.PrimitiveTopologyTriangleList,
		PremultipliedBlend: true,
	})
	if err != nil {
		return fmt.Errorf("render: %s pipeline: %w", b.info.kind, err)
	}
	if b.pipeline != gpucore.InvalidID {
		dev.DestroyRenderPipeline(b.pipeline)
	}
	b.pipeline = id
	return nil
}

// Render records one instanced draw covering every record. It does nothing
// without a pipeline, without a buffer, or when the batch is empty.
func (b *InstanceBatch[S, R]) Render(pass gpucore.RenderPassEncoder) {
	if b.pipeline == gpucore.InvalidID || b.buffer == gpucore.InvalidID || len(b.records) == 0 {
		return
	}
	pass.SetPipeline(b.pipeline)
	pass.SetVertexBuffer(0, b.buffer)
	pass.Draw(b.info.vertices, uint32(len(b.records)))
}

// Destroy releases the batch's buffer and pipeline.
func (b *InstanceBatch[S, R]) Destroy(dev gpucore.Device) {
	if b.buffer != gpucore.InvalidID {
		dev.DestroyBuffer(b.buffer)
		b.buffer, b.bufferSize = gpucore.InvalidID, 0
	}
	if b.pipeline != gpucore.InvalidID {
		dev.DestroyRenderPipeline(b.pipeline)
		b.pipeline = gpucore.InvalidID
	}
	b.dirty = len(b.records) > 0
}
