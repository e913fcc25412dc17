// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/plinth/gpucore"
)

type bufferWrite struct {
	id     gpucore.BufferID
	offset uint64
	data   []byte
}

type draw struct {
	pipeline  gpucore.PipelineID
	buffer    gpucore.BufferID
	vertices  uint32
	instances uint32
}

// fakeDevice records every call made through gpucore.Device.
type fakeDevice struct {
	nextID uint64

	buffers          map[gpucore.BufferID]uint64
	bufferLabels     map[gpucore.BufferID]string
	pipelines        map[gpucore.PipelineID]*gpucore.RenderPipelineDesc
	bufferCreates    int
	bufferDestroys   int
	pipelineDestroys int
	writes           []bufferWrite
	passes           []*fakePass
	submits          int

	failBuffer   error
	failPipeline error
	failSubmit   error
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		buffers:      make(map[gpucore.BufferID]uint64),
		bufferLabels: make(map[gpucore.BufferID]string),
		pipelines:    make(map[gpucore.PipelineID]*gpucore.RenderPipelineDesc),
	}
}

func (d *fakeDevice) id() uint64 {
	d.nextID++
	return d.nextID
}

func (d *fakeDevice) CreateBuffer(label string, size uint64, _ gputypes.BufferUsage) (gpucore.BufferID, error) {
	if d.failBuffer != nil {
		return gpucore.InvalidID, d.failBuffer
	}
	id := gpucore.BufferID(d.id())
	d.buffers[id] = size
	d.bufferLabels[id] = label
	d.bufferCreates++
	return id, nil
}

func (d *fakeDevice) DestroyBuffer(id gpucore.BufferID) {
	if _, ok := d.buffers[id]; ok {
		delete(d.buffers, id)
		d.bufferDestroys++
	}
}

func (d *fakeDevice) WriteBuffer(id gpucore.BufferID, offset uint64, data []byte) error {
	size, ok := d.buffers[id]
	if !ok {
		return errors.New("fake: unknown buffer")
	}
	if offset+uint64(len(data)) > size {
		return errors.New("fake: write out of bounds")
	}
	d.writes = append(d.writes, bufferWrite{id: id, offset: offset, data: append([]byte(nil), data...)})
	return nil
}

func (d *fakeDevice) CreateRenderPipeline(desc *gpucore.RenderPipelineDesc) (gpucore.PipelineID, error) {
	if d.failPipeline != nil {
		return gpucore.InvalidID, d.failPipeline
	}
	id := gpucore.PipelineID(d.id())
	d.pipelines[id] = desc
	return id, nil
}

func (d *fakeDevice) DestroyRenderPipeline(id gpucore.PipelineID) {
	if _, ok := d.pipelines[id]; ok {
		delete(d.pipelines, id)
		d.pipelineDestroys++
	}
}

func (d *fakeDevice) BeginRenderPass(desc *gpucore.RenderPassDesc) (gpucore.RenderPassEncoder, error) {
	p := &fakePass{dev: d, desc: *desc}
	d.passes = append(d.passes, p)
	return p, nil
}

func (d *fakeDevice) Submit() error {
	if d.failSubmit != nil {
		return d.failSubmit
	}
	d.submits++
	return nil
}

func (d *fakeDevice) lastPass() *fakePass {
	if len(d.passes) == 0 {
		return nil
	}
	return d.passes[len(d.passes)-1]
}

type fakePass struct {
	dev      *fakeDevice
	desc     gpucore.RenderPassDesc
	pipeline gpucore.PipelineID
	buffer   gpucore.BufferID
	draws    []draw
	ended    bool
}

func (p *fakePass) SetPipeline(id gpucore.PipelineID) {
	p.pipeline = id
}

func (p *fakePass) SetVertexBuffer(_ uint32, id gpucore.BufferID) {
	p.buffer = id
}

func (p *fakePass) End() {
	p.ended = true
}

func (p *fakePass) Draw(vertexCount, instanceCount uint32) {
	p.draws = append(p.draws, draw{
		pipeline:  p.pipeline,
		buffer:    p.buffer,
		vertices:  vertexCount,
		instances: instanceCount,
	})
}

// drawLabels maps the pass's draws back to pipeline labels.
func (p *fakePass) drawLabels() []string {
	labels := make([]string, len(p.draws))
	for i, d := range p.draws {
		if desc, ok := p.dev.pipelines[d.pipeline]; ok {
			labels[i] = desc.Label
		}
	}
	return labels
}

type fakeSurface struct {
	format     gputypes.TextureFormat
	width      uint32
	height     uint32
	presented  int
	acquireErr error
}

func (s *fakeSurface) Format() gputypes.TextureFormat { return s.format }
func (s *fakeSurface) Size() (uint32, uint32)         { return s.width, s.height }

func (s *fakeSurface) Resize(w, h uint32) error {
	s.width, s.height = w, h
	return nil
}

func (s *fakeSurface) AcquireTarget() (gpucore.TargetID, error) {
	if s.acquireErr != nil {
		return gpucore.InvalidID, s.acquireErr
	}
	return 1, nil
}

func (s *fakeSurface) Present() error {
	s.presented++
	return nil
}

var (
	_ gpucore.Device  = (*fakeDevice)(nil)
	_ gpucore.Surface = (*fakeSurface)(nil)
)
