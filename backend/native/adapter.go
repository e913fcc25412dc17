//go:build !nogpu

// Package native implements the gpucore capability surface on top of
// gogpu/wgpu's hardware abstraction layer.
package native

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/plinth"
	"github.com/gogpu/plinth/gpucore"
)

type halPipeline struct {
	shader   hal.ShaderModule
	layout   hal.PipelineLayout
	pipeline hal.RenderPipeline
}

// HALDevice implements gpucore.Device using gogpu/wgpu/hal directly.
//
// Thread Safety: resource maps are guarded by a mutex, but frame recording
// (BeginRenderPass through Submit) must happen on one goroutine.
type HALDevice struct {
	mu     sync.RWMutex
	device hal.Device
	queue  hal.Queue
	opts   options

	// ID generation
	nextID atomic.Uint64

	// Resource tracking maps gpucore IDs to hal resources
	buffers   map[gpucore.BufferID]hal.Buffer
	pipelines map[gpucore.PipelineID]*halPipeline
	targets   map[gpucore.TargetID]hal.TextureView

	// Command encoder for current frame
	encoder  hal.CommandEncoder
	passOpen bool
}

// NewHALDevice wraps an opened hal device and its queue. The caller keeps
// ownership of both; Close releases only resources created through the
// returned HALDevice.
func NewHALDevice(device hal.Device, queue hal.Queue, opts ...Option) (*HALDevice, error) {
	if device == nil || queue == nil {
		return nil, ErrNilDevice
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	d := &HALDevice{
		device:    device,
		queue:     queue,
		opts:      o,
		buffers:   make(map[gpucore.BufferID]hal.Buffer),
		pipelines: make(map[gpucore.PipelineID]*halPipeline),
		targets:   make(map[gpucore.TargetID]hal.TextureView),
	}

	// Start ID generation at 1 (0 is invalid)
	d.nextID.Store(1)
	return d, nil
}

func (d *HALDevice) newID() uint64 {
	return d.nextID.Add(1) - 1
}

func (d *HALDevice) label(name string) string {
	if d.opts.labelPrefix == "" {
		return name
	}
	return d.opts.labelPrefix + "_" + name
}

// HAL returns the wrapped device and queue.
func (d *HALDevice) HAL() (hal.Device, hal.Queue) {
	return d.device, d.queue
}

// === Buffers ===

// CreateBuffer allocates a hal buffer.
func (d *HALDevice) CreateBuffer(label string, size uint64, usage gputypes.BufferUsage) (gpucore.BufferID, error) {
	if size == 0 {
		return gpucore.InvalidID, fmt.Errorf("create buffer %q: size must be positive", label)
	}
	buf, err := d.device.CreateBuffer(&hal.BufferDescriptor{
		Label: d.label(label),
		Size:  size,
		Usage: usage,
	})
	if err != nil {
		return gpucore.InvalidID, fmt.Errorf("create buffer %q: %w", label, err)
	}

	id := gpucore.BufferID(d.newID())
	d.mu.Lock()
	d.buffers[id] = buf
	d.mu.Unlock()

	plinth.Logger().Debug("native: buffer created", "label", label, "size", size, "id", uint64(id))
	return id, nil
}

// DestroyBuffer releases a buffer.
func (d *HALDevice) DestroyBuffer(id gpucore.BufferID) {
	d.mu.Lock()
	buf, ok := d.buffers[id]
	if ok {
		delete(d.buffers, id)
	}
	d.mu.Unlock()

	if ok {
		d.device.DestroyBuffer(buf)
	}
}

// WriteBuffer queues a write of data into the buffer.
func (d *HALDevice) WriteBuffer(id gpucore.BufferID, offset uint64, data []byte) error {
	d.mu.RLock()
	buf, ok := d.buffers[id]
	d.mu.RUnlock()

	if !ok {
		return fmt.Errorf("write buffer %d: %w", id, ErrUnknownResource)
	}
	if len(data) == 0 {
		return nil
	}
	if err := d.queue.WriteBuffer(buf, offset, data); err != nil {
		return fmt.Errorf("write buffer %d: %w", id, err)
	}
	return nil
}

// === Pipelines ===

// CreateRenderPipeline compiles the WGSL shader and builds a pipeline with
// an empty layout: instance data arrives through vertex buffers only.
func (d *HALDevice) CreateRenderPipeline(desc *gpucore.RenderPipelineDesc) (gpucore.PipelineID, error) {
	src, err := d.shaderSource(desc.Shader)
	if err != nil {
		return gpucore.InvalidID, fmt.Errorf("%s: %w", desc.Label, err)
	}

	p := &halPipeline{}
	p.shader, err = d.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  d.label(desc.Label + "_shader"),
		Source: src,
	})
	if err != nil {
		return gpucore.InvalidID, fmt.Errorf("compile %s shader: %w", desc.Label, err)
	}

	p.layout, err = d.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label: d.label(desc.Label + "_layout"),
	})
	if err != nil {
		d.destroyPipeline(p)
		return gpucore.InvalidID, fmt.Errorf("create %s pipeline layout: %w", desc.Label, err)
	}

	target := gputypes.ColorTargetState{
		Format:    desc.Format,
		WriteMask: gputypes.ColorWriteMaskAll,
	}
	if desc.PremultipliedBlend {
		blend := gputypes.BlendStatePremultiplied()
		target.Blend = &blend
	}

	p.pipeline, err = d.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  d.label(desc.Label),
		Layout: p.layout,
		Vertex: hal.VertexState{
			Module:     p.shader,
			EntryPoint: desc.VertexEntry,
			Buffers:    desc.VertexBuffers,
		},
		Fragment: &hal.FragmentState{
			Module:     p.shader,
			EntryPoint: desc.FragmentEntry,
			Targets:    []gputypes.ColorTargetState{target},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: desc.Topology,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		d.destroyPipeline(p)
		return gpucore.InvalidID, fmt.Errorf("create %s pipeline: %w", desc.Label, err)
	}

	id := gpucore.PipelineID(d.newID())
	d.mu.Lock()
	d.pipelines[id] = p
	d.mu.Unlock()

	plinth.Logger().Debug("native: pipeline created", "label", desc.Label, "spirv", d.opts.spirv)
	return id, nil
}

// DestroyRenderPipeline releases a pipeline and its shader and layout.
func (d *HALDevice) DestroyRenderPipeline(id gpucore.PipelineID) {
	d.mu.Lock()
	p, ok := d.pipelines[id]
	if ok {
		delete(d.pipelines, id)
	}
	d.mu.Unlock()

	if ok {
		d.destroyPipeline(p)
	}
}

// destroyPipeline releases pipeline resources in reverse creation order.
func (d *HALDevice) destroyPipeline(p *halPipeline) {
	if p.pipeline != nil {
		d.device.DestroyRenderPipeline(p.pipeline)
		p.pipeline = nil
	}
	if p.layout != nil {
		d.device.DestroyPipelineLayout(p.layout)
		p.layout = nil
	}
	if p.shader != nil {
		d.device.DestroyShaderModule(p.shader)
		p.shader = nil
	}
}

// === Targets ===

func (d *HALDevice) registerTarget(view hal.TextureView) gpucore.TargetID {
	id := gpucore.TargetID(d.newID())
	d.mu.Lock()
	d.targets[id] = view
	d.mu.Unlock()
	return id
}

func (d *HALDevice) releaseTarget(id gpucore.TargetID) {
	d.mu.Lock()
	delete(d.targets, id)
	d.mu.Unlock()
}

// === Frame recording ===

// BeginRenderPass opens the frame encoder if needed and starts a pass that
// clears the target.
func (d *HALDevice) BeginRenderPass(desc *gpucore.RenderPassDesc) (gpucore.RenderPassEncoder, error) {
	if d.passOpen {
		return nil, ErrPassOpen
	}

	d.mu.RLock()
	view, ok := d.targets[desc.Target]
	d.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("begin pass: target %d: %w", desc.Target, ErrUnknownResource)
	}

	if d.encoder == nil {
		enc, err := d.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
			Label: d.label("frame_encoder"),
		})
		if err != nil {
			return nil, fmt.Errorf("create command encoder: %w", err)
		}
		if err := enc.BeginEncoding(d.label("frame")); err != nil {
			return nil, fmt.Errorf("begin encoding: %w", err)
		}
		d.encoder = enc
	}

	rp := d.encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: d.label(desc.Label),
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     gputypes.LoadOpClear,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: desc.ClearColor,
		}},
	})
	d.passOpen = true
	return &passEncoder{dev: d, rp: rp}, nil
}

// Submit ends the frame encoder, submits it and waits for the GPU so the
// command buffer can be recycled. Submitting with nothing recorded is a
// no-op.
func (d *HALDevice) Submit() error {
	if d.passOpen {
		return ErrPassOpen
	}
	if d.encoder == nil {
		return nil
	}
	enc := d.encoder
	d.encoder = nil

	cmdBuf, err := enc.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}
	defer d.device.FreeCommandBuffer(cmdBuf)

	index, err := d.queue.Submit([]hal.CommandBuffer{cmdBuf})
	if err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	if d.queue.PollCompleted() >= index {
		return nil
	}
	if err := d.device.WaitIdle(); err != nil {
		return fmt.Errorf("wait for GPU: %w", err)
	}
	return nil
}

// Close releases every buffer and pipeline still owned by the device and
// discards an unsubmitted frame. The hal device itself is not destroyed.
func (d *HALDevice) Close() {
	if d.encoder != nil {
		d.encoder.DiscardEncoding()
		d.encoder = nil
		d.passOpen = false
	}

	d.mu.Lock()
	buffers := d.buffers
	pipelines := d.pipelines
	d.buffers = make(map[gpucore.BufferID]hal.Buffer)
	d.pipelines = make(map[gpucore.PipelineID]*halPipeline)
	d.mu.Unlock()

	for _, buf := range buffers {
		d.device.DestroyBuffer(buf)
	}
	for _, p := range pipelines {
		d.destroyPipeline(p)
	}
}

// passEncoder forwards draw commands to a hal render pass, translating IDs.
type passEncoder struct {
	dev   *HALDevice
	rp    hal.RenderPassEncoder
	ended bool
}

func (p *passEncoder) SetPipeline(id gpucore.PipelineID) {
	p.dev.mu.RLock()
	pl, ok := p.dev.pipelines[id]
	p.dev.mu.RUnlock()
	if ok {
		p.rp.SetPipeline(pl.pipeline)
	}
}

func (p *passEncoder) SetVertexBuffer(slot uint32, id gpucore.BufferID) {
	p.dev.mu.RLock()
	buf, ok := p.dev.buffers[id]
	p.dev.mu.RUnlock()
	if ok {
		p.rp.SetVertexBuffer(slot, buf, 0)
	}
}

func (p *passEncoder) Draw(vertexCount, instanceCount uint32) {
	p.rp.Draw(vertexCount, instanceCount, 0, 0)
}

func (p *passEncoder) End() {
	if p.ended {
		return
	}
	p.ended = true
	p.rp.End()
	p.dev.passOpen = false
}

var _ gpucore.Device = (*HALDevice)(nil)
