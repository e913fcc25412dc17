package gpucore

import "github.com/gogpu/gputypes"

// Device creates GPU resources and records frames.
//
// Resource lifecycle:
//   - Resources are created via Create* methods
//   - Resources must be explicitly destroyed via Destroy* methods
//   - IDs become invalid after destruction and are never reused
//
// Implementations need not be safe for concurrent use. The renderer drives
// a Device from one goroutine.
type Device interface {
	// CreateBuffer allocates a buffer of size bytes.
	CreateBuffer(label string, size uint64, usage gputypes.BufferUsage) (BufferID, error)

	// DestroyBuffer releases a buffer. Unknown IDs are ignored.
	DestroyBuffer(id BufferID)

	// WriteBuffer copies data into the buffer at offset. The copy is
	// queued; completion is not awaited.
	WriteBuffer(id BufferID, offset uint64, data []byte) error

	// CreateRenderPipeline compiles the shader and builds a pipeline.
	CreateRenderPipeline(desc *RenderPipelineDesc) (PipelineID, error)

	// DestroyRenderPipeline releases a pipeline. Unknown IDs are ignored.
	DestroyRenderPipeline(id PipelineID)

	// BeginRenderPass starts recording a render pass. At most one pass is
	// open at a time.
	BeginRenderPass(desc *RenderPassDesc) (RenderPassEncoder, error)

	// Submit hands everything recorded since the last Submit to the GPU.
	Submit() error
}

// RenderPassEncoder records draw commands into an open render pass.
type RenderPassEncoder interface {
	SetPipeline(id PipelineID)
	SetVertexBuffer(slot uint32, id BufferID)

	// Draw issues one instanced draw of vertexCount vertices per instance.
	Draw(vertexCount, instanceCount uint32)

	// End closes the pass.
	End()
}

// Surface is the presentation target of a session.
type Surface interface {
	Format() gputypes.TextureFormat
	Size() (width, height uint32)
	Resize(width, height uint32) error

	// AcquireTarget returns the target to render the next frame into.
	AcquireTarget() (TargetID, error)

	// Present shows the most recently acquired target.
	Present() error
}
