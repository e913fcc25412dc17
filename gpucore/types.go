package gpucore

import "github.com/gogpu/gputypes"

// BufferID is an opaque handle to a GPU buffer.
type BufferID uint64

// PipelineID is an opaque handle to a render pipeline.
type PipelineID uint64

// TargetID is an opaque handle to a render target acquired from a Surface.
type TargetID uint64

// InvalidID is the zero value, representing an invalid/null resource.
const InvalidID = 0

// RenderPipelineDesc describes a render pipeline with a single color target.
type RenderPipelineDesc struct {
	Label string

	// Shader is WGSL source containing both entry points.
	Shader             string
	VertexEntry        string
	FragmentEntry      string
	VertexBuffers      []gputypes.VertexBufferLayout
	Format             gputypes.TextureFormat
	Topology           gputypes.PrimitiveTopology
	PremultipliedBlend bool
}

// RenderPassDesc describes a render pass that clears Target before drawing.
type RenderPassDesc struct {
	Label      string
	Target     TargetID
	ClearColor gputypes.Color
}
