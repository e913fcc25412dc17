// Package gpucore defines the GPU capability surface the renderer depends on.
//
// The render package never touches a concrete graphics API. It creates
// buffers and pipelines, records one render pass per frame and submits,
// all through the [Device], [RenderPassEncoder] and [Surface] interfaces
// defined here. Thin adapters implement them for concrete backends:
//
//	               +-----------------+
//	               |     render      |
//	               | (Session, Batch)|
//	               +--------+--------+
//	                        |
//	               +--------v--------+
//	               |     gpucore     |
//	               | Device, Surface |
//	               +--------+--------+
//	                        |
//	         +--------------+--------------+
//	         |                             |
//	+--------v--------+          +--------v--------+
//	| backend/native  |          |   test fakes    |
//	|  (hal.Device)   |          | (recording dev) |
//	+--------+--------+          +-----------------+
//	         |
//	+--------v--------+
//	|   gogpu/wgpu    |
//	| (Vulkan, noop)  |
//	+-----------------+
//
// Resources are referred to by opaque IDs. Zero is never a valid ID.
// Descriptor enums (formats, usages, vertex layouts) are shared with the
// rest of the gogpu stack through github.com/gogpu/gputypes.
package gpucore
