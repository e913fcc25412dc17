//go:build !nogpu

package native

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// halProvider is implemented by gpucontext providers that can hand out the
// underlying HAL objects, such as gogpu's application context.
type halProvider interface {
	HalDevice() any
	HalQueue() any
}

// FromProvider builds a HALDevice on the device shared by a host
// application. It also returns the provider's preferred surface format.
func FromProvider(provider gpucontext.DeviceProvider, opts ...Option) (*HALDevice, gputypes.TextureFormat, error) {
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, gputypes.TextureFormatUndefined, ErrNoHALProvider
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, gputypes.TextureFormatUndefined, fmt.Errorf("%w: HalDevice is not hal.Device", ErrNoHALProvider)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, gputypes.TextureFormatUndefined, fmt.Errorf("%w: HalQueue is not hal.Queue", ErrNoHALProvider)
	}

	d, err := NewHALDevice(device, queue, opts...)
	if err != nil {
		return nil, gputypes.TextureFormatUndefined, err
	}
	return d, provider.SurfaceFormat(), nil
}
