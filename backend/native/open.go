//go:build !nogpu

package native

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"

	// Register the Vulkan HAL backend.
	_ "github.com/gogpu/wgpu/hal/vulkan"

	"github.com/gogpu/plinth"
)

// Opened is a device opened by OpenDefault. Release frees the device and
// its instance.
type Opened struct {
	Device   hal.Device
	Queue    hal.Queue
	instance hal.Instance
}

// Release destroys the device and instance.
func (o *Opened) Release() {
	if o.Device != nil {
		o.Device.Destroy()
		o.Device = nil
	}
	if o.instance != nil {
		o.instance.Destroy()
		o.instance = nil
	}
}

// OpenDefault opens a device on the Vulkan backend, preferring a discrete
// GPU when more than one adapter is present.
func OpenDefault() (*Opened, error) {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return nil, fmt.Errorf("vulkan backend: %w", ErrNoGPU)
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("create instance: %w", err)
	}
	return openFrom(instance)
}

// OpenNoop opens a device on the noop HAL backend. Every call succeeds and
// no GPU work is performed, which suits headless runs without a driver.
func OpenNoop() (*Opened, error) {
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		return nil, fmt.Errorf("create noop instance: %w", err)
	}
	return openFrom(instance)
}

func openFrom(instance hal.Instance) (*Opened, error) {
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, ErrNoGPU
	}

	selected := &adapters[0]
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU {
			selected = &adapters[i]
			break
		}
	}

	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, fmt.Errorf("open device: %w", err)
	}
	plinth.Logger().Info("native: adapter selected", "name", selected.Info.Name, "type", selected.Info.DeviceType)
	return &Opened{Device: openDev.Device, Queue: openDev.Queue, instance: instance}, nil
}
