//go:build !nogpu

package native

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/plinth"
	"github.com/gogpu/plinth/gpucore"
)

// OffscreenSurface is a gpucore.Surface backed by a single render-attachment
// texture. It is used for headless rendering and tests; Present only counts
// frames.
type OffscreenSurface struct {
	dev    *HALDevice
	format gputypes.TextureFormat
	width  uint32
	height uint32

	tex    hal.Texture
	view   hal.TextureView
	target gpucore.TargetID

	presented uint64
}

// NewOffscreenSurface creates a width x height surface on dev. A zero
// format selects BGRA8Unorm.
func NewOffscreenSurface(dev *HALDevice, width, height uint32, format gputypes.TextureFormat) (*OffscreenSurface, error) {
	if format == gputypes.TextureFormatUndefined {
		format = gputypes.TextureFormatBGRA8Unorm
	}
	s := &OffscreenSurface{dev: dev, format: format}
	if err := s.Resize(width, height); err != nil {
		return nil, err
	}
	return s, nil
}

// Format returns the color format of the render target.
func (s *OffscreenSurface) Format() gputypes.TextureFormat { return s.format }

// Size returns the current dimensions.
func (s *OffscreenSurface) Size() (width, height uint32) { return s.width, s.height }

// Presented returns how many frames have been presented.
func (s *OffscreenSurface) Presented() uint64 { return s.presented }

// Resize recreates the target texture when the dimensions change.
func (s *OffscreenSurface) Resize(width, height uint32) error {
	if width == 0 || height == 0 {
		return fmt.Errorf("resize %dx%d: %w", width, height, ErrInvalidDimensions)
	}
	if s.tex != nil && s.width == width && s.height == height {
		return nil
	}
	s.destroy()

	device := s.dev.device
	tex, err := device.CreateTexture(&hal.TextureDescriptor{
		Label:         s.dev.label("offscreen_target"),
		Size:          hal.Extent3D{Width: width, Height: height, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        s.format,
		Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc,
	})
	if err != nil {
		return fmt.Errorf("create offscreen texture: %w", err)
	}
	view, err := device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:         s.dev.label("offscreen_target_view"),
		Format:        s.format,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		device.DestroyTexture(tex)
		return fmt.Errorf("create offscreen view: %w", err)
	}

	s.tex, s.view = tex, view
	s.width, s.height = width, height
	s.target = s.dev.registerTarget(view)
	plinth.Logger().Debug("native: offscreen surface sized", "width", width, "height", height)
	return nil
}

// AcquireTarget returns the surface's only target.
func (s *OffscreenSurface) AcquireTarget() (gpucore.TargetID, error) {
	if s.tex == nil {
		return gpucore.InvalidID, fmt.Errorf("acquire target: %w", ErrUnknownResource)
	}
	return s.target, nil
}

// Present records that a frame was completed.
func (s *OffscreenSurface) Present() error {
	s.presented++
	return nil
}

// Destroy releases the target texture.
func (s *OffscreenSurface) Destroy() {
	s.destroy()
}

func (s *OffscreenSurface) destroy() {
	if s.target != gpucore.InvalidID {
		s.dev.releaseTarget(s.target)
		s.target = gpucore.InvalidID
	}
	if s.view != nil {
		s.dev.device.DestroyTextureView(s.view)
		s.view = nil
	}
	if s.tex != nil {
		s.dev.device.DestroyTexture(s.tex)
		s.tex = nil
	}
}

var _ gpucore.Surface = (*OffscreenSurface)(nil)
