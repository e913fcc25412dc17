//go:build !nogpu

package native

import "errors"

// Package errors for the HAL device adapter.
var (
	// ErrNoGPU is returned when no GPU adapter is available.
	ErrNoGPU = errors.New("native: no GPU adapter available")

	// ErrNilDevice is returned when a nil hal.Device or hal.Queue is supplied.
	ErrNilDevice = errors.New("native: nil device or queue")

	// ErrUnknownResource is returned when an ID does not name a live resource.
	ErrUnknownResource = errors.New("native: unknown resource id")

	// ErrPassOpen is returned when a render pass is begun while another is
	// still being recorded.
	ErrPassOpen = errors.New("native: render pass already open")

	// ErrInvalidDimensions is returned when width or height is zero.
	ErrInvalidDimensions = errors.New("native: invalid dimensions")

	// ErrNoHALProvider is returned when a gpucontext provider does not
	// expose HAL types.
	ErrNoHALProvider = errors.New("native: provider does not expose HAL types")
)
