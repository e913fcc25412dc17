//go:build !nogpu

package native

// Option configures a HALDevice during creation.
type Option func(*options)

type options struct {
	spirv       bool
	labelPrefix string
}

func defaultOptions() options {
	return options{
		labelPrefix: "plinth",
	}
}

// WithSPIRV makes the device compile WGSL to SPIR-V with naga before
// handing shaders to the driver. Backends that consume WGSL directly do
// not need it.
func WithSPIRV() Option {
	return func(o *options) {
		o.spirv = true
	}
}

// WithLabelPrefix sets the prefix of every debug label the device assigns.
func WithLabelPrefix(prefix string) Option {
	return func(o *options) {
		o.labelPrefix = prefix
	}
}
