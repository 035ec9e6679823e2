package tensor

import (
	"sync/atomic"

	"github.com/born-ml/shapegrad/internal/layout"
	"github.com/born-ml/shapegrad/internal/parallel"
)

var kernelConfig atomic.Pointer[parallel.Config]

func init() {
	cfg := parallel.DefaultConfig()
	kernelConfig.Store(&cfg)
}

// SetParallelConfig replaces the configuration used by every kernel's inner
// loop. It is safe to call concurrently with running kernels; each kernel
// reads it once.
func SetParallelConfig(cfg parallel.Config) {
	kernelConfig.Store(&cfg)
}

// ParallelConfig returns the kernel configuration in use.
func ParallelConfig() parallel.Config {
	return *kernelConfig.Load()
}

// Option configures tensor constructors.
type Option func(*options)

type options struct {
	policy layout.Policy
}

// WithPolicy sets the allocation policy of a new tensor. The policy also
// decides where every result computed from the tensor is allocated.
func WithPolicy(p layout.Policy) Option {
	return func(o *options) {
		o.policy = p
	}
}

func buildOptions(opts []Option) options {
	o := options{policy: layout.DefaultPolicy{}}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
