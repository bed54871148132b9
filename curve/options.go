package curve

import "github.com/forestrie/go-sfcurves/bitops"

type Options struct {
	// MaxBits is the width of the interleaved key. See bitops.CheckWidth.
	MaxBits uint
}

type Option func(*Options)

// WithMaxBits sets the interleaved key width. Each axis gets half of it.
func WithMaxBits(maxBits uint) Option {
	return func(o *Options) {
		o.MaxBits = maxBits
	}
}

// NewOptions applies opts over the defaults and validates the result.
func NewOptions(opts ...Option) (Options, error) {
	o := Options{MaxBits: DefaultMaxBits}
	for _, opt := range opts {
		opt(&o)
	}
	if err := bitops.CheckWidth(o.MaxBits); err != nil {
		return Options{}, err
	}
	return o, nil
}
