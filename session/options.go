package session

import "github.com/forestrie/go-sfcurves/curve"

// DefaultMinGridN is the smallest resolution Shrink will go down to.
const DefaultMinGridN = 2

type Options struct {
	curveOpts []curve.Option
	minGridN  int
}

type Option func(*Options)

// WithMaxBits sets the interleaved key width used for every grid the session
// generates.
func WithMaxBits(maxBits uint) Option {
	return func(o *Options) {
		o.curveOpts = append(o.curveOpts, curve.WithMaxBits(maxBits))
	}
}

// WithMinGridN sets the floor for Shrink.
func WithMinGridN(n int) Option {
	return func(o *Options) {
		o.minGridN = n
	}
}
