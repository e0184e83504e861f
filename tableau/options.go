// SPDX-License-Identifier: MIT

// Package tableau: functional configuration for New.
// Option constructors panic only on nonsensical parameters (programmer
// error); data problems (wrong cell-grid shape, non-finite values) are
// reported by New as sentinel errors.
package tableau

import "math"

// DefaultEpsilon is the default IsMaximized tolerance. Zero keeps the
// historical behavior: exact >= 0 (Simplex) and <= 0 (Tucker) sign
// tests on the objective row.
const DefaultEpsilon = 0.0

const panicEpsilonInvalid = "tableau: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal construction options. Safe to apply repeatedly.
type Option func(*options)

type options struct {
	eps   float64
	cells [][]float64
}

func defaultOptions() options {
	return options{eps: DefaultEpsilon}
}

func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithEpsilon sets the tolerance used by IsMaximized: an objective-row
// coefficient within eps of zero counts as zero. Panics if eps is
// negative, NaN or Inf.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *options) { o.eps = eps }
}

// WithCells supplies the initial coefficient grid, row-major, one slice
// per tableau row (objective row last, answer column last). New rejects
// a grid whose shape does not match the form and problem size with
// ErrDimensionMismatch, and non-finite values with ErrNaNInf.
func WithCells(cells [][]float64) Option {
	return func(o *options) { o.cells = cells }
}
