// SPDX-License-Identifier: MIT

// Package tolerance: functional configuration for callers that want an
// explicit epsilon instead of the process-wide one.
//
// Design goals:
//   - No hidden state: Resolve starts from the process-wide value and applies
//     options in order; the global is never modified.
//   - Safe by construction: WithEpsilon panics on nonsensical values
//     (programmer error), mirroring the numeric-policy options of the
//     matrix kernels this package serves.

package tolerance

// panicEpsilonInvalid is the stable panic message for WithEpsilon.
const panicEpsilonInvalid = "tolerance: WithEpsilon: eps must be finite and > 0"

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps float64 // > 0; defaults to Epsilon() at resolve time
}

// WithEpsilon sets an explicit tolerance.
// Implementation:
//   - Stage 1: validate eps is finite and > 0 (panic otherwise).
//   - Stage 2: return a setter that writes eps into Options.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithEpsilon(eps float64) Option {
	if validateEpsilon(eps) != nil {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithScale multiplies the resolved epsilon by k (k > 0). Handy when data is
// expressed in large units and the default absolute tolerance is too strict.
func WithScale(k float64) Option {
	if validateEpsilon(k) != nil {
		panic("tolerance: WithScale: k must be finite and > 0")
	}

	return func(o *Options) { o.eps *= k }
}

// Resolve applies opts on top of the process-wide epsilon and returns the
// resulting Tolerance.
func Resolve(opts ...Option) Tolerance {
	o := Options{eps: Epsilon()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return Tolerance{eps: o.eps}
}
