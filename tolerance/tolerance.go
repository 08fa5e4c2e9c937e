// SPDX-License-Identifier: MIT

// Package tolerance - process-wide epsilon and the Tolerance value type.
//
// Purpose:
//   - Keep a single source of truth for the epsilon used by approximate
//     comparisons (geom.Vector.Eql, Line.Contains, Matrix.Rank, ...).
//   - Read the value at call time; objects never cache it.
//
// Determinism:
//   - The global is an atomic float64 bit pattern; readers always see a
//     value that some writer stored (or the default).

package tolerance

import (
	"fmt"
	"math"
	"sync/atomic"

	"gonum.org/v1/gonum/floats/scalar"
)

// DefaultEpsilon is the tolerance in effect until SetEpsilon is called.
const DefaultEpsilon = 1e-6

// current holds math.Float64bits of the active epsilon. Zero bits mean
// "never set" and resolve to DefaultEpsilon, which keeps the zero value usable.
var current atomic.Uint64

// Epsilon returns the process-wide tolerance currently in effect.
// Complexity: O(1).
func Epsilon() float64 {
	bits := current.Load()
	if bits == 0 {
		return DefaultEpsilon
	}

	return math.Float64frombits(bits)
}

// SetEpsilon replaces the process-wide tolerance.
// Implementation:
//   - Stage 1: reject eps <= 0, NaN and ±Inf with ErrInvalidEpsilon.
//   - Stage 2: store atomically; later comparisons see the new value.
//
// Complexity: O(1).
func SetEpsilon(eps float64) error {
	if err := validateEpsilon(eps); err != nil {
		return fmt.Errorf("SetEpsilon(%g): %w", eps, err)
	}
	current.Store(math.Float64bits(eps))

	return nil
}

// Reset restores DefaultEpsilon.
func Reset() {
	current.Store(0)
}

// validateEpsilon enforces the tolerance invariant: finite and strictly positive.
func validateEpsilon(eps float64) error {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		return ErrInvalidEpsilon
	}

	return nil
}

// Tolerance is an explicit epsilon value. The zero value is not valid;
// obtain one from Current, New or Resolve.
type Tolerance struct {
	eps float64 // > 0
}

// Current snapshots the process-wide epsilon into a Tolerance.
func Current() Tolerance {
	return Tolerance{eps: Epsilon()}
}

// New returns a Tolerance for eps or ErrInvalidEpsilon.
func New(eps float64) (Tolerance, error) {
	if err := validateEpsilon(eps); err != nil {
		return Tolerance{}, fmt.Errorf("New(%g): %w", eps, err)
	}

	return Tolerance{eps: eps}, nil
}

// Epsilon returns the wrapped epsilon. A zero Tolerance reports the
// process-wide value so that an uninitialised field still behaves sanely.
func (t Tolerance) Epsilon() float64 {
	if t.eps == 0 {
		return Epsilon()
	}

	return t.eps
}

// Equal reports |a-b| <= eps.
func (t Tolerance) Equal(a, b float64) bool {
	return scalar.EqualWithinAbs(a, b, t.Epsilon())
}

// IsZero reports |x| <= eps.
func (t Tolerance) IsZero(x float64) bool {
	return scalar.EqualWithinAbs(x, 0, t.Epsilon())
}

// AtMost reports x <= eps. Used for distances, which are never negative.
func (t Tolerance) AtMost(x float64) bool {
	return x <= t.Epsilon()
}

// String renders the tolerance for diagnostics.
func (t Tolerance) String() string {
	return fmt.Sprintf("tolerance(%g)", t.Epsilon())
}

// Equal reports |a-b| <= Epsilon() using the process-wide value.
func Equal(a, b float64) bool { return Current().Equal(a, b) }

// IsZero reports |x| <= Epsilon() using the process-wide value.
func IsZero(x float64) bool { return Current().IsZero(x) }

// AtMost reports x <= Epsilon() using the process-wide value.
func AtMost(x float64) bool { return Current().AtMost(x) }
