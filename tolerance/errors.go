// SPDX-License-Identifier: MIT

package tolerance

import "errors"

// ErrInvalidEpsilon is returned by SetEpsilon when eps is not a finite,
// strictly positive number.
var ErrInvalidEpsilon = errors.New("tolerance: epsilon must be finite and > 0")
