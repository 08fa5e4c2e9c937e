// SPDX-License-Identifier: MIT

package polygon

import (
	"errors"
	"fmt"
)

var (
	// ErrTooFewVertices indicates fewer than three vertices.
	ErrTooFewVertices = errors.New("polygon: at least three vertices required")

	// ErrUnknownVertex is returned when a queried vertex is not in the polygon.
	ErrUnknownVertex = errors.New("polygon: vertex not in polygon")
)

func polygonErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
