// SPDX-License-Identifier: MIT
// Package fixed: sentinel error set (unified, consistent).
// Conditions shared with the indexing engine alias its sentinels so that
// errors.Is matches across packages; conditions specific to fixed arrays
// get their own "fixed: ..." prefixed sentinels.

package fixed

import (
	"errors"

	"github.com/katalvlaran/ndarray/indexing"
)

// Shared conditions — same sentinel identity as package indexing, so
// errors.Is(err, fixed.ErrX) and errors.Is(err, indexing.ErrX) agree.
var (
	// ErrWrongArity is returned when the number of supplied indices does
	// not match what the operation expects.
	ErrWrongArity = indexing.ErrWrongArity

	// ErrIndexOutOfRange indicates an index that is negative or not less
	// than its dimension's extent.
	ErrIndexOutOfRange = indexing.ErrIndexOutOfRange

	// ErrZeroExtent rejects zero or negative construction extents
	// (a zero leading extent denotes the explicit empty array instead).
	ErrZeroExtent = indexing.ErrZeroExtent

	// ErrExtentOverflow rejects shapes whose element count exceeds int.
	ErrExtentOverflow = indexing.ErrExtentOverflow
)

var (
	// ErrTooManyValues is returned by FromValues when more initializers
	// than Size() elements are supplied.
	ErrTooManyValues = errors.New("fixed: too many initializer values")

	// ErrShapeMismatch is returned by Swap when the two arrays do not
	// share an identical shape.
	ErrShapeMismatch = errors.New("fixed: shape mismatch")
)
