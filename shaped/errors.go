// SPDX-License-Identifier: MIT
// Package shaped: sentinel error set (unified, consistent).
// Conditions shared with the indexing engine alias its sentinels so that
// errors.Is matches across packages.

package shaped

import (
	"errors"

	"github.com/katalvlaran/ndarray/indexing"
)

// Shared conditions — same sentinel identity as package indexing.
var (
	// ErrWrongArity is returned when an index or extent list does not
	// carry exactly Rank() values.
	ErrWrongArity = indexing.ErrWrongArity

	// ErrIndexOutOfRange indicates an index that is negative or not less
	// than its dimension's current extent.
	ErrIndexOutOfRange = indexing.ErrIndexOutOfRange

	// ErrZeroExtent rejects zero or negative extents in SetExtents.
	ErrZeroExtent = indexing.ErrZeroExtent

	// ErrExtentOverflow rejects extent products beyond the int range.
	ErrExtentOverflow = indexing.ErrExtentOverflow

	// ErrInvalidPriorityValue rejects priority entries outside [0, rank).
	ErrInvalidPriorityValue = indexing.ErrInvalidPriorityValue

	// ErrInvalidPriorityPermutation rejects in-range priority lists that
	// repeat or omit a dimension.
	ErrInvalidPriorityPermutation = indexing.ErrInvalidPriorityPermutation
)

// ErrNegativeRank is returned by constructors when rank < 0.
var ErrNegativeRank = errors.New("shaped: negative rank")
