// SPDX-License-Identifier: MIT
// Package indexing: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// indexing engine and its dependents. All functions MUST return these
// sentinels and tests MUST check them via errors.Is. No function panics
// on user-triggered error conditions; panics are reserved for programmer
// errors in unchecked fast paths.

package indexing

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "indexing: ..." for consistency and to
// allow easy grepping across logs. DO NOT %w wrap these sentinels when
// returning directly; if context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the outer boundary — callers will still
// use errors.Is to match.

var (
	// ErrWrongArity is returned when the number of supplied indices does
	// not equal the expected rank (checked accessors only).
	ErrWrongArity = errors.New("indexing: wrong number of indices")

	// ErrIndexOutOfRange indicates that a supplied index is negative or
	// not less than its dimension's current extent.
	ErrIndexOutOfRange = errors.New("indexing: index out of range")

	// ErrZeroExtent is returned on an attempt to use a zero (or negative)
	// extent where every dimension must address at least one element.
	ErrZeroExtent = errors.New("indexing: zero-sized extent")

	// ErrExtentOverflow is returned when the product of requested extents
	// exceeds the representable range of int.
	ErrExtentOverflow = errors.New("indexing: total element count too large")

	// ErrInvalidPriorityValue indicates a priority entry outside [0, rank).
	ErrInvalidPriorityValue = errors.New("indexing: illegal priority value")

	// ErrInvalidPriorityPermutation indicates priorities that are in range
	// individually but repeat or omit a dimension index.
	ErrInvalidPriorityPermutation = errors.New("indexing: improper priority list")
)
