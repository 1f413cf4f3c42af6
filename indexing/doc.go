// Package indexing is the shared multi-dimensional indexing engine:
// strides, linear offsets, coordinate advancing, and shape validation.
//
// What:
//
//   - Stride tables for row-major layout and for arbitrary priority
//     permutations (most-major dimension first).
//   - Offset / CheckedOffset map an index tuple to one linear position.
//   - Unravel maps a linear position back to its row-major coordinates.
//   - Advance steps a coordinate tuple odometer-style under a priority
//     order, carrying from the least-major to the most-major dimension.
//   - ValidateExtents / ValidatePriorities enforce shape invariants.
//
// Why:
//
//   - Both the fixed-shape array (package fixed) and the runtime-shaped
//     view (package shaped) solve the same problem: turning a tuple of
//     per-dimension coordinates into a single position in flat storage.
//     Keeping the arithmetic in one leaf package keeps the two in exact
//     agreement.
//
// Complexity:
//
//   - Offset/CheckedOffset/Advance: O(rank) time, O(1) memory.
//   - Strides/RowMajorStrides/Unravel: O(rank) time and memory.
//   - ValidatePriorities: O(rank) time and memory.
//
// Errors:
//
//   - ErrWrongArity: index-tuple length does not equal the rank.
//   - ErrIndexOutOfRange: an index is negative or ≥ its extent.
//   - ErrZeroExtent: an extent is zero or negative.
//   - ErrExtentOverflow: the extent product exceeds the int range.
//   - ErrInvalidPriorityValue: a priority entry is ≥ rank or negative.
//   - ErrInvalidPriorityPermutation: priorities repeat or omit a value.
//
// All functions are pure and safe for concurrent use; callers own any
// synchronization on the slices they pass in.
package indexing
