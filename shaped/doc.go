// Package shaped overlays a mutable logical shape onto an arbitrary
// linear container, translating N-dimensional index tuples into linear
// offsets under a configurable traversal-priority order.
//
// What:
//
//   - View[E, C] wraps any Container[E] (random-access linear storage)
//     with per-dimension extents, a priority permutation (most-major
//     dimension first), and a cached stride table.
//   - Extents and priorities are runtime-mutable; the rank is fixed at
//     construction. Strides are recomputed on every successful shape
//     mutation.
//   - Element access: Ref/Get (unchecked) and At/Set (checked against
//     the current extents). Fill/Apply/Visit traverse the container's
//     own linear order while tracking logical coordinates.
//
// Why:
//
//   - Reinterpreting one flat buffer as a matrix, an image plane, or a
//     rank-N grid without copying: reshape by swapping extents, switch
//     between row- and column-major addressing by swapping priorities.
//
// Semantics worth knowing:
//
//   - RequiredSize() (product of extents) and Size() (the container's
//     actual element count) are independent; callers reconcile them.
//     Unchecked access under a shape whose RequiredSize exceeds Size can
//     address past the container — a caller error the checked accessors
//     do not prevent either, since At validates indices against extents,
//     not against the container's physical size.
//   - Fill/Apply/Visit iterate min(RequiredSize, Size) positions in the
//     container's linear order. Under non-row-major priorities the
//     coordinate tuples they report are therefore NOT produced in
//     lexicographic coordinate order; this mirrors the storage-order
//     contract and is pinned by tests rather than "fixed".
//   - Shrinking extents below the container's size leaves trailing
//     elements untouched; they simply become unreachable through shaped
//     accessors.
//
// Complexity:
//
//   - Ref/Get/At/Set/Offset: O(rank). Shape mutators: O(rank).
//   - Fill/Apply/Visit: O(min(RequiredSize, Size)·rank).
//
// Errors:
//
//   - ErrNegativeRank: construction with rank < 0.
//   - ErrWrongArity, ErrIndexOutOfRange: checked access violations.
//   - ErrZeroExtent, ErrExtentOverflow: invalid extents.
//   - ErrInvalidPriorityValue, ErrInvalidPriorityPermutation: invalid
//     priority lists.
//
// Instances are not safe for concurrent mutation; external
// synchronization is the caller's obligation when sharing a view.
package shaped
