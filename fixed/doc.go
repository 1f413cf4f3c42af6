// Package fixed provides a contiguous, value-semantic multi-dimensional
// array whose shape is fixed at construction.
//
// What:
//
//   - Array[T] stores Size() elements of T in one flat row-major slice,
//     with the shape (rank + per-dimension extents) carried alongside
//     and immutable for the object's lifetime.
//   - Full-depth access: Ref/Get (unchecked) and At/Set (checked).
//   - Dimension peeling: Sub/MustSub return leading-index sub-arrays
//     that share storage with the parent.
//   - Whole-array operations: Fill, Swap, Apply/Visit traversal with
//     coordinates, Equal, lexicographic Compare/Less, Convert/Map.
//
// Why:
//
//   - Lookup tables, game boards, stencil kernels: anything whose shape
//     is known up front and must never drift at run time.
//   - The flat buffer plus precomputed strides keeps element access a
//     single multiply-add chain, cache-friendly and allocation-free.
//
// Semantics:
//
//   - Value type: Clone deep-copies; no shared ownership unless a caller
//     explicitly takes the Data() view or a Sub slice.
//   - A leading extent of 0 is the one permitted degenerate shape: an
//     explicit empty array (nil storage, Size 0, Empty true). Zero or
//     negative extents anywhere else are rejected at construction.
//   - Unchecked accessors (Ref, Get, MustSub) perform no validation and
//     have undefined behavior on violation; use the checked forms where
//     safety matters.
//
// Complexity:
//
//   - Ref/Get/At/Set/Sub: O(rank). Front/Back: O(1).
//   - Fill/Apply/Visit/Equal/Compare/Convert/Swap: O(Size()).
//
// Errors:
//
//   - ErrZeroExtent, ErrExtentOverflow: invalid construction shape.
//   - ErrTooManyValues: more initializers than Size().
//   - ErrWrongArity, ErrIndexOutOfRange: checked-access violations.
//   - ErrShapeMismatch: Swap between differently shaped arrays.
//
// Not safe for concurrent mutation of the same instance; instances are
// independent after Clone and need no synchronization across goroutines
// when not shared.
package fixed
