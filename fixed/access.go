// Package fixed: element and sub-array access.
// Unchecked accessors are the zero-overhead fast path; checked ones
// surface the sentinel errors instead of corrupting memory.

package fixed

import "github.com/katalvlaran/ndarray/indexing"

const (
	panicFrontEmpty = "fixed: Front on empty array"
	panicBackEmpty  = "fixed: Back on empty array"
)

// Data returns the Size() contiguous elements in row-major order as an
// aliasing view: callers may mutate elements through it, never the shape.
// Complexity: O(1).
func (a *Array[T]) Data() []T { return a.data }

// AtFlat returns a pointer to the i-th element in row-major order,
// bounds-checked. The flat-tuple view of the whole array.
// Returns ErrIndexOutOfRange when i is outside [0, Size()).
// Complexity: O(1).
func (a *Array[T]) AtFlat(i int) (*T, error) {
	if i < 0 || i >= len(a.data) {
		return nil, ErrIndexOutOfRange
	}

	return &a.data[i], nil
}

// Front returns the first element in row-major order.
// Panics on an empty array (programmer error).
// Complexity: O(1).
func (a *Array[T]) Front() T {
	if len(a.data) == 0 {
		panic(panicFrontEmpty)
	}

	return a.data[0]
}

// Back returns the last element in row-major order.
// Panics on an empty array (programmer error).
// Complexity: O(1).
func (a *Array[T]) Back() T {
	if len(a.data) == 0 {
		panic(panicBackEmpty)
	}

	return a.data[len(a.data)-1]
}

// Ref returns a pointer to the element at the given full-depth index
// tuple, unchecked: exactly Rank() indices, each within its extent, are
// the caller's obligation; violations are undefined behavior (the
// runtime may panic or a wrong element may be addressed).
// Complexity: O(rank), zero allocations.
func (a *Array[T]) Ref(indices ...int) *T {
	return &a.data[indexing.Offset(a.strides, indices)]
}

// Get returns the element value at the given index tuple, unchecked.
// See Ref for the caller obligations.
// Complexity: O(rank).
func (a *Array[T]) Get(indices ...int) T {
	return a.data[indexing.Offset(a.strides, indices)]
}

// At returns a pointer to the element at the given full-depth index
// tuple, bounds-checked.
// Stage 1 (Validate): exactly Rank() indices (else ErrWrongArity), each
// in [0, extent) (else ErrIndexOutOfRange) — the error is raised before
// any storage access.
// Stage 2 (Execute): return the reference at the computed offset.
// Complexity: O(rank), zero allocations.
func (a *Array[T]) At(indices ...int) (*T, error) {
	off, err := indexing.CheckedOffset(a.extents, a.strides, indices)
	if err != nil {
		return nil, err
	}

	return &a.data[off], nil
}

// Set assigns v at the given index tuple, bounds-checked.
// Returns the same errors as At.
// Complexity: O(rank).
func (a *Array[T]) Set(v T, indices ...int) error {
	el, err := a.At(indices...)
	if err != nil {
		return err
	}
	*el = v

	return nil
}

// Sub peels the given leading indices off the shape, returning the
// addressed sub-array as a view that shares storage with the parent.
// Zero indices return a whole-array view; k indices (k < Rank()) return
// the rank-(Rank()-k) slice at that position. Exactly Rank() indices is
// ErrWrongArity — a full-depth tuple names an element, use At.
// Each index is validated against its extent (ErrIndexOutOfRange).
// Complexity: O(rank), one small allocation for the view header.
func (a *Array[T]) Sub(indices ...int) (*Array[T], error) {
	if len(indices) >= len(a.extents) && len(indices) > 0 {
		return nil, ErrWrongArity
	}
	for d, idx := range indices {
		if idx < 0 || idx >= a.extents[d] {
			return nil, ErrIndexOutOfRange
		}
	}

	return a.sub(indices), nil
}

// MustSub is the unchecked form of Sub: the index count and values are
// the caller's obligation.
// Complexity: O(rank).
func (a *Array[T]) MustSub(indices ...int) *Array[T] {
	return a.sub(indices)
}

// sub builds the aliasing sub-array view for validated leading indices.
func (a *Array[T]) sub(indices []int) *Array[T] {
	k := len(indices)
	off := 0
	for d, idx := range indices {
		off += idx * a.strides[d]
	}
	size := indexing.Product(a.extents[k:])

	return &Array[T]{
		extents: a.extents[k:],
		strides: a.strides[k:],
		data:    a.data[off : off+size],
	}
}
