// Package fixed: Array type, constructors and shape accessors.
// Array is a flat row-major slice plus a shape fixed at construction,
// the Go rendition of a nested constant-size array.

package fixed

import "github.com/katalvlaran/ndarray/indexing"

// Array is a fixed-shape multi-dimensional array of T.
// extents and strides are immutable after construction; data holds
// Size() elements in row-major order (nil only for the empty shape).
type Array[T any] struct {
	extents []int // per-dimension sizes, fixed at construction
	strides []int // row-major strides, derived from extents
	data    []T   // flat backing storage, length == Size()
}

// New creates an Array of the given shape with zero-valued elements.
// Stage 1 (Validate): extents must be positive; as the one degenerate
// case, a zero leading extent yields the explicit empty array.
// Stage 2 (Prepare): compute strides and allocate flat storage.
// Stage 3 (Finalize): return the array or the validation error.
// Rank 0 (no extents) stores a single element.
// Complexity: O(Size()) time and memory.
func New[T any](extents ...int) (*Array[T], error) {
	shape := append([]int(nil), extents...)

	// Empty array: zero leading extent, remaining extents still validated.
	if len(shape) > 0 && shape[0] == 0 {
		if _, err := indexing.ValidateExtents(shape[1:]); err != nil {
			return nil, err
		}

		return &Array[T]{extents: shape, strides: indexing.RowMajorStrides(shape)}, nil
	}

	size, err := indexing.ValidateExtents(shape)
	if err != nil {
		return nil, err
	}

	return &Array[T]{
		extents: shape,
		strides: indexing.RowMajorStrides(shape),
		data:    make([]T, size),
	}, nil
}

// FromValues creates an Array of the given shape initialized with up to
// Size() values mapped in row-major order; missing trailing elements are
// zero-valued.
// Returns ErrTooManyValues when len(values) > Size(), plus any shape
// validation error from New.
// Complexity: O(Size()) time and memory.
func FromValues[T any](values []T, extents ...int) (*Array[T], error) {
	a, err := New[T](extents...)
	if err != nil {
		return nil, err
	}
	if len(values) > len(a.data) {
		return nil, ErrTooManyValues
	}
	copy(a.data, values)

	return a, nil
}

// Clone returns a deep copy: value semantics, no shared storage.
// Complexity: O(Size()) time and memory.
func (a *Array[T]) Clone() *Array[T] {
	cp := &Array[T]{extents: a.extents, strides: a.strides}
	if a.data != nil {
		cp.data = make([]T, len(a.data))
		copy(cp.data, a.data)
	}

	return cp
}

// Rank returns the number of dimensions.
// Complexity: O(1).
func (a *Array[T]) Rank() int { return len(a.extents) }

// Extents returns a defensive copy of the per-dimension sizes.
// Complexity: O(rank).
func (a *Array[T]) Extents() []int {
	out := make([]int, len(a.extents))
	copy(out, a.extents)

	return out
}

// Extent returns the size of dimension d (0 ≤ d < Rank()).
// Complexity: O(1).
func (a *Array[T]) Extent(d int) int { return a.extents[d] }

// Size returns the total element count: the product of the extents,
// 1 for rank 0, 0 only for the empty array.
// Complexity: O(1).
func (a *Array[T]) Size() int { return len(a.data) }

// MaxSize equals Size(): the shape is fixed, so the element count can
// never change.
// Complexity: O(1).
func (a *Array[T]) MaxSize() int { return len(a.data) }

// Empty reports whether the array holds no elements. Only the explicit
// empty shape (zero leading extent) is ever empty.
// Complexity: O(1).
func (a *Array[T]) Empty() bool { return len(a.data) == 0 }
