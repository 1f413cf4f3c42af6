// Package fixed: whole-array operations — fill, swap, traversal.

package fixed

import "github.com/katalvlaran/ndarray/indexing"

// Fill assigns v to every element.
// Complexity: O(Size()).
func (a *Array[T]) Fill(v T) {
	for i := range a.data {
		a.data[i] = v
	}
}

// Swap exchanges element storage with another array of identical shape,
// element by element, so views aliasing either array observe the
// exchange. Returns ErrShapeMismatch when the shapes differ.
// Complexity: O(Size()), no allocation.
func (a *Array[T]) Swap(other *Array[T]) error {
	if !sameShape(a.extents, other.extents) {
		return ErrShapeMismatch
	}
	for i := range a.data {
		a.data[i], other.data[i] = other.data[i], a.data[i]
	}

	return nil
}

// Apply visits every element exactly once in row-major order, invoking
// fn with a mutable reference to the element and its coordinate tuple.
// The coords slice is reused across calls; fn must copy it if retained.
// Callers must not rely on any traversal path beyond consistency with
// forward iteration.
// Complexity: O(Size()·rank).
func (a *Array[T]) Apply(fn func(el *T, coords []int)) {
	coords := make([]int, len(a.extents))
	for i := range a.data {
		indexing.UnravelInto(coords, i, a.extents)
		fn(&a.data[i], coords)
	}
}

// Visit is the immutable counterpart of Apply: fn receives each element
// by value along with its coordinate tuple, in the same order.
// The coords slice is reused across calls; fn must copy it if retained.
// Complexity: O(Size()·rank).
func (a *Array[T]) Visit(fn func(el T, coords []int)) {
	coords := make([]int, len(a.extents))
	for i := range a.data {
		indexing.UnravelInto(coords, i, a.extents)
		fn(a.data[i], coords)
	}
}

// sameShape reports element-wise equality of two extent lists.
func sameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for d := range a {
		if a[d] != b[d] {
			return false
		}
	}

	return true
}
