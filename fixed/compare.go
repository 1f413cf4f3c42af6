// Package fixed: free-function comparison and conversion over arrays.
// Comparisons follow forward-iteration (row-major) element order.

package fixed

import "cmp"

// Numeric constrains element types that support a static conversion
// between one another via Convert.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Equal reports whether a and b have identical shape and element-wise
// equal contents.
// Complexity: O(Size()).
func Equal[T comparable](a, b *Array[T]) bool {
	if !sameShape(a.extents, b.extents) {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}

// Compare orders a and b lexicographically by row-major element order:
// the first unequal element pair decides; otherwise the shorter array
// compares less. Returns -1, 0, or +1.
// Complexity: O(min(Size())).
func Compare[T cmp.Ordered](a, b *Array[T]) int {
	n := len(a.data)
	if len(b.data) < n {
		n = len(b.data)
	}
	for i := 0; i < n; i++ {
		if c := cmp.Compare(a.data[i], b.data[i]); c != 0 {
			return c
		}
	}

	return cmp.Compare(len(a.data), len(b.data))
}

// Less reports Compare(a, b) < 0.
func Less[T cmp.Ordered](a, b *Array[T]) bool { return Compare(a, b) < 0 }

// Map returns a new array of identical shape whose elements are fn
// applied to each of a's elements, in row-major order.
// Complexity: O(Size()) time and memory.
func Map[U, T any](a *Array[T], fn func(T) U) *Array[U] {
	out := &Array[U]{extents: a.extents, strides: a.strides}
	if a.data != nil {
		out.data = make([]U, len(a.data))
		for i, v := range a.data {
			out.data[i] = fn(v)
		}
	}

	return out
}

// Convert returns a new array of identical shape with every element
// statically converted to U, in row-major order.
// Complexity: O(Size()) time and memory.
func Convert[U, T Numeric](a *Array[T]) *Array[U] {
	return Map(a, func(v T) U { return U(v) })
}
