// Package shaped: whole-view traversal — fill and coordinate-tracking
// visits. Iteration follows the container's linear order; coordinates
// advance odometer-style under the current priorities, so the two orders
// coincide only for row-major shapes.

package shaped

import "github.com/katalvlaran/ndarray/indexing"

// Fill assigns value to min(RequiredSize, Size) elements starting from
// the container's beginning, in the container's own linear order.
// Complexity: O(min(RequiredSize, Size)).
func (v *View[E, C]) Fill(value E) {
	limit := v.traversalLimit()
	for i := 0; i < limit; i++ {
		*v.c.Ref(i) = value
	}
}

// Apply visits min(RequiredSize, Size) container positions from the
// beginning, invoking fn with a mutable element reference and the
// logical coordinate tuple of that position under the current
// extents+priorities. The coords slice is reused across calls; fn must
// copy it if retained. Callers must not rely on any coordinate path
// beyond consistency with the container's linear order.
// Complexity: O(min(RequiredSize, Size)·rank).
func (v *View[E, C]) Apply(fn func(el *E, coords []int)) {
	limit := v.traversalLimit()
	coords := make([]int, len(v.extents))
	for i := 0; i < limit; i++ {
		fn(v.c.Ref(i), coords)
		indexing.Advance(coords, v.extents, v.priorities)
	}
}

// Visit is the immutable counterpart of Apply: fn receives each element
// by value with its coordinate tuple, in the same order.
// Complexity: O(min(RequiredSize, Size)·rank).
func (v *View[E, C]) Visit(fn func(el E, coords []int)) {
	limit := v.traversalLimit()
	coords := make([]int, len(v.extents))
	for i := 0; i < limit; i++ {
		fn(*v.c.Ref(i), coords)
		indexing.Advance(coords, v.extents, v.priorities)
	}
}

// traversalLimit bounds iteration by both the logical and physical size.
func (v *View[E, C]) traversalLimit() int {
	limit := v.RequiredSize()
	if size := v.c.Len(); size < limit {
		limit = size
	}

	return limit
}
