package indexing

// Advance steps a coordinate tuple to the next position under the given
// priority order, odometer-style: the least-major dimension's coordinate
// is incremented; when it reaches its extent it resets to zero and the
// carry propagates to the next more-major dimension. Incrementing the
// maximum tuple wraps around to all-zeros.
//
// Returns true exactly on that full turnover (coords back to all-zeros).
// coords must be a valid tuple for extents; priorities must be a valid
// permutation — both are programmer obligations on this fast path.
// Complexity: O(rank) worst case, zero allocations.
func Advance(coords, extents, priorities []int) bool {
	carry := true
	for i := len(priorities) - 1; i >= 0 && carry; i-- {
		d := priorities[i]
		coords[d]++
		if coords[d] < extents[d] {
			carry = false
		} else {
			coords[d] = 0
		}
	}

	return carry
}
