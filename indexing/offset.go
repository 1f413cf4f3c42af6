package indexing

// Offset maps an index tuple to its linear position: Σ index[d]·stride[d].
// No validation is performed; out-of-range indices produce offsets that
// may lie outside any backing storage (caller error).
// Complexity: O(rank), zero allocations.
func Offset(strides, indices []int) int {
	offset := 0
	for d, idx := range indices {
		offset += idx * strides[d]
	}

	return offset
}

// CheckedOffset validates an index tuple against its extents and then
// maps it to a linear position.
// Stage 1 (Validate): exactly len(extents) indices (else ErrWrongArity),
// each in [0, extents[d]) (else ErrIndexOutOfRange).
// Stage 2 (Execute): accumulate Σ index[d]·stride[d].
// The error is returned strictly before any offset arithmetic touches
// the offending index.
// Complexity: O(rank), zero allocations.
func CheckedOffset(extents, strides, indices []int) (int, error) {
	if len(indices) != len(extents) {
		return 0, ErrWrongArity
	}
	for d, idx := range indices {
		if idx < 0 || idx >= extents[d] {
			return 0, ErrIndexOutOfRange
		}
	}

	return Offset(strides, indices), nil
}

// Unravel maps a row-major linear position back to its coordinate tuple.
// The inverse of Offset over RowMajorStrides(extents); offsets outside
// [0, Product(extents)) wrap per integer division (caller error).
// Complexity: O(rank) time and memory.
func Unravel(offset int, extents []int) []int {
	coords := make([]int, len(extents))
	UnravelInto(coords, offset, extents)

	return coords
}

// UnravelInto is the allocation-free form of Unravel; coords must have
// length len(extents).
// Complexity: O(rank), zero allocations.
func UnravelInto(coords []int, offset int, extents []int) {
	for d := len(extents) - 1; d >= 0; d-- {
		coords[d] = offset % extents[d]
		offset /= extents[d]
	}
}
