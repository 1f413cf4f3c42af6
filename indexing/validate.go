package indexing

import "math"

// ValidateExtents checks that every extent is strictly positive and that
// their product fits in int, returning the product on success.
// Stage 1 (Validate): reject zero or negative extents (ErrZeroExtent).
// Stage 2 (Validate): reject products beyond math.MaxInt
// (ErrExtentOverflow) without ever overflowing during the check.
// Stage 3 (Finalize): return the element count the extents address.
// Complexity: O(rank), zero allocations.
func ValidateExtents(extents []int) (int, error) {
	size := 1
	for _, e := range extents {
		if e <= 0 {
			return 0, ErrZeroExtent
		}
		if e > math.MaxInt/size {
			return 0, ErrExtentOverflow
		}
		size *= e
	}

	return size, nil
}

// ValidatePriorities checks that priorities is a permutation of [0, rank).
// Stage 1 (Validate): arity must equal rank (ErrWrongArity).
// Stage 2 (Validate): every value in [0, rank) (ErrInvalidPriorityValue).
// Stage 3 (Validate): no repeats or omissions (ErrInvalidPriorityPermutation).
// Range violations are reported before permutation violations, so a list
// that is both out-of-range and repetitious yields ErrInvalidPriorityValue.
// Complexity: O(rank) time and memory.
func ValidatePriorities(rank int, priorities []int) error {
	if len(priorities) != rank {
		return ErrWrongArity
	}
	for _, p := range priorities {
		if p < 0 || p >= rank {
			return ErrInvalidPriorityValue
		}
	}
	seen := make([]bool, rank)
	for _, p := range priorities {
		if seen[p] {
			return ErrInvalidPriorityPermutation
		}
		seen[p] = true
	}

	return nil
}
