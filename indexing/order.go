package indexing

// IdentityOrder returns the row-major priority permutation for the given
// rank: {0, 1, ..., rank-1}, with dimension 0 as the most-major.
// A rank of zero yields an empty (non-nil) permutation.
// Complexity: O(rank) time and memory.
func IdentityOrder(rank int) []int {
	order := make([]int, rank)
	for d := 0; d < rank; d++ {
		order[d] = d
	}

	return order
}

// ReversedOrder returns the column-major priority permutation for the
// given rank: {rank-1, ..., 1, 0}, with the last dimension most-major.
// Complexity: O(rank) time and memory.
func ReversedOrder(rank int) []int {
	order := make([]int, rank)
	for d := 0; d < rank; d++ {
		order[d] = rank - 1 - d
	}

	return order
}
