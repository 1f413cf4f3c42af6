package indexing

// Product returns the product of all extents, 1 for an empty list.
// No overflow checking is performed; use ValidateExtents for that.
// Complexity: O(rank).
func Product(extents []int) int {
	p := 1
	for _, e := range extents {
		p *= e
	}

	return p
}

// RowMajorStrides computes the standard C-layout stride table: the last
// dimension has stride 1, each earlier dimension's stride is the product
// of all later extents.
// Complexity: O(rank) time and memory.
func RowMajorStrides(extents []int) []int {
	strides := make([]int, len(extents))
	stride := 1
	for d := len(extents) - 1; d >= 0; d-- {
		strides[d] = stride
		stride *= extents[d]
	}

	return strides
}

// Strides computes the stride table under an arbitrary priority order.
// priorities lists dimension indices from most-major to least-major; the
// dimension at the least-major place gets stride 1, and each more-major
// dimension's stride is the product of the extents of all dimensions
// less major than it.
// Stage 1 (Prepare): start from the full extent product.
// Stage 2 (Execute): walk priorities from most- to least-major, dividing
// the running product by each dimension's extent to obtain its stride.
// Preconditions: priorities is a valid permutation of [0, rank) and
// extents are all positive (see ValidatePriorities / ValidateExtents);
// violating them is a programmer error.
// Complexity: O(rank) time and memory.
func Strides(extents, priorities []int) []int {
	strides := make([]int, len(extents))
	product := Product(extents)
	for _, d := range priorities {
		product /= extents[d]
		strides[d] = product
	}

	return strides
}
