package indexing_test

import (
	"testing"

	"github.com/katalvlaran/ndarray/indexing"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Priority order constructors
//----------------------------------------------------------------------------//

func TestIdentityOrder(t *testing.T) {
	require.Equal(t, []int{}, indexing.IdentityOrder(0))
	require.Equal(t, []int{0}, indexing.IdentityOrder(1))
	require.Equal(t, []int{0, 1, 2, 3}, indexing.IdentityOrder(4))
}

func TestReversedOrder(t *testing.T) {
	require.Equal(t, []int{}, indexing.ReversedOrder(0))
	require.Equal(t, []int{0}, indexing.ReversedOrder(1))
	require.Equal(t, []int{3, 2, 1, 0}, indexing.ReversedOrder(4))
}

//----------------------------------------------------------------------------//
// Strides
//----------------------------------------------------------------------------//

func TestRowMajorStrides(t *testing.T) {
	cases := []struct {
		name    string
		extents []int
		want    []int
	}{
		{"Rank0", []int{}, []int{}},
		{"Rank1", []int{7}, []int{1}},
		{"Rank2", []int{2, 3}, []int{3, 1}},
		{"Rank3", []int{6, 5, 4}, []int{20, 4, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, indexing.RowMajorStrides(tc.extents))
		})
	}
}

// TestStrides_PriorityOrders verifies the priority-aware stride table
// against both canonical orders and a mixed permutation.
func TestStrides_PriorityOrders(t *testing.T) {
	extents := []int{2, 3, 4}

	// Row-major: first dimension most-major.
	require.Equal(t,
		indexing.RowMajorStrides(extents),
		indexing.Strides(extents, indexing.IdentityOrder(3)))

	// Column-major: last dimension most-major, first has stride 1.
	require.Equal(t, []int{1, 2, 6},
		indexing.Strides(extents, indexing.ReversedOrder(3)))

	// Mixed: dimension 1 most-major, then 2, then 0.
	// stride[0]=1, stride[2]=2 (=extent 0), stride[1]=8 (=extents 0*2).
	require.Equal(t, []int{1, 8, 2},
		indexing.Strides(extents, []int{1, 2, 0}))
}

//----------------------------------------------------------------------------//
// Offset / CheckedOffset / Unravel
//----------------------------------------------------------------------------//

func TestOffset_RowMajor(t *testing.T) {
	extents := []int{2, 3, 4}
	strides := indexing.RowMajorStrides(extents)

	require.Equal(t, 0, indexing.Offset(strides, []int{0, 0, 0}))
	require.Equal(t, 1, indexing.Offset(strides, []int{0, 0, 1}))
	require.Equal(t, 4, indexing.Offset(strides, []int{0, 1, 0}))
	require.Equal(t, 23, indexing.Offset(strides, []int{1, 2, 3}))
}

func TestCheckedOffset(t *testing.T) {
	extents := []int{2, 3}
	strides := indexing.RowMajorStrides(extents)

	cases := []struct {
		name    string
		indices []int
		want    int
		err     error
	}{
		{"Origin", []int{0, 0}, 0, nil},
		{"Last", []int{1, 2}, 5, nil},
		{"TooFew", []int{1}, 0, indexing.ErrWrongArity},
		{"TooMany", []int{1, 2, 0}, 0, indexing.ErrWrongArity},
		{"Empty", []int{}, 0, indexing.ErrWrongArity},
		{"Negative", []int{-1, 0}, 0, indexing.ErrIndexOutOfRange},
		{"RowTooBig", []int{2, 0}, 0, indexing.ErrIndexOutOfRange},
		{"ColTooBig", []int{0, 99}, 0, indexing.ErrIndexOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			off, err := indexing.CheckedOffset(extents, strides, tc.indices)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, off)
		})
	}
}

// TestOffset_UnravelRoundTrip checks Offset∘Unravel == identity over the
// whole index space of a rank-3 shape.
func TestOffset_UnravelRoundTrip(t *testing.T) {
	extents := []int{3, 4, 5}
	strides := indexing.RowMajorStrides(extents)
	size := indexing.Product(extents)

	for off := 0; off < size; off++ {
		coords := indexing.Unravel(off, extents)
		require.Equal(t, off, indexing.Offset(strides, coords))
	}
}

func TestProduct(t *testing.T) {
	require.Equal(t, 1, indexing.Product(nil))
	require.Equal(t, 1, indexing.Product([]int{}))
	require.Equal(t, 6, indexing.Product([]int{2, 3}))
	require.Equal(t, 120, indexing.Product([]int{2, 3, 4, 5}))
}
