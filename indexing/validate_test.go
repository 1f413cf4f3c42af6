package indexing_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ndarray/indexing"
	"github.com/stretchr/testify/require"
)

func TestValidateExtents(t *testing.T) {
	cases := []struct {
		name    string
		extents []int
		size    int
		err     error
	}{
		{"Rank0", []int{}, 1, nil},
		{"Rank1", []int{10}, 10, nil},
		{"Rank3", []int{2, 3, 4}, 24, nil},
		{"Zero", []int{2, 0, 4}, 0, indexing.ErrZeroExtent},
		{"Negative", []int{-1}, 0, indexing.ErrZeroExtent},
		{"Overflow", []int{math.MaxInt, 2}, 0, indexing.ErrExtentOverflow},
		{"OverflowLate", []int{2, math.MaxInt/2 + 1}, 0, indexing.ErrExtentOverflow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			size, err := indexing.ValidateExtents(tc.extents)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.size, size)
		})
	}
}

// TestValidateExtents_MaxIntExact accepts a product equal to MaxInt.
func TestValidateExtents_MaxIntExact(t *testing.T) {
	size, err := indexing.ValidateExtents([]int{math.MaxInt, 1})
	require.NoError(t, err)
	require.Equal(t, math.MaxInt, size)
}

func TestValidatePriorities(t *testing.T) {
	cases := []struct {
		name       string
		rank       int
		priorities []int
		err        error
	}{
		{"Rank0", 0, []int{}, nil},
		{"Identity", 3, []int{0, 1, 2}, nil},
		{"Reversed", 3, []int{2, 1, 0}, nil},
		{"Mixed", 3, []int{1, 2, 0}, nil},
		{"WrongLen", 3, []int{0, 1}, indexing.ErrWrongArity},
		{"TooBig", 2, []int{0, 5}, indexing.ErrInvalidPriorityValue},
		{"Negative", 2, []int{-1, 0}, indexing.ErrInvalidPriorityValue},
		{"Repeat", 2, []int{1, 1}, indexing.ErrInvalidPriorityPermutation},
		{"RepeatRank3", 3, []int{0, 0, 1}, indexing.ErrInvalidPriorityPermutation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := indexing.ValidatePriorities(tc.rank, tc.priorities)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
		})
	}
}

// TestValidatePriorities_RangeBeforePermutation pins error priority:
// a list that is both out-of-range and repetitious reports the range
// violation first.
func TestValidatePriorities_RangeBeforePermutation(t *testing.T) {
	err := indexing.ValidatePriorities(2, []int{5, 5})
	require.ErrorIs(t, err, indexing.ErrInvalidPriorityValue)
}
