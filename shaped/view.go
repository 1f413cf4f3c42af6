// Package shaped: the View type — construction, shape state, mutators,
// and element access.

package shaped

import "github.com/katalvlaran/ndarray/indexing"

// View is a fixed-rank, variable-extent multi-dimensional window onto a
// linear container. extents, priorities and strides all have length
// Rank(); strides are a cache recomputed whenever the shape changes.
type View[E any, C Container[E]] struct {
	c          C     // backing linear storage, owned by containment
	extents    []int // current per-dimension sizes, all > 0
	priorities []int // permutation of [0, rank), most-major first
	strides    []int // derived: linear step per unit index increment
}

// New wraps the given container with a rank-dimensional shape.
// Stage 1 (Validate): rank ≥ 0 (else ErrNegativeRank).
// Stage 2 (Prepare): initial "flat vector" shape — the container's
// element count (or 1 when empty) in dimension 0, every other extent 1,
// row-major priorities, strides recomputed.
// Stage 3 (Finalize): apply options (WithExtents and friends), each
// validated exactly like the corresponding setter.
// Complexity: O(rank) plus option validation.
func New[E any, C Container[E]](rank int, c C, opts ...Option) (*View[E, C], error) {
	if rank < 0 {
		return nil, ErrNegativeRank
	}

	v := &View[E, C]{
		c:          c,
		extents:    make([]int, rank),
		priorities: indexing.IdentityOrder(rank),
	}
	for d := range v.extents {
		v.extents[d] = 1
	}
	if rank > 0 && c.Len() > 0 {
		v.extents[0] = c.Len()
	}
	v.strides = indexing.Strides(v.extents, v.priorities)

	if err := v.applyOptions(opts); err != nil {
		return nil, err
	}

	return v, nil
}

// FromSlice wraps a copy of data in a Slice container of the given rank.
// Complexity: O(len(data)) for the copy, then as New.
func FromSlice[E any](rank int, data []E, opts ...Option) (*View[E, Slice[E]], error) {
	buf := make(Slice[E], len(data))
	copy(buf, data)

	return New[E, Slice[E]](rank, buf, opts...)
}

// Rank returns the number of index coordinates an element needs.
// Complexity: O(1).
func (v *View[E, C]) Rank() int { return len(v.extents) }

// RequiredSize returns the number of elements the current shape
// addresses: the product of the extents, always 1 for rank 0. It is
// independent of the container's actual element count.
// Complexity: O(rank).
func (v *View[E, C]) RequiredSize() int { return indexing.Product(v.extents) }

// Size returns the backing container's actual element count — NOT the
// shape's RequiredSize. Callers reconcile the two.
// Complexity: O(1) for the default Slice container.
func (v *View[E, C]) Size() int { return v.c.Len() }

// Empty reports whether the backing container holds no elements.
// Complexity: as Size.
func (v *View[E, C]) Empty() bool { return v.c.Len() == 0 }

// Container returns the backing container value. For slice-backed views
// the returned value shares storage with the view.
// Complexity: O(1).
func (v *View[E, C]) Container() C { return v.c }

// Extents returns a defensive copy of the current per-dimension sizes.
// Complexity: O(rank).
func (v *View[E, C]) Extents() []int {
	out := make([]int, len(v.extents))
	copy(out, v.extents)

	return out
}

// SetExtents replaces the per-dimension sizes and recomputes strides.
// Stage 1 (Validate): exactly Rank() values (ErrWrongArity), each > 0
// (ErrZeroExtent), product within int (ErrExtentOverflow).
// Stage 2 (Commit): copy the extents, recompute strides once.
// On error the view is unchanged.
// Complexity: O(rank).
func (v *View[E, C]) SetExtents(extents ...int) error {
	if err := v.checkExtents(extents); err != nil {
		return err
	}
	copy(v.extents, extents)
	v.recalculateStrides()

	return nil
}

// Priorities returns a defensive copy of the current priority
// permutation, most-major dimension first.
// Complexity: O(rank).
func (v *View[E, C]) Priorities() []int {
	out := make([]int, len(v.priorities))
	copy(out, v.priorities)

	return out
}

// SetPriorities replaces the priority permutation and recomputes strides.
// Stage 1 (Validate): exactly Rank() values (ErrWrongArity), each in
// [0, rank) (ErrInvalidPriorityValue), forming a permutation
// (ErrInvalidPriorityPermutation).
// Stage 2 (Commit): copy the priorities, recompute strides once.
// On error the view is unchanged.
// Complexity: O(rank).
func (v *View[E, C]) SetPriorities(priorities ...int) error {
	if err := indexing.ValidatePriorities(len(v.extents), priorities); err != nil {
		return err
	}
	copy(v.priorities, priorities)
	v.recalculateStrides()

	return nil
}

// SetExtentsAndPriorities updates both atomically: either both commit
// and strides are recomputed exactly once, or neither change persists.
// A priorities failure after a valid extents list must not leave the
// tentative extents observable; validating both lists before any commit
// guarantees exactly that.
// Complexity: O(rank).
func (v *View[E, C]) SetExtentsAndPriorities(extents, priorities []int) error {
	if err := v.checkExtents(extents); err != nil {
		return err
	}
	if err := indexing.ValidatePriorities(len(v.extents), priorities); err != nil {
		return err
	}
	copy(v.extents, extents)
	copy(v.priorities, priorities)
	v.recalculateStrides()

	return nil
}

// UseRowMajorOrder sets the identity priority permutation: dimension 0
// most-major (C-style nested-array layout).
// Complexity: O(rank).
func (v *View[E, C]) UseRowMajorOrder() {
	copy(v.priorities, indexing.IdentityOrder(len(v.extents)))
	v.recalculateStrides()
}

// UseColumnMajorOrder sets the reversed priority permutation: the last
// dimension most-major.
// Complexity: O(rank).
func (v *View[E, C]) UseColumnMajorOrder() {
	copy(v.priorities, indexing.ReversedOrder(len(v.extents)))
	v.recalculateStrides()
}

// Swap exchanges the backing container and all shape state with another
// view of identical type.
// Complexity: O(1).
func (v *View[E, C]) Swap(other *View[E, C]) {
	v.c, other.c = other.c, v.c
	v.extents, other.extents = other.extents, v.extents
	v.priorities, other.priorities = other.priorities, v.priorities
	v.strides, other.strides = other.strides, v.strides
}

// Offset maps an index tuple to its linear container position under the
// current strides, unchecked. Exposed so callers reconciling
// RequiredSize against Size can inspect the mapping directly.
// Complexity: O(rank).
func (v *View[E, C]) Offset(indices ...int) int {
	return indexing.Offset(v.strides, indices)
}

// Ref returns a reference to the element addressed by the index tuple,
// unchecked: arity, per-dimension bounds, and the computed offset lying
// inside the container are all caller obligations.
// Complexity: O(rank) plus the container's Ref.
func (v *View[E, C]) Ref(indices ...int) *E {
	return v.c.Ref(indexing.Offset(v.strides, indices))
}

// Get returns the element value at the index tuple, unchecked.
// Complexity: as Ref.
func (v *View[E, C]) Get(indices ...int) E {
	return *v.Ref(indices...)
}

// At returns a reference to the element at the index tuple, validated
// against the current extents: ErrWrongArity unless exactly Rank()
// indices, ErrIndexOutOfRange when any index is negative or ≥ its
// extent. The check is against extents, not the container's physical
// size — a shape larger than the container still defers that mismatch
// to the caller.
// Complexity: O(rank).
func (v *View[E, C]) At(indices ...int) (*E, error) {
	off, err := indexing.CheckedOffset(v.extents, v.strides, indices)
	if err != nil {
		return nil, err
	}

	return v.c.Ref(off), nil
}

// Set assigns value at the index tuple, validated as in At.
// Complexity: O(rank).
func (v *View[E, C]) Set(value E, indices ...int) error {
	el, err := v.At(indices...)
	if err != nil {
		return err
	}
	*el = value

	return nil
}

// checkExtents validates a prospective extents list without committing.
func (v *View[E, C]) checkExtents(extents []int) error {
	if len(extents) != len(v.extents) {
		return ErrWrongArity
	}
	_, err := indexing.ValidateExtents(extents)

	return err
}

// recalculateStrides refreshes the stride cache from extents+priorities.
func (v *View[E, C]) recalculateStrides() {
	v.strides = indexing.Strides(v.extents, v.priorities)
}
