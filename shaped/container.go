// Package shaped: the linear-storage collaborator contract.

package shaped

// Container is the boundary contract for the backing linear storage of a
// View: random-access element references over a known element count.
// The view never resizes the container; keeping its length in step with
// the shape's RequiredSize is the owner's business.
type Container[E any] interface {
	// Len returns the number of stored elements.
	Len() int

	// Ref returns a reference to the i-th element, 0 ≤ i < Len().
	Ref(i int) *E
}

// Slice is the default Container: a plain Go slice.
type Slice[E any] []E

// Len returns the number of stored elements.
// Complexity: O(1).
func (s Slice[E]) Len() int { return len(s) }

// Ref returns a reference to the i-th element.
// Complexity: O(1).
func (s Slice[E]) Ref(i int) *E { return &s[i] }
