// SPDX-License-Identifier: MIT

// Package shaped: functional construction options for View.
// Options only record the requested shape; New validates and applies
// them with exactly the same rules (and sentinel errors) as the
// corresponding setters, after the initial flat-vector shape is in
// place. Last-writer-wins across repeated options of the same kind.

package shaped

// traversal order requested by an option; resolved against the rank
// inside New.
type orderKind int

const (
	orderUnset orderKind = iota
	orderRowMajor
	orderColumnMajor
)

// Option mutates construction settings. Safe to apply repeatedly.
type Option func(*options)

// options stores the requested shape overrides until New resolves them.
type options struct {
	extents    []int
	priorities []int
	order      orderKind
}

// WithExtents requests initial extents, validated like SetExtents
// (exactly Rank() positive values whose product fits in int).
func WithExtents(extents ...int) Option {
	return func(o *options) { o.extents = extents }
}

// WithPriorities requests an initial priority permutation, validated
// like SetPriorities. Overrides any earlier order option.
func WithPriorities(priorities ...int) Option {
	return func(o *options) {
		o.priorities = priorities
		o.order = orderUnset
	}
}

// WithRowMajorOrder requests the identity priority permutation.
// Overrides any earlier WithPriorities.
func WithRowMajorOrder() Option {
	return func(o *options) {
		o.order = orderRowMajor
		o.priorities = nil
	}
}

// WithColumnMajorOrder requests the reversed priority permutation.
// Overrides any earlier WithPriorities.
func WithColumnMajorOrder() Option {
	return func(o *options) {
		o.order = orderColumnMajor
		o.priorities = nil
	}
}

// applyOptions resolves gathered options against the freshly
// flat-initialized view, reusing the public setters so validation and
// error identity stay in one place.
func (v *View[E, C]) applyOptions(opts []Option) error {
	var o options
	for _, set := range opts {
		set(&o)
	}

	switch o.order {
	case orderRowMajor:
		v.UseRowMajorOrder()
	case orderColumnMajor:
		v.UseColumnMajorOrder()
	case orderUnset:
		// keep the flat-init row-major permutation or apply the request
	}

	if o.extents != nil && o.priorities != nil {
		return v.SetExtentsAndPriorities(o.extents, o.priorities)
	}
	if o.extents != nil {
		return v.SetExtents(o.extents...)
	}
	if o.priorities != nil {
		return v.SetPriorities(o.priorities...)
	}

	return nil
}
