// Package ndarray is your toolkit for viewing flat Go storage as
// multi-dimensional arrays — fixed-shape buffers, reshapeable views, and
// the index arithmetic underneath both.
//
// 🚀 What is ndarray?
//
//	A small, pure-Go library that brings together:
//		• Fixed arrays: owned row-major buffers with a shape set at creation
//		• Shaped views: re-shapeable, re-orderable windows over any linear container
//		• Indexing engine: strides, offsets, odometer advance, validation
//		• Checked & unchecked access: pick safety or speed per call site
//		• Row-major and column-major layouts, plus arbitrary dimension priorities
//
// ✨ Why choose ndarray?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Honest errors – sentinel errors for every misuse, matched with errors.Is
//   - Pure Go – no cgo, no hidden deps
//   - Generic – any element type, any Container implementation
//
// Under the hood, everything is organized under three subpackages:
//
//	indexing/ — stride computation, offset mapping, coordinate advance, validation
//	fixed/    — Array: an owned buffer whose shape is fixed for its lifetime
//	shaped/   — View: runtime extents & priorities over external linear storage
//
// Quick ASCII example:
//
//	    offsets  0 1 2 3 4 5      (0,0)─(0,1)─(0,2)
//	                          ⇒       2×3
//	                              (1,0)─(1,1)─(1,2)
//
//	a flat slice of six elements read as a 2×3 row-major table.
//
// Dive into the subpackage docs for validation rules, traversal order
// guarantees, and worked examples.
//
//	go get github.com/katalvlaran/ndarray
package ndarray
