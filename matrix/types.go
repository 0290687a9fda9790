// SPDX-License-Identifier: MIT

// Package matrix: capability interfaces and small domain types.
// This file contains ONLY contracts; the concrete store lives in matrix.go.
package matrix

import "iter"

// Cell is a (row, col) coordinate inside a matrix.
type Cell struct {
	Row int // zero-based row index
	Col int // zero-based column index
}

// Operations is the minimal capability set of a fixed-size 2-D container.
// *Matrix[T] implements it; helpers in other packages should accept it.
//
// Complexity notes: all methods are O(1) except Row/Col (O(cols)/O(rows))
// and All (O(rows*cols) when fully drained).
type Operations[T any] interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// Row returns a snapshot copy of row i.
	// Returns ErrOutOfRange if i<0 or i>=Rows().
	Row(i int) ([]T, error)

	// Col returns a snapshot copy of column j.
	// Returns ErrOutOfRange if j<0 or j>=Cols().
	Col(j int) ([]T, error)

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (T, error)

	// Set assigns v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v T) error

	// All walks every element in row-major order.
	All() iter.Seq[T]
}

// Advanced declares an arithmetic surface on top of Operations.
//
// No type in this module implements Advanced, and *Matrix[T] deliberately does
// not satisfy it. The semantics of Cross (elementwise or matrix product?) and
// Inverse (in place or new result?) are undefined, so the methods exist only
// as a named boundary. Callers probing for it should treat a failed type
// assertion as ErrNotImplemented.
type Advanced[T any] interface {
	Operations[T]

	Plus(other Operations[T]) error
	Minus(other Operations[T]) error
	Cross(other Operations[T]) error
	Dot(other Operations[T]) error
	Transpose(other Operations[T]) error
	Inverse(other Operations[T]) error
}
