// SPDX-License-Identifier: MIT

// Package matrix - generic row-major storage & safe accessors.
//
// Purpose:
//   - Provide a flat row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep determinism: fixed loop orders, initializer called once per cell.
//
// Complexity quicksheet:
//   - New: O(r*c) initializer calls; At/Set: O(1); Clone: O(r*c).
package matrix

import (
	"fmt"
	"math"
)

// ---------- error context tags ----------

const (
	ctxNew   = "New"
	ctxAt    = "At"
	ctxSet   = "Set"
	ctxRow   = "Row"
	ctxCol   = "Col"
	ctxRows  = "FromRows"
	ctxProbe = "AsAdvanced"
)

// Matrix is a fixed-size rectangular container of T values.
//   - r,c hold dimensions (rows, cols), fixed after construction.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// A Matrix is not safe for concurrent mutation; guard it externally if shared.
type Matrix[T any] struct {
	r, c int // row and column counts (>= 0)
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Operations[int] = (*Matrix[int])(nil)
	_ fmt.Stringer    = (*Matrix[int])(nil)
)

// New creates a rows×cols matrix and fills it from init.
// MAIN DESCRIPTION:
//   - The single construction path; every facade in api.go delegates here.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0 and that rows*cols fits in an int;
//     else ErrInvalidDimensions.
//   - Stage 2: allocate the flat buffer.
//   - Stage 3: call init(i, j) exactly once per cell, row-major.
//
// Behavior highlights:
//   - Zero-sized shapes (0×N, N×0) are legal and produce an empty buffer.
//   - A nil init leaves every cell at the zero value of T.
//
// Errors:
//   - ErrInvalidDimensions (wrapped with "matrix.New").
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T any](rows, cols int, init func(row, col int) T) (*Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf("matrix."+ctxNew, ErrInvalidDimensions)
	}
	if cols != 0 && rows > math.MaxInt/cols { // cell count would wrap
		return nil, matrixErrorf("matrix."+ctxNew, ErrInvalidDimensions)
	}
	m := &Matrix[T]{r: rows, c: cols, data: make([]T, rows*cols)}
	if init == nil {
		return m, nil
	}

	var i, j, base int
	for i = 0; i < rows; i++ { // fixed i→j order
		base = i * cols
		for j = 0; j < cols; j++ {
			m.data[base+j] = init(i, j)
		}
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Matrix[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Matrix[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix[T]) Shape() (rows, cols int) { return m.r, m.c }

// Len returns the number of cells (Rows()*Cols()).
func (m *Matrix[T]) Len() int { return len(m.data) }

// indexOf bounds-checks (row,col) and computes the row-major offset.
// Returns a ready *IndexError tagged with method on violation.
// Complexity: O(1).
func (m *Matrix[T]) indexOf(method string, row, col int) (int, error) {
	if !inRange(row, m.r) || !inRange(col, m.c) {
		return 0, &IndexError{Op: method, Axis: AxisCell, Row: row, Col: col, Rows: m.r, Cols: m.c}
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col).
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: load from flat buffer.
//
// Errors:
//   - *IndexError (errors.Is ErrOutOfRange) when out of bounds; the zero T is returned.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[off], nil
}

// Set stores v at (row, col). Nothing else is touched.
// Errors:
//   - *IndexError (errors.Is ErrOutOfRange) for invalid indices.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[off] = v // direct flat write

	return nil
}

// Clone returns a deep copy with its own buffer.
// Mutations on either side are not visible on the other.
// Complexity: O(r*c).
func (m *Matrix[T]) Clone() *Matrix[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Matrix[T]{r: m.r, c: m.c, data: cp}
}
