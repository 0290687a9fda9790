// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for index and shape checks.
//  - Validators return plain sentinels; public call sites wrap them uniformly.
//
// All checks are pure, deterministic and allocate nothing.

package matrix

// inRange reports whether 0 <= i < n.
func inRange(i, n int) bool {
	return i >= 0 && i < n
}

// validateRect checks that every row of src has the same length and returns
// the resulting (rows, cols). An empty src is a legal 0×0 shape.
//
// Errors: ErrBadShape on ragged input.
// Complexity: O(len(src)).
func validateRect[T any](src [][]T) (rows, cols int, err error) {
	rows = len(src)
	if rows == 0 {
		return 0, 0, nil
	}
	cols = len(src[0])
	for i := 1; i < rows; i++ {
		if len(src[i]) != cols {
			return 0, 0, ErrBadShape
		}
	}

	return rows, cols, nil
}

// checkRow validates a row index for Row-style accessors.
// Only the row is checked; a matrix with zero columns still has valid rows.
func (m *Matrix[T]) checkRow(method string, row int) error {
	if !inRange(row, m.r) {
		return &IndexError{Op: method, Axis: AxisRow, Row: row, Rows: m.r, Cols: m.c}
	}

	return nil
}

// checkCol validates a column index for Col-style accessors.
func (m *Matrix[T]) checkCol(method string, col int) error {
	if !inRange(col, m.c) {
		return &IndexError{Op: method, Axis: AxisCol, Col: col, Rows: m.r, Cols: m.c}
	}

	return nil
}
