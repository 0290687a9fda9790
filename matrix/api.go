// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Thin entry points for common construction tasks.
//   - No logic duplication: every constructor delegates to New, so the
//     initializer contract (once per cell, row-major) holds everywhere.

package matrix

// Zeros returns a rows×cols matrix holding the zero value of T.
// Complexity: O(r*c).
func Zeros[T any](rows, cols int) (*Matrix[T], error) {
	return New[T](rows, cols, nil)
}

// Filled returns a rows×cols matrix with every cell set to v.
// Complexity: O(r*c).
func Filled[T any](rows, cols int, v T) (*Matrix[T], error) {
	return New(rows, cols, func(int, int) T { return v })
}

// FromRows copies a rectangular [][]T into a new matrix (snapshot; src is
// not retained). An empty src yields a 0×0 matrix.
//
// Errors: ErrBadShape (wrapped with "matrix.FromRows") on ragged rows.
// Complexity: O(r*c).
func FromRows[T any](src [][]T) (*Matrix[T], error) {
	rows, cols, err := validateRect(src)
	if err != nil {
		return nil, matrixErrorf("matrix."+ctxRows, err)
	}

	return New(rows, cols, func(i, j int) T { return src[i][j] })
}

// AsAdvanced probes m for the arithmetic capability.
// No type in this module implements Advanced, so for every matrix built here
// the result is ErrNotImplemented (wrapped with "matrix.AsAdvanced").
func AsAdvanced[T any](m Operations[T]) (Advanced[T], error) {
	if a, ok := m.(Advanced[T]); ok {
		return a, nil
	}

	return nil, matrixErrorf("matrix."+ctxProbe, ErrNotImplemented)
}
