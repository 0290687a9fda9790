// SPDX-License-Identifier: MIT

package converters

import (
	"fmt"

	"github.com/katalvlaran/lvgrid/matrix"
)

// ToSlices copies m into freshly allocated rows, one slice per row.
// The result shares nothing with m. Errors from m.Row are wrapped and returned.
// Complexity: O(r*c).
func ToSlices[T any](m matrix.Operations[T]) ([][]T, error) {
	out := make([][]T, m.Rows())
	for i := range out {
		row, err := m.Row(i)
		if err != nil {
			return nil, fmt.Errorf("converters.ToSlices: row %d: %w", i, err)
		}
		out[i] = row
	}

	return out, nil
}

// FromSlices builds a matrix from rectangular rows (thin alias of matrix.FromRows).
// Errors: matrix.ErrBadShape on ragged input.
func FromSlices[T any](rows [][]T) (*matrix.Matrix[T], error) {
	return matrix.FromRows(rows)
}
