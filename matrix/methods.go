// SPDX-License-Identifier: MIT

// Package matrix - derived accessors: row/column snapshots, visitor, rendering.
// Everything here reduces to bounds-checked reads plus the stored dimensions.
package matrix

import (
	"fmt"
	"strings"
)

// Row returns a snapshot copy of row i (len == Cols()), in column order.
// MAIN DESCRIPTION:
//   - Materializes a fresh slice; later Set calls do not show up in it,
//     and writes into the returned slice do not reach the matrix.
//
// Behavior highlights:
//   - Only the row index is validated. For a matrix with zero columns every
//     valid row yields an empty, non-nil slice.
//
// Errors:
//   - *IndexError{Axis: AxisRow} (errors.Is ErrOutOfRange).
//
// Complexity:
//   - Time O(c), Space O(c).
func (m *Matrix[T]) Row(i int) ([]T, error) {
	if err := m.checkRow(ctxRow, i); err != nil {
		return nil, err
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a snapshot copy of column j (len == Rows()), in row order.
// Each element is fetched through At, so the result equals
// [At(0,j), At(1,j), ..., At(Rows()-1,j)].
//
// Errors:
//   - *IndexError{Axis: AxisCol} (errors.Is ErrOutOfRange).
//
// Complexity:
//   - Time O(r), Space O(r).
func (m *Matrix[T]) Col(j int) ([]T, error) {
	if err := m.checkCol(ctxCol, j); err != nil {
		return nil, err
	}
	out := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		v, err := m.At(i, j)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

// OnEach calls fn(i, j, v) once for every cell in row-major order.
// It is a pure side-effect traversal: there is no early stop and no result.
// Use All or Cells with break when a partial walk is needed.
//
// Complexity: O(r*c).
func (m *Matrix[T]) OnEach(fn func(row, col int, v T)) {
	var i, j, base int
	for i = 0; i < m.r; i++ { // rows outer
		base = i * m.c
		for j = 0; j < m.c; j++ { // cols inner
			fn(i, j, m.data[base+j])
		}
	}
}

// String renders the matrix one row per line, each cell as "~ v ~".
// Example for [[1 2] [3 4]]: "~ 1 ~~ 2 ~\n~ 3 ~~ 4 ~\n".
// Complexity: O(r*c).
func (m *Matrix[T]) String() string {
	return m.Format()
}

// Format renders the matrix with the given options applied over the
// String defaults (see options.go).
// Implementation:
//   - Stage 1: resolve options.
//   - Stage 2: iterate rows/cols deterministically into a strings.Builder.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the output.
func (m *Matrix[T]) Format(opts ...RenderOption) string {
	o := gatherRenderOptions(opts...)

	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(o.cellSep)
			}
			b.WriteString(o.open)
			fmt.Fprintf(&b, o.verb, m.data[base+j])
			b.WriteString(o.close)
		}
		b.WriteString(o.rowSep) // every row is terminated
	}

	return b.String()
}
