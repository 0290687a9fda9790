// SPDX-License-Identifier: MIT

package converters

import (
	"fmt"

	"github.com/katalvlaran/lvgrid/matrix"
	"gonum.org/v1/gonum/mat"
)

// GonumView exposes a float64 matrix through gonum's mat.Matrix interface.
// It holds a reference, not a copy: Set calls on the source are visible.
// At follows gonum's convention and panics with mat.ErrIndexOutOfRange.
type GonumView struct {
	src matrix.Operations[float64]
}

var _ mat.Matrix = GonumView{}

// Gonum wraps m as a read-only mat.Matrix.
func Gonum(m matrix.Operations[float64]) GonumView {
	return GonumView{src: m}
}

// Dims returns the dimensions of the underlying matrix.
func (v GonumView) Dims() (r, c int) {
	return v.src.Rows(), v.src.Cols()
}

// At returns the element at (i, j).
func (v GonumView) At(i, j int) float64 {
	x, err := v.src.At(i, j)
	if err != nil {
		panic(mat.ErrIndexOutOfRange)
	}

	return x
}

// T returns an implicit transpose; no data is moved.
func (v GonumView) T() mat.Matrix {
	return mat.Transpose{Matrix: v}
}

// FromGonum snapshots any mat.Matrix into a new matrix.Matrix[float64],
// reading every cell once in row-major order.
//
// Errors:
//   - matrix.ErrInvalidDimensions when a is nil (there is no shape to copy)
//     or when a reports dimensions matrix.New rejects.
//
// A typed nil such as (*mat.Dense)(nil) is a precondition violation: gonum
// panics inside its Dims method before FromGonum can inspect it.
//
// Complexity: O(r*c).
func FromGonum(a mat.Matrix) (*matrix.Matrix[float64], error) {
	if a == nil {
		return nil, fmt.Errorf("converters.FromGonum: nil source: %w", matrix.ErrInvalidDimensions)
	}
	r, c := a.Dims()
	m, err := matrix.New(r, c, a.At)
	if err != nil {
		return nil, fmt.Errorf("converters.FromGonum: %w", err)
	}

	return m, nil
}
