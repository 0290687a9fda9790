// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set and the typed index error.
// All public operations return these sentinels (possibly wrapped with a method
// tag) and tests MUST match them via errors.Is / errors.As. No public method
// panics on a user-triggered index or shape problem.

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ..." for easy grepping.
// Wrap with fmt.Errorf("ctx: %w", ErrX) at the boundary; callers keep errors.Is.

var (
	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// At/Set/Row/Col MUST return this (inside *IndexError), not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrInvalidDimensions indicates that requested dimensions are negative,
	// or that their product does not fit in an int.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrBadShape is returned when source data is not rectangular (ragged rows).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNotImplemented marks the declared-only arithmetic surface (see Advanced).
	ErrNotImplemented = errors.New("matrix: operation not implemented")
)

// Axis names which index an IndexError refers to.
type Axis int

const (
	// AxisCell means both row and column were checked (At/Set).
	AxisCell Axis = iota
	// AxisRow means only the row index was checked (Row).
	AxisRow
	// AxisCol means only the column index was checked (Col).
	AxisCol
)

// IndexError reports a rejected access together with the offending indices and
// the bounds they were checked against. It unwraps to ErrOutOfRange.
type IndexError struct {
	Op         string // method tag, e.g. "At"
	Axis       Axis   // which indices were validated
	Row, Col   int    // requested coordinates
	Rows, Cols int    // matrix dimensions at the time of the call
}

// Error renders the violation with bounds, e.g.
// "matrix: Matrix.At(2,0): index out of range [rows=2 cols=2]".
func (e *IndexError) Error() string {
	switch e.Axis {
	case AxisRow:
		return fmt.Sprintf("matrix: Matrix.%s(%d): row index out of range [rows=%d]", e.Op, e.Row, e.Rows)
	case AxisCol:
		return fmt.Sprintf("matrix: Matrix.%s(%d): column index out of range [cols=%d]", e.Op, e.Col, e.Cols)
	default:
		return fmt.Sprintf("matrix: Matrix.%s(%d,%d): index out of range [rows=%d cols=%d]",
			e.Op, e.Row, e.Col, e.Rows, e.Cols)
	}
}

// Unwrap lets errors.Is(err, ErrOutOfRange) hold for every IndexError.
func (e *IndexError) Unwrap() error { return ErrOutOfRange }

// matrixErrorf tags a sentinel with the public call site.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
