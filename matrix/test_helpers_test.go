// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by unit tests and benchmarks.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvgrid/matrix"
)

// seqInit is the canonical fixture initializer: f(r,c) = r*cols + c.
func seqInit(cols int) func(r, c int) int {
	return func(r, c int) int { return r*cols + c }
}

// mustSeq ALLOCATES an r×c int matrix holding 0..r*c-1 row-major, or fails the test.
func mustSeq(tb testing.TB, r, c int) *matrix.Matrix[int] {
	tb.Helper()
	m, err := matrix.New(r, c, seqInit(c))
	if err != nil {
		tb.Fatalf("New(%d,%d): %v", r, c, err)
	}

	return m
}

// mustZeros ALLOCATES an r×c zero matrix of T, or fails the test.
func mustZeros[T any](tb testing.TB, r, c int) *matrix.Matrix[T] {
	tb.Helper()
	m, err := matrix.Zeros[T](r, c)
	if err != nil {
		tb.Fatalf("Zeros(%d,%d): %v", r, c, err)
	}

	return m
}

// collect drains m.All() into a slice.
func collect[T any](m *matrix.Matrix[T]) []T {
	out := make([]T, 0, m.Len())
	for v := range m.All() {
		out = append(out, v)
	}

	return out
}

// viaAt builds the expected row-major sequence using only At.
func viaAt[T any](tb testing.TB, m *matrix.Matrix[T]) []T {
	tb.Helper()
	out := make([]T, 0, m.Len())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				tb.Fatalf("At(%d,%d): %v", i, j, err)
			}
			out = append(out, v)
		}
	}

	return out
}
