// SPDX-License-Identifier: MIT

// Package matrix - row-major iteration.
//
// Every iterator here reads through At at yield time, so a Set on a cell
// that has not been visited yet is observed; cells already visited are not
// revisited. Each call to All/Cells/Iter starts a fresh walk at (0,0).
package matrix

import "iter"

// Iterator is a single-pass, row-major cursor over a Matrix.
// It is not safe for use by more than one goroutine.
//
//	it := m.Iter()
//	for it.Next() {
//		fmt.Println(it.Row(), it.Col(), it.Value())
//	}
type Iterator[T any] struct {
	m        *Matrix[T]
	row, col int // coordinates of the current value
	next     int // flat position of the next value
	cur      T
}

// Iter returns a new Iterator positioned before (0,0).
func (m *Matrix[T]) Iter() *Iterator[T] {
	return &Iterator[T]{m: m, row: -1, col: -1}
}

// Next advances to the next cell and reports whether one exists.
// After it returns false the iterator stays exhausted.
func (it *Iterator[T]) Next() bool {
	if it.m.c == 0 || it.next >= it.m.r*it.m.c {
		return false
	}
	it.row, it.col = it.next/it.m.c, it.next%it.m.c
	it.next++
	// Coordinates are in range by construction.
	it.cur, _ = it.m.At(it.row, it.col)

	return true
}

// Value returns the element loaded by the last successful Next.
func (it *Iterator[T]) Value() T { return it.cur }

// Row returns the row of the current element (-1 before the first Next).
func (it *Iterator[T]) Row() int { return it.row }

// Col returns the column of the current element (-1 before the first Next).
func (it *Iterator[T]) Col() int { return it.col }

// All yields every element in row-major order, exactly Rows()*Cols() values
// when drained. Breaking out of the range loop stops the walk.
//
//	for v := range m.All() { ... }
func (m *Matrix[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := m.Iter()
		for it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Cells is All with coordinates.
//
//	for c, v := range m.Cells() { ... c.Row, c.Col ... }
func (m *Matrix[T]) Cells() iter.Seq2[Cell, T] {
	return func(yield func(Cell, T) bool) {
		it := m.Iter()
		for it.Next() {
			if !yield(Cell{Row: it.Row(), Col: it.Col()}, it.Value()) {
				return
			}
		}
	}
}
