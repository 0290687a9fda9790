// Package matrix offers a generic, fixed-dimension 2-D container.
//
// The matrix package provides:
//
//   - Matrix[T], a rectangular row-major store built only through New (or the
//     facades Zeros, Filled and FromRows, which delegate to it).
//   - Bounds-checked At/Set that return *IndexError (errors.Is ErrOutOfRange)
//     instead of panicking or clamping.
//   - Row/Col snapshots, the OnEach visitor, and row-major iteration through
//     All (iter.Seq), Cells (iter.Seq2) and the explicit Iterator.
//   - Text rendering: String() writes each cell as "~ v ~", one row per line;
//     Format accepts RenderOption values for other layouts.
//
// Operations is the implemented capability set. Advanced names an arithmetic
// surface (Plus, Minus, Cross, Dot, Transpose, Inverse) that nothing implements.
//
// Dimensions never change after construction. A Matrix is not safe for
// concurrent mutation.
//
//	m, _ := matrix.New(2, 3, func(r, c int) int { return r*3 + c })
//	v, _ := m.At(1, 2)         // 5
//	for x := range m.All() {}  // 0 1 2 3 4 5
package matrix
