// Package lvgrid is an in-memory toolkit for fixed-size 2-D containers and
// the grid algorithms built on them.
//
// What is inside:
//
//	matrix/     - generic Matrix[T]: bounds-checked At/Set, Row/Col snapshots,
//	              row-major iteration (All, Cells, Iterator), "~ v ~" rendering
//	converters/ - [][]T and gonum mat.Matrix adapters for Matrix values
//	gridgraph/  - islands and minimal bridges over a Matrix[int] terrain
//	examples/   - runnable island-bridging demo
//
// Guarantees:
//
//   - Dimensions are fixed at construction; there is no resize.
//   - Out-of-range access always returns an error, never clamps or panics.
//   - Row/Col return snapshots; iteration reads live values.
//   - Pure Go, no cgo. Not safe for concurrent mutation.
//
// Quick example:
//
//	m, _ := matrix.New(2, 3, func(r, c int) int { return r*3 + c })
//	fmt.Print(m) // ~ 0 ~~ 1 ~~ 2 ~
//	             // ~ 3 ~~ 4 ~~ 5 ~
package lvgrid
