// Package converters provides two-way adapters between matrix.Matrix and
// other in-memory representations:
//   - plain [][]T row slices (ToSlices / FromSlices)
//   - gonum.org/v1/gonum/mat (Gonum / FromGonum) for float64 data
//
// Adapters never compute: they copy or expose cells as they are. Gonum
// returns a live, read-only view; every other adapter produces a snapshot.
package converters
