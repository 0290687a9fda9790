package gridgraph

import (
	"errors"

	"github.com/katalvlaran/lvgrid/matrix"
)

// GridGraph treats a 2D integer grid as a graph. It is immutable once built.
// Width and Height define dimensions; the cell store is a private clone of
// the input matrix, so later writes to the caller's matrix are not seen.
type GridGraph struct {
	Width, Height   int
	Conn            Connectivity
	LandThreshold   int
	cells           *matrix.Matrix[int]
	neighborOffsets [][2]int
}

// NewGridGraph constructs a GridGraph from a non-empty matrix.
// Returns ErrEmptyGrid if values is nil or has no rows or no columns.
// Algorithmic complexity: O(W×H) time and memory for the clone.
func NewGridGraph(values *matrix.Matrix[int], opts GridOptions) (*GridGraph, error) {
	if values == nil || values.Rows() == 0 || values.Cols() == 0 {
		return nil, ErrEmptyGrid
	}
	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}

	return &GridGraph{
		Width:           values.Cols(),
		Height:          values.Rows(),
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		cells:           values.Clone(),
		neighborOffsets: offsets,
	}, nil
}

// From2D builds a GridGraph from a rectangular [][]int using the default
// LandThreshold and the given connectivity.
// Returns ErrEmptyGrid or ErrNonRectangular.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	m, err := matrix.FromRows(values)
	if err != nil {
		if errors.Is(err, matrix.ErrBadShape) {
			return nil, ErrNonRectangular
		}
		return nil, err
	}
	opts := DefaultGridOptions()
	opts.Conn = conn

	return NewGridGraph(m, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the precomputed (dx,dy) neighbor offsets.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Value returns the original cell value at (x,y).
// Errors: matrix.ErrOutOfRange when (x,y) is outside the grid.
func (gg *GridGraph) Value(x, y int) (int, error) {
	return gg.cells.At(y, x)
}

// Cells returns a snapshot of the cell store.
func (gg *GridGraph) Cells() *matrix.Matrix[int] {
	return gg.cells.Clone()
}

// isLand reports whether (x,y) is in bounds and at or above LandThreshold.
func (gg *GridGraph) isLand(x, y int) bool {
	v, err := gg.cells.At(y, x)
	return err == nil && v >= gg.LandThreshold
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
