package gridgraph

import "errors"

// Sentinel errors; compare with errors.Is.
var (
	// ErrEmptyGrid is returned for a nil terrain or one with zero rows or columns.
	ErrEmptyGrid = errors.New("gridgraph: terrain has no cells")
	// ErrNonRectangular is returned by From2D for ragged rows.
	ErrNonRectangular = errors.New("gridgraph: terrain rows differ in length")
	// ErrComponentIndex is returned when an island index is not in ConnectedComponents().
	ErrComponentIndex = errors.New("gridgraph: island index out of range")
	// ErrNoPath is returned when no bridge joins the two islands.
	ErrNoPath = errors.New("gridgraph: no bridge between islands")
)
