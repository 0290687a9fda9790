package gridgraph

// ConnectedComponents finds all contiguous regions (“islands”) of land cells
// (value ≥ LandThreshold), according to gg.Conn connectivity.
// Components are discovered in row-major order of their first cell; each
// component is a slice of row-major cell indices in BFS order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]int

	for c, v := range gg.cells.Cells() {
		if v < gg.LandThreshold {
			continue // water
		}
		i0 := gg.index(c.Col, c.Row)
		if seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			ux, uy := gg.Coordinate(queue[qi])
			for _, d := range gg.neighborOffsets {
				vx, vy := ux+d[0], uy+d[1]
				if !gg.isLand(vx, vy) {
					continue
				}
				vi := gg.index(vx, vy)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}
