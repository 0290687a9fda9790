package gridgraph

import (
	"container/list"

	"github.com/katalvlaran/lvgrid/matrix"
)

// unreached marks cells the 0-1 BFS has not relaxed yet.
const unreached = int(^uint(0) >> 1)

// ExpandIsland computes the cheapest bridge between two islands returned by
// ConnectedComponents: every water cell (value < LandThreshold) converted on
// the way costs 1, walking over existing land is free.
//
// The result is the bridge as row-major cell indices, from a cell of srcComp
// to the first reached cell of dstComp (both land cells included), plus the
// number of converted water cells.
//
// Steps:
//  1. Validate component indices (ErrComponentIndex).
//  2. Seed a 0-1 BFS with every srcComp cell at distance 0.
//  3. Pop from the deque front; free moves go to the front, paid moves to the back.
//  4. Stop at the first dstComp cell; ErrNoPath if the deque drains first.
//
// Complexity: O(W·H·d) time, O(W·H) memory for the distance matrix and
// predecessor links.
func (gg *GridGraph) ExpandIsland(srcComp, dstComp int) (path []int, cost int, err error) {
	comps := gg.ConnectedComponents()
	if !validComponent(srcComp, len(comps)) || !validComponent(dstComp, len(comps)) {
		return nil, 0, ErrComponentIndex
	}

	goal := make(map[int]bool, len(comps[dstComp]))
	for _, i := range comps[dstComp] {
		goal[i] = true
	}

	// Distances live in a matrix shaped like the terrain: dist.At(y, x).
	dist, err := matrix.Filled(gg.Height, gg.Width, unreached)
	if err != nil {
		return nil, 0, err
	}
	prev := make([]int, gg.Width*gg.Height)
	for i := range prev {
		prev[i] = -1
	}

	dq := list.New()
	for _, i := range comps[srcComp] {
		x, y := gg.Coordinate(i)
		_ = dist.Set(y, x, 0) // component cells are in range by construction
		dq.PushBack(i)
	}

	for dq.Len() > 0 {
		u := dq.Remove(dq.Front()).(int)
		if goal[u] {
			return backtrack(prev, u), gg.distAt(dist, u), nil
		}
		du := gg.distAt(dist, u)
		ux, uy := gg.Coordinate(u)
		for _, off := range gg.neighborOffsets {
			vx, vy := ux+off[0], uy+off[1]
			if !gg.InBounds(vx, vy) {
				continue
			}
			step := 1
			if gg.isLand(vx, vy) {
				step = 0
			}
			dv, _ := dist.At(vy, vx) // InBounds checked above
			if du+step >= dv {
				continue
			}
			_ = dist.Set(vy, vx, du+step) // InBounds checked above
			v := gg.index(vx, vy)
			prev[v] = u
			if step == 0 {
				dq.PushFront(v)
			} else {
				dq.PushBack(v)
			}
		}
	}

	return nil, 0, ErrNoPath
}

// BridgeCells converts a path of row-major indices into matrix cells.
func (gg *GridGraph) BridgeCells(path []int) []matrix.Cell {
	out := make([]matrix.Cell, len(path))
	for k, i := range path {
		x, y := gg.Coordinate(i)
		out[k] = matrix.Cell{Row: y, Col: x}
	}

	return out
}

func validComponent(i, n int) bool { return i >= 0 && i < n }

// distAt reads the distance recorded for row-major index i.
// i always comes off the deque, so it is a cell of the grid and At cannot fail.
func (gg *GridGraph) distAt(dist *matrix.Matrix[int], i int) int {
	x, y := gg.Coordinate(i)
	d, _ := dist.At(y, x)

	return d
}

// backtrack follows predecessor links from end to a seed cell.
func backtrack(prev []int, end int) []int {
	var rev []int
	for at := end; at >= 0; at = prev[at] {
		rev = append(rev, at)
	}
	for l, r := 0, len(rev)-1; l < r; l, r = l+1, r-1 {
		rev[l], rev[r] = rev[r], rev[l]
	}

	return rev
}
