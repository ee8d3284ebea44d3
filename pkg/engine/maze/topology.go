package maze

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"labyrinth/pkg/engine/world"
)

// translate moves every wall by off and resizes the region, dropping walls
// that fall outside it
func (m *Maze) translate(off world.Vec, size world.Vec) {
	moved := mapset.New[world.Vec]()
	m.walls.Each(func(w world.Vec) {
		n := w.Add(off)
		if n.Within(size) {
			moved.Put(n)
		}
	})
	m.walls = moved
	m.size = size
}

// Reduce discards the outer n-thick ring of the region: every wall shifts
// inward by n and the size shrinks by 2n on every axis.
// Panics if the resulting size is not positive.
func (m *Maze) Reduce(n int) {
	size := m.size.AddScalar(-2 * n)
	if !size.Positive() {
		panic(fmt.Sprintf("maze: reduce(%d) of size %v leaves no region", n, m.size))
	}
	m.translate(world.Splat(m.Dim(), -n), size)
}

// Extend grows the size by 2n on every axis and shifts every wall outward by n.
// The added border is left open.
func (m *Maze) Extend(n int) {
	if n < 0 {
		panic(fmt.Sprintf("maze: extend by negative amount %d", n))
	}
	m.translate(world.Splat(m.Dim(), n), m.size.AddScalar(2*n))
}

// Circle walls every cell touching an axis minimum or maximum
func (m *Maze) Circle() {
	world.ForEachCell(m.size, func(c world.Vec) {
		if c.OnBoundary(m.size) {
			m.walls.Put(c)
		}
	})
}

// Fill walls every cell of a zone
func (m *Maze) Fill(zone Zone) {
	for _, c := range zone {
		m.SetWall(c)
	}
}

// FillSmallest keeps the largest connected open region and fills every other
// one. It returns the number of cells filled.
func (m *Maze) FillSmallest() int {
	zones := m.ComputeZones(Any)
	if len(zones) < 2 {
		return 0
	}

	largest := 0
	for i, z := range zones {
		if len(z) > len(zones[largest]) {
			largest = i
		}
	}

	filled := 0
	for i, z := range zones {
		if i == largest {
			continue
		}
		m.Fill(z)
		filled += len(z)
	}
	return filled
}

// isDeadEnd reports whether cell has at most one open axis neighbour
func (m *Maze) isDeadEnd(cell world.Vec) bool {
	return m.OpenNeighbours(cell) <= 1
}

// FillDeadCorridors fills every corridor zone that ends in a dead end.
// Through-corridors between rooms are kept. It reports whether anything
// was filled; callers loop until it returns false.
func (m *Maze) FillDeadCorridors() bool {
	changed := false
	for _, z := range m.ComputeZones(Corridor) {
		dead := false
		for _, c := range z {
			if m.isDeadEnd(c) {
				dead = true
				break
			}
		}
		if dead {
			m.Fill(z)
			changed = true
		}
	}
	return changed
}

// FillAllDeadCorridors runs FillDeadCorridors to its fixed point and returns
// the number of passes that changed the maze
func (m *Maze) FillAllDeadCorridors() int {
	passes := 0
	for m.FillDeadCorridors() {
		passes++
	}
	return passes
}
