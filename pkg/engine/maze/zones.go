package maze

import (
	"github.com/zyedidia/generic/mapset"

	"labyrinth/pkg/engine/world"
)

// Zone is a set of connected open cells, in no particular order
type Zone []world.Vec

// ZoneFilter decides zone membership from a cell's opened count
type ZoneFilter func(opened int) bool

// CorridorOpenness is the largest opened count still classified as corridor
const CorridorOpenness = 2

// Predefined zone filters
var (
	Any      ZoneFilter = func(int) bool { return true }
	Corridor ZoneFilter = func(opened int) bool { return opened <= CorridorOpenness }
	Room     ZoneFilter = func(opened int) bool { return opened > CorridorOpenness }
)

// ComputeZones flood-fills the open cells into zones. A cell belongs to a
// zone only if filter accepts its opened count; member cells are joined when
// axis-adjacent. Cells rejected by the filter belong to no zone but do not
// stop zones from being seeded on their far side.
func (m *Maze) ComputeZones(filter ZoneFilter) []Zone {
	var zones []Zone
	visited := mapset.New[world.Vec]()
	member := func(c world.Vec) bool {
		return m.IsOpen(c) && filter(m.Opened(c))
	}

	world.ForEachCell(m.size, func(seed world.Vec) {
		if visited.Has(seed) || m.walls.Has(seed) {
			return
		}
		visited.Put(seed)
		if !filter(m.Opened(seed)) {
			return
		}

		zone := Zone{seed}
		queue := []world.Vec{seed}
		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]

			for _, d := range m.neighbours {
				n := current.Add(d)
				if visited.Has(n) || !member(n) {
					continue
				}
				visited.Put(n)
				zone = append(zone, n)
				queue = append(queue, n)
			}
		}
		zones = append(zones, zone)
	})

	return zones
}

// ZoneOf returns the always-true zone containing cell, or nil if cell is a wall
func (m *Maze) ZoneOf(cell world.Vec) Zone {
	if m.IsWall(cell) {
		return nil
	}
	visited := mapset.New[world.Vec]()
	visited.Put(cell)
	zone := Zone{cell}
	queue := []world.Vec{cell}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, d := range m.neighbours {
			n := current.Add(d)
			if visited.Has(n) || m.IsWall(n) {
				continue
			}
			visited.Put(n)
			zone = append(zone, n)
			queue = append(queue, n)
		}
	}
	return zone
}

// IsNeighbouringWall reports whether any axis neighbour of cell is a wall
func (m *Maze) IsNeighbouringWall(cell world.Vec) bool {
	for _, d := range m.neighbours {
		if m.IsWall(cell.Add(d)) {
			return true
		}
	}
	return false
}

// IsNeighbouringCorridor reports whether any open axis neighbour of cell is
// classified as corridor
func (m *Maze) IsNeighbouringCorridor(cell world.Vec) bool {
	for _, d := range m.neighbours {
		n := cell.Add(d)
		if m.IsOpen(n) && Corridor(m.Opened(n)) {
			return true
		}
	}
	return false
}
