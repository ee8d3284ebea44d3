package maze

import (
	"github.com/zyedidia/generic/heap"

	"labyrinth/pkg/engine/world"
)

// Path is an ordered cell sequence from start to goal with its total cost
type Path struct {
	Cells []world.Vec
	Cost  int
}

// Len returns the number of cells on the path
func (p Path) Len() int {
	return len(p.Cells)
}

type pathNode struct {
	cell world.Vec
	g, f int
}

// heuristic is the smallest per-axis distance times the axis cost, which
// never overestimates the remaining cost
func heuristic(a, b world.Vec) int {
	d := a.Sub(b).Abs()
	best := d.At(0)
	for axis := 1; axis < d.Dim(); axis++ {
		if d.At(axis) < best {
			best = d.At(axis)
		}
	}
	return best * CostAxis
}

// FindPath runs A* over the openings graph from start to goal.
// It returns false when either end is a wall or goal is unreachable.
func (m *Maze) FindPath(start, goal world.Vec) (Path, bool) {
	if m.IsWall(start) || m.IsWall(goal) {
		return Path{}, false
	}
	if start == goal {
		return Path{Cells: []world.Vec{start}}, true
	}

	open := heap.New[pathNode](func(a, b pathNode) bool {
		if a.f != b.f {
			return a.f < b.f
		}
		return a.g > b.g
	})
	gScore := map[world.Vec]int{start: 0}
	cameFrom := make(map[world.Vec]world.Vec)
	closed := make(map[world.Vec]bool)

	open.Push(pathNode{cell: start, g: 0, f: heuristic(start, goal)})

	for open.Size() > 0 {
		current, _ := open.Pop()
		if closed[current.cell] {
			continue
		}
		if current.cell == goal {
			return Path{Cells: reconstruct(cameFrom, start, goal), Cost: current.g}, true
		}
		closed[current.cell] = true

		for _, o := range m.openings {
			if !m.Usable(current.cell, o) {
				continue
			}
			next := current.cell.Add(o.Offset)
			if closed[next] {
				continue
			}
			g := current.g + o.Cost
			if old, seen := gScore[next]; seen && g >= old {
				continue
			}
			gScore[next] = g
			cameFrom[next] = current.cell
			open.Push(pathNode{cell: next, g: g, f: g + heuristic(next, goal)})
		}
	}

	return Path{}, false
}

func reconstruct(cameFrom map[world.Vec]world.Vec, start, goal world.Vec) []world.Vec {
	var rev []world.Vec
	for c := goal; c != start; c = cameFrom[c] {
		rev = append(rev, c)
	}
	rev = append(rev, start)

	cells := make([]world.Vec, len(rev))
	for i, c := range rev {
		cells[len(rev)-1-i] = c
	}
	return cells
}
