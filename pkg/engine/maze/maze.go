// Package maze holds the wall set of a generated level together with the
// topology operators, zone analysis, digging and pathfinding that run over it.
package maze

import (
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"labyrinth/pkg/engine/world"
)

// Opening is one traversal option out of a cell. Travel along Offset is legal
// only if every cell in Requires (relative to the origin) is open, which keeps
// diagonal moves from cutting wall corners.
type Opening struct {
	Offset   world.Vec
	Cost     int
	Requires []world.Vec
}

// Traversal costs by number of axes moved along
const (
	CostAxis      = 10
	CostDiagonal2 = 15
	CostDiagonal3 = 17
)

var costByAxes = [...]int{0, CostAxis, CostDiagonal2, CostDiagonal3}

// Openings returns the opening table for a dimension: every offset in
// {-1,0,1}^dim except zero, each requiring all of its non-empty component
// sub-combinations to be open.
func Openings(dim int) []Opening {
	var openings []Opening
	world.ForEachCell(world.Splat(dim, 3), func(c world.Vec) {
		off := c.AddScalar(-1)
		if off.IsZero() {
			return
		}
		openings = append(openings, Opening{
			Offset:   off,
			Cost:     costByAxes[off.NonZero()],
			Requires: subOffsets(off),
		})
	})
	// Axis-aligned openings first so cheap moves are tried first
	sort.SliceStable(openings, func(i, j int) bool {
		return openings[i].Cost < openings[j].Cost
	})
	return openings
}

// subOffsets returns every non-empty restriction of off to a subset of its
// non-zero axes, ending with off itself.
func subOffsets(off world.Vec) []world.Vec {
	var axes []int
	for axis := 0; axis < off.Dim(); axis++ {
		if off.At(axis) != 0 {
			axes = append(axes, axis)
		}
	}
	var subs []world.Vec
	for mask := 1; mask < 1<<len(axes); mask++ {
		sub := world.Splat(off.Dim(), 0)
		for bit, axis := range axes {
			if mask&(1<<bit) != 0 {
				sub = sub.With(axis, off.At(axis))
			}
		}
		subs = append(subs, sub)
	}
	sort.SliceStable(subs, func(i, j int) bool {
		return subs[i].NonZero() < subs[j].NonZero()
	})
	return subs
}

// Maze is a set of wall cells over the region [0,size).
// A cell is open iff it lies inside the region and is not a wall.
type Maze struct {
	size       world.Vec
	walls      mapset.Set[world.Vec]
	neighbours []world.Vec
	openings   []Opening
	scale      float64
}

// New creates an empty (fully open) maze. Panics if size is not positive.
func New(size world.Vec, scale float64) *Maze {
	if !size.Positive() {
		panic(fmt.Sprintf("maze: size must be positive on every axis, got %v", size))
	}
	return &Maze{
		size:       size,
		walls:      mapset.New[world.Vec](),
		neighbours: world.Units(size.Dim()),
		openings:   Openings(size.Dim()),
		scale:      scale,
	}
}

// FromWalls creates a maze with the given walls. Walls outside the region panic.
func FromWalls(size world.Vec, scale float64, walls []world.Vec) *Maze {
	m := New(size, scale)
	for _, w := range walls {
		m.SetWall(w)
	}
	return m
}

// Size returns the exclusive upper bound of the region
func (m *Maze) Size() world.Vec {
	return m.size
}

// Dim returns the grid dimension
func (m *Maze) Dim() int {
	return m.size.Dim()
}

// Scale returns the world units per cell
func (m *Maze) Scale() float64 {
	return m.scale
}

// Neighbours returns the axis-aligned neighbour offsets
func (m *Maze) Neighbours() []world.Vec {
	return m.neighbours
}

// OpeningTable returns the opening table owned by this maze
func (m *Maze) OpeningTable() []Opening {
	return m.openings
}

// InBounds reports whether cell lies inside the region
func (m *Maze) InBounds(cell world.Vec) bool {
	return cell.Within(m.size)
}

// IsWall reports whether cell is a wall. Cells outside the region read as walls.
func (m *Maze) IsWall(cell world.Vec) bool {
	return !m.InBounds(cell) || m.walls.Has(cell)
}

// IsOpen reports whether cell is inside the region and not a wall
func (m *Maze) IsOpen(cell world.Vec) bool {
	return !m.IsWall(cell)
}

// SetWall marks cell as a wall. Panics if cell is outside the region.
func (m *Maze) SetWall(cell world.Vec) {
	if !m.InBounds(cell) {
		panic(fmt.Sprintf("maze: wall %v outside region %v", cell, m.size))
	}
	m.walls.Put(cell)
}

// Open removes the wall at cell, if any
func (m *Maze) Open(cell world.Vec) {
	m.walls.Remove(cell)
}

// WallCount returns the number of wall cells
func (m *Maze) WallCount() int {
	return m.walls.Size()
}

// Walls returns the wall cells in lexicographic order
func (m *Maze) Walls() []world.Vec {
	walls := make([]world.Vec, 0, m.walls.Size())
	m.walls.Each(func(w world.Vec) {
		walls = append(walls, w)
	})
	sort.Slice(walls, func(i, j int) bool {
		return walls[i].Less(walls[j])
	})
	return walls
}

// OpenCells returns every open cell in lexicographic order
func (m *Maze) OpenCells() []world.Vec {
	var cells []world.Vec
	m.ForEachOpen(func(c world.Vec) {
		cells = append(cells, c)
	})
	return cells
}

// ForEachOpen calls fn for every open cell in lexicographic order
func (m *Maze) ForEachOpen(fn func(cell world.Vec)) {
	world.ForEachCell(m.size, func(c world.Vec) {
		if !m.walls.Has(c) {
			fn(c)
		}
	})
}

// Usable reports whether the opening can be taken from cell
func (m *Maze) Usable(cell world.Vec, o Opening) bool {
	for _, r := range o.Requires {
		if m.IsWall(cell.Add(r)) {
			return false
		}
	}
	return true
}

// Opened returns how many openings of cell are currently usable
func (m *Maze) Opened(cell world.Vec) int {
	n := 0
	for _, o := range m.openings {
		if m.Usable(cell, o) {
			n++
		}
	}
	return n
}

// OpenNeighbours returns how many axis-aligned neighbours of cell are open
func (m *Maze) OpenNeighbours(cell world.Vec) int {
	n := 0
	for _, d := range m.neighbours {
		if m.IsOpen(cell.Add(d)) {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the maze
func (m *Maze) Clone() *Maze {
	c := New(m.size, m.scale)
	m.walls.Each(func(w world.Vec) {
		c.walls.Put(w)
	})
	return c
}

// Equal reports whether both mazes have the same size and walls
func (m *Maze) Equal(o *Maze) bool {
	if m.size != o.size || m.walls.Size() != o.walls.Size() {
		return false
	}
	same := true
	m.walls.Each(func(w world.Vec) {
		if !o.walls.Has(w) {
			same = false
		}
	})
	return same
}
