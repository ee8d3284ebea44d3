package level

import "labyrinth/pkg/engine/world"

// Slab is a straight run of wall cells along the first axis, inclusive at
// both ends
type Slab struct {
	Min, Max world.Vec
}

// Len returns the number of cells in the run
func (s Slab) Len() int {
	return s.Max.At(0) - s.Min.At(0) + 1
}

// Bounds returns the world-space box covered by the run, each cell spanning
// scale units centred on its cell position
func (s Slab) Bounds(scale float64) (lo, hi Position) {
	h := scale / 2
	lo = cellPosition(s.Min, scale)
	hi = cellPosition(s.Max, scale)
	lo.X, lo.Z = lo.X-h, lo.Z-h
	hi.X, hi.Z = hi.X+h, hi.Z+h
	if s.Min.Dim() == 3 {
		lo.Y -= h
		hi.Y += h
	} else {
		hi.Y += scale
	}
	return lo, hi
}

func cellPosition(cell world.Vec, scale float64) Position {
	if cell.Dim() == 2 {
		return Position{X: float64(cell.At(0)) * scale, Z: float64(cell.At(1)) * scale}
	}
	return Position{
		X: float64(cell.At(0)) * scale,
		Y: float64(cell.At(1)) * scale,
		Z: float64(cell.At(2)) * scale,
	}
}

// Slabs merges the level's walls into runs along the first axis. Every wall
// cell belongs to exactly one slab.
func (l *Level) Slabs() []Slab {
	size := l.maze.Size()
	var slabs []Slab
	world.ForEachCell(size.With(0, 1), func(base world.Vec) {
		runStart := -1
		for x := 0; x <= size.At(0); x++ {
			wall := x < size.At(0) && l.maze.IsWall(base.With(0, x))
			switch {
			case wall && runStart < 0:
				runStart = x
			case !wall && runStart >= 0:
				slabs = append(slabs, Slab{Min: base.With(0, runStart), Max: base.With(0, x-1)})
				runStart = -1
			}
		}
	})
	return slabs
}
