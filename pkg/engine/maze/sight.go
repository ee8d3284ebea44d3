package maze

import "labyrinth/pkg/engine/world"

// SightRadius is the default view distance in cells (Chebyshev)
const SightRadius = 4

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

// LineOfSight reports whether the Bresenham line from one cell to another
// crosses only open cells. The starting cell itself is not checked.
func (m *Maze) LineOfSight(from, to world.Vec) bool {
	d := to.Sub(from)
	ad := d.Abs()

	// Step along the longest axis
	major := 0
	for axis := 1; axis < d.Dim(); axis++ {
		if ad.At(axis) > ad.At(major) {
			major = axis
		}
	}
	n := ad.At(major)
	if n == 0 {
		return true
	}

	errs := make([]int, d.Dim())
	for axis := range errs {
		errs[axis] = 2*ad.At(axis) - n
	}

	cur := from
	for step := 0; step < n; step++ {
		cur = cur.With(major, cur.At(major)+sign(d.At(major)))
		for axis := 0; axis < d.Dim(); axis++ {
			if axis == major {
				continue
			}
			if errs[axis] > 0 {
				cur = cur.With(axis, cur.At(axis)+sign(d.At(axis)))
				errs[axis] -= 2 * n
			}
			errs[axis] += 2 * ad.At(axis)
		}
		if m.IsWall(cur) {
			return false
		}
	}
	return true
}

// Visible returns the open cells within radius of center that have a clear
// line of sight from it. A wall sees nothing.
func (m *Maze) Visible(center world.Vec, radius int) []world.Vec {
	if m.IsWall(center) {
		return nil
	}
	var cells []world.Vec
	for _, c := range m.FreeInSquare(center, radius) {
		if m.LineOfSight(center, c) {
			cells = append(cells, c)
		}
	}
	return cells
}
