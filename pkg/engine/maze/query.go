package maze

import (
	"math/rand"

	"labyrinth/pkg/engine/world"
)

// FreeInSquare returns the open cells within radius of center on every axis,
// clipped to the region
func (m *Maze) FreeInSquare(center world.Vec, radius int) []world.Vec {
	if radius < 0 {
		return nil
	}
	lo := world.Clamp(center.AddScalar(-radius), m.size)
	hi := world.Clamp(center.AddScalar(radius), m.size)
	var cells []world.Vec
	world.ForEachInBox(lo, hi, func(c world.Vec) {
		if c.Chebyshev(center) <= radius && m.IsOpen(c) {
			cells = append(cells, c)
		}
	})
	return cells
}

// RandomFree returns a uniformly chosen open cell, or false if there is none
func (m *Maze) RandomFree(rng *rand.Rand) (world.Vec, bool) {
	free := m.OpenCells()
	if len(free) == 0 {
		return world.Vec{}, false
	}
	return free[rng.Intn(len(free))], true
}
