package maze

import (
	"math/rand"

	"labyrinth/pkg/engine/world"
)

// Dig is an entrance carved through the enclosing wall. The tunnel runs in a
// straight line from an open cell out to the region edge.
type Dig struct {
	Cell      world.Vec   // outermost dug cell, on the region boundary
	Direction world.Vec   // unit offset pointing out of the region
	Tunnel    []world.Vec // dug cells from the inside out; the last one is Cell
}

// Inner returns the open cell the tunnel starts from
func (d Dig) Inner() world.Vec {
	return d.Tunnel[0].Sub(d.Direction)
}

// Outside returns the cell just outside the region that the entrance faces
func (d Dig) Outside() world.Vec {
	return d.Cell.Add(d.Direction)
}

// AcceptAny accepts every dig candidate
func AcceptAny(Dig) bool { return true }

// digCandidates returns every straight tunnel from an open cell to the region
// edge that only crosses walls
func (m *Maze) digCandidates(accept func(Dig) bool) []Dig {
	var out []Dig
	m.ForEachOpen(func(c world.Vec) {
		for _, d := range m.neighbours {
			var tunnel []world.Vec
			solid := true
			for p := c.Add(d); m.InBounds(p); p = p.Add(d) {
				if !m.walls.Has(p) {
					solid = false
					break
				}
				tunnel = append(tunnel, p)
			}
			if !solid || len(tunnel) == 0 {
				continue
			}
			dig := Dig{Cell: tunnel[len(tunnel)-1], Direction: d, Tunnel: tunnel}
			if accept(dig) {
				out = append(out, dig)
			}
		}
	})
	return out
}

// DigCells carves up to n entrances, picking candidates at random. Tunnels of
// two entrances never touch each other or start from the same cell. Fewer than
// n entries are returned when candidates run out.
func (m *Maze) DigCells(rng *rand.Rand, n int, accept func(Dig) bool) []Dig {
	if n <= 0 {
		return nil
	}
	candidates := m.digCandidates(accept)
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	var dug []Dig
	for _, c := range candidates {
		if len(dug) == n {
			break
		}
		if conflicts(c, dug) {
			continue
		}
		for _, t := range c.Tunnel {
			m.Open(t)
		}
		dug = append(dug, c)
	}
	return dug
}

func conflicts(c Dig, dug []Dig) bool {
	for _, d := range dug {
		if c.Inner() == d.Inner() {
			return true
		}
		for _, a := range c.Tunnel {
			for _, b := range d.Tunnel {
				if a.Chebyshev(b) <= 1 {
					return true
				}
			}
		}
	}
	return false
}
