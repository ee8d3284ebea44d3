package levelgen

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"labyrinth/pkg/engine/maze"
	"labyrinth/pkg/engine/world"
)

// placement tracks which cells are still available while sites are chosen
type placement struct {
	m        *maze.Maze
	start    world.Vec
	excluded mapset.Set[world.Vec]
	chosen   []world.Vec
}

func newPlacement(m *maze.Maze, start world.Vec, excluded ...world.Vec) *placement {
	p := &placement{
		m:        m,
		start:    start,
		excluded: mapset.New[world.Vec](),
	}
	for _, c := range excluded {
		p.excluded.Put(c)
	}
	return p
}

// NearStart reports whether cell is within the start clearance
func NearStart(start, cell world.Vec) bool {
	return start.DistSq(cell) <= StartClearanceSq
}

// free reports whether cell may still receive a site: open, clear of the
// start, not excluded and not touching an already chosen site
func (p *placement) free(cell world.Vec) bool {
	if p.m.IsWall(cell) || NearStart(p.start, cell) || p.excluded.Has(cell) {
		return false
	}
	for _, c := range p.chosen {
		if c.Chebyshev(cell) <= 1 {
			return false
		}
	}
	return true
}

func (p *placement) take(cell world.Vec) {
	p.excluded.Put(cell)
	p.chosen = append(p.chosen, cell)
}

// pickTurrets chooses at most one turret per room, each backing onto a wall
func (p *placement) pickTurrets(rng *rand.Rand, n int) []world.Vec {
	if n == 0 {
		return nil
	}
	rooms := p.m.ComputeZones(maze.Room)
	rng.Shuffle(len(rooms), func(i, j int) {
		rooms[i], rooms[j] = rooms[j], rooms[i]
	})

	var turrets []world.Vec
	for _, room := range rooms {
		if len(turrets) == n {
			break
		}
		var candidates []world.Vec
		for _, c := range room {
			if p.free(c) && p.m.IsNeighbouringWall(c) {
				candidates = append(candidates, c)
			}
		}
		if len(candidates) == 0 {
			continue
		}
		pick := candidates[rng.Intn(len(candidates))]
		p.take(pick)
		turrets = append(turrets, pick)
	}
	return turrets
}

// pickEntities samples n open cells without replacement
func (p *placement) pickEntities(rng *rand.Rand, n int) []world.Vec {
	if n == 0 {
		return nil
	}
	cells := p.m.OpenCells()
	rng.Shuffle(len(cells), func(i, j int) {
		cells[i], cells[j] = cells[j], cells[i]
	})

	var entities []world.Vec
	for _, c := range cells {
		if len(entities) == n {
			break
		}
		if !p.free(c) {
			continue
		}
		p.take(c)
		entities = append(entities, c)
	}
	return entities
}
