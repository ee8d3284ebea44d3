package levelgen

import (
	"fmt"
	"math/rand"

	"labyrinth/pkg/engine/maze"
	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/generator"
)

// KruskalDecorated is a Kruskal maze together with the cells chosen for the
// level's start, exit, turrets and generic entities
type KruskalDecorated struct {
	maze *maze.Maze

	startCell    world.Vec
	startOpening world.Vec
	endCell      world.Vec
	endOpening   world.Vec
	turretCells  []world.Vec
	entityCells  []world.Vec

	startDig maze.Dig
	endDig   maze.Dig
	attempts int
}

// Canonicalize runs the topology pass every decorated maze goes through:
// the result is connected, free of dead ends and sealed by a wall ring
func Canonicalize(m *maze.Maze) {
	m.Reduce(1)
	m.Circle()
	m.FillSmallest()
	m.FillAllDeadCorridors()
	m.Extend(1)
	m.Circle()
}

// NewKruskalDecorated rebuilds the maze until every placement in the recipe
// can be satisfied. Panics on an invalid recipe or when MaxAttempts builds in
// a row fail.
func NewKruskalDecorated(rng *rand.Rand, r Recipe) *KruskalDecorated {
	r.validate()
	limit := r.maxAttempts()

	for attempt := 1; attempt <= limit; attempt++ {
		d, reason := build(rng, r)
		if d != nil {
			d.attempts = attempt
			return d
		}
		r.logf("levelgen: attempt %d rejected: %s", attempt, reason)
	}
	panic(fmt.Sprintf("levelgen: no valid level for %v after %d attempts", r, limit))
}

// build runs one construction attempt; on failure it returns nil and the reason
func build(rng *rand.Rand, r Recipe) (*KruskalDecorated, string) {
	m := generator.Kruskal{Size: r.Size, Percent: r.Percent, Bug: r.Bug, Scale: r.Scale}.Generate(rng)
	Canonicalize(m)

	digs := m.DigCells(rng, 2, r.accept())
	if len(digs) < 2 {
		return nil, fmt.Sprintf("dug %d of 2 entrances", len(digs))
	}

	d := &KruskalDecorated{
		maze:         m,
		startDig:     digs[0],
		endDig:       digs[1],
		startCell:    digs[0].Cell,
		startOpening: digs[0].Outside(),
		endCell:      digs[1].Cell,
		endOpening:   digs[1].Outside(),
	}

	p := newPlacement(m, d.startCell, d.startCell, d.startOpening, d.endCell, d.endOpening)

	d.turretCells = p.pickTurrets(rng, r.Turrets)
	if len(d.turretCells) < r.Turrets {
		return nil, fmt.Sprintf("placed %d of %d turrets", len(d.turretCells), r.Turrets)
	}

	d.entityCells = p.pickEntities(rng, r.Entities)
	if len(d.entityCells) < r.Entities {
		return nil, fmt.Sprintf("placed %d of %d entities", len(d.entityCells), r.Entities)
	}

	return d, ""
}

// Maze returns the decorated maze
func (d *KruskalDecorated) Maze() *maze.Maze {
	return d.maze
}

// TakeMaze hands the maze out by value and leaves the decorator without one
func (d *KruskalDecorated) TakeMaze() maze.Maze {
	m := *d.maze
	d.maze = nil
	return m
}

// StartCell returns the entrance the player starts in
func (d *KruskalDecorated) StartCell() world.Vec {
	return d.startCell
}

// StartOpening returns the cell just outside the maze that the start faces
func (d *KruskalDecorated) StartOpening() world.Vec {
	return d.startOpening
}

// EndCell returns the exit entrance
func (d *KruskalDecorated) EndCell() world.Vec {
	return d.endCell
}

// EndOpening returns the cell just outside the exit, where the portal goes
func (d *KruskalDecorated) EndOpening() world.Vec {
	return d.endOpening
}

// StartDig returns the full start entrance
func (d *KruskalDecorated) StartDig() maze.Dig {
	return d.startDig
}

// EndDig returns the full exit entrance
func (d *KruskalDecorated) EndDig() maze.Dig {
	return d.endDig
}

// TurretCells returns the turret sites
func (d *KruskalDecorated) TurretCells() []world.Vec {
	return d.turretCells
}

// EntityCells returns the generic entity sites
func (d *KruskalDecorated) EntityCells() []world.Vec {
	return d.entityCells
}

// Attempts returns how many builds it took to satisfy the recipe
func (d *KruskalDecorated) Attempts() int {
	return d.attempts
}
