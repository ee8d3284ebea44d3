package level

import (
	"math"
	"math/rand"

	"labyrinth/pkg/engine/maze"
	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/levelgen"
)

// Kind identifies what is spawned at a planned site
type Kind int

const (
	Player Kind = iota
	Portal
	Turret
	Avoider
	Bouncer
	Monster
)

func (k Kind) String() string {
	switch k {
	case Player:
		return "player"
	case Portal:
		return "portal"
	case Turret:
		return "turret"
	case Avoider:
		return "avoider"
	case Bouncer:
		return "bouncer"
	case Monster:
		return "monster"
	default:
		return "unknown"
	}
}

// Position is a point in world units
type Position struct {
	X, Y, Z float64
}

// Spawn is one planned entity placement
type Spawn struct {
	Kind     Kind
	Cell     world.Vec
	Position Position
	Facing   world.Vec // unit direction the entity initially looks along
}

// Level is a built maze plus everything placed in it
type Level struct {
	Config   Config
	maze     *maze.Maze
	start    maze.Dig
	end      maze.Dig
	spawns   []Spawn
	attempts int
}

// Build decorates a maze for cfg and turns the placements into a spawn plan.
// Panics if cfg is invalid or the decorator gives up.
func Build(cfg Config, rng *rand.Rand) *Level {
	return BuildWith(cfg, rng, nil)
}

// BuildWith is Build with a sink for rejected attempts
func BuildWith(cfg Config, rng *rand.Rand, logf func(format string, args ...any)) *Level {
	r := cfg.Recipe()
	r.Logf = logf
	d := levelgen.NewKruskalDecorated(rng, r)

	l := &Level{
		Config:   cfg,
		start:    d.StartDig(),
		end:      d.EndDig(),
		attempts: d.Attempts(),
	}
	l.spawns = l.plan(d)
	m := d.TakeMaze()
	l.maze = &m
	return l
}

func (l *Level) plan(d *levelgen.KruskalDecorated) []Spawn {
	spawns := []Spawn{
		l.spawn(Player, d.StartCell(), d.StartDig().Direction.Neg()),
		l.spawn(Portal, d.EndOpening(), d.EndDig().Direction),
	}
	for _, c := range d.TurretCells() {
		spawns = append(spawns, l.spawn(Turret, c, world.Vec{}))
	}
	for i, c := range d.EntityCells() {
		kind := Monster
		switch {
		case i < l.Config.Avoiders:
			kind = Avoider
		case i < l.Config.Avoiders+l.Config.Bouncers:
			kind = Bouncer
		}
		spawns = append(spawns, l.spawn(kind, c, world.Vec{}))
	}
	return spawns
}

func (l *Level) spawn(kind Kind, cell, facing world.Vec) Spawn {
	return Spawn{Kind: kind, Cell: cell, Position: l.ToWorld(cell), Facing: facing}
}

// Maze returns the level geometry
func (l *Level) Maze() *maze.Maze {
	return l.maze
}

// Dim returns the grid dimension
func (l *Level) Dim() int {
	return l.maze.Dim()
}

// StartDig returns the entrance the player comes in through
func (l *Level) StartDig() maze.Dig {
	return l.start
}

// EndDig returns the exit entrance
func (l *Level) EndDig() maze.Dig {
	return l.end
}

// Attempts returns how many builds the decorator needed
func (l *Level) Attempts() int {
	return l.attempts
}

// Spawns returns the spawn plan: player, portal, turrets, then entities
func (l *Level) Spawns() []Spawn {
	return l.spawns
}

// SpawnsOf returns the planned spawns of one kind
func (l *Level) SpawnsOf(kind Kind) []Spawn {
	var out []Spawn
	for _, s := range l.spawns {
		if s.Kind == kind {
			out = append(out, s)
		}
	}
	return out
}

// ToWorld converts a cell to its centre in world units. A 2D grid lies on
// the ground plane: its second axis maps to Z.
func (l *Level) ToWorld(cell world.Vec) Position {
	return cellPosition(cell, l.Config.Scale)
}

// CellAt returns the cell containing a world position
func (l *Level) CellAt(p Position) world.Vec {
	s := l.Config.Scale
	round := func(f float64) int { return int(math.Round(f / s)) }
	if l.Dim() == 2 {
		return world.V2(round(p.X), round(p.Z))
	}
	return world.V3(round(p.X), round(p.Y), round(p.Z))
}

// FindPath finds the cheapest route between two world positions
func (l *Level) FindPath(from, to Position) (maze.Path, bool) {
	return l.maze.FindPath(l.CellAt(from), l.CellAt(to))
}

// FreeInSquare returns the open cells within radius of center
func (l *Level) FreeInSquare(center world.Vec, radius int) []world.Vec {
	return l.maze.FreeInSquare(center, radius)
}

// RandomFree returns a uniformly chosen open cell
func (l *Level) RandomFree(rng *rand.Rand) (world.Vec, bool) {
	return l.maze.RandomFree(rng)
}

// RespawnNear picks a free cell within radius of center, preferring cells
// that are not next to a corridor
func (l *Level) RespawnNear(rng *rand.Rand, center world.Vec, radius int) (world.Vec, bool) {
	free := l.maze.FreeInSquare(center, radius)
	if len(free) == 0 {
		return world.Vec{}, false
	}
	var preferred []world.Vec
	for _, c := range free {
		if !l.maze.IsNeighbouringCorridor(c) {
			preferred = append(preferred, c)
		}
	}
	if len(preferred) > 0 {
		return preferred[rng.Intn(len(preferred))], true
	}
	return free[rng.Intn(len(free))], true
}

// Sight returns the open cells a spawn can see within maze.SightRadius
func (l *Level) Sight(s Spawn) []world.Vec {
	return l.maze.Visible(s.Cell, maze.SightRadius)
}

// CanSee reports whether there is a clear line between two world positions
func (l *Level) CanSee(from, to Position) bool {
	return l.maze.LineOfSight(l.CellAt(from), l.CellAt(to))
}
