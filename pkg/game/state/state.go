package state

import (
	"math/rand"

	"github.com/leonelquinteros/gotext"
	"github.com/zyedidia/generic/mapset"

	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/level"
)

const maxMessages = 5

// Game holds the run in progress: the current level's geometry and spawn
// plan, the depth reached and the message log
type Game struct {
	Level *level.Level

	// Base is the depth-1 configuration; deeper levels derive from it
	Base level.Config

	Depth int

	Messages []string

	// Visited holds the cells reported through Visit on the current level
	Visited mapset.Set[world.Vec]

	// Logf receives rejected build attempts; nil is silent
	Logf func(format string, args ...any)

	rng *rand.Rand
}

// NewGame creates a run and builds its first level
func NewGame(base level.Config, rng *rand.Rand) *Game {
	return NewGameWith(base, rng, nil)
}

// NewGameWith is NewGame with a sink for rejected build attempts
func NewGameWith(base level.Config, rng *rand.Rand, logf func(format string, args ...any)) *Game {
	g := &Game{
		Base:     base,
		Messages: make([]string, 0),
		Logf:     logf,
		rng:      rng,
	}
	g.AdvanceLevel()
	return g
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// Visit records that the player has stood in cell
func (g *Game) Visit(cell world.Vec) {
	g.Visited.Put(cell)
}

// HasVisited reports whether the player has stood in cell on this level
func (g *Game) HasVisited(cell world.Vec) bool {
	return g.Visited.Has(cell)
}

// AdvanceLevel increments the depth, replaces the level with a freshly built
// one and resets level-specific state
func (g *Game) AdvanceLevel() {
	g.Depth++
	cfg := g.Base.ForDepth(g.Depth)
	g.Level = level.BuildWith(cfg, g.rng, g.Logf)
	g.Visited = mapset.New[world.Vec]()

	start := g.Level.StartDig().Cell
	g.Visit(start)
	g.AddMessage(gotext.Get("Depth %d: %s (%d attempts)", g.Depth, cfg.Name, g.Level.Attempts()))
}
