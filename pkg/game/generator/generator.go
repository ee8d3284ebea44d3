package generator

import (
	"math/rand"

	"labyrinth/pkg/engine/maze"
)

// MazeGenerator is an interface for maze generation algorithms
type MazeGenerator interface {
	Generate(rng *rand.Rand) *maze.Maze
	Name() string
}

var _ MazeGenerator = Kruskal{}
