// Package levelgen decorates generated mazes with the cells a level needs:
// where the player starts, where the exit portal goes, and where turrets and
// other entities may spawn.
package levelgen

import (
	"fmt"

	"labyrinth/pkg/engine/maze"
	"labyrinth/pkg/engine/world"
)

// Construction limits
const (
	DefaultMaxAttempts = 1000
	MaxTunnel          = 4  // longest entrance tunnel the default recipes accept
	StartClearanceSq   = 25 // cells within this squared distance of the start stay empty
	VerticalAxis       = 1  // world up axis for 3D mazes
)

// Recipe describes one decorated maze build
type Recipe struct {
	Size     world.Vec
	Percent  int
	Bug      world.Vec
	Scale    float64
	Turrets  int
	Entities int

	// MaxAttempts caps full rebuilds; 0 means DefaultMaxAttempts
	MaxAttempts int

	// Accept filters entrance candidates; nil means the dimension default
	Accept func(maze.Dig) bool

	// Logf receives one line per rejected attempt; nil is silent
	Logf func(format string, args ...any)
}

// Recipe2D returns a square 2D recipe
func Recipe2D(size, percent, turrets, entities int) Recipe {
	return Recipe{
		Size:     world.V2(size, size),
		Percent:  percent,
		Scale:    1,
		Turrets:  turrets,
		Entities: entities,
	}
}

// Recipe3D returns a 3D recipe with a square floor plan and the given height
func Recipe3D(size, height, percent, turrets, entities int) Recipe {
	return Recipe{
		Size:     world.V3(size, height, size),
		Percent:  percent,
		Scale:    1,
		Turrets:  turrets,
		Entities: entities,
	}
}

func (r Recipe) String() string {
	return fmt.Sprintf("size=%v percent=%d bug=%v turrets=%d entities=%d",
		r.Size, r.Percent, r.Bug, r.Turrets, r.Entities)
}

func (r Recipe) validate() {
	if r.Turrets < 0 || r.Entities < 0 {
		panic(fmt.Sprintf("levelgen: negative counts in recipe %v", r))
	}
	if r.MaxAttempts < 0 {
		panic(fmt.Sprintf("levelgen: negative attempt cap %d", r.MaxAttempts))
	}
	if r.Size.Dim() == 0 || !r.Size.Positive() {
		panic(fmt.Sprintf("levelgen: invalid size in recipe %v", r))
	}
}

func (r Recipe) maxAttempts() int {
	if r.MaxAttempts == 0 {
		return DefaultMaxAttempts
	}
	return r.MaxAttempts
}

func (r Recipe) accept() func(maze.Dig) bool {
	if r.Accept != nil {
		return r.Accept
	}
	if r.Size.Dim() == 3 {
		return func(d maze.Dig) bool {
			return len(d.Tunnel) <= MaxTunnel && world.Axis(d.Direction) != VerticalAxis
		}
	}
	return func(d maze.Dig) bool {
		return len(d.Tunnel) <= MaxTunnel
	}
}

func (r Recipe) logf(format string, args ...any) {
	if r.Logf != nil {
		r.Logf(format, args...)
	}
}
