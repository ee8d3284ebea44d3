// Package level turns level configuration into a decorated maze, a spawn plan
// and static wall geometry, and answers gameplay queries against the result.
package level

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/levelgen"
)

// MinSide is the smallest side length that still leaves an interior once the
// maze has been canonicalized
const MinSide = 7

// Config describes one level as authored in level data files
type Config struct {
	Name     string  `json:"name"`
	Size     []int   `json:"size"`
	Percent  int     `json:"percent"`
	Bug      []int   `json:"bug,omitempty"`
	Scale    float64 `json:"scale"`
	Turrets  int     `json:"turrets"`
	Entities int     `json:"entities"`
	Avoiders int     `json:"avoiders"`
	Bouncers int     `json:"bouncers"`
}

// DefaultConfig2D returns the standard flat level
func DefaultConfig2D() Config {
	return Config{
		Name:     "Courtyard",
		Size:     []int{21, 21},
		Percent:  20,
		Scale:    4,
		Turrets:  3,
		Entities: 3,
		Avoiders: 1,
		Bouncers: 1,
	}
}

// DefaultConfig3D returns the standard multi-storey level
func DefaultConfig3D() Config {
	return Config{
		Name:     "Tower",
		Size:     []int{15, 9, 15},
		Percent:  20,
		Scale:    4,
		Turrets:  3,
		Entities: 4,
		Avoiders: 1,
		Bouncers: 1,
	}
}

// LoadConfig loads a level configuration from a JSON file
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read level file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse level JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid level %q: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration against what the generator accepts
func (c Config) Validate() error {
	if len(c.Size) < 2 || len(c.Size) > world.MaxDim {
		return fmt.Errorf("size must have 2 or 3 components, got %d", len(c.Size))
	}
	for axis, n := range c.Size {
		if n < MinSide || n%2 == 0 {
			return fmt.Errorf("size[%d] = %d must be odd and at least %d", axis, n, MinSide)
		}
	}
	if len(c.Bug) != 0 && len(c.Bug) != len(c.Size) {
		return fmt.Errorf("bug has %d components, size has %d", len(c.Bug), len(c.Size))
	}
	if c.Percent < 0 || c.Percent > 100 {
		return fmt.Errorf("percent %d outside 0..100", c.Percent)
	}
	if c.Scale <= 0 {
		return errors.New("scale must be positive")
	}
	if c.Turrets < 0 || c.Entities < 0 || c.Avoiders < 0 || c.Bouncers < 0 {
		return errors.New("counts must not be negative")
	}
	return nil
}

// Dim returns the grid dimension of the configured maze
func (c Config) Dim() int {
	return len(c.Size)
}

// MonsterCount returns how many generic entity cells the level needs
func (c Config) MonsterCount() int {
	return c.Entities + c.Avoiders + c.Bouncers
}

// Recipe converts the configuration into a decorator recipe.
// Panics if the configuration is invalid.
func (c Config) Recipe() levelgen.Recipe {
	if err := c.Validate(); err != nil {
		panic(fmt.Sprintf("level %q: %v", c.Name, err))
	}
	r := levelgen.Recipe{
		Size:     world.FromSlice(c.Size),
		Percent:  c.Percent,
		Scale:    c.Scale,
		Turrets:  c.Turrets,
		Entities: c.MonsterCount(),
	}
	if len(c.Bug) != 0 {
		r.Bug = world.FromSlice(c.Bug)
	}
	return r
}

// ForDepth grows the floor plan with depth, two cells per level on each
// horizontal axis up to a cap, and adds one turret every other level
func (c Config) ForDepth(depth int) Config {
	const maxSide = 41
	out := c
	out.Size = append([]int(nil), c.Size...)
	for axis := range out.Size {
		if len(out.Size) == 3 && axis == levelgen.VerticalAxis {
			continue
		}
		side := out.Size[axis] + 2*(depth-1)
		if side > maxSide {
			side = maxSide
		}
		if side < out.Size[axis] {
			side = out.Size[axis]
		}
		out.Size[axis] = side
	}
	if depth > 1 {
		out.Turrets += (depth - 1) / 2
	}
	return out
}
