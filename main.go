package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"labyrinth/pkg/engine/terminal"
	"labyrinth/pkg/game/devtools"
	"labyrinth/pkg/game/level"
	"labyrinth/pkg/game/renderer"
	"labyrinth/pkg/game/state"
)

type options struct {
	configPath string
	dim        int
	size       int
	height     int
	percent    int
	turrets    int
	entities   int
	seed       int64
	levels     int
	layer      int
	dump       string
	showPath   bool
	locales    string
	lang       string
	verbose    bool
}

func parseFlags() options {
	var o options
	flag.StringVar(&o.configPath, "config", "", "level configuration JSON file (overrides the shape flags)")
	flag.IntVar(&o.dim, "dim", 2, "maze dimension, 2 or 3")
	flag.IntVar(&o.size, "size", 0, "side length of the floor plan (odd); 0 keeps the default")
	flag.IntVar(&o.height, "height", 0, "number of layers for 3D mazes (odd); 0 keeps the default")
	flag.IntVar(&o.percent, "percent", -1, "percentage of redundant walls kept; -1 keeps the default")
	flag.IntVar(&o.turrets, "turrets", -1, "number of turrets; -1 keeps the default")
	flag.IntVar(&o.entities, "entities", -1, "number of generic monsters; -1 keeps the default")
	flag.Int64Var(&o.seed, "seed", 0, "random seed; 0 picks one from the clock")
	flag.IntVar(&o.levels, "levels", 1, "number of successive levels to generate")
	flag.IntVar(&o.layer, "layer", -1, "only draw this layer of a 3D maze")
	flag.StringVar(&o.dump, "dump", "", "write a debug dump of the last level to this file")
	flag.BoolVar(&o.showPath, "path", false, "overlay the start to exit route")
	flag.StringVar(&o.locales, "locales", "", "directory holding gettext translations")
	flag.StringVar(&o.lang, "lang", "en_GB", "translation language")
	flag.BoolVar(&o.verbose, "v", false, "log rejected build attempts")
	flag.Parse()
	return o
}

// buildConfig resolves the level configuration from a file or the defaults
// and applies any shape flags given on the command line
func buildConfig(o options) (level.Config, error) {
	if o.configPath != "" {
		return level.LoadConfig(o.configPath)
	}

	var cfg level.Config
	switch o.dim {
	case 2:
		cfg = level.DefaultConfig2D()
		if o.size > 0 {
			cfg.Size = []int{o.size, o.size}
		}
	case 3:
		cfg = level.DefaultConfig3D()
		if o.size > 0 {
			cfg.Size[0], cfg.Size[2] = o.size, o.size
		}
		if o.height > 0 {
			cfg.Size[1] = o.height
		}
	default:
		return cfg, fmt.Errorf("unsupported dimension %d", o.dim)
	}

	if o.percent >= 0 {
		cfg.Percent = o.percent
	}
	if o.turrets >= 0 {
		cfg.Turrets = o.turrets
	}
	if o.entities >= 0 {
		cfg.Entities = o.entities
	}
	return cfg, cfg.Validate()
}

func renderLevel(g *state.Game, o options) {
	l := g.Level
	opts := renderer.DefaultOptions()
	opts.Layer = o.layer

	if o.showPath {
		if p, ok := l.Maze().FindPath(l.StartDig().Cell, l.EndDig().Cell); ok {
			opts.Path = p.Cells
			for _, c := range p.Cells {
				g.Visit(c)
			}
			opts.Visited = g.Visited
			g.AddMessage(gotext.Get("Route: %d cells, cost %d", p.Len(), p.Cost))
		} else {
			g.AddMessage(gotext.Get("No route from start to exit"))
		}
	}

	width := terminal.GetWidth()
	out := renderer.Render(l, opts)
	if !terminal.IsTerminal() {
		width = 0
	}
	fmt.Print(terminal.Clip(out, width))
	fmt.Print(terminal.Clip(renderer.MessagesPane(g.Messages, terminal.GetWidth()), width))
}

func main() {
	o := parseFlags()

	if o.locales != "" {
		gotext.Configure(o.locales, o.lang, "default")
	}
	if !terminal.IsTerminal() {
		color.Disable()
	}

	cfg, err := buildConfig(o)
	if err != nil {
		log.Fatalf("invalid level configuration: %v", err)
	}
	if o.levels < 1 {
		log.Fatalf("levels must be at least 1, got %d", o.levels)
	}

	seed := o.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("building %q with seed %d", cfg.Name, seed)

	var logf func(string, ...any)
	if o.verbose {
		logf = log.Printf
	}
	g := state.NewGameWith(cfg, rand.New(rand.NewSource(seed)), logf)

	for {
		renderLevel(g, o)
		if g.Depth >= o.levels {
			break
		}
		g.ClearMessages()
		g.AdvanceLevel()
	}

	if o.dump != "" {
		path, err := devtools.DumpLevelToFile(g.Level, o.dump)
		if err != nil {
			log.Fatalf("dump failed: %v", err)
		}
		log.Printf("level dumped to %s", path)
	}
}
