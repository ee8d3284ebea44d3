// Package renderer draws levels as coloured character maps for the terminal.
package renderer

import (
	"fmt"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
	"github.com/zyedidia/generic/mapset"

	"labyrinth/pkg/engine/maze"
	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/level"
	"labyrinth/pkg/game/levelgen"
)

// Icons used on the map
const (
	IconWall     = "▒"
	IconRoom     = "○"
	IconCorridor = "·"
	IconVoid     = " "
	IconPath     = "•"
	IconPlayer   = "@"
	IconPortal   = "◎"
	IconTurret   = "T"
	IconAvoider  = "a"
	IconBouncer  = "b"
	IconMonster  = "m"
)

var (
	ColorWall     = color.Style{color.FgGray}
	ColorFloor    = color.Style{color.FgBlue}
	ColorPath     = color.Style{color.FgYellow, color.OpBold}
	ColorPlayer   = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	ColorPortal   = color.Style{color.FgGreen}
	ColorTurret   = color.Style{color.FgRed, color.OpBold}
	ColorEntity   = color.Style{color.FgMagenta, color.OpBold}
	ColorSubtle   = color.Style{color.FgGray, color.OpBold}
	ColorHeadline = color.Style{color.FgCyan, color.OpBold}
)

// Options controls what Render draws on top of the geometry
type Options struct {
	// Path is overlaid on open cells, e.g. the start to exit route
	Path []world.Vec

	// Layer selects one horizontal slice of a 3D level; -1 draws them all
	Layer int

	// NoLegend drops the legend line
	NoLegend bool

	// Visited, when set, draws unvisited open cells dimmed
	Visited mapset.Set[world.Vec]
}

// DefaultOptions draws every layer with a legend and no overlay
func DefaultOptions() Options {
	return Options{Layer: -1}
}

// Render draws the level with a one-cell margin so the exit portal, which
// sits just outside the maze, is visible
func Render(l *level.Level, opts Options) string {
	glyphs := spawnGlyphs(l)
	path := mapset.New[world.Vec]()
	for _, c := range opts.Path {
		path.Put(c)
	}

	var b strings.Builder
	b.WriteString(ColorHeadline.Sprint(Headline(l)))
	b.WriteString("\n")

	m := l.Maze()
	size := m.Size()
	if size.Dim() == 2 {
		renderSlice(&b, m, glyphs, path, opts, func(x, row int) world.Vec {
			return world.V2(x, row)
		}, size.At(0), size.At(1))
	} else {
		for y := 0; y < size.At(levelgen.VerticalAxis); y++ {
			if opts.Layer >= 0 && opts.Layer != y {
				continue
			}
			b.WriteString(ColorSubtle.Sprint(gotext.Get("Layer %d", y)))
			b.WriteString("\n")
			layer := y
			renderSlice(&b, m, glyphs, path, opts, func(x, row int) world.Vec {
				return world.V3(x, layer, row)
			}, size.At(0), size.At(2))
		}
	}

	if !opts.NoLegend {
		b.WriteString(Legend())
		b.WriteString("\n")
	}
	return b.String()
}

func renderSlice(b *strings.Builder, m *maze.Maze, glyphs map[world.Vec]string, path mapset.Set[world.Vec], opts Options, at func(x, row int) world.Vec, cols, rows int) {
	for row := -1; row <= rows; row++ {
		for x := -1; x <= cols; x++ {
			b.WriteString(renderCell(m, glyphs, path, opts, at(x, row)))
		}
		b.WriteString("\n")
	}
}

func renderCell(m *maze.Maze, glyphs map[world.Vec]string, path mapset.Set[world.Vec], opts Options, c world.Vec) string {
	if g, ok := glyphs[c]; ok {
		return g
	}
	if !m.InBounds(c) {
		return IconVoid
	}
	if m.IsWall(c) {
		return ColorWall.Sprint(IconWall)
	}
	if path.Has(c) {
		return ColorPath.Sprint(IconPath)
	}
	icon := IconRoom
	if maze.Corridor(m.Opened(c)) {
		icon = IconCorridor
	}
	if opts.Visited.Size() > 0 && !opts.Visited.Has(c) {
		return ColorSubtle.Sprint(icon)
	}
	return ColorFloor.Sprint(icon)
}

// spawnGlyphs maps every spawn cell to its coloured icon
func spawnGlyphs(l *level.Level) map[world.Vec]string {
	glyphs := make(map[world.Vec]string)
	for _, s := range l.Spawns() {
		glyphs[s.Cell] = SpawnIcon(s.Kind)
	}
	return glyphs
}

// SpawnIcon returns the coloured icon for a spawn kind
func SpawnIcon(k level.Kind) string {
	switch k {
	case level.Player:
		return ColorPlayer.Sprint(IconPlayer)
	case level.Portal:
		return ColorPortal.Sprint(IconPortal)
	case level.Turret:
		return ColorTurret.Sprint(IconTurret)
	case level.Avoider:
		return ColorEntity.Sprint(IconAvoider)
	case level.Bouncer:
		return ColorEntity.Sprint(IconBouncer)
	default:
		return ColorEntity.Sprint(IconMonster)
	}
}

// Headline summarises the level in one line
func Headline(l *level.Level) string {
	cfg := l.Config
	return gotext.Get("%s  size %v  percent %d  built in %d attempts",
		cfg.Name, l.Maze().Size(), cfg.Percent, l.Attempts())
}

// Legend explains every icon on the map
func Legend() string {
	entries := []string{
		ColorWall.Sprint(IconWall) + " " + gotext.Get("wall"),
		ColorFloor.Sprint(IconRoom) + " " + gotext.Get("room"),
		ColorFloor.Sprint(IconCorridor) + " " + gotext.Get("corridor"),
		ColorPath.Sprint(IconPath) + " " + gotext.Get("path"),
		SpawnIcon(level.Player) + " " + gotext.Get("player"),
		SpawnIcon(level.Portal) + " " + gotext.Get("portal"),
		SpawnIcon(level.Turret) + " " + gotext.Get("turret"),
		SpawnIcon(level.Avoider) + " " + gotext.Get("avoider"),
		SpawnIcon(level.Bouncer) + " " + gotext.Get("bouncer"),
		SpawnIcon(level.Monster) + " " + gotext.Get("monster"),
	}
	return strings.Join(entries, "  ")
}

// MessagesPane renders the message log between two rules of the given width
func MessagesPane(messages []string, width int) string {
	label := " " + gotext.Get("Messages") + " "
	labelLen := len(label)
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}
	rightLen := width - sideLen - labelLen
	if rightLen < 1 {
		rightLen = 1
	}

	var b strings.Builder
	b.WriteString(ColorSubtle.Sprint(strings.Repeat("─", sideLen) + label + strings.Repeat("─", rightLen)))
	b.WriteString("\n")
	if len(messages) == 0 {
		b.WriteString(ColorSubtle.Sprint("  " + gotext.Get("(no messages)")))
		b.WriteString("\n")
	}
	for _, msg := range messages {
		fmt.Fprintf(&b, "  %s\n", msg)
	}
	b.WriteString(ColorSubtle.Sprint(strings.Repeat("─", max(width, 1))))
	b.WriteString("\n")
	return b.String()
}

// Plain strips colour codes from rendered output
func Plain(s string) string {
	return color.ClearCode(s)
}
