package renderer

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/zyedidia/generic/mapset"

	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/level"
)

func buildLevel(t *testing.T, cfg level.Config) *level.Level {
	t.Helper()
	return level.Build(cfg, rand.New(rand.NewSource(1)))
}

// mapRows returns the plain map lines of a 2D render, margin included
func mapRows(out string, rows int) []string {
	lines := strings.Split(Plain(out), "\n")
	return lines[1 : 1+rows]
}

func TestRender_2DLayout(t *testing.T) {
	l := buildLevel(t, level.DefaultConfig2D())
	out := Render(l, DefaultOptions())
	rows := mapRows(out, 23)

	for i, row := range rows {
		if n := len([]rune(row)); n != 23 {
			t.Fatalf("row %d has %d columns, want 23", i, n)
		}
	}

	at := func(c world.Vec) string {
		return string([]rune(rows[c.At(1)+1])[c.At(0)+1])
	}
	for _, s := range l.Spawns() {
		if got, want := at(s.Cell), Plain(SpawnIcon(s.Kind)); got != want {
			t.Errorf("%v at %v drawn as %q, want %q", s.Kind, s.Cell, got, want)
		}
	}
	if got := at(world.V2(0, 0)); got != IconWall {
		t.Errorf("corner drawn as %q, want wall", got)
	}
	if got := at(world.V2(-1, -1)); got != IconVoid {
		t.Errorf("margin drawn as %q, want void", got)
	}
	if !strings.Contains(Plain(out), "wall") {
		t.Error("legend missing")
	}
}

func TestRender_PathOverlay(t *testing.T) {
	l := buildLevel(t, level.DefaultConfig2D())
	p, ok := l.Maze().FindPath(l.StartDig().Cell, l.EndDig().Cell)
	if !ok {
		t.Fatal("no path")
	}
	opts := DefaultOptions()
	opts.Path = p.Cells
	opts.NoLegend = true
	out := Plain(Render(l, opts))
	if !strings.Contains(out, IconPath) {
		t.Error("path overlay not drawn")
	}
	if strings.Contains(out, "corridor") {
		t.Error("legend drawn with NoLegend")
	}
}

func TestRender_3DLayers(t *testing.T) {
	cfg := level.DefaultConfig3D()
	l := buildLevel(t, cfg)

	all := Plain(Render(l, DefaultOptions()))
	if got := strings.Count(all, "Layer "); got != cfg.Size[1] {
		t.Errorf("drew %d layers, want %d", got, cfg.Size[1])
	}

	opts := DefaultOptions()
	opts.Layer = 4
	one := Plain(Render(l, opts))
	if strings.Count(one, "Layer ") != 1 || !strings.Contains(one, "Layer 4") {
		t.Errorf("layer filter drew:\n%s", one)
	}
}

func TestRender_VisitedDimsOnlyColour(t *testing.T) {
	l := buildLevel(t, level.DefaultConfig2D())
	opts := DefaultOptions()
	opts.Visited = mapset.New[world.Vec]()
	opts.Visited.Put(l.StartDig().Cell)
	if Plain(Render(l, opts)) != Plain(Render(l, DefaultOptions())) {
		t.Error("visited tracking changed the glyphs")
	}
}

func TestMessagesPane(t *testing.T) {
	out := Plain(MessagesPane(nil, 30))
	if !strings.Contains(out, "(no messages)") {
		t.Errorf("empty pane = %q", out)
	}
	out = Plain(MessagesPane([]string{"first", "second"}, 30))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}
	if lines[1] != "  first" || lines[2] != "  second" {
		t.Errorf("messages = %q", lines[1:3])
	}
}

func TestPlain(t *testing.T) {
	if got := Plain(ColorTurret.Sprint("T")); got != "T" {
		t.Errorf("Plain = %q, want %q", got, "T")
	}
}
