// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"labyrinth/pkg/engine/maze"
	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/level"
	"labyrinth/pkg/game/renderer"
)

// DefaultDumpFilename is used when no path is given
const DefaultDumpFilename = "map.txt"

// DumpLevelToFile writes a full debug dump of l: metadata, legend, the plain
// map, the spawn list and zone statistics. It returns the absolute path
// written.
func DumpLevelToFile(l *level.Level, path string) (string, error) {
	if l == nil {
		return "", fmt.Errorf("no level")
	}
	if path == "" {
		path = DefaultDumpFilename
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("failed to create dump file: %w", err)
	}
	defer f.Close()

	if err := WriteDump(f, l); err != nil {
		return "", fmt.Errorf("failed to write dump: %w", err)
	}
	return absPath, nil
}

// errWriter remembers the first write error so the dump can be written
// without checking every line
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

// WriteDump writes the dump sections to w
func WriteDump(w io.Writer, l *level.Level) error {
	out := &errWriter{w: w}
	m := l.Maze()
	cfg := l.Config

	out.printf("=== LEVEL DUMP ===\n\n")
	out.printf("--- Metadata ---\n")
	out.printf("name: %s\n", cfg.Name)
	out.printf("size: %v\n", m.Size())
	out.printf("percent: %d\n", cfg.Percent)
	out.printf("scale: %g\n", cfg.Scale)
	out.printf("attempts: %d\n", l.Attempts())
	out.printf("walls: %d\n", m.WallCount())
	out.printf("open_cells: %d\n", len(m.OpenCells()))
	out.printf("coordinate_system: x = column, y = row; 3D layers are y with rows along z\n")
	out.printf("start: %v facing %s\n", l.StartDig().Cell, world.DirectionName(l.StartDig().Direction))
	out.printf("exit: %v facing %s\n", l.EndDig().Cell, world.DirectionName(l.EndDig().Direction))
	out.printf("\n")

	out.printf("--- Map ---\n")
	opts := renderer.DefaultOptions()
	opts.NoLegend = true
	out.printf("%s\n", renderer.Plain(renderer.Render(l, opts)))

	out.printf("--- Legend ---\n")
	out.printf("%s\n\n", renderer.Plain(renderer.Legend()))

	out.printf("--- Spawns ---\n")
	for _, s := range l.Spawns() {
		p := s.Position
		out.printf("%-8s cell=%v world=(%.1f, %.1f, %.1f)", s.Kind, s.Cell, p.X, p.Y, p.Z)
		if s.Kind == level.Turret {
			out.printf(" sees=%d", len(l.Sight(s)))
		}
		out.printf("\n")
	}
	out.printf("\n")

	out.printf("--- Zones ---\n")
	writeZones(out, "rooms", m.ComputeZones(maze.Room))
	writeZones(out, "corridors", m.ComputeZones(maze.Corridor))

	if path, ok := m.FindPath(l.StartDig().Cell, l.EndDig().Cell); ok {
		out.printf("\n--- Route ---\n")
		out.printf("cells: %d\n", path.Len())
		out.printf("cost: %d\n", path.Cost)
	}
	return out.err
}

func writeZones(out *errWriter, label string, zones []maze.Zone) {
	sizes := make([]int, len(zones))
	total := 0
	for i, z := range zones {
		sizes[i] = len(z)
		total += len(z)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))
	out.printf("%s: %d zones, %d cells\n", label, len(zones), total)
	if len(sizes) > 0 {
		out.printf("%s_sizes: %v\n", label, sizes)
	}
}
