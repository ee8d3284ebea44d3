package devtools

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"labyrinth/pkg/game/level"
)

func TestDumpLevelToFile(t *testing.T) {
	l := level.Build(level.DefaultConfig2D(), rand.New(rand.NewSource(1)))
	path := filepath.Join(t.TempDir(), "dump.txt")

	got, err := DumpLevelToFile(l, path)
	if err != nil {
		t.Fatalf("DumpLevelToFile: %v", err)
	}
	if got != path {
		t.Errorf("wrote %q, want %q", got, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	for _, section := range []string{"--- Metadata ---", "--- Map ---", "--- Legend ---", "--- Spawns ---", "--- Zones ---", "--- Route ---"} {
		if !strings.Contains(text, section) {
			t.Errorf("dump missing %q", section)
		}
	}
	if strings.Contains(text, "\x1b[") {
		t.Error("dump contains colour codes")
	}
	if got := strings.Count(text, "turret   cell="); got != l.Config.Turrets {
		t.Errorf("dump lists %d turrets, want %d", got, l.Config.Turrets)
	}
}

func TestDumpLevelToFile_Errors(t *testing.T) {
	if _, err := DumpLevelToFile(nil, "x.txt"); err == nil {
		t.Error("nil level dumped without error")
	}

	l := level.Build(level.DefaultConfig2D(), rand.New(rand.NewSource(2)))
	missing := filepath.Join(t.TempDir(), "no", "such", "dir", "dump.txt")
	if _, err := DumpLevelToFile(l, missing); err == nil {
		t.Error("dump into a missing directory succeeded")
	}
}
