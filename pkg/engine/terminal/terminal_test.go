package terminal

import "testing"

func TestVisibleWidth(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"\x1b[32m@\x1b[0m", 1},
		{"▒▒ ●", 4},
	}
	for _, c := range cases {
		if got := VisibleWidth(c.in); got != c.want {
			t.Errorf("VisibleWidth(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestClip(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"Short", "abc", 5, "abc"},
		{"Exact", "abcde", 5, "abcde"},
		{"Long", "abcdefgh", 3, "abc"},
		{"PerLine", "abcdef\nxy", 2, "ab\nxy"},
		{"KeepsEscapes", "\x1b[31mabcd\x1b[0m", 2, "\x1b[31mab\x1b[0m"},
		{"Glyphs", "▒▒▒▒", 2, "▒▒"},
		{"NoLimit", "abcdef", 0, "abcdef"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Clip(c.in, c.width); got != c.want {
				t.Errorf("Clip(%q, %d) = %q, want %q", c.in, c.width, got, c.want)
			}
		})
	}
}
