package terminal

import (
	"os"
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetWidth returns the current terminal width.
// Falls back to DefaultWidth if the width cannot be determined.
func GetWidth() int {
	width, _ := GetSize()
	return width
}

// IsTerminal reports whether stdout is attached to a terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// VisibleWidth returns the number of columns s occupies, ignoring ANSI
// escape sequences
func VisibleWidth(s string) int {
	w := 0
	for _, seg := range split(s) {
		if !seg.escape {
			w += uniseg.StringWidth(seg.text)
		}
	}
	return w
}

// Clip truncates every line of s to width visible columns. Escape sequences
// are kept so colours are still reset at the end of a clipped line.
func Clip(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = clipLine(line, width)
	}
	return strings.Join(lines, "\n")
}

func clipLine(line string, width int) string {
	var b strings.Builder
	used := 0
	for _, seg := range split(line) {
		if seg.escape {
			b.WriteString(seg.text)
			continue
		}
		rest := seg.text
		state := -1
		for len(rest) > 0 {
			var cluster string
			var w int
			cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
			if used+w > width {
				used = width
				break
			}
			b.WriteString(cluster)
			used += w
		}
	}
	return b.String()
}

type segment struct {
	text   string
	escape bool
}

// split cuts s into plain text and CSI escape sequences
func split(s string) []segment {
	var out []segment
	for len(s) > 0 {
		i := strings.Index(s, "\x1b[")
		if i < 0 {
			out = append(out, segment{text: s})
			break
		}
		if i > 0 {
			out = append(out, segment{text: s[:i]})
		}
		j := i + 2
		for j < len(s) && (s[j] < 0x40 || s[j] > 0x7e) {
			j++
		}
		if j < len(s) {
			j++
		}
		out = append(out, segment{text: s[i:j], escape: true})
		s = s[j:]
	}
	return out
}
