package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Shift moves every line of block by offset columns inside a viewport of the given width.
// Positive offsets push content to the right, negative to the left; overflow is clipped.
func Shift(block string, offset, width int) string {
	if offset == 0 || width <= 0 {
		return block
	}

	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = shiftLine(line, offset, width)
	}

	return strings.Join(lines, "\n")
}

func shiftLine(line string, offset, width int) string {
	if offset > 0 {
		if offset >= width {
			return ""
		}

		return ansi.Truncate(strings.Repeat(" ", offset)+line, width, "")
	}

	cut := -offset
	if cut >= ansi.StringWidth(line) {
		return ""
	}

	return ansi.TruncateLeft(line, cut, "")
}

// Clamp limits value to the [low, high] range
func Clamp(value, low, high int) int {
	if value < low {
		return low
	}

	if value > high {
		return high
	}

	return value
}
