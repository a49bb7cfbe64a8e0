package helpfmt

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// FormatHelp lays out one help item in two columns. left is padded to width display cells and
// followed by right. When left does not fit, right moves to the next line, indented by width.
// An empty right yields left alone. The result always ends with a single newline.
func FormatHelp(left, right string, width int) string {
	var sb strings.Builder
	if right == "" {
		sb.WriteString(left)
		sb.WriteByte('\n')
		return sb.String()
	}

	if runewidth.StringWidth(left) < width {
		sb.WriteString(runewidth.FillRight(left, width))
	} else {
		sb.WriteString(left)
		sb.WriteByte('\n')
		sb.WriteString(strings.Repeat(" ", max(width, 0)))
	}
	sb.WriteString(right)
	sb.WriteByte('\n')

	return sb.String()
}
