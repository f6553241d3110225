package layout

import (
	"regexp"

	"github.com/mattn/go-runewidth"
)

// ansiRegex matches ANSI escape sequences.
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI removes ANSI escape codes from a string.
func StripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// VisibleWidth returns the number of terminal cells a string occupies,
// excluding ANSI codes. Wide runes such as CJK count as two cells.
func VisibleWidth(s string) int {
	return runewidth.StringWidth(StripANSI(s))
}

// TruncateText truncates text to maxWidth cells with ellipsis.
// Returns the truncated text and whether truncation occurred.
func TruncateText(text string, maxWidth int, cfg TextConfig) (string, bool) {
	if maxWidth <= 0 {
		return "", text != ""
	}
	if runewidth.StringWidth(text) <= maxWidth {
		return text, false
	}

	// Not enough room for any text + ellipsis
	if maxWidth <= runewidth.StringWidth(cfg.Ellipsis) {
		return runewidth.Truncate(cfg.Ellipsis, maxWidth, ""), true
	}

	return runewidth.Truncate(text, maxWidth, cfg.Ellipsis), true
}

// PadRight pads text with spaces to exactly width cells, truncating first
// when it is wider.
func PadRight(text string, width int, cfg TextConfig) string {
	text, _ = TruncateText(text, width, cfg)
	return runewidth.FillRight(text, width)
}
