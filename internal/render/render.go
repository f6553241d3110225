// Package render prints dashboard sections as markdown, optionally styled
// for the terminal with glamour.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/nikbrunner/zennav/internal/display"
	"github.com/nikbrunner/zennav/internal/model"
)

// Markdown renders sections as a markdown document. An active query changes
// the heading and reports when nothing matched.
func Markdown(sections []display.Section, query string) string {
	var b strings.Builder

	if display.Active(query) {
		fmt.Fprintf(&b, "# Results for \"%s\"\n\n", escape(strings.TrimSpace(query)))
		if len(sections) == 0 {
			b.WriteString("_No bookmarks match._\n")
			return b.String()
		}
	} else {
		b.WriteString("# zennav\n\n")
	}

	for _, s := range sections {
		fmt.Fprintf(&b, "## %s\n\n", escape(s.Title))
		if s.IsPlaceholder() {
			b.WriteString("_No bookmarks yet._\n\n")
			continue
		}
		for _, l := range s.Links {
			fmt.Fprintf(&b, "- [%s](%s)\n", escape(l.Title), l.URL)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// Style picks the glamour style matching the theme mode.
func Style(s model.Settings) string {
	switch s.ThemeMode {
	case model.ThemeLight:
		return "light"
	case model.ThemeDark:
		return "dark"
	default:
		return "auto"
	}
}

// Terminal renders md for the terminal. style is a glamour standard style
// name or "auto"; width is the word wrap column.
func Terminal(md, style string, width int) (string, error) {
	styleOpt := glamour.WithAutoStyle()
	if style != "auto" {
		styleOpt = glamour.WithStandardStyle(style)
	}

	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return "", fmt.Errorf("create renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"[", `\[`,
	"]", `\]`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"#", `\#`,
)

func escape(s string) string {
	return markdownEscaper.Replace(s)
}
