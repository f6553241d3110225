package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/nikbrunner/zennav/internal/model"
)

// Styles holds all lipgloss styles for the TUI.
type Styles struct {
	App          lipgloss.Style
	Pane         lipgloss.Style
	Modal        lipgloss.Style
	Title        lipgloss.Style
	Section      lipgloss.Style // Folder heading of a shelf
	Item         lipgloss.Style
	ItemSelected lipgloss.Style
	URL          lipgloss.Style
	Placeholder  lipgloss.Style // "No bookmarks yet" row of an empty folder
	Help         lipgloss.Style
	Empty        lipgloss.Style
	HintKey      lipgloss.Style // Key portion of hints (e.g., "enter", "j/k")
	HintDesc     lipgloss.Style // Description portion of hints (e.g., "open", "move")
	Error        lipgloss.Style
	Success      lipgloss.Style
}

// accents maps theme color keys to their light and dark terminal shades.
var accents = map[string]lipgloss.AdaptiveColor{
	"pink":    {Light: "#DB2777", Dark: "#EC4899"},
	"rose":    {Light: "#E11D48", Dark: "#F43F5E"},
	"violet":  {Light: "#7C3AED", Dark: "#8B5CF6"},
	"blue":    {Light: "#2563EB", Dark: "#3B82F6"},
	"sky":     {Light: "#0284C7", Dark: "#0EA5E9"},
	"cyan":    {Light: "#0891B2", Dark: "#06B6D4"},
	"emerald": {Light: "#059669", Dark: "#10B981"},
	"lime":    {Light: "#65A30D", Dark: "#84CC16"},
	"amber":   {Light: "#D97706", Dark: "#F59E0B"},
	"orange":  {Light: "#EA580C", Dark: "#F97316"},
}

// DefaultStyles returns the styles of a fresh install.
func DefaultStyles() Styles {
	return StylesFor(model.DefaultSettings())
}

// StylesFor derives the styles from the user's settings: themeColor picks
// the accent, cardStyle the pane border and themeMode fixes the light or
// dark palette ("system" adapts to the terminal background).
func StylesFor(s model.Settings) Styles {
	accentColor, ok := accents[s.ThemeColor]
	if !ok {
		accentColor = accents[model.DefaultSettings().ThemeColor]
	}

	shade := func(c lipgloss.AdaptiveColor) lipgloss.TerminalColor {
		switch s.ThemeMode {
		case model.ThemeLight:
			return lipgloss.Color(c.Light)
		case model.ThemeDark:
			return lipgloss.Color(c.Dark)
		default:
			return c
		}
	}

	primary := shade(lipgloss.AdaptiveColor{Light: "#505050", Dark: "#A0A0A0"}) // main text
	subtle := shade(lipgloss.AdaptiveColor{Light: "#888888", Dark: "#606060"})  // secondary text
	border := shade(lipgloss.AdaptiveColor{Light: "#888888", Dark: "#505050"})  // pane borders
	accent := shade(accentColor)

	var paneBorder lipgloss.Border
	switch s.CardStyle {
	case model.CardSolid:
		paneBorder = lipgloss.ThickBorder()
	case model.CardMinimal:
		paneBorder = lipgloss.HiddenBorder()
	default:
		paneBorder = lipgloss.RoundedBorder()
	}

	return Styles{
		App: lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(2).
			PaddingRight(2),

		Pane: lipgloss.NewStyle().
			Border(paneBorder).
			BorderForeground(border).
			Padding(0, 1),

		Modal: lipgloss.NewStyle().
			Border(paneBorder).
			BorderForeground(accent).
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		Item: lipgloss.NewStyle().
			Foreground(primary).
			PaddingLeft(1),

		ItemSelected: lipgloss.NewStyle().
			PaddingLeft(1).
			Background(accent).
			Foreground(lipgloss.Color("#1A1A1A")),

		URL: lipgloss.NewStyle().
			Foreground(subtle),

		Placeholder: lipgloss.NewStyle().
			Foreground(subtle).
			Italic(true).
			PaddingLeft(1),

		Help: lipgloss.NewStyle().
			Foreground(subtle),

		Empty: lipgloss.NewStyle().
			Foreground(subtle),

		HintKey: lipgloss.NewStyle().
			Foreground(accent),

		HintDesc: lipgloss.NewStyle().
			Foreground(subtle),

		Error: lipgloss.NewStyle().
			Foreground(shade(lipgloss.AdaptiveColor{Light: "#CC3333", Dark: "#FF6666"})).
			Bold(true),

		Success: lipgloss.NewStyle().
			Foreground(shade(lipgloss.AdaptiveColor{Light: "#338833", Dark: "#66CC66"})).
			Bold(true),
	}
}
