package picker

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nikbrunner/zennav/internal/model"
	"github.com/nikbrunner/zennav/internal/search"
)

var (
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	matchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Underline(true)

	urlStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Italic(true)

	folderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			Bold(true).
			MarginBottom(1)
)

// Picker is a simple TUI for selecting from search results.
type Picker struct {
	results   []search.Result
	query     string
	cursor    int
	selected  bool
	cancelled bool
	width     int
	height    int
}

// New creates a new Picker with the given search results.
func New(results []search.Result, query string) Picker {
	return Picker{
		results: results,
		query:   query,
		cursor:  0,
		width:   80,
		height:  24,
	}
}

// Init implements tea.Model.
func (p Picker) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		return p, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			p.cancelled = true
			return p, tea.Quit

		case tea.KeyEnter:
			p.selected = true
			return p, tea.Quit

		case tea.KeyDown:
			p.moveDown()
			return p, nil

		case tea.KeyUp:
			p.moveUp()
			return p, nil
		}

		// Handle j/k vim keys
		if msg.Type == tea.KeyRunes {
			switch string(msg.Runes) {
			case "j":
				p.moveDown()
				return p, nil
			case "k":
				p.moveUp()
				return p, nil
			case "q":
				p.cancelled = true
				return p, tea.Quit
			}
		}
	}

	return p, nil
}

func (p *Picker) moveDown() {
	if p.cursor < len(p.results)-1 {
		p.cursor++
	}
}

func (p *Picker) moveUp() {
	if p.cursor > 0 {
		p.cursor--
	}
}

// visibleRange returns the slice of results that fits the window, keeping
// the cursor on screen. Each result takes two lines; header and footer four.
func (p Picker) visibleRange() (start, end int) {
	capacity := max((p.height-4)/2, 1)
	if len(p.results) <= capacity {
		return 0, len(p.results)
	}
	start = max(p.cursor-capacity+1, 0)
	return start, min(start+capacity, len(p.results))
}

// View implements tea.Model.
func (p Picker) View() string {
	var b strings.Builder

	// Header
	b.WriteString(headerStyle.Render(fmt.Sprintf("Search: %s (%d results)", p.query, len(p.results))))
	b.WriteString("\n\n")

	start, end := p.visibleRange()
	for i := start; i < end; i++ {
		result := p.results[i]
		cursor := "  "
		style := normalStyle
		if i == p.cursor {
			cursor = "> "
			style = selectedStyle
		}

		title := highlight(result.Link.Title, result.MatchedIndexes, style)
		folder := ""
		if result.Folder != nil {
			folder = folderStyle.Render("  · " + result.Folder.Title)
		}
		url := urlStyle.Render(result.Link.URL)

		b.WriteString(fmt.Sprintf("%s%s%s\n", cursor, title, folder))
		b.WriteString(fmt.Sprintf("   %s\n", url))
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Render("j/k: move  Enter: open  q/Esc: cancel"))

	return b.String()
}

// highlight renders s with the bytes at matched (as reported by fuzzy)
// picked out.
func highlight(s string, matched []int, base lipgloss.Style) string {
	if len(matched) == 0 {
		return base.Render(s)
	}
	var b strings.Builder
	for i, r := range s {
		if slices.Contains(matched, i) {
			b.WriteString(matchStyle.Inherit(base).Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}

// SelectedLink returns the selected link, or nil if cancelled.
func (p Picker) SelectedLink() *model.Link {
	if p.cancelled || !p.selected {
		return nil
	}
	if p.cursor < len(p.results) {
		return p.results[p.cursor].Link
	}
	return nil
}

// Cancelled returns true if the user cancelled the selection.
func (p Picker) Cancelled() bool {
	return p.cancelled
}
