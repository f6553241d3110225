package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nikbrunner/zennav/internal/display"
	"github.com/nikbrunner/zennav/internal/model"
	"github.com/nikbrunner/zennav/internal/tree"
	"github.com/nikbrunner/zennav/internal/tui/layout"
)

const placeholderText = "No bookmarks yet, press a to add"

// renderView creates the complete dashboard view.
func (a App) renderView() string {
	switch a.mode {
	case ModeAdd, ModeConfirmDelete:
		return a.renderModal()
	case ModeHelp:
		return a.renderHelpOverlay()
	}

	listHeight := layout.CalculateListHeight(a.height, a.layoutConfig.Shelf)
	contentWidth := layout.CalculateContentWidth(a.width, a.layoutConfig.Shelf)

	// Pane width covers content plus horizontal padding, not the border.
	pane := a.styles.Pane.
		Width(contentWidth + 2).
		Height(listHeight).
		Render(a.renderShelves(contentWidth, listHeight))

	content := a.styles.App.Render(
		lipgloss.JoinVertical(lipgloss.Left, a.renderHeader(), pane, a.renderHelpBar()),
	)

	// Use Place to ensure exact terminal dimensions and prevent overflow
	return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top, content)
}

// renderHeader renders the title line and the search line.
func (a App) renderHeader() string {
	title := "zennav"
	if display.Active(a.search.Query) {
		title = fmt.Sprintf("Results for %q", strings.TrimSpace(a.search.Query))
	}
	count := fmt.Sprintf("  %d links", tree.CountLinks(a.tree))

	var searchLine string
	switch {
	case a.mode == ModeSearch:
		searchLine = a.search.Input.View()
	case a.search.Query != "":
		searchLine = a.styles.Help.Render("/ " + a.search.Query)
	case a.settings.ShowSearchBar:
		engine := model.EngineFor(a.settings.SearchEngine).Name
		searchLine = a.styles.Empty.Render("/ search bookmarks or " + engine)
	}

	return a.styles.Title.Render(title) + a.styles.Empty.Render(count) + "\n" + searchLine
}

// renderShelves renders sections as headed groups of rows, scrolled so the
// cursor row stays visible.
func (a App) renderShelves(width, height int) string {
	if len(a.rows) == 0 {
		return a.styles.Empty.Render(a.emptyText())
	}

	titleWidth, urlWidth := layout.CalculateColumns(width-1, a.layoutConfig.Shelf)

	var lines []string
	cursorLine := 0
	prevSection := ""
	for i, row := range a.rows {
		if i == 0 || row.Section.ID != prevSection {
			if i > 0 {
				lines = append(lines, "")
			}
			lines = append(lines, a.renderSectionHeader(row.Section, width))
			prevSection = row.Section.ID
		}
		if i == a.cursor {
			cursorLine = len(lines)
		}
		lines = append(lines, a.renderRow(row, i == a.cursor, titleWidth, urlWidth))
	}

	offset := layout.CalculateViewportOffset(cursorLine, len(lines), height)
	end := min(offset+height, len(lines))
	return strings.Join(lines[offset:end], "\n")
}

func (a App) renderSectionHeader(s display.Section, width int) string {
	title, _ := layout.TruncateText(s.Title, width-6, a.layoutConfig.Text)
	header := a.styles.Section.Render(title)
	if n := len(s.Links); n > 0 {
		header += a.styles.Empty.Render(fmt.Sprintf(" (%d)", n))
	}
	return header
}

func (a App) renderRow(row Row, selected bool, titleWidth, urlWidth int) string {
	cfg := a.layoutConfig.Text

	if !row.IsLink() {
		text := layout.PadRight(placeholderText, titleWidth+2+urlWidth, cfg)
		if selected {
			return a.styles.ItemSelected.Render(text)
		}
		return a.styles.Placeholder.Render(text)
	}

	title := layout.PadRight(row.Link.Title, titleWidth, cfg)
	url, _ := layout.TruncateText(row.Link.URL, urlWidth, cfg)
	if selected {
		return a.styles.ItemSelected.Render(title + "  " + layout.PadRight(url, urlWidth, cfg))
	}
	return a.styles.Item.Render(title + "  " + a.styles.URL.Render(url))
}

func (a App) emptyText() string {
	if display.Active(a.search.Query) {
		engine := model.EngineFor(a.settings.SearchEngine).Name
		return fmt.Sprintf("No bookmarks match. enter searches %s", engine)
	}
	return "No folders yet. Import some with: zennav import <file>"
}

// renderHelpBar renders the status line and the contextual hints.
func (a App) renderHelpBar() string {
	return a.renderMessageLine() + "\n" + a.renderHints(a.getContextualHints())
}

// renderMessageLine renders the styled message with prefix icon based on type.
func (a App) renderMessageLine() string {
	if a.messageText == "" {
		return ""
	}
	switch a.messageType {
	case MessageError:
		return a.styles.Error.Render("✗ " + a.messageText)
	case MessageSuccess:
		return a.styles.Success.Render("✓ " + a.messageText)
	default:
		return a.styles.Title.Render(a.messageText)
	}
}

// renderModal renders the add and delete dialogs centered on screen.
func (a App) renderModal() string {
	var content strings.Builder

	modalWidth := layout.CalculateModalWidth(a.width, a.layoutConfig.Modal.DefaultWidthPercent, a.layoutConfig.Modal)
	cfg := a.layoutConfig.Text

	switch a.mode {
	case ModeAdd:
		folder, _ := layout.TruncateText(a.add.FolderTitle, modalWidth-16, cfg)
		content.WriteString(a.styles.Title.Render(fmt.Sprintf("Add to %q", folder)))
		content.WriteString("\n\n")
		content.WriteString("Title:\n")
		content.WriteString(a.add.TitleInput.View())
		content.WriteString("\n\n")
		content.WriteString("URL:\n")
		content.WriteString(a.add.URLInput.View())
		content.WriteString("\n\n")
		if a.add.Error != "" {
			content.WriteString(a.styles.Error.Render(a.add.Error))
			content.WriteString("\n\n")
		}
		content.WriteString(a.renderHintsInline([]Hint{
			{Key: "tab", Desc: "next"},
			{Key: "enter", Desc: "save"},
			{Key: "esc", Desc: "cancel"},
		}))

	case ModeConfirmDelete:
		title, _ := layout.TruncateText(a.pendingDelete.Title, modalWidth-16, cfg)
		url, _ := layout.TruncateText(a.pendingDelete.URL, modalWidth-6, cfg)
		content.WriteString(a.styles.Title.Render(fmt.Sprintf("Delete %q?", title)))
		content.WriteString("\n\n")
		content.WriteString(a.styles.URL.Render(url))
		content.WriteString("\n\n")
		content.WriteString(a.renderHintsInline([]Hint{
			{Key: "y", Desc: "delete"},
			{Key: "n", Desc: "cancel"},
		}))
	}

	modal := a.styles.Modal.Width(modalWidth).Render(content.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, modal)
}

// renderHelpOverlay renders the key reference.
func (a App) renderHelpOverlay() string {
	var left strings.Builder
	left.WriteString(a.styles.Title.Render("nav") + "\n")
	left.WriteString("j/k    move\n")
	left.WriteString("gg     top\n")
	left.WriteString("G      bottom\n")
	left.WriteString("\n")
	left.WriteString(a.styles.Title.Render("act") + "\n")
	left.WriteString("enter  open link\n")
	left.WriteString("/      search\n")
	left.WriteString("y      yank url\n")

	var right strings.Builder
	right.WriteString(a.styles.Title.Render("edit") + "\n")
	right.WriteString("a      add link\n")
	right.WriteString("d      delete link\n")
	right.WriteString("\n")
	right.WriteString(a.styles.Title.Render("search") + "\n")
	right.WriteString("↑/↓    move\n")
	right.WriteString("enter  open or web search\n")
	right.WriteString("esc    clear\n")
	right.WriteString("\n")
	right.WriteString(a.styles.Help.Render("[?/esc] close  [q] quit"))

	leftCol := lipgloss.NewStyle().Width(22).Render(left.String())
	rightCol := lipgloss.NewStyle().Width(30).Render(right.String())
	cols := lipgloss.JoinHorizontal(lipgloss.Top, leftCol, "  ", rightCol)

	return lipgloss.Place(
		a.width,
		a.height,
		lipgloss.Left,
		lipgloss.Top,
		lipgloss.NewStyle().Padding(1, 2).Render(cols),
	)
}
