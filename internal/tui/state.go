package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/nikbrunner/zennav/internal/display"
	"github.com/nikbrunner/zennav/internal/model"
	"github.com/nikbrunner/zennav/internal/tui/layout"
)

// Mode is the interaction state of the dashboard.
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeAdd
	ModeConfirmDelete
	ModeHelp
)

// MessageType sets the color of the status line.
type MessageType int

const (
	MessageInfo MessageType = iota
	MessageSuccess
	MessageError
)

// RowKind distinguishes a link row from the placeholder of an empty folder.
type RowKind int

const (
	RowLink RowKind = iota
	RowPlaceholder
)

// Row is one selectable line of the dashboard. Every row belongs to a
// section, so adding always has a target folder.
type Row struct {
	Kind    RowKind
	Section display.Section
	Link    *model.Link
}

// IsLink returns true if the row holds a link.
func (r Row) IsLink() bool {
	return r.Kind == RowLink
}

// buildRows flattens sections into selectable rows.
func buildRows(sections []display.Section) []Row {
	var rows []Row
	for _, s := range sections {
		if s.IsPlaceholder() {
			rows = append(rows, Row{Kind: RowPlaceholder, Section: s})
			continue
		}
		for _, l := range s.Links {
			rows = append(rows, Row{Kind: RowLink, Section: s, Link: l})
		}
	}
	return rows
}

// SearchState holds the live filter.
type SearchState struct {
	Input textinput.Model
	Query string // Applied query, kept after the input closes
}

// NewSearchState creates a new SearchState with initialized input.
func NewSearchState(cfg layout.LayoutConfig) SearchState {
	input := textinput.New()
	input.Placeholder = "Search bookmarks or the web..."
	input.Prompt = "/ "
	input.CharLimit = cfg.Input.SearchCharLimit
	input.Width = cfg.Input.StandardWidth
	return SearchState{Input: input}
}

// Reset clears the filter.
func (s *SearchState) Reset() {
	s.Input.Reset()
	s.Query = ""
}

// AddState holds the add-link modal.
type AddState struct {
	TitleInput  textinput.Model
	URLInput    textinput.Model
	FolderID    string
	FolderTitle string
	Error       string
}

// NewAddState creates a new AddState with initialized inputs.
func NewAddState(cfg layout.LayoutConfig) AddState {
	titleInput := textinput.New()
	titleInput.Placeholder = "e.g. Google"
	titleInput.CharLimit = cfg.Input.TitleCharLimit
	titleInput.Width = cfg.Input.StandardWidth

	urlInput := textinput.New()
	urlInput.Placeholder = "https://..."
	urlInput.CharLimit = cfg.Input.URLCharLimit
	urlInput.Width = cfg.Input.StandardWidth

	return AddState{
		TitleInput: titleInput,
		URLInput:   urlInput,
	}
}

// Reset clears the modal for a new target folder and focuses the title.
func (s *AddState) Reset(folderID, folderTitle string) {
	s.TitleInput.Reset()
	s.URLInput.Reset()
	s.URLInput.Blur()
	s.TitleInput.Focus()
	s.FolderID = folderID
	s.FolderTitle = folderTitle
	s.Error = ""
}

// ToggleFocus moves focus between the title and URL inputs.
func (s *AddState) ToggleFocus() {
	if s.TitleInput.Focused() {
		s.TitleInput.Blur()
		s.URLInput.Focus()
		return
	}
	s.URLInput.Blur()
	s.TitleInput.Focus()
}
