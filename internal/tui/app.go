package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/zennav/internal/display"
	"github.com/nikbrunner/zennav/internal/model"
	"github.com/nikbrunner/zennav/internal/tree"
	"github.com/nikbrunner/zennav/internal/tui/layout"
)

// App is the main bubbletea model for the start page dashboard.
type App struct {
	tree         model.Tree
	settings     model.Settings
	keys         KeyMap
	styles       Styles
	layoutConfig layout.LayoutConfig
	open         func(url string) error
	clip         func(text string) error
	now          func() time.Time

	mode     Mode
	sections []display.Section
	rows     []Row
	cursor   int // selected row index

	// For gg command
	lastKeyWasG bool

	search        SearchState
	add           AddState
	pendingDelete *model.Link

	messageText string
	messageType MessageType
	dirty       bool

	// Window dimensions
	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Tree         model.Tree
	Settings     model.Settings
	Keys         *KeyMap              // optional, uses default if nil
	Styles       *Styles              // optional, derived from Settings if nil
	LayoutConfig *layout.LayoutConfig // optional, uses default if nil
	Opener       func(url string) error
	Clipboard    func(text string) error // optional, system clipboard if nil
	Now          func() time.Time        // optional, time.Now if nil
}

// NewApp creates a new App with the given parameters.
func NewApp(params AppParams) App {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	settings := params.Settings.Normalize()
	styles := StylesFor(settings)
	if params.Styles != nil {
		styles = *params.Styles
	}

	layoutCfg := layout.DefaultConfig()
	if params.LayoutConfig != nil {
		layoutCfg = *params.LayoutConfig
	}

	clipFn := params.Clipboard
	if clipFn == nil {
		clipFn = clipboard.WriteAll
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}

	app := App{
		tree:         params.Tree,
		settings:     settings,
		keys:         keys,
		styles:       styles,
		layoutConfig: layoutCfg,
		open:         params.Opener,
		clip:         clipFn,
		now:          now,
		search:       NewSearchState(layoutCfg),
		add:          NewAddState(layoutCfg),
		width:        80,
		height:       24,
	}

	app.refresh()
	return app
}

// refresh re-projects the tree under the current query and keeps the cursor in range.
func (a *App) refresh() {
	a.sections = display.Sections(a.tree, a.search.Query)
	a.rows = buildRows(a.sections)
	if a.cursor >= len(a.rows) {
		a.cursor = len(a.rows) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

// Tree returns the current bookmark tree.
func (a App) Tree() model.Tree {
	return a.tree
}

// Settings returns the settings the dashboard runs with.
func (a App) Settings() model.Settings {
	return a.settings
}

// Dirty reports whether the tree changed since the App was created.
func (a App) Dirty() bool {
	return a.dirty
}

// Cursor returns the current cursor position.
func (a App) Cursor() int {
	return a.cursor
}

// Rows returns the selectable rows of the dashboard.
func (a App) Rows() []Row {
	return a.rows
}

// Mode returns the current interaction mode.
func (a App) Mode() Mode {
	return a.mode
}

// Query returns the applied search query.
func (a App) Query() string {
	return a.search.Query
}

// Message returns the status line text.
func (a App) Message() string {
	return a.messageText
}

// selectedRow returns the row under the cursor, or nil when there are none.
func (a App) selectedRow() *Row {
	if a.cursor < 0 || a.cursor >= len(a.rows) {
		return nil
	}
	return &a.rows[a.cursor]
}

// hasLinks reports whether any link survived the current filter.
func (a App) hasLinks() bool {
	for _, r := range a.rows {
		if r.IsLink() {
			return true
		}
	}
	return false
}

func (a *App) setMessage(t MessageType, format string, args ...any) {
	a.messageType = t
	a.messageText = fmt.Sprintf(format, args...)
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

		switch a.mode {
		case ModeSearch:
			return a.updateSearch(msg)
		case ModeAdd:
			return a.updateAdd(msg)
		case ModeConfirmDelete:
			return a.updateConfirmDelete(msg)
		case ModeHelp:
			return a.updateHelp(msg)
		default:
			return a.updateNormal(msg)
		}
	}

	return a, nil
}

func (a App) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle gg sequence
	if key.Matches(msg, a.keys.Top) {
		if a.lastKeyWasG {
			a.cursor = 0
			a.lastKeyWasG = false
			return a, nil
		}
		a.lastKeyWasG = true
		return a, nil
	}

	// Reset g flag for any other key
	a.lastKeyWasG = false

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Down):
		if len(a.rows) > 0 && a.cursor < len(a.rows)-1 {
			a.cursor++
		}

	case key.Matches(msg, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}

	case key.Matches(msg, a.keys.Bottom):
		if len(a.rows) > 0 {
			a.cursor = len(a.rows) - 1
		}

	case key.Matches(msg, a.keys.Open):
		a.openSelection()

	case key.Matches(msg, a.keys.Search):
		a.mode = ModeSearch
		a.search.Input.SetValue(a.search.Query)
		a.search.Input.CursorEnd()
		cmd := a.search.Input.Focus()
		return a, cmd

	case key.Matches(msg, a.keys.Add):
		row := a.selectedRow()
		if row == nil {
			a.setMessage(MessageError, "No folder to add to")
			return a, nil
		}
		title, ok := tree.FindFolderTitle(a.tree, row.Section.ID)
		if !ok {
			title = row.Section.Title
		}
		a.add.Reset(row.Section.ID, title)
		a.mode = ModeAdd
		return a, textinput.Blink

	case key.Matches(msg, a.keys.Delete):
		if row := a.selectedRow(); row != nil && row.IsLink() {
			a.pendingDelete = row.Link
			a.mode = ModeConfirmDelete
		}

	case key.Matches(msg, a.keys.Yank):
		if row := a.selectedRow(); row != nil && row.IsLink() {
			if err := a.clip(row.Link.URL); err != nil {
				a.setMessage(MessageError, "Copy failed: %v", err)
			} else {
				a.setMessage(MessageSuccess, "Copied %s", row.Link.URL)
			}
		}

	case key.Matches(msg, a.keys.Help):
		a.mode = ModeHelp

	case key.Matches(msg, a.keys.Cancel):
		if a.search.Query != "" {
			a.search.Reset()
			a.cursor = 0
			a.refresh()
		}
		a.messageText = ""
	}

	return a, nil
}

func (a App) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Cancel):
		a.search.Reset()
		a.search.Input.Blur()
		a.mode = ModeNormal
		a.cursor = 0
		a.refresh()
		return a, nil

	case key.Matches(msg, a.keys.Confirm):
		a.search.Input.Blur()
		a.mode = ModeNormal
		a.openSelection()
		return a, nil

	case msg.Type == tea.KeyDown || msg.Type == tea.KeyCtrlN:
		if len(a.rows) > 0 && a.cursor < len(a.rows)-1 {
			a.cursor++
		}
		return a, nil

	case msg.Type == tea.KeyUp || msg.Type == tea.KeyCtrlP:
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.search.Input, cmd = a.search.Input.Update(msg)
	if q := a.search.Input.Value(); q != a.search.Query {
		a.search.Query = q
		a.cursor = 0
		a.refresh()
	}
	return a, cmd
}

func (a App) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Cancel):
		a.mode = ModeNormal
		return a, nil

	case key.Matches(msg, a.keys.Next):
		a.add.ToggleFocus()
		return a, nil

	case key.Matches(msg, a.keys.Confirm):
		title := strings.TrimSpace(a.add.TitleInput.Value())
		url := strings.TrimSpace(a.add.URLInput.Value())
		if title == "" || url == "" {
			a.add.Error = "Title and URL are required"
			return a, nil
		}

		link := model.NewLink(model.NewLinkParams{Title: title, URL: url, AddedAt: a.now()})
		a.tree = tree.InsertLink(a.tree, a.add.FolderID, link)
		a.dirty = true
		a.mode = ModeNormal
		a.refresh()
		a.selectLink(link.ID)
		a.setMessage(MessageSuccess, "Added %s to %s", title, a.add.FolderTitle)
		return a, nil
	}

	var cmd tea.Cmd
	if a.add.TitleInput.Focused() {
		a.add.TitleInput, cmd = a.add.TitleInput.Update(msg)
	} else {
		a.add.URLInput, cmd = a.add.URLInput.Update(msg)
	}
	return a, cmd
}

func (a App) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		link := a.pendingDelete
		a.tree = tree.RemoveByID(a.tree, link.ID)
		a.dirty = true
		a.pendingDelete = nil
		a.mode = ModeNormal
		a.refresh()
		a.setMessage(MessageSuccess, "Deleted %s", link.Title)
	case "n", "esc", "q":
		a.pendingDelete = nil
		a.mode = ModeNormal
	}
	return a, nil
}

func (a App) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Help), key.Matches(msg, a.keys.Cancel), key.Matches(msg, a.keys.Quit):
		a.mode = ModeNormal
	}
	return a, nil
}

// openSelection opens the selected link. With no link left under an active
// query, the query goes to the configured web search engine instead.
func (a *App) openSelection() {
	if row := a.selectedRow(); row != nil && row.IsLink() {
		a.openURL(row.Link.URL)
		return
	}
	if a.hasLinks() {
		return
	}
	if target := model.SearchTarget(a.settings.SearchEngine, a.search.Query); target != "" {
		a.openURL(target)
	}
}

func (a *App) openURL(url string) {
	if a.open == nil {
		return
	}
	if err := a.open(url); err != nil {
		a.setMessage(MessageError, "Could not open %s: %v", url, err)
		return
	}
	a.setMessage(MessageInfo, "Opened %s", url)
}

// selectLink moves the cursor to the row holding the link with the given id.
func (a *App) selectLink(id string) {
	for i, r := range a.rows {
		if r.IsLink() && r.Link.ID == id {
			a.cursor = i
			return
		}
	}
}

// View implements tea.Model.
func (a App) View() string {
	return a.renderView()
}
