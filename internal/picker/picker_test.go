package picker

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/zennav/internal/model"
	"github.com/nikbrunner/zennav/internal/search"
)

func twoResults() []search.Result {
	folder := &model.Folder{ID: "f1", Title: "Dev"}
	return []search.Result{
		{Link: &model.Link{ID: "b1", Title: "GitHub", URL: "https://github.com"}, Folder: folder},
		{Link: &model.Link{ID: "b2", Title: "GitLab", URL: "https://gitlab.com"}, Folder: folder},
	}
}

func TestPicker_InitialState(t *testing.T) {
	p := New(twoResults(), "git")

	if p.cursor != 0 {
		t.Errorf("expected cursor at 0, got %d", p.cursor)
	}
	if len(p.results) != 2 {
		t.Errorf("expected 2 results, got %d", len(p.results))
	}
}

func TestPicker_NavigateDown(t *testing.T) {
	p := New(twoResults(), "git")
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}

	newModel, _ := p.Update(msg)
	p = newModel.(Picker)

	if p.cursor != 1 {
		t.Errorf("expected cursor at 1, got %d", p.cursor)
	}
}

func TestPicker_NavigateUp(t *testing.T) {
	p := New(twoResults(), "git")
	// Move down first
	p.cursor = 1

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}
	newModel, _ := p.Update(msg)
	p = newModel.(Picker)

	if p.cursor != 0 {
		t.Errorf("expected cursor at 0, got %d", p.cursor)
	}
}

func TestPicker_BoundsCheck(t *testing.T) {
	p := New(twoResults()[:1], "git")

	// Try to go up from 0 (should stay at 0)
	newModel, _ := p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	p = newModel.(Picker)
	if p.cursor != 0 {
		t.Errorf("expected cursor at 0, got %d", p.cursor)
	}

	// Try to go down from last (should stay at last)
	newModel, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	p = newModel.(Picker)
	if p.cursor != 0 {
		t.Errorf("expected cursor at 0 (only 1 item), got %d", p.cursor)
	}
}

func TestPicker_SelectItem(t *testing.T) {
	results := twoResults()
	p := New(results, "git")
	p.cursor = 1 // Select GitLab

	newModel, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	p = newModel.(Picker)

	if !p.selected {
		t.Error("expected selected to be true after Enter")
	}
	if cmd == nil {
		t.Error("expected quit command after selection")
	}
	if p.SelectedLink() != results[1].Link {
		t.Error("expected GitLab to be selected")
	}
}

func TestPicker_Cancel(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyEsc},
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
	} {
		p := New(twoResults(), "git")

		newModel, cmd := p.Update(msg)
		p = newModel.(Picker)

		if !p.Cancelled() {
			t.Errorf("expected cancelled after %s", msg)
		}
		if cmd == nil {
			t.Error("expected quit command after cancel")
		}
		if p.SelectedLink() != nil {
			t.Error("expected nil when cancelled")
		}
	}
}

func TestPicker_ArrowKeys(t *testing.T) {
	p := New(twoResults(), "git")

	newModel, _ := p.Update(tea.KeyMsg{Type: tea.KeyDown})
	p = newModel.(Picker)
	if p.cursor != 1 {
		t.Errorf("expected cursor at 1 after down arrow, got %d", p.cursor)
	}

	newModel, _ = p.Update(tea.KeyMsg{Type: tea.KeyUp})
	p = newModel.(Picker)
	if p.cursor != 0 {
		t.Errorf("expected cursor at 0 after up arrow, got %d", p.cursor)
	}
}

func TestPicker_ViewShowsFolderAndURL(t *testing.T) {
	view := New(twoResults(), "git").View()

	for _, want := range []string{"Search: git (2 results)", "https://gitlab.com", "Dev"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}

func TestPicker_ScrollsWithCursor(t *testing.T) {
	var results []search.Result
	for i := 0; i < 30; i++ {
		results = append(results, search.Result{Link: &model.Link{
			ID: string(rune('a' + i)), Title: "Link " + string(rune('A'+i)), URL: "https://example.com",
		}})
	}

	p := New(results, "link")
	newModel, _ := p.Update(tea.WindowSizeMsg{Width: 80, Height: 12})
	p = newModel.(Picker)
	p.cursor = 20

	start, end := p.visibleRange()
	if p.cursor < start || p.cursor >= end {
		t.Errorf("cursor %d outside visible range [%d,%d)", p.cursor, start, end)
	}
	if end-start != 4 {
		t.Errorf("expected 4 visible results for height 12, got %d", end-start)
	}
}
