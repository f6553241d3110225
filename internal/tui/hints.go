package tui

import "strings"

// Hint represents a single keybind hint for display.
type Hint struct {
	Key  string // Display key (e.g., "j/k", "enter")
	Desc string // Short description (e.g., "move", "open")
}

// renderHint renders a single hint as "key:desc" with styling.
func (a App) renderHint(h Hint) string {
	return a.styles.HintKey.Render(h.Key) + ":" + a.styles.HintDesc.Render(h.Desc)
}

// renderHints renders hints in horizontal format for bottom bar: "j/k:move enter:open"
func (a App) renderHints(hints HintSet) string {
	allHints := hints.All()
	if len(allHints) == 0 {
		return ""
	}

	parts := make([]string, len(allHints))
	for i, h := range allHints {
		parts[i] = a.renderHint(h)
	}
	return strings.Join(parts, " ")
}

// renderHintsInline renders hints in inline format for modals: "enter save  esc cancel"
func (a App) renderHintsInline(hints []Hint) string {
	if len(hints) == 0 {
		return ""
	}

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = a.styles.HintKey.Render(h.Key) + " " + a.styles.HintDesc.Render(h.Desc)
	}
	return strings.Join(parts, "  ")
}

// HintSet is an ordered collection of hints by group.
type HintSet struct {
	Nav    []Hint // Navigation hints (j/k, gg, etc.)
	Edit   []Hint // Edit hints (a, d)
	Action []Hint // Action hints (enter, /, y)
	System []Hint // System hints (?, q, esc)
}

// All returns all hints flattened in display order: Nav + Action + Edit + System.
func (h HintSet) All() []Hint {
	result := make([]Hint, 0, len(h.Nav)+len(h.Action)+len(h.Edit)+len(h.System))
	result = append(result, h.Nav...)
	result = append(result, h.Action...)
	result = append(result, h.Edit...)
	result = append(result, h.System...)
	return result
}

// getContextualHints returns the appropriate hints for the current mode.
func (a App) getContextualHints() HintSet {
	switch a.mode {
	case ModeNormal:
		return a.getNormalModeHints()
	case ModeSearch:
		return a.getSearchModeHints()
	case ModeAdd:
		return HintSet{
			Nav:    []Hint{{Key: "tab", Desc: "next"}},
			Action: []Hint{{Key: "enter", Desc: "save"}},
			System: []Hint{{Key: "esc", Desc: "cancel"}},
		}
	case ModeConfirmDelete:
		// Shown inside the modal itself.
		return HintSet{}
	case ModeHelp:
		return HintSet{
			System: []Hint{{Key: "?/q/esc", Desc: "close"}},
		}
	default:
		return HintSet{}
	}
}

// getNormalModeHints returns hints for ModeNormal (dashboard browse).
func (a App) getNormalModeHints() HintSet {
	hints := HintSet{
		Nav: []Hint{
			{Key: "j/k", Desc: "move"},
		},
		Action: []Hint{
			{Key: "enter", Desc: "open"},
			{Key: "/", Desc: "search"},
			{Key: "y", Desc: "yank"},
		},
		Edit: []Hint{
			{Key: "a", Desc: "add"},
			{Key: "d", Desc: "del"},
		},
		System: []Hint{
			{Key: "?", Desc: "help"},
			{Key: "q", Desc: "quit"},
		},
	}
	if a.search.Query != "" {
		hints.System = append([]Hint{{Key: "esc", Desc: "clear"}}, hints.System...)
	}
	return hints
}

// getSearchModeHints returns hints for ModeSearch (live filter input).
func (a App) getSearchModeHints() HintSet {
	desc := "open"
	if !a.hasLinks() {
		desc = "web search"
	}
	return HintSet{
		Nav: []Hint{
			{Key: "↑/↓", Desc: "move"},
		},
		Action: []Hint{
			{Key: "enter", Desc: desc},
		},
		System: []Hint{
			{Key: "esc", Desc: "clear"},
		},
	}
}
