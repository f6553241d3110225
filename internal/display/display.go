// Package display flattens a (possibly filtered) bookmark tree into the
// ordered list of sections a dashboard renders.
package display

import (
	"strings"

	"github.com/nikbrunner/zennav/internal/model"
	"github.com/nikbrunner/zennav/internal/tree"
)

// Section is one rendered shelf: a folder and its direct links.
// A placeholder section has no links.
type Section struct {
	ID    string
	Title string
	Links []*model.Link
}

// IsPlaceholder reports whether s stands in for a folder with no direct links.
func (s Section) IsPlaceholder() bool {
	return len(s.Links) == 0
}

// Active reports whether query filters anything.
func Active(query string) bool {
	return strings.TrimSpace(query) != ""
}

// Sections filters t by query and projects the result.
func Sections(t model.Tree, query string) []Section {
	return Project(tree.Filter(t, query), query)
}

// Project walks filtered in pre-order. A folder with direct links yields a
// section holding them; a folder without any yields an empty placeholder
// unless query is active, in which case it yields nothing. Sub-folders
// follow their parent.
func Project(filtered model.Tree, query string) []Section {
	active := Active(query)

	var out []Section
	var walk func(f *model.Folder)
	walk = func(f *model.Folder) {
		if links := f.Links(); len(links) > 0 {
			out = append(out, Section{ID: f.ID, Title: f.Title, Links: links})
		} else if !active {
			out = append(out, Section{ID: f.ID, Title: f.Title})
		}
		for _, sub := range f.SubFolders() {
			walk(sub)
		}
	}
	for _, f := range filtered {
		walk(f)
	}
	return out
}
