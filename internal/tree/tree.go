// Package tree holds the copy-on-write operations on a bookmark tree.
//
// Every function returns a new tree and leaves its input alone. Folders on
// the path to an edit are rebuilt; untouched subtrees are shared by reference,
// so callers must treat nodes as immutable. When an operation changes nothing
// (stale id, blank query) the input tree itself is returned.
package tree

import (
	"strings"

	"github.com/nikbrunner/zennav/internal/model"
	"golang.org/x/text/cases"
)

// InsertLink appends link to the children of the folder with id folderID,
// searched depth-first at any depth.
func InsertLink(t model.Tree, folderID string, link *model.Link) model.Tree {
	out, changed := mapFolders(t, func(f *model.Folder) (*model.Folder, bool) {
		return insertInto(f, folderID, link)
	})
	if !changed {
		return t
	}
	return out
}

func insertInto(f *model.Folder, folderID string, link *model.Link) (*model.Folder, bool) {
	if f.ID == folderID {
		children := make([]model.Node, 0, len(f.Children)+1)
		children = append(children, f.Children...)
		children = append(children, model.LinkNode(link))
		return f.WithChildren(children), true
	}

	for i, c := range f.Children {
		if c.Kind != model.KindFolder {
			continue
		}
		updated, ok := insertInto(c.Folder, folderID, link)
		if !ok {
			continue
		}
		children := make([]model.Node, len(f.Children))
		copy(children, f.Children)
		children[i] = model.FolderNode(updated)
		return f.WithChildren(children), true
	}
	return f, false
}

// RemoveByID removes the link or folder with the given id wherever it is.
// A removed folder takes its whole subtree with it.
func RemoveByID(t model.Tree, id string) model.Tree {
	out := make(model.Tree, 0, len(t))
	changed := false
	for _, f := range t {
		if f.ID == id {
			changed = true
			continue
		}
		updated, ok := removeFrom(f, id)
		changed = changed || ok
		out = append(out, updated)
	}
	if !changed {
		return t
	}
	return out
}

func removeFrom(f *model.Folder, id string) (*model.Folder, bool) {
	var children []model.Node
	changed := false
	for i, c := range f.Children {
		if c.ID() == id {
			if !changed {
				children = append(make([]model.Node, 0, len(f.Children)), f.Children[:i]...)
				changed = true
			}
			continue
		}
		if c.Kind == model.KindFolder {
			if updated, ok := removeFrom(c.Folder, id); ok {
				if !changed {
					children = append(make([]model.Node, 0, len(f.Children)), f.Children[:i]...)
					changed = true
				}
				children = append(children, model.FolderNode(updated))
				continue
			}
		}
		if changed {
			children = append(children, c)
		}
	}
	if !changed {
		return f, false
	}
	return f.WithChildren(children), true
}

// Filter keeps the links whose title or url contains query, ignoring case.
// Folders left without children are dropped; folder titles never match.
// A blank query returns t.
func Filter(t model.Tree, query string) model.Tree {
	if strings.TrimSpace(query) == "" {
		return t
	}

	// A Caser carries state, so each call gets its own.
	m := matcher{fold: cases.Fold()}
	m.needle = m.fold.String(query)

	out := model.Tree{}
	for _, f := range t {
		if kept := m.filterFolder(f); kept != nil {
			out = append(out, kept)
		}
	}
	return out
}

type matcher struct {
	fold   cases.Caser
	needle string
}

func (m matcher) filterFolder(f *model.Folder) *model.Folder {
	var children []model.Node
	for _, c := range f.Children {
		switch c.Kind {
		case model.KindFolder:
			if kept := m.filterFolder(c.Folder); kept != nil {
				children = append(children, model.FolderNode(kept))
			}
		case model.KindLink:
			if m.matches(c.Link) {
				children = append(children, c)
			}
		}
	}
	if len(children) == 0 {
		return nil
	}
	return f.WithChildren(children)
}

func (m matcher) matches(l *model.Link) bool {
	return strings.Contains(m.fold.String(l.Title), m.needle) ||
		strings.Contains(m.fold.String(l.URL), m.needle)
}

// FindFolderTitle returns the title of the first folder with the given id,
// searching depth-first through folders only.
func FindFolderTitle(t model.Tree, id string) (string, bool) {
	if f := FindFolder(t, id); f != nil {
		return f.Title, true
	}
	return "", false
}

// FindFolder returns the first folder with the given id, or nil.
func FindFolder(t model.Tree, id string) *model.Folder {
	for _, f := range t {
		if found := findIn(f, id); found != nil {
			return found
		}
	}
	return nil
}

func findIn(f *model.Folder, id string) *model.Folder {
	if f.ID == id {
		return f
	}
	for _, sub := range f.SubFolders() {
		if found := findIn(sub, id); found != nil {
			return found
		}
	}
	return nil
}

// AppendToNamedFolder appends links to the top-level folder titled exactly
// name, or to a new top-level folder with that name at the end of the tree.
// With no links, t is returned.
func AppendToNamedFolder(t model.Tree, name string, links []*model.Link) model.Tree {
	if len(links) == 0 {
		return t
	}

	nodes := make([]model.Node, len(links))
	for i, l := range links {
		nodes[i] = model.LinkNode(l)
	}

	for i, f := range t {
		if f.Title != name {
			continue
		}
		children := make([]model.Node, 0, len(f.Children)+len(nodes))
		children = append(children, f.Children...)
		children = append(children, nodes...)

		out := make(model.Tree, len(t))
		copy(out, t)
		out[i] = f.WithChildren(children)
		return out
	}

	out := make(model.Tree, 0, len(t)+1)
	out = append(out, t...)
	return append(out, model.NewFolder(model.NewFolderParams{Title: name, Children: nodes}))
}

// Links returns every link in pre-order, paired with the folder holding it.
func Links(t model.Tree) []Located {
	var out []Located
	var walk func(f *model.Folder)
	walk = func(f *model.Folder) {
		for _, c := range f.Children {
			if c.Kind == model.KindFolder {
				walk(c.Folder)
				continue
			}
			out = append(out, Located{Link: c.Link, Folder: f})
		}
	}
	for _, f := range t {
		walk(f)
	}
	return out
}

// Located is a link together with its parent folder.
type Located struct {
	Link   *model.Link
	Folder *model.Folder
}

// CountLinks returns the number of links in t.
func CountLinks(t model.Tree) int {
	return len(Links(t))
}

// CountFolders returns the number of folders in t, nested ones included.
func CountFolders(t model.Tree) int {
	n := 0
	var walk func(f *model.Folder)
	walk = func(f *model.Folder) {
		n++
		for _, sub := range f.SubFolders() {
			walk(sub)
		}
	}
	for _, f := range t {
		walk(f)
	}
	return n
}

// mapFolders applies fn to each top-level folder and rebuilds the tree if any
// call reports a change. Only the first change is applied.
func mapFolders(t model.Tree, fn func(*model.Folder) (*model.Folder, bool)) (model.Tree, bool) {
	for i, f := range t {
		updated, ok := fn(f)
		if !ok {
			continue
		}
		out := make(model.Tree, len(t))
		copy(out, t)
		out[i] = updated
		return out, true
	}
	return t, false
}
