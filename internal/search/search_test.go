package search

import (
	"testing"

	"github.com/nikbrunner/zennav/internal/model"
)

// treeOf puts all links into one folder, plus a nested folder holding nested.
func treeOf(links []*model.Link, nested ...*model.Link) model.Tree {
	folder := &model.Folder{ID: "f1", Title: "Bookmarks", Children: []model.Node{}}
	for _, l := range links {
		folder.Children = append(folder.Children, model.LinkNode(l))
	}
	if len(nested) > 0 {
		sub := &model.Folder{ID: "f2", Title: "Nested", Children: []model.Node{}}
		for _, l := range nested {
			sub.Children = append(sub.Children, model.LinkNode(l))
		}
		folder.Children = append(folder.Children, model.FolderNode(sub))
	}
	return model.Tree{folder}
}

func TestFuzzySearchLinks_EmptyQuery(t *testing.T) {
	tr := treeOf([]*model.Link{{ID: "b1", Title: "GitHub", URL: "https://github.com"}})

	for _, q := range []string{"", "   "} {
		if results := FuzzySearchLinks(tr, q); len(results) != 0 {
			t.Errorf("expected 0 results for %q, got %d", q, len(results))
		}
	}
}

func TestFuzzySearchLinks_ExactMatch(t *testing.T) {
	tr := treeOf([]*model.Link{
		{ID: "b1", Title: "GitHub", URL: "https://github.com"},
		{ID: "b2", Title: "GitLab", URL: "https://gitlab.com"},
	})

	results := FuzzySearchLinks(tr, "GitHub")

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Link.Title != "GitHub" {
		t.Errorf("expected GitHub, got %s", results[0].Link.Title)
	}
	if results[0].Folder.ID != "f1" {
		t.Errorf("expected parent folder f1, got %s", results[0].Folder.ID)
	}
}

func TestFuzzySearchLinks_FuzzyMatch(t *testing.T) {
	tr := treeOf([]*model.Link{
		{ID: "b1", Title: "TanStack Router", URL: "https://tanstack.com/router"},
		{ID: "b2", Title: "React Router", URL: "https://reactrouter.com"},
	})

	// "tanrou" should fuzzy match "TanStack Router"
	results := FuzzySearchLinks(tr, "tanrou")

	if len(results) < 1 {
		t.Fatalf("expected at least 1 result for 'tanrou', got %d", len(results))
	}
	if results[0].Link.Title != "TanStack Router" {
		t.Errorf("expected TanStack Router as first result, got %s", results[0].Link.Title)
	}
}

func TestFuzzySearchLinks_SearchesNestedFolders(t *testing.T) {
	tr := treeOf(
		[]*model.Link{{ID: "b1", Title: "GitHub", URL: "https://github.com"}},
		&model.Link{ID: "b2", Title: "GitLab", URL: "https://gitlab.com"},
		&model.Link{ID: "b3", Title: "Gitea", URL: "https://gitea.io"},
	)

	results := FuzzySearchLinks(tr, "git")

	if len(results) != 3 {
		t.Fatalf("expected 3 results for 'git', got %d", len(results))
	}
	for _, r := range results {
		if r.Link.ID != "b1" && r.Folder.ID != "f2" {
			t.Errorf("expected %s to report nested folder f2, got %s", r.Link.Title, r.Folder.ID)
		}
	}
}

func TestFuzzySearchLinks_NoMatch(t *testing.T) {
	tr := treeOf([]*model.Link{{ID: "b1", Title: "GitHub", URL: "https://github.com"}})

	if results := FuzzySearchLinks(tr, "xyz123"); len(results) != 0 {
		t.Errorf("expected 0 results for 'xyz123', got %d", len(results))
	}
}

func TestFuzzySearchLinks_CaseInsensitive(t *testing.T) {
	tr := treeOf([]*model.Link{{ID: "b1", Title: "GitHub", URL: "https://github.com"}})

	if results := FuzzySearchLinks(tr, "github"); len(results) != 1 {
		t.Fatalf("expected 1 result for case-insensitive match, got %d", len(results))
	}
}

func TestFuzzySearchLinks_SortedByScore(t *testing.T) {
	tr := treeOf([]*model.Link{
		{ID: "b1", Title: "React Router Documentation", URL: "https://reactrouter.com"},
		{ID: "b2", Title: "Router", URL: "https://router.example.com"},
	})

	results := FuzzySearchLinks(tr, "router")

	if len(results) < 2 {
		t.Fatalf("expected at least 2 results, got %d", len(results))
	}
	if results[0].Link.Title != "Router" {
		t.Errorf("expected 'Router' as first result (exact match), got %s", results[0].Link.Title)
	}
}

func TestFuzzySearchLinks_DefaultTree(t *testing.T) {
	results := FuzzySearchLinks(model.DefaultTree(), "tube")

	if len(results) != 1 || results[0].Link.Title != "YouTube" {
		t.Fatalf("expected YouTube, got %+v", results)
	}
}
