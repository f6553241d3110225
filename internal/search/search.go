package search

import (
	"strings"

	"github.com/nikbrunner/zennav/internal/model"
	"github.com/nikbrunner/zennav/internal/tree"
	"github.com/sahilm/fuzzy"
)

// Result represents a fuzzy search match.
type Result struct {
	Link           *model.Link
	Folder         *model.Folder // folder holding Link
	MatchedIndexes []int
	Score          int
}

// linkTitles implements fuzzy.Source over located links.
type linkTitles []tree.Located

func (lt linkTitles) String(i int) string {
	return lt[i].Link.Title
}

func (lt linkTitles) Len() int {
	return len(lt)
}

// FuzzySearchLinks searches every link in t by title using fuzzy matching.
// Returns results sorted by match score (best first).
func FuzzySearchLinks(t model.Tree, query string) []Result {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	links := linkTitles(tree.Links(t))
	matches := fuzzy.FindFrom(query, links)

	results := make([]Result, len(matches))
	for i, m := range matches {
		results[i] = Result{
			Link:           links[m.Index].Link,
			Folder:         links[m.Index].Folder,
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}

	return results
}
