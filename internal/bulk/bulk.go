// Package bulk turns "name:url" text blocks into links for a named folder.
package bulk

import (
	"errors"
	"strings"
	"time"

	"github.com/nikbrunner/zennav/internal/model"
	"github.com/nikbrunner/zennav/internal/tree"
)

var (
	// ErrNoFolderName is returned when the target folder name is blank.
	ErrNoFolderName = errors.New("no target folder name given")
	// ErrNoLinks is returned when no line yields a name:url pair.
	ErrNoLinks = errors.New("no valid links recognized, expected name:url format")
)

const fullWidthColon = "："

// Entry is one parsed line.
type Entry struct {
	Title string
	URL   string
}

// Parse reads one entry per line. Each line is split at its first colon,
// ASCII or full-width, whichever comes first. Lines without a colon, or with
// an empty title or url, are skipped. Order and duplicates are kept.
func Parse(text string) []Entry {
	var entries []Entry
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		title, url, ok := splitAtColon(line)
		if !ok {
			continue
		}
		title, url = strings.TrimSpace(title), strings.TrimSpace(url)
		if title == "" || url == "" {
			continue
		}
		entries = append(entries, Entry{Title: title, URL: url})
	}
	return entries
}

func splitAtColon(line string) (before, after string, ok bool) {
	idx, width := strings.Index(line, ":"), 1
	if fw := strings.Index(line, fullWidthColon); fw != -1 && (idx == -1 || fw < idx) {
		idx, width = fw, len(fullWidthColon)
	}
	if idx == -1 {
		return "", "", false
	}
	return line[:idx], line[idx+width:], true
}

// Ingest parses text and adds the links to the top-level folder named
// folderName, creating it at the end of the tree when missing. It returns
// the new tree and the number of links added. On error t is returned as is.
func Ingest(t model.Tree, folderName, text string, now time.Time) (model.Tree, int, error) {
	folderName = strings.TrimSpace(folderName)
	if folderName == "" {
		return t, 0, ErrNoFolderName
	}

	entries := Parse(text)
	if len(entries) == 0 {
		return t, 0, ErrNoLinks
	}

	links := make([]*model.Link, len(entries))
	for i, e := range entries {
		links[i] = model.NewLink(model.NewLinkParams{
			Title:   e.Title,
			URL:     e.URL,
			AddedAt: now,
		})
	}

	return tree.AppendToNamedFolder(t, folderName, links), len(links), nil
}
