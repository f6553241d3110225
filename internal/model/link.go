package model

import (
	"strconv"
	"time"
)

// Link is a leaf of the bookmark tree. Links are replaced, never edited in place.
type Link struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	AddDate string `json:"addDate,omitempty"` // epoch seconds, "" = unknown
	Icon    string `json:"icon,omitempty"`    // custom icon URL
}

// NewLinkParams holds parameters for creating a new Link.
type NewLinkParams struct {
	Title   string
	URL     string
	Icon    string
	AddedAt time.Time // zero = now
}

// NewLink creates a Link with a generated id and an add date stamp.
func NewLink(params NewLinkParams) *Link {
	addedAt := params.AddedAt
	if addedAt.IsZero() {
		addedAt = time.Now()
	}

	return &Link{
		ID:      NewID(),
		Title:   params.Title,
		URL:     params.URL,
		AddDate: EpochString(addedAt),
		Icon:    params.Icon,
	}
}

// EpochString formats t as the epoch-seconds string used by AddDate fields.
func EpochString(t time.Time) string {
	return strconv.FormatInt(t.Unix(), 10)
}
