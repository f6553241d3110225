package model

import (
	"net/url"
	"regexp"
	"strings"
)

// SearchEngine is a web search provider the search bar can hand queries to.
type SearchEngine struct {
	Name string
	URL  string // query is appended, escaped
}

// SearchEngines maps the settings key to its engine.
var SearchEngines = map[string]SearchEngine{
	"google":     {Name: "Google", URL: "https://www.google.com/search?q="},
	"bing":       {Name: "Bing", URL: "https://www.bing.com/search?q="},
	"baidu":      {Name: "Baidu", URL: "https://www.baidu.com/s?wd="},
	"sogou":      {Name: "Sogou", URL: "https://www.sogou.com/web?query="},
	"wikipedia":  {Name: "Wikipedia", URL: "https://zh.wikipedia.org/wiki/"},
	"duckduckgo": {Name: "DuckDuckGo", URL: "https://duckduckgo.com/?q="},
	"yahoo":      {Name: "Yahoo", URL: "https://search.yahoo.com/search?p="},
}

const fallbackEngine = "bing"

var directURL = regexp.MustCompile(`^(http|https)://[^ "]+$`)

// EngineFor returns the engine for key, falling back to Bing.
func EngineFor(key string) SearchEngine {
	if e, ok := SearchEngines[key]; ok {
		return e
	}
	return SearchEngines[fallbackEngine]
}

// SearchTarget returns the URL to open for a search bar query: the query
// itself when it already is a URL, otherwise a search on the given engine.
// An empty query returns "".
func SearchTarget(engineKey, query string) string {
	q := strings.TrimSpace(query)
	if q == "" {
		return ""
	}
	if directURL.MatchString(q) {
		return q
	}
	return EngineFor(engineKey).URL + escapeComponent(q)
}

// escapeComponent escapes s for use anywhere in a URL, spaces as %20.
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
