package importer

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/nikbrunner/zennav/internal/model"
	"golang.org/x/net/html"
)

// ErrUnparseable is returned when the document holds no bookmark list.
var ErrUnparseable = errors.New("no bookmark list found")

const (
	defaultFolderTitle = "新建文件夹"
	defaultLinkTitle   = "未命名"

	// UncategorizedTitle names the folder that collects top-level links.
	UncategorizedTitle = "未分类"
)

// Decode parses Netscape bookmark HTML into a tree. Every node gets a fresh
// id. Links found at the top level are moved into a leading UncategorizedTitle
// folder. A document without a <dl> yields ErrUnparseable; a list without
// entries yields an empty tree.
func Decode(r io.Reader) (model.Tree, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	root := findElement(doc, "dl")
	if root == nil {
		return nil, ErrUnparseable
	}

	d := decoder{base: baseURL(doc)}

	tree := model.Tree{}
	var loose []model.Node
	for _, n := range d.list(root) {
		if n.IsFolder() {
			tree = append(tree, n.Folder)
		} else {
			loose = append(loose, n)
		}
	}

	if len(loose) > 0 {
		uncategorized := model.NewFolder(model.NewFolderParams{
			Title:    UncategorizedTitle,
			Children: loose,
		})
		tree = append(model.Tree{uncategorized}, tree...)
	}

	return tree, nil
}

type decoder struct {
	base *url.URL
}

// list converts the <dt> entries of a <dl> into nodes.
func (d decoder) list(dl *html.Node) []model.Node {
	nodes := []model.Node{}

	for item := firstElementChild(dl); item != nil; item = nextElementSibling(item) {
		if !isElement(item, "dt") {
			continue
		}

		if h3 := findElement(item, "h3"); h3 != nil {
			var children []model.Node
			if sub := nestedList(item); sub != nil {
				children = d.list(sub)
			}

			folder := model.NewFolder(model.NewFolderParams{
				Title:    orDefault(getTextContent(h3), defaultFolderTitle),
				Children: children,
			})
			folder.AddDate = getAttr(h3, "add_date")
			folder.LastModified = getAttr(h3, "last_modified")
			nodes = append(nodes, model.FolderNode(folder))
			continue
		}

		if a := findElement(item, "a"); a != nil {
			link := &model.Link{
				ID:      model.NewID(),
				Title:   orDefault(getTextContent(a), defaultLinkTitle),
				URL:     d.resolve(getAttr(a, "href")),
				AddDate: getAttr(a, "add_date"),
				Icon:    getAttr(a, "icon"),
			}
			nodes = append(nodes, model.LinkNode(link))
		}
	}

	return nodes
}

// nestedList finds the <dl> holding a folder's children. Exporters put it
// right after the <dt>, inside a following <dd>, or (as the HTML5 parser
// does with unclosed <dt> tags) inside the <dt> itself.
func nestedList(item *html.Node) *html.Node {
	next := nextElementSibling(item)
	switch {
	case next != nil && isElement(next, "dl"):
		return next
	case next != nil && isElement(next, "dd"):
		return findElement(next, "dl")
	default:
		return findElement(item, "dl")
	}
}

func (d decoder) resolve(href string) string {
	if d.base == nil || href == "" {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return d.base.ResolveReference(ref).String()
}

func baseURL(doc *html.Node) *url.URL {
	base := findElement(doc, "base")
	if base == nil {
		return nil
	}
	u, err := url.Parse(getAttr(base, "href"))
	if err != nil || !u.IsAbs() {
		return nil
	}
	return u
}

// findElement returns the first descendant of n (depth-first, document
// order) with the given tag, or nil.
func findElement(n *html.Node, tag string) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if isElement(c, tag) {
			return c
		}
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func isElement(n *html.Node, tag string) bool {
	return n.Type == html.ElementNode && strings.EqualFold(n.Data, tag)
}

func firstElementChild(n *html.Node) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}
	return nil
}

func nextElementSibling(n *html.Node) *html.Node {
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode {
			return s
		}
	}
	return nil
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// getTextContent returns the text content of a node.
func getTextContent(n *html.Node) string {
	var text strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(text.String())
}

// getAttr returns the value of an attribute, case-insensitive.
func getAttr(n *html.Node, key string) string {
	key = strings.ToLower(key)
	for _, attr := range n.Attr {
		if strings.ToLower(attr.Key) == key {
			return attr.Val
		}
	}
	return ""
}
