package model

import (
	"encoding/json"
	"fmt"
)

// Tree is the ordered list of top-level folders. The root itself has no id.
type Tree []*Folder

// MarshalJSON implements json.Marshaler.
func (t Tree) MarshalJSON() ([]byte, error) {
	nodes := make([]Node, len(t))
	for i, f := range t {
		nodes[i] = FolderNode(f)
	}
	return json.Marshal(nodes)
}

// UnmarshalJSON implements json.Unmarshaler. Top-level links are rejected.
func (t *Tree) UnmarshalJSON(data []byte) error {
	var nodes []Node
	if err := json.Unmarshal(data, &nodes); err != nil {
		return err
	}
	if nodes == nil {
		*t = nil
		return nil
	}

	tree := make(Tree, 0, len(nodes))
	for i, n := range nodes {
		if n.Kind != KindFolder {
			return fmt.Errorf("tree entry %d (%q) is not a folder", i, n.Title())
		}
		tree = append(tree, n.Folder)
	}
	*t = tree
	return nil
}

// DefaultTree returns the bookmarks a fresh install starts with.
func DefaultTree() Tree {
	link := func(title, url string) Node {
		return LinkNode(&Link{ID: NewID(), Title: title, URL: url})
	}

	return Tree{
		{
			ID:    "1",
			Title: "常用推荐",
			Children: []Node{
				link("Bilibili", "https://www.bilibili.com"),
				link("小红书", "https://www.xiaohongshu.com"),
				link("YouTube", "https://www.youtube.com"),
			},
		},
		{
			ID:    "2",
			Title: "生活方式",
			Children: []Node{
				link("Instagram", "https://www.instagram.com"),
				link("Pinterest", "https://www.pinterest.com"),
				link("豆瓣", "https://www.douban.com"),
			},
		},
	}
}
