package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Kind discriminates between links and folders.
type Kind int

const (
	KindLink Kind = iota
	KindFolder
)

func (k Kind) String() string {
	switch k {
	case KindLink:
		return "link"
	case KindFolder:
		return "folder"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Node is either a Link or a Folder. Only the field matching Kind is set.
// Build nodes with LinkNode and FolderNode.
type Node struct {
	Kind   Kind
	Link   *Link
	Folder *Folder
}

// LinkNode wraps l as a Node.
func LinkNode(l *Link) Node {
	return Node{Kind: KindLink, Link: l}
}

// FolderNode wraps f as a Node.
func FolderNode(f *Folder) Node {
	return Node{Kind: KindFolder, Folder: f}
}

// IsFolder returns true if this node is a folder.
func (n Node) IsFolder() bool {
	return n.Kind == KindFolder
}

// ID returns the node's id regardless of kind.
func (n Node) ID() string {
	if n.Kind == KindFolder {
		return n.Folder.ID
	}
	return n.Link.ID
}

// Title returns the node's title regardless of kind.
func (n Node) Title() string {
	if n.Kind == KindFolder {
		return n.Folder.Title
	}
	return n.Link.Title
}

var errUnknownNodeType = errors.New("unknown node type")

// nodeJSON is the persisted shape of a node. Type is always written; on read,
// a missing type falls back to the structural rule of older saves
// (children present = folder).
type nodeJSON struct {
	Type         string  `json:"type,omitempty"`
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	URL          string  `json:"url,omitempty"`
	Icon         string  `json:"icon,omitempty"`
	AddDate      string  `json:"addDate,omitempty"`
	LastModified string  `json:"lastModified,omitempty"`
	Children     *[]Node `json:"children,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (n Node) MarshalJSON() ([]byte, error) {
	switch n.Kind {
	case KindLink:
		return json.Marshal(nodeJSON{
			Type:    KindLink.String(),
			ID:      n.Link.ID,
			Title:   n.Link.Title,
			URL:     n.Link.URL,
			Icon:    n.Link.Icon,
			AddDate: n.Link.AddDate,
		})
	case KindFolder:
		children := n.Folder.Children
		if children == nil {
			children = []Node{}
		}
		return json.Marshal(nodeJSON{
			Type:         KindFolder.String(),
			ID:           n.Folder.ID,
			Title:        n.Folder.Title,
			AddDate:      n.Folder.AddDate,
			LastModified: n.Folder.LastModified,
			Children:     &children,
		})
	default:
		return nil, fmt.Errorf("marshal node %v: %w", n.Kind, errUnknownNodeType)
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Node) UnmarshalJSON(data []byte) error {
	var raw nodeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	kind := raw.Type
	if kind == "" {
		kind = KindLink.String()
		if raw.Children != nil {
			kind = KindFolder.String()
		}
	}

	switch kind {
	case KindLink.String():
		*n = LinkNode(&Link{
			ID:      raw.ID,
			Title:   raw.Title,
			URL:     raw.URL,
			Icon:    raw.Icon,
			AddDate: raw.AddDate,
		})
	case KindFolder.String():
		children := []Node{}
		if raw.Children != nil && *raw.Children != nil {
			children = *raw.Children
		}
		*n = FolderNode(&Folder{
			ID:           raw.ID,
			Title:        raw.Title,
			Children:     children,
			AddDate:      raw.AddDate,
			LastModified: raw.LastModified,
		})
	default:
		return fmt.Errorf("unmarshal node %q: %w", kind, errUnknownNodeType)
	}
	return nil
}
