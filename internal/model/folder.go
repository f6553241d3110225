package model

// Folder is an internal node. Children order is display order.
type Folder struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Children     []Node `json:"children"`
	AddDate      string `json:"addDate,omitempty"`
	LastModified string `json:"lastModified,omitempty"`
}

// NewFolderParams holds parameters for creating a new Folder.
type NewFolderParams struct {
	Title    string
	Children []Node
}

// NewFolder creates a Folder with a generated id.
func NewFolder(params NewFolderParams) *Folder {
	children := params.Children
	if children == nil {
		children = []Node{}
	}

	return &Folder{
		ID:       NewID(),
		Title:    params.Title,
		Children: children,
	}
}

// WithChildren returns a copy of f holding children. f itself is not touched.
func (f *Folder) WithChildren(children []Node) *Folder {
	clone := *f
	clone.Children = children
	return &clone
}

// Links returns the direct link children of f, in order.
func (f *Folder) Links() []*Link {
	var links []*Link
	for _, c := range f.Children {
		if c.Kind == KindLink {
			links = append(links, c.Link)
		}
	}
	return links
}

// SubFolders returns the direct folder children of f, in order.
func (f *Folder) SubFolders() []*Folder {
	var folders []*Folder
	for _, c := range f.Children {
		if c.Kind == KindFolder {
			folders = append(folders, c.Folder)
		}
	}
	return folders
}
