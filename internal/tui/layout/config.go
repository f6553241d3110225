package layout

// LayoutConfig holds all layout-related configuration values.
type LayoutConfig struct {
	Shelf ShelfConfig
	Modal ModalConfig
	Input InputConfig
	Text  TextConfig
}

// ShelfConfig holds dimensions of the section list.
type ShelfConfig struct {
	// HeightReduction is subtracted from terminal height for list content.
	// Accounts for: app padding (1) + header (2) + pane borders (2) + help bar (2) = 7
	HeightReduction int

	// MinHeight is the minimum list height.
	MinHeight int

	// WidthReduction is subtracted from terminal width for the pane.
	// Accounts for app padding (4) and pane border/padding (4).
	WidthReduction int

	// MinWidth is the minimum content width.
	MinWidth int

	// TitleWidthPercent is the share of a row given to the link title.
	TitleWidthPercent int
}

// ModalConfig holds modal dialog configuration.
type ModalConfig struct {
	// DefaultWidthPercent is the standard modal width as percentage of terminal width.
	DefaultWidthPercent int

	// MinWidth is the minimum modal width in characters.
	MinWidth int

	// MaxWidth is the maximum modal width in characters.
	MaxWidth int
}

// InputConfig holds text input configuration.
type InputConfig struct {
	TitleCharLimit  int
	URLCharLimit    int
	SearchCharLimit int

	// StandardWidth is used for the title, URL and search inputs.
	StandardWidth int
}

// TextConfig holds text truncation configuration.
type TextConfig struct {
	// Ellipsis is the string used to indicate truncation.
	Ellipsis string
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() LayoutConfig {
	return LayoutConfig{
		Shelf: ShelfConfig{
			HeightReduction:   7,
			MinHeight:         3,
			WidthReduction:    8,
			MinWidth:          20,
			TitleWidthPercent: 40,
		},
		Modal: ModalConfig{
			DefaultWidthPercent: 50,
			MinWidth:            40,
			MaxWidth:            70,
		},
		Input: InputConfig{
			TitleCharLimit:  100,
			URLCharLimit:    500,
			SearchCharLimit: 100,
			StandardWidth:   40,
		},
		Text: TextConfig{
			Ellipsis: "...",
		},
	}
}
