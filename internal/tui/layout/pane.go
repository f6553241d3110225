package layout

// CalculateListHeight computes the number of lines available to the section list.
// Returns at least MinHeight.
func CalculateListHeight(terminalHeight int, cfg ShelfConfig) int {
	height := terminalHeight - cfg.HeightReduction
	if height < cfg.MinHeight {
		return cfg.MinHeight
	}
	return height
}

// CalculateContentWidth computes the width available for list rows.
func CalculateContentWidth(terminalWidth int, cfg ShelfConfig) int {
	width := terminalWidth - cfg.WidthReduction
	if width < cfg.MinWidth {
		return cfg.MinWidth
	}
	return width
}

// CalculateColumns splits a row into title and URL widths. The URL column
// gets what is left after the title and a two-space gap.
func CalculateColumns(contentWidth int, cfg ShelfConfig) (title, url int) {
	title = contentWidth * cfg.TitleWidthPercent / 100
	url = contentWidth - title - 2
	if url < 0 {
		url = 0
	}
	return title, url
}

// CalculateViewportOffset calculates the scroll offset needed to keep the
// selected line visible within the viewport.
func CalculateViewportOffset(selected, total, viewportHeight int) int {
	if total <= viewportHeight {
		return 0
	}

	// Keep selection roughly centered, but clamp to valid range
	offset := selected - viewportHeight/2
	if offset < 0 {
		offset = 0
	}

	maxOffset := total - viewportHeight
	if offset > maxOffset {
		offset = maxOffset
	}

	return offset
}
