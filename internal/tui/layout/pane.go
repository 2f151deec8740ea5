package layout

// PaneLayout holds calculated pane widths.
type PaneLayout struct {
	SidebarWidth int
	ListWidth    int
}

// CalculatePaneHeight computes the content height for panes.
// Returns at least MinHeight.
func CalculatePaneHeight(terminalHeight int, cfg PaneConfig) int {
	return max(terminalHeight-cfg.HeightReduction, cfg.MinHeight)
}

// CalculatePaneWidths splits the terminal width into the folder tree and
// the main list.
func CalculatePaneWidths(terminalWidth int, cfg PaneConfig) PaneLayout {
	sidebar := terminalWidth * cfg.SidebarWidthPercent / 100
	sidebar = min(max(sidebar, cfg.MinSidebarWidth), cfg.MaxSidebarWidth)

	list := max(terminalWidth-sidebar-cfg.BorderWidth, cfg.MinListWidth)

	return PaneLayout{
		SidebarWidth: sidebar,
		ListWidth:    list,
	}
}

// CalculateItemWidth computes the width available for item content.
func CalculateItemWidth(paneWidth int, cfg PaneConfig) int {
	return max(paneWidth-cfg.ContentPadding, 1)
}

// CalculateViewportOffset calculates the scroll offset needed to keep the
// selected item visible within the viewport.
func CalculateViewportOffset(selected, total, viewportHeight int) int {
	if total <= viewportHeight {
		return 0
	}

	// Keep selection roughly centered, but clamp to valid range
	offset := max(selected-viewportHeight/2, 0)
	return min(offset, total-viewportHeight)
}
