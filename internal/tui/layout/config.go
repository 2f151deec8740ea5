package layout

// LayoutConfig holds all layout-related configuration values.
type LayoutConfig struct {
	Pane  PaneConfig
	Input InputConfig
	Text  TextConfig
}

// PaneConfig holds pane dimension configuration.
type PaneConfig struct {
	// HeightReduction is subtracted from terminal height for pane content.
	// Accounts for: app padding (1) + breadcrumb (1) + pane borders (2) + status (1) + help bar (1) = 6
	HeightReduction int

	// MinHeight is the minimum pane height.
	MinHeight int

	// SidebarWidthPercent is the share of the terminal width used by the
	// folder tree.
	SidebarWidthPercent int

	// MinSidebarWidth and MaxSidebarWidth clamp the folder tree width.
	MinSidebarWidth int
	MaxSidebarWidth int

	// BorderWidth is the horizontal space taken by two bordered panes.
	BorderWidth int

	// MinListWidth is the minimum width of the main list.
	MinListWidth int

	// ContentPadding is subtracted from pane width for item rendering.
	// Accounts for pane border/padding on each side.
	ContentPadding int

	// TreeIndent is the indentation per folder tree level.
	TreeIndent int
}

// InputConfig holds text input configuration.
type InputConfig struct {
	SearchCharLimit int
	SearchWidth     int
}

// TextConfig holds text truncation configuration.
type TextConfig struct {
	// Ellipsis is the string used to indicate truncation.
	Ellipsis string
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() LayoutConfig {
	return LayoutConfig{
		Pane: PaneConfig{
			HeightReduction:     6,
			MinHeight:           5,
			SidebarWidthPercent: 30,
			MinSidebarWidth:     20,
			MaxSidebarWidth:     40,
			BorderWidth:         8,
			MinListWidth:        30,
			ContentPadding:      4,
			TreeIndent:          2,
		},
		Input: InputConfig{
			SearchCharLimit: 100,
			SearchWidth:     40,
		},
		Text: TextConfig{
			Ellipsis: "...",
		},
	}
}
