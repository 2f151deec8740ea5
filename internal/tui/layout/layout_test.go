package layout

import "testing"

func TestCalculatePaneHeight(t *testing.T) {
	cfg := DefaultConfig().Pane

	tests := []struct {
		name           string
		terminalHeight int
		want           int
	}{
		{"normal terminal", 24, 18},               // 24 - 6 = 18
		{"small terminal enforces min", 8, 5},     // 8 - 6 = 2, min is 5
		{"terminal smaller than reduction", 4, 5}, // negative clamps to min
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculatePaneHeight(tt.terminalHeight, cfg)
			if got != tt.want {
				t.Errorf("CalculatePaneHeight(%d) = %d, want %d", tt.terminalHeight, got, tt.want)
			}
		})
	}
}

func TestCalculatePaneWidths(t *testing.T) {
	cfg := DefaultConfig().Pane

	tests := []struct {
		name          string
		terminalWidth int
		wantSidebar   int
		wantList      int
	}{
		{"normal width", 100, 30, 62},       // 30%, 100-30-8
		{"narrow clamps sidebar", 50, 20, 30}, // 15 -> min 20, 50-20-8 = 22 -> min 30
		{"wide clamps sidebar", 200, 40, 152}, // 60 -> max 40
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculatePaneWidths(tt.terminalWidth, cfg)
			if got.SidebarWidth != tt.wantSidebar || got.ListWidth != tt.wantList {
				t.Errorf("CalculatePaneWidths(%d) = %+v, want {%d %d}",
					tt.terminalWidth, got, tt.wantSidebar, tt.wantList)
			}
		})
	}
}

func TestCalculateViewportOffset(t *testing.T) {
	tests := []struct {
		name                   string
		selected, total, view  int
		want                   int
	}{
		{"fits", 3, 5, 10, 0},
		{"centered", 10, 30, 10, 5},
		{"top clamp", 2, 30, 10, 0},
		{"bottom clamp", 29, 30, 10, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateViewportOffset(tt.selected, tt.total, tt.view); got != tt.want {
				t.Errorf("CalculateViewportOffset() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTruncateText(t *testing.T) {
	cfg := DefaultConfig().Text

	tests := []struct {
		name     string
		text     string
		maxWidth int
		want     string
	}{
		{"fits", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"truncated", "hello world", 8, "hello..."},
		{"unicode", "こんにちは世界", 5, "こん..."},
		{"tiny width", "hello", 2, ".."},
		{"zero width", "hello", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateText(tt.text, tt.maxWidth, cfg); got != tt.want {
				t.Errorf("TruncateText(%q, %d) = %q, want %q", tt.text, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestTruncateIndented(t *testing.T) {
	cfg := DefaultConfig().Text

	if got := TruncateIndented("Development", 10, "  ▸ ", cfg); got != "  ▸ Dev..." {
		t.Errorf("got %q", got)
	}
	if got := TruncateIndented("Dev", 10, "  ▸ ", cfg); got != "  ▸ Dev" {
		t.Errorf("got %q", got)
	}
	if got := TruncateIndented("Dev", 3, "      ", cfg); got != "..." {
		t.Errorf("got %q", got)
	}
}

func TestTruncateANSIAware(t *testing.T) {
	cfg := DefaultConfig().Text

	styled := "\x1b[1mhello\x1b[0m world"
	if got := TruncateANSIAware(styled, 20, cfg); got != styled {
		t.Errorf("expected unchanged text, got %q", got)
	}

	got := TruncateANSIAware(styled, 7, cfg)
	if StripANSI(got) != "hell..." {
		t.Errorf("expected visible %q, got %q", "hell...", StripANSI(got))
	}
	if VisibleLength(got) != 7 {
		t.Errorf("expected visible length 7, got %d", VisibleLength(got))
	}
}
