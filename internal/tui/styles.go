package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles of the browser.
type Styles struct {
	App          lipgloss.Style
	Pane         lipgloss.Style
	PaneActive   lipgloss.Style
	Breadcrumb   lipgloss.Style
	Folder       lipgloss.Style
	FolderActive lipgloss.Style // current folder and its ancestors in the sidebar
	Item         lipgloss.Style
	ItemSelected lipgloss.Style
	ItemMarked   lipgloss.Style
	URL          lipgloss.Style
	Match        lipgloss.Style
	Empty        lipgloss.Style
	HintKey      lipgloss.Style
	HintDesc     lipgloss.Style

	MessageInfo    lipgloss.Style
	MessageSuccess lipgloss.Style
	MessageError   lipgloss.Style
}

// DefaultStyles returns grayscale styles with a teal accent.
func DefaultStyles() Styles {
	text := lipgloss.AdaptiveColor{Light: "#505050", Dark: "#A0A0A0"}
	muted := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#606060"}
	accent := lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}
	inactive := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#505050"}

	pane := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(inactive).
		Padding(0, 1)

	return Styles{
		App:        lipgloss.NewStyle().Padding(1, 2, 0, 2),
		Pane:       pane,
		PaneActive: pane.BorderForeground(accent),
		Breadcrumb: lipgloss.NewStyle().Foreground(muted).PaddingLeft(1),

		Folder:       lipgloss.NewStyle().Foreground(text).Bold(true),
		FolderActive: lipgloss.NewStyle().Foreground(accent),
		Item:         lipgloss.NewStyle().Foreground(text),
		ItemSelected: lipgloss.NewStyle().Background(accent).Foreground(lipgloss.Color("#1A1A1A")),
		ItemMarked:   lipgloss.NewStyle().Foreground(accent).Bold(true),
		URL:          lipgloss.NewStyle().Foreground(muted),
		Match:        lipgloss.NewStyle().Foreground(accent).Underline(true),
		Empty:        lipgloss.NewStyle().Foreground(muted),
		HintKey:      lipgloss.NewStyle().Foreground(accent),
		HintDesc:     lipgloss.NewStyle().Foreground(muted),

		MessageInfo:    lipgloss.NewStyle().Foreground(accent).Bold(true),
		MessageSuccess: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#338833", Dark: "#66CC66"}).Bold(true),
		MessageError:   lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#CC3333", Dark: "#FF6666"}).Bold(true),
	}
}
