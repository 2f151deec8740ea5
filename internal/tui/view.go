package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nikbrunner/bmx/internal/exporter"
	"github.com/nikbrunner/bmx/internal/query"
	"github.com/nikbrunner/bmx/internal/tui/layout"
)

func (a App) renderView() string {
	paneHeight := layout.CalculatePaneHeight(a.height, a.layoutConfig.Pane)
	widths := layout.CalculatePaneWidths(a.width, a.layoutConfig.Pane)

	columns := lipgloss.JoinHorizontal(
		lipgloss.Top,
		a.renderSidebar(widths.SidebarWidth, paneHeight),
		a.renderList(widths.ListWidth, paneHeight),
	)

	content := a.styles.App.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			a.renderBreadcrumb(),
			columns,
			a.renderMessageLine(),
			a.renderHints(a.contextualHints()),
		),
	)

	// Use Place to ensure exact terminal dimensions and prevent overflow
	return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top, content)
}

func (a App) renderBreadcrumb() string {
	titles := []string{"Bookmarks"}
	for _, f := range a.breadcrumbs {
		titles = append(titles, f.Title)
	}
	path := strings.Join(titles, " / ")

	// Terminal width minus app padding: left=2, right=2
	path = layout.TruncateText(path, a.width-4, a.layoutConfig.Text)
	return a.styles.Breadcrumb.Render(path)
}

func (a App) renderSidebar(width, height int) string {
	var content strings.Builder
	itemWidth := layout.CalculateItemWidth(width, a.layoutConfig.Pane)
	active := query.IsCurrentOrAncestor(a.current)

	if len(a.rows) == 0 {
		content.WriteString(a.styles.Empty.Render("(no folders)"))
	}

	offset := layout.CalculateViewportOffset(a.rowCursor, len(a.rows), height)
	for i := offset; i < len(a.rows) && i < offset+height; i++ {
		row := a.rows[i]

		marker := "  "
		if len(row.Folder.Children) > 0 {
			marker = "▸ "
			if a.expanded.IsExpanded(row.Folder) {
				marker = "▾ "
			}
		}
		indent := strings.Repeat(" ", row.Depth*a.layoutConfig.Pane.TreeIndent)
		line := layout.TruncateIndented(row.Folder.Title, itemWidth, indent+marker, a.layoutConfig.Text)

		switch {
		case a.focusedPane == PaneSidebar && i == a.rowCursor:
			line = a.styles.ItemSelected.Render(padRight(line, itemWidth))
		case active(row.Folder):
			line = a.styles.FolderActive.Render(line)
		default:
			line = a.styles.Item.Render(line)
		}
		content.WriteString(line + "\n")
	}

	return a.paneStyle(PaneSidebar).
		Width(width).
		Height(height).
		Render(strings.TrimRight(content.String(), "\n"))
}

func (a App) renderList(width, height int) string {
	var content strings.Builder
	itemWidth := layout.CalculateItemWidth(width, a.layoutConfig.Pane)

	visibleHeight := height
	if a.mode == ModeSearch {
		content.WriteString(a.searchInput.View() + "\n")
		visibleHeight--
	} else if a.searchTerm != "" {
		content.WriteString(a.styles.URL.Render("/"+a.searchTerm) + "\n")
		visibleHeight--
	}
	visibleHeight = max(visibleHeight, 1)

	if len(a.items) == 0 {
		if a.searchTerm != "" {
			content.WriteString(a.styles.Empty.Render("(no matches)"))
		} else {
			content.WriteString(a.styles.Empty.Render("(empty)"))
		}
	}

	offset := layout.CalculateViewportOffset(a.cursor, len(a.items), visibleHeight)
	for i := offset; i < len(a.items) && i < offset+visibleHeight; i++ {
		isCursor := a.focusedPane == PaneList && i == a.cursor
		content.WriteString(a.renderItem(a.items[i], isCursor, itemWidth) + "\n")
	}

	return a.paneStyle(PaneList).
		Width(width).
		Height(height).
		Render(strings.TrimRight(content.String(), "\n"))
}

func (a App) renderItem(item Item, isCursor bool, maxWidth int) string {
	if item.IsFolder() {
		line := layout.TruncateText(item.Title()+"/", maxWidth, a.layoutConfig.Text)
		if isCursor {
			return a.styles.ItemSelected.Render(padRight(line, maxWidth))
		}
		return a.styles.Folder.Render(line)
	}

	b := item.Bookmark
	prefix := "  "
	isMarked := a.selection.Has(*b)
	if isMarked {
		prefix = "● "
	}

	url := exporter.Shorten(b.Href)
	if a.searchTerm != "" {
		// Show where a search result lives
		if f := a.store.GetFolderByPath(b.ParentPath()); f != nil {
			url = a.store.TitlePath(f) + "  " + url
		}
	}

	if isCursor {
		plain := layout.TruncateText(prefix+b.Title+"  "+url, maxWidth, a.layoutConfig.Text)
		return a.styles.ItemSelected.Render(padRight(plain, maxWidth))
	}

	titleStyle := a.styles.Item
	if isMarked {
		titleStyle = a.styles.ItemMarked
	}
	line := titleStyle.Render(prefix) + a.highlight(b.Title, item.Matched, titleStyle) +
		"  " + a.styles.URL.Render(url)
	return layout.TruncateANSIAware(line, maxWidth, a.layoutConfig.Text)
}

// highlight renders the search-matched characters of title.
func (a App) highlight(title string, matched []int, style lipgloss.Style) string {
	if len(matched) == 0 {
		return style.Render(title)
	}

	var b strings.Builder
	for i, r := range title {
		if slices.Contains(matched, i) {
			b.WriteString(a.styles.Match.Render(string(r)))
		} else {
			b.WriteString(style.Render(string(r)))
		}
	}
	return b.String()
}

func (a App) renderMessageLine() string {
	if a.messageText == "" {
		if n := a.selection.Len(); n > 0 {
			return a.styles.URL.Render(fmt.Sprintf("%d selected", n))
		}
		return ""
	}

	msgStyle := a.styles.MessageInfo
	prefix := ""
	switch a.messageType {
	case MessageError:
		msgStyle, prefix = a.styles.MessageError, "✗ "
	case MessageSuccess:
		msgStyle, prefix = a.styles.MessageSuccess, "✓ "
	}
	return msgStyle.Render(prefix + a.messageText)
}

func (a App) paneStyle(p Pane) lipgloss.Style {
	if a.focusedPane == p {
		return a.styles.PaneActive
	}
	return a.styles.Pane
}

func padRight(s string, width int) string {
	if n := layout.VisibleLength(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
