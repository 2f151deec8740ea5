package picker

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nikbrunner/bmx/internal/exporter"
	"github.com/nikbrunner/bmx/internal/model"
	"github.com/nikbrunner/bmx/internal/search"
)

var (
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	matchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Underline(true)

	urlStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Italic(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			Bold(true).
			MarginBottom(1)

	hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// linesPerResult is the height of one rendered result.
const linesPerResult = 2

// Picker is a simple TUI for selecting from search results.
type Picker struct {
	results   []search.Result
	term      string
	location  func(b *model.Bookmark) string
	cursor    int
	offset    int
	selected  bool
	cancelled bool
	width     int
	height    int
}

// New creates a new Picker with the given search results. location, when
// not nil, describes where a bookmark lives, e.g. Store.TitlePath.
func New(results []search.Result, term string, location func(b *model.Bookmark) string) Picker {
	return Picker{
		results:  results,
		term:     term,
		location: location,
		cursor:   0,
		width:    80,
		height:   24,
	}
}

// Init implements tea.Model.
func (p Picker) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		p.scroll()
		return p, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			p.cancelled = true
			return p, tea.Quit

		case tea.KeyEnter:
			p.selected = true
			return p, tea.Quit

		case tea.KeyDown:
			p.move(1)
			return p, nil

		case tea.KeyUp:
			p.move(-1)
			return p, nil
		}

		// Handle j/k vim keys
		if msg.Type == tea.KeyRunes {
			switch string(msg.Runes) {
			case "j":
				p.move(1)
				return p, nil
			case "k":
				p.move(-1)
				return p, nil
			case "g":
				p.move(-len(p.results))
				return p, nil
			case "G":
				p.move(len(p.results))
				return p, nil
			case "q":
				p.cancelled = true
				return p, tea.Quit
			}
		}
	}

	return p, nil
}

func (p *Picker) move(delta int) {
	if len(p.results) == 0 {
		return
	}
	p.cursor = min(max(p.cursor+delta, 0), len(p.results)-1)
	p.scroll()
}

// scroll keeps the cursor inside the visible window.
func (p *Picker) scroll() {
	visible := p.visibleResults()
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	if p.cursor >= p.offset+visible {
		p.offset = p.cursor - visible + 1
	}
}

func (p Picker) visibleResults() int {
	// header (2 lines) and footer (2 lines)
	return max((p.height-4)/linesPerResult, 1)
}

// View implements tea.Model.
func (p Picker) View() string {
	var b strings.Builder

	// Header
	b.WriteString(headerStyle.Render(fmt.Sprintf("Search: %s (%d results)", p.term, len(p.results))))
	b.WriteString("\n\n")

	end := min(p.offset+p.visibleResults(), len(p.results))
	for i := p.offset; i < end; i++ {
		result := p.results[i]

		cursor := "  "
		style := normalStyle
		if i == p.cursor {
			cursor = "> "
			style = selectedStyle
		}

		title := highlight(result.Bookmark.Title, result.MatchedIndexes, style)
		detail := exporter.Shorten(result.Bookmark.Href)
		if p.location != nil {
			detail = p.location(result.Bookmark) + "  " + detail
		}

		b.WriteString(fmt.Sprintf("%s%s\n", cursor, title))
		b.WriteString(fmt.Sprintf("   %s\n", urlStyle.Render(detail)))
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("j/k: move  g/G: first/last  Enter: open  q/Esc: cancel"))

	return b.String()
}

// highlight renders the fuzzy-matched characters of title with matchStyle.
func highlight(title string, matched []int, style lipgloss.Style) string {
	if len(matched) == 0 {
		return style.Render(title)
	}

	var b strings.Builder
	for i, r := range title {
		if slices.Contains(matched, i) {
			b.WriteString(matchStyle.Render(string(r)))
		} else {
			b.WriteString(style.Render(string(r)))
		}
	}
	return b.String()
}

// SelectedBookmark returns the selected bookmark, or nil if cancelled.
func (p Picker) SelectedBookmark() *model.Bookmark {
	if p.cancelled || !p.selected {
		return nil
	}
	if p.cursor < len(p.results) {
		return p.results[p.cursor].Bookmark
	}
	return nil
}

// Cancelled returns true if the user cancelled the selection.
func (p Picker) Cancelled() bool {
	return p.cancelled
}
