package tui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/bmx/internal/exporter"
	"github.com/nikbrunner/bmx/internal/model"
	"github.com/nikbrunner/bmx/internal/query"
	"github.com/nikbrunner/bmx/internal/search"
	"github.com/nikbrunner/bmx/internal/tree"
	"github.com/nikbrunner/bmx/internal/tui/layout"
)

// App is the main bubbletea model for the bookmark explorer.
type App struct {
	store        *model.Store
	keys         KeyMap
	styles       Styles
	layoutConfig layout.LayoutConfig

	// Navigation state
	current     *model.Folder // nil = top level
	breadcrumbs []model.Folder
	expanded    query.Expanded
	rows        []sidebarRow
	rowCursor   int
	items       []Item
	cursor      int
	focusedPane Pane

	// Selected bookmarks across folders
	selection query.Selection[model.Bookmark]

	// Search state
	mode        Mode
	searchInput textinput.Model
	searchTerm  string

	// For gg command
	lastKeyWasG bool

	// Status line
	messageText string
	messageType MessageType

	linksFile  string
	exportPath string
	copy       func(text string) error

	// Window dimensions
	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Store *model.Store
	// LinksFile receives the selected links on save. Defaults to links.txt.
	LinksFile string
	// ExportPath receives folder exports. Defaults to ~/Downloads.
	ExportPath string
	// Clipboard writes yanked URLs. Defaults to the system clipboard.
	Clipboard func(text string) error
	Keys      *KeyMap // optional, uses default if nil
	Styles    *Styles // optional, uses default if nil
}

// NewApp creates a new App with the given parameters.
func NewApp(params AppParams) App {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	store := params.Store
	if store == nil {
		store = model.NewStore()
	}

	linksFile := params.LinksFile
	if linksFile == "" {
		linksFile = "links.txt"
	}

	copyFn := params.Clipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	cfg := layout.DefaultConfig()
	input := textinput.New()
	input.Placeholder = "Search bookmarks..."
	input.CharLimit = cfg.Input.SearchCharLimit
	input.Width = cfg.Input.SearchWidth

	app := App{
		store:        store,
		keys:         keys,
		styles:       styles,
		layoutConfig: cfg,
		breadcrumbs:  []model.Folder{},
		focusedPane:  PaneList,
		searchInput:  input,
		linksFile:    linksFile,
		exportPath:   params.ExportPath,
		copy:         copyFn,
		width:        80,
		height:       24,
	}

	app.refreshSidebar()
	app.refreshItems()
	return app
}

// refreshSidebar rebuilds the visible folder tree rows.
func (a *App) refreshSidebar() {
	rows := []sidebarRow{}
	tree.Walk(a.store.Tree, func(f model.Folder, depth int) bool {
		rows = append(rows, sidebarRow{Folder: f, Depth: depth})
		return a.expanded.IsExpanded(f)
	})
	a.rows = rows
	a.rowCursor = min(a.rowCursor, max(len(a.rows)-1, 0))
}

// refreshItems rebuilds the list for the current folder or search.
func (a *App) refreshItems() {
	a.items = []Item{}

	if a.searchTerm != "" {
		for _, r := range search.FuzzySearch(a.store.Bookmarks, a.current, a.searchTerm) {
			a.items = append(a.items, Item{
				Kind:     ItemBookmark,
				Bookmark: r.Bookmark,
				Matched:  r.MatchedIndexes,
			})
		}
	} else {
		// Add folders first (sorted before bookmarks)
		folders := query.FoldersIn(a.store.Folders, a.current)
		for i := range folders {
			a.items = append(a.items, Item{Kind: ItemFolder, Folder: &folders[i]})
		}

		bookmarks := query.BookmarksIn(a.store.Bookmarks, a.current, false)
		for i := range bookmarks {
			a.items = append(a.items, Item{Kind: ItemBookmark, Bookmark: &bookmarks[i]})
		}
	}

	a.cursor = min(a.cursor, max(len(a.items)-1, 0))
}

// setCurrent opens a folder. The folder and its ancestors are expanded in
// the tree and the breadcrumbs follow.
func (a *App) setCurrent(folder *model.Folder) {
	if folder != nil {
		if node := tree.Find(a.store.Tree, folder.Path()); node != nil {
			folder = node
		}
	}

	a.current = folder
	a.breadcrumbs = query.Breadcrumbs(a.store.Folders, folder)
	a.expanded.Expand(a.breadcrumbs...)
	a.refreshSidebar()

	if folder != nil {
		for i, row := range a.rows {
			if query.IsSameAs(row.Folder)(*folder) {
				a.rowCursor = i
				break
			}
		}
	}

	a.cursor = 0
	a.refreshItems()
}

// parent returns the folder containing the current folder, nil at top level.
func (a App) parent() *model.Folder {
	if len(a.breadcrumbs) < 2 {
		return nil
	}
	p := a.breadcrumbs[len(a.breadcrumbs)-2]
	return &p
}

// Cursor returns the list cursor position.
func (a App) Cursor() int {
	return a.cursor
}

// SidebarCursor returns the folder tree cursor position.
func (a App) SidebarCursor() int {
	return a.rowCursor
}

// Current returns the open folder, nil at top level.
func (a App) Current() *model.Folder {
	return a.current
}

// Breadcrumbs returns the open folder and its ancestors, root first.
func (a App) Breadcrumbs() []model.Folder {
	return a.breadcrumbs
}

// Items returns the current list of items.
func (a App) Items() []Item {
	return a.items
}

// Selected returns the selected bookmarks in selection order.
func (a App) Selected() []model.Bookmark {
	return a.selection.Items()
}

// ExpandedPaths returns the item paths of expanded folders.
func (a App) ExpandedPaths() []string {
	return a.expanded.Paths()
}

// FocusedPane returns the focused pane.
func (a App) FocusedPane() Pane {
	return a.focusedPane
}

// Mode returns the input mode.
func (a App) Mode() Mode {
	return a.mode
}

// Message returns the status message.
func (a App) Message() string {
	return a.messageText
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		if a.mode == ModeSearch {
			return a.updateSearch(msg)
		}
		return a.updateNormal(msg)
	}

	return a, nil
}

func (a App) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle gg sequence
	if key.Matches(msg, a.keys.Top) {
		if a.lastKeyWasG {
			a.moveCursor(-a.listLen())
			a.lastKeyWasG = false
			return a, nil
		}
		a.lastKeyWasG = true
		return a, nil
	}
	a.lastKeyWasG = false

	a.messageText = ""

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Focus):
		if a.focusedPane == PaneList {
			a.focusedPane = PaneSidebar
		} else {
			a.focusedPane = PaneList
		}

	case key.Matches(msg, a.keys.Search):
		a.mode = ModeSearch
		a.focusedPane = PaneList
		a.searchInput.SetValue(a.searchTerm)
		a.searchInput.CursorEnd()
		cmd := a.searchInput.Focus()
		return a, cmd

	case key.Matches(msg, a.keys.Cancel):
		if a.searchTerm != "" {
			a.clearSearch()
		} else {
			a.selection.Reset()
		}

	case key.Matches(msg, a.keys.Down):
		a.moveCursor(1)

	case key.Matches(msg, a.keys.Up):
		a.moveCursor(-1)

	case key.Matches(msg, a.keys.Bottom):
		a.moveCursor(a.listLen())

	case key.Matches(msg, a.keys.Right):
		a.open()

	case key.Matches(msg, a.keys.Left):
		a.back()

	case key.Matches(msg, a.keys.Select):
		if b := a.bookmarkAtCursor(); b != nil {
			a.selection.Toggle(*b)
		}

	case key.Matches(msg, a.keys.YankURL):
		a.yankURL()

	case key.Matches(msg, a.keys.SaveLinks):
		a.saveLinks()

	case key.Matches(msg, a.keys.Export):
		a.exportFolder()
	}

	return a, nil
}

func (a App) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return a, tea.Quit

	case key.Matches(msg, a.keys.Cancel):
		a.mode = ModeNormal
		a.searchInput.Blur()
		a.clearSearch()
		return a, nil

	case key.Matches(msg, a.keys.Confirm):
		a.mode = ModeNormal
		a.searchInput.Blur()
		return a, nil

	case msg.Type == tea.KeyDown:
		a.moveCursor(1)
		return a, nil

	case msg.Type == tea.KeyUp:
		a.moveCursor(-1)
		return a, nil
	}

	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	if term := a.searchInput.Value(); term != a.searchTerm {
		a.searchTerm = term
		a.cursor = 0
		a.refreshItems()
	}
	return a, cmd
}

func (a *App) clearSearch() {
	a.searchTerm = ""
	a.searchInput.Reset()
	a.cursor = 0
	a.refreshItems()
}

func (a App) listLen() int {
	if a.focusedPane == PaneSidebar {
		return len(a.rows)
	}
	return len(a.items)
}

func (a *App) moveCursor(delta int) {
	if a.focusedPane == PaneSidebar && a.mode == ModeNormal {
		a.rowCursor = min(max(a.rowCursor+delta, 0), max(len(a.rows)-1, 0))
		return
	}
	a.cursor = min(max(a.cursor+delta, 0), max(len(a.items)-1, 0))
}

// open enters the folder under the cursor.
func (a *App) open() {
	if a.focusedPane == PaneSidebar {
		if a.rowCursor < len(a.rows) {
			folder := a.rows[a.rowCursor].Folder
			a.setCurrent(&folder)
		}
		return
	}

	if a.cursor < len(a.items) && a.items[a.cursor].IsFolder() {
		a.searchTerm = ""
		a.searchInput.Reset()
		a.setCurrent(a.items[a.cursor].Folder)
	}
}

// back collapses the folder under the tree cursor, or leaves the current
// folder in the list.
func (a *App) back() {
	if a.focusedPane == PaneSidebar {
		if a.rowCursor >= len(a.rows) {
			return
		}
		row := a.rows[a.rowCursor]
		if a.expanded.IsExpanded(row.Folder) {
			a.expanded.Toggle(&row.Folder)
			a.refreshSidebar()
			return
		}
		// Jump to the parent row
		for i := a.rowCursor - 1; i >= 0; i-- {
			if a.rows[i].Depth < row.Depth {
				a.rowCursor = i
				break
			}
		}
		return
	}

	if a.current == nil {
		return
	}
	a.searchTerm = ""
	a.searchInput.Reset()
	a.setCurrent(a.parent())
}

func (a App) bookmarkAtCursor() *model.Bookmark {
	if a.focusedPane != PaneList || a.cursor >= len(a.items) {
		return nil
	}
	item := a.items[a.cursor]
	if item.IsFolder() {
		return nil
	}
	return item.Bookmark
}

func (a *App) setMessage(t MessageType, format string, args ...any) {
	a.messageType = t
	a.messageText = fmt.Sprintf(format, args...)
}

func (a *App) yankURL() {
	b := a.bookmarkAtCursor()
	if b == nil {
		return
	}
	if err := a.copy(b.Href); err != nil {
		a.setMessage(MessageError, "Copy failed: %v", err)
		return
	}
	a.setMessage(MessageSuccess, "Copied %s", exporter.Shorten(b.Href))
}

func (a *App) saveLinks() {
	selected := a.selection.Items()
	if len(selected) == 0 {
		a.setMessage(MessageInfo, "No bookmarks selected")
		return
	}
	if err := exporter.WriteLinks(a.linksFile, selected); err != nil {
		a.setMessage(MessageError, "Save failed: %v", err)
		return
	}
	a.setMessage(MessageSuccess, "Saved %d links to %s", len(selected), a.linksFile)
}

func (a *App) exportFolder() {
	path := a.exportPath
	if path == "" {
		var err error
		if path, err = exporter.DefaultExportPath("html"); err != nil {
			a.setMessage(MessageError, "Export failed: %v", err)
			return
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		a.setMessage(MessageError, "Export failed: %v", err)
		return
	}
	if err := os.WriteFile(path, []byte(exporter.ExportHTML(a.store, a.current)), 0644); err != nil {
		a.setMessage(MessageError, "Export failed: %v", err)
		return
	}
	a.setMessage(MessageSuccess, "Exported to %s", path)
}

// View implements tea.Model.
func (a App) View() string {
	return a.renderView()
}
