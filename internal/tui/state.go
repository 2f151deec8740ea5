package tui

import "github.com/nikbrunner/bmx/internal/model"

// Mode represents the current input mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
)

// Pane identifies the focused pane.
type Pane int

const (
	PaneSidebar Pane = iota
	PaneList
)

// MessageType determines the styling of the status message.
type MessageType int

const (
	MessageInfo MessageType = iota
	MessageSuccess
	MessageError
)

// sidebarRow is one visible line of the folder tree.
type sidebarRow struct {
	Folder model.Folder
	Depth  int
}
