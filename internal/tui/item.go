package tui

import "github.com/nikbrunner/bmx/internal/model"

// ItemKind tells list rows apart.
type ItemKind int

const (
	ItemFolder ItemKind = iota
	ItemBookmark
)

// Item is one row of the main list: a subfolder of the current folder or a
// bookmark. Search results carry the matched title indexes.
type Item struct {
	Kind     ItemKind
	Folder   *model.Folder
	Bookmark *model.Bookmark
	Matched  []int
}

func (i Item) Title() string {
	if i.IsFolder() {
		return i.Folder.Title
	}
	return i.Bookmark.Title
}

func (i Item) IsFolder() bool {
	return i.Kind == ItemFolder
}
