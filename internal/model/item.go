package model

import (
	"strconv"
	"strings"
)

// PathSeparator joins item ids into an item path.
const PathSeparator = "/"

// ItemID identifies a bookmark or folder by its title and add date.
// Two items with the same title and add date share an ItemID.
//
//	NewItemID("A", 65)  // "A+65"
//	NewItemID("A", -65) // "A-65"
type ItemID string

// NewItemID builds the ItemID for a title and add date timestamp.
func NewItemID(title string, addDate int64) ItemID {
	digits := strconv.FormatInt(addDate, 10)
	if addDate < 0 {
		return ItemID(title + "-" + strings.TrimPrefix(digits, "-"))
	}
	return ItemID(title + "+" + digits)
}

// ItemInfo holds the fields shared by bookmarks and folders.
type ItemInfo struct {
	Title   string `json:"title" yaml:"title"`
	AddDate int64  `json:"addDate" yaml:"addDate"`
	// ParentFolders lists ancestor folder ids from the root down to the
	// immediate parent. It never includes the item itself.
	ParentFolders []ItemID `json:"parentFolders" yaml:"parentFolders"`
}

// Item is implemented by Bookmark and Folder.
type Item interface {
	Info() ItemInfo
}

// Info implements Item.
func (i ItemInfo) Info() ItemInfo {
	return i
}

// ID returns the item's ItemID.
func (i ItemInfo) ID() ItemID {
	return NewItemID(i.Title, i.AddDate)
}

// Segments returns the parent folder ids followed by the item's own id.
func (i ItemInfo) Segments() []ItemID {
	segments := make([]ItemID, 0, len(i.ParentFolders)+1)
	segments = append(segments, i.ParentFolders...)
	return append(segments, i.ID())
}

// Path returns the item path, e.g. "Work+1/Projects+2".
func (i ItemInfo) Path() string {
	return JoinPath(i.Segments())
}

// ParentPath returns the path of the item's parent folders.
func (i ItemInfo) ParentPath() string {
	return JoinPath(i.ParentFolders)
}

// Level returns the nesting level. Top-level items have level 0.
func (i ItemInfo) Level() int {
	return len(i.ParentFolders)
}

// ID returns the ItemID of any item.
func ID(item Item) ItemID {
	return item.Info().ID()
}

// Path returns the `/`-joined parent folder ids followed by the item's id.
func Path(item Item) string {
	return item.Info().Path()
}

// ParentPath returns the `/`-joined parent folder ids.
func ParentPath(item Item) string {
	return item.Info().ParentPath()
}

// Level returns the number of ancestor folders.
func Level(item Item) int {
	return item.Info().Level()
}

// JoinPath joins ids with PathSeparator.
func JoinPath(ids []ItemID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}
	return strings.Join(parts, PathSeparator)
}
