// Package query answers containment, ancestry and breadcrumb questions over
// parsed bookmarks and folders. All functions are pure.
package query

import (
	"cmp"
	"slices"

	"github.com/nikbrunner/bmx/internal/model"
)

// IsSameAs reports whether an item has the same ItemID as a.
// Children, href and other fields are not compared.
func IsSameAs(a model.Item) func(b model.Item) bool {
	id := model.ID(a)
	return func(b model.Item) bool {
		return model.ID(b) == id
	}
}

// IsInside reports whether an item lives in folder. With includeSubfolders
// the item may be nested at any depth, otherwise it must be a direct child.
// A folder is never inside itself.
//
//	IsInside(A, true)(A/A)    // true
//	IsInside(A, true)(A/A/A)  // true
//	IsInside(A, false)(A/A/A) // false
//	IsInside(A, true)(A)      // false
func IsInside(folder model.Item, includeSubfolders bool) func(item model.Item) bool {
	folderPath := folder.Info().Segments()
	return func(item model.Item) bool {
		parents := item.Info().ParentFolders
		if !includeSubfolders {
			return slices.Equal(parents, folderPath)
		}
		return len(parents) >= len(folderPath) && slices.Equal(parents[:len(folderPath)], folderPath)
	}
}

// Contains is IsInside with the arguments swapped: it reports whether
// folder holds item.
func Contains(item model.Item, includeSubfolders bool) func(folder model.Item) bool {
	return func(folder model.Item) bool {
		return IsInside(folder, includeSubfolders)(item)
	}
}

// IsTopLevel reports whether an item has no parent folders.
func IsTopLevel(item model.Item) bool {
	return model.Level(item) == 0
}

// Breadcrumbs returns the folders containing current, root first, followed
// by current itself. A nil current folder yields an empty list.
func Breadcrumbs(folders []model.Folder, current *model.Folder) []model.Folder {
	crumbs := []model.Folder{}
	if current == nil {
		return crumbs
	}

	containsCurrent := Contains(*current, true)
	for _, f := range folders {
		if containsCurrent(f) {
			crumbs = append(crumbs, f)
		}
	}
	slices.SortStableFunc(crumbs, func(a, b model.Folder) int {
		return cmp.Compare(a.Level(), b.Level())
	})

	return append(crumbs, *current)
}

// IsCurrentOrAncestor reports whether a folder is current or one of its
// ancestors. A nil current folder matches nothing.
func IsCurrentOrAncestor(current *model.Folder) func(f model.Folder) bool {
	return func(f model.Folder) bool {
		if current == nil {
			return false
		}
		return IsSameAs(*current)(f) || IsInside(f, true)(*current)
	}
}

// BookmarksIn filters bookmarks to those in folder. A nil folder stands for
// the top level: all bookmarks with includeSubfolders, otherwise only the
// top-level ones.
func BookmarksIn(bookmarks []model.Bookmark, folder *model.Folder, includeSubfolders bool) []model.Bookmark {
	result := []model.Bookmark{}
	for _, b := range bookmarks {
		if matchesScope(b, folder, includeSubfolders) {
			result = append(result, b)
		}
	}
	return result
}

// FoldersIn returns the direct subfolders of folder from a flat list, or the
// top-level folders when folder is nil.
func FoldersIn(folders []model.Folder, folder *model.Folder) []model.Folder {
	result := []model.Folder{}
	for _, f := range folders {
		if matchesScope(f, folder, false) {
			result = append(result, f)
		}
	}
	return result
}

func matchesScope(item model.Item, folder *model.Folder, includeSubfolders bool) bool {
	if folder == nil {
		return includeSubfolders || IsTopLevel(item)
	}
	return IsInside(*folder, includeSubfolders)(item)
}
