// Package tree turns flat folder lists into nested folder trees and back.
package tree

import (
	"cmp"
	"slices"

	"github.com/nikbrunner/bmx/internal/model"
)

// Build nests a flat folder list by parent path.
//
//	Build([A, A/A, A/A/A, B]) // [A [A/A [A/A/A]], B]
//
// The input is not modified. Children of the input folders are ignored.
// Folders whose parents are missing from the input are not validated: they
// end up wherever their parent path groups them.
func Build(folders []model.Folder) []model.Folder {
	owned := make([]model.Folder, len(folders))
	for i, f := range folders {
		owned[i] = model.Folder{
			ItemInfo: model.ItemInfo{
				Title:         f.Title,
				AddDate:       f.AddDate,
				ParentFolders: append([]model.ItemID{}, f.ParentFolders...),
			},
		}
	}
	return build(owned, 0)
}

func build(folders []model.Folder, level int) []model.Folder {
	// Parents must come before their children within each group.
	slices.SortStableFunc(folders, func(a, b model.Folder) int {
		return cmp.Compare(a.Level(), b.Level())
	})

	groups := splitByParentPath(folders, level)
	result := make([]model.Folder, 0, len(groups))
	for _, group := range groups {
		parent := group[0]
		if len(group) > 1 {
			parent.Children = build(group[1:], level+1)
		} else {
			parent.Children = []model.Folder{}
		}
		result = append(result, parent)
	}
	return result
}

// splitByParentPath groups folders by their path prefix at level, keeping the
// order in which keys and folders are first seen.
func splitByParentPath(folders []model.Folder, level int) [][]model.Folder {
	var keys []string
	groups := make(map[string][]model.Folder)
	for _, f := range folders {
		key := groupKey(f, level)
		if _, seen := groups[key]; !seen {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], f)
	}

	result := make([][]model.Folder, 0, len(keys))
	for _, key := range keys {
		result = append(result, groups[key])
	}
	return result
}

// groupKey is the folder's own path when it sits at level, otherwise its
// parent path cut to level+1 segments.
func groupKey(f model.Folder, level int) string {
	if f.Level() == level {
		return f.Path()
	}
	return model.JoinPath(f.ParentFolders[:min(len(f.ParentFolders), level+1)])
}

// Flatten lists every folder of a tree in pre-order with Children cleared.
func Flatten(folders []model.Folder) []model.Folder {
	result := []model.Folder{}
	Walk(folders, func(f model.Folder, _ int) bool {
		f.Children = []model.Folder{}
		result = append(result, f)
		return true
	})
	return result
}

// Walk visits folders in pre-order. depth is 0 for the given folders.
// Returning false from fn skips the folder's children.
func Walk(folders []model.Folder, fn func(f model.Folder, depth int) bool) {
	var walk func(folders []model.Folder, depth int)
	walk = func(folders []model.Folder, depth int) {
		for _, f := range folders {
			if fn(f, depth) {
				walk(f.Children, depth+1)
			}
		}
	}
	walk(folders, 0)
}

// Find returns the folder with the given item path, or nil.
func Find(folders []model.Folder, path string) *model.Folder {
	for i := range folders {
		f := &folders[i]
		if f.Path() == path {
			return f
		}
		if found := Find(f.Children, path); found != nil {
			return found
		}
	}
	return nil
}

// Count returns the number of folders in a tree.
func Count(folders []model.Folder) int {
	n := 0
	Walk(folders, func(model.Folder, int) bool {
		n++
		return true
	})
	return n
}
