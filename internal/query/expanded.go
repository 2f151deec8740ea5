package query

import (
	"slices"
	"strings"

	"github.com/nikbrunner/bmx/internal/model"
)

// Expanded tracks which folders of a tree are expanded, by item path.
// The zero value has everything collapsed.
type Expanded struct {
	paths []string
}

// Toggle expands a collapsed folder, or collapses an expanded one together
// with all of its expanded descendants. A nil folder collapses everything.
func (e *Expanded) Toggle(folder *model.Folder) {
	if folder == nil {
		e.paths = nil
		return
	}

	path := folder.Path()
	if !slices.Contains(e.paths, path) {
		e.paths = append(e.paths, path)
		return
	}

	e.paths = slices.DeleteFunc(e.paths, func(p string) bool {
		return p == path || strings.HasPrefix(p, path+model.PathSeparator)
	})
}

// Expand marks folders as expanded.
func (e *Expanded) Expand(folders ...model.Folder) {
	for _, f := range folders {
		if path := f.Path(); !slices.Contains(e.paths, path) {
			e.paths = append(e.paths, path)
		}
	}
}

// IsExpanded reports whether folder is expanded.
func (e *Expanded) IsExpanded(folder model.Folder) bool {
	return slices.Contains(e.paths, folder.Path())
}

// Paths returns the expanded item paths.
func (e *Expanded) Paths() []string {
	return slices.Clone(e.paths)
}
