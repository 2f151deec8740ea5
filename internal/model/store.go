package model

import "strings"

// Store holds everything parsed from one bookmarks document.
type Store struct {
	Bookmarks []Bookmark `json:"bookmarks" yaml:"bookmarks"`
	Folders   []Folder   `json:"folders" yaml:"folders"` // flat, Children empty
	Tree      []Folder   `json:"tree" yaml:"tree"`
}

// NewStore creates an empty Store with initialized slices.
func NewStore() *Store {
	return &Store{
		Bookmarks: []Bookmark{},
		Folders:   []Folder{},
		Tree:      []Folder{},
	}
}

// GetFolderByPath finds a flat folder by its item path, returns nil if not found.
func (s *Store) GetFolderByPath(path string) *Folder {
	for i := range s.Folders {
		if s.Folders[i].Path() == path {
			return &s.Folders[i]
		}
	}
	return nil
}

// ResolveFolder walks the tree along a `/`-separated list of folder titles
// or ItemIDs, e.g. "Work/Projects" or "Work+1600000000/Projects".
// Same-named siblings resolve to the first one in tree order.
// Returns nil for an empty path or when any segment is missing.
func (s *Store) ResolveFolder(path string) *Folder {
	path = strings.Trim(path, PathSeparator)
	if path == "" {
		return nil
	}

	level := s.Tree
	var found *Folder
	for _, segment := range strings.Split(path, PathSeparator) {
		found = nil
		for i := range level {
			if level[i].Title == segment || string(level[i].ID()) == segment {
				found = &level[i]
				break
			}
		}
		if found == nil {
			return nil
		}
		level = found.Children
	}
	return found
}

// TitlePath returns the folder titles of an item path joined by " / ",
// looked up in the flat folder list. Unknown ids are shown verbatim.
func (s *Store) TitlePath(item Item) string {
	info := item.Info()
	titles := make([]string, 0, len(info.ParentFolders)+1)
	for i := range info.ParentFolders {
		path := JoinPath(info.ParentFolders[:i+1])
		if f := s.GetFolderByPath(path); f != nil {
			titles = append(titles, f.Title)
		} else {
			titles = append(titles, string(info.ParentFolders[i]))
		}
	}
	titles = append(titles, info.Title)
	return strings.Join(titles, " / ")
}
