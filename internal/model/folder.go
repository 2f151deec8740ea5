package model

// Folder represents a bookmark folder. In a flat folder list Children is
// empty; in a folder tree it holds the direct subfolders.
type Folder struct {
	ItemInfo `yaml:",inline"`
	Children []Folder `json:"children" yaml:"children"`
}

// NewFolderParams holds parameters for creating a new Folder.
type NewFolderParams struct {
	Title         string
	AddDate       int64
	ParentFolders []ItemID
}

// NewFolder creates a childless Folder.
func NewFolder(params NewFolderParams) Folder {
	parents := params.ParentFolders
	if parents == nil {
		parents = []ItemID{}
	}

	return Folder{
		ItemInfo: ItemInfo{
			Title:         params.Title,
			AddDate:       params.AddDate,
			ParentFolders: parents,
		},
		Children: []Folder{},
	}
}
