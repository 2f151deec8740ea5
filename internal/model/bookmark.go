package model

// Bookmark represents a saved URL found in a bookmarks export.
type Bookmark struct {
	ItemInfo `yaml:",inline"`
	Href     string  `json:"href" yaml:"href"`
	Icon     *string `json:"icon" yaml:"icon"` // base64 icon data, nil = no icon
}

// NewBookmarkParams holds parameters for creating a new Bookmark.
type NewBookmarkParams struct {
	Title         string
	AddDate       int64
	ParentFolders []ItemID
	Href          string
	Icon          *string
}

// NewBookmark creates a Bookmark with a non-nil parent folder list.
func NewBookmark(params NewBookmarkParams) Bookmark {
	parents := params.ParentFolders
	if parents == nil {
		parents = []ItemID{}
	}

	return Bookmark{
		ItemInfo: ItemInfo{
			Title:         params.Title,
			AddDate:       params.AddDate,
			ParentFolders: parents,
		},
		Href: params.Href,
		Icon: params.Icon,
	}
}
