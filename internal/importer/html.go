package importer

import (
	"strings"

	"github.com/nikbrunner/bmx/internal/model"
	"github.com/nikbrunner/bmx/internal/tree"
	"golang.org/x/net/html"
)

// rootLevels is the number of outer folders every export wraps user content
// in: the document heading and the bookmarks toolbar.
const rootLevels = 2

// ParseBookmarks returns the flat list of bookmarks in a Netscape bookmark
// HTML document. Markup without anchors yields an empty list.
func ParseBookmarks(src string) []model.Bookmark {
	return parseBookmarks(parseString(src))
}

// ParseFolders returns the flat list of user folders in a Netscape bookmark
// HTML document. Every folder has empty Children.
func ParseFolders(src string) []model.Folder {
	return parseFolders(parseString(src))
}

// ParseFolderTree returns the user folders of a document as a tree.
func ParseFolderTree(src string) []model.Folder {
	return tree.Build(ParseFolders(src))
}

// Parse parses a document once and returns bookmarks, flat folders and the
// folder tree together.
func Parse(src string) *model.Store {
	return newStore(parseString(src))
}

func newStore(d *document) *model.Store {
	folders := parseFolders(d)
	return &model.Store{
		Bookmarks: parseBookmarks(d),
		Folders:   folders,
		Tree:      tree.Build(folders),
	}
}

// parseString never fails: the HTML parser recovers from any markup and a
// strings.Reader does not return read errors.
func parseString(src string) *document {
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return &document{}
	}
	return newDocument(doc)
}

func parseBookmarks(d *document) []model.Bookmark {
	bookmarks := []model.Bookmark{}
	for _, i := range d.byTag("a") {
		href, _ := d.attr(i, "href")

		var icon *string
		if v, ok := d.attr(i, "icon"); ok && v != "" {
			icon = &v
		}

		bookmarks = append(bookmarks, model.NewBookmark(model.NewBookmarkParams{
			Title:         d.text(i),
			AddDate:       d.addDate(i),
			ParentFolders: userFolders(d, i),
			Href:          href,
			Icon:          icon,
		}))
	}
	return bookmarks
}

func parseFolders(d *document) []model.Folder {
	folders := []model.Folder{}
	for _, i := range d.byTag("h3") {
		if isToolbarFolder(d, i) {
			continue
		}
		folders = append(folders, model.NewFolder(model.NewFolderParams{
			Title:         d.text(i),
			AddDate:       d.addDate(i),
			ParentFolders: userFolders(d, i),
		}))
	}
	return folders
}

// userFolders returns the enclosing folders of element i without the
// structural outer levels.
func userFolders(d *document, i int) []model.ItemID {
	chain := d.folderChain(i)
	if len(chain) <= rootLevels {
		return []model.ItemID{}
	}
	return chain[rootLevels:]
}

func isToolbarFolder(d *document, i int) bool {
	v, ok := d.attr(i, "personal_toolbar_folder")
	return ok && strings.EqualFold(strings.TrimSpace(v), "true")
}
