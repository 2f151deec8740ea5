package exporter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nikbrunner/bmx/internal/model"
	"github.com/nikbrunner/bmx/internal/query"
	"github.com/nikbrunner/bmx/internal/tree"
	"gopkg.in/yaml.v3"
)

// maxSegmentsLength is how many characters of path a shortened link keeps
// beyond its domain.
const maxSegmentsLength = 30

// Document is the exported view of one folder scope.
type Document struct {
	Folders   []model.Folder   `json:"folders" yaml:"folders"`
	Bookmarks []model.Bookmark `json:"bookmarks" yaml:"bookmarks"`
}

// NewDocument collects the folder tree and the bookmarks below folder,
// including subfolders. A nil folder exports the whole store.
func NewDocument(store *model.Store, folder *model.Folder) Document {
	if folder == nil {
		return Document{
			Folders:   store.Tree,
			Bookmarks: store.Bookmarks,
		}
	}

	scope := folder
	if node := tree.Find(store.Tree, folder.Path()); node != nil {
		scope = node
	}
	return Document{
		Folders:   []model.Folder{*scope},
		Bookmarks: query.BookmarksIn(store.Bookmarks, scope, true),
	}
}

// DefaultExportPath returns the default export file path.
// Format: ~/Downloads/bookmarks-export-YYYY-MM-DD.<ext>
func DefaultExportPath(ext string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("bookmarks-export-%s.%s", time.Now().Format("2006-01-02"), ext)
	return filepath.Join(home, "Downloads", filename), nil
}

// Links returns the hrefs of bookmarks, one per line.
func Links(bookmarks []model.Bookmark) string {
	hrefs := make([]string, len(bookmarks))
	for i, b := range bookmarks {
		hrefs[i] = b.Href
	}
	return strings.Join(hrefs, "\n")
}

// WriteLinks writes the hrefs of bookmarks to path, one per line.
func WriteLinks(path string, bookmarks []model.Bookmark) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(Links(bookmarks)), 0644)
}

// Shorten drops the scheme and "www." from a link and cuts long paths
// with "/...".
//
//	Shorten("https://www.youtube.com")     // youtube.com
//	Shorten("https://example.com/videos/123456789012345678901234567890xxx")
//	                                       // example.com/videos/...
func Shorten(link string) string {
	address := link
	if _, rest, ok := strings.Cut(link, "//"); ok {
		address = rest
	}

	segments := strings.Split(address, "/")
	domain := segments[0]

	shortened := strings.Replace(domain, "www.", "", 1)
	for _, segment := range segments[1:] {
		if len(shortened)+len(segment) > len(domain)+maxSegmentsLength {
			shortened += "/..."
			break
		}
		shortened += "/" + segment
	}
	return shortened
}

// JSON renders doc as indented JSON.
func JSON(doc Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// YAML renders doc as YAML.
func YAML(doc Document) ([]byte, error) {
	return yaml.Marshal(doc)
}
