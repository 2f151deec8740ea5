package exporter

import (
	"fmt"
	"html"
	"strings"

	"github.com/nikbrunner/bmx/internal/model"
	"github.com/nikbrunner/bmx/internal/query"
	"github.com/nikbrunner/bmx/internal/tree"
)

// ExportHTML exports the bookmarks below folder to Netscape bookmark HTML
// format. A nil folder exports the whole store.
//
// User folders are wrapped in the document heading and a toolbar folder,
// and the ancestors of folder are kept, so importing the result yields the
// same item paths.
func ExportHTML(store *model.Store, folder *model.Folder) string {
	var b strings.Builder

	// Header
	b.WriteString("<!DOCTYPE NETSCAPE-Bookmark-file-1>\n")
	b.WriteString("<META HTTP-EQUIV=\"Content-Type\" CONTENT=\"text/html; charset=UTF-8\">\n")
	b.WriteString("<TITLE>Bookmarks</TITLE>\n")
	b.WriteString("<H1>Bookmarks</H1>\n")
	b.WriteString("<DL><p>\n")
	b.WriteString("    <DT><H3 PERSONAL_TOOLBAR_FOLDER=\"true\">Bookmarks bar</H3>\n")
	b.WriteString("    <DL><p>\n")

	if folder == nil {
		for _, f := range store.Tree {
			writeFolder(&b, f, store.Bookmarks, 2)
		}
		writeBookmarks(&b, query.BookmarksIn(store.Bookmarks, nil, false), 2)
	} else {
		writeScope(&b, store, folder)
	}

	// Footer
	b.WriteString("    </DL><p>\n")
	b.WriteString("</DL><p>\n")

	return b.String()
}

// writeScope writes the ancestors of folder as empty wrappers around the
// folder's subtree.
func writeScope(b *strings.Builder, store *model.Store, folder *model.Folder) {
	scope := folder
	if node := tree.Find(store.Tree, folder.Path()); node != nil {
		scope = node
	}

	crumbs := query.Breadcrumbs(store.Folders, scope)
	ancestors := crumbs[:len(crumbs)-1]

	indent := 2
	for _, a := range ancestors {
		openFolder(b, a, indent)
		indent++
	}

	writeFolder(b, *scope, query.BookmarksIn(store.Bookmarks, scope, true), indent)

	for range ancestors {
		indent--
		closeFolder(b, indent)
	}
}

// writeFolder recursively writes a folder, its subfolders and the
// bookmarks directly inside each of them.
func writeFolder(b *strings.Builder, f model.Folder, bookmarks []model.Bookmark, indent int) {
	openFolder(b, f, indent)

	for _, child := range f.Children {
		writeFolder(b, child, bookmarks, indent+1)
	}
	writeBookmarks(b, query.BookmarksIn(bookmarks, &f, false), indent+1)

	closeFolder(b, indent)
}

func openFolder(b *strings.Builder, f model.Folder, indent int) {
	prefix := strings.Repeat("    ", indent)
	fmt.Fprintf(b, "%s<DT><H3 ADD_DATE=\"%d\">%s</H3>\n", prefix, f.AddDate, html.EscapeString(f.Title))
	fmt.Fprintf(b, "%s<DL><p>\n", prefix)
}

func closeFolder(b *strings.Builder, indent int) {
	fmt.Fprintf(b, "%s</DL><p>\n", strings.Repeat("    ", indent))
}

func writeBookmarks(b *strings.Builder, bookmarks []model.Bookmark, indent int) {
	prefix := strings.Repeat("    ", indent)
	for _, bookmark := range bookmarks {
		icon := ""
		if bookmark.Icon != nil {
			icon = fmt.Sprintf(" ICON=\"%s\"", html.EscapeString(*bookmark.Icon))
		}
		fmt.Fprintf(b,
			"%s<DT><A HREF=\"%s\" ADD_DATE=\"%d\"%s>%s</A>\n",
			prefix,
			html.EscapeString(bookmark.Href),
			bookmark.AddDate,
			icon,
			html.EscapeString(bookmark.Title),
		)
	}
}
