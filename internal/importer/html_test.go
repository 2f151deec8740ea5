package importer_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/nikbrunner/bmx/internal/importer"
	"github.com/nikbrunner/bmx/internal/model"
)

// chromeExport mirrors a Chrome export: the H1 heading and the toolbar
// folder wrap every user folder.
const chromeExport = `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<!-- This is an automatically generated file.
     It will be read and overwritten.
     DO NOT EDIT! -->
<META HTTP-EQUIV="Content-Type" CONTENT="text/html; charset=UTF-8">
<TITLE>Bookmarks</TITLE>
<H1>Bookmarks</H1>
<DL><p>
    <DT><H3 ADD_DATE="1600000000" LAST_MODIFIED="1700000000" PERSONAL_TOOLBAR_FOLDER="true">Bookmarks bar</H3>
    <DL><p>
        <DT><H3 ADD_DATE="1600000001">Work</H3>
        <DL><p>
            <DT><A HREF="https://jira.example.com" ADD_DATE="1600000002" ICON="data:image/png;base64,AAAA">Jira</A>
            <DT><H3 ADD_DATE="1600000003">Projects</H3>
            <DL><p>
                <DT><A HREF="https://github.com/acme/board" ADD_DATE="1600000004">Board</A>
            </DL><p>
        </DL><p>
        <DT><H3 ADD_DATE="1600000005">Work</H3>
        <DL><p>
            <DT><A HREF="https://old.example.com" ADD_DATE="1600000006">Old</A>
        </DL><p>
        <DT><A HREF="https://news.ycombinator.com" ADD_DATE="1600000007">Hacker News</A>
    </DL><p>
</DL><p>
`

var ignoreEmpty = cmpopts.EquateEmpty()

func ids(ids ...string) []model.ItemID {
	result := make([]model.ItemID, len(ids))
	for i, id := range ids {
		result[i] = model.ItemID(id)
	}
	return result
}

func TestParseFolders_DropsRootLevels(t *testing.T) {
	folders := importer.ParseFolders(chromeExport)

	type row struct {
		Title   string
		Parents []model.ItemID
	}
	var got []row
	for _, f := range folders {
		got = append(got, row{f.Title, f.ParentFolders})
		if len(f.Children) != 0 {
			t.Errorf("flat folder %q has children", f.Title)
		}
	}

	want := []row{
		{"Work", ids()},
		{"Projects", ids("Work+1600000001")},
		{"Work", ids()},
	}
	if diff := cmp.Diff(want, got, ignoreEmpty); diff != "" {
		t.Errorf("folders mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFolders_ExcludesToolbarFolder(t *testing.T) {
	for _, f := range importer.ParseFolders(chromeExport) {
		if f.Title == "Bookmarks bar" {
			t.Fatalf("toolbar folder should be excluded, got %+v", f)
		}
	}
}

func TestParseFolders_WithoutHeading(t *testing.T) {
	// Two plain outer folders stand in for the document root and toolbar.
	html := `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<DL><p>
    <DT><H3>Root</H3>
    <DL><p>
        <DT><H3>Toolbar</H3>
        <DL><p>
            <DT><H3 ADD_DATE="7">Work</H3>
            <DL><p>
                <DT><H3 ADD_DATE="8">Projects</H3>
                <DL><p>
                    <DT><H3 ADD_DATE="-9">Archive</H3>
                </DL><p>
            </DL><p>
        </DL><p>
    </DL><p>
</DL><p>`

	got := map[string][]model.ItemID{}
	for _, f := range importer.ParseFolders(html) {
		got[f.Title] = f.ParentFolders
	}

	want := map[string][]model.ItemID{
		"Root":     ids(),
		"Toolbar":  ids(),
		"Work":     ids(),
		"Projects": ids("Work+7"),
		"Archive":  ids("Work+7", "Projects+8"),
	}
	if diff := cmp.Diff(want, got, ignoreEmpty); diff != "" {
		t.Errorf("parent folders mismatch (-want +got):\n%s", diff)
	}
}

func TestParseBookmarks(t *testing.T) {
	bookmarks := importer.ParseBookmarks(chromeExport)
	if len(bookmarks) != 4 {
		t.Fatalf("expected 4 bookmarks, got %d", len(bookmarks))
	}

	byTitle := map[string]model.Bookmark{}
	for _, b := range bookmarks {
		byTitle[b.Title] = b
	}

	jira := byTitle["Jira"]
	if jira.Href != "https://jira.example.com" {
		t.Errorf("expected Jira href, got %q", jira.Href)
	}
	if jira.AddDate != 1600000002 {
		t.Errorf("expected add date 1600000002, got %d", jira.AddDate)
	}
	if jira.Icon == nil || *jira.Icon != "data:image/png;base64,AAAA" {
		t.Errorf("expected icon data, got %v", jira.Icon)
	}
	if diff := cmp.Diff(ids("Work+1600000001"), jira.ParentFolders); diff != "" {
		t.Errorf("Jira parents (-want +got):\n%s", diff)
	}

	board := byTitle["Board"]
	if diff := cmp.Diff(ids("Work+1600000001", "Projects+1600000003"), board.ParentFolders); diff != "" {
		t.Errorf("Board parents (-want +got):\n%s", diff)
	}
	if board.Icon != nil {
		t.Errorf("expected nil icon, got %q", *board.Icon)
	}

	// Same-named folders are told apart by their add date.
	old := byTitle["Old"]
	if diff := cmp.Diff(ids("Work+1600000005"), old.ParentFolders); diff != "" {
		t.Errorf("Old parents (-want +got):\n%s", diff)
	}

	hn := byTitle["Hacker News"]
	if len(hn.ParentFolders) != 0 {
		t.Errorf("toolbar bookmark should be top level, got %v", hn.ParentFolders)
	}
}

func TestParseBookmarks_MissingAttributes(t *testing.T) {
	html := `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<DL><p>
    <DT><A>No URL</A>
    <DT><A HREF="https://a.example" ADD_DATE="soon">Bad date</A>
    <DT><A HREF="https://b.example" ADD_DATE="-42">Negative</A>
</DL><p>`

	bookmarks := importer.ParseBookmarks(html)
	if len(bookmarks) != 3 {
		t.Fatalf("expected 3 bookmarks, got %d", len(bookmarks))
	}

	if bookmarks[0].Href != "" || bookmarks[0].AddDate != 0 || bookmarks[0].Icon != nil {
		t.Errorf("expected defaults for missing attributes, got %+v", bookmarks[0])
	}
	if bookmarks[1].AddDate != 0 {
		t.Errorf("expected unparsable date to default to 0, got %d", bookmarks[1].AddDate)
	}
	if bookmarks[2].AddDate != -42 {
		t.Errorf("expected -42, got %d", bookmarks[2].AddDate)
	}
	if got := bookmarks[2].ID(); got != "Negative-42" {
		t.Errorf("expected id Negative-42, got %q", got)
	}
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		html string
	}{
		{name: "empty", html: ""},
		{name: "plain text", html: "not a bookmarks file"},
		{name: "empty list", html: "<!DOCTYPE NETSCAPE-Bookmark-file-1>\n<H1>Bookmarks</H1>\n<DL><p>\n</DL><p>"},
		{name: "unclosed", html: "<DL><DT><H3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := importer.Parse(tt.html)
			if len(store.Bookmarks) != 0 || len(store.Folders) != 0 || len(store.Tree) != 0 {
				t.Errorf("expected empty result, got %+v", store)
			}
			if store.Bookmarks == nil || store.Folders == nil {
				t.Error("expected non-nil empty slices")
			}
		})
	}
}

func TestParseFolderTree(t *testing.T) {
	folderTree := importer.ParseFolderTree(chromeExport)
	if len(folderTree) != 2 {
		t.Fatalf("expected 2 top-level folders, got %d", len(folderTree))
	}

	work := folderTree[0]
	if work.ID() != "Work+1600000001" {
		t.Errorf("expected first Work folder, got %q", work.ID())
	}
	if len(work.Children) != 1 || work.Children[0].Title != "Projects" {
		t.Errorf("expected Projects under Work, got %+v", work.Children)
	}
	if folderTree[1].ID() != "Work+1600000005" || len(folderTree[1].Children) != 0 {
		t.Errorf("expected second Work folder without children, got %+v", folderTree[1])
	}
}
