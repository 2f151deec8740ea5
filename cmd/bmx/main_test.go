package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

const chromeExport = `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<H1>Bookmarks</H1>
<DL><p>
    <DT><H3 ADD_DATE="1500000000" PERSONAL_TOOLBAR_FOLDER="true">Bookmarks bar</H3>
    <DL><p>
        <DT><H3 ADD_DATE="1600000001">Work</H3>
        <DL><p>
            <DT><A HREF="https://jira.example.com" ADD_DATE="1600000002">Jira</A>
            <DT><H3 ADD_DATE="1600000003">Projects</H3>
            <DL><p>
                <DT><A HREF="https://board.example.com" ADD_DATE="1600000004">Board</A>
            </DL><p>
        </DL><p>
        <DT><A HREF="https://news.ycombinator.com" ADD_DATE="1600000100">Hacker News</A>
    </DL><p>
</DL><p>`

// writeFixture writes the export into a temp dir and points the config flag
// there as well.
func writeFixture(t *testing.T) (dir, file string) {
	t.Helper()

	dir = t.TempDir()
	file = filepath.Join(dir, "bookmarks.html")
	assert.NilError(t, os.WriteFile(file, []byte(chromeExport), 0644))
	return dir, file
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestTree(t *testing.T) {
	_, file := writeFixture(t)

	out, err := run(t, "tree", file)
	assert.NilError(t, err)
	assert.Equal(t, out, "Work (1)\n  Projects (1)\n")
}

func TestList(t *testing.T) {
	_, file := writeFixture(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"top level", nil, "Work/\nHacker News\tnews.ycombinator.com\n"},
		{"folder", []string{"--folder", "Work"}, "Projects/\nJira\tjira.example.com\n"},
		{
			"flat",
			[]string{"--folder", "Work", "--flat"},
			"Work / Jira\thttps://jira.example.com\nWork / Projects / Board\thttps://board.example.com\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, append([]string{"list", file}, tt.args...)...)
			assert.NilError(t, err)
			assert.Equal(t, out, tt.want)
		})
	}
}

func TestBreadcrumbs_FromEnvironment(t *testing.T) {
	_, file := writeFixture(t)
	t.Setenv(fileEnv, file)

	out, err := run(t, "breadcrumbs", "--folder", "Work/Projects")
	assert.NilError(t, err)
	assert.Equal(t, out, "Bookmarks / Work / Projects\n")

	out, err = run(t, "breadcrumbs")
	assert.NilError(t, err)
	assert.Equal(t, out, "Bookmarks\n")
}

func TestSearch(t *testing.T) {
	_, file := writeFixture(t)

	out, err := run(t, "search", file, "board")
	assert.NilError(t, err)
	assert.Equal(t, out, "Work / Projects / Board\thttps://board.example.com\n")

	out, err = run(t, "search", file, "hacker", "--folder", "Work")
	assert.NilError(t, err)
	assert.Equal(t, out, "No bookmarks found for 'hacker'\n")
}

func TestLinks(t *testing.T) {
	dir, file := writeFixture(t)

	out, err := run(t, "links", file, "--folder", "Work")
	assert.NilError(t, err)
	assert.Equal(t, out, "https://jira.example.com\nhttps://board.example.com\n")

	target := filepath.Join(dir, "out", "links.txt")
	out, err = run(t, "links", file, "--folder", "Work/Projects", "-o", target)
	assert.NilError(t, err)
	assert.Equal(t, out, "Saved 1 links to "+target+"\n")

	data, err := os.ReadFile(target)
	assert.NilError(t, err)
	assert.Equal(t, string(data), "https://board.example.com")
}

func TestExport(t *testing.T) {
	dir, file := writeFixture(t)

	out, err := run(t, "export", file, "--format", "json", "--folder", "Work", "-o", "-")
	assert.NilError(t, err)

	var doc struct {
		Folders []struct {
			Title string `json:"title"`
		} `json:"folders"`
		Bookmarks []struct {
			Href string `json:"href"`
		} `json:"bookmarks"`
	}
	assert.NilError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, len(doc.Folders), 1)
	assert.Equal(t, doc.Folders[0].Title, "Work")
	assert.Equal(t, len(doc.Bookmarks), 2)

	target := filepath.Join(dir, "Downloads", "export.html")
	out, err = run(t, "export", file, "-o", target)
	assert.NilError(t, err)
	assert.Equal(t, out, "Exported 3 bookmarks, 2 folders to "+target+"\n")

	data, err := os.ReadFile(target)
	assert.NilError(t, err)
	assert.Assert(t, is.Contains(string(data), "<!DOCTYPE NETSCAPE-Bookmark-file-1>"))
}

func TestErrors(t *testing.T) {
	_, file := writeFixture(t)
	t.Setenv(fileEnv, "")

	_, err := run(t, "tree")
	assert.ErrorIs(t, err, errNoFile)

	_, err = run(t, "list", file, "--folder", "Nope")
	assert.ErrorContains(t, err, `folder "Nope" not found`)

	_, err = run(t, "tree", filepath.Join(t.TempDir(), "missing.html"))
	assert.ErrorContains(t, err, "loading bookmarks")

	_, err = run(t, "export", file, "--format", "csv", "-o", "-")
	assert.ErrorContains(t, err, `unknown format "csv"`)
}
