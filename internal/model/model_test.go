package model_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/nikbrunner/bmx/internal/model"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func folder(title string, addDate int64, parents ...model.ItemID) model.Folder {
	return model.NewFolder(model.NewFolderParams{Title: title, AddDate: addDate, ParentFolders: parents})
}

func TestNewItemID(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		addDate int64
		want    model.ItemID
	}{
		{name: "positive", title: "A", addDate: 65, want: "A+65"},
		{name: "negative", title: "A", addDate: -65, want: "A-65"},
		{name: "zero", title: "A", addDate: 0, want: "A+0"},
		{name: "empty title", title: "", addDate: 7, want: "+7"},
		{name: "title with sign", title: "C++", addDate: 1, want: "C+++1"},
		{name: "min int64", title: "x", addDate: -9223372036854775808, want: "x-9223372036854775808"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, model.NewItemID(tt.title, tt.addDate), tt.want)
		})
	}
}

func TestItemID_Collision(t *testing.T) {
	// Items sharing title and add date are indistinguishable.
	a := folder("Photos", 10)
	b := folder("Photos", 10)
	b.Children = []model.Folder{folder("Other", 11)}

	assert.Equal(t, model.ID(a), model.ID(b))

	c := folder("Photos", 12)
	assert.Assert(t, model.ID(a) != model.ID(c))
}

func TestPaths(t *testing.T) {
	work := folder("Work", 1)
	projects := folder("Projects", 2, work.ID())
	bm := model.NewBookmark(model.NewBookmarkParams{
		Title:         "Go",
		AddDate:       3,
		ParentFolders: []model.ItemID{work.ID(), projects.ID()},
		Href:          "https://go.dev",
	})

	assert.Equal(t, model.Path(work), "Work+1")
	assert.Equal(t, model.ParentPath(work), "")
	assert.Equal(t, model.Level(work), 0)

	assert.Equal(t, model.Path(projects), "Work+1/Projects+2")
	assert.Equal(t, model.ParentPath(projects), "Work+1")
	assert.Equal(t, model.Level(projects), 1)

	assert.Equal(t, model.Path(bm), "Work+1/Projects+2/Go+3")
	assert.Equal(t, model.ParentPath(bm), "Work+1/Projects+2")
	assert.DeepEqual(t, bm.Segments(), []model.ItemID{"Work+1", "Projects+2", "Go+3"})
}

func TestNewBookmark_Defaults(t *testing.T) {
	b := model.NewBookmark(model.NewBookmarkParams{Title: "x"})
	assert.Assert(t, b.ParentFolders != nil)
	assert.Assert(t, b.Icon == nil)

	f := model.NewFolder(model.NewFolderParams{Title: "x"})
	assert.Assert(t, f.ParentFolders != nil)
	assert.Assert(t, f.Children != nil)
}

func TestBookmark_JSON(t *testing.T) {
	b := model.NewBookmark(model.NewBookmarkParams{
		Title:         "Example",
		AddDate:       42,
		ParentFolders: []model.ItemID{"Work+1"},
		Href:          "https://example.com",
	})

	data, err := json.Marshal(b)
	assert.NilError(t, err)

	got := string(data)
	assert.Assert(t, is.Contains(got, `"title":"Example"`))
	assert.Assert(t, is.Contains(got, `"addDate":42`))
	assert.Assert(t, is.Contains(got, `"parentFolders":["Work+1"]`))
	assert.Assert(t, is.Contains(got, `"icon":null`))
	assert.Assert(t, !strings.Contains(got, "ItemInfo"))
}

func testStore() *model.Store {
	work := folder("Work", 1)
	projects := folder("Projects", 2, work.ID())
	work.Children = []model.Folder{projects}
	home := folder("Home", 3)
	homeAgain := folder("Home", 4)

	return &model.Store{
		Bookmarks: []model.Bookmark{},
		Folders:   []model.Folder{folder("Work", 1), projects, home, homeAgain},
		Tree:      []model.Folder{work, home, homeAgain},
	}
}

func TestStore_ResolveFolder(t *testing.T) {
	store := testStore()

	tests := []struct {
		path string
		want string // item path, "" = not found
	}{
		{path: "Work", want: "Work+1"},
		{path: "Work/Projects", want: "Work+1/Projects+2"},
		{path: "/Work/Projects/", want: "Work+1/Projects+2"},
		{path: "Work+1/Projects+2", want: "Work+1/Projects+2"},
		{path: "Home", want: "Home+3"},
		{path: "Home+4", want: "Home+4"},
		{path: "Work/Nope", want: ""},
		{path: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := store.ResolveFolder(tt.path)
			if tt.want == "" {
				assert.Assert(t, got == nil)
				return
			}
			assert.Assert(t, got != nil)
			assert.Equal(t, got.Path(), tt.want)
		})
	}
}

func TestStore_GetFolderByPath(t *testing.T) {
	store := testStore()

	f := store.GetFolderByPath("Work+1/Projects+2")
	assert.Assert(t, f != nil)
	assert.Equal(t, f.Title, "Projects")

	assert.Assert(t, store.GetFolderByPath("Projects+2") == nil)
}

func TestStore_TitlePath(t *testing.T) {
	store := testStore()
	bm := model.NewBookmark(model.NewBookmarkParams{
		Title:         "Board",
		ParentFolders: []model.ItemID{"Work+1", "Projects+2"},
	})
	assert.Equal(t, store.TitlePath(bm), "Work / Projects / Board")

	orphan := model.NewBookmark(model.NewBookmarkParams{
		Title:         "Lost",
		ParentFolders: []model.ItemID{"Gone+9"},
	})
	assert.Equal(t, store.TitlePath(orphan), "Gone+9 / Lost")
}
