package tree

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/nikbrunner/bmx/internal/model"
	"gotest.tools/v3/assert"
)

var equateEmpty = cmpopts.EquateEmpty()

func paths(groups [][]model.Folder) [][]string {
	result := [][]string{}
	for _, g := range groups {
		var p []string
		for _, f := range g {
			p = append(p, f.Path())
		}
		result = append(result, p)
	}
	return result
}

func TestSplitByParentPath(t *testing.T) {
	tests := []struct {
		name    string
		level   int
		folders []model.Folder
		want    [][]string
	}{
		{name: "empty", level: 0, folders: nil, want: [][]string{}},
		{
			name:    "root siblings",
			level:   0,
			folders: []model.Folder{fA, fB},
			want:    [][]string{{"A+0"}, {"B+8"}},
		},
		{
			name:    "root with child",
			level:   0,
			folders: []model.Folder{fA, fAA, fB},
			want:    [][]string{{"A+0", "A+0/A+2"}, {"B+8"}},
		},
		{
			name:    "root with descendants",
			level:   0,
			folders: []model.Folder{fA, fAA, fAAA, fB},
			want:    [][]string{{"A+0", "A+0/A+2", "A+0/A+2/A+4"}, {"B+8"}},
		},
		{
			name:    "level 1",
			level:   1,
			folders: []model.Folder{fAA, fAAA},
			want:    [][]string{{"A+0/A+2", "A+0/A+2/A+4"}},
		},
		{
			name:    "level 2",
			level:   2,
			folders: []model.Folder{fAAA},
			want:    [][]string{{"A+0/A+2/A+4"}},
		},
		{
			name:    "first seen key wins order",
			level:   0,
			folders: []model.Folder{fB, fA, fAA},
			want:    [][]string{{"B+8"}, {"A+0", "A+0/A+2"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := paths(splitByParentPath(tt.folders, tt.level))
			assert.DeepEqual(t, got, tt.want)
		})
	}
}

func TestBuild_Empty(t *testing.T) {
	assert.Equal(t, len(Build(nil)), 0)
	assert.Assert(t, Build([]model.Folder{}) != nil)
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name    string
		folders []model.Folder
		want    []model.Folder
	}{
		{
			name:    "one level",
			folders: []model.Folder{fA, fAA},
			want:    []model.Folder{withChildren(fA, fAA)},
		},
		{
			name:    "three levels",
			folders: []model.Folder{fA, fAA, fAAA, fB},
			want: []model.Folder{
				withChildren(fA, withChildren(fAA, fAAA)),
				fB,
			},
		},
		{
			name:    "full tree",
			folders: []model.Folder{fA, fB, fC, fAA, fAB, fCA, fAAA},
			want: []model.Folder{
				withChildren(fA, withChildren(fAA, fAAA), fAB),
				fB,
				withChildren(fC, fCA),
			},
		},
		{
			name:    "children listed before parents",
			folders: []model.Folder{fAAA, fCA, fAB, fAA, fC, fB, fA},
			want: []model.Folder{
				withChildren(fC, fCA),
				fB,
				withChildren(fA, fAB, withChildren(fAA, fAAA)),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Build(tt.folders)
			if diff := cmp.Diff(tt.want, got, equateEmpty); diff != "" {
				t.Errorf("tree mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, Count(got), len(tt.folders))
		})
	}
}

func TestBuild_DoesNotModifyInput(t *testing.T) {
	input := []model.Folder{fAAA, fAA, fA}
	Build(input)

	assert.Equal(t, input[0].Path(), fAAA.Path())
	assert.Equal(t, input[2].Path(), fA.Path())
	for _, f := range input {
		assert.Equal(t, len(f.Children), 0)
	}
}

func TestBuild_RoundTrip(t *testing.T) {
	built := Build([]model.Folder{fA, fB, fC, fAA, fAB, fCA, fAAA})

	flat := Flatten(built)
	assert.Equal(t, len(flat), 7)
	for _, f := range flat {
		assert.Equal(t, len(f.Children), 0)
	}

	if diff := cmp.Diff(built, Build(flat), equateEmpty); diff != "" {
		t.Errorf("round trip mismatch (-built +rebuilt):\n%s", diff)
	}
}

func TestBuild_DanglingParents(t *testing.T) {
	// Parents are not checked against the input: a lone orphan becomes top
	// level, orphans sharing a missing parent nest under the first of them.
	orphan := newFolder("X", 1, "Missing+0")
	sibling := newFolder("Y", 2, "Missing+0")

	got := Build([]model.Folder{orphan})
	if diff := cmp.Diff([]model.Folder{orphan}, got, equateEmpty); diff != "" {
		t.Errorf("lone orphan (-want +got):\n%s", diff)
	}

	got = Build([]model.Folder{orphan, sibling, fB})
	want := []model.Folder{fB, withChildren(orphan, sibling)}
	if diff := cmp.Diff(want, got, equateEmpty); diff != "" {
		t.Errorf("orphan siblings (-want +got):\n%s", diff)
	}
}

func TestBuild_DuplicateIDs(t *testing.T) {
	// Folders with identical title and add date collide: the second one is
	// grouped under the first.
	dup := newFolder("A", 0)

	got := Build([]model.Folder{fA, dup})
	want := []model.Folder{withChildren(fA, dup)}
	if diff := cmp.Diff(want, got, equateEmpty); diff != "" {
		t.Errorf("duplicates (-want +got):\n%s", diff)
	}
}

func TestWalkAndFind(t *testing.T) {
	built := Build([]model.Folder{fA, fB, fAA, fAAA})

	var visited []string
	Walk(built, func(f model.Folder, depth int) bool {
		visited = append(visited, f.Path())
		return f.ID() != fAA.ID()
	})
	assert.DeepEqual(t, visited, []string{"A+0", "A+0/A+2", "B+8"})

	found := Find(built, fAAA.Path())
	assert.Assert(t, found != nil)
	assert.Equal(t, found.ID(), fAAA.ID())

	assert.Assert(t, Find(built, "Nope+1") == nil)
}
