package search

import (
	"strings"

	"github.com/nikbrunner/bmx/internal/model"
	"github.com/nikbrunner/bmx/internal/query"
	"github.com/sahilm/fuzzy"
	"golang.org/x/text/cases"
)

// Result represents a fuzzy search match.
type Result struct {
	Bookmark       *model.Bookmark
	MatchedIndexes []int
	Score          int
}

// bookmarkTitles implements fuzzy.Source for bookmark slice.
type bookmarkTitles []*model.Bookmark

func (bt bookmarkTitles) String(i int) string {
	return bt[i].Title
}

func (bt bookmarkTitles) Len() int {
	return len(bt)
}

// FuzzySearch searches bookmarks in folder and its subfolders by title using
// fuzzy matching. A nil folder searches everything.
// Returns results sorted by match score (best first).
func FuzzySearch(bookmarks []model.Bookmark, folder *model.Folder, term string) []Result {
	if term == "" {
		return nil
	}

	scoped := query.BookmarksIn(bookmarks, folder, true)

	// Build slice of bookmark pointers
	source := make(bookmarkTitles, len(scoped))
	for i := range scoped {
		source[i] = &scoped[i]
	}

	matches := fuzzy.FindFrom(term, source)

	results := make([]Result, len(matches))
	for i, m := range matches {
		results[i] = Result{
			Bookmark:       source[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}

	return results
}

// Filter keeps bookmarks whose title or href contains term, ignoring case.
// Document order is kept. An empty term keeps everything.
func Filter(bookmarks []model.Bookmark, term string) []model.Bookmark {
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(term))

	result := []model.Bookmark{}
	for _, b := range bookmarks {
		if needle == "" ||
			strings.Contains(fold.String(b.Title), needle) ||
			strings.Contains(fold.String(b.Href), needle) {
			result = append(result, b)
		}
	}
	return result
}
