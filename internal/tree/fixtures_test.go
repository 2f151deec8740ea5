package tree

import "github.com/nikbrunner/bmx/internal/model"

// Flat folders keyed by title path, following the layout
//
//	/A, /A/A, /A/A/A, /A/B, /B, /C, /C/A
var (
	fA   = newFolder("A", 0)
	fAA  = newFolder("A", 2, fA.ID())
	fAAA = newFolder("A", 4, fA.ID(), fAA.ID())
	fAB  = newFolder("B", 6, fA.ID())
	fB   = newFolder("B", 8)
	fC   = newFolder("C", 10)
	fCA  = newFolder("A", 12, fC.ID())
)

func newFolder(title string, addDate int64, parents ...model.ItemID) model.Folder {
	return model.NewFolder(model.NewFolderParams{Title: title, AddDate: addDate, ParentFolders: parents})
}

func withChildren(f model.Folder, children ...model.Folder) model.Folder {
	f.Children = children
	return f
}
