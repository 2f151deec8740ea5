package query

import (
	"slices"

	"github.com/nikbrunner/bmx/internal/model"
)

// Selection is an ordered set of items compared with IsSameAs.
// The zero value is an empty selection.
type Selection[T model.Item] struct {
	items []T
}

// Has reports whether an item with the same ItemID is selected.
func (s *Selection[T]) Has(item T) bool {
	same := IsSameAs(item)
	return slices.ContainsFunc(s.items, func(x T) bool { return same(x) })
}

// Toggle selects item, or deselects it when already selected.
func (s *Selection[T]) Toggle(item T) {
	if s.Has(item) {
		s.Remove(item)
		return
	}
	s.items = append(s.items, item)
}

// Add selects items, skipping those already selected.
func (s *Selection[T]) Add(items ...T) {
	for _, item := range items {
		if !s.Has(item) {
			s.items = append(s.items, item)
		}
	}
}

// Remove deselects items.
func (s *Selection[T]) Remove(items ...T) {
	s.items = slices.DeleteFunc(s.items, func(x T) bool {
		for _, item := range items {
			if IsSameAs(item)(x) {
				return true
			}
		}
		return false
	})
}

// Reset clears the selection.
func (s *Selection[T]) Reset() {
	s.items = nil
}

// Len returns the number of selected items.
func (s *Selection[T]) Len() int {
	return len(s.items)
}

// Items returns the selected items in selection order.
func (s *Selection[T]) Items() []T {
	return slices.Clone(s.items)
}
