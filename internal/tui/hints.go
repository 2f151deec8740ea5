package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// HintSet is an ordered collection of key bindings by group.
type HintSet struct {
	Nav    []key.Binding
	Action []key.Binding
	System []key.Binding
}

// All returns all hints flattened in display order: Nav + Action + System.
func (h HintSet) All() []key.Binding {
	result := make([]key.Binding, 0, len(h.Nav)+len(h.Action)+len(h.System))
	result = append(result, h.Nav...)
	result = append(result, h.Action...)
	result = append(result, h.System...)
	return result
}

// contextualHints returns the hints for the current mode and pane.
func (a App) contextualHints() HintSet {
	if a.mode == ModeSearch {
		return HintSet{
			Nav:    []key.Binding{key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "move"))},
			System: []key.Binding{a.keys.Confirm, a.keys.Cancel},
		}
	}

	hints := HintSet{
		Nav:    []key.Binding{a.keys.Down, a.keys.Left, a.keys.Right, a.keys.Focus},
		System: []key.Binding{a.keys.Search, a.keys.Quit},
	}
	if a.focusedPane == PaneList {
		hints.Action = []key.Binding{a.keys.Select, a.keys.YankURL, a.keys.SaveLinks, a.keys.Export}
	} else {
		hints.Action = []key.Binding{a.keys.Export}
	}
	if a.searchTerm != "" {
		hints.System = append(hints.System, a.keys.Cancel)
	}
	return hints
}

// renderHints renders hints in horizontal format: "j/down:move down h:back"
func (a App) renderHints(hints HintSet) string {
	all := hints.All()
	parts := make([]string, 0, len(all))
	for _, b := range all {
		h := b.Help()
		parts = append(parts, a.styles.HintKey.Render(h.Key)+":"+a.styles.HintDesc.Render(h.Desc))
	}
	return strings.Join(parts, " ")
}
