package main

import (
	"fmt"
	"os/exec"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/bmx/internal/model"
	"github.com/nikbrunner/bmx/internal/picker"
	"github.com/nikbrunner/bmx/internal/search"
	"github.com/spf13/cobra"
)

func newOpenCmd() *cobra.Command {
	var folderPath string

	cmd := &cobra.Command{
		Use:   "open [file] QUERY",
		Short: "Quick search, select and open a bookmark in the browser",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fileArgs, term := splitQueryArgs(args)
			store, folder, err := loadScope(fileArgs, folderPath)
			if err != nil {
				return err
			}

			results := search.FuzzySearch(store.Bookmarks, folder, term)
			if len(results) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No bookmarks found for '%s'\n", term)
				return nil
			}

			var selected *model.Bookmark
			if len(results) == 1 {
				// Single result - select it directly
				selected = results[0].Bookmark
				fmt.Fprintf(cmd.OutOrStdout(), "Opening: %s\n", selected.Title)
			} else {
				p := picker.New(results, term, func(b *model.Bookmark) string {
					return store.TitlePath(b)
				})
				finalModel, err := tea.NewProgram(p).Run()
				if err != nil {
					return fmt.Errorf("running picker: %w", err)
				}

				finalPicker := finalModel.(picker.Picker)
				if finalPicker.Cancelled() {
					return nil
				}
				selected = finalPicker.SelectedBookmark()
			}

			if selected == nil || selected.Href == "" {
				return nil
			}
			return openURL(selected.Href)
		},
	}

	cmd.Flags().StringVar(&folderPath, "folder", "", "search only below this folder")
	return cmd
}

// openURL opens a URL in the default browser.
func openURL(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("opening links is not supported on %s", runtime.GOOS)
	}
	return cmd.Start()
}
