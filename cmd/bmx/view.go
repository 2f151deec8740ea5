package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/bmx/internal/tui"
	"github.com/spf13/cobra"
)

func newViewCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "view [file]",
		Short: "Browse bookmarks in the terminal",
		Long: `Opens the interactive bookmark browser.

Keys:
  j/k         Move down/up
  h/l         Parent folder / open folder
  g/G         Jump to top/bottom
  tab         Switch between sidebar and list
  /           Fuzzy search in the current folder
  space       Select bookmark
  Y           Copy URL to clipboard
  S           Save selected links to the links file
  E           Export current folder as bookmark HTML
  q           Quit`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			store, err := loadStore(args)
			if err != nil {
				return err
			}

			app := tui.NewApp(tui.AppParams{
				Store:     store,
				LinksFile: cfg.LinksFile,
			})
			if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
				return fmt.Errorf("running app: %w", err)
			}
			return nil
		},
	}
}
