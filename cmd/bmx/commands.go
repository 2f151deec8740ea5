package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nikbrunner/bmx/internal/exporter"
	"github.com/nikbrunner/bmx/internal/model"
	"github.com/nikbrunner/bmx/internal/query"
	"github.com/nikbrunner/bmx/internal/search"
	"github.com/nikbrunner/bmx/internal/tree"
	"github.com/spf13/cobra"
)

func newTreeCmd() *cobra.Command {
	var folderPath string

	cmd := &cobra.Command{
		Use:   "tree [file]",
		Short: "Print the folder tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, folder, err := loadScope(args, folderPath)
			if err != nil {
				return err
			}

			folders := store.Tree
			if folder != nil {
				folders = []model.Folder{*folder}
			}

			out := cmd.OutOrStdout()
			tree.Walk(folders, func(f model.Folder, depth int) bool {
				n := len(query.BookmarksIn(store.Bookmarks, &f, false))
				fmt.Fprintf(out, "%s%s (%d)\n", strings.Repeat("  ", depth), f.Title, n)
				return true
			})
			return nil
		},
	}

	cmd.Flags().StringVar(&folderPath, "folder", "", "only print this folder, e.g. Work/Projects")
	return cmd
}

func newListCmd() *cobra.Command {
	var (
		folderPath string
		flat       bool
	)

	cmd := &cobra.Command{
		Use:   "list [file]",
		Short: "List the subfolders and bookmarks of a folder",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, folder, err := loadScope(args, folderPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if flat {
				for _, b := range query.BookmarksIn(store.Bookmarks, folder, true) {
					fmt.Fprintf(out, "%s\t%s\n", store.TitlePath(b), b.Href)
				}
				return nil
			}

			for _, f := range query.FoldersIn(store.Folders, folder) {
				fmt.Fprintf(out, "%s/\n", f.Title)
			}
			for _, b := range query.BookmarksIn(store.Bookmarks, folder, false) {
				fmt.Fprintf(out, "%s\t%s\n", b.Title, exporter.Shorten(b.Href))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&folderPath, "folder", "", "folder to list, e.g. Work/Projects")
	cmd.Flags().BoolVar(&flat, "flat", false, "list every bookmark below the folder with its location")
	return cmd
}

func newBreadcrumbsCmd() *cobra.Command {
	var folderPath string

	cmd := &cobra.Command{
		Use:   "breadcrumbs [file]",
		Short: "Print the path from the top level to a folder",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, folder, err := loadScope(args, folderPath)
			if err != nil {
				return err
			}

			titles := []string{"Bookmarks"}
			for _, crumb := range query.Breadcrumbs(store.Folders, folder) {
				titles = append(titles, crumb.Title)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(titles, " / "))
			return nil
		},
	}

	cmd.Flags().StringVar(&folderPath, "folder", "", "folder, e.g. Work/Projects")
	return cmd
}

func newSearchCmd() *cobra.Command {
	var folderPath string

	cmd := &cobra.Command{
		Use:   "search [file] QUERY",
		Short: "Fuzzy search bookmark titles below a folder",
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

			out := cmd.OutOrStdout()
			for _, r := range results {
				fmt.Fprintf(out, "%s\t%s\n", store.TitlePath(r.Bookmark), r.Bookmark.Href)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&folderPath, "folder", "", "search only below this folder")
	return cmd
}

func newLinksCmd(opts *options) *cobra.Command {
	var (
		folderPath string
		output     string
		save       bool
	)

	cmd := &cobra.Command{
		Use:   "links [file]",
		Short: "Write the links below a folder, one per line",
		Long: `Writes the links below a folder, one per line.

Without -o or --save the links are printed. --save writes to the
linksFile from the config.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, folder, err := loadScope(args, folderPath)
			if err != nil {
				return err
			}
			bookmarks := query.BookmarksIn(store.Bookmarks, folder, true)

			if save && output == "" {
				cfg, err := loadConfig(opts)
				if err != nil {
					return err
				}
				output = cfg.LinksFile
			}

			if output == "" {
				fmt.Fprintln(cmd.OutOrStdout(), exporter.Links(bookmarks))
				return nil
			}

			if err := exporter.WriteLinks(output, bookmarks); err != nil {
				return fmt.Errorf("writing links: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %d links to %s\n", len(bookmarks), output)
			return nil
		},
	}

	cmd.Flags().StringVar(&folderPath, "folder", "", "folder, e.g. Work/Projects")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file")
	cmd.Flags().BoolVar(&save, "save", false, "write to the configured links file")
	return cmd
}

func newExportCmd() *cobra.Command {
	var (
		folderPath string
		format     string
		output     string
	)

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export a folder as JSON, YAML or bookmark HTML",
		Long: `Exports a folder and everything below it.

The default output is ~/Downloads/bookmarks-export-YYYY-MM-DD.<format>.
Use -o - to print to stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, folder, err := loadScope(args, folderPath)
			if err != nil {
				return err
			}

			doc := exporter.NewDocument(store, folder)

			var data []byte
			switch format {
			case "json":
				data, err = exporter.JSON(doc)
			case "yaml":
				data, err = exporter.YAML(doc)
			case "html":
				data = []byte(exporter.ExportHTML(store, folder))
			default:
				return fmt.Errorf("unknown format %q (want json, yaml or html)", format)
			}
			if err != nil {
				return fmt.Errorf("encoding %s: %w", format, err)
			}

			if output == "-" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}

			if output == "" {
				output, err = exporter.DefaultExportPath(format)
				if err != nil {
					return fmt.Errorf("getting default export path: %w", err)
				}
			}
			if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
				return fmt.Errorf("creating export directory: %w", err)
			}
			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("writing file: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d bookmarks, %d folders to %s\n",
				len(doc.Bookmarks), tree.Count(doc.Folders), output)
			return nil
		},
	}

	cmd.Flags().StringVar(&folderPath, "folder", "", "folder to export, e.g. Work/Projects")
	cmd.Flags().StringVar(&format, "format", "html", "output format: json, yaml or html")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file")
	return cmd
}
