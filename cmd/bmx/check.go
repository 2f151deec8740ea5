package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/nikbrunner/bmx/internal/culler"
	"github.com/nikbrunner/bmx/internal/model"
	"github.com/nikbrunner/bmx/internal/query"
	"github.com/spf13/cobra"
)

func newCheckCmd(opts *options) *cobra.Command {
	var folderPath string

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Report dead and unreachable links below a folder",
		Long: `Checks every link below a folder with HEAD (falling back to GET)
and reports dead and unreachable ones. Nothing is modified.

Concurrency, timeout and domains whose 404s are ignored come from
the config.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			store, folder, err := loadScope(args, folderPath)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			bookmarks := query.BookmarksIn(store.Bookmarks, folder, true)
			results := checkLinks(ctx, cmd.ErrOrStderr(), bookmarks, culler.Options{
				Concurrency:    cfg.CheckConcurrency,
				Timeout:        cfg.CheckTimeout,
				ExcludeDomains: cfg.ExcludeDomains,
			})
			printCheckReport(cmd.OutOrStdout(), store, results)
			return ctx.Err()
		},
	}

	cmd.Flags().StringVar(&folderPath, "folder", "", "folder to check, e.g. Work/Projects")
	return cmd
}

// checkLinks runs the link check and reports progress on w.
func checkLinks(ctx context.Context, w io.Writer, bookmarks []model.Bookmark, opts culler.Options) []culler.Result {
	if len(bookmarks) == 0 {
		return nil
	}

	results := culler.CheckURLs(ctx, bookmarks, opts, func(completed, total int) {
		fmt.Fprintf(w, "\rChecking links... %d/%d", completed, total)
	})
	fmt.Fprintln(w)
	return results
}

func printCheckReport(w io.Writer, store *model.Store, results []culler.Result) {
	counts := map[culler.Status]int{}
	for _, r := range results {
		counts[r.Status]++
		if r.Status == culler.Healthy {
			continue
		}

		detail := r.Error
		if detail == "" {
			detail = fmt.Sprintf("HTTP %d", r.StatusCode)
		}
		fmt.Fprintf(w, "[%s] %s\n  %s (%s)\n", r.Status, store.TitlePath(r.Bookmark), r.Bookmark.Href, detail)
	}

	fmt.Fprintf(w, "Checked %d links: %d healthy, %d dead, %d unreachable\n",
		len(results), counts[culler.Healthy], counts[culler.Dead], counts[culler.Unreachable])
}
