package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/nikbrunner/bmx/internal/importer"
	"github.com/nikbrunner/bmx/internal/model"
	"github.com/nikbrunner/bmx/internal/storage"
	"github.com/spf13/cobra"
)

// fileEnv names the environment variable holding the default bookmarks file.
const fileEnv = "BOOKMARKS_FILE_PATH"

var errNoFile = errors.New("no bookmarks file given (pass a path or set " + fileEnv + ")")

// options are the flags shared by all commands.
type options struct {
	configPath string
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "bmx",
		Short: "Browse Netscape bookmark exports",
		Long: `bmx reads bookmark files exported by Chrome, Firefox or Safari
and lets you browse, search, export and serve them.

Commands that take an optional [file] fall back to $` + fileEnv + `.

Examples:
  bmx tree bookmarks.html
  bmx list bookmarks.html --folder Work/Projects
  bmx search bookmarks.html jira
  bmx links --folder Work -o links.txt
  bmx export --format yaml --folder Work
  bmx view
  bmx serve --listen :9090`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(opts.verbose)
		},
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (default: ~/.config/bmx/config.yaml)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output to stderr")

	root.AddCommand(
		newTreeCmd(),
		newListCmd(),
		newBreadcrumbsCmd(),
		newSearchCmd(),
		newLinksCmd(opts),
		newExportCmd(),
		newCheckCmd(opts),
		newOpenCmd(),
		newViewCmd(opts),
		newServeCmd(opts),
	)

	return root
}

func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func loadConfig(opts *options) (*storage.Config, error) {
	path := opts.configPath
	if path == "" {
		path = storage.DefaultConfigFilePath()
	}

	cfg, err := storage.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	slog.Debug("Loaded config", "path", path, "library", cfg.Library)
	return cfg, nil
}

// filePath returns the bookmarks file argument or the environment default.
func filePath(args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if path := os.Getenv(fileEnv); path != "" {
		return path, nil
	}
	return "", errNoFile
}

// loadStore reads and parses the bookmarks file named by args.
func loadStore(args []string) (*model.Store, error) {
	path, err := filePath(args)
	if err != nil {
		return nil, err
	}

	src, err := storage.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading bookmarks: %w", err)
	}

	store := importer.Parse(src)
	slog.Debug("Parsed bookmarks file", "file", path, "bookmarks", len(store.Bookmarks), "folders", len(store.Folders))
	return store, nil
}

// resolveFolder looks up a --folder value. An empty path is the top level.
func resolveFolder(store *model.Store, path string) (*model.Folder, error) {
	if path == "" {
		return nil, nil
	}
	folder := store.ResolveFolder(path)
	if folder == nil {
		return nil, fmt.Errorf("folder %q not found", path)
	}
	return folder, nil
}

// loadScope combines loadStore and resolveFolder.
func loadScope(args []string, folderPath string) (*model.Store, *model.Folder, error) {
	store, err := loadStore(args)
	if err != nil {
		return nil, nil, err
	}
	folder, err := resolveFolder(store, folderPath)
	if err != nil {
		return nil, nil, err
	}
	return store, folder, nil
}

// splitQueryArgs splits "[file] QUERY" arguments.
func splitQueryArgs(args []string) (fileArgs []string, term string) {
	if len(args) >= 2 {
		return args[:1], args[1]
	}
	return nil, args[0]
}
