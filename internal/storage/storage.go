package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Library stores uploaded bookmarks documents by file name.
type Library interface {
	List() ([]string, error)
	Read(name string) (string, error)
	Write(name, html string) error
	Stat(name string) (FileInfo, error)
}

// DirLibrary implements Library using a directory of .html files.
type DirLibrary struct {
	dir string
}

// NewDirLibrary creates a new DirLibrary for the given directory.
func NewDirLibrary(dir string) *DirLibrary {
	return &DirLibrary{dir: dir}
}

// Dir returns the library directory.
func (l *DirLibrary) Dir() string {
	return l.dir
}

// List returns the sorted names of bookmarks files, skipping example files.
// A missing directory is an empty library.
func (l *DirLibrary) List() ([]string, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, err
	}

	names := []string{}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !IsFileName(name) || strings.HasSuffix(name, ".example"+FileExtension) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Read returns the content of a bookmarks file.
func (l *DirLibrary) Read(name string) (string, error) {
	if err := CheckFileName(name); err != nil {
		return "", err
	}

	f, err := os.Open(filepath.Join(l.dir, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		return "", err
	}
	defer f.Close()

	return ReadHTML(f, "")
}

// Stat returns the size and modification time of a bookmarks file.
func (l *DirLibrary) Stat(name string) (FileInfo, error) {
	if err := CheckFileName(name); err != nil {
		return FileInfo{}, err
	}

	fi, err := os.Stat(filepath.Join(l.dir, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return FileInfo{}, fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		return FileInfo{}, err
	}
	return FileInfo{Name: name, Size: fi.Size(), UploadedAt: fi.ModTime()}, nil
}

// Write stores a bookmarks file, replacing any file with the same name.
// Creates the directory if it doesn't exist.
func (l *DirLibrary) Write(name, html string) error {
	if err := CheckFileName(name); err != nil {
		return err
	}
	if err := CheckContent(html); err != nil {
		return err
	}

	if err := os.MkdirAll(l.dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(l.dir, name), []byte(html), 0644)
}

// ReadFile reads a bookmarks document from an arbitrary path.
func ReadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return "", err
	}
	defer f.Close()

	return ReadHTML(f, "")
}

// OpenLibrary opens the library backend selected in the config.
func OpenLibrary(cfg *Config) (Library, error) {
	switch cfg.Library {
	case LibrarySQLite:
		return NewSQLiteLibrary(cfg.SQLitePath)
	case LibraryDir, "":
		return NewDirLibrary(cfg.UploadDir), nil
	default:
		return nil, fmt.Errorf("unknown library %q (want %q or %q)", cfg.Library, LibraryDir, LibrarySQLite)
	}
}
