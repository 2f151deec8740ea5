package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nikbrunner/bmx/internal/cache"
	"github.com/nikbrunner/bmx/internal/exporter"
	"github.com/nikbrunner/bmx/internal/model"
	"github.com/nikbrunner/bmx/internal/query"
	"github.com/nikbrunner/bmx/internal/search"
	"github.com/nikbrunner/bmx/internal/storage"
)

// errFolderNotFound is returned when the folder query parameter does not
// resolve in the document.
var errFolderNotFound = errors.New("folder not found")

// Handler serves uploaded bookmarks files.
type Handler struct {
	library storage.Library
	cache   *cache.Cache
}

func NewHandler(library storage.Library, c *cache.Cache) *Handler {
	return &Handler{
		library: library,
		cache:   c,
	}
}

// FileSummary is one entry of the file listing.
type FileSummary struct {
	storage.FileInfo
	Title string `json:"title"`
}

// FileResponse is the parsed content of one bookmarks file.
type FileResponse struct {
	ID        string           `json:"id"`
	FileName  string           `json:"fileName"`
	ParsedAt  time.Time        `json:"parsedAt"`
	Bookmarks []model.Bookmark `json:"bookmarks"`
	Folders   []model.Folder   `json:"folders"`
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]any{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
	}

	if names, err := h.library.List(); err == nil {
		health["files"] = len(names)
	}

	c.JSON(http.StatusOK, health)
}

func (h *Handler) ListFiles(c *gin.Context) {
	names, err := h.library.List()
	if err != nil {
		h.fail(c, err)
		return
	}

	files := make([]FileSummary, 0, len(names))
	for _, name := range names {
		info, err := h.library.Stat(name)
		if err != nil {
			h.fail(c, err)
			return
		}
		files = append(files, FileSummary{
			FileInfo: info,
			Title:    storage.WithoutExtension(name),
		})
	}
	c.JSON(http.StatusOK, gin.H{"files": files})
}

// UploadFile stores a bookmarks file sent as the multipart field "file".
// The media type is checked first, then the doctype, then the file name.
func (h *Handler) UploadFile(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file"})
		return
	}

	contentType := header.Header.Get("Content-Type")
	if err := storage.CheckFileType(contentType); err != nil {
		h.fail(c, err)
		return
	}

	f, err := header.Open()
	if err != nil {
		h.fail(c, err)
		return
	}
	defer f.Close()

	html, err := storage.ReadHTML(f, contentType)
	if err != nil {
		h.fail(c, err)
		return
	}

	if err := h.library.Write(header.Filename, html); err != nil {
		h.fail(c, err)
		return
	}
	h.cache.Invalidate(header.Filename)

	slog.Info("Bookmarks file uploaded", "file", header.Filename, "size", len(html))
	c.JSON(http.StatusCreated, gin.H{"name": header.Filename})
}

func (h *Handler) GetFile(c *gin.Context) {
	entry, ok := h.load(c)
	if !ok {
		return
	}

	etag := strconv.Quote(entry.ID)
	c.Header("ETag", etag)
	if c.GetHeader("If-None-Match") == etag {
		c.Status(http.StatusNotModified)
		return
	}

	c.JSON(http.StatusOK, FileResponse{
		ID:        entry.ID,
		FileName:  entry.FileName,
		ParsedAt:  entry.ParsedAt,
		Bookmarks: entry.Store.Bookmarks,
		Folders:   entry.Store.Tree,
	})
}

func (h *Handler) GetBreadcrumbs(c *gin.Context) {
	entry, ok := h.load(c)
	if !ok {
		return
	}

	folder, ok := h.folder(c, entry.Store)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"breadcrumbs": query.Breadcrumbs(entry.Store.Folders, folder)})
}

// GetBookmarks lists the bookmarks of a folder. sub includes subfolders and
// q filters by title or URL.
func (h *Handler) GetBookmarks(c *gin.Context) {
	entry, ok := h.load(c)
	if !ok {
		return
	}

	folder, ok := h.folder(c, entry.Store)
	if !ok {
		return
	}

	includeSubfolders, _ := strconv.ParseBool(c.Query("sub"))
	bookmarks := query.BookmarksIn(entry.Store.Bookmarks, folder, includeSubfolders)
	bookmarks = search.Filter(bookmarks, c.Query("q"))

	c.JSON(http.StatusOK, gin.H{
		"folders":   query.FoldersIn(entry.Store.Folders, folder),
		"bookmarks": bookmarks,
	})
}

// GetLinks returns the links below a folder as plain text, one per line.
func (h *Handler) GetLinks(c *gin.Context) {
	entry, ok := h.load(c)
	if !ok {
		return
	}

	folder, ok := h.folder(c, entry.Store)
	if !ok {
		return
	}

	links := exporter.Links(query.BookmarksIn(entry.Store.Bookmarks, folder, true))
	c.String(http.StatusOK, links)
}

func (h *Handler) load(c *gin.Context) (cache.Entry, bool) {
	name := c.Param("name")
	if err := storage.CheckFileName(name); err != nil {
		h.fail(c, err)
		return cache.Entry{}, false
	}

	entry, err := h.cache.Load(name, func() (string, error) {
		return h.library.Read(name)
	})
	if err != nil {
		h.fail(c, err)
		return cache.Entry{}, false
	}
	return entry, true
}

// folder resolves the folder query parameter. An empty parameter is the
// top level and yields nil.
func (h *Handler) folder(c *gin.Context, store *model.Store) (*model.Folder, bool) {
	path := c.Query("folder")
	if path == "" {
		return nil, true
	}

	folder := store.ResolveFolder(path)
	if folder == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": errFolderNotFound.Error(), "folder": path})
		return nil, false
	}
	return folder, true
}

// fail maps storage errors to HTTP status codes.
func (h *Handler) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, storage.ErrInvalidFileType):
		status = http.StatusUnsupportedMediaType
	case errors.Is(err, storage.ErrInvalidContent), errors.Is(err, storage.ErrInvalidFileName):
		status = http.StatusBadRequest
	case errors.Is(err, storage.ErrNotFound):
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		slog.Error("Request failed", "path", c.Request.URL.Path, "error", err)
		_ = c.Error(err)
		c.JSON(status, gin.H{"error": "Internal server error"})
		return
	}

	msg := err.Error()
	var rejection *storage.RejectionError
	if errors.As(err, &rejection) {
		msg = rejection.Detail
	}
	c.JSON(status, gin.H{"error": msg})
}
