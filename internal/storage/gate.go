package storage

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"strings"

	"golang.org/x/net/html/charset"
)

const (
	FileExtension = ".html"
	FileType      = "text/html"
	FileDoctype   = "<!DOCTYPE NETSCAPE-Bookmark-file-1>"
)

var (
	ErrInvalidFileType = errors.New("invalid file type")
	ErrInvalidContent  = errors.New("invalid file content")
	ErrInvalidFileName = errors.New("invalid file name")
	ErrNotFound        = errors.New("file not found")
)

// RejectionError explains why a bookmarks file was turned away.
// It wraps one of the Err* sentinels.
type RejectionError struct {
	Err    error
	Detail string
}

func (e *RejectionError) Error() string {
	return e.Detail
}

func (e *RejectionError) Unwrap() error {
	return e.Err
}

// CheckFileType accepts only text/html. Media type parameters are ignored.
func CheckFileType(contentType string) error {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType != FileType {
		return &RejectionError{
			Err:    ErrInvalidFileType,
			Detail: fmt.Sprintf("Invalid file format: %s.\nExpected a %s file.", contentType, FileExtension),
		}
	}
	return nil
}

// CheckContent accepts documents starting with the Netscape bookmark doctype.
func CheckContent(html string) error {
	if !strings.HasPrefix(html, FileDoctype) {
		return &RejectionError{
			Err:    ErrInvalidContent,
			Detail: fmt.Sprintf("Invalid file content.\nExpected a %s file with a %q opening tag.", FileExtension, FileDoctype),
		}
	}
	return nil
}

// IsFileName reports whether name is a bare .html file name.
func IsFileName(name string) bool {
	return !strings.Contains(name, "/") &&
		!strings.Contains(name, `\`) &&
		strings.HasSuffix(name, FileExtension) &&
		len(name) > len(FileExtension)
}

// CheckFileName rejects names that are not bare .html file names.
func CheckFileName(name string) error {
	if !IsFileName(name) {
		return &RejectionError{
			Err:    ErrInvalidFileName,
			Detail: fmt.Sprintf("Invalid file name: %q.\nExpected a %s file name.", name, FileExtension),
		}
	}
	return nil
}

// WithExtension appends the .html extension.
func WithExtension(name string) string {
	return name + FileExtension
}

// WithoutExtension strips the .html extension.
func WithoutExtension(name string) string {
	return strings.TrimSuffix(name, FileExtension)
}

// ReadHTML reads a bookmarks document, decoding it to UTF-8 using the
// content type or the document's meta charset, and checks its doctype.
func ReadHTML(r io.Reader, contentType string) (string, error) {
	decoded, err := charset.NewReader(r, contentType)
	if err != nil {
		return "", fmt.Errorf("decode bookmarks file: %w", err)
	}

	data, err := io.ReadAll(decoded)
	if err != nil {
		return "", fmt.Errorf("read bookmarks file: %w", err)
	}

	text := strings.TrimPrefix(string(data), "\ufeff")
	if err := CheckContent(text); err != nil {
		return "", err
	}
	return text, nil
}
