package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const currentSchemaVersion = 2

// SQLiteLibrary implements Library using a SQLite database.
type SQLiteLibrary struct {
	db   *sql.DB
	path string
}

// NewSQLiteLibrary opens a SQLite library. path is a file path or a sqlite
// URI such as "file:bmx?mode=memory&cache=shared".
func NewSQLiteLibrary(path string) (*SQLiteLibrary, error) {
	inMemory := isMemoryDSN(path)
	if !inMemory && !strings.HasPrefix(path, "file:") {
		// Ensure directory exists
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// A single connection keeps an in-memory database alive and shared.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	if !inMemory {
		pragmas = append(pragmas, "PRAGMA journal_mode = WAL")
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, err
		}
	}

	l := &SQLiteLibrary{db: db, path: path}
	if err := l.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return l, nil
}

func isMemoryDSN(path string) bool {
	return path == ":memory:" || strings.Contains(path, "mode=memory")
}

// Path returns the database path.
func (l *SQLiteLibrary) Path() string {
	return l.path
}

// Close closes the database connection.
func (l *SQLiteLibrary) Close() error {
	return l.db.Close()
}

// migrate runs database migrations.
func (l *SQLiteLibrary) migrate() error {
	version, err := l.SchemaVersion()
	if err != nil {
		// Table doesn't exist or is empty, start fresh
		version = 0
	}

	if version < 1 {
		if err := l.migrateV1(); err != nil {
			return err
		}
	}

	if version < 2 {
		if err := l.migrateV2(); err != nil {
			return err
		}
	}

	return nil
}

// migrateV1 creates the initial schema.
func (l *SQLiteLibrary) migrateV1() error {
	schema := `
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS files (
			name TEXT PRIMARY KEY NOT NULL,
			html TEXT NOT NULL,
			uploaded_at TEXT NOT NULL
		);

		INSERT OR REPLACE INTO schema_version (version) VALUES (1);
	`
	_, err := l.db.Exec(schema)
	return err
}

// migrateV2 adds the size column used for listings.
func (l *SQLiteLibrary) migrateV2() error {
	migration := `
		ALTER TABLE files ADD COLUMN size INTEGER NOT NULL DEFAULT 0;
		UPDATE files SET size = length(CAST(html AS BLOB));
		UPDATE schema_version SET version = 2;
	`
	_, err := l.db.Exec(migration)
	return err
}

// SchemaVersion returns the migrated schema version.
func (l *SQLiteLibrary) SchemaVersion() (int, error) {
	var version int
	err := l.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	return version, err
}

// List returns the stored file names in name order.
func (l *SQLiteLibrary) List() ([]string, error) {
	rows, err := l.db.Query(`SELECT name FROM files ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// FileInfo describes a stored file.
type FileInfo struct {
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// Stat returns metadata for a stored file.
func (l *SQLiteLibrary) Stat(name string) (FileInfo, error) {
	if err := CheckFileName(name); err != nil {
		return FileInfo{}, err
	}

	var info FileInfo
	var uploadedAt string
	err := l.db.QueryRow(
		`SELECT name, size, uploaded_at FROM files WHERE name = ?`, name,
	).Scan(&info.Name, &info.Size, &uploadedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return FileInfo{}, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	if err != nil {
		return FileInfo{}, err
	}

	info.UploadedAt, _ = time.Parse(time.RFC3339, uploadedAt)
	return info, nil
}

// Read returns the content of a stored file.
func (l *SQLiteLibrary) Read(name string) (string, error) {
	if err := CheckFileName(name); err != nil {
		return "", err
	}

	var html string
	err := l.db.QueryRow(`SELECT html FROM files WHERE name = ?`, name).Scan(&html)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	if err != nil {
		return "", err
	}
	return html, nil
}

// Write stores a file, replacing any file with the same name.
func (l *SQLiteLibrary) Write(name, html string) error {
	if err := CheckFileName(name); err != nil {
		return err
	}
	if err := CheckContent(html); err != nil {
		return err
	}

	_, err := l.db.Exec(`
		INSERT INTO files (name, html, uploaded_at, size)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			html = excluded.html,
			uploaded_at = excluded.uploaded_at,
			size = excluded.size
	`, name, html, time.Now().UTC().Format(time.RFC3339), len(html))
	return err
}
