// ABOUTME: SQLite database connection and lifecycle management.
// ABOUTME: Uses modernc.org/sqlite (pure Go, no CGO required).
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/harperreed/runlog/internal/models"
	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

// Options configures how the store is opened. It is built from the
// application config and passed in explicitly.
type Options struct {
	// Path is the SQLite database file. Parent directories are created.
	Path string
	// BusyTimeout is how long SQLite waits on a locked database. Defaults to 5s.
	BusyTimeout time.Duration
}

// DB wraps the SQLite database connection.
type DB struct {
	db     *sql.DB
	dbPath string
}

// Compile-time check that DB implements Repository.
var _ Repository = (*DB)(nil)

// Open opens or creates a SQLite database described by opts.
func Open(opts Options) (*DB, error) {
	if opts.Path == "" {
		return nil, fmt.Errorf("%w: database path is empty", models.ErrInvalidInput)
	}
	if opts.BusyTimeout <= 0 {
		opts.BusyTimeout = 5 * time.Second
	}

	// Ensure parent directory exists
	dir := filepath.Dir(opts.Path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", opts.Path)
	if err != nil {
		return nil, storageErr("open database", err)
	}
	// One connection keeps every statement on the same SQLite handle.
	db.SetMaxOpenConns(1)

	d := &DB{db: db, dbPath: opts.Path}

	if err := d.configurePragmas(opts.BusyTimeout); err != nil {
		_ = db.Close()
		return nil, storageErr("configure pragmas", err)
	}

	if err := d.initSchema(); err != nil {
		_ = db.Close()
		return nil, storageErr("initialize schema", err)
	}

	// The file exists only once the schema has been written.
	if err := os.Chmod(opts.Path, 0600); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set database permissions: %w", err)
	}

	log.WithField("path", opts.Path).Debug("opened run database")
	return d, nil
}

// DataDir returns the default data directory following XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "runlog")
}

// DefaultDBName is the database file name inside the data directory.
const DefaultDBName = "runlog.db"

// DefaultDBPath returns the default database path following XDG spec.
func DefaultDBPath() string {
	return filepath.Join(DataDir(), DefaultDBName)
}

// Path returns the database file path.
func (d *DB) Path() string {
	return d.dbPath
}

// Close closes the database connection.
func (d *DB) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}

// configurePragmas sets up SQLite for optimal performance.
func (d *DB) configurePragmas(busyTimeout time.Duration) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA foreign_keys = ON",
		fmt.Sprintf("PRAGMA busy_timeout = %d", busyTimeout.Milliseconds()),
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := d.db.Exec(pragma); err != nil {
			return fmt.Errorf("execute %s: %w", pragma, err)
		}
	}
	return nil
}

// storageErr tags an engine failure with models.ErrStorage while keeping the cause.
func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, models.ErrStorage, err)
}
