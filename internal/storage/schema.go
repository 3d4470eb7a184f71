// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines the runs table and the catalogue of per-plan tables.
package storage

import (
	"fmt"
	"strings"
)

// initSchema creates or updates the database schema.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		date TEXT PRIMARY KEY,
		id TEXT NOT NULL UNIQUE,
		duration_seconds INTEGER NOT NULL CHECK (duration_seconds >= 0),
		distance REAL NOT NULL CHECK (distance > 0),
		location TEXT NOT NULL,
		pace_seconds INTEGER NOT NULL,
		speed REAL NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS plans (
		name TEXT PRIMARY KEY,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_distance ON runs(distance);
	CREATE INDEX IF NOT EXISTS idx_runs_speed ON runs(speed);
	`

	_, err := d.db.Exec(schema)
	return err
}

// planTable returns the quoted table name for a normalized plan name.
func planTable(name string) string {
	return `"plan_` + name + `"`
}

// planTableDDL creates one plan table: a program week per row, one column per weekday.
func planTableDDL(name string) string {
	var cols []string
	for _, day := range planColumns {
		cols = append(cols, fmt.Sprintf("%s REAL NOT NULL DEFAULT 0 CHECK (%s >= 0)", day, day))
	}
	return fmt.Sprintf("CREATE TABLE %s (week INTEGER PRIMARY KEY AUTOINCREMENT, %s)",
		planTable(name), strings.Join(cols, ", "))
}

// planColumns are the weekday column names, Monday first.
var planColumns = []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}
