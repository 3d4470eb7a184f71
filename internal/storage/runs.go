// ABOUTME: Run CRUD and range queries for SQLite storage.
// ABOUTME: Upserts are keyed by date and re-derive pace and speed before writing.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/runlog/internal/metrics"
	"github.com/harperreed/runlog/internal/models"
	log "github.com/sirupsen/logrus"
)

const runColumns = `date, id, duration_seconds, distance, location, pace_seconds, speed, created_at, updated_at`

// UpsertRun inserts the run if its date is new, otherwise replaces every
// non-key column. Pace and speed are recomputed from duration and distance.
// The existing ID and creation time are kept on update and copied into r.
func (d *DB) UpsertRun(r *models.Run) (models.WriteAction, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return 0, storageErr("begin upsert", err)
	}
	defer func() { _ = tx.Rollback() }()

	action, err := upsertRunTx(tx, r)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, storageErr("commit upsert", err)
	}

	log.WithFields(log.Fields{"date": r.Date.String(), "action": action.String()}).Debug("run stored")
	return action, nil
}

// UpsertRuns stores a batch of runs in one transaction: all or nothing.
func (d *DB) UpsertRuns(runs []*models.Run) ([]models.WriteAction, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return nil, storageErr("begin batch upsert", err)
	}
	defer func() { _ = tx.Rollback() }()

	actions := make([]models.WriteAction, 0, len(runs))
	for _, r := range runs {
		action, err := upsertRunTx(tx, r)
		if err != nil {
			return nil, fmt.Errorf("run %s: %w", r.Date, err)
		}
		actions = append(actions, action)
	}

	if err := tx.Commit(); err != nil {
		return nil, storageErr("commit batch upsert", err)
	}
	return actions, nil
}

func upsertRunTx(tx *sql.Tx, r *models.Run) (models.WriteAction, error) {
	if r == nil {
		return 0, fmt.Errorf("%w: nil run", models.ErrInvalidInput)
	}
	if err := metrics.Rederive(r); err != nil {
		return 0, err
	}
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	now := time.Now().UTC()
	r.UpdatedAt = now

	var existingID, createdAt string
	err := tx.QueryRow(`SELECT id, created_at FROM runs WHERE date = ?`, r.Date.String()).Scan(&existingID, &createdAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if r.CreatedAt.IsZero() {
			r.CreatedAt = now
		}
		_, err = tx.Exec(`INSERT INTO runs (`+runColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			r.Date.String(),
			r.ID.String(),
			int64(r.Duration/time.Second),
			r.Distance,
			r.Location,
			r.Pace.TotalSeconds(),
			r.Speed,
			r.CreatedAt.Format(time.RFC3339),
			r.UpdatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return 0, storageErr("insert run", err)
		}
		return models.ActionInserted, nil

	case err != nil:
		return 0, storageErr("check run exists", err)
	}

	_, err = tx.Exec(`
		UPDATE runs
		SET duration_seconds = ?, distance = ?, location = ?, pace_seconds = ?, speed = ?, updated_at = ?
		WHERE date = ?
	`,
		int64(r.Duration/time.Second),
		r.Distance,
		r.Location,
		r.Pace.TotalSeconds(),
		r.Speed,
		r.UpdatedAt.Format(time.RFC3339),
		r.Date.String(),
	)
	if err != nil {
		return 0, storageErr("update run", err)
	}

	r.ID, _ = uuid.Parse(existingID)
	r.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return models.ActionUpdated, nil
}

// GetRun retrieves the run for a date. A miss returns models.ErrNotFound.
func (d *DB) GetRun(date models.Date) (*models.Run, error) {
	row := d.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE date = ?`, date.String())
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("run %s: %w", date, models.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// DeleteRun removes the run for a date. Deleting an absent date is a no-op
// and reports false; only storage failures return an error.
func (d *DB) DeleteRun(date models.Date) (bool, error) {
	result, err := d.db.Exec("DELETE FROM runs WHERE date = ?", date.String())
	if err != nil {
		return false, storageErr("delete run", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, storageErr("delete run", err)
	}
	return affected > 0, nil
}

// ListRuns returns every run ordered by date.
func (d *DB) ListRuns(order models.SortOrder) ([]*models.Run, error) {
	query := `SELECT ` + runColumns + ` FROM runs ORDER BY date ASC`
	if order == models.Descending {
		query = `SELECT ` + runColumns + ` FROM runs ORDER BY date DESC`
	}

	rows, err := d.db.Query(query)
	if err != nil {
		return nil, storageErr("list runs", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// QueryRuns returns the runs satisfying every supplied inclusive bound,
// ordered by ascending date. Unset bounds fall back to the column's own
// minimum or maximum, so they never exclude a row.
func (d *DB) QueryRuns(b models.RunBounds) ([]*models.Run, error) {
	query := `
		SELECT ` + runColumns + `
		FROM runs
		WHERE date BETWEEN COALESCE(?, (SELECT MIN(date) FROM runs)) AND COALESCE(?, (SELECT MAX(date) FROM runs))
		  AND duration_seconds BETWEEN COALESCE(?, (SELECT MIN(duration_seconds) FROM runs)) AND COALESCE(?, (SELECT MAX(duration_seconds) FROM runs))
		  AND distance BETWEEN COALESCE(?, (SELECT MIN(distance) FROM runs)) AND COALESCE(?, (SELECT MAX(distance) FROM runs))
		  AND pace_seconds BETWEEN COALESCE(?, (SELECT MIN(pace_seconds) FROM runs)) AND COALESCE(?, (SELECT MAX(pace_seconds) FROM runs))
		  AND speed BETWEEN COALESCE(?, (SELECT MIN(speed) FROM runs)) AND COALESCE(?, (SELECT MAX(speed) FROM runs))
		ORDER BY date ASC
	`
	args := []interface{}{
		dateArg(b.DateFrom), dateArg(b.DateTo),
		durationArg(b.DurationMin), durationArg(b.DurationMax),
		floatArg(b.DistanceMin), floatArg(b.DistanceMax),
		paceArg(b.PaceMin), paceArg(b.PaceMax),
		floatArg(b.SpeedMin), floatArg(b.SpeedMax),
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, storageErr("query runs", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// CountRuns returns the number of stored runs.
func (d *DB) CountRuns() (int, error) {
	var n int
	if err := d.db.QueryRow(`SELECT COUNT(*) FROM runs`).Scan(&n); err != nil {
		return 0, storageErr("count runs", err)
	}
	return n, nil
}

// Bound arguments are untyped nil when unset so SQLite sees NULL.

func dateArg(v *models.Date) interface{} {
	if v == nil {
		return nil
	}
	return v.String()
}

func durationArg(v *time.Duration) interface{} {
	if v == nil {
		return nil
	}
	return int64(*v / time.Second)
}

func floatArg(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func paceArg(v *models.Pace) interface{} {
	if v == nil {
		return nil
	}
	return v.TotalSeconds()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanRun scans a single row into a Run struct.
func scanRun(row rowScanner) (*models.Run, error) {
	var r models.Run
	var date, idStr, createdAt, updatedAt string
	var durationSeconds, paceSeconds int64

	err := row.Scan(&date, &idStr, &durationSeconds, &r.Distance, &r.Location, &paceSeconds, &r.Speed, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, storageErr("scan run", err)
	}

	r.Date, err = models.ParseDate(date)
	if err != nil {
		return nil, storageErr("scan run date", err)
	}
	r.ID, _ = uuid.Parse(idStr)
	r.Duration = time.Duration(durationSeconds) * time.Second
	r.Pace = models.PaceFromSeconds(int(paceSeconds))
	r.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	r.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)

	return &r, nil
}

// scanRuns scans multiple rows into a slice of Runs.
func scanRuns(rows *sql.Rows) ([]*models.Run, error) {
	var runs []*models.Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate runs", err)
	}
	return runs, nil
}
