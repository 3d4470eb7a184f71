// ABOUTME: Training plan tables for SQLite storage.
// ABOUTME: One physical table per plan, registered in the plans catalogue.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/runlog/internal/models"
	log "github.com/sirupsen/logrus"
)

// CreatePlan creates an empty plan table and registers it.
func (d *DB) CreatePlan(name string) error {
	return d.CreatePlanWithWeeks(name, nil)
}

// CreatePlanWithWeeks creates a plan and inserts its weeks in program order.
// Either the plan and every week are stored, or nothing is.
func (d *DB) CreatePlanWithWeeks(name string, weeks [][7]float64) error {
	n, err := models.NormalizePlanName(name)
	if err != nil {
		return err
	}
	for i, days := range weeks {
		if err := models.ValidatePlanWeek(days); err != nil {
			return fmt.Errorf("week %d: %w", i+1, err)
		}
	}

	tx, err := d.db.Begin()
	if err != nil {
		return storageErr("begin create plan", err)
	}
	defer func() { _ = tx.Rollback() }()

	exists, err := planExists(tx, n)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("create plan %s: %w: plan already exists", n, models.ErrStorage)
	}

	if _, err := tx.Exec(planTableDDL(n)); err != nil {
		return storageErr("create plan table", err)
	}
	if _, err := tx.Exec(`INSERT INTO plans (name, created_at) VALUES (?, ?)`, n, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return storageErr("register plan", err)
	}
	for _, days := range weeks {
		if _, err := insertPlanWeek(tx, n, days); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return storageErr("commit create plan", err)
	}
	log.WithFields(log.Fields{"plan": n, "weeks": len(weeks)}).Debug("plan created")
	return nil
}

// DropPlan removes a plan table and its catalogue entry.
func (d *DB) DropPlan(name string) error {
	n, err := models.NormalizePlanName(name)
	if err != nil {
		return err
	}

	tx, err := d.db.Begin()
	if err != nil {
		return storageErr("begin drop plan", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := requirePlan(tx, n); err != nil {
		return err
	}
	if _, err := tx.Exec(`DROP TABLE ` + planTable(n)); err != nil {
		return storageErr("drop plan table", err)
	}
	if _, err := tx.Exec(`DELETE FROM plans WHERE name = ?`, n); err != nil {
		return storageErr("unregister plan", err)
	}

	if err := tx.Commit(); err != nil {
		return storageErr("commit drop plan", err)
	}
	return nil
}

// AddPlanWeek appends a program week to a plan and returns its week number.
func (d *DB) AddPlanWeek(name string, days [7]float64) (int, error) {
	n, err := models.NormalizePlanName(name)
	if err != nil {
		return 0, err
	}
	if err := models.ValidatePlanWeek(days); err != nil {
		return 0, err
	}

	tx, err := d.db.Begin()
	if err != nil {
		return 0, storageErr("begin add plan week", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := requirePlan(tx, n); err != nil {
		return 0, err
	}

	week, err := insertPlanWeek(tx, n, days)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, storageErr("commit add plan week", err)
	}
	return week, nil
}

func insertPlanWeek(tx *sql.Tx, name string, days [7]float64) (int, error) {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(planColumns)), ", ")
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`, planTable(name), strings.Join(planColumns, ", "), placeholders)
	args := make([]interface{}, len(days))
	for i, v := range days {
		args[i] = v
	}

	result, err := tx.Exec(query, args...)
	if err != nil {
		return 0, storageErr("insert plan week", err)
	}
	week, err := result.LastInsertId()
	if err != nil {
		return 0, storageErr("insert plan week", err)
	}
	return int(week), nil
}

// ListPlans returns every registered plan with its week count, ordered by name.
func (d *DB) ListPlans() ([]models.Plan, error) {
	rows, err := d.db.Query(`SELECT name, created_at FROM plans ORDER BY name`)
	if err != nil {
		return nil, storageErr("list plans", err)
	}

	var plans []models.Plan
	for rows.Next() {
		var p models.Plan
		var createdAt string
		if err := rows.Scan(&p.Name, &createdAt); err != nil {
			rows.Close()
			return nil, storageErr("scan plan", err)
		}
		p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, storageErr("iterate plans", err)
	}
	rows.Close()

	// Counted after the cursor is closed: the store runs on a single connection.
	for i := range plans {
		if err := d.db.QueryRow(`SELECT COUNT(*) FROM ` + planTable(plans[i].Name)).Scan(&plans[i].Weeks); err != nil {
			return nil, storageErr("count plan weeks", err)
		}
	}
	return plans, nil
}

// GetPlanWeeks returns the weeks of a plan in program order.
func (d *DB) GetPlanWeeks(name string) ([]models.PlanWeek, error) {
	n, err := models.NormalizePlanName(name)
	if err != nil {
		return nil, err
	}
	if err := requirePlan(d.db, n); err != nil {
		return nil, err
	}

	rows, err := d.db.Query(fmt.Sprintf(`SELECT week, %s FROM %s ORDER BY week`, strings.Join(planColumns, ", "), planTable(n)))
	if err != nil {
		return nil, storageErr("get plan weeks", err)
	}
	defer rows.Close()

	var weeks []models.PlanWeek
	for rows.Next() {
		var w models.PlanWeek
		dest := []interface{}{&w.Week}
		for i := range w.Days {
			dest = append(dest, &w.Days[i])
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, storageErr("scan plan week", err)
		}
		weeks = append(weeks, w)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate plan weeks", err)
	}
	return weeks, nil
}

type queryRower interface {
	QueryRow(query string, args ...interface{}) *sql.Row
}

func planExists(q queryRower, name string) (bool, error) {
	var found string
	err := q.QueryRow(`SELECT name FROM plans WHERE name = ?`, name).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, storageErr("look up plan", err)
	}
	return true, nil
}

func requirePlan(q queryRower, name string) error {
	exists, err := planExists(q, name)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("plan %s: %w", name, models.ErrNotFound)
	}
	return nil
}
