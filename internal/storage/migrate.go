// ABOUTME: Data migration between run storage backends.
// ABOUTME: Copies runs and training plans from source to destination.

package storage

import (
	"fmt"

	"github.com/harperreed/runlog/internal/models"
)

// MigrateSummary holds counts of migrated entities.
type MigrateSummary struct {
	Runs      int
	Updated   int
	Plans     int
	PlanWeeks int
}

// MigrateData copies all data from src to dst storage.
// Runs are upserted by date, so a run already present in dst is replaced
// and counted in Updated. Plans must not already exist in dst.
func MigrateData(src, dst Repository) (*MigrateSummary, error) {
	summary := &MigrateSummary{}

	runs, err := src.ListRuns(models.Ascending)
	if err != nil {
		return nil, fmt.Errorf("list source runs: %w", err)
	}

	if len(runs) > 0 {
		actions, err := dst.UpsertRuns(runs)
		if err != nil {
			return nil, fmt.Errorf("copy runs: %w", err)
		}
		for _, a := range actions {
			summary.Runs++
			if a == models.ActionUpdated {
				summary.Updated++
			}
		}
	}

	plans, err := src.ListPlans()
	if err != nil {
		return nil, fmt.Errorf("list source plans: %w", err)
	}

	for _, p := range plans {
		weeks, err := src.GetPlanWeeks(p.Name)
		if err != nil {
			return nil, fmt.Errorf("get plan %s: %w", p.Name, err)
		}
		if err := dst.CreatePlanWithWeeks(p.Name, planDays(weeks)); err != nil {
			return nil, fmt.Errorf("create plan %s: %w", p.Name, err)
		}
		summary.Plans++
		summary.PlanWeeks += len(weeks)
	}

	return summary, nil
}

func planDays(weeks []models.PlanWeek) [][7]float64 {
	days := make([][7]float64, len(weeks))
	for i, w := range weeks {
		days[i] = w.Days
	}
	return days
}
