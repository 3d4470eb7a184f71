// ABOUTME: Export and import functionality for run data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/runlog/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportVersion is the schema version written into every export.
const ExportVersion = "1.0"

// ExportData represents the full export format for run data.
type ExportData struct {
	Version    string        `json:"version" yaml:"version"`
	ExportedAt time.Time     `json:"exported_at" yaml:"exported_at"`
	Tool       string        `json:"tool" yaml:"tool"`
	Runs       []*models.Run `json:"runs" yaml:"runs"`
	Plans      []PlanExport  `json:"plans" yaml:"plans"`
}

// PlanExport is a plan with all of its weeks.
type PlanExport struct {
	Name  string            `json:"name" yaml:"name"`
	Weeks []models.PlanWeek `json:"weeks" yaml:"weeks"`
}

// GetAllData retrieves all data for export.
func (d *DB) GetAllData() (*ExportData, error) {
	return collectAll(d)
}

// collectAll gathers every run and plan from any repository.
func collectAll(repo Repository) (*ExportData, error) {
	runs, err := repo.ListRuns(models.Ascending)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}

	plans, err := repo.ListPlans()
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}

	exported := make([]PlanExport, 0, len(plans))
	for _, p := range plans {
		weeks, err := repo.GetPlanWeeks(p.Name)
		if err != nil {
			return nil, fmt.Errorf("get plan %s: %w", p.Name, err)
		}
		exported = append(exported, PlanExport{Name: p.Name, Weeks: weeks})
	}

	return &ExportData{
		Version:    ExportVersion,
		ExportedAt: time.Now().UTC(),
		Tool:       "runlog",
		Runs:       runs,
		Plans:      exported,
	}, nil
}

// ImportData imports data from an export file. Runs are upserted by date in
// one batch; plans must not already exist.
func (d *DB) ImportData(data *ExportData) error {
	return importInto(d, data)
}

func importInto(repo Repository, data *ExportData) error {
	if len(data.Runs) > 0 {
		if _, err := repo.UpsertRuns(data.Runs); err != nil {
			return fmt.Errorf("import runs: %w", err)
		}
	}

	for _, p := range data.Plans {
		if err := repo.CreatePlanWithWeeks(p.Name, planDays(p.Weeks)); err != nil {
			return fmt.Errorf("import plan %s: %w", p.Name, err)
		}
	}

	return nil
}

// ExportJSON exports all data as JSON.
func (d *DB) ExportJSON() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports all data as YAML, with runs grouped by month.
func (d *DB) ExportYAML() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}

	yamlData := struct {
		Version    string                    `yaml:"version"`
		ExportedAt string                    `yaml:"exported_at"`
		Tool       string                    `yaml:"tool"`
		Runs       map[string][]yamlRun      `yaml:"runs"`
		Plans      map[string][]yamlPlanWeek `yaml:"plans,omitempty"`
	}{
		Version:    data.Version,
		ExportedAt: data.ExportedAt.Format(time.RFC3339),
		Tool:       data.Tool,
		Runs:       make(map[string][]yamlRun),
		Plans:      make(map[string][]yamlPlanWeek),
	}

	for _, r := range data.Runs {
		month := r.Date.Format("2006-01")
		yamlData.Runs[month] = append(yamlData.Runs[month], yamlRun{
			Date:     r.Date.String(),
			Duration: r.DurationString(),
			Distance: r.Distance,
			Pace:     r.Pace.String(),
			Speed:    r.Speed,
			Location: r.Location,
		})
	}

	for _, p := range data.Plans {
		for _, w := range p.Weeks {
			yamlData.Plans[p.Name] = append(yamlData.Plans[p.Name], yamlPlanWeek{
				Week:  w.Week,
				Days:  w.Days[:],
				Total: w.Total(),
			})
		}
	}

	return yaml.Marshal(yamlData)
}

type yamlRun struct {
	Date     string  `yaml:"date"`
	Duration string  `yaml:"duration"`
	Distance float64 `yaml:"distance_km"`
	Pace     string  `yaml:"pace"`
	Speed    float64 `yaml:"speed_kmh"`
	Location string  `yaml:"location,omitempty"`
}

type yamlPlanWeek struct {
	Week  int       `yaml:"week"`
	Days  []float64 `yaml:"days,flow"`
	Total float64   `yaml:"total_km"`
}

// ExportMarkdown exports runs (optionally only those on or after since) and
// plans as Markdown tables.
func (d *DB) ExportMarkdown(since *models.Date) (string, error) {
	data, err := d.GetAllData()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	now := time.Now()

	sb.WriteString(fmt.Sprintf("# Run Log Export - %s\n\n", now.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", now.Format(time.RFC3339)))

	sb.WriteString("## Runs\n\n")
	sb.WriteString("| Date | Duration | Distance | Pace | Speed | Location |\n")
	sb.WriteString("|------|----------|----------|------|-------|----------|\n")
	for _, r := range data.Runs {
		if since != nil && r.Date.Before(*since) {
			continue
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %.2f km | %s /km | %.1f km/h | %s |\n",
			r.Date, r.DurationString(), r.Distance, r.Pace, r.Speed, r.Location))
	}

	for _, p := range data.Plans {
		sb.WriteString(fmt.Sprintf("\n## Plan: %s\n\n", p.Name))
		sb.WriteString("| Week | " + strings.Join(models.PlanDays[:], " | ") + " | Total |\n")
		sb.WriteString("|------" + strings.Repeat("|-----", len(models.PlanDays)) + "|-------|\n")
		for _, w := range p.Weeks {
			cells := make([]string, 0, len(w.Days))
			for _, v := range w.Days {
				cells = append(cells, fmt.Sprintf("%.1f", v))
			}
			sb.WriteString(fmt.Sprintf("| %d | %s | %.1f |\n", w.Week, strings.Join(cells, " | "), w.Total()))
		}
	}

	return sb.String(), nil
}

// ImportJSON imports data from JSON bytes.
func (d *DB) ImportJSON(data []byte) error {
	var exportData ExportData
	if err := json.Unmarshal(data, &exportData); err != nil {
		return fmt.Errorf("%w: unmarshal JSON: %w", models.ErrParse, err)
	}
	return d.ImportData(&exportData)
}
