// ABOUTME: Application service tying input, derived metrics, storage and weekly reports.
// ABOUTME: Tracks what the current session inserted, updated and deleted.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/harperreed/runlog/internal/aggregate"
	"github.com/harperreed/runlog/internal/csvio"
	"github.com/harperreed/runlog/internal/metrics"
	"github.com/harperreed/runlog/internal/models"
	"github.com/harperreed/runlog/internal/storage"
	"github.com/harperreed/runlog/internal/weather"
	log "github.com/sirupsen/logrus"
)

// Options configures a Service. Zero values fall back to defaults.
type Options struct {
	Anchor         time.Weekday
	LookbackMonths int
	// Weather is optional; nil disables the lookup.
	Weather        weather.Provider
	WeatherTimeout time.Duration
	// Today overrides the clock in tests.
	Today func() models.Date
}

// Service is the single entry point the CLI and the MCP server use to change data.
type Service struct {
	repo storage.Repository
	opts Options

	mu      sync.Mutex
	session Session
}

// Session records the dates touched since the service was created.
type Session struct {
	Inserted []models.Date `json:"inserted"`
	Updated  []models.Date `json:"updated"`
	Deleted  []models.Date `json:"deleted"`
}

// SubmitResult is the outcome of storing one run.
type SubmitResult struct {
	Run     *models.Run         `json:"run"`
	Action  models.WriteAction  `json:"action"`
	Weather *weather.Conditions `json:"weather,omitempty"`
}

// ImportResult summarises a CSV import.
type ImportResult struct {
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
}

// Summary is the weekly report over a lookback window.
type Summary struct {
	From           models.Date      `json:"from"`
	To             models.Date      `json:"to"`
	LookbackMonths int              `json:"lookback_months"`
	Weeks          []aggregate.Week `json:"weeks"`
	Series         aggregate.Series `json:"series"`
	TotalDistance  float64          `json:"total_distance_km"`
	Sessions       int              `json:"sessions"`
}

// New creates a Service over repo.
func New(repo storage.Repository, opts Options) *Service {
	if opts.WeatherTimeout <= 0 {
		opts.WeatherTimeout = 5 * time.Second
	}
	if opts.LookbackMonths < 0 {
		opts.LookbackMonths = 0
	}
	if opts.Today == nil {
		opts.Today = models.Today
	}
	return &Service{repo: repo, opts: opts}
}

// Store returns the underlying repository for read-only callers.
func (s *Service) Store() storage.Repository {
	return s.repo
}

// LookbackMonths returns the configured default lookback.
func (s *Service) LookbackMonths() int {
	return s.opts.LookbackMonths
}

// Today returns the service's current calendar day.
func (s *Service) Today() models.Date {
	return s.opts.Today()
}

// Submit validates raw input, derives pace and speed, and upserts the run by
// date. A configured weather provider is asked for current conditions after
// the run is stored; its failure is logged and never fails the submit.
func (s *Service) Submit(ctx context.Context, in models.RunInput) (*SubmitResult, error) {
	run, err := metrics.FromInput(in)
	if err != nil {
		return nil, err
	}

	action, err := s.repo.UpsertRun(run)
	if err != nil {
		return nil, fmt.Errorf("store run %s: %w", run.Date, err)
	}
	s.record(action, run.Date)

	result := &SubmitResult{Run: run, Action: action}
	result.Weather = s.lookupWeather(ctx, run.Location)
	return result, nil
}

func (s *Service) lookupWeather(ctx context.Context, location string) *weather.Conditions {
	if s.opts.Weather == nil || location == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.WeatherTimeout)
	defer cancel()

	conditions, err := s.opts.Weather.Current(ctx, location)
	if err != nil {
		if errors.Is(err, weather.ErrUnsupportedLocation) {
			log.WithField("location", location).Debug("no postcode for weather lookup")
		} else {
			log.WithError(err).WithField("location", location).Warn("weather lookup failed")
		}
		return nil
	}
	return conditions
}

// Get returns the run stored for date.
func (s *Service) Get(date models.Date) (*models.Run, error) {
	return s.repo.GetRun(date)
}

// Delete removes the run for date. It reports whether a run was removed.
func (s *Service) Delete(date models.Date) (bool, error) {
	deleted, err := s.repo.DeleteRun(date)
	if err != nil {
		return false, fmt.Errorf("delete run %s: %w", date, err)
	}
	if deleted {
		s.mu.Lock()
		s.session.Deleted = append(s.session.Deleted, date)
		s.mu.Unlock()
	}
	return deleted, nil
}

// WeeklySummary aggregates the runs of the last lookbackMonths months into
// gap-free weeks. A negative lookback uses the configured default.
func (s *Service) WeeklySummary(lookbackMonths int) (*Summary, error) {
	if lookbackMonths < 0 {
		lookbackMonths = s.opts.LookbackMonths
	}
	today := s.opts.Today()

	from, to, err := aggregate.Window(today, lookbackMonths, s.opts.Anchor)
	if err != nil {
		return nil, err
	}
	last := to.AddDays(-1)

	runs, err := s.repo.QueryRuns(models.RunBounds{DateFrom: &from, DateTo: &last})
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}

	weeks, err := aggregate.ByWeek(runs, today, lookbackMonths, s.opts.Anchor)
	if err != nil {
		return nil, err
	}
	distance, sessions := aggregate.Totals(weeks)

	return &Summary{
		From:           from,
		To:             last,
		LookbackMonths: lookbackMonths,
		Weeks:          weeks,
		Series:         aggregate.ToSeries(weeks),
		TotalDistance:  metrics.RoundTo(distance, 2),
		Sessions:       sessions,
	}, nil
}

// ImportCSV stores every run in r in one transaction. A missing header or
// any bad row rejects the whole file and nothing is stored.
func (s *Service) ImportCSV(r io.Reader) (*ImportResult, error) {
	runs, err := csvio.ReadRuns(r)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return &ImportResult{}, nil
	}

	actions, err := s.repo.UpsertRuns(runs)
	if err != nil {
		return nil, fmt.Errorf("store imported runs: %w", err)
	}

	result := &ImportResult{}
	for i, a := range actions {
		s.record(a, runs[i].Date)
		if a == models.ActionUpdated {
			result.Updated++
		} else {
			result.Inserted++
		}
	}
	log.WithFields(log.Fields{"inserted": result.Inserted, "updated": result.Updated}).Info("csv import complete")
	return result, nil
}

// ExportCSV writes every run as CSV, oldest first.
func (s *Service) ExportCSV(w io.Writer) error {
	runs, err := s.repo.ListRuns(models.Ascending)
	if err != nil {
		return fmt.Errorf("list runs: %w", err)
	}
	return csvio.WriteRuns(w, runs)
}

// ImportPlanCSV creates a plan holding the weeks in r. The file is parsed in
// full first, and the plan and its weeks are stored in one transaction.
func (s *Service) ImportPlanCSV(name string, r io.Reader) (int, error) {
	weeks, err := csvio.ReadPlan(r)
	if err != nil {
		return 0, err
	}

	if err := s.repo.CreatePlanWithWeeks(name, weeks); err != nil {
		return 0, fmt.Errorf("import plan %s: %w", name, err)
	}
	return len(weeks), nil
}

// Session returns a copy of the session provenance.
func (s *Service) Session() Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Session{
		Inserted: append([]models.Date(nil), s.session.Inserted...),
		Updated:  append([]models.Date(nil), s.session.Updated...),
		Deleted:  append([]models.Date(nil), s.session.Deleted...),
	}
}

func (s *Service) record(action models.WriteAction, date models.Date) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch action {
	case models.ActionInserted:
		s.session.Inserted = append(s.session.Inserted, date)
	case models.ActionUpdated:
		s.session.Updated = append(s.session.Updated, date)
	}
}
