// ABOUTME: Range queries over stored runs from raw, optional bounds.
// ABOUTME: Shared by the CLI query command and the MCP query tool.
package tracker

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/harperreed/runlog/internal/models"
)

// BoundsInput holds optional inclusive bounds as typed by a user.
// Empty strings leave that side of the column unconstrained.
type BoundsInput struct {
	DateFrom, DateTo         string
	DurationMin, DurationMax string
	DistanceMin, DistanceMax string
	PaceMin, PaceMax         string
	SpeedMin, SpeedMax       string
}

// ParseBounds converts raw bounds into typed ones, reporting the first bad value.
func ParseBounds(in BoundsInput) (models.RunBounds, error) {
	var b models.RunBounds
	var err error

	if b.DateFrom, err = optDate(in.DateFrom); err != nil {
		return b, fmt.Errorf("date from: %w", err)
	}
	if b.DateTo, err = optDate(in.DateTo); err != nil {
		return b, fmt.Errorf("date to: %w", err)
	}
	if b.DurationMin, err = optDuration(in.DurationMin); err != nil {
		return b, fmt.Errorf("duration min: %w", err)
	}
	if b.DurationMax, err = optDuration(in.DurationMax); err != nil {
		return b, fmt.Errorf("duration max: %w", err)
	}
	if b.DistanceMin, err = optFloat(in.DistanceMin); err != nil {
		return b, fmt.Errorf("distance min: %w", err)
	}
	if b.DistanceMax, err = optFloat(in.DistanceMax); err != nil {
		return b, fmt.Errorf("distance max: %w", err)
	}
	if b.PaceMin, err = optPace(in.PaceMin); err != nil {
		return b, fmt.Errorf("pace min: %w", err)
	}
	if b.PaceMax, err = optPace(in.PaceMax); err != nil {
		return b, fmt.Errorf("pace max: %w", err)
	}
	if b.SpeedMin, err = optFloat(in.SpeedMin); err != nil {
		return b, fmt.Errorf("speed min: %w", err)
	}
	if b.SpeedMax, err = optFloat(in.SpeedMax); err != nil {
		return b, fmt.Errorf("speed max: %w", err)
	}

	if b.DateFrom != nil && b.DateTo != nil && b.DateTo.Before(*b.DateFrom) {
		return b, fmt.Errorf("%w: date range %s..%s is reversed", models.ErrInvalidInput, b.DateFrom, b.DateTo)
	}
	return b, nil
}

func optDate(s string) (*models.Date, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	d, err := models.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func optDuration(s string) (*time.Duration, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	d, err := models.ParseDuration(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func optFloat(s string) (*float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil, fmt.Errorf("%w: number %q", models.ErrParse, s)
	}
	return &v, nil
}

func optPace(s string) (*models.Pace, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	p, err := models.ParsePace(s)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Query returns the runs inside bounds, oldest first.
func (s *Service) Query(in BoundsInput) ([]*models.Run, error) {
	bounds, err := ParseBounds(in)
	if err != nil {
		return nil, err
	}
	if bounds.IsZero() {
		return s.repo.ListRuns(models.Ascending)
	}
	return s.repo.QueryRuns(bounds)
}

// Recent returns up to limit runs, newest first. A limit of 0 or less returns all runs.
func (s *Service) Recent(limit int) ([]*models.Run, error) {
	runs, err := s.repo.ListRuns(models.Descending)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	if limit > 0 && len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}
