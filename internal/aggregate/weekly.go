// ABOUTME: Weekly aggregation of runs over a trailing lookback window.
// ABOUTME: Produces one row per calendar week, gap-free, anchored on a fixed weekday.
package aggregate

import (
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/runlog/internal/models"
)

// DefaultAnchor is the weekday every week starts on unless configured otherwise.
const DefaultAnchor = time.Sunday

// Week is the aggregate of all runs in one calendar week.
type Week struct {
	Start         models.Date `json:"week_start"`
	TotalDistance float64     `json:"total_distance_km"`
	SessionCount  int         `json:"session_count"`
	MeanSpeed     float64     `json:"mean_speed_kmh"`
}

// ParseWeekday accepts full or three-letter English weekday names.
func ParseWeekday(s string) (time.Weekday, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if v == name || v == name[:3] {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: weekday %q", models.ErrParse, s)
}

// StartOfWeek rolls d back to the most recent anchor weekday (d itself if it matches).
func StartOfWeek(d models.Date, anchor time.Weekday) models.Date {
	offset := (int(d.Weekday()) - int(anchor) + 7) % 7
	return d.AddDays(-offset)
}

// MonthsBefore subtracts calendar months from d, clamping the day to the
// length of the target month (31 March minus one month is 28 or 29 February).
func MonthsBefore(d models.Date, months int) models.Date {
	y, m := d.Year(), d.Month()-time.Month(months)
	first := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	lastDay := first.AddDate(0, 1, -1).Day()
	day := d.Day()
	if day > lastDay {
		day = lastDay
	}
	return models.NewDate(first.Year(), first.Month(), day)
}

// Window returns the first week boundary and the exclusive end of the
// aggregation window for a lookback measured back from today.
func Window(today models.Date, lookbackMonths int, anchor time.Weekday) (from, to models.Date, err error) {
	if lookbackMonths < 0 {
		return models.Date{}, models.Date{}, fmt.Errorf("%w: lookback months must not be negative, got %d", models.ErrInvalidInput, lookbackMonths)
	}
	from = StartOfWeek(MonthsBefore(today, lookbackMonths), anchor)
	to = StartOfWeek(today, anchor).AddDays(7)
	return from, to, nil
}

// ByWeek groups runs into calendar weeks over the lookback window ending in
// the week containing today. Every week of the window is present, in
// ascending order; weeks without runs report zeros. Runs outside the window
// are ignored.
func ByWeek(runs []*models.Run, today models.Date, lookbackMonths int, anchor time.Weekday) ([]Week, error) {
	from, to, err := Window(today, lookbackMonths, anchor)
	if err != nil {
		return nil, err
	}

	var weeks []Week
	for start := from; start.Before(to); start = start.AddDays(7) {
		weeks = append(weeks, Week{Start: start})
	}

	speedSums := make([]float64, len(weeks))
	for _, r := range runs {
		if r == nil || r.Date.Before(from) || !r.Date.Before(to) {
			continue
		}
		i := r.Date.DaysSince(from) / 7
		weeks[i].SessionCount++
		weeks[i].TotalDistance += r.Distance
		speedSums[i] += r.Speed
	}

	for i := range weeks {
		if weeks[i].SessionCount > 0 {
			weeks[i].MeanSpeed = speedSums[i] / float64(weeks[i].SessionCount)
		}
	}

	return weeks, nil
}

// Series is the weekly aggregate laid out as four aligned sequences for a chart.
type Series struct {
	WeekStarts     []models.Date `json:"week_starts"`
	TotalDistances []float64     `json:"total_distances_km"`
	SessionCounts  []int         `json:"session_counts"`
	MeanSpeeds     []float64     `json:"mean_speeds_kmh"`
}

// ToSeries converts weekly rows into aligned sequences of equal length.
func ToSeries(weeks []Week) Series {
	s := Series{
		WeekStarts:     make([]models.Date, 0, len(weeks)),
		TotalDistances: make([]float64, 0, len(weeks)),
		SessionCounts:  make([]int, 0, len(weeks)),
		MeanSpeeds:     make([]float64, 0, len(weeks)),
	}
	for _, w := range weeks {
		s.WeekStarts = append(s.WeekStarts, w.Start)
		s.TotalDistances = append(s.TotalDistances, w.TotalDistance)
		s.SessionCounts = append(s.SessionCounts, w.SessionCount)
		s.MeanSpeeds = append(s.MeanSpeeds, w.MeanSpeed)
	}
	return s
}

// Totals sums distance and sessions across all weeks.
func Totals(weeks []Week) (distance float64, sessions int) {
	for _, w := range weeks {
		distance += w.TotalDistance
		sessions += w.SessionCount
	}
	return distance, sessions
}
