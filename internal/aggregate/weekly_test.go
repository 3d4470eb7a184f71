// ABOUTME: Tests for weekly aggregation over the lookback window.
// ABOUTME: Covers week anchoring, month clamping, zero-filled weeks and series alignment.
package aggregate

import (
	"errors"
	"testing"
	"time"

	"github.com/harperreed/runlog/internal/models"
)

func date(y int, m time.Month, d int) models.Date {
	return models.NewDate(y, m, d)
}

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		in   string
		want time.Weekday
	}{
		{"sunday", time.Sunday},
		{"Mon", time.Monday},
		{" SATURDAY ", time.Saturday},
		{"wed", time.Wednesday},
	}
	for _, tt := range tests {
		got, err := ParseWeekday(tt.in)
		if err != nil {
			t.Errorf("ParseWeekday(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseWeekday(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	if _, err := ParseWeekday("funday"); !errors.Is(err, models.ErrParse) {
		t.Errorf("ParseWeekday(funday) error = %v, want ErrParse", err)
	}
}

func TestStartOfWeek(t *testing.T) {
	wed := date(2024, time.March, 13)

	if got := StartOfWeek(wed, time.Sunday); got.String() != "2024-03-10" {
		t.Errorf("Sunday anchor = %s, want 2024-03-10", got)
	}
	if got := StartOfWeek(wed, time.Monday); got.String() != "2024-03-11" {
		t.Errorf("Monday anchor = %s, want 2024-03-11", got)
	}
	if got := StartOfWeek(wed, time.Wednesday); got.String() != "2024-03-13" {
		t.Errorf("same-day anchor = %s, want 2024-03-13", got)
	}
	if got := StartOfWeek(wed, time.Thursday); got.String() != "2024-03-07" {
		t.Errorf("Thursday anchor = %s, want 2024-03-07", got)
	}
}

func TestMonthsBefore(t *testing.T) {
	tests := []struct {
		from   models.Date
		months int
		want   string
	}{
		{date(2024, time.March, 31), 1, "2024-02-29"},
		{date(2023, time.March, 31), 1, "2023-02-28"},
		{date(2024, time.May, 31), 1, "2024-04-30"},
		{date(2024, time.January, 15), 1, "2023-12-15"},
		{date(2024, time.March, 15), 3, "2023-12-15"},
		{date(2024, time.March, 15), 0, "2024-03-15"},
		{date(2024, time.August, 31), 18, "2023-02-28"},
	}
	for _, tt := range tests {
		if got := MonthsBefore(tt.from, tt.months); got.String() != tt.want {
			t.Errorf("MonthsBefore(%s, %d) = %s, want %s", tt.from, tt.months, got, tt.want)
		}
	}
}

func TestWindow(t *testing.T) {
	from, to, err := Window(date(2024, time.March, 13), 1, time.Sunday)
	if err != nil {
		t.Fatalf("Window error = %v", err)
	}
	if from.String() != "2024-02-11" || to.String() != "2024-03-17" {
		t.Errorf("Window = [%s, %s), want [2024-02-11, 2024-03-17)", from, to)
	}

	if _, _, err := Window(date(2024, time.March, 13), -1, time.Sunday); !errors.Is(err, models.ErrInvalidInput) {
		t.Errorf("negative lookback error = %v, want ErrInvalidInput", err)
	}
}

func TestByWeekZeroLookbackIsCurrentWeek(t *testing.T) {
	today := date(2024, time.March, 13)
	runs := []*models.Run{
		{Date: date(2024, time.March, 10), Distance: 5, Speed: 10},
		{Date: date(2024, time.March, 16), Distance: 3, Speed: 12},
		{Date: date(2024, time.March, 9), Distance: 100, Speed: 1},
		{Date: date(2024, time.March, 17), Distance: 100, Speed: 1},
	}

	weeks, err := ByWeek(runs, today, 0, time.Sunday)
	if err != nil {
		t.Fatalf("ByWeek error = %v", err)
	}
	if len(weeks) != 1 {
		t.Fatalf("got %d weeks, want 1", len(weeks))
	}
	w := weeks[0]
	if w.Start.String() != "2024-03-10" || w.SessionCount != 2 || w.TotalDistance != 8 || w.MeanSpeed != 11 {
		t.Errorf("week = %+v", w)
	}
}

func TestByWeekFillsEmptyWeeks(t *testing.T) {
	today := date(2024, time.March, 13)

	weeks, err := ByWeek(nil, today, 1, time.Sunday)
	if err != nil {
		t.Fatalf("ByWeek error = %v", err)
	}
	if len(weeks) != 5 {
		t.Fatalf("got %d weeks, want 5", len(weeks))
	}
	for i, w := range weeks {
		if w.SessionCount != 0 || w.TotalDistance != 0 || w.MeanSpeed != 0 {
			t.Errorf("week %d = %+v, want zeros", i, w)
		}
		if i > 0 && w.Start.DaysSince(weeks[i-1].Start) != 7 {
			t.Errorf("week %d starts %s, not 7 days after %s", i, w.Start, weeks[i-1].Start)
		}
		if w.Start.Weekday() != time.Sunday {
			t.Errorf("week %d starts on %s", i, w.Start.Weekday())
		}
	}
}

func TestByWeekMondayAnchor(t *testing.T) {
	today := date(2024, time.March, 10) // Sunday, last day of a Monday week
	runs := []*models.Run{
		{Date: date(2024, time.March, 4), Distance: 4, Speed: 8},
		{Date: date(2024, time.March, 10), Distance: 6, Speed: 10},
		nil,
	}

	weeks, err := ByWeek(runs, today, 0, time.Monday)
	if err != nil {
		t.Fatalf("ByWeek error = %v", err)
	}
	if len(weeks) != 1 || weeks[0].Start.String() != "2024-03-04" {
		t.Fatalf("weeks = %+v", weeks)
	}
	if weeks[0].SessionCount != 2 || weeks[0].MeanSpeed != 9 {
		t.Errorf("week = %+v", weeks[0])
	}
}

func TestSeriesAndTotals(t *testing.T) {
	weeks := []Week{
		{Start: date(2024, time.March, 3), TotalDistance: 10, SessionCount: 2, MeanSpeed: 10},
		{Start: date(2024, time.March, 10)},
		{Start: date(2024, time.March, 17), TotalDistance: 5.5, SessionCount: 1, MeanSpeed: 11},
	}

	s := ToSeries(weeks)
	if len(s.WeekStarts) != 3 || len(s.TotalDistances) != 3 || len(s.SessionCounts) != 3 || len(s.MeanSpeeds) != 3 {
		t.Fatalf("series lengths differ: %+v", s)
	}
	if s.WeekStarts[1].String() != "2024-03-10" || s.SessionCounts[2] != 1 || s.MeanSpeeds[0] != 10 {
		t.Errorf("series = %+v", s)
	}

	distance, sessions := Totals(weeks)
	if distance != 15.5 || sessions != 3 {
		t.Errorf("Totals = %v, %d; want 15.5, 3", distance, sessions)
	}

	empty := ToSeries(nil)
	if empty.WeekStarts == nil || len(empty.WeekStarts) != 0 {
		t.Errorf("empty series should have non-nil empty slices")
	}
}
