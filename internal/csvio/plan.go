// ABOUTME: CSV import of training plans.
// ABOUTME: Header names the weekdays Mon..Sun; each row is one program week.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/harperreed/runlog/internal/models"
	"go.uber.org/multierr"
)

// ReadPlan decodes program weeks from CSV. Header cells are matched to
// weekdays by their first three letters in any case ("monday", "MON").
// Empty cells count as rest days.
func ReadPlan(r io.Reader) ([][7]float64, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &models.MissingFieldsError{Fields: models.PlanDays[:]}
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read header: %w", models.ErrParse, err)
	}

	columns, err := weekdayColumns(header)
	if err != nil {
		return nil, err
	}

	var (
		weeks   [][7]float64
		rowErrs error
	)
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			rowErrs = multierr.Append(rowErrs, fmt.Errorf("line %d: %w: %w", line, models.ErrParse, err))
			continue
		}
		if blank(record) {
			continue
		}

		var week [7]float64
		var lineErr error
		for day, col := range columns {
			if col >= len(record) {
				continue
			}
			cell := strings.TrimSpace(record[col])
			if cell == "" {
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				lineErr = multierr.Append(lineErr, fmt.Errorf("line %d: %w: %s %q", line, models.ErrParse, models.PlanDays[day], cell))
				continue
			}
			week[day] = v
		}
		if lineErr == nil {
			if err := models.ValidatePlanWeek(week); err != nil {
				lineErr = fmt.Errorf("line %d: %w", line, err)
			}
		}
		if lineErr != nil {
			rowErrs = multierr.Append(rowErrs, lineErr)
			continue
		}
		weeks = append(weeks, week)
	}

	if rowErrs != nil {
		return nil, rowErrs
	}
	return weeks, nil
}

func weekdayColumns(header []string) ([7]int, error) {
	var columns [7]int
	found := [7]bool{}
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if len(h) < 3 {
			continue
		}
		for day, name := range models.PlanDays {
			if !found[day] && h[:3] == strings.ToLower(name) {
				columns[day] = i
				found[day] = true
			}
		}
	}

	var missing []string
	for day, ok := range found {
		if !ok {
			missing = append(missing, models.PlanDays[day])
		}
	}
	if len(missing) > 0 {
		return columns, &models.MissingFieldsError{Fields: missing}
	}
	return columns, nil
}
