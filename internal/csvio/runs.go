// ABOUTME: CSV import and export of runs.
// ABOUTME: Import validates headers up front and rejects the batch on any bad row.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/harperreed/runlog/internal/metrics"
	"github.com/harperreed/runlog/internal/models"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

// ReadRuns decodes runs from CSV. The header must name Date, Duration,
// Distance and Location (any case, any order); other columns such as Pace
// and Speed are ignored because they are derived. Every row is checked and
// all row errors are returned together; no runs are returned if any fail.
// When a date appears on several rows the last row wins.
func ReadRuns(r io.Reader) ([]*models.Run, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &models.MissingFieldsError{Fields: models.RequiredFields(models.RunSchema)}
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read header: %w", models.ErrParse, err)
	}

	index, err := headerIndex(header)
	if err != nil {
		return nil, err
	}

	var (
		runs    []*models.Run
		rowErrs error
		byDate  = make(map[string]int)
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

		run, err := metrics.FromInput(inputFrom(record, index))
		if err != nil {
			rowErrs = multierr.Append(rowErrs, fmt.Errorf("line %d: %w", line, err))
			continue
		}
		if i, ok := byDate[run.Date.String()]; ok {
			log.WithFields(log.Fields{"date": run.Date.String(), "line": line}).Debug("csv row replaces earlier row for date")
			runs[i] = run
			continue
		}
		byDate[run.Date.String()] = len(runs)
		runs = append(runs, run)
	}

	if rowErrs != nil {
		log.WithField("errors", len(multierr.Errors(rowErrs))).Warn("csv import rejected")
		return nil, rowErrs
	}
	return runs, nil
}

// headerIndex maps each required field to its column, reporting every
// missing field at once.
func headerIndex(header []string) (map[string]int, error) {
	seen := make(map[string]int, len(header))
	for i, h := range header {
		seen[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}

	index := make(map[string]int)
	var missing []string
	for _, name := range models.RequiredFields(models.RunSchema) {
		i, ok := seen[strings.ToLower(name)]
		if !ok {
			missing = append(missing, name)
			continue
		}
		index[name] = i
	}
	if len(missing) > 0 {
		return nil, &models.MissingFieldsError{Fields: missing}
	}
	return index, nil
}

func inputFrom(record []string, index map[string]int) models.RunInput {
	get := func(name string) string {
		i := index[name]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}
	return models.RunInput{
		Date:     get(models.FieldDate),
		Duration: get(models.FieldDuration),
		Distance: get(models.FieldDistance),
		Location: get(models.FieldLocation),
	}
}

func blank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// WriteRuns writes runs as CSV with the full export header first.
func WriteRuns(w io.Writer, runs []*models.Run) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(models.ExportFields); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range runs {
		record := []string{
			r.Date.String(),
			r.DurationString(),
			strconv.FormatFloat(r.Distance, 'f', -1, 64),
			r.Pace.String(),
			strconv.FormatFloat(r.Speed, 'f', 1, 64),
			r.Location,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write run %s: %w", r.Date, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
