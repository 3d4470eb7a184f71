// ABOUTME: Tests for CSV import and export of runs and plans.
// ABOUTME: Covers header matching, batch rejection and the export layout.
package csvio

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/harperreed/runlog/internal/metrics"
	"github.com/harperreed/runlog/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestReadRuns(t *testing.T) {
	in := "\ufefflocation,DATE,Distance,Duration,Pace,Notes\n" +
		"Park,2024-03-01,15,01:30:00,9:99,ignored\n" +
		",,,\n" +
		"Track,2024-03-03,3.33,20m,,\n"

	runs, err := ReadRuns(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, runs, 2)

	assert.Equal(t, "2024-03-01", runs[0].Date.String())
	assert.Equal(t, "Park", runs[0].Location)
	assert.Equal(t, "6:00", runs[0].Pace.String(), "pace column is derived, not read")
	assert.Equal(t, 10.0, runs[0].Speed)

	assert.Equal(t, "00:20:00", runs[1].DurationString())
	assert.Equal(t, "6:00", runs[1].Pace.String())
}

func TestReadRunsLastRowWinsPerDate(t *testing.T) {
	in := "Date,Duration,Distance,Location\n" +
		"2024-03-01,00:30:00,5,Track\n" +
		"2024-03-02,00:50:00,10,River\n" +
		"2024-03-01,01:30:00,15,Park\n"

	runs, err := ReadRuns(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, runs, 2)

	assert.Equal(t, "2024-03-01", runs[0].Date.String())
	assert.Equal(t, "Park", runs[0].Location)
	assert.Equal(t, 15.0, runs[0].Distance)
	assert.Equal(t, "2024-03-02", runs[1].Date.String())
}

func TestReadRunsMissingHeaders(t *testing.T) {
	_, err := ReadRuns(strings.NewReader("Date,Distance,Speed\n2024-03-01,5,10\n"))

	var missing *models.MissingFieldsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{models.FieldDuration, models.FieldLocation}, missing.Fields)
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = ReadRuns(strings.NewReader(""))
	require.ErrorAs(t, err, &missing)
	assert.Len(t, missing.Fields, 4)
}

func TestReadRunsRejectsBatch(t *testing.T) {
	in := "Date,Duration,Distance,Location\n" +
		"2024-03-01,01:30:00,15,Park\n" +
		"2024-03-02,1:75:00,10,Park\n" +
		"2024-03-03,00:30:00,0,Park\n" +
		"not-a-date,00:30:00,5,Park\n"

	runs, err := ReadRuns(strings.NewReader(in))
	require.Error(t, err)
	assert.Nil(t, runs)

	errs := multierr.Errors(err)
	require.Len(t, errs, 3)
	assert.Contains(t, errs[0].Error(), "line 3")
	assert.ErrorIs(t, errs[0], models.ErrParse)
	assert.Contains(t, errs[1].Error(), "line 4")
	assert.ErrorIs(t, errs[1], models.ErrInvalidInput)
	assert.Contains(t, errs[2].Error(), "line 5")
	assert.True(t, errors.Is(err, models.ErrInvalidInput))
}

func TestReadRunsHeaderOnly(t *testing.T) {
	runs, err := ReadRuns(strings.NewReader("Date,Duration,Distance,Location\n"))
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestWriteRuns(t *testing.T) {
	a, err := metrics.NewRun(models.NewDate(2024, time.March, 1), 90*time.Minute, 15, "Park, north loop")
	require.NoError(t, err)
	b, err := metrics.NewRun(models.NewDate(2024, time.March, 3), 20*time.Minute, 3.33, "Track")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteRuns(&buf, []*models.Run{a, b}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Date,Duration,Distance,Pace,Speed,Location", lines[0])
	assert.Equal(t, `2024-03-01,01:30:00,15,6:00,10.0,"Park, north loop"`, lines[1])
	assert.Equal(t, "2024-03-03,00:20:00,3.33,6:00,10.0,Track", lines[2])

	// Exported files import back unchanged.
	runs, err := ReadRuns(&buf)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, a.Location, runs[0].Location)
	assert.Equal(t, b.Distance, runs[1].Distance)
}

func TestWriteRunsEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRuns(&buf, nil))
	assert.Equal(t, "Date,Duration,Distance,Pace,Speed,Location\n", buf.String())
}

func TestReadPlan(t *testing.T) {
	in := "Week,Monday,TUE,wed,Thursday,fri,Sat,Sun\n" +
		"1,,5,,8,,,16\n" +
		"2,0,6,0,8,0,5,18.5\n" +
		"\n"

	weeks, err := ReadPlan(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, weeks, 2)
	assert.Equal(t, [7]float64{0, 5, 0, 8, 0, 0, 16}, weeks[0])
	assert.Equal(t, 18.5, weeks[1][6])
}

func TestReadPlanErrors(t *testing.T) {
	_, err := ReadPlan(strings.NewReader("Mon,Tue,Wed\n1,2,3\n"))
	var missing *models.MissingFieldsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"Thu", "Fri", "Sat", "Sun"}, missing.Fields)

	_, err = ReadPlan(strings.NewReader("Mon,Tue,Wed,Thu,Fri,Sat,Sun\n1,x,0,0,0,0,0\n0,0,0,0,0,0,-4\n"))
	require.Error(t, err)
	errs := multierr.Errors(err)
	require.Len(t, errs, 2)
	assert.ErrorIs(t, errs[0], models.ErrParse)
	assert.Contains(t, errs[0].Error(), "Tue")
	assert.Contains(t, errs[1].Error(), "line 3")
	assert.ErrorIs(t, errs[1], models.ErrInvalidInput)
}
