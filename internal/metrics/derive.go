// ABOUTME: Derived run metrics: pace (M:SS per km) and speed (km/h).
// ABOUTME: Builds fully derived Run values from raw input.
package metrics

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/runlog/internal/models"
)

// maxPaceSeconds bounds the pace so its minutes always fit in an int.
const maxPaceSeconds = 1e9

// PaceSecondsPerKm returns the unrounded pace in seconds per kilometre.
func PaceSecondsPerKm(duration time.Duration, distance float64) (float64, error) {
	if math.IsNaN(distance) || math.IsInf(distance, 0) || distance <= 0 {
		return 0, fmt.Errorf("%w: distance must be positive, got %v", models.ErrInvalidInput, distance)
	}
	if duration < 0 {
		return 0, fmt.Errorf("%w: duration must not be negative, got %s", models.ErrInvalidInput, duration)
	}
	p := float64(duration/time.Second) / distance
	if p > maxPaceSeconds {
		return 0, fmt.Errorf("%w: pace of %.0f s/km is out of range", models.ErrInvalidInput, p)
	}
	return p, nil
}

// DeriveMetrics computes pace and speed from duration and distance.
//
// Seconds of the pace are rounded to the nearest whole second; a rounded
// value of 60 carries into the minutes so a pace never reads M:60.
// Speed is 3600 divided by the unrounded pace, rounded to one decimal.
// A zero duration yields pace 0:00 and speed 0.
func DeriveMetrics(duration time.Duration, distance float64) (models.Pace, float64, error) {
	p, err := PaceSecondsPerKm(duration, distance)
	if err != nil {
		return models.Pace{}, 0, err
	}

	minutes := int(math.Floor(p / 60))
	seconds := int(math.Round(p - float64(minutes)*60))
	if seconds == 60 {
		minutes++
		seconds = 0
	}

	var speed float64
	if p > 0 {
		speed = RoundTo(3600/p, 1)
	}

	return models.Pace{Minutes: minutes, Seconds: seconds}, speed, nil
}

// RoundTo rounds v half away from zero to the given number of decimals.
func RoundTo(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}

// NewRun builds a fully derived run. The ID is freshly generated; the store
// keeps the existing ID when the date is already present.
func NewRun(date models.Date, duration time.Duration, distance float64, location string) (*models.Run, error) {
	pace, speed, err := DeriveMetrics(duration, distance)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &models.Run{
		ID:        uuid.New(),
		Date:      date,
		Duration:  duration.Truncate(time.Second),
		Distance:  distance,
		Location:  strings.TrimSpace(location),
		Pace:      pace,
		Speed:     speed,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// FromInput validates raw input against the run schema and derives a Run.
func FromInput(in models.RunInput) (*models.Run, error) {
	if err := models.ValidateRunInput(in); err != nil {
		return nil, err
	}

	date, err := models.ParseDate(in.Date)
	if err != nil {
		return nil, err
	}
	duration, err := models.ParseDuration(in.Duration)
	if err != nil {
		return nil, err
	}
	distance, err := strconv.ParseFloat(strings.TrimSpace(in.Distance), 64)
	if err != nil {
		return nil, fmt.Errorf("%w: distance %q", models.ErrParse, in.Distance)
	}

	return NewRun(date, duration, distance, in.Location)
}

// Rederive recomputes pace and speed of r in place from its duration and distance.
func Rederive(r *models.Run) error {
	pace, speed, err := DeriveMetrics(r.Duration, r.Distance)
	if err != nil {
		return err
	}
	r.Pace = pace
	r.Speed = speed
	return nil
}
