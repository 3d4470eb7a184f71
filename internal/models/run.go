// ABOUTME: Run (one logged workout) and the raw input it is built from.
// ABOUTME: Pace and speed are derived fields; see internal/metrics.
package models

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Pace is the time needed to cover one kilometre.
type Pace struct {
	Minutes int
	Seconds int
}

var paceRe = regexp.MustCompile(`^(\d+):(\d{2})$`)

// ParsePace parses an M:SS pace string.
func ParsePace(s string) (Pace, error) {
	m := paceRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Pace{}, fmt.Errorf("%w: pace %q (use M:SS)", ErrParse, s)
	}
	minutes, _ := strconv.Atoi(m[1])
	seconds, _ := strconv.Atoi(m[2])
	if seconds >= 60 {
		return Pace{}, fmt.Errorf("%w: pace %q has seconds >= 60", ErrParse, s)
	}
	return Pace{Minutes: minutes, Seconds: seconds}, nil
}

// PaceFromSeconds splits a whole number of seconds per km into a Pace.
func PaceFromSeconds(total int) Pace {
	return Pace{Minutes: total / 60, Seconds: total % 60}
}

// TotalSeconds returns the pace as seconds per km.
func (p Pace) TotalSeconds() int {
	return p.Minutes*60 + p.Seconds
}

// String renders the pace as M:SS.
func (p Pace) String() string {
	return fmt.Sprintf("%d:%02d", p.Minutes, p.Seconds)
}

// MarshalText encodes the pace as M:SS for JSON and YAML.
func (p Pace) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText decodes an M:SS pace.
func (p *Pace) UnmarshalText(text []byte) error {
	parsed, err := ParsePace(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Run is one logged running session. There is at most one run per date.
type Run struct {
	ID        uuid.UUID
	Date      Date
	Duration  time.Duration
	Distance  float64
	Location  string
	Pace      Pace
	Speed     float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DurationString returns the duration as HH:MM:SS.
func (r *Run) DurationString() string {
	return FormatDuration(r.Duration)
}

// runWire is the serialised form of a Run shared by JSON and YAML.
type runWire struct {
	ID        string    `json:"id" yaml:"id"`
	Date      Date      `json:"date" yaml:"date"`
	Duration  string    `json:"duration" yaml:"duration"`
	Distance  float64   `json:"distance_km" yaml:"distance_km"`
	Location  string    `json:"location" yaml:"location"`
	Pace      Pace      `json:"pace" yaml:"pace"`
	Speed     float64   `json:"speed_kmh" yaml:"speed_kmh"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

func (r *Run) toWire() runWire {
	return runWire{
		ID:        r.ID.String(),
		Date:      r.Date,
		Duration:  r.DurationString(),
		Distance:  r.Distance,
		Location:  r.Location,
		Pace:      r.Pace,
		Speed:     r.Speed,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func (r *Run) fromWire(w runWire) error {
	// A missing ID is assigned by the store on write.
	var id uuid.UUID
	if w.ID != "" {
		parsed, err := uuid.Parse(w.ID)
		if err != nil {
			return fmt.Errorf("%w: run id %q", ErrParse, w.ID)
		}
		id = parsed
	}
	d, err := ParseDuration(w.Duration)
	if err != nil {
		return err
	}
	*r = Run{
		ID:        id,
		Date:      w.Date,
		Duration:  d,
		Distance:  w.Distance,
		Location:  w.Location,
		Pace:      w.Pace,
		Speed:     w.Speed,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
	return nil
}

// MarshalJSON encodes the run with its duration as HH:MM:SS.
func (r Run) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.toWire())
}

// UnmarshalJSON decodes a run written by MarshalJSON.
func (r *Run) UnmarshalJSON(data []byte) error {
	var w runWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	return r.fromWire(w)
}

// MarshalYAML encodes the run with its duration as HH:MM:SS.
func (r Run) MarshalYAML() (interface{}, error) {
	return r.toWire(), nil
}

// UnmarshalYAML decodes a run written by MarshalYAML.
func (r *Run) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var w runWire
	if err := unmarshal(&w); err != nil {
		return err
	}
	return r.fromWire(w)
}

// RunInput is a run as typed by a user, read from a CSV row or received over MCP.
type RunInput struct {
	Date     string `json:"date"`
	Duration string `json:"duration"`
	Distance string `json:"distance"`
	Location string `json:"location"`
}

// Values returns the input keyed by schema field name.
func (in RunInput) Values() map[string]string {
	return map[string]string{
		FieldDate:     in.Date,
		FieldDuration: in.Duration,
		FieldDistance: in.Distance,
		FieldLocation: in.Location,
	}
}

// WriteAction tells whether an upsert created a new row or replaced one.
type WriteAction int

const (
	ActionInserted WriteAction = iota + 1
	ActionUpdated
)

// MarshalText encodes the action by name.
func (a WriteAction) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a WriteAction) String() string {
	switch a {
	case ActionInserted:
		return "inserted"
	case ActionUpdated:
		return "updated"
	default:
		return "unknown"
	}
}

// SortOrder selects date ordering for listings.
type SortOrder int

const (
	Ascending SortOrder = iota
	Descending
)

// RunBounds holds optional inclusive bounds per column.
// A nil bound leaves that side of the column unconstrained.
type RunBounds struct {
	DateFrom, DateTo         *Date
	DurationMin, DurationMax *time.Duration
	DistanceMin, DistanceMax *float64
	PaceMin, PaceMax         *Pace
	SpeedMin, SpeedMax       *float64
}

// IsZero reports whether no bound is set.
func (b RunBounds) IsZero() bool {
	return b == RunBounds{}
}
