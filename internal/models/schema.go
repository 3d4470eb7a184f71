// ABOUTME: Field schema for run input: each field carries a semantic kind.
// ABOUTME: CLI flags, MCP arguments and CSV rows are all validated through it.
package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FieldKind is the semantic type of an input field.
type FieldKind int

const (
	KindText FieldKind = iota
	KindDate
	KindDuration
	KindDecimal
	// KindEnum restricts a field to FieldSpec.Options.
	KindEnum
)

func (k FieldKind) String() string {
	switch k {
	case KindDate:
		return "date"
	case KindDuration:
		return "duration"
	case KindDecimal:
		return "decimal"
	case KindEnum:
		return "enum"
	default:
		return "text"
	}
}

// Run field names as they appear in CSV headers and error messages.
const (
	FieldDate     = "Date"
	FieldDuration = "Duration"
	FieldDistance = "Distance"
	FieldPace     = "Pace"
	FieldSpeed    = "Speed"
	FieldLocation = "Location"
)

// FieldSpec describes one input field.
type FieldSpec struct {
	Name     string
	Kind     FieldKind
	Required bool
	// Min and Max bound decimal fields inclusively.
	Min, Max float64
	// Options lists the accepted values of an enum field.
	Options []string
}

// Accepted run distance in kilometres.
const (
	MinDistance = 0.001
	MaxDistance = 1000
)

// RunSchema lists the user-supplied fields of a run in display order.
var RunSchema = []FieldSpec{
	{Name: FieldDate, Kind: KindDate, Required: true},
	{Name: FieldDuration, Kind: KindDuration, Required: true},
	{Name: FieldDistance, Kind: KindDecimal, Required: true, Min: MinDistance, Max: MaxDistance},
	{Name: FieldLocation, Kind: KindText, Required: true},
}

// ExportFields is the full column set written on export, header first.
var ExportFields = []string{FieldDate, FieldDuration, FieldDistance, FieldPace, FieldSpeed, FieldLocation}

// RequiredFields returns the names of the mandatory fields of a schema.
func RequiredFields(schema []FieldSpec) []string {
	var names []string
	for _, f := range schema {
		if f.Required {
			names = append(names, f.Name)
		}
	}
	return names
}

// Validate checks one raw value against the field spec.
func (f FieldSpec) Validate(raw string) error {
	v := strings.TrimSpace(raw)
	if v == "" {
		if f.Required {
			return fmt.Errorf("%w: %s is required", ErrInvalidInput, f.Name)
		}
		return nil
	}

	switch f.Kind {
	case KindDate:
		if _, err := ParseDate(v); err != nil {
			return fmt.Errorf("%s: %w", f.Name, err)
		}
	case KindDuration:
		if _, err := ParseDuration(v); err != nil {
			return fmt.Errorf("%s: %w", f.Name, err)
		}
	case KindDecimal:
		n, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return fmt.Errorf("%w: %s %q is not a number", ErrParse, f.Name, raw)
		}
		if n < f.Min || (f.Max > f.Min && n > f.Max) {
			return fmt.Errorf("%w: %s %v out of range", ErrInvalidInput, f.Name, n)
		}
	case KindEnum:
		for _, o := range f.Options {
			if strings.EqualFold(o, v) {
				return nil
			}
		}
		return fmt.Errorf("%w: %s %q not one of %s", ErrInvalidInput, f.Name, raw, strings.Join(f.Options, ", "))
	}
	return nil
}

// ValidateRunInput checks every field of a run input and returns the first failure.
func ValidateRunInput(in RunInput) error {
	values := in.Values()
	for _, f := range RunSchema {
		if err := f.Validate(values[f.Name]); err != nil {
			return err
		}
	}
	return nil
}
