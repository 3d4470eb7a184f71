// ABOUTME: Error kinds shared by the store, the metrics engine and the CLI.
// ABOUTME: Callers match them with errors.Is; concrete errors wrap one of these.
package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput covers non-positive distance, negative duration and malformed fields.
	ErrInvalidInput = errors.New("invalid input")

	// ErrParse is returned for unparseable time, date or pace strings.
	// It wraps ErrInvalidInput.
	ErrParse = fmt.Errorf("%w: parse error", ErrInvalidInput)

	// ErrStorage wraps constraint violations and underlying engine failures.
	ErrStorage = errors.New("storage error")

	// ErrNotFound is returned by lookups that require a hit.
	ErrNotFound = errors.New("not found")
)

// MissingFieldsError reports every mandatory field absent from an input batch.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// Unwrap lets errors.Is(err, ErrInvalidInput) match.
func (e *MissingFieldsError) Unwrap() error {
	return ErrInvalidInput
}
