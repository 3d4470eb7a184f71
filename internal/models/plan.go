// ABOUTME: Training plan model: a named multi-week mileage program.
// ABOUTME: Each program week holds planned distances for Mon..Sun.
package models

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
)

// PlanDays names the weekday columns of a plan, Monday first.
var PlanDays = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

var planNameRe = regexp.MustCompile(`^[a-z][a-z0-9_]{0,47}$`)

// Plan describes one stored training plan.
type Plan struct {
	Name      string    `json:"name" yaml:"name"`
	Weeks     int       `json:"weeks" yaml:"weeks"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// PlanWeek is one program week of planned distances in km.
type PlanWeek struct {
	Week int        `json:"week" yaml:"week"`
	Days [7]float64 `json:"days" yaml:"days"`
}

// Total returns the planned distance for the whole week.
func (w PlanWeek) Total() float64 {
	var sum float64
	for _, d := range w.Days {
		sum += d
	}
	return sum
}

// NormalizePlanName lowercases a plan name and checks it is a safe identifier.
func NormalizePlanName(name string) (string, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.NewReplacer("-", "_", " ", "_").Replace(n)
	if !planNameRe.MatchString(n) {
		return "", fmt.Errorf("%w: plan name %q (letters, digits and underscores, starting with a letter)", ErrInvalidInput, name)
	}
	return n, nil
}

// ValidatePlanWeek rejects negative or non-finite planned distances.
func ValidatePlanWeek(days [7]float64) error {
	for i, d := range days {
		if d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return fmt.Errorf("%w: %s distance %v", ErrInvalidInput, PlanDays[i], d)
		}
	}
	return nil
}
