// ABOUTME: Parsing and formatting of run durations.
// ABOUTME: Accepts HH:MM:SS and spelled-out 1h30m00s forms, normalises to HH:MM:SS.
package models

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// MaxDurationHours is the largest hour count a duration may carry.
const MaxDurationHours = 9999

var (
	colonDuration   = regexp.MustCompile(`^(\d+):(\d{1,2}):(\d{1,2})$`)
	spelledDuration = regexp.MustCompile(`^(?:(\d+)h)?(?:(\d+)m)?(?:(\d+)s)?$`)
)

// ParseDuration parses a duration typed as "01:30:00" or "1h30m00s".
// Minutes and seconds must be below 60 in either form.
func ParseDuration(s string) (time.Duration, error) {
	raw := strings.ToLower(strings.TrimSpace(s))
	if raw == "" {
		return 0, fmt.Errorf("%w: empty duration", ErrParse)
	}

	var parts []string
	if m := colonDuration.FindStringSubmatch(raw); m != nil {
		parts = m[1:]
	} else if m := spelledDuration.FindStringSubmatch(strings.ReplaceAll(raw, " ", "")); m != nil {
		parts = m[1:]
	} else {
		return 0, fmt.Errorf("%w: duration %q (use HH:MM:SS or 1h30m00s)", ErrParse, s)
	}

	var hms [3]int
	for i, p := range parts {
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, fmt.Errorf("%w: duration %q", ErrParse, s)
		}
		hms[i] = n
	}
	if hms[0] > MaxDurationHours {
		return 0, fmt.Errorf("%w: duration %q exceeds %d hours", ErrParse, s, MaxDurationHours)
	}
	if hms[1] >= 60 || hms[2] >= 60 {
		return 0, fmt.Errorf("%w: duration %q has minutes or seconds >= 60", ErrParse, s)
	}

	return time.Duration(hms[0])*time.Hour +
		time.Duration(hms[1])*time.Minute +
		time.Duration(hms[2])*time.Second, nil
}

// NormalizeDuration rewrites any accepted duration form as HH:MM:SS.
func NormalizeDuration(s string) (string, error) {
	d, err := ParseDuration(s)
	if err != nil {
		return "", err
	}
	return FormatDuration(d), nil
}

// FormatDuration renders d as zero-padded HH:MM:SS, truncating sub-second parts.
func FormatDuration(d time.Duration) string {
	total := int64(d / time.Second)
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
