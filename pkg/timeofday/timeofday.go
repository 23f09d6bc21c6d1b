// Package timeofday parses a single clock token in 12-hour or 24-hour form.
package timeofday

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTime is returned when a token matches no accepted clock form.
var ErrInvalidTime = errors.New("invalid time")

// Time is an hour/minute pair in 24-hour representation.
type Time struct {
	Hour   int
	Minute int
}

// String renders the 24-hour HH:MM form.
func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Format12 renders the displayed 12-hour form, e.g. "2:05 PM".
func (t Time) Format12() string {
	h := t.Hour % 12
	if h == 0 {
		h = 12
	}
	meridiem := "AM"
	if t.Hour >= 12 {
		meridiem = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", h, t.Minute, meridiem)
}

// After reports whether t is strictly later in the day than other.
func (t Time) After(other Time) bool {
	if t.Hour != other.Hour {
		return t.Hour > other.Hour
	}
	return t.Minute > other.Minute
}

// At anchors the clock time onto the given calendar day in loc.
func (t Time) At(day time.Time, loc *time.Location) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour, t.Minute, 0, 0, loc)
}

// meridiemRe covers both "2:05 PM" and compact "8pm": the minutes and the
// space before the meridiem are optional.
var meridiemRe = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(am|pm)$`)

// Parse accepts 12h and 24h clock tokens:
//   - 12h: "2 PM", "2:05 PM", "12 AM", "12:30 am", "8pm", "08 pm"
//   - 24h: "14:05", "1405", "14"
//
// The 12-hour forms are tried first so that a token like "14" is only ever
// read as a 24-hour hour, never a misranged 12-hour one.
func Parse(token string) (Time, error) {
	s := strings.ToLower(strings.TrimSpace(token))

	if m := meridiemRe.FindStringSubmatch(s); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		if hour < 1 || hour > 12 || minute > 59 {
			return Time{}, fmt.Errorf("%w: %q", ErrInvalidTime, token)
		}
		if m[3] == "am" {
			if hour == 12 {
				hour = 0
			}
		} else {
			if hour != 12 {
				hour += 12
			}
		}
		return Time{Hour: hour, Minute: minute}, nil
	}

	// 24h fallbacks, in order: HH:MM, HHMM, bare HH.
	for _, layout := range []string{"15:04", "1504", "15"} {
		parsed, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		return Time{Hour: parsed.Hour(), Minute: parsed.Minute()}, nil
	}

	return Time{}, fmt.Errorf("%w: %q", ErrInvalidTime, token)
}
