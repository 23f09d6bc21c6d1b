// Package dateparse parses a single date token into a concrete calendar date.
package dateparse

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDate is returned when a token matches no accepted date form.
var ErrInvalidDate = errors.New("invalid date")

// Layouts with an explicit year, tried first.
var yearLayouts = []string{"2006-01-02", "02-01-2006", "02/01/2006"}

// Layouts without a year; the year is inferred from the reference date.
var yearlessLayouts = []string{"02-01", "02/01"}

// Parse accepts YYYY-MM-DD, DD-MM-YYYY, DD-MM, DD/MM/YYYY, DD/MM.
// Year-less tokens assume the reference year; if the resulting date is
// strictly before the reference date it rolls forward exactly one year.
// A token that exists in neither year fails (e.g. "29-02" with no nearby
// leap year).
func Parse(token string, ref time.Time) (time.Time, error) {
	s := strings.TrimSpace(token)

	for _, layout := range yearLayouts {
		d, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		return midnight(d.Year(), d.Month(), d.Day()), nil
	}

	for _, layout := range yearlessLayouts {
		d, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		return resolveYearless(d.Day(), d.Month(), ref)
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, token)
}

// resolveYearless picks the reference year, rolling forward one year when the
// candidate has already passed or does not exist (Feb 29 off leap years).
func resolveYearless(day int, month time.Month, ref time.Time) (time.Time, error) {
	refDay := midnight(ref.Year(), ref.Month(), ref.Day())

	cand := midnight(ref.Year(), month, day)
	if dateExists(cand, month, day) && !cand.Before(refDay) {
		return cand, nil
	}

	next := midnight(ref.Year()+1, month, day)
	if dateExists(next, month, day) {
		return next, nil
	}

	return time.Time{}, fmt.Errorf("%w: %02d-%02d has no occurrence in %d or %d",
		ErrInvalidDate, day, month, ref.Year(), ref.Year()+1)
}

// dateExists guards against time.Date normalization (Feb 29 → Mar 1).
func dateExists(d time.Time, month time.Month, day int) bool {
	return d.Month() == month && d.Day() == day
}

func midnight(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
