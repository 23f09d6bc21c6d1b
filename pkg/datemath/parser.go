package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"calendar-assistant/pkg/timeofday"
)

// Parser resolves dates and times from unstructured free text.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Kolkata"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// timeRe finds a clock expression anywhere in the text. The meridiem is
// required here: without it a bare number is a day-of-month candidate,
// not a time.
var timeRe = regexp.MustCompile(`(\d{1,2}):?(\d{2})?\s*(am|pm)`)

// dayNumberRe finds a bare 1-2 digit number with an optional ordinal suffix.
var dayNumberRe = regexp.MustCompile(`\b(\d{1,2})(st|nd|rd|th)?\b`)

// orderedWeekdays is scanned in this order; the first name present in the
// text wins.
var orderedWeekdays = []struct {
	name string
	day  time.Weekday
}{
	{"monday", time.Monday},
	{"tuesday", time.Tuesday},
	{"wednesday", time.Wednesday},
	{"thursday", time.Thursday},
	{"friday", time.Friday},
	{"saturday", time.Saturday},
	{"sunday", time.Sunday},
}

// Resolve extracts a calendar date and an optional clock time from free text.
//
// Date cues are tried in a fixed precedence: "today", "tomorrow", a weekday
// name, then a bare day-of-month number; with no cue at all the reference
// date is used. Date resolution never fails. The time component is resolved
// independently and is nil when the text carries no clock expression.
func (p *Parser) Resolve(text string, base time.Time) Resolution {
	lower := strings.ToLower(strings.TrimSpace(text))
	base = base.In(p.location)

	return Resolution{
		Date: p.resolveDate(lower, base),
		Time: extractTime(lower),
	}
}

func extractTime(lower string) *timeofday.Time {
	m := timeRe.FindStringSubmatch(lower)
	if m == nil {
		return nil
	}

	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}

	if m[3] == "pm" && hour != 12 {
		hour += 12
	} else if m[3] == "am" && hour == 12 {
		hour = 0
	}
	if hour > 23 || minute > 59 {
		return nil
	}

	return &timeofday.Time{Hour: hour, Minute: minute}
}

func (p *Parser) resolveDate(lower string, base time.Time) time.Time {
	today := p.startOfDay(base)

	if strings.Contains(lower, "today") {
		return today
	}

	if strings.Contains(lower, "tomorrow") {
		return today.AddDate(0, 0, 1)
	}

	for _, wd := range orderedWeekdays {
		if !strings.Contains(lower, wd.name) {
			continue
		}
		return p.nextWeekday(today, wd.day, strings.Contains(lower, "next"))
	}

	if d, ok := p.resolveDayOfMonth(lower, today); ok {
		return d
	}

	// No recognizable date cue at all.
	return today
}

// nextWeekday returns the next occurrence of target strictly after today.
// "next" skips a further week, but only when the base offset is already
// inside the coming week — "next friday" said on a Monday means one Friday,
// not two.
func (p *Parser) nextWeekday(today time.Time, target time.Weekday, next bool) time.Time {
	daysAhead := int(target - today.Weekday())
	if daysAhead <= 0 {
		daysAhead += 7
	}
	if next && daysAhead < 7 {
		daysAhead += 7
	}
	return today.AddDate(0, 0, daysAhead)
}

// resolveDayOfMonth reads a bare number like "15", "the 15th" as a
// day-of-month: this month if still ahead, otherwise next month. Reports
// false when the text has no usable number or the day exists in neither
// month.
func (p *Parser) resolveDayOfMonth(lower string, today time.Time) (time.Time, bool) {
	m := dayNumberRe.FindStringSubmatch(lower)
	if m == nil {
		return time.Time{}, false
	}

	day, _ := strconv.Atoi(m[1])
	if day < 1 || day > 31 {
		return time.Time{}, false
	}

	cand := time.Date(today.Year(), today.Month(), day, 0, 0, 0, 0, p.location)
	if cand.Day() == day && !cand.Before(today) {
		return cand, true
	}

	nextMonth := time.Date(today.Year(), today.Month()+1, day, 0, 0, 0, 0, p.location)
	if nextMonth.Day() == day {
		return nextMonth, true
	}

	return time.Time{}, false
}

// startOfDay returns midnight at the start of the given day in the parser's
// timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
