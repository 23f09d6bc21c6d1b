// Package ics renders calendar-event records as iCalendar payloads.
package ics

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"

	"calendar-assistant/pkg/timeofday"
)

// Builder renders .ics payloads with a fixed product ID and default duration.
type Builder struct {
	prodID          string
	defaultDuration time.Duration
}

// NewBuilder creates an ICS builder. defaultDuration is applied when a
// request has no end time, or an end time not after the start.
func NewBuilder(prodID string, defaultDuration time.Duration) *Builder {
	return &Builder{
		prodID:          prodID,
		defaultDuration: defaultDuration,
	}
}

// Request describes a single event to serialize.
type Request struct {
	Title           string
	Date            time.Time // calendar day; clock fields ignored
	Start           timeofday.Time
	End             *timeofday.Time
	Timezone        string // IANA zone name
	Location        string
	Description     string
	ReminderMinutes int // 0 means no alarm
}

// Build serializes the request into a single-event iCalendar payload.
// Output is deterministic for a fixed now, except the UID which carries a
// random suffix so two payloads built in the same second stay distinct.
func (b *Builder) Build(req Request, now time.Time) ([]byte, error) {
	loc, err := time.LoadLocation(req.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", req.Timezone, err)
	}

	dtstart := req.Start.At(req.Date, loc)
	dtend := dtstart.Add(b.defaultDuration)
	if req.End != nil && req.End.After(req.Start) {
		dtend = req.End.At(req.Date, loc)
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, b.prodID)
	cal.Props.SetText(ical.PropCalendarScale, "GREGORIAN")
	cal.Props.SetText(ical.PropMethod, "PUBLISH")

	event := ical.NewComponent(ical.CompEvent)
	event.Props.SetText(ical.PropUID, fmt.Sprintf("%d-%s@calendar-assistant", now.UTC().Unix(), uuid.NewString()))
	event.Props.SetDateTime(ical.PropDateTimeStamp, now.UTC())
	event.Props.SetText(ical.PropSummary, req.Title)
	event.Props.SetDateTime(ical.PropDateTimeStart, dtstart)
	event.Props.SetDateTime(ical.PropDateTimeEnd, dtend)

	if req.Location != "" {
		event.Props.SetText(ical.PropLocation, req.Location)
	}
	if req.Description != "" {
		event.Props.SetText(ical.PropDescription, req.Description)
	}

	if req.ReminderMinutes > 0 {
		event.Children = append(event.Children, alarm(req.Title, req.ReminderMinutes))
	}

	cal.Children = append(cal.Children, event)

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("failed to encode calendar: %w", err)
	}
	return buf.Bytes(), nil
}

// alarm builds a DISPLAY alarm triggering the given number of minutes before
// the event start.
func alarm(title string, minutes int) *ical.Component {
	a := ical.NewComponent(ical.CompAlarm)
	a.Props.SetText(ical.PropAction, "DISPLAY")
	a.Props.SetText(ical.PropDescription, "Reminder: "+title)

	trigger := ical.NewProp(ical.PropTrigger)
	trigger.Value = fmt.Sprintf("-PT%dM", minutes)
	a.Props.Set(trigger)

	return a
}

// Filename derives a shareable .ics file name from an event title.
func Filename(title string) string {
	return strings.ReplaceAll(strings.TrimSpace(title), " ", "_") + ".ics"
}
