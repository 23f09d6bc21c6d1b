// Package gcal implements the calendar repository on Google Calendar.
package gcal

import (
	"calendar-assistant/internal/event/repository"
	"calendar-assistant/pkg/gcalendar"
	pkgLog "calendar-assistant/pkg/log"
)

type implRepository struct {
	l          pkgLog.Logger
	client     *gcalendar.Client
	calendarID string
	timezone   string
}

// New creates a Google Calendar backed repository.
func New(l pkgLog.Logger, client *gcalendar.Client, calendarID, timezone string) repository.CalendarRepository {
	return &implRepository{
		l:          l,
		client:     client,
		calendarID: calendarID,
		timezone:   timezone,
	}
}
