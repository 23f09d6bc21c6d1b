package gcalendar

import "time"

// ReminderOverride is a single notification override on an event.
type ReminderOverride struct {
	Method  string // "popup" or "email"
	Minutes int64  // minutes before start
}

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Location    string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "Asia/Kolkata"
	AllDay      bool   // when set, only the date part of Start/End is used
	Reminders   []ReminderOverride
}

// UpdateEventRequest is the input for updating an existing event.
// Summary and the schedule fields replace the stored values.
type UpdateEventRequest struct {
	CalendarID string
	EventID    string
	Summary    string
	StartTime  time.Time
	EndTime    time.Time
	Timezone   string
	AllDay     bool
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	Location    string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	AllDay      bool
}

// CalendarInfo is metadata about a calendar list entry. For the primary
// calendar, Summary is the account email.
type CalendarInfo struct {
	ID       string
	Summary  string
	Timezone string
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
