package model

import "time"

// CalendarEvent is a scheduled event on the remote calendar.
type CalendarEvent struct {
	ID          string
	Title       string
	Description string
	Location    string
	Link        string
	Start       time.Time
	End         time.Time
	AllDay      bool
}

// CalendarAccount describes the connected calendar account.
type CalendarAccount struct {
	Email      string
	CalendarID string
	Timezone   string
}
