package repository

import "time"

// CreateEventOptions defines parameters for creating a remote event.
type CreateEventOptions struct {
	Title       string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	AllDay      bool

	// NotifyAtStart attaches popup and email notifications firing at the
	// event start, replacing the calendar's defaults. Used for reminders.
	NotifyAtStart bool
}

// UpdateEventOptions defines parameters for updating a remote event.
type UpdateEventOptions struct {
	EventID string
	Title   string
	Start   time.Time
	End     time.Time
	AllDay  bool
}

// ListEventsOptions defines the time window for listing remote events.
type ListEventsOptions struct {
	From       time.Time
	To         time.Time
	MaxResults int64
}
