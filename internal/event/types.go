package event

import (
	"time"

	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/timeofday"
)

// Intent is the normalized event record produced by a parsing strategy.
// It is created fresh per command and never mutated after parsing.
type Intent struct {
	Title           string
	Date            time.Time // calendar day; clock fields are zero
	StartTime       *timeofday.Time
	EndTime         *timeofday.Time
	Timezone        string
	Location        string
	Description     string
	ReminderMinutes int
}

// Need names the field a partially parsed command is missing. The tag drives
// the corrective prompt sent back to the user.
type Need string

const (
	NeedSchedule  Need = "schedule"
	NeedDateTime  Need = "date_time"
	NeedDate      Need = "date"
	NeedTime      Need = "time"
	NeedTimeRange Need = "time_range"
)

// Outcome is the result of running a parsing strategy: a completed Intent, or
// a partial one tagged with the missing field.
type Outcome struct {
	Intent Intent
	Needs  Need // empty when the intent is complete
}

// Complete reports whether the outcome carries a fully resolved intent.
func (o Outcome) Complete() bool {
	return o.Needs == ""
}

// InviteInput is the input for building a shareable .ics invite.
type InviteInput struct {
	RawText string // full command line, leading command token included
}

// InviteOutput is the result of the invite operation. When Needs is set the
// payload is empty and the caller should re-prompt.
type InviteOutput struct {
	Intent   Intent
	Needs    Need
	Payload  []byte
	Filename string
}

// ScheduleInput is the input for creating a remote calendar event from free text.
type ScheduleInput struct {
	RawText string
}

// ScheduleOutput is the created remote event.
type ScheduleOutput struct {
	Event model.CalendarEvent
}

// EditInput is the input for rescheduling or renaming an existing event.
type EditInput struct {
	RawText string
}

// EditOutput is the updated remote event.
type EditOutput struct {
	Event model.CalendarEvent
}

// DeleteInput is the input for removing an event matched by keywords.
type DeleteInput struct {
	RawText string
}

// DeleteOutput names the event that was removed.
type DeleteOutput struct {
	Title string
}

// ListOutput holds the upcoming events inside the configured window,
// reminders excluded.
type ListOutput struct {
	Events []model.CalendarEvent
}

// RemindInput is the input for setting a reminder from free text.
type RemindInput struct {
	RawText string
}

// RemindOutput describes the reminder that was set.
type RemindOutput struct {
	Title string
	At    time.Time
}

// Reminder is a single upcoming reminder, title stripped of its marker.
type Reminder struct {
	ID    string
	Title string
	At    time.Time
}

// ListRemindersOutput holds all upcoming reminders.
type ListRemindersOutput struct {
	Reminders []Reminder
}

// DeleteReminderInput is the input for removing a reminder matched by keywords.
type DeleteReminderInput struct {
	RawText string
}

// DeleteReminderOutput names the reminder that was removed.
type DeleteReminderOutput struct {
	Title string
}

// AskInput is a free-form question for the assistant.
type AskInput struct {
	Question string
}

// AskOutput is the assistant's answer.
type AskOutput struct {
	Answer string
}

// AccountOutput describes the connected calendar account.
type AccountOutput struct {
	Email      string
	CalendarID string
	Timezone   string
}
