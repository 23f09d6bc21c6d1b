package event

import (
	"context"

	"calendar-assistant/internal/model"
)

// UseCase defines the business logic interface for the event domain.
type UseCase interface {
	// BuildInvite parses a strict one-liner command and serializes it into a
	// shareable .ics payload. Incomplete commands come back tagged, not failed.
	BuildInvite(ctx context.Context, sc model.Scope, input InviteInput) (InviteOutput, error)

	// Schedule creates a remote calendar event from free text.
	Schedule(ctx context.Context, sc model.Scope, input ScheduleInput) (ScheduleOutput, error)

	// Edit finds an event by keywords and applies the newly parsed schedule.
	Edit(ctx context.Context, sc model.Scope, input EditInput) (EditOutput, error)

	// Delete finds an event by keywords and removes it.
	Delete(ctx context.Context, sc model.Scope, input DeleteInput) (DeleteOutput, error)

	// List returns upcoming events inside the configured window.
	List(ctx context.Context, sc model.Scope) (ListOutput, error)

	// Remind sets a reminder at an explicit time parsed from free text.
	Remind(ctx context.Context, sc model.Scope, input RemindInput) (RemindOutput, error)

	// ListReminders returns all upcoming reminders.
	ListReminders(ctx context.Context, sc model.Scope) (ListRemindersOutput, error)

	// DeleteReminder finds a reminder by keywords and removes it.
	DeleteReminder(ctx context.Context, sc model.Scope, input DeleteReminderInput) (DeleteReminderOutput, error)

	// Ask forwards a free-form question to the assistant backend.
	Ask(ctx context.Context, sc model.Scope, input AskInput) (AskOutput, error)

	// Account reports the connected calendar account.
	Account(ctx context.Context, sc model.Scope) (AccountOutput, error)
}
