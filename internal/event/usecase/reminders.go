package usecase

import (
	"context"
	"fmt"
	"strings"

	"calendar-assistant/internal/event"
	"calendar-assistant/internal/model"
)

// ListReminders returns upcoming reminders, marker stripped from titles.
func (uc *implUseCase) ListReminders(ctx context.Context, sc model.Scope) (event.ListRemindersOutput, error) {
	if uc.repo == nil {
		return event.ListRemindersOutput{}, event.ErrCalendarDisabled
	}

	events, err := uc.listReminderEvents(ctx)
	if err != nil {
		return event.ListRemindersOutput{}, fmt.Errorf("failed to list reminders: %w", err)
	}

	reminders := make([]event.Reminder, 0, len(events))
	for _, ev := range events {
		reminders = append(reminders, event.Reminder{
			ID:    ev.ID,
			Title: strings.TrimPrefix(ev.Title, reminderPrefix),
			At:    ev.Start,
		})
	}

	uc.l.Infof(ctx, "ListReminders: user=%s reminders=%d", sc.UserID, len(reminders))

	return event.ListRemindersOutput{Reminders: reminders}, nil
}

// DeleteReminder finds a reminder by keywords and removes it.
func (uc *implUseCase) DeleteReminder(ctx context.Context, sc model.Scope, input event.DeleteReminderInput) (event.DeleteReminderOutput, error) {
	if strings.TrimSpace(input.RawText) == "" {
		return event.DeleteReminderOutput{}, event.ErrEmptyInput
	}
	if uc.repo == nil {
		return event.DeleteReminderOutput{}, event.ErrCalendarDisabled
	}

	reminder, err := uc.findReminderByKeywords(ctx, strings.Fields(input.RawText))
	if err != nil {
		return event.DeleteReminderOutput{}, err
	}

	if err := uc.repo.Delete(ctx, reminder.ID); err != nil {
		return event.DeleteReminderOutput{}, fmt.Errorf("failed to delete reminder: %w", err)
	}

	title := strings.TrimPrefix(reminder.Title, reminderPrefix)
	uc.l.Infof(ctx, "DeleteReminder: user=%s reminder=%s title=%q", sc.UserID, reminder.ID, title)

	return event.DeleteReminderOutput{Title: title}, nil
}
