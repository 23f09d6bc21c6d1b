package usecase

import (
	"context"
	"fmt"
	"strings"

	"calendar-assistant/internal/event"
	"calendar-assistant/internal/event/repository"
	"calendar-assistant/internal/model"
)

// List returns upcoming events inside the configured window, reminders
// excluded.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope) (event.ListOutput, error) {
	if uc.repo == nil {
		return event.ListOutput{}, event.ErrCalendarDisabled
	}

	all, err := uc.repo.List(ctx, repository.ListEventsOptions{
		From: uc.now(),
		To:   uc.now().AddDate(0, 0, uc.cfg.ListWindowDays),
	})
	if err != nil {
		return event.ListOutput{}, fmt.Errorf("failed to list events: %w", err)
	}

	events := make([]model.CalendarEvent, 0, len(all))
	for _, ev := range all {
		if strings.HasPrefix(ev.Title, reminderPrefix) {
			continue
		}
		events = append(events, ev)
	}

	uc.l.Infof(ctx, "List: user=%s events=%d", sc.UserID, len(events))

	return event.ListOutput{Events: events}, nil
}
