package usecase

import (
	"context"
	"fmt"
	"strings"

	"calendar-assistant/internal/event"
	"calendar-assistant/internal/event/repository"
	"calendar-assistant/internal/model"
)

// Schedule creates a remote calendar event from free text.
func (uc *implUseCase) Schedule(ctx context.Context, sc model.Scope, input event.ScheduleInput) (event.ScheduleOutput, error) {
	if strings.TrimSpace(input.RawText) == "" {
		return event.ScheduleOutput{}, event.ErrEmptyInput
	}
	if uc.repo == nil {
		return event.ScheduleOutput{}, event.ErrCalendarDisabled
	}

	outcome := uc.natural.Parse(input.RawText, uc.now())
	start, end, allDay := uc.eventWindow(outcome.Intent)

	created, err := uc.repo.Create(ctx, repository.CreateEventOptions{
		Title:  outcome.Intent.Title,
		Start:  start,
		End:    end,
		AllDay: allDay,
	})
	if err != nil {
		return event.ScheduleOutput{}, fmt.Errorf("failed to schedule event: %w", err)
	}

	uc.l.Infof(ctx, "Schedule: user=%s title=%q start=%s all_day=%t", sc.UserID, created.Title, start, allDay)

	return event.ScheduleOutput{Event: created}, nil
}
