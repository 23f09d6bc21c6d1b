package usecase

import (
	"context"
	"fmt"
	"strings"

	"calendar-assistant/internal/event"
	"calendar-assistant/internal/event/repository"
	"calendar-assistant/internal/model"
)

// Remind sets a reminder from free text. Unlike events, a reminder needs an
// explicit time; without one the user is asked again rather than defaulted.
func (uc *implUseCase) Remind(ctx context.Context, sc model.Scope, input event.RemindInput) (event.RemindOutput, error) {
	if strings.TrimSpace(input.RawText) == "" {
		return event.RemindOutput{}, event.ErrEmptyInput
	}
	if uc.repo == nil {
		return event.RemindOutput{}, event.ErrCalendarDisabled
	}

	outcome := uc.natural.Parse(input.RawText, uc.now())
	if outcome.Intent.StartTime == nil {
		return event.RemindOutput{}, event.ErrMissingTime
	}

	at := outcome.Intent.StartTime.At(outcome.Intent.Date, uc.dateMath.Location())

	_, err := uc.repo.Create(ctx, repository.CreateEventOptions{
		Title:         reminderPrefix + outcome.Intent.Title,
		Start:         at,
		End:           at.Add(reminderDuration),
		NotifyAtStart: true,
	})
	if err != nil {
		return event.RemindOutput{}, fmt.Errorf("failed to set reminder: %w", err)
	}

	uc.l.Infof(ctx, "Remind: user=%s title=%q at=%s", sc.UserID, outcome.Intent.Title, at)

	return event.RemindOutput{Title: outcome.Intent.Title, At: at}, nil
}
