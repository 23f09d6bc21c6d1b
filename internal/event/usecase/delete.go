package usecase

import (
	"context"
	"fmt"
	"strings"

	"calendar-assistant/internal/event"
	"calendar-assistant/internal/model"
)

// Delete finds an upcoming event by keywords and removes it.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, input event.DeleteInput) (event.DeleteOutput, error) {
	if strings.TrimSpace(input.RawText) == "" {
		return event.DeleteOutput{}, event.ErrEmptyInput
	}
	if uc.repo == nil {
		return event.DeleteOutput{}, event.ErrCalendarDisabled
	}

	existing, err := uc.findEventByKeywords(ctx, strings.Fields(input.RawText))
	if err != nil {
		return event.DeleteOutput{}, err
	}

	if err := uc.repo.Delete(ctx, existing.ID); err != nil {
		return event.DeleteOutput{}, fmt.Errorf("failed to delete event: %w", err)
	}

	uc.l.Infof(ctx, "Delete: user=%s event=%s title=%q", sc.UserID, existing.ID, existing.Title)

	return event.DeleteOutput{Title: existing.Title}, nil
}
