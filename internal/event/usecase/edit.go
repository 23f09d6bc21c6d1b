package usecase

import (
	"context"
	"fmt"
	"strings"

	"calendar-assistant/internal/event"
	"calendar-assistant/internal/event/repository"
	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/datemath"
)

// Edit finds an upcoming event by keywords and overwrites its title and
// schedule with what the new text resolves to. A title that stripped down to
// the bare placeholder keeps the stored one.
func (uc *implUseCase) Edit(ctx context.Context, sc model.Scope, input event.EditInput) (event.EditOutput, error) {
	if strings.TrimSpace(input.RawText) == "" {
		return event.EditOutput{}, event.ErrEmptyInput
	}
	if uc.repo == nil {
		return event.EditOutput{}, event.ErrCalendarDisabled
	}

	keywords := editKeywords(input.RawText)
	if len(keywords) == 0 {
		return event.EditOutput{}, event.ErrNoKeywords
	}

	existing, err := uc.findEventByKeywords(ctx, keywords)
	if err != nil {
		return event.EditOutput{}, err
	}

	outcome := uc.natural.Parse(input.RawText, uc.now())

	title := outcome.Intent.Title
	if strings.EqualFold(title, datemath.PlaceholderTitle) {
		title = existing.Title
	}

	start, end, allDay := uc.eventWindow(outcome.Intent)

	updated, err := uc.repo.Update(ctx, repository.UpdateEventOptions{
		EventID: existing.ID,
		Title:   title,
		Start:   start,
		End:     end,
		AllDay:  allDay,
	})
	if err != nil {
		return event.EditOutput{}, fmt.Errorf("failed to update event: %w", err)
	}

	uc.l.Infof(ctx, "Edit: user=%s event=%s title=%q start=%s", sc.UserID, existing.ID, title, start)

	return event.EditOutput{Event: updated}, nil
}
