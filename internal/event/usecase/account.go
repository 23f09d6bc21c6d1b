package usecase

import (
	"context"
	"fmt"

	"calendar-assistant/internal/event"
	"calendar-assistant/internal/model"
)

// Account reports the connected calendar account.
func (uc *implUseCase) Account(ctx context.Context, sc model.Scope) (event.AccountOutput, error) {
	if uc.repo == nil {
		return event.AccountOutput{}, event.ErrCalendarDisabled
	}

	account, err := uc.repo.Account(ctx)
	if err != nil {
		return event.AccountOutput{}, fmt.Errorf("failed to get account info: %w", err)
	}

	return event.AccountOutput{
		Email:      account.Email,
		CalendarID: account.CalendarID,
		Timezone:   account.Timezone,
	}, nil
}
