package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"calendar-assistant/internal/event"
	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/ics"
)

// BuildInvite parses a strict one-liner and serializes it into an .ics
// payload. An incomplete command is not an error: the outcome comes back
// tagged so the caller can ask a targeted follow-up.
func (uc *implUseCase) BuildInvite(ctx context.Context, sc model.Scope, input event.InviteInput) (event.InviteOutput, error) {
	if strings.TrimSpace(input.RawText) == "" {
		return event.InviteOutput{}, event.ErrEmptyInput
	}

	outcome := uc.strict.Parse(input.RawText, uc.now())
	if !outcome.Complete() {
		uc.l.Infof(ctx, "BuildInvite: user=%s incomplete needs=%s", sc.UserID, outcome.Needs)
		return event.InviteOutput{Intent: outcome.Intent, Needs: outcome.Needs}, nil
	}

	in := outcome.Intent
	payload, err := uc.ics.Build(ics.Request{
		Title:           in.Title,
		Date:            in.Date,
		Start:           *in.StartTime,
		End:             in.EndTime,
		Timezone:        in.Timezone,
		Location:        in.Location,
		Description:     in.Description,
		ReminderMinutes: in.ReminderMinutes,
	}, time.Now())
	if err != nil {
		return event.InviteOutput{}, fmt.Errorf("failed to build invite: %w", err)
	}

	uc.l.Infof(ctx, "BuildInvite: user=%s title=%q date=%s", sc.UserID, in.Title, in.Date.Format("2006-01-02"))

	return event.InviteOutput{
		Intent:   in,
		Payload:  payload,
		Filename: ics.Filename(in.Title),
	}, nil
}
