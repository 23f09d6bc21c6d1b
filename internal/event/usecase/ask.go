package usecase

import (
	"context"
	"fmt"
	"strings"

	"calendar-assistant/internal/event"
	"calendar-assistant/internal/model"
)

// Ask forwards a free-form question to the assistant backend.
func (uc *implUseCase) Ask(ctx context.Context, sc model.Scope, input event.AskInput) (event.AskOutput, error) {
	if strings.TrimSpace(input.Question) == "" {
		return event.AskOutput{}, event.ErrEmptyInput
	}
	if uc.llm == nil {
		return event.AskOutput{}, event.ErrAssistantDisabled
	}

	answer, err := uc.llm.GenerateText(ctx, input.Question)
	if err != nil {
		return event.AskOutput{}, fmt.Errorf("assistant request failed: %w", err)
	}

	uc.l.Infof(ctx, "Ask: user=%s question_length=%d", sc.UserID, len(input.Question))

	return event.AskOutput{Answer: answer}, nil
}
