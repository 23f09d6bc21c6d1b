package repository

import (
	"context"

	"calendar-assistant/internal/model"
)

// CalendarRepository is the interface for remote calendar data access.
type CalendarRepository interface {
	Create(ctx context.Context, opt CreateEventOptions) (model.CalendarEvent, error)
	Update(ctx context.Context, opt UpdateEventOptions) (model.CalendarEvent, error)
	Delete(ctx context.Context, eventID string) error
	List(ctx context.Context, opt ListEventsOptions) ([]model.CalendarEvent, error)
	Account(ctx context.Context) (model.CalendarAccount, error)
}
