package gcal

import (
	"context"
	"fmt"

	"calendar-assistant/internal/event/repository"
	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/gcalendar"
)

func (r *implRepository) Create(ctx context.Context, opt repository.CreateEventOptions) (model.CalendarEvent, error) {
	req := gcalendar.CreateEventRequest{
		CalendarID:  r.calendarID,
		Summary:     opt.Title,
		Description: opt.Description,
		Location:    opt.Location,
		StartTime:   opt.Start,
		EndTime:     opt.End,
		Timezone:    r.timezone,
		AllDay:      opt.AllDay,
	}
	if opt.NotifyAtStart {
		req.Reminders = []gcalendar.ReminderOverride{
			{Method: "popup", Minutes: 0},
			{Method: "email", Minutes: 0},
		}
	}

	created, err := r.client.CreateEvent(ctx, req)
	if err != nil {
		return model.CalendarEvent{}, fmt.Errorf("failed to create event: %w", err)
	}
	return fromClient(*created), nil
}

func (r *implRepository) Update(ctx context.Context, opt repository.UpdateEventOptions) (model.CalendarEvent, error) {
	updated, err := r.client.UpdateEvent(ctx, gcalendar.UpdateEventRequest{
		CalendarID: r.calendarID,
		EventID:    opt.EventID,
		Summary:    opt.Title,
		StartTime:  opt.Start,
		EndTime:    opt.End,
		Timezone:   r.timezone,
		AllDay:     opt.AllDay,
	})
	if err != nil {
		return model.CalendarEvent{}, fmt.Errorf("failed to update event: %w", err)
	}
	return fromClient(*updated), nil
}

func (r *implRepository) Delete(ctx context.Context, eventID string) error {
	if err := r.client.DeleteEvent(ctx, r.calendarID, eventID); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

func (r *implRepository) List(ctx context.Context, opt repository.ListEventsOptions) ([]model.CalendarEvent, error) {
	items, err := r.client.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: r.calendarID,
		TimeMin:    opt.From,
		TimeMax:    opt.To,
		MaxResults: opt.MaxResults,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	events := make([]model.CalendarEvent, 0, len(items))
	for _, item := range items {
		events = append(events, fromClient(item))
	}
	return events, nil
}

func (r *implRepository) Account(ctx context.Context) (model.CalendarAccount, error) {
	info, err := r.client.GetCalendar(ctx, r.calendarID)
	if err != nil {
		return model.CalendarAccount{}, fmt.Errorf("failed to get account info: %w", err)
	}
	return model.CalendarAccount{
		Email:      info.Summary,
		CalendarID: info.ID,
		Timezone:   info.Timezone,
	}, nil
}

func fromClient(ev gcalendar.Event) model.CalendarEvent {
	return model.CalendarEvent{
		ID:          ev.ID,
		Title:       ev.Summary,
		Description: ev.Description,
		Location:    ev.Location,
		Link:        ev.HtmlLink,
		Start:       ev.StartTime,
		End:         ev.EndTime,
		AllDay:      ev.AllDay,
	}
}
