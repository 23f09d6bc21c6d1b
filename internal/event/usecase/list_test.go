package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"calendar-assistant/internal/event"
	"calendar-assistant/internal/model"
)

func TestList(t *testing.T) {
	ctx := context.Background()

	t.Run("Filters Reminders", func(t *testing.T) {
		repo := &mockRepository{events: []model.CalendarEvent{
			{ID: "ev-1", Title: "Team Sync"},
			{ID: "rem-1", Title: "🔔 Call dentist"},
			{ID: "ev-2", Title: "Graduation Day", AllDay: true},
		}}
		uc := newTestUseCase(t, repo, nil)

		out, err := uc.List(ctx, testScope())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Events) != 2 {
			t.Fatalf("expected 2 events, got %d", len(out.Events))
		}
		for _, ev := range out.Events {
			if ev.ID == "rem-1" {
				t.Errorf("reminder leaked into event listing")
			}
		}
	})

	t.Run("List Failure", func(t *testing.T) {
		repo := &mockRepository{listErr: errors.New("api down")}
		uc := newTestUseCase(t, repo, nil)

		if _, err := uc.List(ctx, testScope()); err == nil {
			t.Fatalf("expected error from repository")
		}
	})

	t.Run("No Calendar Backend", func(t *testing.T) {
		uc := newTestUseCase(t, nil, nil)

		_, err := uc.List(ctx, testScope())
		if !errors.Is(err, event.ErrCalendarDisabled) {
			t.Errorf("expected ErrCalendarDisabled, got %v", err)
		}
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Deletes Matching Event", func(t *testing.T) {
		repo := &mockRepository{events: []model.CalendarEvent{
			{ID: "rem-1", Title: "🔔 graduation gift"},
			{ID: "ev-1", Title: "Graduation Day", Start: time.Now()},
		}}
		uc := newTestUseCase(t, repo, nil)

		out, err := uc.Delete(ctx, testScope(), event.DeleteInput{RawText: "graduation day"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Title != "Graduation Day" {
			t.Errorf("title = %q", out.Title)
		}
		if len(repo.deleted) != 1 || repo.deleted[0] != "ev-1" {
			t.Errorf("deleted = %v, want [ev-1]", repo.deleted)
		}
	})

	t.Run("Not Found", func(t *testing.T) {
		repo := &mockRepository{}
		uc := newTestUseCase(t, repo, nil)

		_, err := uc.Delete(ctx, testScope(), event.DeleteInput{RawText: "does not exist"})
		if !errors.Is(err, event.ErrEventNotFound) {
			t.Errorf("expected ErrEventNotFound, got %v", err)
		}
	})
}
