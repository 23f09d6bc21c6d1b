package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"calendar-assistant/internal/event"
)

func TestBuildInvite(t *testing.T) {
	uc := newTestUseCase(t, nil, nil)
	ctx := context.Background()

	t.Run("Complete Command", func(t *testing.T) {
		out, err := uc.BuildInvite(ctx, testScope(), event.InviteInput{
			RawText: "/event Team Sync @ 2030-08-25 10:00 AM-11:15 AM #Office r15",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Needs != "" {
			t.Fatalf("expected complete outcome, got needs=%q", out.Needs)
		}
		if out.Filename != "Team_Sync.ics" {
			t.Errorf("filename = %q, want %q", out.Filename, "Team_Sync.ics")
		}

		payload := string(out.Payload)
		for _, want := range []string{
			"SUMMARY:Team Sync",
			"LOCATION:Office",
			"TRIGGER:-PT15M",
			"20300825T100000",
			"20300825T111500",
		} {
			if !strings.Contains(payload, want) {
				t.Errorf("payload missing %q:\n%s", want, payload)
			}
		}
	})

	t.Run("Incomplete Command", func(t *testing.T) {
		out, err := uc.BuildInvite(ctx, testScope(), event.InviteInput{
			RawText: "/event Team Sync",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Needs != event.NeedSchedule {
			t.Errorf("needs = %q, want %q", out.Needs, event.NeedSchedule)
		}
		if len(out.Payload) != 0 {
			t.Errorf("expected no payload for incomplete command")
		}
	})

	t.Run("Inverted Range Uses Default Duration", func(t *testing.T) {
		out, err := uc.BuildInvite(ctx, testScope(), event.InviteInput{
			RawText: "/event Standup @ 2030-08-25 11:00-10:00",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Needs != "" {
			t.Fatalf("expected complete outcome, got needs=%q", out.Needs)
		}
		if !strings.Contains(string(out.Payload), "20300825T120000") {
			t.Errorf("expected end one hour after start:\n%s", out.Payload)
		}
	})

	t.Run("No Reminder No Alarm", func(t *testing.T) {
		out, err := uc.BuildInvite(ctx, testScope(), event.InviteInput{
			RawText: "/event Standup @ 2030-08-25 9 AM r0",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(string(out.Payload), "VALARM") {
			t.Errorf("expected no alarm for r0:\n%s", out.Payload)
		}
	})

	t.Run("Empty Input", func(t *testing.T) {
		_, err := uc.BuildInvite(ctx, testScope(), event.InviteInput{RawText: "   "})
		if !errors.Is(err, event.ErrEmptyInput) {
			t.Errorf("expected ErrEmptyInput, got %v", err)
		}
	})
}
