package usecase

import (
	"context"
	"testing"
	"time"

	"calendar-assistant/internal/event/repository"
	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/datemath"
	"calendar-assistant/pkg/gemini"
	"calendar-assistant/pkg/ics"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock calendar repository for testing
type mockRepository struct {
	events []model.CalendarEvent

	created []repository.CreateEventOptions
	updated []repository.UpdateEventOptions
	deleted []string

	createErr error
	updateErr error
	deleteErr error
	listErr   error

	account    model.CalendarAccount
	accountErr error
}

func (m *mockRepository) Create(ctx context.Context, opt repository.CreateEventOptions) (model.CalendarEvent, error) {
	if m.createErr != nil {
		return model.CalendarEvent{}, m.createErr
	}
	m.created = append(m.created, opt)
	return model.CalendarEvent{
		ID:     "created-1",
		Title:  opt.Title,
		Start:  opt.Start,
		End:    opt.End,
		AllDay: opt.AllDay,
		Link:   "https://calendar.google.com/created-1",
	}, nil
}

func (m *mockRepository) Update(ctx context.Context, opt repository.UpdateEventOptions) (model.CalendarEvent, error) {
	if m.updateErr != nil {
		return model.CalendarEvent{}, m.updateErr
	}
	m.updated = append(m.updated, opt)
	return model.CalendarEvent{
		ID:     opt.EventID,
		Title:  opt.Title,
		Start:  opt.Start,
		End:    opt.End,
		AllDay: opt.AllDay,
	}, nil
}

func (m *mockRepository) Delete(ctx context.Context, eventID string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, eventID)
	return nil
}

func (m *mockRepository) List(ctx context.Context, opt repository.ListEventsOptions) ([]model.CalendarEvent, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.events, nil
}

func (m *mockRepository) Account(ctx context.Context) (model.CalendarAccount, error) {
	return m.account, m.accountErr
}

func newTestUseCase(t *testing.T, repo repository.CalendarRepository, llm *gemini.Client) *implUseCase {
	t.Helper()

	dm, err := datemath.NewParser("Asia/Kolkata")
	if err != nil {
		t.Fatalf("failed to create date parser: %v", err)
	}

	return New(
		&mockLogger{},
		repo,
		llm,
		dm,
		ics.NewBuilder("-//calendar-assistant//EN", 60*time.Minute),
		Config{
			Timezone:           "Asia/Kolkata",
			MaxReminderMinutes: 10080,
			DefaultDuration:    60 * time.Minute,
			ListWindowDays:     30,
		},
	)
}

func testScope() model.Scope {
	return model.Scope{UserID: "telegram_42", Username: "tester"}
}
