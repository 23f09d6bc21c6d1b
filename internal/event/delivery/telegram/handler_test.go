package telegram_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/event"
	"calendar-assistant/internal/event/delivery/telegram"
	"calendar-assistant/internal/model"
	pkgTelegram "calendar-assistant/pkg/telegram"
	"calendar-assistant/pkg/timeofday"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

type mockEventUseCase struct {
	inviteOut event.InviteOutput
	inviteErr error

	scheduleOut event.ScheduleOutput
	scheduleErr error

	editOut event.EditOutput
	editErr error

	deleteOut event.DeleteOutput
	deleteErr error

	listOut event.ListOutput
	listErr error

	remindOut event.RemindOutput
	remindErr error

	listRemOut event.ListRemindersOutput
	listRemErr error

	delRemOut event.DeleteReminderOutput
	delRemErr error

	askOut event.AskOutput
	askErr error

	accountOut event.AccountOutput
	accountErr error

	lastScope model.Scope
}

func (m *mockEventUseCase) BuildInvite(ctx context.Context, sc model.Scope, input event.InviteInput) (event.InviteOutput, error) {
	m.lastScope = sc
	return m.inviteOut, m.inviteErr
}

func (m *mockEventUseCase) Schedule(ctx context.Context, sc model.Scope, input event.ScheduleInput) (event.ScheduleOutput, error) {
	m.lastScope = sc
	return m.scheduleOut, m.scheduleErr
}

func (m *mockEventUseCase) Edit(ctx context.Context, sc model.Scope, input event.EditInput) (event.EditOutput, error) {
	return m.editOut, m.editErr
}

func (m *mockEventUseCase) Delete(ctx context.Context, sc model.Scope, input event.DeleteInput) (event.DeleteOutput, error) {
	return m.deleteOut, m.deleteErr
}

func (m *mockEventUseCase) List(ctx context.Context, sc model.Scope) (event.ListOutput, error) {
	return m.listOut, m.listErr
}

func (m *mockEventUseCase) Remind(ctx context.Context, sc model.Scope, input event.RemindInput) (event.RemindOutput, error) {
	return m.remindOut, m.remindErr
}

func (m *mockEventUseCase) ListReminders(ctx context.Context, sc model.Scope) (event.ListRemindersOutput, error) {
	return m.listRemOut, m.listRemErr
}

func (m *mockEventUseCase) DeleteReminder(ctx context.Context, sc model.Scope, input event.DeleteReminderInput) (event.DeleteReminderOutput, error) {
	return m.delRemOut, m.delRemErr
}

func (m *mockEventUseCase) Ask(ctx context.Context, sc model.Scope, input event.AskInput) (event.AskOutput, error) {
	return m.askOut, m.askErr
}

func (m *mockEventUseCase) Account(ctx context.Context, sc model.Scope) (event.AccountOutput, error) {
	return m.accountOut, m.accountErr
}

// ── Test environment ───────────────────────────────────────────────────────

type testEnv struct {
	engine            *gin.Engine
	muc               *mockEventUseCase
	capturedMessages  *[]string
	capturedDocuments *[]string
}

func newTestEnv(t *testing.T) (*testEnv, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	capturedMessages := &[]string{}
	capturedDocuments := &[]string{}

	tgServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.Contains(r.URL.Path, "/sendMessage"):
			var payload map[string]interface{}
			json.NewDecoder(r.Body).Decode(&payload)
			if text, ok := payload["text"].(string); ok {
				*capturedMessages = append(*capturedMessages, text)
			}
		case strings.Contains(r.URL.Path, "/sendDocument"):
			if err := r.ParseMultipartForm(1 << 20); err == nil {
				if fhs := r.MultipartForm.File["document"]; len(fhs) > 0 {
					*capturedDocuments = append(*capturedDocuments, fhs[0].Filename)
				}
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok": true}`))
	}))

	l := &mockLogger{}
	bot := pkgTelegram.NewBot("test-token")
	bot.SetAPIURL(tgServer.URL)

	muc := &mockEventUseCase{}

	engine := gin.New()
	h := telegram.New(l, muc, bot)
	engine.POST("/webhook/telegram", h.HandleWebhook)

	return &testEnv{
		engine:            engine,
		muc:               muc,
		capturedMessages:  capturedMessages,
		capturedDocuments: capturedDocuments,
	}, tgServer
}

func sendWebhook(engine *gin.Engine, text string) *httptest.ResponseRecorder {
	update := pkgTelegram.Update{
		UpdateID: 1,
		Message: &pkgTelegram.Message{
			MessageID: 1,
			Chat:      &pkgTelegram.Chat{ID: 123},
			From:      &pkgTelegram.User{ID: 456, Username: "tester"},
			Text:      text,
		},
	}
	body, _ := json.Marshal(update)
	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func waitForMessages(msgs *[]string, atLeast int, timeout time.Duration) {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) && len(*msgs) < atLeast {
		time.Sleep(20 * time.Millisecond)
	}
}

func assertContains(t *testing.T, msgs []string, substr string) {
	t.Helper()
	for _, m := range msgs {
		if strings.Contains(m, substr) {
			return
		}
	}
	t.Errorf("expected a message containing %q, got: %v", substr, msgs)
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestHandleWebhook_InvalidJSON(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBufferString("{bad json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.engine.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestHandleWebhook_NonMessageUpdate(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	update := pkgTelegram.Update{UpdateID: 1, Message: nil}
	body, _ := json.Marshal(update)
	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.engine.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestHandleStart(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	w := sendWebhook(env.engine, "/start")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "Welcome to your Personal Calendar Assistant")
}

func TestHandleHi(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	sendWebhook(env.engine, "/hi")
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "Hi there")
}

func TestHandleUnknownCommand(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	sendWebhook(env.engine, "/frobnicate")
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "don't recognize that command")
}

func TestHandleEvent_Complete(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	start, _ := timeofday.Parse("10:00 AM")
	end, _ := timeofday.Parse("11:15 AM")
	env.muc.inviteOut = event.InviteOutput{
		Intent: event.Intent{
			Title:           "Team Sync",
			Date:            time.Date(2030, 8, 25, 0, 0, 0, 0, time.UTC),
			StartTime:       &start,
			EndTime:         &end,
			Timezone:        "Asia/Kolkata",
			Location:        "Office",
			ReminderMinutes: 15,
		},
		Payload:  []byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"),
		Filename: "team-sync.ics",
	}

	sendWebhook(env.engine, "/event Team Sync @ 25-08 10:00 AM-11:15 AM #Office r15")
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)
	waitForMessages(env.capturedDocuments, 1, 500*time.Millisecond)

	assertContains(t, *env.capturedMessages, "Event ready")
	assertContains(t, *env.capturedMessages, "Team Sync")
	if len(*env.capturedDocuments) != 1 || (*env.capturedDocuments)[0] != "team-sync.ics" {
		t.Errorf("documents = %v, want [team-sync.ics]", *env.capturedDocuments)
	}
}

func TestHandleEvent_Incomplete(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	env.muc.inviteOut = event.InviteOutput{Needs: event.NeedDateTime}

	sendWebhook(env.engine, "/event Team Sync @")
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)

	assertContains(t, *env.capturedMessages, "Add date and time after '@'")
	if len(*env.capturedDocuments) != 0 {
		t.Errorf("expected no document for incomplete command, got %v", *env.capturedDocuments)
	}
}

func TestHandleAddEvent(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	env.muc.scheduleOut = event.ScheduleOutput{Event: model.CalendarEvent{
		Title: "Dinner with Zahra",
		Start: time.Date(2030, 8, 25, 21, 0, 0, 0, time.UTC),
	}}

	sendWebhook(env.engine, "/addevent Dinner with Zahra tomorrow at 9 pm")
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)

	assertContains(t, *env.capturedMessages, "✅ Event added!")
	assertContains(t, *env.capturedMessages, "Dinner with Zahra")
}

func TestHandleAddEvent_NoArgs(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	sendWebhook(env.engine, "/addevent")
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "Please provide event details")
}

func TestHandleEditEvent_NotFound(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	env.muc.editErr = event.ErrEventNotFound

	sendWebhook(env.engine, "/editevent graduation on next friday at 3 pm")
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "Couldn't find an event matching your description")
}

func TestHandleDeleteEvent(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	env.muc.deleteOut = event.DeleteOutput{Title: "Graduation day"}

	sendWebhook(env.engine, "/deleteevent graduation day")
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "✅ Deleted event: Graduation day")
}

func TestHandleEvents_Empty(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	sendWebhook(env.engine, "/events")
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "No upcoming events in the next 30 days")
}

func TestHandleEvents_AllDay(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	env.muc.listOut = event.ListOutput{Events: []model.CalendarEvent{
		{Title: "Republic Day", Start: time.Date(2031, 1, 26, 0, 0, 0, 0, time.UTC), AllDay: true},
	}}

	sendWebhook(env.engine, "/events")
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "January 26 (All day)")
}

func TestHandleRemindMe_MissingTime(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	env.muc.remindErr = event.ErrMissingTime

	sendWebhook(env.engine, "/remindme Call dentist tomorrow")
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "Please specify a time for the reminder")
}

func TestHandleListReminders(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	env.muc.listRemOut = event.ListRemindersOutput{Reminders: []event.Reminder{
		{ID: "rem-1", Title: "Call dentist", At: time.Date(2031, 6, 19, 18, 30, 0, 0, time.UTC)},
	}}

	sendWebhook(env.engine, "/listreminders")
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "Call dentist")
	assertContains(t, *env.capturedMessages, "June 19 at 06:30 PM")
}

func TestHandleAsk(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	env.muc.askOut = event.AskOutput{Answer: "Paris"}

	sendWebhook(env.engine, "/ask What is the capital of France?")
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "Paris")
}

func TestHandleAccount(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	env.muc.accountOut = event.AccountOutput{
		Email:      "user@example.com",
		CalendarID: "primary",
		Timezone:   "Asia/Kolkata",
	}

	sendWebhook(env.engine, "/account")
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "user@example.com")
}

func TestHandleCommand_BotSuffix(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	sendWebhook(env.engine, "/events@calendar_assistant_bot")
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "No upcoming events")
}

func TestScopeFromSender(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	sendWebhook(env.engine, "/addevent Dinner tomorrow at 9 pm")
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)

	if env.muc.lastScope.UserID != "telegram_456" {
		t.Errorf("scope user id = %q, want telegram_456", env.muc.lastScope.UserID)
	}
	if env.muc.lastScope.Username != "tester" {
		t.Errorf("scope username = %q, want tester", env.muc.lastScope.Username)
	}
}
