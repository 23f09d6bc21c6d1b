package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/event"
	"calendar-assistant/internal/model"
	pkgLog "calendar-assistant/pkg/log"
	pkgResponse "calendar-assistant/pkg/response"
	pkgTelegram "calendar-assistant/pkg/telegram"
)

type handler struct {
	l   pkgLog.Logger
	uc  event.UseCase
	bot *pkgTelegram.Bot
}

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a
// background goroutine: Telegram expects an answer within a few seconds, but
// a command can spend longer than that on calendar and assistant calls.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot the message before spawning goroutine to avoid data races on gin context
	msg := update.Message

	go func() {
		// Detach from the HTTP request context, which is cancelled after the response
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(msg.Chat.ID, "Sorry, something went wrong processing your request. Please try again.")
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	if msg.Text == "" {
		return nil
	}

	cmd, args := splitCommand(msg.Text)

	sc := model.Scope{
		UserID:   fmt.Sprintf("telegram_%d", msg.From.ID),
		Username: msg.From.Username,
	}

	switch cmd {
	case "/start", "/help":
		return h.bot.SendMessage(msg.Chat.ID, welcomeText)
	case "/hi":
		return h.bot.SendMessage(msg.Chat.ID, greetingText)
	case "/account":
		return h.handleAccount(ctx, sc, msg.Chat.ID)
	case "/event":
		return h.handleInvite(ctx, sc, msg.Chat.ID, msg.Text)
	case "/addevent":
		return h.handleSchedule(ctx, sc, msg.Chat.ID, args)
	case "/editevent":
		return h.handleEdit(ctx, sc, msg.Chat.ID, args)
	case "/deleteevent":
		return h.handleDelete(ctx, sc, msg.Chat.ID, args)
	case "/events":
		return h.handleList(ctx, sc, msg.Chat.ID)
	case "/remindme":
		return h.handleRemind(ctx, sc, msg.Chat.ID, args)
	case "/listreminders":
		return h.handleListReminders(ctx, sc, msg.Chat.ID)
	case "/deletereminder":
		return h.handleDeleteReminder(ctx, sc, msg.Chat.ID, args)
	case "/ask":
		return h.handleAsk(ctx, sc, msg.Chat.ID, args)
	default:
		return h.bot.SendMessage(msg.Chat.ID, unknownText)
	}
}

func (h *handler) handleInvite(ctx context.Context, sc model.Scope, chatID int64, raw string) error {
	out, err := h.uc.BuildInvite(ctx, sc, event.InviteInput{RawText: raw})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: BuildInvite failed: %v", err)
		return h.bot.SendMessage(chatID, "Sorry, something went wrong creating your event. Check syntax with /help and try again.")
	}

	if out.Needs != "" {
		return h.bot.SendMessage(chatID, needsPrompt(out.Needs))
	}

	if err := h.bot.SendMessage(chatID, inviteSummary(out)); err != nil {
		h.l.Warnf(ctx, "telegram handler: failed to send invite summary: %v", err)
	}
	return h.bot.SendDocument(chatID, out.Filename, out.Payload, "Share this .ics via WhatsApp or email.")
}

func (h *handler) handleSchedule(ctx context.Context, sc model.Scope, chatID int64, args string) error {
	if args == "" {
		return h.bot.SendMessage(chatID, "❌ Please provide event details!\n\nExample: /addevent Dinner with Zahra tomorrow at 9 pm")
	}

	out, err := h.uc.Schedule(ctx, sc, event.ScheduleInput{RawText: args})
	if err != nil {
		return h.bot.SendMessage(chatID, fmt.Sprintf("❌ Error adding event: %v", err))
	}

	return h.bot.SendMessage(chatID, fmt.Sprintf("✅ Event added!\n\n📅 %s\n🕒 %s", out.Event.Title, formatWhen(out.Event)))
}

func (h *handler) handleEdit(ctx context.Context, sc model.Scope, chatID int64, args string) error {
	if args == "" {
		return h.bot.SendMessage(chatID, "❌ Please provide event details!\n\nExample: /editevent graduation on next Friday at 3 PM")
	}

	out, err := h.uc.Edit(ctx, sc, event.EditInput{RawText: args})
	switch {
	case err == nil:
	case errors.Is(err, event.ErrEventNotFound):
		return h.bot.SendMessage(chatID, "❌ Couldn't find an event matching your description.\n\nUse /events to see your upcoming events.")
	case errors.Is(err, event.ErrNoKeywords):
		return h.bot.SendMessage(chatID, "❌ Please specify which event to edit.")
	default:
		return h.bot.SendMessage(chatID, fmt.Sprintf("❌ Error editing event: %v", err))
	}

	return h.bot.SendMessage(chatID, fmt.Sprintf("✅ Event updated!\n\n📅 %s\n🕒 %s", out.Event.Title, formatWhen(out.Event)))
}

func (h *handler) handleDelete(ctx context.Context, sc model.Scope, chatID int64, args string) error {
	if args == "" {
		return h.bot.SendMessage(chatID, "❌ Please specify which event to delete!\n\nExample: /deleteevent graduation day")
	}

	out, err := h.uc.Delete(ctx, sc, event.DeleteInput{RawText: args})
	switch {
	case err == nil:
	case errors.Is(err, event.ErrEventNotFound):
		return h.bot.SendMessage(chatID, fmt.Sprintf("❌ Couldn't find an event matching: %s\n\nUse /events to see your upcoming events.", args))
	default:
		return h.bot.SendMessage(chatID, fmt.Sprintf("❌ Error deleting event: %v", err))
	}

	return h.bot.SendMessage(chatID, fmt.Sprintf("✅ Deleted event: %s", out.Title))
}

func (h *handler) handleList(ctx context.Context, sc model.Scope, chatID int64) error {
	out, err := h.uc.List(ctx, sc)
	if err != nil {
		return h.bot.SendMessage(chatID, fmt.Sprintf("❌ Error getting events: %v", err))
	}

	if len(out.Events) == 0 {
		return h.bot.SendMessage(chatID, "📭 No upcoming events in the next 30 days.")
	}

	var sb strings.Builder
	sb.WriteString("📅 Your Upcoming Events (Next 30 Days):\n\n")
	for _, ev := range out.Events {
		sb.WriteString(fmt.Sprintf("• %s\n  📅 %s\n\n", ev.Title, formatWhen(ev)))
	}
	return h.bot.SendMessage(chatID, sb.String())
}

func (h *handler) handleRemind(ctx context.Context, sc model.Scope, chatID int64, args string) error {
	if args == "" {
		return h.bot.SendMessage(chatID, "❌ Please provide reminder details!\n\nExample: /remindme Call dentist on the 19th at 6:30 PM")
	}

	out, err := h.uc.Remind(ctx, sc, event.RemindInput{RawText: args})
	switch {
	case err == nil:
	case errors.Is(err, event.ErrMissingTime):
		return h.bot.SendMessage(chatID, "❌ Please specify a time for the reminder!\n\nExample: /remindme Call dentist on the 19th at 6:30 PM")
	default:
		return h.bot.SendMessage(chatID, fmt.Sprintf("❌ Error setting reminder: %v", err))
	}

	return h.bot.SendMessage(chatID, fmt.Sprintf(
		"✅ Reminder set!\n\n🔔 %s\n📅 %s\n\nYou'll get a notification from your calendar!",
		out.Title, out.At.Format(whenLayout),
	))
}

func (h *handler) handleListReminders(ctx context.Context, sc model.Scope, chatID int64) error {
	out, err := h.uc.ListReminders(ctx, sc)
	if err != nil {
		return h.bot.SendMessage(chatID, fmt.Sprintf("❌ Error getting reminders: %v", err))
	}

	if len(out.Reminders) == 0 {
		return h.bot.SendMessage(chatID, "📭 You have no upcoming reminders.")
	}

	var sb strings.Builder
	sb.WriteString("🔔 Your Reminders:\n\n")
	for _, r := range out.Reminders {
		sb.WriteString(fmt.Sprintf("• %s\n  📅 %s\n\n", r.Title, r.At.Format(whenLayout)))
	}
	return h.bot.SendMessage(chatID, sb.String())
}

func (h *handler) handleDeleteReminder(ctx context.Context, sc model.Scope, chatID int64, args string) error {
	if args == "" {
		return h.bot.SendMessage(chatID, "❌ Please specify which reminder to delete!\n\nExample: /deletereminder dentist")
	}

	out, err := h.uc.DeleteReminder(ctx, sc, event.DeleteReminderInput{RawText: args})
	switch {
	case err == nil:
	case errors.Is(err, event.ErrReminderNotFound):
		return h.bot.SendMessage(chatID, fmt.Sprintf("❌ Couldn't find a reminder matching: %s\n\nUse /listreminders to see your reminders.", args))
	default:
		return h.bot.SendMessage(chatID, fmt.Sprintf("❌ Error deleting reminder: %v", err))
	}

	return h.bot.SendMessage(chatID, fmt.Sprintf("✅ Deleted reminder: %s", out.Title))
}

func (h *handler) handleAsk(ctx context.Context, sc model.Scope, chatID int64, args string) error {
	if args == "" {
		return h.bot.SendMessage(chatID, "❌ Please ask a question!\n\nExample: /ask What's the weather in Hyderabad?")
	}

	out, err := h.uc.Ask(ctx, sc, event.AskInput{Question: args})
	if err != nil {
		return h.bot.SendMessage(chatID, fmt.Sprintf("❌ Error: %v", err))
	}
	return h.bot.SendMessage(chatID, out.Answer)
}

func (h *handler) handleAccount(ctx context.Context, sc model.Scope, chatID int64) error {
	out, err := h.uc.Account(ctx, sc)
	if err != nil {
		return h.bot.SendMessage(chatID, fmt.Sprintf("❌ Error checking account: %v", err))
	}

	return h.bot.SendMessage(chatID, fmt.Sprintf(
		"✅ Connected Account:\n\n📧 Email: %s\n📅 Calendar: %s\n🕒 Timezone: %s\n\nEverything is working correctly!",
		out.Email, out.CalendarID, out.Timezone,
	))
}

// splitCommand separates the leading command token from its arguments and
// strips an @botname suffix, so "/events@my_bot" routes like "/events".
func splitCommand(text string) (cmd, args string) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return "", text
	}

	cmd = text
	if i := strings.IndexAny(text, " \t"); i >= 0 {
		cmd = text[:i]
		args = strings.TrimSpace(text[i:])
	}
	if at := strings.Index(cmd, "@"); at >= 0 {
		cmd = cmd[:at]
	}
	return strings.ToLower(cmd), args
}
