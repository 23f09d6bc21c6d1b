package telegram

import (
	"fmt"

	"calendar-assistant/internal/event"
	"calendar-assistant/internal/model"
)

const whenLayout = "January 02 at 03:04 PM"

const welcomeText = `👋 Welcome to your Personal Calendar Assistant!

I help you manage your calendar with simple commands.

📅 Event Commands:
/event <title> @ <date> <start[-end]> [#location] [!description] [r<mins>] - Build a shareable .ics invite
/addevent <description> - Add a new event
/editevent <description> - Edit an existing event
/deleteevent <description> - Delete an event
/events - Show next 30 days

⏰ Reminder Commands:
/remindme <description> - Set a reminder
/listreminders - Show all reminders
/deletereminder <description> - Delete a reminder

💬 Other Commands:
/ask <question> - Ask me anything
/account - Check connected account
/help - Show this message

Examples:
/event Team Sync @ 25-08 10:00 AM-11:15 AM #Office r15
/addevent Dinner with Zahra tomorrow at 9 pm
/remindme Call dentist on the 19th at 6:30 PM
/deleteevent graduation day

Just use the commands naturally! 🎯`

const greetingText = "👋 Hi there! How can I help you today?\n\nUse /help to see all available commands!"

const unknownText = "🤔 I don't recognize that command.\n\nUse /help to see all available commands!"

// needsPrompt maps an incomplete parse outcome to a targeted follow-up.
func needsPrompt(need event.Need) string {
	switch need {
	case event.NeedSchedule:
		return "Add schedule after '@'. Example:\n/event Team Sync @ 25-08 10:00 AM-11:00 AM"
	case event.NeedDateTime:
		return "Add date and time after '@'. Example:\n/event Team Sync @ 25-08 10:00 AM-11:00 AM"
	case event.NeedDate:
		return "Could not parse the date. Try formats: DD-MM, DD/MM, or YYYY-MM-DD."
	case event.NeedTime:
		return "Could not parse the time. Try 12h like '2 PM' or '2:30 PM'."
	case event.NeedTimeRange:
		return "Could not parse time range. Use '10:00 AM-11:15 AM' or similar."
	default:
		return "Please provide title, date, and time."
	}
}

// formatWhen renders an event's start for chat messages.
func formatWhen(ev model.CalendarEvent) string {
	if ev.AllDay {
		return ev.Start.Format("January 02") + " (All day)"
	}
	return ev.Start.Format(whenLayout)
}

// inviteSummary echoes what the strict parser understood before the .ics is
// sent.
func inviteSummary(out event.InviteOutput) string {
	in := out.Intent

	end := "+60m"
	if in.EndTime != nil && in.EndTime.After(*in.StartTime) {
		end = in.EndTime.String()
	}
	location := in.Location
	if location == "" {
		location = "-"
	}

	return fmt.Sprintf(
		"Event ready ✅\n- Title: %s\n- When: %s %s–%s\n- TZ: %s\n- Location: %s\n- Reminder: %d min\n\nSending .ics…",
		in.Title,
		in.Date.Format("02 Jan 2006"),
		in.StartTime.String(),
		end,
		in.Timezone,
		location,
		in.ReminderMinutes,
	)
}
