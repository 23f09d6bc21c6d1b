package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"calendar-assistant/internal/event"
	"calendar-assistant/pkg/dateparse"
	"calendar-assistant/pkg/timeofday"
)

// StrictPlaceholderTitle is used when the one-liner carries no title text.
const StrictPlaceholderTitle = "Untitled"

var (
	// reminderRe matches a standalone r<digits> token anywhere in the text.
	reminderRe = regexp.MustCompile(`(?i)\br(\d+)\b`)

	// locationRe captures text after '#' up to the next control character.
	locationRe = regexp.MustCompile(`#([^!@r]+)`)

	// descriptionRe captures text after '!' to end of string.
	descriptionRe = regexp.MustCompile(`!(.+)$`)
)

// Strict parses the one-liner grammar:
//
//	/event <title> @ <date> <start[-end]> [#location] [!description] [r<mins>]
//
// Fields are carved out strictly left to right, so later extractions never
// see text already claimed by earlier ones.
type Strict struct {
	timezone    string
	maxReminder int
}

// NewStrict creates the strict one-liner strategy.
func NewStrict(timezone string, maxReminder int) *Strict {
	return &Strict{
		timezone:    timezone,
		maxReminder: maxReminder,
	}
}

// Parse resolves a strict command into an outcome. Every failure mode is a
// distinct Needs tag; the partially filled intent is kept so the caller can
// echo what was understood.
func (s *Strict) Parse(raw string, now time.Time) event.Outcome {
	text := stripCommandToken(strings.TrimSpace(raw))

	intent := event.Intent{Timezone: s.timezone}

	// Reminder first: r<digits> is removed before the location scan so a
	// trailing "r15" never truncates "#Office r15".
	if m := reminderRe.FindStringSubmatchIndex(text); m != nil {
		mins, _ := strconv.Atoi(text[m[2]:m[3]])
		intent.ReminderMinutes = clampReminder(mins, s.maxReminder)
		text = strings.TrimSpace(text[:m[0]] + " " + text[m[1]:])
	}

	if m := locationRe.FindStringSubmatch(text); m != nil {
		intent.Location = strings.TrimSpace(m[1])
		text = strings.TrimSpace(strings.Replace(text, m[0], "", 1))
	}

	if m := descriptionRe.FindStringSubmatchIndex(text); m != nil {
		intent.Description = strings.TrimSpace(text[m[2]:m[3]])
		text = strings.TrimSpace(text[:m[0]])
	}

	titlePart, schedulePart, found := strings.Cut(text, "@")
	intent.Title = orPlaceholder(strings.TrimSpace(titlePart))
	if !found {
		return event.Outcome{Intent: intent, Needs: event.NeedSchedule}
	}

	// Schedule: first token is the date, everything after it is the time
	// expression (12-hour ranges like "10:00 AM-11:15 AM" contain spaces).
	fields := strings.Fields(schedulePart)
	if len(fields) < 2 {
		return event.Outcome{Intent: intent, Needs: event.NeedDateTime}
	}
	dateToken := fields[0]
	timeToken := strings.Join(fields[1:], " ")

	date, err := dateparse.Parse(dateToken, now)
	if err != nil {
		return event.Outcome{Intent: intent, Needs: event.NeedDate}
	}
	intent.Date = date

	if strings.Contains(timeToken, "-") {
		startToken, endToken, _ := strings.Cut(timeToken, "-")
		start, startErr := timeofday.Parse(strings.TrimSpace(startToken))
		end, endErr := timeofday.Parse(strings.TrimSpace(endToken))
		if startErr != nil || endErr != nil {
			return event.Outcome{Intent: intent, Needs: event.NeedTimeRange}
		}
		intent.StartTime = &start
		intent.EndTime = &end
		return event.Outcome{Intent: intent}
	}

	start, err := timeofday.Parse(timeToken)
	if err != nil {
		return event.Outcome{Intent: intent, Needs: event.NeedTime}
	}
	intent.StartTime = &start

	return event.Outcome{Intent: intent}
}

// stripCommandToken removes a leading slash command like "/event".
func stripCommandToken(text string) string {
	if !strings.HasPrefix(text, "/") {
		return text
	}
	if i := strings.IndexFunc(text, func(r rune) bool { return r == ' ' || r == '\t' }); i >= 0 {
		return strings.TrimSpace(text[i:])
	}
	return ""
}

func clampReminder(mins, limit int) int {
	if mins < 0 {
		return 0
	}
	if mins > limit {
		return limit
	}
	return mins
}

func orPlaceholder(title string) string {
	if title == "" {
		return StrictPlaceholderTitle
	}
	return title
}
