package usecase

import (
	"context"
	"strings"
	"time"

	"calendar-assistant/internal/event"
	"calendar-assistant/internal/event/repository"
	"calendar-assistant/internal/model"
)

// reminderPrefix marks calendar events that are reminders, so the two kinds
// can share one calendar without mixing in listings.
const reminderPrefix = "🔔 "

const (
	reminderDuration   = 15 * time.Minute
	reminderWindowDays = 60  // how far ahead reminders are listed
	searchWindowDays   = 365 // how far ahead keyword matching looks
)

// editStopWords are verbs and date words that never identify an event.
var editStopWords = map[string]struct{}{
	"change":   {},
	"update":   {},
	"move":     {},
	"next":     {},
	"this":     {},
	"that":     {},
	"tomorrow": {},
	"today":    {},
}

func (uc *implUseCase) now() time.Time {
	return time.Now().In(uc.dateMath.Location())
}

// eventWindow anchors an intent onto concrete start/end instants. An intent
// without a time becomes an all-day event.
func (uc *implUseCase) eventWindow(in event.Intent) (start, end time.Time, allDay bool) {
	if in.StartTime == nil {
		return in.Date, in.Date, true
	}
	start = in.StartTime.At(in.Date, uc.dateMath.Location())
	return start, start.Add(uc.cfg.DefaultDuration), false
}

// editKeywords picks up to three identifying words from an edit command,
// skipping short words and the ones that describe the change itself.
func editKeywords(text string) []string {
	keywords := make([]string, 0, 3)
	for _, w := range strings.Fields(strings.ToLower(text)) {
		if len(w) <= 3 {
			continue
		}
		if _, skip := editStopWords[w]; skip {
			continue
		}
		keywords = append(keywords, w)
		if len(keywords) == 3 {
			break
		}
	}
	return keywords
}

// findEventByKeywords returns the first upcoming non-reminder event whose
// title contains any of the keywords.
func (uc *implUseCase) findEventByKeywords(ctx context.Context, keywords []string) (model.CalendarEvent, error) {
	events, err := uc.repo.List(ctx, repository.ListEventsOptions{
		From: uc.now(),
		To:   uc.now().AddDate(0, 0, searchWindowDays),
	})
	if err != nil {
		return model.CalendarEvent{}, err
	}

	for _, ev := range events {
		if strings.HasPrefix(ev.Title, reminderPrefix) {
			continue
		}
		if matchesAny(ev.Title, keywords) {
			return ev, nil
		}
	}
	return model.CalendarEvent{}, event.ErrEventNotFound
}

// findReminderByKeywords returns the first upcoming reminder whose title
// contains any of the keywords.
func (uc *implUseCase) findReminderByKeywords(ctx context.Context, keywords []string) (model.CalendarEvent, error) {
	reminders, err := uc.listReminderEvents(ctx)
	if err != nil {
		return model.CalendarEvent{}, err
	}

	for _, ev := range reminders {
		if matchesAny(ev.Title, keywords) {
			return ev, nil
		}
	}
	return model.CalendarEvent{}, event.ErrReminderNotFound
}

// listReminderEvents returns upcoming reminder events, marker prefix intact.
func (uc *implUseCase) listReminderEvents(ctx context.Context) ([]model.CalendarEvent, error) {
	events, err := uc.repo.List(ctx, repository.ListEventsOptions{
		From: uc.now(),
		To:   uc.now().AddDate(0, 0, reminderWindowDays),
	})
	if err != nil {
		return nil, err
	}

	reminders := make([]model.CalendarEvent, 0, len(events))
	for _, ev := range events {
		if strings.HasPrefix(ev.Title, reminderPrefix) {
			reminders = append(reminders, ev)
		}
	}
	return reminders, nil
}

func matchesAny(title string, keywords []string) bool {
	lower := strings.ToLower(title)
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
