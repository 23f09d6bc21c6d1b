package parser

import (
	"time"

	"calendar-assistant/internal/event"
	"calendar-assistant/pkg/datemath"
)

// Natural parses free text like "Dinner with Zahra tomorrow at 9 pm" by
// scanning for date/time cues and deriving a title from what remains.
type Natural struct {
	dm       *datemath.Parser
	timezone string
}

// NewNatural creates the free-text strategy on top of the given date resolver.
func NewNatural(dm *datemath.Parser, timezone string) *Natural {
	return &Natural{
		dm:       dm,
		timezone: timezone,
	}
}

// Parse resolves free text into an outcome. Date resolution never fails —
// with no cue at all the reference day is used — so the outcome is always
// complete; an absent time means an all-day intent.
func (n *Natural) Parse(raw string, now time.Time) event.Outcome {
	res := n.dm.Resolve(raw, now)

	return event.Outcome{
		Intent: event.Intent{
			Title:     datemath.ExtractTitle(raw),
			Date:      res.Date,
			StartTime: res.Time,
			Timezone:  n.timezone,
		},
	}
}
