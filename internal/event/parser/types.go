// Package parser turns raw command text into event intents. Two strategies
// share the same output shape: Strict reads a fixed-delimiter one-liner,
// Natural scans free text for date/time cues. Callers pick the strategy by
// command, never by inspecting the text.
package parser

import (
	"time"

	"calendar-assistant/internal/event"
)

// Strategy resolves raw command text into a parse outcome. now anchors all
// relative and year-less date resolution.
type Strategy interface {
	Parse(raw string, now time.Time) event.Outcome
}
