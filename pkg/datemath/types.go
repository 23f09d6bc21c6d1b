package datemath

import (
	"time"

	"calendar-assistant/pkg/timeofday"
)

// Resolution holds the outcome of resolving free text.
// Date is always set; Time is nil when no clock expression was found.
type Resolution struct {
	Date time.Time
	Time *timeofday.Time
}
