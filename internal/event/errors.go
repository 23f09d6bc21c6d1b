package event

import "errors"

// Domain-specific errors for the event package.
var (
	ErrEmptyInput        = errors.New("input text is empty")
	ErrMissingTime       = errors.New("no time found in input")
	ErrNoKeywords        = errors.New("no usable keywords in input")
	ErrEventNotFound     = errors.New("no matching event found")
	ErrReminderNotFound  = errors.New("no matching reminder found")
	ErrCalendarDisabled  = errors.New("calendar backend is not configured")
	ErrAssistantDisabled = errors.New("assistant backend is not configured")
)
