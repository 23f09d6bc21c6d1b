package usecase

import (
	"time"

	"calendar-assistant/internal/event/parser"
	"calendar-assistant/internal/event/repository"
	"calendar-assistant/pkg/datemath"
	"calendar-assistant/pkg/gemini"
	"calendar-assistant/pkg/ics"
	pkgLog "calendar-assistant/pkg/log"
)

// Config carries the event domain tunables.
type Config struct {
	Timezone           string // IANA zone, e.g. "Asia/Kolkata"
	MaxReminderMinutes int
	DefaultDuration    time.Duration // applied when no end time is given
	ListWindowDays     int           // window for the event listing
}

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.CalendarRepository
	llm      *gemini.Client
	dateMath *datemath.Parser
	strict   *parser.Strict
	natural  *parser.Natural
	ics      *ics.Builder
	cfg      Config
}

// New creates a new event UseCase instance. repo and llm may be nil when the
// corresponding backend is not configured; the operations that need them then
// fail with ErrCalendarDisabled / ErrAssistantDisabled.
func New(
	l pkgLog.Logger,
	repo repository.CalendarRepository,
	llm *gemini.Client,
	dateMath *datemath.Parser,
	icsBuilder *ics.Builder,
	cfg Config,
) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		llm:      llm,
		dateMath: dateMath,
		strict:   parser.NewStrict(cfg.Timezone, cfg.MaxReminderMinutes),
		natural:  parser.NewNatural(dateMath, cfg.Timezone),
		ics:      icsBuilder,
		cfg:      cfg,
	}
}
