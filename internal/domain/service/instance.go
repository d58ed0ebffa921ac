package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/standupbot/slack-standup-bot/internal/calendar"
	"github.com/standupbot/slack-standup-bot/internal/domain/contract"
	"github.com/standupbot/slack-standup-bot/internal/schedule"
)

// Instance wires the scheduling core to its collaborators. Everything
// long-lived is constructed exactly once here and passed by reference;
// there are no package-level singletons.
type Instance struct {
	Standup *standupService

	engine   *schedule.Engine
	holidays *calendar.HolidayCalendar
	ooo      *calendar.OOORegistry
}

// Option configures an Instance.
type Option func(*options)

type options struct {
	now        func() time.Time
	maxWorkers int
}

// WithClock overrides the wall-clock source, used by tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithMaxWorkers bounds the pool executing scheduled action callbacks.
func WithMaxWorkers(n int) Option {
	return func(o *options) { o.maxWorkers = n }
}

func NewInstance(dm contract.DataManager, messenger contract.Messenger,
	summarizer contract.SummaryGenerator, log *zap.Logger, opts ...Option) *Instance {

	o := &options{now: time.Now, maxWorkers: defaultMaxWorkers}
	for _, opt := range opts {
		opt(o)
	}

	engine := schedule.NewEngine(log.Named("engine"), schedule.WithClock(o.now))
	holidays := calendar.NewHolidayCalendar(log.Named("holidays"))
	ooo := calendar.NewOOORegistry()

	return &Instance{
		Standup:  newStandupService(dm, messenger, summarizer, engine, holidays, ooo, log.Named("standup"), o),
		engine:   engine,
		holidays: holidays,
		ooo:      ooo,
	}
}
