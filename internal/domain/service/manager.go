package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/standupbot/slack-standup-bot/internal/calendar"
	"github.com/standupbot/slack-standup-bot/internal/domain"
	"github.com/standupbot/slack-standup-bot/internal/domain/contract"
	"github.com/standupbot/slack-standup-bot/internal/domain/entity"
	"github.com/standupbot/slack-standup-bot/internal/schedule"
	"github.com/standupbot/slack-standup-bot/internal/summary"
)

const dateLayout = "2006-01-02"

const defaultMaxWorkers = 8

// actionKind is one of the three scheduled actions per standup. The fixed
// set is dispatched through a single switch so a new action cannot be
// added without handling it everywhere.
type actionKind int

const (
	actionPrompt actionKind = iota
	actionReminder
	actionSummary
)

func (k actionKind) String() string {
	switch k {
	case actionPrompt:
		return "prompt"
	case actionReminder:
		return "reminder"
	case actionSummary:
		return "summary"
	}
	return "unknown"
}

// taskID is the stable engine key for one standup action, e.g. "prompt_3".
func (k actionKind) taskID(standupID int64) string {
	return fmt.Sprintf("%s_%d", k, standupID)
}

var allActions = []actionKind{actionPrompt, actionReminder, actionSummary}

type standupService struct {
	dm         contract.DataManager
	messenger  contract.Messenger
	summarizer contract.SummaryGenerator
	fallback   contract.SummaryGenerator
	engine     *schedule.Engine
	holidays   *calendar.HolidayCalendar
	ooo        *calendar.OOORegistry
	log        *zap.Logger
	now        func() time.Time

	// bounded pool for action callbacks so a slow Slack or summary call
	// cannot stall the tick loop
	workers *errgroup.Group
	// two actions for the same standup must not run concurrently
	standupLocks sync.Map // standupID -> *sync.Mutex
}

func newStandupService(dm contract.DataManager, messenger contract.Messenger,
	summarizer contract.SummaryGenerator, engine *schedule.Engine,
	holidays *calendar.HolidayCalendar, ooo *calendar.OOORegistry,
	log *zap.Logger, o *options) *standupService {

	workers := &errgroup.Group{}
	workers.SetLimit(o.maxWorkers)

	return &standupService{
		dm:         dm,
		messenger:  messenger,
		summarizer: summarizer,
		fallback:   summary.NewManualGenerator(),
		engine:     engine,
		holidays:   holidays,
		ooo:        ooo,
		log:        log,
		now:        o.now,
		workers:    workers,
	}
}

// Init rebuilds all derived scheduler state from storage: custom holidays,
// OOO periods, and one set of tasks per active standup. Scheduled tasks
// themselves are never persisted.
func (s *standupService) Init(ctx context.Context) error {
	holidays, err := s.dm.Holiday().GetAll()
	if err != nil {
		return fmt.Errorf("failed to load custom holidays: %w", err)
	}
	for _, h := range holidays {
		if err := s.holidays.AddCustomHoliday(h.Date, h.Name); err != nil {
			s.log.Warn("skipping stored custom holiday", zap.String("date", h.Date), zap.Error(err))
		}
	}

	periods, err := s.dm.OOO().GetAll()
	if err != nil {
		return fmt.Errorf("failed to load ooo periods: %w", err)
	}
	for _, p := range periods {
		s.ooo.Load(*p)
	}

	standups, err := s.dm.Standup().GetActive()
	if err != nil {
		return fmt.Errorf("failed to load active standups: %w", err)
	}
	for _, st := range standups {
		if err := s.Activate(ctx, st.ID); err != nil {
			// one broken config must not block the rest
			s.log.Error("failed to activate standup at startup",
				zap.Int64("standup_id", st.ID), zap.Error(err))
		}
	}

	s.log.Info("scheduler state rebuilt",
		zap.Int("standups", len(standups)),
		zap.Int("ooo_periods", len(periods)),
		zap.Int("custom_holidays", len(holidays)))
	return nil
}

// StartScheduler runs the engine tick loop until ctx is done. Due
// callbacks are executed on the bounded worker pool.
func (s *standupService) StartScheduler(ctx context.Context, tickInterval time.Duration) {
	go s.engine.Run(ctx, tickInterval, s.dispatch)
}

func (s *standupService) dispatch(d schedule.Due) {
	s.workers.Go(func() error {
		defer func() {
			if r := recover(); r != nil {
				s.log.Error("scheduled action panicked", zap.String("task_id", d.ID), zap.Any("panic", r))
			}
		}()
		if err := d.Run(d.FiredAt); err != nil {
			s.log.Error("scheduled action failed", zap.String("task_id", d.ID), zap.Error(err))
		}
		return nil
	})
}

func (s *standupService) lockFor(standupID int64) *sync.Mutex {
	mu, _ := s.standupLocks.LoadOrStore(standupID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// buildPattern derives the standup's recurrence pattern: a stored pattern
// document when present, otherwise the legacy days/time/timezone shape.
func (s *standupService) buildPattern(standup *entity.Standup) (*schedule.Pattern, error) {
	if standup.PatternJSON != "" {
		return schedule.ParseConfigJSON(standup.PatternJSON)
	}

	days, err := domain.ParseDayFilter(standup.Days)
	if err != nil {
		return nil, err
	}
	var names []string
	for d := time.Monday; d <= time.Saturday; d++ {
		if days[d] {
			names = append(names, domain.WeekdayNames[d])
		}
	}
	if days[time.Sunday] {
		names = append(names, domain.WeekdayNames[time.Sunday])
	}
	return schedule.FromLegacy(names, standup.ScheduleTime, standup.Timezone)
}

// shouldRun is the day gate applied before every scheduled action: the
// date's weekday must pass the standup's day filter, and holidays are
// skipped when configured. OOO state never suppresses a run; it only
// shows up in conflict reports.
func (s *standupService) shouldRun(date time.Time, standup *entity.Standup) bool {
	days, err := domain.ParseDayFilter(standup.Days)
	if err != nil {
		s.log.Warn("invalid day filter, skipping run",
			zap.Int64("standup_id", standup.ID), zap.Error(err))
		return false
	}
	if !days[date.Weekday()] {
		return false
	}
	if standup.SkipHolidays && s.holidays.IsHoliday(date, standup.HolidayCountry) {
		return false
	}
	return true
}

// Activate builds the standup's pattern and registers its prompt, reminder
// and summary tasks, replacing any previous registration wholesale so the
// three task times can never drift apart.
func (s *standupService) Activate(ctx context.Context, standupID int64) error {
	standup, err := s.dm.Standup().GetByID(standupID)
	if err != nil {
		return err
	}
	if standup == nil {
		return fmt.Errorf("standup %d not found", standupID)
	}

	if !standup.IsActive {
		if err := s.dm.Standup().SetActive(standupID, true); err != nil {
			return err
		}
	}

	pattern, err := s.buildPattern(standup)
	if err != nil {
		return fmt.Errorf("invalid schedule for standup %d: %w", standupID, err)
	}

	duration := time.Duration(standup.DurationSeconds) * time.Second
	if duration <= 0 {
		duration = time.Duration(domain.DefaultDurationSeconds) * time.Second
	}
	reminderOffset := duration - domain.ReminderLead
	if reminderOffset <= 0 {
		reminderOffset = duration / 2
	}

	offsets := map[actionKind]time.Duration{
		actionPrompt:   0,
		actionReminder: reminderOffset,
		actionSummary:  duration,
	}
	for _, kind := range allActions {
		scheduled := s.engine.ScheduleWithOffset(kind.taskID(standupID), pattern, offsets[kind], s.actionFunc(kind, standupID))
		if !scheduled {
			// exhausted pattern (expired end date or past one-time date)
			s.cancelTasks(standupID)
			s.log.Info("standup schedule has no future occurrences",
				zap.Int64("standup_id", standupID))
			return nil
		}
	}

	if next, ok := s.engine.NextRun(actionPrompt.taskID(standupID)); ok {
		s.log.Info("standup activated",
			zap.Int64("standup_id", standupID),
			zap.Time("next_prompt", next))
	}
	return nil
}

// Deactivate soft-disables the standup and unregisters all of its tasks.
func (s *standupService) Deactivate(ctx context.Context, standupID int64) error {
	if err := s.dm.Standup().SetActive(standupID, false); err != nil {
		return err
	}
	s.cancelTasks(standupID)
	s.log.Info("standup deactivated", zap.Int64("standup_id", standupID))
	return nil
}

// Reconfigure fully rebuilds the standup's tasks from current
// configuration. There is no partial-update path.
func (s *standupService) Reconfigure(ctx context.Context, standupID int64) error {
	s.cancelTasks(standupID)
	return s.Activate(ctx, standupID)
}

func (s *standupService) cancelTasks(standupID int64) {
	for _, kind := range allActions {
		s.engine.Cancel(kind.taskID(standupID))
	}
}

// actionFunc wraps one domain action with the day gate and the
// per-standup serialization lock.
func (s *standupService) actionFunc(kind actionKind, standupID int64) schedule.TaskFunc {
	return func(firedAt time.Time) error {
		mu := s.lockFor(standupID)
		mu.Lock()
		defer mu.Unlock()

		standup, err := s.dm.Standup().GetByID(standupID)
		if err != nil {
			return err
		}
		if standup == nil || !standup.IsActive {
			s.log.Info("skipping action for inactive standup",
				zap.Int64("standup_id", standupID), zap.String("action", kind.String()))
			return nil
		}

		loc := time.UTC
		if l, lerr := time.LoadLocation(standup.Timezone); lerr == nil {
			loc = l
		}
		today := s.now().In(loc)
		if !s.shouldRun(today, standup) {
			s.log.Info("day gate suppressed action",
				zap.Int64("standup_id", standupID),
				zap.String("action", kind.String()),
				zap.String("date", today.Format(dateLayout)))
			return nil
		}

		switch kind {
		case actionPrompt:
			return s.sendPrompts(standup, today)
		case actionReminder:
			return s.sendReminders(standup, today)
		case actionSummary:
			return s.postSummary(standup, today)
		}
		return fmt.Errorf("unknown action %d", kind)
	}
}

// lastStandupLabel phrases "what did you do <X>?" correctly across
// weekends and holidays by walking back through the same day gate.
func (s *standupService) lastStandupLabel(standup *entity.Standup, today time.Time) string {
	for i := 1; i <= domain.LastStandupLookbackDays; i++ {
		date := today.AddDate(0, 0, -i)
		if !s.shouldRun(date, standup) {
			continue
		}
		switch {
		case i == 1:
			return "yesterday"
		case i < 7:
			return "on " + domain.WeekdayNames[date.Weekday()]
		default:
			return "on " + date.Format(dateLayout)
		}
	}
	return "since the last standup"
}

// NextRun reports the next prompt time for a standup, formatted in the
// standup's timezone.
func (s *standupService) NextRun(standupID int64) (string, bool) {
	next, ok := s.engine.NextRun(actionPrompt.taskID(standupID))
	if !ok {
		return "", false
	}

	standup, err := s.dm.Standup().GetByID(standupID)
	if err == nil && standup != nil {
		if loc, lerr := time.LoadLocation(standup.Timezone); lerr == nil {
			next = next.In(loc)
		}
	}
	return next.Format("2006-01-02 15:04 MST"), true
}

// CreateStandup applies defaults, validates the schedule, persists the
// standup and registers its tasks.
func (s *standupService) CreateStandup(ctx context.Context, standup *entity.Standup) error {
	if standup.Name == "" {
		standup.Name = "Daily standup"
	}
	if len(standup.Questions) == 0 {
		standup.Questions = append([]string(nil), domain.DefaultQuestions...)
	}
	if standup.ScheduleTime == "" {
		standup.ScheduleTime = domain.DefaultScheduleTime
	}
	if standup.Timezone == "" {
		standup.Timezone = domain.DefaultTimezone
	}
	if standup.Days == "" {
		standup.Days = domain.DefaultDays
	}
	if standup.DurationSeconds == 0 {
		standup.DurationSeconds = domain.DefaultDurationSeconds
	}
	if standup.HolidayCountry == "" {
		standup.HolidayCountry = domain.DefaultHolidayCountry
	}
	standup.IsActive = true

	if _, err := s.buildPattern(standup); err != nil {
		return fmt.Errorf("invalid schedule: %w", err)
	}

	existing, err := s.dm.Standup().GetBySlackChannelID(standup.SlackChannelID)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("channel already has a standup (%s)", existing.Name)
	}

	if err := s.dm.Standup().Create(standup); err != nil {
		return err
	}
	return s.Activate(ctx, standup.ID)
}

func (s *standupService) GetStandup(standupID int64) (*entity.Standup, error) {
	return s.dm.Standup().GetByID(standupID)
}

func (s *standupService) GetStandupByChannel(slackChannelID string) (*entity.Standup, error) {
	return s.dm.Standup().GetBySlackChannelID(slackChannelID)
}

// UpdateConfig mutates one configuration field, validates the result by
// rebuilding the pattern, persists it and rebuilds the scheduled tasks.
func (s *standupService) UpdateConfig(ctx context.Context, standupID int64, configType, configValue string) error {
	standup, err := s.dm.Standup().GetByID(standupID)
	if err != nil {
		return err
	}
	if standup == nil {
		return fmt.Errorf("standup %d not found", standupID)
	}

	switch strings.ToLower(configType) {
	case "time":
		standup.ScheduleTime = configValue
	case "days":
		standup.Days = configValue
	case "timezone":
		standup.Timezone = configValue
	case "country":
		standup.HolidayCountry = configValue
	case "skipholidays":
		enabled, perr := strconv.ParseBool(configValue)
		if perr != nil {
			return fmt.Errorf("skipholidays must be true or false, got %q", configValue)
		}
		standup.SkipHolidays = enabled
	case "name":
		standup.Name = configValue
	default:
		return fmt.Errorf("unknown config option %q (expected time, days, timezone, country, skipholidays or name)", configType)
	}

	if _, err := s.buildPattern(standup); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := s.dm.Standup().Update(standup); err != nil {
		return err
	}
	if standup.IsActive {
		return s.Reconfigure(ctx, standupID)
	}
	return nil
}

func (s *standupService) AddParticipant(ctx context.Context, standupID int64, slackUserID string) error {
	standup, err := s.dm.Standup().GetByID(standupID)
	if err != nil {
		return err
	}
	if standup == nil {
		return fmt.Errorf("standup %d not found", standupID)
	}

	for _, id := range standup.Participants {
		if id == slackUserID {
			return fmt.Errorf("user is already a participant")
		}
	}
	standup.Participants = append(standup.Participants, slackUserID)
	return s.dm.Standup().Update(standup)
}

func (s *standupService) RemoveParticipant(ctx context.Context, standupID int64, slackUserID string) error {
	standup, err := s.dm.Standup().GetByID(standupID)
	if err != nil {
		return err
	}
	if standup == nil {
		return fmt.Errorf("standup %d not found", standupID)
	}

	for i, id := range standup.Participants {
		if id == slackUserID {
			standup.Participants = append(standup.Participants[:i], standup.Participants[i+1:]...)
			return s.dm.Standup().Update(standup)
		}
	}
	return fmt.Errorf("user is not a participant")
}

// RecordResponse stores a participant's update for today in the standup's
// timezone. Resubmitting replaces the earlier answer.
func (s *standupService) RecordResponse(ctx context.Context, standupID int64, slackUserID, content string) error {
	standup, err := s.dm.Standup().GetByID(standupID)
	if err != nil {
		return err
	}
	if standup == nil {
		return fmt.Errorf("standup %d not found", standupID)
	}

	loc := time.UTC
	if l, lerr := time.LoadLocation(standup.Timezone); lerr == nil {
		loc = l
	}

	return s.dm.WithTransaction(ctx, func(dm contract.DataManager) error {
		return dm.Response().Upsert(&entity.Response{
			StandupID:    standupID,
			SlackUserID:  slackUserID,
			ResponseDate: s.now().In(loc).Format(dateLayout),
			Content:      content,
		})
	})
}

// GetResponses returns the responses recorded for a standup on a date.
func (s *standupService) GetResponses(standupID int64, date string) ([]*entity.Response, error) {
	return s.dm.Response().GetByStandupAndDate(standupID, date)
}

// CheckScheduleConflicts scans upcoming occurrences for holidays, weekends
// and participant OOO overlaps. Findings are advisory and never block.
func (s *standupService) CheckScheduleConflicts(standupID int64, startDate, endDate string) (*entity.ConflictReport, error) {
	standup, err := s.dm.Standup().GetByID(standupID)
	if err != nil {
		return nil, err
	}
	if standup == nil {
		return nil, fmt.Errorf("standup %d not found", standupID)
	}

	pattern, err := s.buildPattern(standup)
	if err != nil {
		return nil, err
	}

	detector := schedule.NewConflictDetector(s.holidays, s.ooo, standup.HolidayCountry)
	return detector.CheckConflicts(pattern, standup.Participants, startDate, endDate)
}

// AddUserOOO registers and persists an out-of-office period.
func (s *standupService) AddUserOOO(ctx context.Context, slackUserID, startDate, endDate, reason string) (*entity.OOOPeriod, error) {
	period, err := s.ooo.AddPeriod(slackUserID, startDate, endDate, reason)
	if err != nil {
		return nil, err
	}
	if err := s.dm.OOO().Create(&period); err != nil {
		s.ooo.Remove(slackUserID, period.ID)
		return nil, err
	}
	return &period, nil
}

// RemoveUserOOO removes the period exactly matching the given range.
// Overlapping periods are independent; only the matched one goes away.
func (s *standupService) RemoveUserOOO(ctx context.Context, slackUserID, startDate, endDate string) error {
	periods, err := s.dm.OOO().GetByUser(slackUserID)
	if err != nil {
		return err
	}
	for _, p := range periods {
		if p.StartDate == startDate && p.EndDate == endDate {
			if err := s.dm.OOO().Delete(p.ID); err != nil {
				return err
			}
			s.ooo.Remove(slackUserID, p.ID)
			return nil
		}
	}
	return fmt.Errorf("no ooo period %s to %s for user", startDate, endDate)
}

// AddCustomHoliday registers and persists a holiday override.
func (s *standupService) AddCustomHoliday(ctx context.Context, date, name string) error {
	if err := s.holidays.AddCustomHoliday(date, name); err != nil {
		return err
	}
	return s.dm.Holiday().Upsert(&entity.CustomHoliday{Date: date, Name: name})
}
