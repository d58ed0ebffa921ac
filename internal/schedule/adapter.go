package schedule

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/standupbot/slack-standup-bot/internal/domain"
)

// PatternConfig is the stored JSON shape of a pattern. It doubles as the
// wire format for the legacy `schedule` dict: a document without a
// pattern_type is treated as the old weekly days/time/timezone shape.
type PatternConfig struct {
	PatternType string   `json:"pattern_type,omitempty"`
	Time        string   `json:"time"`
	Timezone    string   `json:"timezone,omitempty"`
	Interval    int      `json:"interval,omitempty"`
	Days        []string `json:"days,omitempty"`
	Day         int      `json:"day,omitempty"`
	NthWeekday  string   `json:"nth_weekday,omitempty"`
	Month       int      `json:"month,omitempty"`
	Date        string   `json:"date,omitempty"`
	EndDate     string   `json:"end_date,omitempty"`
	Exclusions  []string `json:"exclusions,omitempty"`
	Duration    int      `json:"duration,omitempty"` // seconds, carried for storage only
}

// newPattern validates the fields shared by every kind.
func newPattern(kind Kind, timeStr, tz string, interval int, exclusions []string) (*Pattern, error) {
	hour, minute, err := parseClock(timeStr)
	if err != nil {
		return nil, err
	}
	if tz == "" {
		tz = domain.DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", tz, err)
	}
	if interval == 0 {
		interval = 1
	}
	if interval < 0 {
		return nil, fmt.Errorf("interval must be positive, got %d", interval)
	}

	excl := make(map[string]bool, len(exclusions))
	for _, d := range exclusions {
		if _, err := parseDate(d); err != nil {
			return nil, fmt.Errorf("invalid exclusion: %w", err)
		}
		excl[d] = true
	}

	return &Pattern{
		kind:       kind,
		hour:       hour,
		minute:     minute,
		tzName:     tz,
		loc:        loc,
		interval:   interval,
		exclusions: excl,
	}, nil
}

// NewDailyPattern creates a pattern firing every `interval` days.
func NewDailyPattern(timeStr, tz string, interval int, exclusions []string) (*Pattern, error) {
	return newPattern(KindDaily, timeStr, tz, interval, exclusions)
}

// NewWeeklyPattern creates a pattern firing on the given weekdays every
// `interval` weeks. Day names follow the domain weekday vocabulary.
func NewWeeklyPattern(days []string, timeStr, tz string, interval int, exclusions []string) (*Pattern, error) {
	p, err := newPattern(KindWeekly, timeStr, tz, interval, exclusions)
	if err != nil {
		return nil, err
	}
	weekdays, err := domain.ParseDayList(days)
	if err != nil {
		return nil, fmt.Errorf("invalid weekly pattern: %w", err)
	}
	p.weekdays = weekdays
	return p, nil
}

// NewMonthlyPattern creates a pattern firing on a fixed day of the month.
// Months shorter than `day` are skipped, not clamped.
func NewMonthlyPattern(day int, timeStr, tz string, interval int, exclusions []string) (*Pattern, error) {
	if day < 1 || day > 31 {
		return nil, fmt.Errorf("day of month must be 1-31, got %d", day)
	}
	p, err := newPattern(KindMonthly, timeStr, tz, interval, exclusions)
	if err != nil {
		return nil, err
	}
	p.monthDay = day
	return p, nil
}

// NewMonthlyNthWeekdayPattern creates a pattern firing on an nth weekday of
// the month, e.g. "first monday" or "last friday".
func NewMonthlyNthWeekdayPattern(nthStr, timeStr, tz string, interval int, exclusions []string) (*Pattern, error) {
	nth, err := parseNthWeekday(nthStr)
	if err != nil {
		return nil, err
	}
	p, err := newPattern(KindMonthly, timeStr, tz, interval, exclusions)
	if err != nil {
		return nil, err
	}
	p.nth = &nth
	return p, nil
}

// NewYearlyPattern creates a pattern firing on a fixed month and day every
// `interval` years.
func NewYearlyPattern(month, day int, timeStr, tz string, interval int, exclusions []string) (*Pattern, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month must be 1-12, got %d", month)
	}
	if day < 1 || day > 31 {
		return nil, fmt.Errorf("day of month must be 1-31, got %d", day)
	}
	p, err := newPattern(KindYearly, timeStr, tz, interval, exclusions)
	if err != nil {
		return nil, err
	}
	p.month = time.Month(month)
	p.monthDay = day
	return p, nil
}

// NewOneTimePattern creates a pattern with a single occurrence.
func NewOneTimePattern(date, timeStr, tz string) (*Pattern, error) {
	if _, err := parseDate(date); err != nil {
		return nil, err
	}
	p, err := newPattern(KindOneTime, timeStr, tz, 1, nil)
	if err != nil {
		return nil, err
	}
	p.date = date
	return p, nil
}

// FromLegacy converts the legacy weekly schedule shape (day list + time +
// timezone) into a weekly pattern. This is the only runtime trace of the
// old scheduler format.
func FromLegacy(days []string, timeStr, tz string) (*Pattern, error) {
	if len(days) == 0 {
		days = []string{"monday"}
	}
	if timeStr == "" {
		timeStr = domain.DefaultScheduleTime
	}
	return NewWeeklyPattern(days, timeStr, tz, 1, nil)
}

// FromConfig builds a pattern from a stored config document.
func FromConfig(cfg PatternConfig) (*Pattern, error) {
	if cfg.PatternType == "" {
		return FromLegacy(cfg.Days, cfg.Time, cfg.Timezone)
	}

	var (
		p   *Pattern
		err error
	)
	switch Kind(cfg.PatternType) {
	case KindDaily:
		p, err = NewDailyPattern(cfg.Time, cfg.Timezone, cfg.Interval, cfg.Exclusions)
	case KindWeekly:
		p, err = NewWeeklyPattern(cfg.Days, cfg.Time, cfg.Timezone, cfg.Interval, cfg.Exclusions)
	case KindMonthly:
		if cfg.Day != 0 && cfg.NthWeekday != "" {
			return nil, fmt.Errorf("monthly pattern cannot set both day and nth_weekday")
		}
		if cfg.NthWeekday != "" {
			p, err = NewMonthlyNthWeekdayPattern(cfg.NthWeekday, cfg.Time, cfg.Timezone, cfg.Interval, cfg.Exclusions)
		} else {
			day := cfg.Day
			if day == 0 {
				day = 1
			}
			p, err = NewMonthlyPattern(day, cfg.Time, cfg.Timezone, cfg.Interval, cfg.Exclusions)
		}
	case KindYearly:
		p, err = NewYearlyPattern(cfg.Month, cfg.Day, cfg.Time, cfg.Timezone, cfg.Interval, cfg.Exclusions)
	case KindOneTime:
		p, err = NewOneTimePattern(cfg.Date, cfg.Time, cfg.Timezone)
	default:
		return nil, fmt.Errorf("unknown pattern type %q", cfg.PatternType)
	}
	if err != nil {
		return nil, err
	}
	if cfg.EndDate != "" {
		if _, derr := parseDate(cfg.EndDate); derr != nil {
			return nil, fmt.Errorf("invalid end date: %w", derr)
		}
		p.endDate = cfg.EndDate
	}
	return p, nil
}

// ParseConfigJSON builds a pattern from a stored JSON document.
func ParseConfigJSON(raw string) (*Pattern, error) {
	var cfg PatternConfig
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		return nil, fmt.Errorf("invalid pattern config: %w", err)
	}
	return FromConfig(cfg)
}

// ToConfig serializes the pattern back to its stored shape.
func (p *Pattern) ToConfig() PatternConfig {
	cfg := PatternConfig{
		PatternType: string(p.kind),
		Time:        p.TimeOfDay(),
		Timezone:    p.tzName,
		EndDate:     p.endDate,
	}
	if p.kind != KindOneTime {
		cfg.Interval = p.interval
	}
	for d := range p.exclusions {
		cfg.Exclusions = append(cfg.Exclusions, d)
	}
	sort.Strings(cfg.Exclusions)

	switch p.kind {
	case KindWeekly:
		for _, d := range p.weekdays {
			cfg.Days = append(cfg.Days, domain.WeekdayNames[d])
		}
	case KindMonthly:
		if p.nth != nil {
			cfg.NthWeekday = nthString(*p.nth)
		} else {
			cfg.Day = p.monthDay
		}
	case KindYearly:
		cfg.Month = int(p.month)
		cfg.Day = p.monthDay
	case KindOneTime:
		cfg.Date = p.date
	}
	return cfg
}

func nthString(nth nthWeekday) string {
	ord := "last"
	switch nth.ordinal {
	case 1:
		ord = "first"
	case 2:
		ord = "second"
	case 3:
		ord = "third"
	case 4:
		ord = "fourth"
	case 5:
		ord = "fifth"
	}
	return ord + " " + domain.WeekdayNames[nth.weekday]
}
