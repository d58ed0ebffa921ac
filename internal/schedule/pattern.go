// Package schedule implements the recurrence and scheduling core: schedule
// patterns with timezone-aware next-occurrence math, the task engine that
// fires them, and conflict detection against holiday and out-of-office data.
package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Kind identifies the recurrence rule of a pattern.
type Kind string

const (
	KindDaily   Kind = "daily"
	KindWeekly  Kind = "weekly"
	KindMonthly Kind = "monthly"
	KindYearly  Kind = "yearly"
	KindOneTime Kind = "one_time"
)

const dateLayout = "2006-01-02"

// Candidate scan caps. A pattern that produces no valid occurrence within
// these bounds is treated as exhausted, not as an error.
const (
	maxDayCandidates   = 100
	maxWeekCandidates  = 100
	maxMonthCandidates = 12
	maxYearCandidates  = 12
)

var nthWeekdayRe = regexp.MustCompile(
	`^(first|1st|second|2nd|third|3rd|fourth|4th|fifth|5th|last)\s+(monday|tuesday|wednesday|thursday|friday|saturday|sunday)$`)

var ordinalWords = map[string]int{
	"first": 1, "1st": 1,
	"second": 2, "2nd": 2,
	"third": 3, "3rd": 3,
	"fourth": 4, "4th": 4,
	"fifth": 5, "5th": 5,
	"last": -1,
}

var weekdayWords = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// nthWeekday is a parsed "first monday" / "last friday" descriptor.
// ordinal is 1-5, or -1 for "last".
type nthWeekday struct {
	ordinal int
	weekday time.Weekday
}

// parseNthWeekday parses an nth-weekday phrase. Only the English ordinal
// words above are recognized, matching the configuration vocabulary the
// bot has always accepted.
func parseNthWeekday(s string) (nthWeekday, error) {
	m := nthWeekdayRe.FindStringSubmatch(strings.ToLower(strings.TrimSpace(s)))
	if m == nil {
		return nthWeekday{}, fmt.Errorf(
			"invalid nth weekday %q: expected e.g. \"first monday\", \"3rd wednesday\" or \"last friday\"", s)
	}
	return nthWeekday{ordinal: ordinalWords[m[1]], weekday: weekdayWords[m[2]]}, nil
}

// parseClock parses a wall-clock "HH:MM" string.
func parseClock(s string) (hour, minute int, err error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", s)
	}
	return hour, minute, nil
}

func parseDate(s string) (time.Time, error) {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return d, nil
}

// Pattern is an immutable recurrence rule. All occurrence math resolves in
// the pattern's timezone so a 09:00 slot stays 09:00 local across DST
// transitions. Build patterns through the constructors in adapter.go.
type Pattern struct {
	kind     Kind
	hour     int
	minute   int
	tzName   string
	loc      *time.Location
	interval int

	weekdays []time.Weekday // weekly
	monthDay int            // monthly fixed day, yearly day
	nth      *nthWeekday    // monthly nth weekday
	month    time.Month     // yearly
	date     string         // one-time, YYYY-MM-DD

	endDate    string // inclusive cutoff, YYYY-MM-DD; empty = none
	exclusions map[string]bool
}

// Kind returns the pattern's recurrence kind.
func (p *Pattern) Kind() Kind { return p.kind }

// IsRecurring reports whether the pattern produces more than one occurrence.
func (p *Pattern) IsRecurring() bool { return p.kind != KindOneTime }

// Timezone returns the pattern's IANA timezone name.
func (p *Pattern) Timezone() string { return p.tzName }

// Location returns the pattern's resolved timezone.
func (p *Pattern) Location() *time.Location { return p.loc }

// TimeOfDay returns the pattern's wall-clock slot time as "HH:MM".
func (p *Pattern) TimeOfDay() string { return fmt.Sprintf("%02d:%02d", p.hour, p.minute) }

// Interval returns the pattern's base-unit multiplier.
func (p *Pattern) Interval() int { return p.interval }

func (p *Pattern) slotOn(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, p.hour, p.minute, 0, 0, p.loc)
}

func (p *Pattern) excluded(t time.Time) bool {
	return p.exclusions[t.In(p.loc).Format(dateLayout)]
}

// pastEnd reports whether t falls after the inclusive end date. ISO date
// strings compare correctly as plain strings.
func (p *Pattern) pastEnd(t time.Time) bool {
	return p.endDate != "" && t.In(p.loc).Format(dateLayout) > p.endDate
}

// NextOccurrence returns the earliest instant strictly after `after` that
// matches the pattern, skipping exclusions and respecting the end date.
// ok is false when the pattern has no further occurrences; callers must
// treat that as a normal terminal state.
func (p *Pattern) NextOccurrence(after time.Time) (next time.Time, ok bool) {
	after = after.In(p.loc)
	if p.endDate != "" && after.Format(dateLayout) > p.endDate {
		return time.Time{}, false
	}

	switch p.kind {
	case KindOneTime:
		return p.nextOneTime(after)
	case KindDaily:
		return p.nextDaily(after)
	case KindWeekly:
		return p.nextWeekly(after)
	case KindMonthly:
		return p.nextMonthly(after)
	case KindYearly:
		return p.nextYearly(after)
	}
	return time.Time{}, false
}

func (p *Pattern) nextOneTime(after time.Time) (time.Time, bool) {
	d, err := parseDate(p.date)
	if err != nil {
		return time.Time{}, false
	}
	slot := p.slotOn(d.Year(), d.Month(), d.Day())
	if slot.After(after) && !p.exclusions[p.date] && !p.pastEnd(slot) {
		return slot, true
	}
	return time.Time{}, false
}

func (p *Pattern) nextDaily(after time.Time) (time.Time, bool) {
	// Candidate grid anchored at after's date: k*interval days out.
	for k := 0; k < maxDayCandidates; k++ {
		d := after.AddDate(0, 0, k*p.interval)
		slot := p.slotOn(d.Year(), d.Month(), d.Day())
		if !slot.After(after) {
			continue
		}
		if p.pastEnd(slot) {
			return time.Time{}, false
		}
		if !p.excluded(slot) {
			return slot, true
		}
	}
	return time.Time{}, false
}

// startOfWeek returns midnight on the Monday of t's week in the pattern tz.
func (p *Pattern) startOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return time.Date(t.Year(), t.Month(), t.Day()-offset, 0, 0, 0, 0, p.loc)
}

func (p *Pattern) nextWeekly(after time.Time) (time.Time, bool) {
	match := make(map[time.Weekday]bool, len(p.weekdays))
	for _, d := range p.weekdays {
		match[d] = true
	}

	// Weeks are counted from the Monday of after's week; only weeks whose
	// offset is a multiple of interval are eligible.
	anchor := p.startOfWeek(after)
	for wk := 0; wk < maxWeekCandidates; wk++ {
		weekStart := anchor.AddDate(0, 0, wk*p.interval*7)
		for i := 0; i < 7; i++ {
			d := weekStart.AddDate(0, 0, i)
			if !match[d.Weekday()] {
				continue
			}
			slot := p.slotOn(d.Year(), d.Month(), d.Day())
			if !slot.After(after) {
				continue
			}
			if p.pastEnd(slot) {
				return time.Time{}, false
			}
			if !p.excluded(slot) {
				return slot, true
			}
		}
	}
	return time.Time{}, false
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (p *Pattern) nextMonthly(after time.Time) (time.Time, bool) {
	for k := 0; k < maxMonthCandidates; k++ {
		// Normalize through time.Date so December+1 rolls the year.
		monthStart := time.Date(after.Year(), after.Month()+time.Month(k*p.interval), 1, 0, 0, 0, 0, p.loc)
		year, month := monthStart.Year(), monthStart.Month()

		day := 0
		if p.nth != nil {
			day = nthWeekdayOfMonth(year, month, *p.nth)
		} else if p.monthDay <= daysInMonth(year, month) {
			// Months too short for the configured day are skipped outright,
			// never clamped.
			day = p.monthDay
		}
		if day == 0 {
			continue
		}

		slot := p.slotOn(year, month, day)
		if !slot.After(after) {
			continue
		}
		if p.pastEnd(slot) {
			return time.Time{}, false
		}
		if !p.excluded(slot) {
			return slot, true
		}
	}
	return time.Time{}, false
}

// nthWeekdayOfMonth resolves an nth-weekday descriptor within one month,
// returning the day of month or 0 when the month has no such day (e.g. a
// fifth friday). "last" anchors at month-end and walks backward.
func nthWeekdayOfMonth(year int, month time.Month, nth nthWeekday) int {
	last := daysInMonth(year, month)
	if nth.ordinal == -1 {
		day := last
		for time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Weekday() != nth.weekday {
			day--
		}
		return day
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()
	day := 1 + (int(nth.weekday)-int(first)+7)%7 + (nth.ordinal-1)*7
	if day > last {
		return 0
	}
	return day
}

func (p *Pattern) nextYearly(after time.Time) (time.Time, bool) {
	for k := 0; k < maxYearCandidates; k++ {
		year := after.Year() + k*p.interval
		if p.monthDay > daysInMonth(year, p.month) {
			continue // e.g. Feb 29 in a non-leap year
		}
		slot := p.slotOn(year, p.month, p.monthDay)
		if !slot.After(after) {
			continue
		}
		if p.pastEnd(slot) {
			return time.Time{}, false
		}
		if !p.excluded(slot) {
			return slot, true
		}
	}
	return time.Time{}, false
}
