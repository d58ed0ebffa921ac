// Package calendar provides holiday/business-day lookups and the per-user
// out-of-office registry consulted by the scheduling core.
package calendar

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/ca"
	"github.com/rickar/cal/v2/de"
	"github.com/rickar/cal/v2/fr"
	"github.com/rickar/cal/v2/gb"
	"github.com/rickar/cal/v2/us"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// nextBusinessDayCap bounds the forward search; a run of non-business days
// this long means broken holiday data, surfaced as an error instead of
// looping forever.
const nextBusinessDayCap = 366

// countryTables maps canonical country keys to their holiday definitions.
var countryTables = map[string][]*cal.Holiday{
	"united states":  us.Holidays,
	"united kingdom": gb.Holidays,
	"canada":         ca.Holidays,
	"germany":        de.Holidays,
	"france":         fr.Holidays,
}

// countryAliases maps accepted spellings and ISO codes to canonical keys.
var countryAliases = map[string]string{
	"us": "united states", "usa": "united states",
	"united states of america": "united states",
	"gb": "united kingdom", "uk": "united kingdom", "great britain": "united kingdom",
	"ca": "canada",
	"de": "germany",
	"fr": "france",
}

// HolidayCalendar answers holiday, weekend and business-day questions per
// country, with custom holidays taking precedence over the country tables.
// Reads are concurrent-safe; writes (adding a custom holiday) take a
// coarse lock, which is fine for infrequent admin actions.
type HolidayCalendar struct {
	mu        sync.RWMutex
	calendars map[string]*cal.Calendar
	custom    map[string]string // date -> name
	log       *zap.Logger
}

func NewHolidayCalendar(log *zap.Logger) *HolidayCalendar {
	return &HolidayCalendar{
		calendars: make(map[string]*cal.Calendar),
		custom:    make(map[string]string),
		log:       log,
	}
}

// resolveCountry canonicalizes a country string, falling back to the
// default country for anything unsupported. Never fails.
func (h *HolidayCalendar) resolveCountry(country string) string {
	key := strings.ToLower(strings.TrimSpace(country))
	if alias, ok := countryAliases[key]; ok {
		key = alias
	}
	if _, ok := countryTables[key]; !ok {
		h.log.Warn("unsupported holiday country, falling back to United States",
			zap.String("country", country))
		key = "united states"
	}
	return key
}

// calendarFor returns the lazily built cal.Calendar for a canonical key.
// Caller must hold at least a read lock; the write path re-locks.
func (h *HolidayCalendar) calendarFor(key string) *cal.Calendar {
	h.mu.RLock()
	c, ok := h.calendars[key]
	h.mu.RUnlock()
	if ok {
		return c
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok = h.calendars[key]; ok {
		return c
	}
	c = &cal.Calendar{Name: key, Cacheable: true}
	c.AddHoliday(countryTables[key]...)
	h.calendars[key] = c
	return c
}

// AddCustomHoliday registers a holiday that overrides the country tables
// for every country.
func (h *HolidayCalendar) AddCustomHoliday(date, name string) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return fmt.Errorf("invalid holiday date %q: expected YYYY-MM-DD", date)
	}
	h.mu.Lock()
	h.custom[date] = name
	h.mu.Unlock()
	return nil
}

// IsHoliday reports whether date is a holiday for the given country.
// Custom holidays are checked first and always win.
func (h *HolidayCalendar) IsHoliday(date time.Time, country string) bool {
	_, ok := h.HolidayName(date, country)
	return ok
}

// HolidayName returns the holiday name for a date, if any.
func (h *HolidayCalendar) HolidayName(date time.Time, country string) (string, bool) {
	h.mu.RLock()
	name, ok := h.custom[date.Format(dateLayout)]
	h.mu.RUnlock()
	if ok {
		return name, true
	}

	c := h.calendarFor(h.resolveCountry(country))
	actual, observed, holiday := c.IsHoliday(date)
	if (actual || observed) && holiday != nil {
		return holiday.Name, true
	}
	return "", false
}

// IsWeekend reports whether date falls on Saturday or Sunday. Pure
// calendar math, independent of country.
func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsBusinessDay reports whether date is neither a weekend nor a holiday.
func (h *HolidayCalendar) IsBusinessDay(date time.Time, country string) bool {
	return !IsWeekend(date) && !h.IsHoliday(date, country)
}

// NextBusinessDay returns the first business day strictly after date.
func (h *HolidayCalendar) NextBusinessDay(date time.Time, country string) (time.Time, error) {
	next := date
	for i := 0; i < nextBusinessDayCap; i++ {
		next = next.AddDate(0, 0, 1)
		if h.IsBusinessDay(next, country) {
			return next, nil
		}
	}
	return time.Time{}, fmt.Errorf("no business day within %d days after %s",
		nextBusinessDayCap, date.Format(dateLayout))
}
