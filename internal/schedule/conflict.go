package schedule

import (
	"fmt"
	"time"

	"github.com/standupbot/slack-standup-bot/internal/calendar"
	"github.com/standupbot/slack-standup-bot/internal/domain/entity"
)

// defaultConflictWindowDays is the scan range when no end date is given.
const defaultConflictWindowDays = 90

// ConflictDetector cross-references pattern occurrences with holiday and
// out-of-office data. Its findings are advisory: nothing here mutates the
// pattern or suppresses occurrences.
type ConflictDetector struct {
	holidays *calendar.HolidayCalendar
	ooo      *calendar.OOORegistry
	country  string
}

func NewConflictDetector(holidays *calendar.HolidayCalendar, ooo *calendar.OOORegistry, country string) *ConflictDetector {
	return &ConflictDetector{holidays: holidays, ooo: ooo, country: country}
}

// CheckConflicts walks every occurrence of the pattern between startDate
// and endDate (inclusive; endDate defaults to startDate + 90 days) and
// classifies each occurrence date as holiday, weekend and/or OOO-affected
// for the given participants.
func (d *ConflictDetector) CheckConflicts(p *Pattern, participants []string, startDate, endDate string) (*entity.ConflictReport, error) {
	start, err := parseDate(startDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date: %w", err)
	}
	end := start.AddDate(0, 0, defaultConflictWindowDays)
	if endDate != "" {
		if end, err = parseDate(endDate); err != nil {
			return nil, fmt.Errorf("invalid end date: %w", err)
		}
	}

	report := entity.NewConflictReport()
	participating := make(map[string]bool, len(participants))
	for _, id := range participants {
		participating[id] = true
	}

	// Walk occurrences by asking for the next one strictly after the day
	// before each occurrence date.
	cursor := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, p.Location()).Add(-time.Second)
	endOfRange := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 0, p.Location())

	for {
		occ, ok := p.NextOccurrence(cursor)
		if !ok || occ.After(endOfRange) {
			break
		}
		date := occ.In(p.Location())
		dateStr := date.Format(dateLayout)

		if name, isHoliday := d.holidays.HolidayName(date, d.country); isHoliday {
			report.Holidays[dateStr] = name
			report.Conflicts = append(report.Conflicts, entity.Conflict{
				Date:    dateStr,
				Type:    entity.ConflictHoliday,
				Details: name,
			})
		}

		if calendar.IsWeekend(date) {
			report.Weekends = append(report.Weekends, dateStr)
			report.Conflicts = append(report.Conflicts, entity.Conflict{
				Date:    dateStr,
				Type:    entity.ConflictWeekend,
				Details: "Weekend",
			})
		}

		var affected []string
		for _, userID := range d.ooo.UsersOutOn(date) {
			if participating[userID] {
				affected = append(affected, userID)
			}
		}
		if len(affected) > 0 {
			report.OOOUsers[dateStr] = affected
			report.Conflicts = append(report.Conflicts, entity.Conflict{
				Date:    dateStr,
				Type:    entity.ConflictOOO,
				Details: fmt.Sprintf("%d participant(s) out of office", len(affected)),
				Users:   affected,
			})
		}

		// Resume strictly after this occurrence's date.
		cursor = time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 59, 0, p.Location())
	}

	return report, nil
}
