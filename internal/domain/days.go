package domain

import (
	"fmt"
	"strings"
	"time"
)

// weekday tokens accepted in day filters and weekly pattern day lists
var weekdayTokens = map[string]time.Weekday{
	"mon": time.Monday, "monday": time.Monday, "1": time.Monday,
	"tue": time.Tuesday, "tuesday": time.Tuesday, "2": time.Tuesday,
	"wed": time.Wednesday, "wednesday": time.Wednesday, "3": time.Wednesday,
	"thu": time.Thursday, "thursday": time.Thursday, "4": time.Thursday,
	"fri": time.Friday, "friday": time.Friday, "5": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday, "6": time.Saturday,
	"sun": time.Sunday, "sunday": time.Sunday, "7": time.Sunday,
}

// ParseWeekday resolves a single weekday token: a full English name ("monday"),
// a three-letter abbreviation ("mon") or an ISO 8601 number ("1"-"7").
func ParseWeekday(token string) (time.Weekday, error) {
	day, ok := weekdayTokens[strings.ToLower(strings.TrimSpace(token))]
	if !ok {
		return 0, fmt.Errorf("unknown weekday %q", token)
	}
	return day, nil
}

// ParseDayFilter parses a day filter string into a weekday set. Accepted forms:
// "weekdays", "everyday", or a comma-separated token list like "mon,wed,fri"
// or "1,3,5". An empty string means the default filter (weekdays).
func ParseDayFilter(filter string) (map[time.Weekday]bool, error) {
	filter = strings.ToLower(strings.TrimSpace(filter))
	if filter == "" {
		filter = DefaultDays
	}

	days := make(map[time.Weekday]bool)
	switch filter {
	case "weekdays":
		for d := time.Monday; d <= time.Friday; d++ {
			days[d] = true
		}
		return days, nil
	case "everyday", "daily":
		for d := time.Sunday; d <= time.Saturday; d++ {
			days[d] = true
		}
		return days, nil
	}

	for _, token := range strings.Split(filter, ",") {
		day, err := ParseWeekday(token)
		if err != nil {
			return nil, fmt.Errorf("invalid day filter %q: %w", filter, err)
		}
		days[day] = true
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("day filter %q selects no days", filter)
	}
	return days, nil
}

// ParseDayList parses a weekly pattern day list such as ["monday","wednesday"].
// At least one valid day is required and duplicates are collapsed.
func ParseDayList(tokens []string) ([]time.Weekday, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("day list is empty")
	}

	seen := make(map[time.Weekday]bool)
	var days []time.Weekday
	for _, token := range tokens {
		day, err := ParseWeekday(token)
		if err != nil {
			return nil, err
		}
		if !seen[day] {
			seen[day] = true
			days = append(days, day)
		}
	}
	return days, nil
}
