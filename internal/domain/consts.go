package domain

import "time"

// Default question set used when a standup is created without custom questions.
// The %s is replaced with the last-standup-day label ("yesterday", "Friday", ...).
var DefaultQuestions = []string{
	"What did you accomplish %s?",
	"What will you work on today?",
	"Are there any blockers in your way?",
}

// DefaultScheduleTime is the prompt time applied when none is configured.
const DefaultScheduleTime = "09:00"

// DefaultTimezone is used when a standup has no timezone configured.
const DefaultTimezone = "UTC"

// DefaultDays is the day filter applied when none is configured.
const DefaultDays = "weekdays"

// DefaultDurationSeconds is how long a standup stays open for responses
// before the summary is posted (4 hours).
const DefaultDurationSeconds = 4 * 60 * 60

// DefaultHolidayCountry is the holiday table used when none is configured
// or when the configured country is not supported.
const DefaultHolidayCountry = "United States"

// ReminderLead is how long before the summary the straggler reminder fires.
const ReminderLead = 30 * time.Minute

// LastStandupLookbackDays caps the backward walk when deriving the
// "what did you do <X>?" label.
const LastStandupLookbackDays = 14

// WeekdayNames maps weekdays to their English names.
var WeekdayNames = map[time.Weekday]string{
	time.Monday:    "Monday",
	time.Tuesday:   "Tuesday",
	time.Wednesday: "Wednesday",
	time.Thursday:  "Thursday",
	time.Friday:    "Friday",
	time.Saturday:  "Saturday",
	time.Sunday:    "Sunday",
}
