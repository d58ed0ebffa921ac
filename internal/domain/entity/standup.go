package entity

import "time"

// Standup is one configured recurring standup owned by a Slack channel.
type Standup struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	SlackChannelID  string    `json:"slack_channel_id"`
	SlackTeamID     string    `json:"slack_team_id"`
	CreatorID       string    `json:"creator_id"`
	Questions       []string  `json:"questions"`
	Participants    []string  `json:"participants"` // slack user IDs
	ScheduleTime    string    `json:"schedule_time"` // HH:MM wall clock
	Timezone        string    `json:"timezone"`      // IANA identifier
	Days            string    `json:"days"`          // "weekdays", "mon,wed,fri", "1,3,5"
	DurationSeconds int       `json:"duration_seconds"`
	PatternJSON     string    `json:"pattern_json,omitempty"` // non-legacy pattern config
	HolidayCountry  string    `json:"holiday_country"`
	SkipHolidays    bool      `json:"skip_holidays"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Response is one participant's answer set for one standup day.
type Response struct {
	ID           int64     `json:"id"`
	StandupID    int64     `json:"standup_id"`
	SlackUserID  string    `json:"slack_user_id"`
	ResponseDate string    `json:"response_date"` // YYYY-MM-DD in the standup timezone
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"created_at"`
}
