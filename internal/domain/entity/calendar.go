package entity

import "time"

// OOOPeriod is an out-of-office range for one user, inclusive on both ends.
// A user may hold several, possibly overlapping, periods; the ID lets each
// one be removed independently.
type OOOPeriod struct {
	ID          string    `json:"id"` // uuid
	SlackUserID string    `json:"slack_user_id"`
	StartDate   string    `json:"start_date"` // YYYY-MM-DD
	EndDate     string    `json:"end_date"`   // YYYY-MM-DD
	Reason      string    `json:"reason,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CustomHoliday is a user-defined holiday that overrides the country tables.
type CustomHoliday struct {
	Date      string    `json:"date"` // YYYY-MM-DD
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ConflictType classifies one conflict found by the conflict detector.
type ConflictType string

const (
	ConflictHoliday ConflictType = "holiday"
	ConflictWeekend ConflictType = "weekend"
	ConflictOOO     ConflictType = "ooo"
)

// Conflict is one advisory finding for one occurrence date.
type Conflict struct {
	Date    string       `json:"date"`
	Type    ConflictType `json:"type"`
	Details string       `json:"details"`
	Users   []string     `json:"users,omitempty"` // populated for OOO conflicts
}

// ConflictReport accumulates every finding for a scanned date range.
type ConflictReport struct {
	Conflicts []Conflict          `json:"conflicts"`
	Holidays  map[string]string   `json:"holidays"`  // date -> holiday name
	Weekends  []string            `json:"weekends"`  // dates
	OOOUsers  map[string][]string `json:"ooo_users"` // date -> affected participants
}

// NewConflictReport returns an empty report with all collections initialized.
func NewConflictReport() *ConflictReport {
	return &ConflictReport{
		Conflicts: []Conflict{},
		Holidays:  map[string]string{},
		Weekends:  []string{},
		OOOUsers:  map[string][]string{},
	}
}
