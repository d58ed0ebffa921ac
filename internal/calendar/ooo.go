package calendar

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/standupbot/slack-standup-bot/internal/domain/entity"
)

// OOORegistry tracks out-of-office periods per user. Periods may overlap
// and are never merged; each carries its own id so overlapping entries can
// be removed independently. Reads are concurrent-safe.
type OOORegistry struct {
	mu      sync.RWMutex
	periods map[string][]entity.OOOPeriod // keyed by slack user id
}

func NewOOORegistry() *OOORegistry {
	return &OOORegistry{periods: make(map[string][]entity.OOOPeriod)}
}

// AddPeriod validates and registers a new OOO period, returning it with a
// generated id.
func (r *OOORegistry) AddPeriod(userID, startDate, endDate, reason string) (entity.OOOPeriod, error) {
	if _, err := time.Parse(dateLayout, startDate); err != nil {
		return entity.OOOPeriod{}, fmt.Errorf("invalid start date %q: expected YYYY-MM-DD", startDate)
	}
	if _, err := time.Parse(dateLayout, endDate); err != nil {
		return entity.OOOPeriod{}, fmt.Errorf("invalid end date %q: expected YYYY-MM-DD", endDate)
	}
	if endDate < startDate {
		return entity.OOOPeriod{}, fmt.Errorf("end date %s is before start date %s", endDate, startDate)
	}

	period := entity.OOOPeriod{
		ID:          uuid.NewString(),
		SlackUserID: userID,
		StartDate:   startDate,
		EndDate:     endDate,
		Reason:      reason,
		CreatedAt:   time.Now().UTC(),
	}
	r.Load(period)
	return period, nil
}

// Load registers an already persisted period, used when hydrating from
// storage at startup.
func (r *OOORegistry) Load(period entity.OOOPeriod) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := append(r.periods[period.SlackUserID], period)
	sort.Slice(list, func(i, j int) bool { return list[i].StartDate < list[j].StartDate })
	r.periods[period.SlackUserID] = list
}

// Remove deletes one period by id. Other periods, including overlapping
// ones, are untouched.
func (r *OOORegistry) Remove(userID, periodID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.periods[userID]
	for i, p := range list {
		if p.ID == periodID {
			r.periods[userID] = append(list[:i], list[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveRange deletes the first period exactly matching the given range,
// mirroring how removal is requested from chat commands.
func (r *OOORegistry) RemoveRange(userID, startDate, endDate string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.periods[userID]
	for i, p := range list {
		if p.StartDate == startDate && p.EndDate == endDate {
			r.periods[userID] = append(list[:i], list[i+1:]...)
			return true
		}
	}
	return false
}

// IsUserOOO reports whether any period for the user contains date,
// inclusive on both ends.
func (r *OOORegistry) IsUserOOO(userID string, date time.Time) bool {
	d := date.Format(dateLayout)
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.periods[userID] {
		if p.StartDate <= d && d <= p.EndDate {
			return true
		}
	}
	return false
}

// UsersOutOn returns every registered user who is OOO on date.
func (r *OOORegistry) UsersOutOn(date time.Time) []string {
	d := date.Format(dateLayout)
	r.mu.RLock()
	defer r.mu.RUnlock()

	var users []string
	for userID, list := range r.periods {
		for _, p := range list {
			if p.StartDate <= d && d <= p.EndDate {
				users = append(users, userID)
				break
			}
		}
	}
	sort.Strings(users)
	return users
}

// PeriodsFor returns a copy of the user's periods, earliest start first.
func (r *OOORegistry) PeriodsFor(userID string) []entity.OOOPeriod {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]entity.OOOPeriod(nil), r.periods[userID]...)
}
