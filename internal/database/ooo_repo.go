package database

import (
	"fmt"

	"github.com/standupbot/slack-standup-bot/internal/domain/contract"
	"github.com/standupbot/slack-standup-bot/internal/domain/entity"
)

type oooRepo struct {
	db dbConn
}

func newOOORepo(db dbConn) contract.OOORepo {
	return &oooRepo{db: db}
}

func (r *oooRepo) Create(period *entity.OOOPeriod) error {
	query := `
		INSERT INTO ooo_periods (id, slack_user_id, start_date, end_date, reason)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		period.ID,
		period.SlackUserID,
		period.StartDate,
		period.EndDate,
		period.Reason,
	)
	if err != nil {
		return fmt.Errorf("failed to create ooo period: %w", err)
	}

	return nil
}

func (r *oooRepo) Delete(id string) error {
	query := `DELETE FROM ooo_periods WHERE id = ?`

	if _, err := r.db.Exec(query, id); err != nil {
		return fmt.Errorf("failed to delete ooo period: %w", err)
	}
	return nil
}

func (r *oooRepo) GetByUser(slackUserID string) ([]*entity.OOOPeriod, error) {
	query := `
		SELECT id, slack_user_id, start_date, end_date, reason, created_at
		FROM ooo_periods
		WHERE slack_user_id = ?
		ORDER BY start_date
	`
	return r.queryPeriods(query, slackUserID)
}

func (r *oooRepo) GetAll() ([]*entity.OOOPeriod, error) {
	query := `
		SELECT id, slack_user_id, start_date, end_date, reason, created_at
		FROM ooo_periods
		ORDER BY start_date
	`
	return r.queryPeriods(query)
}

func (r *oooRepo) queryPeriods(query string, args ...interface{}) ([]*entity.OOOPeriod, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get ooo periods: %w", err)
	}
	defer rows.Close()

	var periods []*entity.OOOPeriod
	for rows.Next() {
		period := &entity.OOOPeriod{}
		err := rows.Scan(
			&period.ID,
			&period.SlackUserID,
			&period.StartDate,
			&period.EndDate,
			&period.Reason,
			&period.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ooo period: %w", err)
		}
		periods = append(periods, period)
	}

	return periods, rows.Err()
}
