package database

import (
	"fmt"

	"github.com/standupbot/slack-standup-bot/internal/domain/contract"
	"github.com/standupbot/slack-standup-bot/internal/domain/entity"
)

type holidayRepo struct {
	db dbConn
}

func newHolidayRepo(db dbConn) contract.HolidayRepo {
	return &holidayRepo{db: db}
}

func (r *holidayRepo) Upsert(holiday *entity.CustomHoliday) error {
	query := `
		INSERT INTO custom_holidays (holiday_date, name)
		VALUES (?, ?)
		ON CONFLICT(holiday_date) DO UPDATE SET name = excluded.name
	`

	if _, err := r.db.Exec(query, holiday.Date, holiday.Name); err != nil {
		return fmt.Errorf("failed to upsert custom holiday: %w", err)
	}
	return nil
}

func (r *holidayRepo) GetAll() ([]*entity.CustomHoliday, error) {
	query := `
		SELECT holiday_date, name, created_at
		FROM custom_holidays
		ORDER BY holiday_date
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get custom holidays: %w", err)
	}
	defer rows.Close()

	var holidays []*entity.CustomHoliday
	for rows.Next() {
		holiday := &entity.CustomHoliday{}
		if err := rows.Scan(&holiday.Date, &holiday.Name, &holiday.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan custom holiday: %w", err)
		}
		holidays = append(holidays, holiday)
	}

	return holidays, rows.Err()
}
