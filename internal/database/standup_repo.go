package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/standupbot/slack-standup-bot/internal/domain/contract"
	"github.com/standupbot/slack-standup-bot/internal/domain/entity"
)

type standupRepo struct {
	db dbConn
}

func newStandupRepo(db dbConn) contract.StandupRepo {
	return &standupRepo{db: db}
}

const standupColumns = `id, name, slack_channel_id, slack_team_id, creator_id, questions,
		participants, schedule_time, timezone, days, duration_seconds, pattern_json,
		holiday_country, skip_holidays, is_active, created_at, updated_at`

func (r *standupRepo) Create(standup *entity.Standup) error {
	questionsJSON, participantsJSON, err := marshalStandupLists(standup)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO standups (name, slack_channel_id, slack_team_id, creator_id, questions,
			participants, schedule_time, timezone, days, duration_seconds, pattern_json,
			holiday_country, skip_holidays, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		standup.Name,
		standup.SlackChannelID,
		standup.SlackTeamID,
		standup.CreatorID,
		questionsJSON,
		participantsJSON,
		standup.ScheduleTime,
		standup.Timezone,
		standup.Days,
		standup.DurationSeconds,
		standup.PatternJSON,
		standup.HolidayCountry,
		standup.SkipHolidays,
		standup.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to create standup: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	standup.ID = id
	return nil
}

func (r *standupRepo) GetByID(id int64) (*entity.Standup, error) {
	query := `SELECT ` + standupColumns + ` FROM standups WHERE id = ?`
	return r.scanOne(r.db.QueryRow(query, id))
}

func (r *standupRepo) GetBySlackChannelID(slackChannelID string) (*entity.Standup, error) {
	query := `SELECT ` + standupColumns + ` FROM standups WHERE slack_channel_id = ?`
	return r.scanOne(r.db.QueryRow(query, slackChannelID))
}

func (r *standupRepo) GetActive() ([]*entity.Standup, error) {
	query := `SELECT ` + standupColumns + ` FROM standups WHERE is_active = 1`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get active standups: %w", err)
	}
	defer rows.Close()

	var standups []*entity.Standup
	for rows.Next() {
		standup, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		standups = append(standups, standup)
	}

	return standups, rows.Err()
}

func (r *standupRepo) Update(standup *entity.Standup) error {
	questionsJSON, participantsJSON, err := marshalStandupLists(standup)
	if err != nil {
		return err
	}

	query := `
		UPDATE standups SET
			name = ?,
			questions = ?,
			participants = ?,
			schedule_time = ?,
			timezone = ?,
			days = ?,
			duration_seconds = ?,
			pattern_json = ?,
			holiday_country = ?,
			skip_holidays = ?,
			is_active = ?,
			updated_at = ?
		WHERE id = ?
	`

	_, err = r.db.Exec(query,
		standup.Name,
		questionsJSON,
		participantsJSON,
		standup.ScheduleTime,
		standup.Timezone,
		standup.Days,
		standup.DurationSeconds,
		standup.PatternJSON,
		standup.HolidayCountry,
		standup.SkipHolidays,
		standup.IsActive,
		time.Now(),
		standup.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update standup: %w", err)
	}

	return nil
}

func (r *standupRepo) SetActive(id int64, active bool) error {
	query := `UPDATE standups SET is_active = ?, updated_at = ? WHERE id = ?`

	_, err := r.db.Exec(query, active, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to set standup active status: %w", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *standupRepo) scanOne(row *sql.Row) (*entity.Standup, error) {
	standup, err := r.scanRow(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return standup, err
}

func (r *standupRepo) scanRow(row rowScanner) (*entity.Standup, error) {
	standup := &entity.Standup{}
	var questionsJSON, participantsJSON string
	var patternJSON sql.NullString

	err := row.Scan(
		&standup.ID,
		&standup.Name,
		&standup.SlackChannelID,
		&standup.SlackTeamID,
		&standup.CreatorID,
		&questionsJSON,
		&participantsJSON,
		&standup.ScheduleTime,
		&standup.Timezone,
		&standup.Days,
		&standup.DurationSeconds,
		&patternJSON,
		&standup.HolidayCountry,
		&standup.SkipHolidays,
		&standup.IsActive,
		&standup.CreatedAt,
		&standup.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan standup: %w", err)
	}

	standup.PatternJSON = patternJSON.String
	if err := json.Unmarshal([]byte(questionsJSON), &standup.Questions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal questions: %w", err)
	}
	if err := json.Unmarshal([]byte(participantsJSON), &standup.Participants); err != nil {
		return nil, fmt.Errorf("failed to unmarshal participants: %w", err)
	}

	return standup, nil
}

func marshalStandupLists(standup *entity.Standup) (questions, participants string, err error) {
	questionsJSON, err := json.Marshal(standup.Questions)
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal questions: %w", err)
	}
	participantsJSON, err := json.Marshal(standup.Participants)
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal participants: %w", err)
	}
	return string(questionsJSON), string(participantsJSON), nil
}
