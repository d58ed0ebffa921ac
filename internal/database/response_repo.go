package database

import (
	"fmt"

	"github.com/standupbot/slack-standup-bot/internal/domain/contract"
	"github.com/standupbot/slack-standup-bot/internal/domain/entity"
)

type responseRepo struct {
	db dbConn
}

func newResponseRepo(db dbConn) contract.ResponseRepo {
	return &responseRepo{db: db}
}

// Upsert stores a response, replacing any earlier submission by the same
// user for the same standup day.
func (r *responseRepo) Upsert(response *entity.Response) error {
	query := `
		INSERT INTO responses (standup_id, slack_user_id, response_date, content)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(standup_id, slack_user_id, response_date)
		DO UPDATE SET content = excluded.content
	`

	result, err := r.db.Exec(query,
		response.StandupID,
		response.SlackUserID,
		response.ResponseDate,
		response.Content,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert response: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	response.ID = id
	return nil
}

func (r *responseRepo) GetByStandupAndDate(standupID int64, date string) ([]*entity.Response, error) {
	query := `
		SELECT id, standup_id, slack_user_id, response_date, content, created_at
		FROM responses
		WHERE standup_id = ? AND response_date = ?
		ORDER BY created_at
	`

	rows, err := r.db.Query(query, standupID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get responses: %w", err)
	}
	defer rows.Close()

	var responses []*entity.Response
	for rows.Next() {
		response := &entity.Response{}
		err := rows.Scan(
			&response.ID,
			&response.StandupID,
			&response.SlackUserID,
			&response.ResponseDate,
			&response.Content,
			&response.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan response: %w", err)
		}
		responses = append(responses, response)
	}

	return responses, rows.Err()
}

func (r *responseRepo) HasResponded(standupID int64, slackUserID, date string) (bool, error) {
	query := `
		SELECT COUNT(1) FROM responses
		WHERE standup_id = ? AND slack_user_id = ? AND response_date = ?
	`

	var count int
	if err := r.db.QueryRow(query, standupID, slackUserID, date).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check response: %w", err)
	}
	return count > 0, nil
}
