package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standupbot/slack-standup-bot/internal/domain/entity"
)

func createTestStandup(t *testing.T, db *DB) *entity.Standup {
	t.Helper()
	standup := testStandup()
	require.NoError(t, newStandupRepo(db.conn).Create(standup))
	return standup
}

func TestResponseRepository_Upsert(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	standup := createTestStandup(t, db)
	repo := newResponseRepo(db.conn)

	response := &entity.Response{
		StandupID:    standup.ID,
		SlackUserID:  "U123456789",
		ResponseDate: "2024-06-10",
		Content:      "Shipped the release",
	}
	require.NoError(t, repo.Upsert(response))
	assert.NotZero(t, response.ID)

	// Resubmitting replaces the content instead of adding a row.
	replacement := &entity.Response{
		StandupID:    standup.ID,
		SlackUserID:  "U123456789",
		ResponseDate: "2024-06-10",
		Content:      "Shipped the release and fixed a regression",
	}
	require.NoError(t, repo.Upsert(replacement))

	responses, err := repo.GetByStandupAndDate(standup.ID, "2024-06-10")
	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.Equal(t, replacement.Content, responses[0].Content)
}

func TestResponseRepository_GetByStandupAndDate(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	standup := createTestStandup(t, db)
	repo := newResponseRepo(db.conn)

	require.NoError(t, repo.Upsert(&entity.Response{
		StandupID: standup.ID, SlackUserID: "U111", ResponseDate: "2024-06-10", Content: "a",
	}))
	require.NoError(t, repo.Upsert(&entity.Response{
		StandupID: standup.ID, SlackUserID: "U222", ResponseDate: "2024-06-10", Content: "b",
	}))
	require.NoError(t, repo.Upsert(&entity.Response{
		StandupID: standup.ID, SlackUserID: "U111", ResponseDate: "2024-06-11", Content: "c",
	}))

	responses, err := repo.GetByStandupAndDate(standup.ID, "2024-06-10")
	require.NoError(t, err)
	assert.Len(t, responses, 2)

	responses, err = repo.GetByStandupAndDate(standup.ID, "2024-06-12")
	require.NoError(t, err)
	assert.Empty(t, responses)
}

func TestResponseRepository_HasResponded(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	standup := createTestStandup(t, db)
	repo := newResponseRepo(db.conn)

	responded, err := repo.HasResponded(standup.ID, "U111", "2024-06-10")
	require.NoError(t, err)
	assert.False(t, responded)

	require.NoError(t, repo.Upsert(&entity.Response{
		StandupID: standup.ID, SlackUserID: "U111", ResponseDate: "2024-06-10", Content: "a",
	}))

	responded, err = repo.HasResponded(standup.ID, "U111", "2024-06-10")
	require.NoError(t, err)
	assert.True(t, responded)

	responded, err = repo.HasResponded(standup.ID, "U111", "2024-06-11")
	require.NoError(t, err)
	assert.False(t, responded)
}
