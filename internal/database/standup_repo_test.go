package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standupbot/slack-standup-bot/internal/domain/entity"
)

func testStandup() *entity.Standup {
	return &entity.Standup{
		Name:            "Daily standup",
		SlackChannelID:  "C123456789",
		SlackTeamID:     "T123456789",
		CreatorID:       "U123456789",
		Questions:       []string{"What did you do?", "What's next?"},
		Participants:    []string{"U123456789", "U987654321"},
		ScheduleTime:    "09:00",
		Timezone:        "America/New_York",
		Days:            "weekdays",
		DurationSeconds: 14400,
		HolidayCountry:  "United States",
		SkipHolidays:    true,
		IsActive:        true,
	}
}

func TestStandupRepository_Create(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newStandupRepo(db.conn)

	standup := testStandup()
	err := repo.Create(standup)
	require.NoError(t, err, "Failed to create standup")

	assert.NotZero(t, standup.ID, "Expected standup ID to be set after creation")
}

func TestStandupRepository_GetByID(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newStandupRepo(db.conn)

	original := testStandup()
	require.NoError(t, repo.Create(original))

	found, err := repo.GetByID(original.ID)
	require.NoError(t, err)
	require.NotNil(t, found, "Expected to find standup")

	assert.Equal(t, original.Name, found.Name)
	assert.Equal(t, original.SlackChannelID, found.SlackChannelID)
	assert.Equal(t, original.Questions, found.Questions)
	assert.Equal(t, original.Participants, found.Participants)
	assert.Equal(t, original.ScheduleTime, found.ScheduleTime)
	assert.Equal(t, original.Timezone, found.Timezone)
	assert.Equal(t, original.DurationSeconds, found.DurationSeconds)
	assert.True(t, found.SkipHolidays)
	assert.True(t, found.IsActive)

	// Not found returns nil without error.
	missing, err := repo.GetByID(9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStandupRepository_GetBySlackChannelID(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newStandupRepo(db.conn)

	original := testStandup()
	require.NoError(t, repo.Create(original))

	found, err := repo.GetBySlackChannelID("C123456789")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, original.ID, found.ID)

	missing, err := repo.GetBySlackChannelID("NONEXISTENT")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStandupRepository_GetActive(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newStandupRepo(db.conn)

	active := testStandup()
	require.NoError(t, repo.Create(active))

	paused := testStandup()
	paused.SlackChannelID = "C222222222"
	paused.IsActive = false
	require.NoError(t, repo.Create(paused))

	standups, err := repo.GetActive()
	require.NoError(t, err)
	require.Len(t, standups, 1)
	assert.Equal(t, active.ID, standups[0].ID)
}

func TestStandupRepository_Update(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newStandupRepo(db.conn)

	standup := testStandup()
	require.NoError(t, repo.Create(standup))

	standup.Name = "Renamed standup"
	standup.ScheduleTime = "10:30"
	standup.Participants = append(standup.Participants, "U000000001")
	standup.PatternJSON = `{"pattern_type":"daily","time":"10:30","timezone":"UTC"}`
	require.NoError(t, repo.Update(standup))

	found, err := repo.GetByID(standup.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Renamed standup", found.Name)
	assert.Equal(t, "10:30", found.ScheduleTime)
	assert.Len(t, found.Participants, 3)
	assert.Equal(t, standup.PatternJSON, found.PatternJSON)
}

func TestStandupRepository_SetActive(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newStandupRepo(db.conn)

	standup := testStandup()
	require.NoError(t, repo.Create(standup))

	require.NoError(t, repo.SetActive(standup.ID, false))

	found, err := repo.GetByID(standup.ID)
	require.NoError(t, err)
	assert.False(t, found.IsActive)

	require.NoError(t, repo.SetActive(standup.ID, true))

	found, err = repo.GetByID(standup.ID)
	require.NoError(t, err)
	assert.True(t, found.IsActive)
}

func TestStandupRepository_UniqueChannel(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newStandupRepo(db.conn)

	require.NoError(t, repo.Create(testStandup()))
	assert.Error(t, repo.Create(testStandup()), "Expected unique constraint on slack_channel_id")
}
