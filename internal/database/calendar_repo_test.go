package database

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standupbot/slack-standup-bot/internal/domain/entity"
)

func TestOOORepository_CreateAndGet(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newOOORepo(db.conn)

	period := &entity.OOOPeriod{
		ID:          uuid.NewString(),
		SlackUserID: "U111",
		StartDate:   "2024-07-01",
		EndDate:     "2024-07-05",
		Reason:      "vacation",
	}
	require.NoError(t, repo.Create(period))

	other := &entity.OOOPeriod{
		ID:          uuid.NewString(),
		SlackUserID: "U222",
		StartDate:   "2024-06-15",
		EndDate:     "2024-06-20",
	}
	require.NoError(t, repo.Create(other))

	byUser, err := repo.GetByUser("U111")
	require.NoError(t, err)
	require.Len(t, byUser, 1)
	assert.Equal(t, period.ID, byUser[0].ID)
	assert.Equal(t, "vacation", byUser[0].Reason)

	all, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	// Ordered by start date.
	assert.Equal(t, other.ID, all[0].ID)
	assert.Equal(t, period.ID, all[1].ID)
}

func TestOOORepository_Delete(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newOOORepo(db.conn)

	period := &entity.OOOPeriod{
		ID:          uuid.NewString(),
		SlackUserID: "U111",
		StartDate:   "2024-07-01",
		EndDate:     "2024-07-05",
	}
	require.NoError(t, repo.Create(period))
	require.NoError(t, repo.Delete(period.ID))

	byUser, err := repo.GetByUser("U111")
	require.NoError(t, err)
	assert.Empty(t, byUser)

	// Deleting an unknown id is a no-op.
	assert.NoError(t, repo.Delete("nonexistent"))
}

func TestHolidayRepository_UpsertAndGetAll(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newHolidayRepo(db.conn)

	require.NoError(t, repo.Upsert(&entity.CustomHoliday{Date: "2024-12-24", Name: "Company holiday"}))
	require.NoError(t, repo.Upsert(&entity.CustomHoliday{Date: "2024-03-14", Name: "Offsite"}))

	// Same date replaces the name.
	require.NoError(t, repo.Upsert(&entity.CustomHoliday{Date: "2024-12-24", Name: "Winter break"}))

	holidays, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, holidays, 2)
	assert.Equal(t, "2024-03-14", holidays[0].Date)
	assert.Equal(t, "Offsite", holidays[0].Name)
	assert.Equal(t, "2024-12-24", holidays[1].Date)
	assert.Equal(t, "Winter break", holidays[1].Name)
}
