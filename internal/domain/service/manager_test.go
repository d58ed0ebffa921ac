package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/standupbot/slack-standup-bot/internal/domain/contract"
	"github.com/standupbot/slack-standup-bot/internal/domain/entity"
	"github.com/standupbot/slack-standup-bot/mocks"
)

func mustClock(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04", value)
	require.NoError(t, err)
	return parsed.UTC()
}

func activeStandup() *entity.Standup {
	return &entity.Standup{
		ID:              1,
		Name:            "Daily standup",
		SlackChannelID:  "C123",
		SlackTeamID:     "T123",
		CreatorID:       "U111",
		Questions:       []string{"What did you accomplish %s?", "What will you work on today?"},
		Participants:    []string{"U111", "U222"},
		ScheduleTime:    "09:00",
		Timezone:        "UTC",
		Days:            "weekdays",
		DurationSeconds: 4 * 60 * 60,
		HolidayCountry:  "United States",
		IsActive:        true,
	}
}

func TestStandupService_Activate(t *testing.T) {
	now := mustClock(t, "2024-06-10 08:00") // Monday
	m, svc, ctrl := newServiceTestMock(t, now)
	defer ctrl.Finish()

	standup := activeStandup()
	m.mockStandupRepo.EXPECT().GetByID(standup.ID).Return(standup, nil).Times(1)

	require.NoError(t, svc.Standup.Activate(context.Background(), standup.ID))

	// Prompt, reminder and summary tasks are all registered.
	assert.Equal(t, 3, svc.engine.Len())

	prompt, ok := svc.engine.NextRun("prompt_1")
	require.True(t, ok)
	assert.Equal(t, mustClock(t, "2024-06-10 09:00"), prompt.UTC())

	reminder, ok := svc.engine.NextRun("reminder_1")
	require.True(t, ok)
	assert.Equal(t, mustClock(t, "2024-06-10 12:30"), reminder.UTC())

	summary, ok := svc.engine.NextRun("summary_1")
	require.True(t, ok)
	assert.Equal(t, mustClock(t, "2024-06-10 13:00"), summary.UTC())
}

func TestStandupService_ActivateStoredInactive(t *testing.T) {
	now := mustClock(t, "2024-06-10 08:00")
	m, svc, ctrl := newServiceTestMock(t, now)
	defer ctrl.Finish()

	standup := activeStandup()
	standup.IsActive = false
	m.mockStandupRepo.EXPECT().GetByID(standup.ID).Return(standup, nil).Times(1)
	m.mockStandupRepo.EXPECT().SetActive(standup.ID, true).Return(nil).Times(1)

	require.NoError(t, svc.Standup.Activate(context.Background(), standup.ID))
	assert.Equal(t, 3, svc.engine.Len())
}

func TestStandupService_ActivateExhaustedSchedule(t *testing.T) {
	now := mustClock(t, "2024-06-10 08:00")
	m, svc, ctrl := newServiceTestMock(t, now)
	defer ctrl.Finish()

	standup := activeStandup()
	standup.PatternJSON = `{"pattern_type":"one_time","time":"09:00","date":"2024-01-01"}`
	m.mockStandupRepo.EXPECT().GetByID(standup.ID).Return(standup, nil).Times(1)

	// An expired schedule is a terminal state, not an error.
	require.NoError(t, svc.Standup.Activate(context.Background(), standup.ID))
	assert.Equal(t, 0, svc.engine.Len())
}

func TestStandupService_ActivateNotFound(t *testing.T) {
	now := mustClock(t, "2024-06-10 08:00")
	m, svc, ctrl := newServiceTestMock(t, now)
	defer ctrl.Finish()

	m.mockStandupRepo.EXPECT().GetByID(int64(42)).Return(nil, nil).Times(1)

	assert.Error(t, svc.Standup.Activate(context.Background(), 42))
}

func TestStandupService_Deactivate(t *testing.T) {
	now := mustClock(t, "2024-06-10 08:00")
	m, svc, ctrl := newServiceTestMock(t, now)
	defer ctrl.Finish()

	standup := activeStandup()
	m.mockStandupRepo.EXPECT().GetByID(standup.ID).Return(standup, nil).Times(1)
	require.NoError(t, svc.Standup.Activate(context.Background(), standup.ID))
	require.Equal(t, 3, svc.engine.Len())

	m.mockStandupRepo.EXPECT().SetActive(standup.ID, false).Return(nil).Times(1)
	require.NoError(t, svc.Standup.Deactivate(context.Background(), standup.ID))
	assert.Equal(t, 0, svc.engine.Len())
}

func TestStandupService_ReconfigureRebuildsTasks(t *testing.T) {
	now := mustClock(t, "2024-06-10 08:00")
	m, svc, ctrl := newServiceTestMock(t, now)
	defer ctrl.Finish()

	standup := activeStandup()
	m.mockStandupRepo.EXPECT().GetByID(standup.ID).Return(standup, nil).Times(1)
	require.NoError(t, svc.Standup.Activate(context.Background(), standup.ID))

	// Reconfigure picks up the new time wholesale.
	updated := activeStandup()
	updated.ScheduleTime = "14:00"
	m.mockStandupRepo.EXPECT().GetByID(standup.ID).Return(updated, nil).Times(1)
	require.NoError(t, svc.Standup.Reconfigure(context.Background(), standup.ID))

	assert.Equal(t, 3, svc.engine.Len())
	prompt, ok := svc.engine.NextRun("prompt_1")
	require.True(t, ok)
	assert.Equal(t, mustClock(t, "2024-06-10 14:00"), prompt.UTC())
}

func TestStandupService_CreateStandupAppliesDefaults(t *testing.T) {
	now := mustClock(t, "2024-06-10 08:00")
	m, svc, ctrl := newServiceTestMock(t, now)
	defer ctrl.Finish()

	m.mockStandupRepo.EXPECT().GetBySlackChannelID("C123").Return(nil, nil).Times(1)
	m.mockStandupRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(s *entity.Standup) error {
		s.ID = 7
		require.Equal(t, "09:00", s.ScheduleTime)
		require.Equal(t, "UTC", s.Timezone)
		require.Equal(t, "weekdays", s.Days)
		require.Equal(t, 4*60*60, s.DurationSeconds)
		require.Equal(t, "United States", s.HolidayCountry)
		require.NotEmpty(t, s.Questions)
		require.True(t, s.IsActive)
		return nil
	}).Times(1)

	created := &entity.Standup{
		SlackChannelID: "C123",
		SlackTeamID:    "T123",
		CreatorID:      "U111",
		Participants:   []string{"U111"},
	}
	m.mockStandupRepo.EXPECT().GetByID(int64(7)).DoAndReturn(func(int64) (*entity.Standup, error) {
		return created, nil
	}).Times(1)

	require.NoError(t, svc.Standup.CreateStandup(context.Background(), created))
	assert.Equal(t, 3, svc.engine.Len())
}

func TestStandupService_CreateStandupChannelTaken(t *testing.T) {
	now := mustClock(t, "2024-06-10 08:00")
	m, svc, ctrl := newServiceTestMock(t, now)
	defer ctrl.Finish()

	m.mockStandupRepo.EXPECT().GetBySlackChannelID("C123").Return(activeStandup(), nil).Times(1)

	err := svc.Standup.CreateStandup(context.Background(), &entity.Standup{SlackChannelID: "C123"})
	assert.Error(t, err)
}

func TestStandupService_UpdateConfig(t *testing.T) {
	tests := []struct {
		name        string
		configType  string
		configValue string
		wantErr     bool
		check       func(t *testing.T, s *entity.Standup)
	}{
		{
			name:        "Should update the schedule time",
			configType:  "time",
			configValue: "10:30",
			check: func(t *testing.T, s *entity.Standup) {
				assert.Equal(t, "10:30", s.ScheduleTime)
			},
		},
		{
			name:        "Should update the day filter",
			configType:  "days",
			configValue: "mon,wed,fri",
			check: func(t *testing.T, s *entity.Standup) {
				assert.Equal(t, "mon,wed,fri", s.Days)
			},
		},
		{
			name:        "Should update the timezone",
			configType:  "timezone",
			configValue: "Europe/Berlin",
			check: func(t *testing.T, s *entity.Standup) {
				assert.Equal(t, "Europe/Berlin", s.Timezone)
			},
		},
		{
			name:        "Should update skipholidays",
			configType:  "skipholidays",
			configValue: "true",
			check: func(t *testing.T, s *entity.Standup) {
				assert.True(t, s.SkipHolidays)
			},
		},
		{
			name:        "Should reject an invalid time",
			configType:  "time",
			configValue: "25:00",
			wantErr:     true,
		},
		{
			name:        "Should reject an invalid timezone",
			configType:  "timezone",
			configValue: "Mars/Olympus",
			wantErr:     true,
		},
		{
			name:        "Should reject a bad skipholidays value",
			configType:  "skipholidays",
			configValue: "maybe",
			wantErr:     true,
		},
		{
			name:        "Should reject an unknown option",
			configType:  "color",
			configValue: "blue",
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := mustClock(t, "2024-06-10 08:00")
			m, svc, ctrl := newServiceTestMock(t, now)
			defer ctrl.Finish()

			standup := activeStandup()
			m.mockStandupRepo.EXPECT().GetByID(standup.ID).Return(standup, nil).Times(1)

			if !tt.wantErr {
				m.mockStandupRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(s *entity.Standup) error {
					tt.check(t, s)
					return nil
				}).Times(1)
				// Reconfigure reloads and reschedules.
				m.mockStandupRepo.EXPECT().GetByID(standup.ID).Return(standup, nil).Times(1)
			}

			err := svc.Standup.UpdateConfig(context.Background(), standup.ID, tt.configType, tt.configValue)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestStandupService_Participants(t *testing.T) {
	now := mustClock(t, "2024-06-10 08:00")
	m, svc, ctrl := newServiceTestMock(t, now)
	defer ctrl.Finish()

	standup := activeStandup()
	m.mockStandupRepo.EXPECT().GetByID(standup.ID).Return(standup, nil).Times(1)
	m.mockStandupRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(s *entity.Standup) error {
		assert.Contains(t, s.Participants, "U333")
		return nil
	}).Times(1)
	require.NoError(t, svc.Standup.AddParticipant(context.Background(), standup.ID, "U333"))

	// Duplicate add is rejected.
	m.mockStandupRepo.EXPECT().GetByID(standup.ID).Return(standup, nil).Times(1)
	assert.Error(t, svc.Standup.AddParticipant(context.Background(), standup.ID, "U333"))

	// Remove.
	m.mockStandupRepo.EXPECT().GetByID(standup.ID).Return(standup, nil).Times(1)
	m.mockStandupRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(s *entity.Standup) error {
		assert.NotContains(t, s.Participants, "U333")
		return nil
	}).Times(1)
	require.NoError(t, svc.Standup.RemoveParticipant(context.Background(), standup.ID, "U333"))

	// Removing a non-member is rejected.
	m.mockStandupRepo.EXPECT().GetByID(standup.ID).Return(standup, nil).Times(1)
	assert.Error(t, svc.Standup.RemoveParticipant(context.Background(), standup.ID, "U999"))
}

func TestStandupService_RecordResponse(t *testing.T) {
	now := mustClock(t, "2024-06-10 23:30")
	m, svc, ctrl := newServiceTestMock(t, now)
	defer ctrl.Finish()

	standup := activeStandup()
	standup.Timezone = "America/New_York" // 23:30 UTC is still June 10th locally
	m.mockStandupRepo.EXPECT().GetByID(standup.ID).Return(standup, nil).Times(1)

	txDM := mocks.NewMockDataManager(ctrl)
	txResponses := mocks.NewMockResponseRepo(ctrl)
	txDM.EXPECT().Response().Return(txResponses).AnyTimes()
	txResponses.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(r *entity.Response) error {
		assert.Equal(t, standup.ID, r.StandupID)
		assert.Equal(t, "U111", r.SlackUserID)
		assert.Equal(t, "2024-06-10", r.ResponseDate)
		assert.Equal(t, "shipped it", r.Content)
		return nil
	}).Times(1)

	m.mockDataManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(contract.DataManager) error) error {
			return fn(txDM)
		}).Times(1)

	require.NoError(t, svc.Standup.RecordResponse(context.Background(), standup.ID, "U111", "shipped it"))
}

func TestStandupService_ShouldRun(t *testing.T) {
	now := mustClock(t, "2024-06-10 08:00")
	_, svc, ctrl := newServiceTestMock(t, now)
	defer ctrl.Finish()

	standup := activeStandup()
	standup.SkipHolidays = true

	july4 := mustClock(t, "2024-07-04 09:00") // Thursday, Independence Day
	saturday := mustClock(t, "2024-07-06 09:00")
	monday := mustClock(t, "2024-07-08 09:00")

	assert.False(t, svc.Standup.shouldRun(july4, standup), "holiday should be skipped")
	assert.False(t, svc.Standup.shouldRun(saturday, standup), "weekend fails the day filter")
	assert.True(t, svc.Standup.shouldRun(monday, standup))

	// Without the holiday flag, July 4th runs.
	standup.SkipHolidays = false
	assert.True(t, svc.Standup.shouldRun(july4, standup))
}

func TestStandupService_LastStandupLabel(t *testing.T) {
	now := mustClock(t, "2024-06-10 08:00")
	_, svc, ctrl := newServiceTestMock(t, now)
	defer ctrl.Finish()

	tests := []struct {
		name  string
		days  string
		today string
		want  string
	}{
		{
			name:  "Should say yesterday midweek",
			days:  "weekdays",
			today: "2024-07-10 09:00", // Wednesday
			want:  "yesterday",
		},
		{
			name:  "Should name the weekday across a weekend",
			days:  "weekdays",
			today: "2024-07-08 09:00", // Monday, last run Friday
			want:  "on Friday",
		},
		{
			name:  "Should fall back to the date a week or more back",
			days:  "mon",
			today: "2024-07-08 09:00", // Monday, last run previous Monday
			want:  "on 2024-07-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			standup := activeStandup()
			standup.Days = tt.days
			assert.Equal(t, tt.want, svc.Standup.lastStandupLabel(standup, mustClock(t, tt.today)))
		})
	}
}

func TestStandupService_OOOLifecycle(t *testing.T) {
	now := mustClock(t, "2024-06-10 08:00")
	m, svc, ctrl := newServiceTestMock(t, now)
	defer ctrl.Finish()

	var storedID string
	m.mockOOORepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(p *entity.OOOPeriod) error {
		storedID = p.ID
		require.Equal(t, "U111", p.SlackUserID)
		return nil
	}).Times(1)

	period, err := svc.Standup.AddUserOOO(context.Background(), "U111", "2024-07-01", "2024-07-05", "vacation")
	require.NoError(t, err)
	assert.Equal(t, storedID, period.ID)
	assert.True(t, svc.ooo.IsUserOOO("U111", mustClock(t, "2024-07-03 00:00")))

	m.mockOOORepo.EXPECT().GetByUser("U111").Return([]*entity.OOOPeriod{period}, nil).Times(1)
	m.mockOOORepo.EXPECT().Delete(period.ID).Return(nil).Times(1)
	require.NoError(t, svc.Standup.RemoveUserOOO(context.Background(), "U111", "2024-07-01", "2024-07-05"))
	assert.False(t, svc.ooo.IsUserOOO("U111", mustClock(t, "2024-07-03 00:00")))

	// Removing a range that doesn't exist is an error.
	m.mockOOORepo.EXPECT().GetByUser("U111").Return(nil, nil).Times(1)
	assert.Error(t, svc.Standup.RemoveUserOOO(context.Background(), "U111", "2024-07-01", "2024-07-05"))
}

func TestStandupService_AddCustomHoliday(t *testing.T) {
	now := mustClock(t, "2024-06-10 08:00")
	m, svc, ctrl := newServiceTestMock(t, now)
	defer ctrl.Finish()

	m.mockHolidayRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(h *entity.CustomHoliday) error {
		assert.Equal(t, "2024-03-14", h.Date)
		assert.Equal(t, "Offsite", h.Name)
		return nil
	}).Times(1)

	require.NoError(t, svc.Standup.AddCustomHoliday(context.Background(), "2024-03-14", "Offsite"))
	assert.True(t, svc.holidays.IsHoliday(mustClock(t, "2024-03-14 00:00"), "United States"))

	// Invalid dates never reach storage.
	assert.Error(t, svc.Standup.AddCustomHoliday(context.Background(), "bad-date", "x"))
}

func TestStandupService_Init(t *testing.T) {
	now := mustClock(t, "2024-06-10 08:00")
	m, svc, ctrl := newServiceTestMock(t, now)
	defer ctrl.Finish()

	m.mockHolidayRepo.EXPECT().GetAll().Return([]*entity.CustomHoliday{
		{Date: "2024-03-14", Name: "Offsite"},
	}, nil).Times(1)
	m.mockOOORepo.EXPECT().GetAll().Return([]*entity.OOOPeriod{
		{ID: "p1", SlackUserID: "U111", StartDate: "2024-07-01", EndDate: "2024-07-05"},
	}, nil).Times(1)

	standup := activeStandup()
	m.mockStandupRepo.EXPECT().GetActive().Return([]*entity.Standup{standup}, nil).Times(1)
	m.mockStandupRepo.EXPECT().GetByID(standup.ID).Return(standup, nil).Times(1)

	require.NoError(t, svc.Standup.Init(context.Background()))

	assert.Equal(t, 3, svc.engine.Len())
	assert.True(t, svc.holidays.IsHoliday(mustClock(t, "2024-03-14 00:00"), "United States"))
	assert.True(t, svc.ooo.IsUserOOO("U111", mustClock(t, "2024-07-02 00:00")))
}
