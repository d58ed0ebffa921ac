package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/standupbot/slack-standup-bot/mocks"
)

type allMocks struct {
	mockDataManager *mocks.MockDataManager
	mockStandupRepo *mocks.MockStandupRepo
	mockResponses   *mocks.MockResponseRepo
	mockOOORepo     *mocks.MockOOORepo
	mockHolidayRepo *mocks.MockHolidayRepo
	mockMessenger   *mocks.MockMessenger
	mockSummarizer  *mocks.MockSummaryGenerator
}

// newServiceTestMock builds a fully mocked Instance with a frozen clock so
// scheduling tests are deterministic.
func newServiceTestMock(t *testing.T, now time.Time) (m allMocks, svc *Instance, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	standupRepo := mocks.NewMockStandupRepo(ctrl)
	dm.EXPECT().Standup().Return(standupRepo).AnyTimes()

	responseRepo := mocks.NewMockResponseRepo(ctrl)
	dm.EXPECT().Response().Return(responseRepo).AnyTimes()

	oooRepo := mocks.NewMockOOORepo(ctrl)
	dm.EXPECT().OOO().Return(oooRepo).AnyTimes()

	holidayRepo := mocks.NewMockHolidayRepo(ctrl)
	dm.EXPECT().Holiday().Return(holidayRepo).AnyTimes()

	messenger := mocks.NewMockMessenger(ctrl)
	summarizer := mocks.NewMockSummaryGenerator(ctrl)

	m = allMocks{
		mockDataManager: dm,
		mockStandupRepo: standupRepo,
		mockResponses:   responseRepo,
		mockOOORepo:     oooRepo,
		mockHolidayRepo: holidayRepo,
		mockMessenger:   messenger,
		mockSummarizer:  summarizer,
	}

	svc = NewInstance(dm, messenger, summarizer, zap.NewNop(),
		WithClock(func() time.Time { return now }))
	require.NotNil(t, svc)
	require.NotNil(t, svc.Standup)

	return
}
