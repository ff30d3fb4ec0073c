package service

import (
	"testing"

	"github.com/icos-labs/standup-bot/mocks"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager  *mocks.MockDataManager
	mockScheduleRepo *mocks.MockScheduleRepo
	mockReportRepo   *mocks.MockReportRepo
	mockMessenger    *mocks.MockMessenger
	mockResolver     *mocks.MockNameResolver
	mockDialogs      *mocks.MockDialogOpener
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	scheduleRepo := mocks.NewMockScheduleRepo(ctrl)
	dm.EXPECT().Schedules().Return(scheduleRepo).AnyTimes()

	reportRepo := mocks.NewMockReportRepo(ctrl)
	dm.EXPECT().Reports().Return(reportRepo).AnyTimes()

	m = allMocks{
		mockDataManager:  dm,
		mockScheduleRepo: scheduleRepo,
		mockReportRepo:   reportRepo,
		mockMessenger:    mocks.NewMockMessenger(ctrl),
		mockResolver:     mocks.NewMockNameResolver(ctrl),
		mockDialogs:      mocks.NewMockDialogOpener(ctrl),
	}

	return
}
