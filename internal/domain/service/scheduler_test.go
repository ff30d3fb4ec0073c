package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/icos-labs/standup-bot/internal/clock"
	"github.com/icos-labs/standup-bot/internal/domain/entity"
	"github.com/icos-labs/standup-bot/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func clockAt(hours, minutes int) *clock.Clock {
	return clock.NewAt(0, func() time.Time {
		return time.Date(2024, 3, 15, hours, minutes, 30, 0, time.UTC)
	})
}

func Test_newScheduler(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	standup := mocks.NewMockStandupService(ctrl)
	s := newScheduler(m.mockDataManager, m.mockMessenger, standup, clockAt(9, 0))

	require.NotNil(t, s)
	assert.Equal(t, m.mockDataManager, s.dm)
	assert.Equal(t, m.mockMessenger, s.messenger)
	assert.NotNil(t, s.cronEngine)
}

func Test_scheduler_Tick_ReportSweep(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	nine := clock.TimeOfDay{Hours: 9, Minutes: 0}
	ten := clock.TimeOfDay{Hours: 10, Minutes: 0}

	m.mockScheduleRepo.EXPECT().GetAllReportTimes().Return(map[string]*clock.TimeOfDay{
		"C111111111": &nine, // matches
		"C222222222": &ten,  // does not match
		"C333333333": nil,   // cancelled, never matches
	}, nil)

	reports := []entity.StandupReport{
		{Channel: "C111111111", User: "U111111111", UserName: "alice", SubmittedAt: "2024-03-15: 08:50"},
		{Channel: "C111111111", User: "U222222222", UserName: "bob", SubmittedAt: "2024-03-15: 08:55"},
	}
	m.mockReportRepo.EXPECT().GetReports("C111111111").Return(reports, nil)
	m.mockMessenger.EXPECT().Send("C111111111", FormatReports(reports), true).Return(nil)
	m.mockReportRepo.EXPECT().ClearReports("C111111111").Return(nil)

	m.mockScheduleRepo.EXPECT().GetAllAskTimes().Return(nil, nil)

	standup := mocks.NewMockStandupService(ctrl)
	s := newScheduler(m.mockDataManager, m.mockMessenger, standup, clockAt(9, 0))

	s.Tick()
}

func Test_scheduler_Tick_ReportSweep_NoSchedules(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	m.mockScheduleRepo.EXPECT().GetAllReportTimes().Return(nil, nil)
	m.mockScheduleRepo.EXPECT().GetAllAskTimes().Return(nil, nil)

	standup := mocks.NewMockStandupService(ctrl)
	s := newScheduler(m.mockDataManager, m.mockMessenger, standup, clockAt(9, 0))

	// No sends, no clears
	s.Tick()
}

func Test_scheduler_Tick_ReportSweep_EmptyChannelStillReports(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	nine := clock.TimeOfDay{Hours: 9, Minutes: 0}
	m.mockScheduleRepo.EXPECT().GetAllReportTimes().Return(map[string]*clock.TimeOfDay{
		"C111111111": &nine,
	}, nil)

	m.mockReportRepo.EXPECT().GetReports("C111111111").Return(nil, nil)
	m.mockMessenger.EXPECT().Send("C111111111", noReportDataMessage, true).Return(nil)
	m.mockReportRepo.EXPECT().ClearReports("C111111111").Return(nil)

	m.mockScheduleRepo.EXPECT().GetAllAskTimes().Return(nil, nil)

	standup := mocks.NewMockStandupService(ctrl)
	s := newScheduler(m.mockDataManager, m.mockMessenger, standup, clockAt(9, 0))

	s.Tick()
}

func Test_scheduler_Tick_AskSweep(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	m.mockScheduleRepo.EXPECT().GetAllReportTimes().Return(nil, nil)

	ten := clock.TimeOfDay{Hours: 10, Minutes: 0}
	later := clock.TimeOfDay{Hours: 10, Minutes: 5}
	m.mockScheduleRepo.EXPECT().GetAllAskTimes().Return(map[string]map[string]clock.TimeOfDay{
		"C222222222": {
			"U111111111": ten,   // matches, not yet submitted
			"U222222222": later, // does not match
		},
	}, nil)

	m.mockReportRepo.EXPECT().HasReport("U111111111", "C222222222").Return(false, nil)

	standup := mocks.NewMockStandupService(ctrl)
	started := make(chan struct{})
	standup.EXPECT().
		RunStandup(gomock.Any(), "U111111111", "C222222222").
		DoAndReturn(func(ctx context.Context, user, channel string) error {
			close(started)
			return nil
		})

	s := newScheduler(m.mockDataManager, m.mockMessenger, standup, clockAt(10, 0))
	s.Tick()

	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("Expected the standup dialog to be started")
	}
}

func Test_scheduler_Tick_AskSweep_SkipsSubmittedUser(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	m.mockScheduleRepo.EXPECT().GetAllReportTimes().Return(nil, nil)

	ten := clock.TimeOfDay{Hours: 10, Minutes: 0}
	m.mockScheduleRepo.EXPECT().GetAllAskTimes().Return(map[string]map[string]clock.TimeOfDay{
		"C222222222": {"U111111111": ten},
	}, nil)

	m.mockReportRepo.EXPECT().HasReport("U111111111", "C222222222").Return(true, nil)

	// RunStandup must not be called
	standup := mocks.NewMockStandupService(ctrl)

	s := newScheduler(m.mockDataManager, m.mockMessenger, standup, clockAt(10, 0))
	s.Tick()
}

func Test_scheduler_Tick_SweepFailuresAreIsolated(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	// A failing report sweep must not prevent the ask sweep
	m.mockScheduleRepo.EXPECT().GetAllReportTimes().Return(nil, errors.New("store unavailable"))
	m.mockScheduleRepo.EXPECT().GetAllAskTimes().Return(nil, nil)

	standup := mocks.NewMockStandupService(ctrl)
	s := newScheduler(m.mockDataManager, m.mockMessenger, standup, clockAt(9, 0))

	s.Tick()
}

func Test_scheduler_Tick_ReportFailureDoesNotClear(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	nine := clock.TimeOfDay{Hours: 9, Minutes: 0}
	m.mockScheduleRepo.EXPECT().GetAllReportTimes().Return(map[string]*clock.TimeOfDay{
		"C111111111": &nine,
	}, nil)

	m.mockReportRepo.EXPECT().GetReports("C111111111").Return(nil, nil)
	m.mockMessenger.EXPECT().Send("C111111111", gomock.Any(), true).Return(errors.New("slack is down"))
	// ClearReports must not be called when the send failed

	m.mockScheduleRepo.EXPECT().GetAllAskTimes().Return(nil, nil)

	standup := mocks.NewMockStandupService(ctrl)
	s := newScheduler(m.mockDataManager, m.mockMessenger, standup, clockAt(9, 0))

	s.Tick()
}
