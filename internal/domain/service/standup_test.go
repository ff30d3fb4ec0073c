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

func testClock() *clock.Clock {
	return clock.NewAt(0, func() time.Time {
		return time.Date(2024, 3, 15, 8, 50, 0, 0, time.UTC)
	})
}

func TestStandupService_RunStandup(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	ctx := context.Background()
	dialog := mocks.NewMockDialog(ctrl)

	m.mockResolver.EXPECT().UserName("U111111111").Return("alice", nil)
	m.mockDialogs.EXPECT().OpenDialog(ctx, "U111111111").Return(dialog, nil)

	gomock.InOrder(
		dialog.EXPECT().Ask(ctx, "What did you work on yesterday?").Return("shipped the importer", nil),
		dialog.EXPECT().Ask(ctx, "What are you working on today?").Return("starting on exports", nil),
		dialog.EXPECT().Ask(ctx, "Any obstacles?").Return("waiting on credentials", nil),
	)

	wantReport := entity.StandupReport{
		Channel:     "C123456789",
		User:        "U111111111",
		UserName:    "alice",
		SubmittedAt: "2024-03-15: 08:50",
		Yesterday:   "shipped the importer",
		Today:       "starting on exports",
		Obstacles:   "waiting on credentials",
	}
	m.mockReportRepo.EXPECT().AddReport(wantReport).Return(nil)

	dialog.EXPECT().Say("Thanks for doing your daily standup, alice!").Return(nil)
	m.mockMessenger.EXPECT().
		Send("C123456789", "*alice* did their standup at 2024-03-15: 08:50", true).
		Return(nil)
	dialog.EXPECT().Close()

	s := newStandup(m.mockDataManager, m.mockDialogs, m.mockResolver, m.mockMessenger, testClock())

	err := s.RunStandup(ctx, "U111111111", "C123456789")
	require.NoError(t, err)
}

func TestStandupService_RunStandup_EmptyAnswersAccepted(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	ctx := context.Background()
	dialog := mocks.NewMockDialog(ctrl)

	m.mockResolver.EXPECT().UserName("U111111111").Return("alice", nil)
	m.mockDialogs.EXPECT().OpenDialog(ctx, "U111111111").Return(dialog, nil)

	dialog.EXPECT().Ask(ctx, gomock.Any()).Return("", nil).Times(3)

	m.mockReportRepo.EXPECT().AddReport(gomock.Any()).DoAndReturn(func(report entity.StandupReport) error {
		assert.Empty(t, report.Yesterday)
		assert.Empty(t, report.Today)
		assert.Empty(t, report.Obstacles)
		return nil
	})

	dialog.EXPECT().Say(gomock.Any()).Return(nil)
	m.mockMessenger.EXPECT().Send("C123456789", gomock.Any(), true).Return(nil)
	dialog.EXPECT().Close()

	s := newStandup(m.mockDataManager, m.mockDialogs, m.mockResolver, m.mockMessenger, testClock())

	err := s.RunStandup(ctx, "U111111111", "C123456789")
	require.NoError(t, err)
}

func TestStandupService_RunStandup_Abandoned(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	ctx := context.Background()
	dialog := mocks.NewMockDialog(ctrl)

	m.mockResolver.EXPECT().UserName("U111111111").Return("alice", nil)
	m.mockDialogs.EXPECT().OpenDialog(ctx, "U111111111").Return(dialog, nil)

	gomock.InOrder(
		dialog.EXPECT().Ask(ctx, "What did you work on yesterday?").Return("shipped the importer", nil),
		dialog.EXPECT().Ask(ctx, "What are you working on today?").Return("", errors.New("dialog closed")),
	)

	// No report stored, no announcement sent
	dialog.EXPECT().Close()

	s := newStandup(m.mockDataManager, m.mockDialogs, m.mockResolver, m.mockMessenger, testClock())

	err := s.RunStandup(ctx, "U111111111", "C123456789")
	require.NoError(t, err, "An abandoned dialog is not an error")
}

func TestStandupService_RunStandup_LookupFailure(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	m.mockResolver.EXPECT().UserName("U111111111").Return("", errors.New("user not found"))

	// The dialog is never opened
	s := newStandup(m.mockDataManager, m.mockDialogs, m.mockResolver, m.mockMessenger, testClock())

	err := s.RunStandup(context.Background(), "U111111111", "C123456789")
	assert.Error(t, err)
}

func TestStandupService_RunStandup_StoreFailure(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	ctx := context.Background()
	dialog := mocks.NewMockDialog(ctrl)

	m.mockResolver.EXPECT().UserName("U111111111").Return("alice", nil)
	m.mockDialogs.EXPECT().OpenDialog(ctx, "U111111111").Return(dialog, nil)
	dialog.EXPECT().Ask(ctx, gomock.Any()).Return("answer", nil).Times(3)
	m.mockReportRepo.EXPECT().AddReport(gomock.Any()).Return(errors.New("disk full"))
	dialog.EXPECT().Close()

	s := newStandup(m.mockDataManager, m.mockDialogs, m.mockResolver, m.mockMessenger, testClock())

	err := s.RunStandup(ctx, "U111111111", "C123456789")
	assert.Error(t, err)
}
