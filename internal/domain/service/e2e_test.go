package service

import (
	"context"
	"testing"

	"github.com/icos-labs/standup-bot/internal/clock"
	"github.com/icos-labs/standup-bot/internal/database"
	"github.com/icos-labs/standup-bot/internal/domain/entity"
	"github.com/icos-labs/standup-bot/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// End-to-end over a real store: two users submit, the scheduled minute
// arrives, the report goes out and the channel's data is cleared.
func TestScheduledReport_EndToEnd(t *testing.T) {
	db := database.SetupTestDB(t)
	defer database.CleanupTestDB(t, db)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dm := database.NewInstance(db)

	nine := clock.TimeOfDay{Hours: 9, Minutes: 0}
	require.NoError(t, dm.Schedules().SetReportTime("C111111111", &nine))

	require.NoError(t, dm.Reports().AddReport(entity.StandupReport{
		Channel: "C111111111", User: "U111111111", UserName: "alice",
		SubmittedAt: "2024-03-15: 08:50",
		Yesterday:   "shipped the importer", Today: "starting on exports", Obstacles: "none",
	}))
	require.NoError(t, dm.Reports().AddReport(entity.StandupReport{
		Channel: "C111111111", User: "U222222222", UserName: "bob",
		SubmittedAt: "2024-03-15: 08:55",
		Yesterday:   "code review", Today: "pairing with alice", Obstacles: "blocked on infra",
	}))

	messenger := mocks.NewMockMessenger(ctrl)
	messenger.EXPECT().
		Send("C111111111", gomock.Any(), true).
		DoAndReturn(func(channel, text string, markdown bool) error {
			assert.Contains(t, text, "alice")
			assert.Contains(t, text, "shipped the importer")
			assert.Contains(t, text, "bob")
			assert.Contains(t, text, "blocked on infra")
			return nil
		})

	standup := mocks.NewMockStandupService(ctrl)
	s := newScheduler(dm, messenger, standup, clockAt(9, 0))

	s.Tick()

	remaining, err := dm.Reports().GetReports("C111111111")
	require.NoError(t, err)
	assert.Nil(t, remaining, "Expected the channel's reports to be cleared after the scheduled report")
}

// End-to-end ask flow: the user is prompted at their ask time unless they
// already submitted for the channel.
func TestScheduledAsk_EndToEnd(t *testing.T) {
	db := database.SetupTestDB(t)
	defer database.CleanupTestDB(t, db)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dm := database.NewInstance(db)

	ten := clock.TimeOfDay{Hours: 10, Minutes: 0}
	require.NoError(t, dm.Schedules().SetAskTime("U111111111", "C222222222", ten))

	messenger := mocks.NewMockMessenger(ctrl)
	standup := mocks.NewMockStandupService(ctrl)

	started := make(chan struct{})
	standup.EXPECT().
		RunStandup(gomock.Any(), "U111111111", "C222222222").
		DoAndReturn(func(ctx context.Context, user, channel string) error {
			close(started)
			return nil
		})

	s := newScheduler(dm, messenger, standup, clockAt(10, 0))
	s.Tick()
	<-started

	// After the user submits, the next matching tick must not re-prompt
	require.NoError(t, dm.Reports().AddReport(entity.StandupReport{
		Channel: "C222222222", User: "U111111111", UserName: "alice",
		SubmittedAt: "2024-03-15: 10:01",
	}))

	s.Tick()
}
