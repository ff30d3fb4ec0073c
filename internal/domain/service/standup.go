package service

import (
	"context"
	"fmt"

	"github.com/icos-labs/standup-bot/internal/clock"
	"github.com/icos-labs/standup-bot/internal/domain/contract"
	"github.com/icos-labs/standup-bot/internal/domain/entity"
	"github.com/icos-labs/standup-bot/internal/logger"
)

const (
	questionYesterday = "What did you work on yesterday?"
	questionToday     = "What are you working on today?"
	questionObstacles = "Any obstacles?"
)

// dialogState names the steps of one standup conversation. The two terminal
// states are completed and abandoned; only completed persists a report.
type dialogState int

const (
	stateStarted dialogState = iota
	stateAskedYesterday
	stateAskedToday
	stateAskedObstacles
	stateCompleted
	stateAbandoned
)

type standupService struct {
	dm        contract.DataManager
	dialogs   contract.DialogOpener
	resolver  contract.NameResolver
	messenger contract.Messenger
	clk       *clock.Clock
}

func newStandup(
	dm contract.DataManager,
	dialogs contract.DialogOpener,
	resolver contract.NameResolver,
	messenger contract.Messenger,
	clk *clock.Clock,
) *standupService {
	return &standupService{
		dm:        dm,
		dialogs:   dialogs,
		resolver:  resolver,
		messenger: messenger,
		clk:       clk,
	}
}

// RunStandup walks one user through the three standup questions in a private
// conversation and stores the completed report for the channel. If the name
// lookup fails the dialog never starts; if the conversation ends before all
// three answers are in, nothing is stored.
func (s *standupService) RunStandup(ctx context.Context, userID, channelID string) error {
	userName, err := s.resolver.UserName(userID)
	if err != nil {
		return fmt.Errorf("failed to resolve user name for %s: %w", userID, err)
	}

	dialog, err := s.dialogs.OpenDialog(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to open dialog with %s: %w", userID, err)
	}
	defer dialog.Close()

	report := entity.StandupReport{
		Channel:  channelID,
		User:     userID,
		UserName: userName,
	}

	state := stateStarted
	for state != stateCompleted && state != stateAbandoned {
		switch state {
		case stateStarted:
			answer, err := dialog.Ask(ctx, questionYesterday)
			if err != nil {
				state = stateAbandoned
				break
			}
			report.Yesterday = answer
			state = stateAskedYesterday

		case stateAskedYesterday:
			answer, err := dialog.Ask(ctx, questionToday)
			if err != nil {
				state = stateAbandoned
				break
			}
			report.Today = answer
			state = stateAskedToday

		case stateAskedToday:
			answer, err := dialog.Ask(ctx, questionObstacles)
			if err != nil {
				state = stateAbandoned
				break
			}
			report.Obstacles = answer
			state = stateAskedObstacles

		case stateAskedObstacles:
			report.SubmittedAt = s.clk.Timestamp()
			state = stateCompleted
		}
	}

	if state == stateAbandoned {
		logger.Log.WithField("user", userID).Info("Standup dialog abandoned, no report stored")
		return nil
	}

	if err := s.dm.Reports().AddReport(report); err != nil {
		return fmt.Errorf("failed to store standup report: %w", err)
	}

	if err := dialog.Say("Thanks for doing your daily standup, " + userName + "!"); err != nil {
		logger.Log.WithField("user", userID).Warnf("Failed to thank user: %v", err)
	}

	ack := fmt.Sprintf("*%s* did their standup at %s", report.UserName, report.SubmittedAt)
	if err := s.messenger.Send(channelID, ack, true); err != nil {
		return fmt.Errorf("failed to announce standup in channel %s: %w", channelID, err)
	}

	return nil
}
