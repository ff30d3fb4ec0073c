package contract

import "context"

// StandupService runs the three-question standup dialog for one (user,
// channel) pair and persists the completed report.
type StandupService interface {
	RunStandup(ctx context.Context, userID, channelID string) error
}
