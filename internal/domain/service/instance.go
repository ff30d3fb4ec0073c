package service

import (
	"github.com/icos-labs/standup-bot/internal/clock"
	"github.com/icos-labs/standup-bot/internal/domain/contract"
)

type Instance struct {
	Standup   *standupService
	Scheduler *scheduler
}

func NewInstance(
	dm contract.DataManager,
	messenger contract.Messenger,
	resolver contract.NameResolver,
	dialogs contract.DialogOpener,
	clk *clock.Clock,
) *Instance {
	standup := newStandup(dm, dialogs, resolver, messenger, clk)

	return &Instance{
		Standup:   standup,
		Scheduler: newScheduler(dm, messenger, standup, clk),
	}
}
