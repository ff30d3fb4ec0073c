package service

import (
	"context"

	"github.com/icos-labs/standup-bot/internal/clock"
	"github.com/icos-labs/standup-bot/internal/domain/contract"
	"github.com/icos-labs/standup-bot/internal/logger"
	"github.com/robfig/cron/v3"
)

// scheduler drives the periodic sweep over all stored schedules. Every tick
// compares the normalized current minute against every report time and every
// ask time; matches fire exactly once because the tick cadence equals the
// minute granularity of the comparison. A minute missed under load is skipped,
// there is no catch-up.
type scheduler struct {
	dm         contract.DataManager
	messenger  contract.Messenger
	standup    contract.StandupService
	clk        *clock.Clock
	cronEngine *cron.Cron
}

func newScheduler(
	dm contract.DataManager,
	messenger contract.Messenger,
	standup contract.StandupService,
	clk *clock.Clock,
) *scheduler {
	return &scheduler{
		dm:         dm,
		messenger:  messenger,
		standup:    standup,
		clk:        clk,
		cronEngine: cron.New(),
	}
}

// Start registers the sweep on the given cron spec ("@every 1m" in normal
// operation) and starts the engine.
func (s *scheduler) Start(spec string) error {
	if _, err := s.cronEngine.AddFunc(spec, s.Tick); err != nil {
		return err
	}

	s.cronEngine.Start()
	logger.Log.Infof("Scheduler started with spec %q", spec)
	return nil
}

// Stop stops the engine and waits for a running sweep to finish.
func (s *scheduler) Stop() {
	ctx := s.cronEngine.Stop()
	<-ctx.Done()
	logger.Log.Info("Scheduler stopped")
}

// Tick runs both sweeps against the current normalized minute. The two sweeps
// act on disjoint key spaces, so their order does not matter.
func (s *scheduler) Tick() {
	now := s.clk.TimeOfDay()
	s.sweepReports(now)
	s.sweepAsks(now)
}

func (s *scheduler) sweepReports(now clock.TimeOfDay) {
	times, err := s.dm.Schedules().GetAllReportTimes()
	if err != nil {
		logger.Log.Errorf("Report sweep: failed to load schedules: %v", err)
		return
	}

	for channel, reportTime := range times {
		if reportTime == nil || !reportTime.Equal(now) {
			continue
		}

		if err := s.generateReport(channel); err != nil {
			logger.Log.WithField("channel", channel).Errorf("Report sweep: %v", err)
		}
	}
}

// generateReport posts the channel's collated report and clears the stored
// standups so the next reporting window starts empty.
func (s *scheduler) generateReport(channel string) error {
	reports, err := s.dm.Reports().GetReports(channel)
	if err != nil {
		return err
	}

	if err := s.messenger.Send(channel, FormatReports(reports), true); err != nil {
		return err
	}

	return s.dm.Reports().ClearReports(channel)
}

func (s *scheduler) sweepAsks(now clock.TimeOfDay) {
	askTimes, err := s.dm.Schedules().GetAllAskTimes()
	if err != nil {
		logger.Log.Errorf("Ask sweep: failed to load schedules: %v", err)
		return
	}

	for channel, users := range askTimes {
		for user, askTime := range users {
			if !askTime.Equal(now) {
				continue
			}

			submitted, err := s.dm.Reports().HasReport(user, channel)
			if err != nil {
				logger.Log.WithField("user", user).Errorf("Ask sweep: %v", err)
				continue
			}
			if submitted {
				// Already reported in this window, don't prompt again
				continue
			}

			go func(user, channel string) {
				if err := s.standup.RunStandup(context.Background(), user, channel); err != nil {
					logger.Log.WithField("user", user).Errorf("Ask sweep: standup failed: %v", err)
				}
			}(user, channel)
		}
	}
}
