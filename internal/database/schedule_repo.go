package database

import (
	"fmt"
	"sync"

	"github.com/icos-labs/standup-bot/internal/clock"
	"github.com/icos-labs/standup-bot/internal/domain/contract"
)

const (
	reportTimesDocID = "standupTimes"
	askTimesDocID    = "askingtimes"
)

// scheduleRepository stores schedules as two whole documents: a channel ->
// time mapping for report times and a channel -> user -> time mapping for ask
// times. Each mutation is a read-modify-write of the full document, serialized
// by mu so two in-process writers cannot lose each other's update.
type scheduleRepository struct {
	docs *documents
	mu   sync.Mutex
}

func newScheduleRepository(db dbConn) contract.ScheduleRepo {
	return &scheduleRepository{docs: newDocuments(db)}
}

func (r *scheduleRepository) SetReportTime(channel string, t *clock.TimeOfDay) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	times := make(map[string]*clock.TimeOfDay)
	if _, err := r.docs.Get(reportTimesDocID, &times); err != nil {
		return fmt.Errorf("failed to load report times: %w", err)
	}

	times[channel] = t
	if err := r.docs.Save(reportTimesDocID, times); err != nil {
		return fmt.Errorf("failed to save report times: %w", err)
	}

	return nil
}

func (r *scheduleRepository) GetReportTime(channel string) (*clock.TimeOfDay, error) {
	times, err := r.GetAllReportTimes()
	if err != nil {
		return nil, err
	}

	return times[channel], nil
}

func (r *scheduleRepository) GetAllReportTimes() (map[string]*clock.TimeOfDay, error) {
	times := make(map[string]*clock.TimeOfDay)
	found, err := r.docs.Get(reportTimesDocID, &times)
	if err != nil {
		return nil, fmt.Errorf("failed to load report times: %w", err)
	}
	if !found {
		return nil, nil
	}

	return times, nil
}

func (r *scheduleRepository) ClearReportTime(channel string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	times := make(map[string]*clock.TimeOfDay)
	found, err := r.docs.Get(reportTimesDocID, &times)
	if err != nil {
		return fmt.Errorf("failed to load report times: %w", err)
	}
	if !found {
		return nil
	}

	delete(times, channel)
	if err := r.docs.Save(reportTimesDocID, times); err != nil {
		return fmt.Errorf("failed to save report times: %w", err)
	}

	return nil
}

func (r *scheduleRepository) SetAskTime(user, channel string, t clock.TimeOfDay) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	times := make(map[string]map[string]clock.TimeOfDay)
	if _, err := r.docs.Get(askTimesDocID, &times); err != nil {
		return fmt.Errorf("failed to load ask times: %w", err)
	}

	if times[channel] == nil {
		times[channel] = make(map[string]clock.TimeOfDay)
	}
	times[channel][user] = t

	if err := r.docs.Save(askTimesDocID, times); err != nil {
		return fmt.Errorf("failed to save ask times: %w", err)
	}

	return nil
}

func (r *scheduleRepository) GetAskTime(user, channel string) (*clock.TimeOfDay, error) {
	times, err := r.GetAllAskTimes()
	if err != nil {
		return nil, err
	}

	channelTimes, ok := times[channel]
	if !ok {
		return nil, nil
	}

	t, ok := channelTimes[user]
	if !ok {
		return nil, nil
	}

	return &t, nil
}

func (r *scheduleRepository) GetAllAskTimes() (map[string]map[string]clock.TimeOfDay, error) {
	times := make(map[string]map[string]clock.TimeOfDay)
	found, err := r.docs.Get(askTimesDocID, &times)
	if err != nil {
		return nil, fmt.Errorf("failed to load ask times: %w", err)
	}
	if !found {
		return nil, nil
	}

	return times, nil
}

func (r *scheduleRepository) ClearAskTime(user, channel string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	times := make(map[string]map[string]clock.TimeOfDay)
	found, err := r.docs.Get(askTimesDocID, &times)
	if err != nil {
		return fmt.Errorf("failed to load ask times: %w", err)
	}
	if !found {
		return nil
	}

	if channelTimes, ok := times[channel]; ok {
		delete(channelTimes, user)
		if len(channelTimes) == 0 {
			delete(times, channel)
		}
	}

	if err := r.docs.Save(askTimesDocID, times); err != nil {
		return fmt.Errorf("failed to save ask times: %w", err)
	}

	return nil
}
