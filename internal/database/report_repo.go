package database

import (
	"fmt"
	"sync"

	"github.com/icos-labs/standup-bot/internal/domain/contract"
	"github.com/icos-labs/standup-bot/internal/domain/entity"
)

const reportsDocID = "standupData"

// reportRepository stores submitted standups as one document mapping channel
// to an ordered list of reports. A list rather than a map keeps submission
// order stable for the formatted report; the (channel, user) key is enforced
// by replacing a user's earlier entry in place.
type reportRepository struct {
	docs *documents
	mu   sync.Mutex
}

func newReportRepository(db dbConn) contract.ReportRepo {
	return &reportRepository{docs: newDocuments(db)}
}

func (r *reportRepository) AddReport(report entity.StandupReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make(map[string][]entity.StandupReport)
	if _, err := r.docs.Get(reportsDocID, &data); err != nil {
		return fmt.Errorf("failed to load standup data: %w", err)
	}

	reports := data[report.Channel]
	replaced := false
	for i := range reports {
		if reports[i].User == report.User {
			reports[i] = report
			replaced = true
			break
		}
	}
	if !replaced {
		reports = append(reports, report)
	}
	data[report.Channel] = reports

	if err := r.docs.Save(reportsDocID, data); err != nil {
		return fmt.Errorf("failed to save standup data: %w", err)
	}

	return nil
}

func (r *reportRepository) GetReports(channel string) ([]entity.StandupReport, error) {
	data := make(map[string][]entity.StandupReport)
	found, err := r.docs.Get(reportsDocID, &data)
	if err != nil {
		return nil, fmt.Errorf("failed to load standup data: %w", err)
	}
	if !found {
		return nil, nil
	}

	return data[channel], nil
}

func (r *reportRepository) HasReport(user, channel string) (bool, error) {
	reports, err := r.GetReports(channel)
	if err != nil {
		return false, err
	}

	for _, report := range reports {
		if report.User == user {
			return true, nil
		}
	}

	return false, nil
}

func (r *reportRepository) ClearReports(channel string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make(map[string][]entity.StandupReport)
	found, err := r.docs.Get(reportsDocID, &data)
	if err != nil {
		return fmt.Errorf("failed to load standup data: %w", err)
	}
	if !found {
		return nil
	}

	if _, ok := data[channel]; !ok {
		return nil
	}

	delete(data, channel)
	if err := r.docs.Save(reportsDocID, data); err != nil {
		return fmt.Errorf("failed to save standup data: %w", err)
	}

	return nil
}
