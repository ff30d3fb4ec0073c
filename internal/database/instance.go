package database

import (
	"github.com/icos-labs/standup-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	scheduleRepo contract.ScheduleRepo
	reportRepo   contract.ReportRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	return &instance{
		scheduleRepo: newScheduleRepository(db.conn),
		reportRepo:   newReportRepository(db.conn),
	}
}

// Schedules returns the schedule repository
func (i *instance) Schedules() contract.ScheduleRepo {
	return i.scheduleRepo
}

// Reports returns the report repository
func (i *instance) Reports() contract.ReportRepo {
	return i.reportRepo
}
