package contract

import (
	"github.com/icos-labs/standup-bot/internal/clock"
	"github.com/icos-labs/standup-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	Schedules() ScheduleRepo
	Reports() ReportRepo
}

// ScheduleRepo persists the per-channel report schedule and the per-(channel,
// user) ask schedule. Getters return nil when nothing is stored: an absent
// schedule is a valid state, not an error.
type ScheduleRepo interface {
	SetReportTime(channel string, t *clock.TimeOfDay) error
	GetReportTime(channel string) (*clock.TimeOfDay, error)
	GetAllReportTimes() (map[string]*clock.TimeOfDay, error)
	ClearReportTime(channel string) error

	SetAskTime(user, channel string, t clock.TimeOfDay) error
	GetAskTime(user, channel string) (*clock.TimeOfDay, error)
	GetAllAskTimes() (map[string]map[string]clock.TimeOfDay, error)
	ClearAskTime(user, channel string) error
}

// ReportRepo persists submitted standups per channel. A channel's collection
// keeps submission order; adding a report for a user who already submitted
// replaces the earlier one in place.
type ReportRepo interface {
	AddReport(report entity.StandupReport) error
	GetReports(channel string) ([]entity.StandupReport, error)
	HasReport(user, channel string) (bool, error)
	ClearReports(channel string) error
}
