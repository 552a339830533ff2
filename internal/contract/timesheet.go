// Package contract defines the request/response structs crossing the
// service boundary.
package contract

import (
	"time"

	"github.com/alexanderramin/timesheet/internal/domain"
)

// SyncRequest asks the synchronizer to reconcile the window
// [today-Horizon, today] with the external services.
type SyncRequest struct {
	Horizon int
	Now     *time.Time // injectable clock for tests; nil means time.Now
}

// SyncResult reports the outcome of one sync run.
type SyncResult struct {
	Entries int    // worklogs fetched and applied
	Start   string // window start (ISO date)
	End     string // window end (ISO date)
}

// ReportRequest selects rows with day >= today-Horizon for the reporting
// views.
type ReportRequest struct {
	Horizon int
	Now     *time.Time
}

// ReportResponse carries both aggregate views over the report window.
type ReportResponse struct {
	Projects []domain.ProjectHours
	Days     []domain.DayMinutes
}

// LatestResponse lists every entry in the window plus the full report.
type LatestResponse struct {
	Entries []*domain.TimeEntry
	Report  ReportResponse
}

// CreateEntryRequest describes a manual timesheet entry.
type CreateEntryRequest struct {
	Project     string
	Minutes     float64
	Description string
	Ticket      string // optional
	Day         string // optional ISO date; empty means today
	Now         *time.Time
}
