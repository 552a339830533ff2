package service

import (
	"context"

	"github.com/alexanderramin/timesheet/internal/contract"
	"github.com/alexanderramin/timesheet/internal/domain"
)

// SyncService reconciles Clockwork worklogs and Jira issue metadata into
// the local timesheet store.
type SyncService interface {
	Sync(ctx context.Context, req contract.SyncRequest) (*contract.SyncResult, error)
}

// ReportService derives the reporting views from the store.
type ReportService interface {
	Report(ctx context.Context, req contract.ReportRequest) (*contract.ReportResponse, error)
	Latest(ctx context.Context, req contract.ReportRequest) (*contract.LatestResponse, error)
}

// EntryService handles manual entries, bypassing synchronization.
type EntryService interface {
	Create(ctx context.Context, req contract.CreateEntryRequest) (*domain.TimeEntry, error)
	RemoveLast(ctx context.Context) error
}
