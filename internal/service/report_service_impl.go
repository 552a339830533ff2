package service

import (
	"context"
	"time"

	"github.com/alexanderramin/timesheet/internal/contract"
	"github.com/alexanderramin/timesheet/internal/repository"
)

type reportService struct {
	entries  repository.TimeEntryRepo
	observer UseCaseObserver
}

// NewReportService creates the reporting views over the store.
func NewReportService(entries repository.TimeEntryRepo, observers ...UseCaseObserver) ReportService {
	return &reportService{
		entries:  entries,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *reportService) Report(ctx context.Context, req contract.ReportRequest) (resp *contract.ReportResponse, err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "report", startedAt, map[string]any{"horizon": req.Horizon}, err)
	}()

	since := windowStart(clockNow(req.Now), req.Horizon)

	projects, err := s.entries.ProjectHoursSince(ctx, since)
	if err != nil {
		return nil, err
	}
	days, err := s.entries.DayMinutesSince(ctx, since)
	if err != nil {
		return nil, err
	}

	return &contract.ReportResponse{Projects: projects, Days: days}, nil
}

func (s *reportService) Latest(ctx context.Context, req contract.ReportRequest) (resp *contract.LatestResponse, err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "latest", startedAt, map[string]any{"horizon": req.Horizon}, err)
	}()

	since := windowStart(clockNow(req.Now), req.Horizon)

	entries, err := s.entries.ListSince(ctx, since)
	if err != nil {
		return nil, err
	}
	report, err := s.Report(ctx, req)
	if err != nil {
		return nil, err
	}

	return &contract.LatestResponse{Entries: entries, Report: *report}, nil
}
