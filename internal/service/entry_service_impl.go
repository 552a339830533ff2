package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/timesheet/internal/contract"
	"github.com/alexanderramin/timesheet/internal/domain"
	"github.com/alexanderramin/timesheet/internal/repository"
)

type entryService struct {
	entries  repository.TimeEntryRepo
	observer UseCaseObserver
}

// NewEntryService creates the manual entry manager.
func NewEntryService(entries repository.TimeEntryRepo, observers ...UseCaseObserver) EntryService {
	return &entryService{
		entries:  entries,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *entryService) Create(ctx context.Context, req contract.CreateEntryRequest) (entry *domain.TimeEntry, err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "create_entry", startedAt, map[string]any{"project": req.Project}, err)
	}()

	if req.Project == "" {
		return nil, fmt.Errorf("project code is required")
	}
	if req.Minutes < 0 {
		return nil, fmt.Errorf("minutes must be non-negative, got %v", req.Minutes)
	}

	day := req.Day
	if day == "" {
		day = clockNow(req.Now).Format(domain.DateLayout)
	} else if _, err := time.Parse(domain.DateLayout, day); err != nil {
		return nil, fmt.Errorf("parsing day: %w", err)
	}

	entry = &domain.TimeEntry{
		Day:         day,
		Ticket:      req.Ticket,
		Description: req.Description,
		Minutes:     req.Minutes,
		Project:     domain.NormalizeProject(req.Project),
	}
	if err := s.entries.Insert(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *entryService) RemoveLast(ctx context.Context) (err error) {
	startedAt := time.Now()
	defer func() { observe(ctx, s.observer, "remove_entry", startedAt, nil, err) }()

	return s.entries.DeleteNewest(ctx)
}
