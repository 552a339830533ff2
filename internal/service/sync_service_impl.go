package service

import (
	"context"
	"time"

	"github.com/alexanderramin/timesheet/internal/clockwork"
	"github.com/alexanderramin/timesheet/internal/contract"
	"github.com/alexanderramin/timesheet/internal/db"
	"github.com/alexanderramin/timesheet/internal/domain"
	"github.com/alexanderramin/timesheet/internal/jira"
	"github.com/alexanderramin/timesheet/internal/repository"
	"github.com/google/uuid"
)

type syncService struct {
	clockwork clockwork.Client
	jira      jira.Client
	uow       db.UnitOfWork
	observer  UseCaseObserver
}

// NewSyncService creates the synchronizer over the two external clients
// and the store's unit of work.
func NewSyncService(cw clockwork.Client, jc jira.Client, uow db.UnitOfWork, observers ...UseCaseObserver) SyncService {
	return &syncService{
		clockwork: cw,
		jira:      jc,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *syncService) Sync(ctx context.Context, req contract.SyncRequest) (result *contract.SyncResult, err error) {
	startedAt := time.Now()
	runID := uuid.New().String()
	fields := map[string]any{"run_id": runID, "horizon": req.Horizon}
	defer func() { observe(ctx, s.observer, "sync", startedAt, fields, err) }()

	now := clockNow(req.Now)
	start := now.AddDate(0, 0, -req.Horizon)

	logs, err := s.clockwork.FetchEntries(ctx, start, now)
	if err != nil {
		return nil, err
	}
	fields["entries"] = len(logs)

	// Issue metadata is memoized per run: one Jira round trip per
	// distinct issue, discarded when the sync returns.
	issues := make(map[string]*domain.IssueInfo)

	// The whole batch, Jira lookups included, runs inside one
	// transaction: a failure anywhere rolls back every upsert.
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		entries := repository.NewSQLiteTimeEntryRepo(tx)

		for _, w := range logs {
			day, err := w.Day()
			if err != nil {
				return err
			}

			issueID := w.Issue.ID.String()
			info, ok := issues[issueID]
			if !ok {
				info, err = s.jira.GetIssue(ctx, issueID)
				if err != nil {
					return err
				}
				issues[issueID] = info
			}

			entryID := w.ID
			entry := &domain.TimeEntry{
				EntryID:     &entryID,
				Day:         day,
				Ticket:      info.Key,
				Description: info.Summary,
				Minutes:     w.Minutes(),
				Project:     info.Project,
			}
			if err := entries.Upsert(ctx, entry); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &contract.SyncResult{
		Entries: len(logs),
		Start:   start.Format(domain.DateLayout),
		End:     now.Format(domain.DateLayout),
	}, nil
}
