package repository

import (
	"context"

	"github.com/alexanderramin/timesheet/internal/domain"
)

// TimeEntryRepo is the persistence interface for the timesheet table.
type TimeEntryRepo interface {
	// Upsert stores a synchronized entry keyed by its external entry id:
	// an UPDATE of all mutable fields where entry_id matches, falling back
	// to an INSERT when no row was affected.
	Upsert(ctx context.Context, e *domain.TimeEntry) error

	// Insert stores a new row unconditionally. Manual entries (nil
	// EntryID) are persisted with a NULL entry_id. The assigned row id is
	// written back to e.ID.
	Insert(ctx context.Context, e *domain.TimeEntry) error

	// DeleteNewest removes the row with the highest internal id: the most
	// recently inserted entry regardless of its day. A no-op when the
	// table is empty.
	DeleteNewest(ctx context.Context) error

	// ListSince returns all entries with day >= since (inclusive),
	// ordered ascending by day.
	ListSince(ctx context.Context, since string) ([]*domain.TimeEntry, error)

	// ProjectHoursSince aggregates SUM(minutes)/60 per project over
	// entries with day >= since.
	ProjectHoursSince(ctx context.Context, since string) ([]domain.ProjectHours, error)

	// DayMinutesSince aggregates SUM(minutes) per day over entries with
	// day >= since, ordered ascending by day. Totals stay in raw minutes.
	DayMinutesSince(ctx context.Context, since string) ([]domain.DayMinutes, error)
}
