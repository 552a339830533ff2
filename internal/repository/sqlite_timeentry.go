package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/timesheet/internal/db"
	"github.com/alexanderramin/timesheet/internal/domain"
)

const timeEntryColumns = "id, entry_id, day, ticket, description, minutes, project"

// SQLiteTimeEntryRepo implements TimeEntryRepo over a SQLite database.
// It accepts a db.DBTX so the sync batch can run it inside a transaction.
type SQLiteTimeEntryRepo struct {
	db db.DBTX
}

// NewSQLiteTimeEntryRepo creates a new SQLiteTimeEntryRepo.
func NewSQLiteTimeEntryRepo(dbtx db.DBTX) *SQLiteTimeEntryRepo {
	return &SQLiteTimeEntryRepo{db: dbtx}
}

func (r *SQLiteTimeEntryRepo) Upsert(ctx context.Context, e *domain.TimeEntry) error {
	if e.EntryID == nil {
		return fmt.Errorf("upserting time entry: entry id is required")
	}

	query := `UPDATE timesheet SET ticket = ?, description = ?, minutes = ?, project = ?, day = ?
		WHERE entry_id = ?`
	res, err := r.db.ExecContext(ctx, query,
		nullableString(e.Ticket), e.Description, e.Minutes, e.Project, e.Day, *e.EntryID)
	if err != nil {
		return fmt.Errorf("updating time entry %d: %w", *e.EntryID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if affected > 0 {
		return nil
	}
	return r.Insert(ctx, e)
}

func (r *SQLiteTimeEntryRepo) Insert(ctx context.Context, e *domain.TimeEntry) error {
	query := `INSERT INTO timesheet (entry_id, day, ticket, description, minutes, project)
		VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		nullableInt64(e.EntryID), e.Day, nullableString(e.Ticket), e.Description, e.Minutes, e.Project)
	if err != nil {
		return fmt.Errorf("inserting time entry: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading inserted row id: %w", err)
	}
	e.ID = id
	return nil
}

func (r *SQLiteTimeEntryRepo) DeleteNewest(ctx context.Context) error {
	query := `DELETE FROM timesheet WHERE id = (SELECT MAX(id) FROM timesheet)`
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("deleting newest time entry: %w", err)
	}
	return nil
}

func (r *SQLiteTimeEntryRepo) ListSince(ctx context.Context, since string) ([]*domain.TimeEntry, error) {
	query := `SELECT ` + timeEntryColumns + ` FROM timesheet WHERE day >= ? ORDER BY day`
	rows, err := r.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("listing time entries: %w", err)
	}
	defer rows.Close()
	return scanTimeEntries(rows)
}

func (r *SQLiteTimeEntryRepo) ProjectHoursSince(ctx context.Context, since string) ([]domain.ProjectHours, error) {
	query := `SELECT project, SUM(minutes)/60.0 FROM timesheet WHERE day >= ? GROUP BY project`
	rows, err := r.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("aggregating project hours: %w", err)
	}
	defer rows.Close()

	var totals []domain.ProjectHours
	for rows.Next() {
		var t domain.ProjectHours
		if err := rows.Scan(&t.Project, &t.Hours); err != nil {
			return nil, fmt.Errorf("scanning project hours: %w", err)
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating project hours: %w", err)
	}
	return totals, nil
}

func (r *SQLiteTimeEntryRepo) DayMinutesSince(ctx context.Context, since string) ([]domain.DayMinutes, error) {
	query := `SELECT day, SUM(minutes) FROM timesheet WHERE day >= ? GROUP BY day ORDER BY day`
	rows, err := r.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("aggregating day totals: %w", err)
	}
	defer rows.Close()

	var totals []domain.DayMinutes
	for rows.Next() {
		var t domain.DayMinutes
		if err := rows.Scan(&t.Day, &t.Minutes); err != nil {
			return nil, fmt.Errorf("scanning day totals: %w", err)
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating day totals: %w", err)
	}
	return totals, nil
}

// scanTimeEntries scans time entry rows from *sql.Rows.
func scanTimeEntries(rows *sql.Rows) ([]*domain.TimeEntry, error) {
	var entries []*domain.TimeEntry
	for rows.Next() {
		var e domain.TimeEntry
		var entryID sql.NullInt64
		var ticket sql.NullString

		if err := rows.Scan(&e.ID, &entryID, &e.Day, &ticket, &e.Description, &e.Minutes, &e.Project); err != nil {
			return nil, fmt.Errorf("scanning time entry: %w", err)
		}
		if entryID.Valid {
			v := entryID.Int64
			e.EntryID = &v
		}
		e.Ticket = ticket.String
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating time entries: %w", err)
	}
	return entries, nil
}
