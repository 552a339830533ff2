package testutil

import "github.com/alexanderramin/timesheet/internal/domain"

// EntryOption mutates a fixture time entry.
type EntryOption func(*domain.TimeEntry)

// WithEntryID marks the entry as synchronized from Clockwork.
func WithEntryID(id int64) EntryOption {
	return func(e *domain.TimeEntry) {
		e.EntryID = &id
	}
}

// WithTicket sets the Jira issue key the time was logged on.
func WithTicket(ticket string) EntryOption {
	return func(e *domain.TimeEntry) {
		e.Ticket = ticket
	}
}

// WithDescription sets the entry description.
func WithDescription(desc string) EntryOption {
	return func(e *domain.TimeEntry) {
		e.Description = desc
	}
}

// NewTestEntry creates a time entry fixture. Defaults to a manual entry
// (no external id, no ticket) with a generic description.
func NewTestEntry(day, project string, minutes float64, opts ...EntryOption) *domain.TimeEntry {
	e := &domain.TimeEntry{
		Day:         day,
		Description: "logged work",
		Minutes:     minutes,
		Project:     project,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
