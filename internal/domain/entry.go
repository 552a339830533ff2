package domain

import "strings"

// DateLayout is the canonical calendar-date format used throughout the
// store: days are stored and compared as ISO 8601 strings.
const DateLayout = "2006-01-02"

// TimeEntry is one row of the timesheet table: a merged record of a
// Clockwork worklog and its Jira issue metadata, or a manually created
// entry.
type TimeEntry struct {
	ID          int64  // internal row id, assigned by the store
	EntryID     *int64 // external Clockwork id; nil for manual entries
	Day         string // ISO date the time was logged on
	Ticket      string // Jira issue key; empty when logged without a ticket
	Description string
	Minutes     float64
	Project     string // short uppercase project code
}

// Manual reports whether the entry was created by hand rather than
// synchronized from Clockwork.
func (e *TimeEntry) Manual() bool {
	return e.EntryID == nil
}

// Hours converts the entry duration to hours.
func (e *TimeEntry) Hours() float64 {
	return e.Minutes / 60.0
}

// IssueInfo is the resolved metadata for a Jira issue. It lives only for
// the duration of a single sync run, memoized by issue id.
type IssueInfo struct {
	Key     string
	Summary string
	Project string
}

// ProjectFromKey derives the short project code from a Jira issue key:
// the first three characters of the key ("ABC-123" -> "ABC"). Keys
// shorter than three characters are used as-is.
func ProjectFromKey(key string) string {
	if len(key) <= 3 {
		return key
	}
	return key[:3]
}

// NormalizeProject upper-cases a user-supplied project code.
func NormalizeProject(code string) string {
	return strings.ToUpper(code)
}
