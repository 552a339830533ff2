package jira

import (
	"errors"
	"fmt"
)

// ErrUnavailable indicates the Jira API could not be reached at all.
var ErrUnavailable = errors.New("jira api unavailable")

// StatusError is a non-2xx response from the Jira API. Any such response
// aborts the whole sync.
type StatusError struct {
	IssueID    string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("jira returned status %d for issue %s: %s", e.StatusCode, e.IssueID, e.Body)
}
