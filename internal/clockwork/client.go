// Package clockwork talks to the Clockwork worklog API: the external
// time-logging service whose entries the sync merges into the local store.
package clockwork

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/alexanderramin/timesheet/internal/config"
	"github.com/alexanderramin/timesheet/internal/domain"
)

// WorkLog is one raw time entry as returned by the Clockwork API.
type WorkLog struct {
	ID               int64    `json:"id"`
	TimeSpentSeconds int      `json:"timeSpentSeconds"`
	Started          string   `json:"started"` // ISO-8601 timestamp; first 10 chars are the date
	Issue            IssueRef `json:"issue"`
}

// IssueRef identifies the Jira issue a worklog is logged against.
type IssueRef struct {
	ID IssueID `json:"id"`
}

// IssueID is a Jira issue identifier. The API serves it as a JSON number
// or a string depending on the endpoint version, so both are accepted.
type IssueID string

func (id *IssueID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = IssueID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("issue id must be a string or number: %w", err)
	}
	*id = IssueID(n.String())
	return nil
}

func (id IssueID) String() string {
	return string(id)
}

// Day extracts the calendar date from the worklog's start timestamp.
func (w WorkLog) Day() (string, error) {
	if len(w.Started) < len(domain.DateLayout) {
		return "", fmt.Errorf("worklog %d: malformed start timestamp %q", w.ID, w.Started)
	}
	day := w.Started[:len(domain.DateLayout)]
	if _, err := time.Parse(domain.DateLayout, day); err != nil {
		return "", fmt.Errorf("worklog %d: parsing start date: %w", w.ID, err)
	}
	return day, nil
}

// Minutes converts the worklog duration from seconds to minutes.
func (w WorkLog) Minutes() float64 {
	return float64(w.TimeSpentSeconds) / 60.0
}

// Client fetches raw time entries for a date range.
type Client interface {
	// FetchEntries returns all worklogs in the closed window [start, end].
	FetchEntries(ctx context.Context, start, end time.Time) ([]WorkLog, error)
}

type httpClient struct {
	cfg  config.ClockworkConfig
	acct string // jira account id, passed as a query parameter
	http *http.Client
}

// NewClient creates a Clockwork API client. The account id comes from the
// Jira section of the configuration but is a Clockwork query parameter.
func NewClient(cfg config.ClockworkConfig, accountID string) Client {
	return &httpClient{
		cfg:  cfg,
		acct: accountID,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
	}
}

func (c *httpClient) FetchEntries(ctx context.Context, start, end time.Time) ([]WorkLog, error) {
	params := url.Values{}
	params.Set("starting_at", start.Format(domain.DateLayout))
	params.Set("ending_at", end.Format(domain.DateLayout))
	params.Set("account_id", c.acct)

	reqURL := c.cfg.Endpoint + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+c.cfg.Token)

	resp, err := c.http.Do(req)
	if err != nil {
		if isConnectionError(err) {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return nil, fmt.Errorf("fetching worklogs: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var logs []WorkLog
	if err := json.Unmarshal(body, &logs); err != nil {
		return nil, fmt.Errorf("decoding worklogs: %w", err)
	}
	return logs, nil
}

func isConnectionError(err error) bool {
	var netErr *net.OpError
	return errors.As(err, &netErr)
}
