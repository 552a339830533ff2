// Package jira resolves issue identifiers to their key, summary and
// project code via the Jira REST API.
package jira

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/alexanderramin/timesheet/internal/config"
	"github.com/alexanderramin/timesheet/internal/domain"
)

// Client resolves a Jira issue identifier to its metadata.
type Client interface {
	GetIssue(ctx context.Context, issueID string) (*domain.IssueInfo, error)
}

type httpClient struct {
	cfg  config.JiraConfig
	http *http.Client
}

// NewClient creates a Jira API client using basic auth.
func NewClient(cfg config.JiraConfig) Client {
	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
	}
}

// issueResponse is the subset of the Jira issue payload the sync needs.
type issueResponse struct {
	Key    string `json:"key"`
	Fields struct {
		Summary string `json:"summary"`
	} `json:"fields"`
}

func (c *httpClient) GetIssue(ctx context.Context, issueID string) (*domain.IssueInfo, error) {
	reqURL := strings.Replace(c.cfg.Endpoint, "{}", issueID, 1)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.SetBasicAuth(c.cfg.AccountName, c.cfg.Token)

	resp, err := c.http.Do(req)
	if err != nil {
		if isConnectionError(err) {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return nil, fmt.Errorf("fetching issue %s: %w", issueID, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{IssueID: issueID, StatusCode: resp.StatusCode, Body: string(body)}
	}

	var issue issueResponse
	if err := json.Unmarshal(body, &issue); err != nil {
		return nil, fmt.Errorf("decoding issue %s: %w", issueID, err)
	}

	return &domain.IssueInfo{
		Key:     issue.Key,
		Summary: issue.Fields.Summary,
		Project: domain.ProjectFromKey(issue.Key),
	}, nil
}

func isConnectionError(err error) bool {
	var netErr *net.OpError
	return errors.As(err, &netErr)
}
