package jira

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexanderramin/timesheet/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetIssue_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/rest/api/2/issue/10001", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "me@example.com", user)
		assert.Equal(t, "jira-secret", pass)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"key": "ABC-123", "fields": {"summary": "Fix the widget"}}`))
	}))
	defer srv.Close()

	client := NewClient(config.JiraConfig{
		AccountName: "me@example.com",
		Token:       "jira-secret",
		Endpoint:    srv.URL + "/rest/api/2/issue/{}",
	})

	info, err := client.GetIssue(context.Background(), "10001")
	require.NoError(t, err)
	assert.Equal(t, "ABC-123", info.Key)
	assert.Equal(t, "Fix the widget", info.Summary)
	assert.Equal(t, "ABC", info.Project)
}

func TestGetIssue_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "issue does not exist", http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(config.JiraConfig{
		AccountName: "me@example.com",
		Token:       "jira-secret",
		Endpoint:    srv.URL + "/rest/api/2/issue/{}",
	})

	_, err := client.GetIssue(context.Background(), "99999")
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Equal(t, "99999", statusErr.IssueID)
}

func TestGetIssue_Unavailable(t *testing.T) {
	client := NewClient(config.JiraConfig{
		AccountName: "me@example.com",
		Token:       "jira-secret",
		Endpoint:    "http://127.0.0.1:1/rest/api/2/issue/{}", // nothing listening
	})

	_, err := client.GetIssue(context.Background(), "10001")
	assert.ErrorIs(t, err, ErrUnavailable)
}
