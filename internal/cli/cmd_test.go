package cli

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alexanderramin/timesheet/internal/contract"
	"github.com/alexanderramin/timesheet/internal/repository"
	"github.com/alexanderramin/timesheet/internal/service"
	"github.com/alexanderramin/timesheet/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureSyncService records the last request instead of talking to the
// external services; sync behavior itself is covered in the service tests.
type captureSyncService struct {
	req contract.SyncRequest
}

func (s *captureSyncService) Sync(ctx context.Context, req contract.SyncRequest) (*contract.SyncResult, error) {
	s.req = req
	return &contract.SyncResult{Entries: 2, Start: "2024-01-01", End: "2024-01-02"}, nil
}

// testApp wires an App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) (*App, *captureSyncService) {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteTimeEntryRepo(database)
	syncSvc := &captureSyncService{}

	app := &App{
		Sync:          syncSvc,
		Reports:       service.NewReportService(repo),
		Entries:       service.NewEntryService(repo),
		IsInteractive: func() bool { return false },
	}
	return app, syncSvc
}

// executeCmd runs the root command and captures its output.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(func(configPath string) (*App, error) { return app, nil })
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func today() string {
	return time.Now().Format("2006-01-02")
}

func TestRootCmd_DefaultShowsLatest(t *testing.T) {
	app, _ := testApp(t)

	out, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Equal(t, "\n\n", out, "empty store renders the two blank separators")
}

func TestCreateCmd_ShowsLatestAfterInsert(t *testing.T) {
	app, _ := testApp(t)

	out, err := executeCmd(t, app, "create", "abc", "30", "standup")
	require.NoError(t, err)

	want := fmt.Sprintf("%s: ABC (no ticket) standup [0.5 hours]\n\nABC: 0.5 hours\n\n%s: Total 30 hours\n", today(), today())
	assert.Equal(t, want, out)
}

func TestCreateCmd_TicketAndDayFlags(t *testing.T) {
	app, _ := testApp(t)

	// A future day stays inside the horizon-0 window (day >= today).
	out, err := executeCmd(t, app, "create", "ops", "90", "deploy", "--ticket", "OPS-7", "--day", "2099-01-01")
	require.NoError(t, err)
	assert.Contains(t, out, "2099-01-01: OPS (OPS-7) deploy [1.5 hours]\n")
}

func TestCreateCmd_InvalidMinutes(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "create", "abc", "ninety", "standup")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing minutes")
}

func TestCreateCmd_MissingArgsNonInteractive(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "create", "abc")
	assert.Error(t, err)
}

func TestRemoveCmd_DropsNewestEntry(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "create", "abc", "30", "first")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "create", "xyz", "60", "second")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "remove")
	require.NoError(t, err)
	assert.Contains(t, out, "first")
	assert.NotContains(t, out, "second")
}

func TestSyncCmd_DefaultHorizon(t *testing.T) {
	app, syncSvc := testApp(t)

	out, err := executeCmd(t, app, "sync")
	require.NoError(t, err)
	assert.Equal(t, 1, syncSvc.req.Horizon)
	assert.Contains(t, out, "Synced 2 entries (2024-01-01 to 2024-01-02)")
}

func TestSyncCmd_HorizonFlag(t *testing.T) {
	app, syncSvc := testApp(t)

	_, err := executeCmd(t, app, "sync", "--horizon", "7")
	require.NoError(t, err)
	assert.Equal(t, 7, syncSvc.req.Horizon)
}

func TestReportCmd(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "create", "abc", "60", "work")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "create", "abc", "30", "more work")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "report")
	require.NoError(t, err)

	want := fmt.Sprintf("ABC: 1.5 hours\n\n%s: Total 90 hours\n", today())
	assert.Equal(t, want, out)
}

func TestLatestCmd_HorizonFlag(t *testing.T) {
	app, _ := testApp(t)

	// Yesterday's entry is outside horizon 0 but inside horizon 1.
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	_, err := executeCmd(t, app, "create", "abc", "30", "old work", "--day", yesterday)
	require.NoError(t, err)

	out, err := executeCmd(t, app, "latest")
	require.NoError(t, err)
	assert.NotContains(t, out, "old work")

	out, err = executeCmd(t, app, "latest", "--horizon", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "old work")
}
