package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/timesheet/internal/contract"
	"github.com/alexanderramin/timesheet/internal/repository"
	"github.com/alexanderramin/timesheet/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryFixture(t *testing.T) (*repository.SQLiteTimeEntryRepo, EntryService) {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteTimeEntryRepo(database)
	return repo, NewEntryService(repo)
}

func TestCreate_UpperCasesProject(t *testing.T) {
	_, svc := entryFixture(t)

	entry, err := svc.Create(context.Background(), contract.CreateEntryRequest{
		Project:     "abc",
		Minutes:     30,
		Description: "standup",
		Day:         "2024-01-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "ABC", entry.Project)
	assert.Nil(t, entry.EntryID, "manual entries carry no external id")
}

func TestCreate_DefaultsDayToToday(t *testing.T) {
	_, svc := entryFixture(t)

	entry, err := svc.Create(context.Background(), contract.CreateEntryRequest{
		Project:     "abc",
		Minutes:     30,
		Description: "standup",
		Now:         fixedNow(t, "2024-02-29"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", entry.Day)
}

func TestCreate_RejectsNegativeMinutes(t *testing.T) {
	_, svc := entryFixture(t)

	_, err := svc.Create(context.Background(), contract.CreateEntryRequest{
		Project:     "abc",
		Minutes:     -1,
		Description: "standup",
	})
	assert.Error(t, err)
}

func TestCreate_RejectsMalformedDay(t *testing.T) {
	_, svc := entryFixture(t)

	_, err := svc.Create(context.Background(), contract.CreateEntryRequest{
		Project:     "abc",
		Minutes:     30,
		Description: "standup",
		Day:         "01/02/2024",
	})
	assert.Error(t, err)
}

func TestRemoveLast_DeletesByInsertionOrder(t *testing.T) {
	repo, svc := entryFixture(t)
	ctx := context.Background()

	// The later-dated row is inserted first; remove must take the
	// earlier-dated one because it was inserted last.
	_, err := svc.Create(ctx, contract.CreateEntryRequest{Project: "xyz", Minutes: 60, Description: "keep", Day: "2024-06-30"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, contract.CreateEntryRequest{Project: "abc", Minutes: 30, Description: "drop", Day: "2024-01-01"})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveLast(ctx))

	entries, err := repo.ListSince(ctx, "2024-01-01")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "keep", entries[0].Description)
}

func TestRemoveLast_EmptyStore(t *testing.T) {
	_, svc := entryFixture(t)
	assert.NoError(t, svc.RemoveLast(context.Background()))
}
