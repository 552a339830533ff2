package formatter

import (
	"testing"

	"github.com/alexanderramin/timesheet/internal/contract"
	"github.com/alexanderramin/timesheet/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "1.5", FormatHours(1.5))
	assert.Equal(t, "2.0", FormatHours(2))
	assert.Equal(t, "1.25", FormatHours(1.25))
	assert.Equal(t, "0.0", FormatHours(0))
}

func TestFormatReport(t *testing.T) {
	resp := &contract.ReportResponse{
		Projects: []domain.ProjectHours{
			{Project: "ABC", Hours: 1.5},
			{Project: "XYZ", Hours: 2.0},
		},
		Days: []domain.DayMinutes{
			{Day: "2024-01-01", Minutes: 90},
			{Day: "2024-01-02", Minutes: 120},
		},
	}

	want := "ABC: 1.5 hours\n" +
		"XYZ: 2.0 hours\n" +
		"\n" +
		"2024-01-01: Total 90 hours\n" +
		"2024-01-02: Total 120 hours\n"
	assert.Equal(t, want, FormatReport(resp))
}

func TestFormatReport_Empty(t *testing.T) {
	assert.Equal(t, "\n", FormatReport(&contract.ReportResponse{}))
}

func TestFormatLatest(t *testing.T) {
	entryID := int64(42)
	resp := &contract.LatestResponse{
		Entries: []*domain.TimeEntry{
			{EntryID: &entryID, Day: "2024-01-01", Ticket: "ABC-123", Description: "Fix the widget", Minutes: 90, Project: "ABC"},
			{Day: "2024-01-02", Description: "standup", Minutes: 30, Project: "OPS"},
		},
		Report: contract.ReportResponse{
			Projects: []domain.ProjectHours{{Project: "ABC", Hours: 1.5}, {Project: "OPS", Hours: 0.5}},
			Days: []domain.DayMinutes{
				{Day: "2024-01-01", Minutes: 90},
				{Day: "2024-01-02", Minutes: 30},
			},
		},
	}

	want := "2024-01-01: ABC (ABC-123) Fix the widget [1.5 hours]\n" +
		"2024-01-02: OPS (no ticket) standup [0.5 hours]\n" +
		"\n" +
		"ABC: 1.5 hours\n" +
		"OPS: 0.5 hours\n" +
		"\n" +
		"2024-01-01: Total 90 hours\n" +
		"2024-01-02: Total 30 hours\n"
	assert.Equal(t, want, FormatLatest(resp))
}

func TestFormatLatest_Empty(t *testing.T) {
	resp := &contract.LatestResponse{}
	assert.Equal(t, "\n\n", FormatLatest(resp), "empty listing followed by empty report, no crash")
}
