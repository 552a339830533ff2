package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/timesheet/internal/contract"
)

// FormatHours renders an hour figure the way the original tool's float
// formatting did: shortest decimal form, with a forced ".0" on whole
// numbers ("1.5", "2.0", "1.25").
func FormatHours(h float64) string {
	s := strconv.FormatFloat(h, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// formatMinutes renders a raw minute figure in shortest decimal form
// ("90", "37.5").
func formatMinutes(m float64) string {
	return strconv.FormatFloat(m, 'f', -1, 64)
}

// FormatReport renders both aggregate views: per-project hours, a blank
// line, then per-day totals. The per-day figure is raw minutes labeled
// "hours", reproducing the original tool's output exactly.
func FormatReport(r *contract.ReportResponse) string {
	var b strings.Builder
	for _, p := range r.Projects {
		fmt.Fprintf(&b, "%s: %s hours\n", p.Project, FormatHours(p.Hours))
	}
	b.WriteString("\n")
	for _, d := range r.Days {
		fmt.Fprintf(&b, "%s: Total %s hours\n", d.Day, formatMinutes(d.Minutes))
	}
	return b.String()
}

// FormatLatest renders the entry listing, a blank line, then the full
// report.
func FormatLatest(l *contract.LatestResponse) string {
	var b strings.Builder
	for _, e := range l.Entries {
		ticket := e.Ticket
		if ticket == "" {
			ticket = "no ticket"
		}
		fmt.Fprintf(&b, "%s: %s (%s) %s [%s hours]\n",
			e.Day, e.Project, ticket, e.Description, FormatHours(e.Hours()))
	}
	b.WriteString("\n")
	b.WriteString(FormatReport(&l.Report))
	return b.String()
}

// FormatSyncSummary renders the one-line confirmation printed after a
// successful sync.
func FormatSyncSummary(r *contract.SyncResult) string {
	noun := "entries"
	if r.Entries == 1 {
		noun = "entry"
	}
	return fmt.Sprintf("%s Synced %d %s (%s to %s)",
		StyleGreen.Render("✓"), r.Entries, noun, r.Start, r.End)
}
