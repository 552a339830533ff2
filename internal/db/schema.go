package db

import (
	"database/sql"
	"fmt"
)

// EnsureSchema creates the timesheet table and its indexes if they do not
// already exist. All statements are idempotent; there is no versioned
// migration machinery.
//
// entry_id carries no uniqueness constraint: at-most-one-row-per-entry_id
// is maintained by the update-then-insert sequencing in the repository
// under the single-process access model.
func EnsureSchema(db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i, err)
		}
	}
	return nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS timesheet (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		entry_id    INTEGER,
		day         TEXT NOT NULL,
		ticket      TEXT,
		description TEXT NOT NULL DEFAULT '',
		minutes     REAL NOT NULL DEFAULT 0 CHECK(minutes >= 0),
		project     TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE INDEX IF NOT EXISTS idx_timesheet_entry_id ON timesheet(entry_id)`,
	`CREATE INDEX IF NOT EXISTS idx_timesheet_day ON timesheet(day)`,
}
