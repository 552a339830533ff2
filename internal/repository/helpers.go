package repository

// nullableString converts an empty string to a SQL NULL. Tickets logged
// without an issue are stored as NULL rather than the empty string.
func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// nullableInt64 converts a *int64 to a value suitable for SQLite storage.
// Returns nil (SQL NULL) if the pointer is nil.
func nullableInt64(v *int64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
