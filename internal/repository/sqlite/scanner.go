package sqlite

import (
	"database/sql"
	"fmt"
)

// entryColumns lists the columns read by ScanEntry, in scan order
const entryColumns = `id, uid, employee_name, completed_task, date_started, date_completed, notes, time_taken, time_string`

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanEntry scans a single entry from a database row
func ScanEntry(scanner Scanner) (*Entry, error) {
	entry := &Entry{}
	var started, completed string
	var notes sql.NullString

	err := scanner.Scan(
		&entry.ID,
		&entry.UID,
		&entry.EmployeeName,
		&entry.CompletedTask,
		&started,
		&completed,
		&notes,
		&entry.TimeTaken,
		&entry.TimeString,
	)
	if err != nil {
		return nil, err
	}

	if entry.DateStarted, err = ParseTimeFromDB(started); err != nil {
		return nil, fmt.Errorf("parse date_started %q: %w", started, err)
	}
	if entry.DateCompleted, err = ParseTimeFromDB(completed); err != nil {
		return nil, fmt.Errorf("parse date_completed %q: %w", completed, err)
	}
	if notes.Valid {
		entry.Notes = &notes.String
	}

	return entry, nil
}

// ScanEntries scans multiple entries from database rows
func ScanEntries(rows Rows) ([]*Entry, error) {
	var entries []*Entry
	for rows.Next() {
		entry, err := ScanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
