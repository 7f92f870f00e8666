package sqlite

import "time"

// Entry represents a persisted work log entry
type Entry struct {
	ID            int64
	UID           string
	EmployeeName  string
	CompletedTask string
	DateStarted   time.Time
	DateCompleted time.Time
	Notes         *string // NULL when nothing was captured
	TimeTaken     int64
	TimeString    string
}

// Options tunes the per-call deadlines applied by the repository
type Options struct {
	QueryTimeout time.Duration
	WriteTimeout time.Duration
}
