package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MaxTaskLength is the longest completed task an entry may hold, in characters.
const MaxTaskLength = 30

// Entry represents a work log entry in the domain model.
// This is a pure domain model without database-specific concerns.
type Entry struct {
	ID            int64
	UID           string
	EmployeeName  string
	CompletedTask string
	DateStarted   time.Time
	DateCompleted time.Time
	Notes         string
	TimeTaken     int64
	TimeString    string
}

// NewEntry creates a draft Entry with a fresh identity and the time taken
// derived from the start and completion dates.
func NewEntry(employee, task string, started, completed time.Time, notes string) Entry {
	seconds := TimeTakenSeconds(started, completed)
	return Entry{
		UID:           uuid.NewString(),
		EmployeeName:  employee,
		CompletedTask: task,
		DateStarted:   started,
		DateCompleted: completed,
		Notes:         strings.TrimSpace(notes),
		TimeTaken:     seconds,
		TimeString:    FormatTimeString(seconds),
	}
}

// TimeTakenSeconds returns the span between started and completed rounded
// to whole seconds.
func TimeTakenSeconds(started, completed time.Time) int64 {
	return int64(completed.Sub(started).Round(time.Second) / time.Second)
}

// FormatTimeString renders seconds as "H hours M minutes".
func FormatTimeString(seconds int64) string {
	minutes := seconds / 60
	return fmt.Sprintf("%d hours %d minutes", minutes/60, minutes%60)
}

// Minutes returns the whole minutes spent on the entry.
func (e Entry) Minutes() int64 {
	return e.TimeTaken / 60
}

// HasNotes reports whether the entry carries notes.
func (e Entry) HasNotes() bool {
	return e.Notes != ""
}

// IsValid checks the entry invariants against the given moment.
func (e Entry) IsValid(now time.Time) bool {
	if len(strings.Fields(e.EmployeeName)) < 2 {
		return false
	}
	task := strings.TrimSpace(e.CompletedTask)
	if task == "" || utf8.RuneCountInString(task) > MaxTaskLength {
		return false
	}
	if e.DateStarted.IsZero() || !e.DateStarted.Before(now) {
		return false
	}
	if !e.DateStarted.Before(e.DateCompleted) || e.DateCompleted.After(now) {
		return false
	}
	return e.TimeTaken == TimeTakenSeconds(e.DateStarted, e.DateCompleted)
}
