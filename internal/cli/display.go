package cli

import (
	"fmt"
	"strings"
	"time"

	"worklog/internal/domain"
)

const (
	msgNoMatches  = "No entries matched your search."
	msgPressEnter = "\nPress enter to continue "
	separator     = "----------------------------------------"
)

// formatEntry renders one entry for previews and reviews
func (a *App) formatEntry(e domain.Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Employee Name : %s\n", e.EmployeeName)
	fmt.Fprintf(&b, "Task Completed: %s\n", e.CompletedTask)
	fmt.Fprintf(&b, "Date Started  : %s\n", a.displayDate(e.DateStarted))
	fmt.Fprintf(&b, "Date Completed: %s\n", a.displayDate(e.DateCompleted))
	fmt.Fprintf(&b, "Time Taken    : %s\n", e.TimeString)
	if e.HasNotes() {
		fmt.Fprintf(&b, "Notes         :\n%s\n", e.Notes)
	} else {
		b.WriteString("Notes         : None\n")
	}
	return b.String()
}

func (a *App) displayDate(t time.Time) string {
	return t.Format(a.config.Display.DateFormat)
}
