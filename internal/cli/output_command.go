package cli

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"time"

	"worklog/internal/api"
	"worklog/internal/errors"
	"worklog/internal/services"
)

// Supported export formats
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// OutputCommand writes every stored entry in a machine readable format
type OutputCommand struct {
	businessAPI api.BusinessAPI
	out         io.Writer
}

// NewOutputCommand creates a new output command handler
func NewOutputCommand(businessAPI api.BusinessAPI, out io.Writer) *OutputCommand {
	return &OutputCommand{businessAPI: businessAPI, out: out}
}

// Execute writes all entries in format
func (c *OutputCommand) Execute(ctx context.Context, format string) error {
	switch format {
	case FormatCSV, FormatJSON:
	default:
		return errors.NewInvalidInputError("format", format, "unsupported format, use csv or json")
	}

	records, err := c.businessAPI.ExportEntries(ctx)
	if err != nil {
		return err
	}

	if format == FormatJSON {
		return c.outputJSON(records)
	}
	return c.outputCSV(records)
}

func (c *OutputCommand) outputJSON(records []services.ExportRecord) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return errors.WrapError(err, errors.ErrorTypeIO, "failed to write JSON")
	}
	return nil
}

// outputCSV outputs all entries in CSV format
func (c *OutputCommand) outputCSV(records []services.ExportRecord) error {
	writer := csv.NewWriter(c.out)

	header := []string{"UID", "Employee Name", "Completed Task", "Date Started", "Date Completed", "Minutes", "Time Taken", "Time String", "Notes"}
	if err := writer.Write(header); err != nil {
		return errors.WrapError(err, errors.ErrorTypeIO, "failed to write CSV header")
	}

	for _, r := range records {
		row := []string{
			r.UID,
			r.EmployeeName,
			r.CompletedTask,
			r.DateStarted.Format(time.RFC3339),
			r.DateCompleted.Format(time.RFC3339),
			strconv.FormatInt(r.Minutes, 10),
			strconv.FormatInt(r.TimeTaken, 10),
			r.TimeString,
			r.Notes,
		}
		if err := writer.Write(row); err != nil {
			return errors.WrapError(err, errors.ErrorTypeIO, "failed to write CSV row").WithContext("uid", r.UID)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.WrapError(err, errors.ErrorTypeIO, "failed to write CSV")
	}
	return nil
}
