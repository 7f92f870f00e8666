package services

import (
	"context"

	"worklog/internal/domain"
	"worklog/internal/repository/sqlite"
)

// exportServiceImpl implements the ExportService interface
type exportServiceImpl struct {
	repo   sqlite.Repository
	mapper *domain.Mapper
}

// NewExportService creates a new ExportService instance
func NewExportService(repo sqlite.Repository) ExportService {
	return &exportServiceImpl{
		repo:   repo,
		mapper: domain.NewMapper(),
	}
}

// Records returns every stored entry as an export record, ordered by
// employee name descending
func (e *exportServiceImpl) Records(ctx context.Context) ([]ExportRecord, error) {
	dbEntries, err := e.repo.ListEntries(ctx)
	if err != nil {
		return nil, err
	}

	entries := e.mapper.Entry.FromDatabaseSlice(dbEntries)
	records := make([]ExportRecord, 0, len(entries))
	for _, entry := range entries {
		records = append(records, ToExportRecord(entry))
	}
	return records, nil
}

// ToExportRecord flattens an entry
func ToExportRecord(entry domain.Entry) ExportRecord {
	return ExportRecord{
		UID:           entry.UID,
		EmployeeName:  entry.EmployeeName,
		CompletedTask: entry.CompletedTask,
		DateStarted:   entry.DateStarted,
		DateCompleted: entry.DateCompleted,
		Minutes:       entry.Minutes(),
		TimeTaken:     entry.TimeTaken,
		TimeString:    entry.TimeString,
		Notes:         entry.Notes,
	}
}
