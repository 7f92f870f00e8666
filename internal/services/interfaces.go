package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"worklog/internal/domain"
	"worklog/internal/repository/sqlite"
)

// QueryService builds the filtered, ordered views behind each search mode.
// Every result is ordered by employee name descending.
type QueryService interface {
	// Pick-lists offered before a search
	EmployeeChoices(ctx context.Context) (*PickList[string], error)
	StartDateChoices(ctx context.Context) (*PickList[time.Time], error)

	// Search modes
	ByEmployee(ctx context.Context, name string) ([]domain.Entry, error)
	ByDate(ctx context.Context, started time.Time) ([]domain.Entry, error)
	ByDuration(ctx context.Context, query domain.DurationQuery) ([]domain.Entry, error)
	ByLookup(ctx context.Context, text string) ([]domain.Entry, error)
	All(ctx context.Context) ([]domain.Entry, error)
}

// EntryService handles the lifecycle of stored entries
type EntryService interface {
	Save(ctx context.Context, entry domain.Entry) (*domain.Entry, error)
	Delete(ctx context.Context, uid string) error
}

// ExportService renders stored entries as flat records
type ExportService interface {
	Records(ctx context.Context) ([]ExportRecord, error)
}

// ExportRecord is one entry flattened for CSV or JSON output
type ExportRecord struct {
	UID           string    `json:"uid"`
	EmployeeName  string    `json:"employee_name"`
	CompletedTask string    `json:"completed_task"`
	DateStarted   time.Time `json:"date_started"`
	DateCompleted time.Time `json:"date_completed"`
	Minutes       int64     `json:"minutes"`
	TimeTaken     int64     `json:"time_taken"`
	TimeString    string    `json:"time_string"`
	Notes         string    `json:"notes,omitempty"`
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	QueryService  QueryService
	EntryService  EntryService
	ExportService ExportService
}

// NewServiceContainer wires every service onto one repository
func NewServiceContainer(repo sqlite.Repository, logger *zap.Logger) *ServiceContainer {
	return &ServiceContainer{
		QueryService:  NewQueryService(repo, logger),
		EntryService:  NewEntryService(repo, logger),
		ExportService: NewExportService(repo),
	}
}
