package api

import (
	"context"
	"time"

	"go.uber.org/zap"

	"worklog/internal/domain"
	"worklog/internal/errors"
	"worklog/internal/repository/sqlite"
	"worklog/internal/services"
)

// SearchMode selects how a search narrows the stored entries
type SearchMode string

const (
	SearchByEmployee SearchMode = "employee"
	SearchByDate     SearchMode = "date"
	SearchByDuration SearchMode = "duration"
	SearchByLookup   SearchMode = "lookup"
	SearchAll        SearchMode = "all"
)

// SearchRequest carries the criterion chosen for one search mode.
// Only the field matching Mode is read.
type SearchRequest struct {
	Mode     SearchMode
	Employee string
	Started  time.Time
	Duration domain.DurationQuery
	Text     string
}

// SearchResult is the ordered outcome of a search
type SearchResult struct {
	Request SearchRequest
	Entries []domain.Entry
}

// IsEmpty reports whether nothing matched
func (r *SearchResult) IsEmpty() bool {
	return len(r.Entries) == 0
}

// BusinessAPI defines the operations the work log front end relies on
type BusinessAPI interface {
	// ========== Entry Workflows ==========

	// SaveEntry commits a confirmed draft
	SaveEntry(ctx context.Context, draft domain.Entry) (*domain.Entry, error)

	// DeleteEntry removes a stored entry by identity
	DeleteEntry(ctx context.Context, uid string) error

	// ========== Pick-lists ==========

	// ListEmployees returns distinct employee names in first-seen order
	ListEmployees(ctx context.Context) (*services.PickList[string], error)

	// ListStartDates returns distinct start dates in first-seen order
	ListStartDates(ctx context.Context) (*services.PickList[time.Time], error)

	// ========== Search and Export ==========

	// Search runs one search mode
	Search(ctx context.Context, req SearchRequest) (*SearchResult, error)

	// ExportEntries returns every entry flattened for output
	ExportEntries(ctx context.Context) ([]services.ExportRecord, error)
}

// businessAPIImpl implements the BusinessAPI interface
type businessAPIImpl struct {
	services *services.ServiceContainer
	logger   *zap.Logger
}

// NewBusinessAPI creates a new BusinessAPI instance
func NewBusinessAPI(repo sqlite.Repository, logger *zap.Logger) BusinessAPI {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &businessAPIImpl{
		services: services.NewServiceContainer(repo, logger),
		logger:   logger,
	}
}

func (b *businessAPIImpl) SaveEntry(ctx context.Context, draft domain.Entry) (*domain.Entry, error) {
	return b.services.EntryService.Save(ctx, draft)
}

func (b *businessAPIImpl) DeleteEntry(ctx context.Context, uid string) error {
	return b.services.EntryService.Delete(ctx, uid)
}

func (b *businessAPIImpl) ListEmployees(ctx context.Context) (*services.PickList[string], error) {
	return b.services.QueryService.EmployeeChoices(ctx)
}

func (b *businessAPIImpl) ListStartDates(ctx context.Context) (*services.PickList[time.Time], error) {
	return b.services.QueryService.StartDateChoices(ctx)
}

func (b *businessAPIImpl) Search(ctx context.Context, req SearchRequest) (*SearchResult, error) {
	query := b.services.QueryService

	var (
		entries []domain.Entry
		err     error
	)
	switch req.Mode {
	case SearchByEmployee:
		if req.Employee == "" {
			return nil, errors.NewInvalidInputError("employee", req.Employee, "cannot be empty")
		}
		entries, err = query.ByEmployee(ctx, req.Employee)
	case SearchByDate:
		if req.Started.IsZero() {
			return nil, errors.NewInvalidInputError("started", req.Started, "cannot be empty")
		}
		entries, err = query.ByDate(ctx, req.Started)
	case SearchByDuration:
		if !req.Duration.Exact && req.Duration.Low > req.Duration.High {
			return nil, errors.NewInvalidInputError("duration", req.Duration.String(), "lower bound exceeds upper bound")
		}
		entries, err = query.ByDuration(ctx, req.Duration)
	case SearchByLookup:
		if req.Text == "" {
			return nil, errors.NewInvalidInputError("text", req.Text, "cannot be empty")
		}
		entries, err = query.ByLookup(ctx, req.Text)
	case SearchAll:
		entries, err = query.All(ctx)
	default:
		return nil, errors.NewInvalidInputError("mode", string(req.Mode), "unknown search mode")
	}
	if err != nil {
		return nil, err
	}

	b.logger.Debug("search", zap.String("mode", string(req.Mode)), zap.Int("matches", len(entries)))
	return &SearchResult{Request: req, Entries: entries}, nil
}

func (b *businessAPIImpl) ExportEntries(ctx context.Context) ([]services.ExportRecord, error) {
	return b.services.ExportService.Records(ctx)
}
