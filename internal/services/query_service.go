package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"worklog/internal/domain"
	"worklog/internal/repository/sqlite"
)

// queryServiceImpl implements the QueryService interface
type queryServiceImpl struct {
	repo   sqlite.Repository
	mapper *domain.Mapper
	logger *zap.Logger
}

// NewQueryService creates a new QueryService instance
func NewQueryService(repo sqlite.Repository, logger *zap.Logger) QueryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &queryServiceImpl{
		repo:   repo,
		mapper: domain.NewMapper(),
		logger: logger,
	}
}

// EmployeeChoices lists employee names in first-seen order, ignoring case
// when de-duplicating and keeping the first casing seen
func (q *queryServiceImpl) EmployeeChoices(ctx context.Context) (*PickList[string], error) {
	entries, err := q.repo.ListEntries(ctx)
	if err != nil {
		return nil, err
	}

	choices := NewPickList[string]()
	for _, entry := range entries {
		choices.Add(strings.ToUpper(entry.EmployeeName), entry.EmployeeName)
	}
	return choices, nil
}

// StartDateChoices lists distinct start dates in first-seen order
func (q *queryServiceImpl) StartDateChoices(ctx context.Context) (*PickList[time.Time], error) {
	entries, err := q.repo.ListEntries(ctx)
	if err != nil {
		return nil, err
	}

	choices := NewPickList[time.Time]()
	for _, entry := range entries {
		choices.Add(sqlite.FormatTimeForDB(entry.DateStarted), entry.DateStarted)
	}
	return choices, nil
}

// ByEmployee returns entries whose employee name contains name (case-sensitive)
func (q *queryServiceImpl) ByEmployee(ctx context.Context, name string) ([]domain.Entry, error) {
	return q.search(ctx, "employee", sqlite.Contains(sqlite.ColumnEmployeeName, name))
}

// ByDate returns entries started at exactly the given moment
func (q *queryServiceImpl) ByDate(ctx context.Context, started time.Time) ([]domain.Entry, error) {
	return q.search(ctx, "date", sqlite.Eq(sqlite.ColumnDateStarted, started))
}

// ByDuration returns entries whose whole minutes match the query
func (q *queryServiceImpl) ByDuration(ctx context.Context, query domain.DurationQuery) ([]domain.Entry, error) {
	return q.search(ctx, "duration", DurationFilter(query))
}

// ByLookup returns entries whose task or notes contain text (case-sensitive)
func (q *queryServiceImpl) ByLookup(ctx context.Context, text string) ([]domain.Entry, error) {
	return q.search(ctx, "lookup", sqlite.Or(
		sqlite.Contains(sqlite.ColumnCompletedTask, text),
		sqlite.Contains(sqlite.ColumnNotes, text),
	))
}

// All returns every entry
func (q *queryServiceImpl) All(ctx context.Context) ([]domain.Entry, error) {
	return q.search(ctx, "all", nil)
}

func (q *queryServiceImpl) search(ctx context.Context, mode string, filter sqlite.Filter) ([]domain.Entry, error) {
	dbEntries, err := q.repo.SearchEntries(ctx, filter)
	if err != nil {
		return nil, err
	}

	entries := q.mapper.Entry.FromDatabaseSlice(dbEntries)
	q.logger.Debug("search finished", zap.String("mode", mode), zap.Int("matches", len(entries)))
	return entries, nil
}

// DurationFilter translates a duration query into a minutes predicate.
// A range is an explicit conjunction of both bounds.
func DurationFilter(query domain.DurationQuery) sqlite.Filter {
	if query.Exact {
		return sqlite.Compare(sqlite.ColumnMinutes, sqlite.OpEq, query.Low)
	}
	return sqlite.And(
		sqlite.Compare(sqlite.ColumnMinutes, sqlite.OpGe, query.Low),
		sqlite.Compare(sqlite.ColumnMinutes, sqlite.OpLe, query.High),
	)
}
