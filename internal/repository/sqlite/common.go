package sqlite

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"

	"worklog/internal/errors"
)

// HandleDatabaseError converts database errors to structured app errors
func HandleDatabaseError(operation string, err error) error {
	return errors.NewDatabaseError(operation, err)
}

// ValidateRowsAffected checks if a database operation affected the expected number of rows
func ValidateRowsAffected(result sql.Result, entityType string, id string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return HandleDatabaseError("get rows affected", err)
	}
	if rows == 0 {
		return errors.NewNotFoundError(entityType, id)
	}
	return nil
}

// withTimeout bounds ctx by d; a non-positive d leaves ctx unbounded
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

// insert executes an INSERT under the write deadline and returns the new row id
func (r *SQLiteRepository) insert(ctx context.Context, query string, args ...interface{}) (int64, error) {
	ctx, cancel := withTimeout(ctx, r.opts.WriteTimeout)
	defer cancel()

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("insert failed", zap.Error(err))
		return 0, HandleDatabaseError("insert entry", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, HandleDatabaseError("get last insert ID", err)
	}

	return id, nil
}

// execAffecting executes a write under the write deadline and fails with
// a not found error when no row was touched
func (r *SQLiteRepository) execAffecting(ctx context.Context, query string, id string, args ...interface{}) error {
	ctx, cancel := withTimeout(ctx, r.opts.WriteTimeout)
	defer cancel()

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("write failed", zap.String("uid", id), zap.Error(err))
		return HandleDatabaseError("execute query", err)
	}

	return ValidateRowsAffected(result, "entry", id)
}

// queryEntry reads one entry under the query deadline
func (r *SQLiteRepository) queryEntry(ctx context.Context, query string, id string, args ...interface{}) (*Entry, error) {
	ctx, cancel := withTimeout(ctx, r.opts.QueryTimeout)
	defer cancel()

	entry, err := ScanEntry(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError("entry", id)
		}
		return nil, HandleDatabaseError("scan entry", err)
	}
	return entry, nil
}

// queryEntries reads every matching entry under the query deadline
func (r *SQLiteRepository) queryEntries(ctx context.Context, query string, args ...interface{}) ([]*Entry, error) {
	ctx, cancel := withTimeout(ctx, r.opts.QueryTimeout)
	defer cancel()

	r.logger.Debug("query entries", zap.String("sql", query), zap.Int("args", len(args)))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, HandleDatabaseError("query entries", err)
	}
	defer rows.Close()

	entries, err := ScanEntries(rows)
	if err != nil {
		return nil, HandleDatabaseError("scan entries", err)
	}

	return entries, nil
}
