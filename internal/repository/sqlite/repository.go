package sqlite

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"worklog/internal/errors"
	"worklog/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// orderByEmployee is the ordering every listing uses
const orderByEmployee = ` ORDER BY employee_name DESC, id ASC`

// Repository defines the interface for database operations
type Repository interface {
	// Create operations
	CreateEntry(ctx context.Context, entry *Entry) error

	// Read operations
	GetEntry(ctx context.Context, uid string) (*Entry, error)
	ListEntries(ctx context.Context) ([]*Entry, error)
	SearchEntries(ctx context.Context, filter Filter) ([]*Entry, error)

	// Delete operations
	DeleteEntry(ctx context.Context, uid string) error

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db     *sql.DB
	opts   Options
	logger *zap.Logger
}

// New opens (or creates) the database at dbPath and migrates it to the
// latest schema
func New(ctx context.Context, dbPath string, opts Options, logger *zap.Logger) (*SQLiteRepository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}
	if err := migrations.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	version, err := migrations.Version(ctx, db)
	if err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("read schema version", err)
	}

	logger.Debug("database ready", zap.String("path", dbPath), zap.Int64("schema_version", version))
	return &SQLiteRepository{db: db, opts: opts, logger: logger}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateEntry inserts entry and records its row id
func (r *SQLiteRepository) CreateEntry(ctx context.Context, entry *Entry) error {
	query := `
	INSERT INTO entries (uid, employee_name, completed_task, date_started, date_completed, notes, time_taken, time_string)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	id, err := r.insert(ctx, query,
		entry.UID,
		entry.EmployeeName,
		entry.CompletedTask,
		FormatTimeForDB(entry.DateStarted),
		FormatTimeForDB(entry.DateCompleted),
		FormatNotesForDB(entry.Notes),
		entry.TimeTaken,
		entry.TimeString,
	)
	if err != nil {
		return err
	}

	entry.ID = id
	r.logger.Info("entry created", zap.Int64("id", id), zap.String("uid", entry.UID))
	return nil
}

// GetEntry retrieves an entry by its uid
func (r *SQLiteRepository) GetEntry(ctx context.Context, uid string) (*Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE uid = ?`
	return r.queryEntry(ctx, query, uid, uid)
}

// ListEntries retrieves all entries ordered by employee name descending
func (r *SQLiteRepository) ListEntries(ctx context.Context) ([]*Entry, error) {
	return r.SearchEntries(ctx, nil)
}

// SearchEntries retrieves the entries matching filter ordered by employee name descending
func (r *SQLiteRepository) SearchEntries(ctx context.Context, filter Filter) ([]*Entry, error) {
	where, args := BuildWhere(filter)
	query := `SELECT ` + entryColumns + ` FROM entries` + where + orderByEmployee
	return r.queryEntries(ctx, query, args...)
}

// DeleteEntry deletes an entry by its uid
func (r *SQLiteRepository) DeleteEntry(ctx context.Context, uid string) error {
	query := `DELETE FROM entries WHERE uid = ?`
	if err := r.execAffecting(ctx, query, uid, uid); err != nil {
		return err
	}
	r.logger.Info("entry deleted", zap.String("uid", uid))
	return nil
}
