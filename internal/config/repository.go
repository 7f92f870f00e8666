package config

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"worklog/internal/errors"
	"worklog/internal/repository/sqlite"
)

// RepositoryOptions maps the database section onto the repository options
func (c *Config) RepositoryOptions() sqlite.Options {
	return sqlite.Options{
		QueryTimeout: c.Database.QueryTimeout,
		WriteTimeout: c.Database.WriteTimeout,
	}
}

// CreateRepository creates a repository instance using the configuration system
func CreateRepository(ctx context.Context, config *Config, logger *zap.Logger) (sqlite.Repository, error) {
	if err := config.EnsureDatabaseDir(); err != nil {
		return nil, errors.WrapError(err, errors.ErrorTypeDatabase, "database directory could not be created").
			WithContext("operation", "create database directory")
	}

	repo, err := sqlite.New(ctx, config.GetDatabasePath(), config.RepositoryOptions(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return repo, nil
}

// CreateTestRepository creates a private in-memory repository for testing
func CreateTestRepository(ctx context.Context) (sqlite.Repository, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())

	repo, err := sqlite.New(ctx, dsn, NewConfig().RepositoryOptions(), zap.NewNop())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test database: %w", err)
	}

	return repo, nil
}
