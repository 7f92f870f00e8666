package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"worklog/internal/domain"
	"worklog/internal/errors"
	"worklog/internal/repository/sqlite"
)

// entryServiceImpl implements the EntryService interface
type entryServiceImpl struct {
	repo   sqlite.Repository
	mapper *domain.Mapper
	logger *zap.Logger
	now    func() time.Time
}

// NewEntryService creates a new EntryService instance
func NewEntryService(repo sqlite.Repository, logger *zap.Logger) EntryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &entryServiceImpl{
		repo:   repo,
		mapper: domain.NewMapper(),
		logger: logger,
		now:    time.Now,
	}
}

// Save commits a draft entry. Drafts breaking the entry invariants are rejected.
func (s *entryServiceImpl) Save(ctx context.Context, entry domain.Entry) (*domain.Entry, error) {
	if !entry.IsValid(s.now()) {
		return nil, errors.NewValidationError("entry is incomplete or inconsistent", nil).
			WithContext("employee_name", entry.EmployeeName)
	}
	if entry.UID == "" {
		entry.UID = uuid.NewString()
	}

	dbEntry := s.mapper.Entry.ToDatabase(entry)
	if err := s.repo.CreateEntry(ctx, &dbEntry); err != nil {
		return nil, err
	}

	// Return what the store holds, not the draft.
	stored, err := s.repo.GetEntry(ctx, dbEntry.UID)
	if err != nil {
		return nil, err
	}
	saved := s.mapper.Entry.FromDatabase(*stored)
	s.logger.Info("entry saved",
		zap.String("uid", saved.UID),
		zap.String("employee", saved.EmployeeName),
		zap.Int64("time_taken", saved.TimeTaken),
	)
	return &saved, nil
}

// Delete removes the entry with the given uid
func (s *entryServiceImpl) Delete(ctx context.Context, uid string) error {
	if uid == "" {
		return errors.NewInvalidInputError("uid", uid, "cannot be empty")
	}
	if err := s.repo.DeleteEntry(ctx, uid); err != nil {
		return err
	}
	s.logger.Info("entry deleted", zap.String("uid", uid))
	return nil
}
