package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"worklog/internal/domain"
	"worklog/internal/errors"
)

func TestEntryService_Save(t *testing.T) {
	repo := setupRepo(t)
	core, logs := observer.New(zap.InfoLevel)
	svc := NewEntryService(repo, zap.New(core))

	started := base.Add(time.Hour)
	draft := domain.NewEntry("Stuart McIntosh", "Fix login", started, started.Add(45*time.Minute), "Reset cache")

	saved, err := svc.Save(context.Background(), draft)
	require.NoError(t, err)
	assert.Greater(t, saved.ID, int64(0))
	assert.Equal(t, draft.UID, saved.UID)
	assert.Equal(t, int64(2700), saved.TimeTaken)
	assert.Equal(t, "0 hours 45 minutes", saved.TimeString)
	assert.Equal(t, "Reset cache", saved.Notes)

	stored, err := repo.GetEntry(context.Background(), saved.UID)
	require.NoError(t, err)
	assert.Equal(t, "Fix login", stored.CompletedTask)

	require.Equal(t, 1, logs.FilterMessage("entry saved").Len())
	fields := logs.FilterMessage("entry saved").All()[0].ContextMap()
	assert.Equal(t, "Stuart McIntosh", fields["employee"])
	assert.Equal(t, int64(2700), fields["time_taken"])
}

func TestEntryService_Save_AssignsMissingUID(t *testing.T) {
	repo := setupRepo(t)
	draft := entry("Ann Lee", "Audit", base, 10, "")
	draft.UID = ""

	saved, err := NewEntryService(repo, nil).Save(context.Background(), draft)
	require.NoError(t, err)
	assert.NotEmpty(t, saved.UID)
}

func TestEntryService_Save_RejectsInconsistentDraft(t *testing.T) {
	repo := setupRepo(t)
	svc := NewEntryService(repo, nil)

	tests := []struct {
		name  string
		draft domain.Entry
	}{
		{"single word name", entry("Ann", "Audit", base, 10, "")},
		{"end before start", domain.Entry{
			UID: "x", EmployeeName: "Ann Lee", CompletedTask: "Audit",
			DateStarted: base, DateCompleted: base.Add(-time.Minute),
		}},
		{"in the future", entry("Ann Lee", "Audit", time.Now().Add(time.Hour), 10, "")},
		{"task too long", entry("Ann Lee", strings.Repeat("x", domain.MaxTaskLength+1), base, 10, "")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Save(context.Background(), tt.draft)
			require.Error(t, err)
			assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
		})
	}

	all, err := repo.ListEntries(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestEntryService_Delete(t *testing.T) {
	repo := setupRepo(t)
	saved := seedEntries(t, repo, entry("Ann Lee", "Audit", base, 10, ""))
	svc := NewEntryService(repo, nil)

	require.NoError(t, svc.Delete(context.Background(), saved[0].UID))

	err := svc.Delete(context.Background(), saved[0].UID)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))

	err = svc.Delete(context.Background(), "")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
}

func TestExportService_Records(t *testing.T) {
	repo := setupRepo(t)
	seedEntries(t, repo,
		entry("Ann Lee", "Audit", base, 90, "two\nlines"),
		entry("Zoe Park", "Docs", base, 45, ""),
	)

	records, err := NewExportService(repo).Records(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Zoe Park", records[0].EmployeeName)
	assert.Equal(t, int64(45), records[0].Minutes)
	assert.Empty(t, records[0].Notes)

	assert.Equal(t, "Ann Lee", records[1].EmployeeName)
	assert.Equal(t, int64(90), records[1].Minutes)
	assert.Equal(t, "1 hours 30 minutes", records[1].TimeString)
	assert.Equal(t, "two\nlines", records[1].Notes)
}

func TestNewServiceContainer(t *testing.T) {
	c := NewServiceContainer(setupRepo(t), zap.NewNop())

	assert.NotNil(t, c.QueryService)
	assert.NotNil(t, c.EntryService)
	assert.NotNil(t, c.ExportService)
}
