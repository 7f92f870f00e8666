package api

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worklog/internal/config"
	"worklog/internal/domain"
	"worklog/internal/errors"
)

var started = time.Date(2017, time.April, 14, 10, 0, 0, 0, time.Local)

func setupTestBusinessAPI(t *testing.T, drafts ...domain.Entry) (BusinessAPI, []domain.Entry) {
	t.Helper()
	repo, err := config.CreateTestRepository(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	b := NewBusinessAPI(repo, nil)
	saved := make([]domain.Entry, 0, len(drafts))
	for _, d := range drafts {
		s, err := b.SaveEntry(context.Background(), d)
		require.NoError(t, err)
		saved = append(saved, *s)
	}
	return b, saved
}

func draft(employee, task string, start time.Time, minutes int, notes string) domain.Entry {
	return domain.NewEntry(employee, task, start, start.Add(time.Duration(minutes)*time.Minute), notes)
}

func taskNames(r *SearchResult) []string {
	out := make([]string, 0, len(r.Entries))
	for _, e := range r.Entries {
		out = append(out, e.CompletedTask)
	}
	return out
}

func TestBusinessAPI_Search(t *testing.T) {
	b, _ := setupTestBusinessAPI(t,
		draft("Stuart McIntosh", "Fix login", started, 45, "Reset cache"),
		draft("Ann Lee", "Database cleanup", started, 30, ""),
		draft("Bob Ray", "Write docs", started.Add(time.Hour), 120, "cache notes"),
	)
	ctx := context.Background()

	tests := []struct {
		name     string
		req      SearchRequest
		expected []string
	}{
		{"by employee", SearchRequest{Mode: SearchByEmployee, Employee: "Ann Lee"}, []string{"Database cleanup"}},
		{"by date", SearchRequest{Mode: SearchByDate, Started: started}, []string{"Fix login", "Database cleanup"}},
		{"exact duration", SearchRequest{Mode: SearchByDuration, Duration: domain.ExactDuration(30)}, []string{"Database cleanup"}},
		{"duration range", SearchRequest{Mode: SearchByDuration, Duration: domain.DurationRange(20, 50)}, []string{"Fix login", "Database cleanup"}},
		{"lookup", SearchRequest{Mode: SearchByLookup, Text: "cache"}, []string{"Fix login", "Write docs"}},
		{"all", SearchRequest{Mode: SearchAll}, []string{"Fix login", "Write docs", "Database cleanup"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := b.Search(ctx, tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.req, result.Request)
			assert.Equal(t, tt.expected, taskNames(result))
		})
	}
}

func TestBusinessAPI_Search_InvalidRequests(t *testing.T) {
	b, _ := setupTestBusinessAPI(t)
	ctx := context.Background()

	for _, req := range []SearchRequest{
		{Mode: SearchByEmployee},
		{Mode: SearchByDate},
		{Mode: SearchByLookup},
		{Mode: SearchByDuration, Duration: domain.DurationRange(50, 20)},
		{Mode: "pattern"},
	} {
		_, err := b.Search(ctx, req)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput), "mode %q", req.Mode)
	}
}

func TestBusinessAPI_EmptyStore(t *testing.T) {
	b, _ := setupTestBusinessAPI(t)
	ctx := context.Background()

	employees, err := b.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Zero(t, employees.Len())

	dates, err := b.ListStartDates(ctx)
	require.NoError(t, err)
	assert.Zero(t, dates.Len())

	result, err := b.Search(ctx, SearchRequest{Mode: SearchAll})
	require.NoError(t, err)
	assert.True(t, result.IsEmpty())
}

func TestBusinessAPI_PickLists(t *testing.T) {
	later := started.Add(48 * time.Hour)
	b, _ := setupTestBusinessAPI(t,
		draft("Ann Lee", "a", started, 10, ""),
		draft("Zoe Park", "b", later, 10, ""),
		draft("ann lee", "c", later, 10, ""),
	)
	ctx := context.Background()

	employees, err := b.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"ann lee", "Zoe Park"}, employees.Items())
	second, ok := employees.At(2)
	assert.True(t, ok)
	assert.Equal(t, "Zoe Park", second)
	_, ok = employees.At(3)
	assert.False(t, ok)

	dates, err := b.ListStartDates(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, dates.Len())
	first, ok := dates.At(1)
	require.True(t, ok)
	assert.True(t, later.Equal(first))
	last, ok := dates.At(2)
	require.True(t, ok)
	assert.True(t, started.Equal(last))
}

func TestBusinessAPI_DeleteEntry(t *testing.T) {
	b, saved := setupTestBusinessAPI(t,
		draft("Ann Lee", "keep", started, 10, ""),
		draft("Bob Ray", "drop", started, 10, ""),
	)
	ctx := context.Background()

	require.NoError(t, b.DeleteEntry(ctx, saved[1].UID))

	result, err := b.Search(ctx, SearchRequest{Mode: SearchAll})
	require.NoError(t, err)
	assert.Equal(t, []string{"keep"}, taskNames(result))

	err = b.DeleteEntry(ctx, saved[1].UID)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestBusinessAPI_ExportEntries(t *testing.T) {
	b, saved := setupTestBusinessAPI(t, draft("Stuart McIntosh", "Fix login", started, 45, ""))

	records, err := b.ExportEntries(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, saved[0].UID, records[0].UID)
	assert.Equal(t, int64(45), records[0].Minutes)
	assert.Equal(t, "0 hours 45 minutes", records[0].TimeString)
}
