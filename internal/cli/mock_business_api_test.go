package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"worklog/internal/api"
	"worklog/internal/domain"
	"worklog/internal/errors"
	"worklog/internal/services"
)

// mockBusinessAPI implements the BusinessAPI interface for testing
type mockBusinessAPI struct {
	entries  []domain.Entry
	saved    []domain.Entry
	deleted  []string
	searches []api.SearchRequest
	err      error
}

// newMockBusinessAPI creates a mock holding entries in display order
func newMockBusinessAPI(entries ...domain.Entry) *mockBusinessAPI {
	return &mockBusinessAPI{entries: append([]domain.Entry(nil), entries...)}
}

func (m *mockBusinessAPI) SaveEntry(ctx context.Context, draft domain.Entry) (*domain.Entry, error) {
	if m.err != nil {
		return nil, m.err
	}
	if draft.UID == "" {
		draft.UID = fmt.Sprintf("uid-%d", len(m.entries)+1)
	}
	m.entries = append(m.entries, draft)
	m.saved = append(m.saved, draft)
	return &draft, nil
}

func (m *mockBusinessAPI) DeleteEntry(ctx context.Context, uid string) error {
	if m.err != nil {
		return m.err
	}
	for i, e := range m.entries {
		if e.UID == uid {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			m.deleted = append(m.deleted, uid)
			return nil
		}
	}
	return errors.NewNotFoundError("entry", uid)
}

func (m *mockBusinessAPI) ListEmployees(ctx context.Context) (*services.PickList[string], error) {
	if m.err != nil {
		return nil, m.err
	}
	names := services.NewPickList[string]()
	for _, e := range m.entries {
		names.Add(strings.ToUpper(e.EmployeeName), e.EmployeeName)
	}
	return names, nil
}

func (m *mockBusinessAPI) ListStartDates(ctx context.Context) (*services.PickList[time.Time], error) {
	if m.err != nil {
		return nil, m.err
	}
	dates := services.NewPickList[time.Time]()
	for _, e := range m.entries {
		dates.Add(strconv.FormatInt(e.DateStarted.Unix(), 10), e.DateStarted)
	}
	return dates, nil
}

func (m *mockBusinessAPI) Search(ctx context.Context, req api.SearchRequest) (*api.SearchResult, error) {
	m.searches = append(m.searches, req)
	if m.err != nil {
		return nil, m.err
	}

	var matched []domain.Entry
	for _, e := range m.entries {
		var ok bool
		switch req.Mode {
		case api.SearchByEmployee:
			ok = strings.Contains(e.EmployeeName, req.Employee)
		case api.SearchByDate:
			ok = e.DateStarted.Equal(req.Started)
		case api.SearchByDuration:
			ok = req.Duration.Matches(e.Minutes())
		case api.SearchByLookup:
			ok = strings.Contains(e.CompletedTask, req.Text) || strings.Contains(e.Notes, req.Text)
		default:
			ok = true
		}
		if ok {
			matched = append(matched, e)
		}
	}
	return &api.SearchResult{Request: req, Entries: matched}, nil
}

func (m *mockBusinessAPI) ExportEntries(ctx context.Context) ([]services.ExportRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	records := make([]services.ExportRecord, 0, len(m.entries))
	for _, e := range m.entries {
		records = append(records, services.ToExportRecord(e))
	}
	return records, nil
}
