package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"worklog/internal/api"
	"worklog/internal/config"
	"worklog/internal/domain"
)

var fixedNow = time.Date(2017, time.April, 14, 12, 0, 0, 0, time.Local)

// at returns a time on the day fixedNow falls on
func at(hour, minute int) time.Time {
	return time.Date(2017, time.April, 14, hour, minute, 0, 0, time.Local)
}

func entry(uid, employee, task string, start time.Time, minutes int, notes string) domain.Entry {
	e := domain.NewEntry(employee, task, start, start.Add(time.Duration(minutes)*time.Minute), notes)
	e.UID = uid
	return e
}

// script joins answers into newline terminated input
func script(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

// segmentedReader yields each part followed by a single end of input,
// the way a terminal behaves when Ctrl+D is pressed.
type segmentedReader struct {
	parts   []string
	pending string
	atEOF   bool
}

func newSegmentedReader(parts ...string) *segmentedReader {
	return &segmentedReader{parts: parts}
}

func (r *segmentedReader) Read(p []byte) (int, error) {
	if r.pending == "" {
		if r.atEOF {
			r.atEOF = false
			return 0, io.EOF
		}
		if len(r.parts) == 0 {
			return 0, io.EOF
		}
		r.pending, r.parts = r.parts[0], r.parts[1:]
		if r.pending == "" {
			return 0, io.EOF
		}
	}
	n := copy(p, r.pending)
	r.pending = r.pending[n:]
	if r.pending == "" {
		r.atEOF = true
	}
	return n, nil
}

func setupTestApp(t *testing.T, businessAPI api.BusinessAPI, in io.Reader) (*App, *bytes.Buffer) {
	t.Helper()

	restore := timeNow
	timeNow = func() time.Time { return fixedNow }
	t.Cleanup(func() { timeNow = restore })

	cfg := config.NewConfig()
	cfg.Display.ClearScreen = false

	var out bytes.Buffer
	return NewApp(businessAPI, cfg, in, &out, zap.NewNop()), &out
}

// setupStoreAPI returns a BusinessAPI over a fresh in-memory store
func setupStoreAPI(t *testing.T, entries ...domain.Entry) api.BusinessAPI {
	t.Helper()
	ctx := context.Background()

	repo, err := config.CreateTestRepository(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	b := api.NewBusinessAPI(repo, zap.NewNop())
	for _, e := range entries {
		_, err := b.SaveEntry(ctx, e)
		require.NoError(t, err)
	}
	return b
}
