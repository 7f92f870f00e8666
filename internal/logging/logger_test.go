package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestDebugEnabled(t *testing.T) {
	t.Setenv("WORKLOG_DEBUG", "")
	assert.False(t, DebugEnabled(), "empty WORKLOG_DEBUG should disable debug")

	t.Setenv("WORKLOG_DEBUG", "1")
	assert.True(t, DebugEnabled(), "any WORKLOG_DEBUG value should enable debug")
}

func TestNew_Levels(t *testing.T) {
	t.Setenv("WORKLOG_DEBUG", "")

	tests := []struct {
		level   string
		enabled zapcore.Level
		muted   zapcore.Level
	}{
		{"debug", zapcore.DebugLevel, zapcore.Level(-2)},
		{"info", zapcore.InfoLevel, zapcore.DebugLevel},
		{"warn", zapcore.WarnLevel, zapcore.InfoLevel},
		{"error", zapcore.ErrorLevel, zapcore.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger, err := New(tt.level, "console", filepath.Join(t.TempDir(), "worklog.log"))
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.enabled))
			assert.False(t, logger.Core().Enabled(tt.muted))
		})
	}
}

func TestNew_DebugOverride(t *testing.T) {
	t.Setenv("WORKLOG_DEBUG", "1")

	logger, err := New("error", "console", filepath.Join(t.TempDir(), "worklog.log"))
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_InvalidInput(t *testing.T) {
	_, err := New("loud", "console", "")
	assert.Error(t, err)

	_, err = New("info", "xml", "")
	assert.Error(t, err)
}

func TestNew_WritesJSONToFile(t *testing.T) {
	t.Setenv("WORKLOG_DEBUG", "")
	path := filepath.Join(t.TempDir(), "worklog.log")

	logger, err := New("info", "json", path)
	require.NoError(t, err)
	logger.Info("entry saved", zap.String("employee", "Stuart McIntosh"))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.True(t, strings.Contains(out, `"msg":"entry saved"`), out)
	assert.True(t, strings.Contains(out, `"employee":"Stuart McIntosh"`), out)
}
