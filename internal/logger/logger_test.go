package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_Formats(t *testing.T) {
	for _, format := range []string{"console", "json", ""} {
		l, err := New(format)
		require.NoError(t, err, "format %q", format)
		require.NotNil(t, l)
	}

	_, err := New("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log format")
}

func TestNew_DefaultLevelIsInfo(t *testing.T) {
	l, err := New("console")
	require.NoError(t, err)

	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
}

func TestNew_LevelOverride(t *testing.T) {
	l, err := New("console", "debug")
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))

	l, err = New("json", "error")
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.WarnLevel))
	assert.True(t, l.Core().Enabled(zapcore.ErrorLevel))

	_, err = New("console", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}
