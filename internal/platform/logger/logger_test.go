package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/echolearn/echo-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		expected  slog.Level
		expectErr bool
	}{
		{name: "debug", input: "debug", expected: slog.LevelDebug},
		{name: "info", input: "info", expected: slog.LevelInfo},
		{name: "warn", input: "warn", expected: slog.LevelWarn},
		{name: "error", input: "error", expected: slog.LevelError},
		{name: "case insensitive", input: "INFO", expected: slog.LevelInfo},
		{name: "unknown level", input: "verbose", expectErr: true},
		{name: "empty", input: "", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			level, err := parseLevel(tc.input)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, level)
		})
	}
}

func TestSetup(t *testing.T) {
	log, err := Setup(config.ServerConfig{Port: 8080, LogLevel: "warn"})
	require.NoError(t, err)
	require.NotNil(t, log)

	assert.False(t, log.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, log.Enabled(context.Background(), slog.LevelWarn))

	_, err = Setup(config.ServerConfig{Port: 8080, LogLevel: "nope"})
	assert.Error(t, err)
}

func TestFromContextOrDefault(t *testing.T) {
	fallback := slog.Default()

	// Empty context falls back.
	got := FromContextOrDefault(context.Background(), fallback)
	assert.Equal(t, fallback, got)

	// Context logger wins.
	ctxLogger := slog.Default().With(slog.String("test", "value"))
	ctx := WithLogger(context.Background(), ctxLogger)
	got = FromContextOrDefault(ctx, fallback)
	assert.Equal(t, ctxLogger, got)

	// Nil fallback degrades to the default logger.
	got = FromContextOrDefault(context.Background(), nil)
	assert.NotNil(t, got)
}
