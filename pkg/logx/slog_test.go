package logx_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"track_market/pkg/logx"
)

func TestParseLevel(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		input string
		level slog.Level
	}{
		{input: "debug", level: slog.LevelDebug},
		{input: " WARN ", level: slog.LevelWarn},
		{input: "warning", level: slog.LevelWarn},
		{input: "error", level: slog.LevelError},
		{input: "info", level: slog.LevelInfo},
		{input: "", level: slog.LevelInfo},
		{input: "verbose", level: slog.LevelInfo},
	}

	for _, tc := range testCases {
		rq.Equal(tc.level, logx.ParseLevel(tc.input), tc.input)
	}
}

func TestNewLogger(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	log := logx.NewLogger(&buf, "warn", true)

	log.Info("skipped")
	log.Warn("storage degraded", logx.Error(errors.New("connection refused")))

	rq.NotContains(buf.String(), "skipped")
	rq.Contains(buf.String(), "storage degraded")
	rq.Contains(buf.String(), "connection refused")
}
