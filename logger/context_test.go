package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/leetcoach/client/logger"
	"github.com/stretchr/testify/assert"
)

func TestWithProblemTagsRecords(t *testing.T) {
	var buf bytes.Buffer
	ctx := logger.WithLogger(context.Background(), logger.New(&buf, "debug"))
	ctx = logger.WithProblem(ctx, "p-1")

	logger.FromContext(ctx).Debug("run dispatched")
	assert.Contains(t, buf.String(), "problem_id=p-1")
	assert.Contains(t, buf.String(), "run dispatched")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logger.ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, logger.ParseLevel("warning"))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel("verbose"))
}

func TestFromContextDefaults(t *testing.T) {
	assert.Equal(t, slog.Default(), logger.FromContext(context.Background()))
}
