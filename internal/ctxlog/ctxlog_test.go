package ctxlog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/searchgrade/internal/ctxlog"
)

func TestFromContext(t *testing.T) {
	assert.Same(t, slog.Default(), ctxlog.FromContext(context.Background()))

	var buf bytes.Buffer
	logger := ctxlog.New("debug", "text", &buf)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	assert.Same(t, logger, ctxlog.FromContext(ctx))

	ctxlog.FromContext(ctx).Debug("graded", "student", "Aardvark")
	assert.Contains(t, buf.String(), "student=Aardvark")
}

func TestNew_Levels(t *testing.T) {
	var buf bytes.Buffer
	ctxlog.New("warn", "json", &buf).Info("hidden")
	assert.Empty(t, buf.String())

	ctxlog.New("warn", "json", &buf).Warn("shown")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	ctxlog.Discard().Error("dropped")
}
