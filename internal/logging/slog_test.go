package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/apportion/types"
)

func TestSlogLogger_ImplementsInterface(_ *testing.T) {
	var _ types.Logger = (*SlogLogger)(nil)
}

func TestNewSlog(t *testing.T) {
	buf := &bytes.Buffer{}
	handler := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := NewSlog(slog.New(handler))

	require.NotNil(t, logger)
	require.NotNil(t, logger.logger)
}

func TestNewSlog_NilUsesDefault(t *testing.T) {
	logger := NewSlog(nil)

	require.NotNil(t, logger)
	require.Same(t, slog.Default(), logger.logger)
}

func TestSlogLogger_Debug(t *testing.T) {
	buf := &bytes.Buffer{}
	handler := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := NewSlog(slog.New(handler))

	logger.Debug("bisection step", "divisor", "1.5")

	output := buf.String()
	assert.Contains(t, output, "bisection step")
	assert.Contains(t, output, "divisor=1.5")
	assert.Contains(t, output, "level=DEBUG")
}

func TestSlogLogger_Info(t *testing.T) {
	buf := &bytes.Buffer{}
	handler := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	logger := NewSlog(slog.New(handler))

	logger.Info("stage complete", "stage", "list_seats")

	output := buf.String()
	assert.Contains(t, output, "stage complete")
	assert.Contains(t, output, "stage=list_seats")
	assert.Contains(t, output, "level=INFO")
}

func TestSlogLogger_Warn(t *testing.T) {
	buf := &bytes.Buffer{}
	handler := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelWarn})
	logger := NewSlog(slog.New(handler))

	logger.Warn("district tie", "district", "D042")

	output := buf.String()
	assert.Contains(t, output, "district tie")
	assert.Contains(t, output, "district=D042")
	assert.Contains(t, output, "level=WARN")
}

func TestSlogLogger_Error(t *testing.T) {
	buf := &bytes.Buffer{}
	handler := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelError})
	logger := NewSlog(slog.New(handler))

	logger.Error("run failed", "error", "degenerate")

	output := buf.String()
	assert.Contains(t, output, "run failed")
	assert.Contains(t, output, "error=degenerate")
	assert.Contains(t, output, "level=ERROR")
}

func TestSlogLogger_LevelFiltering(t *testing.T) {
	buf := &bytes.Buffer{}
	handler := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelWarn})
	logger := NewSlog(slog.New(handler))

	// Debug and Info should be filtered out
	logger.Debug("search detail")
	logger.Info("stage boundary")

	output := buf.String()
	assert.NotContains(t, output, "search detail")
	assert.NotContains(t, output, "stage boundary")

	logger.Warn("tie resolved")
	logger.Error("floor violated")

	output = buf.String()
	assert.Contains(t, output, "tie resolved")
	assert.Contains(t, output, "floor violated")
}

func TestSlogLogger_MultipleKeyValues(t *testing.T) {
	buf := &bytes.Buffer{}
	handler := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	logger := NewSlog(slog.New(handler))

	logger.Info("leveling complete",
		"assembly_size", 709,
		"divisor", 58700,
		"repair_passes", 0,
		"stage", "leveling")

	output := buf.String()
	assert.Contains(t, output, "leveling complete")
	assert.Contains(t, output, "assembly_size=709")
	assert.Contains(t, output, "divisor=58700")
	assert.Contains(t, output, "repair_passes=0")
	assert.Contains(t, output, "stage=leveling")
}
