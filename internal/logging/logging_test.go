package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLoggerLevels(t *testing.T) {
	quiet := NewLogger(false)
	if quiet.Desugar().Core().Enabled(zapcore.InfoLevel) {
		t.Error("non-verbose logger should not emit info")
	}
	if !quiet.Desugar().Core().Enabled(zapcore.WarnLevel) {
		t.Error("non-verbose logger should emit warnings")
	}

	verbose := NewLogger(true)
	if !verbose.Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Error("verbose logger should emit debug")
	}
}

func TestWithAddsFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := New(core).With("input", "movie.srt")

	logger.Infow("Parsed subtitle file", "cues", 3)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["input"] != "movie.srt" {
		t.Errorf("input field = %v, want movie.srt", fields["input"])
	}
	if fields["cues"] != int64(3) {
		t.Errorf("cues field = %v (%T), want 3", fields["cues"], fields["cues"])
	}
}

func TestNopDiscards(t *testing.T) {
	logger := Nop()
	logger.Warnw("ignored", "key", "value")
	if logger.Desugar().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("nop logger should not be enabled at any level")
	}
}
