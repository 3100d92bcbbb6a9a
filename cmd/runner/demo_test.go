package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/events"
)

func TestDemoStatsRecord(t *testing.T) {
	st := &demoStats{}
	sink := events.Fanout(st.record)

	sink.Emit(events.ScoreChanged{Score: 1})
	sink.Emit(events.ScoreChanged{Score: 2})
	sink.Emit(events.GameOver{Score: 2})
	sink.Emit(events.RetryRequested{})
	sink.Emit(events.ScoreChanged{Score: 0})
	sink.Emit(events.ScoreChanged{Score: 1})

	if st.clears != 3 || st.best != 2 || st.games != 1 {
		t.Errorf("stats = %+v, expected 3 clears, best 2, 1 game", *st)
	}
}

func TestNewLoggerFlushesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.log")
	flagLogFile, flagLogLevel = path, "debug"
	t.Cleanup(func() { flagLogFile, flagLogLevel = "", "info" })

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	logger.Debug("hello", "n", 1)
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file = %q, expected the debug line", data)
	}
}

func TestNewLoggerRejectsLevel(t *testing.T) {
	flagLogLevel = "loud"
	t.Cleanup(func() { flagLogLevel = "info" })

	if _, _, err := newLogger(os.Stderr); err == nil {
		t.Error("newLogger() should reject an unknown level")
	}
}
