package util

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewRunLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	logger, closeLog, err := NewRunLogger("info", path)
	if err != nil {
		t.Fatalf("NewRunLogger returned error: %v", err)
	}

	logger.Debug().Msg("file only detail")
	logger.Info().Msg("visible everywhere")
	if err := closeLog(); err != nil {
		t.Fatalf("close log: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "file only detail") {
		t.Fatalf("expected debug line in log file, got %s", data)
	}
	if !strings.Contains(string(data), "visible everywhere") {
		t.Fatalf("expected info line in log file, got %s", data)
	}
}

func TestNewRunLoggerLevelFallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	logger, closeLog, err := NewRunLogger("invalid", path)
	if err != nil {
		t.Fatalf("NewRunLogger returned error: %v", err)
	}
	defer closeLog()

	// The logger itself stays at debug so the file sink sees everything.
	logger.Debug().Msg("still recorded")
}

func TestNewRunLoggerBadPath(t *testing.T) {
	_, _, err := NewRunLogger("info", filepath.Join(t.TempDir(), "missing", "run.log"))
	if err == nil {
		t.Fatalf("expected error for unwritable log path")
	}
}
