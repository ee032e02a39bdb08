package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupLoggingDiscardsWithoutDebug(t *testing.T) {
	logFile := setupLogging(false)
	if logFile != nil {
		logFile.Close()
		t.Fatal("expected no log file without debug")
	}
	if log.Writer() != io.Discard {
		t.Errorf("expected log output to be io.Discard, got %v", log.Writer())
	}
	if _, err := os.Stat(logDir); err == nil {
		t.Error("logs directory must not be created without debug")
	}
}

func TestSetupLoggingWritesFile(t *testing.T) {
	defer os.RemoveAll(logDir)

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("expected a log file with debug")
	}
	defer logFile.Close()

	out := log.Writer()
	if out == os.Stdout || out == os.Stderr {
		t.Error("log output must not reach the terminal")
	}

	log.Printf("lock at row %d", 15)

	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("failed to read log: %v", err)
	}
	if !strings.Contains(string(data), "lock at row 15") {
		t.Errorf("log file missing message, got %q", data)
	}
}

func TestSetupLoggingRotatesOversizedLog(t *testing.T) {
	defer os.RemoveAll(logDir)

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatalf("failed to create logs directory: %v", err)
	}
	logPath := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("failed to write oversized log: %v", err)
	}

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("expected a log file")
	}
	defer logFile.Close()

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatalf("failed to read logs directory: %v", err)
	}
	rotated := ""
	for _, entry := range entries {
		if entry.Name() != logFileName && filepath.Ext(entry.Name()) == ".log" {
			rotated = entry.Name()
		}
	}
	if !strings.HasPrefix(rotated, "vi-tetris-") {
		t.Fatalf("expected a rotated vi-tetris-*.log, got %q", rotated)
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("failed to stat new log: %v", err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("new log should be fresh, got %d bytes", info.Size())
	}
}

func TestSetupLoggingKeepsSmallLog(t *testing.T) {
	defer os.RemoveAll(logDir)

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatalf("failed to create logs directory: %v", err)
	}
	logPath := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(logPath, []byte("previous run\n"), 0644); err != nil {
		t.Fatalf("failed to seed log: %v", err)
	}

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("expected a log file")
	}
	defer logFile.Close()

	entries, _ := os.ReadDir(logDir)
	if len(entries) != 1 {
		t.Errorf("expected no rotation, found %d files", len(entries))
	}
	data, _ := os.ReadFile(logPath)
	if !strings.HasPrefix(string(data), "previous run") {
		t.Error("small log must be appended to, not replaced")
	}
}
