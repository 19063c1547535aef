package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupLoggingDisabledByDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "snake.log")

	logger, f, err := setupLogging(false, path)
	if err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	if f != nil {
		f.Close()
		t.Fatal("expected no log file without debug")
	}
	logger.Info("dropped")

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("log file created without debug: %v", err)
	}
}

func TestSetupLoggingWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "snake.log")

	logger, f, err := setupLogging(true, path)
	if err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	if f == nil {
		t.Fatal("expected a log file with debug")
	}
	logger.Debug("apple eaten", "length", 2)
	f.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "apple eaten") || !strings.Contains(string(data), "length=2") {
		t.Fatalf("log content = %q", data)
	}
}

func TestOpenBackendUnknown(t *testing.T) {
	if _, err := openBackend("vga"); err == nil {
		t.Fatal("expected an error for an unknown backend")
	}
}
