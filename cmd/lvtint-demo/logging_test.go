package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	logFile := setupLogging(false)
	if logFile != nil {
		t.Error("Expected nil log file when debug=false")
		logFile.Close()
	}

	if log.Writer() != io.Discard {
		t.Errorf("Expected log output to be io.Discard, got %v", log.Writer())
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	defer os.RemoveAll(logDir)

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}
	defer logFile.Close()

	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		t.Error("Expected logs directory to be created")
	}

	logPath := filepath.Join(logDir, logFileName)
	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		t.Error("Expected log file to be created")
	}

	log.Println("Test log message")

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected log file to contain content")
	}
}

func TestSetupLogging_Rotation(t *testing.T) {
	defer os.RemoveAll(logDir)

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatalf("Failed to create logs directory: %v", err)
	}

	logPath := filepath.Join(logDir, logFileName)
	largeFile, err := os.Create(logPath)
	if err != nil {
		t.Fatalf("Failed to create large log file: %v", err)
	}
	data := make([]byte, maxLogSize+1)
	if _, err := largeFile.Write(data); err != nil {
		t.Fatalf("Failed to write to log file: %v", err)
	}
	largeFile.Close()

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer logFile.Close()

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}
	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != logFileName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
			break
		}
	}
	if !rotatedFound {
		t.Error("Expected to find rotated log file")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("Expected new log file to be smaller than %d bytes, got %d", maxLogSize, info.Size())
	}
}
