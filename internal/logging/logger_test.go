package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNewStdout(t *testing.T) {
	logger := NewStdout(false)
	if logger == nil {
		t.Fatal("NewStdout returned nil")
	}

	// Should not panic
	logger.Log("test message")
	logger.Info("test info")
	logger.SetComponent("test-component")
	logger.SetOp("test-op")
}

func TestNewWithFile(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "test.log")

	logger, err := New(logPath, false)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer logger.Close()

	logger.SetComponent("test-component")
	logger.SetOp("test-op")
	logger.Log("test message %d", 123)

	// Read log file
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	content := string(data)
	if !strings.Contains(content, "[INFO ]") {
		t.Errorf("Log file should contain [INFO ], got: %s", content)
	}
	if !strings.Contains(content, "test message 123") {
		t.Errorf("Log file should contain message, got: %s", content)
	}
	if !strings.Contains(content, "test-component:test-op") {
		t.Errorf("Log file should contain context, got: %s", content)
	}
}

func TestLoggerDebugMode(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "test.log")

	// Test with debug mode off
	logger, err := New(logPath, false)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Debug("debug message")
	logger.Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	if strings.Contains(string(data), "debug message") {
		t.Errorf("Debug messages should not be logged when debug is off")
	}

	// Test with debug mode on
	logPath2 := filepath.Join(tempDir, "test2.log")
	logger2, err := New(logPath2, true)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger2.Debug("debug message on")
	logger2.Close()

	data2, err := os.ReadFile(logPath2)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	if !strings.Contains(string(data2), "debug message on") {
		t.Errorf("Debug messages should be logged when debug is on, got: %s", string(data2))
	}
}

func TestLoggerWarnError(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "test.log")

	logger, err := New(logPath, false)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Warn("warning message")
	logger.Error("error message")
	logger.Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	content := string(data)
	if !strings.Contains(content, "[WARN ]") {
		t.Errorf("Log file should contain [WARN ] for warnings, got: %s", content)
	}
	if !strings.Contains(content, "[ERROR]") {
		t.Errorf("Log file should contain [ERROR] for errors, got: %s", content)
	}
}

func TestTimer(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "test.log")

	logger, err := New(logPath, true)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer logger.Close()

	timer := logger.StartTimer("test operation")
	time.Sleep(10 * time.Millisecond)
	elapsed := timer.Stop()

	if elapsed < 10*time.Millisecond {
		t.Errorf("Timer elapsed = %v, want >= 10ms", elapsed)
	}

	// Read log file
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	content := string(data)
	if !strings.Contains(content, "test operation") {
		t.Errorf("Log file should contain timer operation name, got: %s", content)
	}
}

func TestTimerWithResult(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "test.log")

	logger, err := New(logPath, true)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer logger.Close()

	// Test success
	timer1 := logger.StartTimer("success operation")
	timer1.StopWithResult(true, "completed successfully")

	// Test failure
	timer2 := logger.StartTimer("failure operation")
	timer2.StopWithResult(false, "something went wrong")

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	content := string(data)
	if !strings.Contains(content, "completed") {
		t.Errorf("Log file should contain 'completed', got: %s", content)
	}
	if !strings.Contains(content, "failed") {
		t.Errorf("Log file should contain 'failed', got: %s", content)
	}
}

func TestGlobalLogger(t *testing.T) {
	// Save original global logger
	original := Global()
	defer SetGlobal(original)

	// Create and set a new logger
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "global.log")

	logger, err := New(logPath, false)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer logger.Close()

	SetGlobal(logger)

	// Use global functions
	Log("global log message")
	Info("global info message")
	Warn("global warn message")
	Error("global error message")

	// Verify global logger was used
	if Global() != logger {
		t.Error("Global() should return the set logger")
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	if !strings.Contains(string(data), "global log message") {
		t.Errorf("Log file should contain global log message, got: %s", string(data))
	}
}

func TestNewWithInvalidPath(t *testing.T) {
	_, err := New("/nonexistent/path/to/log/file.log", false)
	if err == nil {
		t.Error("New() should return error for invalid path")
	}
}

func TestLoggerContext(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "test.log")

	logger, err := New(logPath, false)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer logger.Close()

	// Test with only component
	logger.SetComponent("tui")
	logger.Log("message with component only")

	// Test with component and op
	logger.SetOp("save")
	logger.Log("message with component and op")

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	content := string(data)
	if !strings.Contains(content, "[tui]") {
		t.Errorf("Log file should contain component context, got: %s", content)
	}
	if !strings.Contains(content, "tui:save") {
		t.Errorf("Log file should contain component:op context, got: %s", content)
	}
}
