package logger

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap/zapcore"
)

func readLog(t *testing.T, dir, day string) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(dir, "pokemate-"+day+".log"))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	return string(content)
}

func TestLogLevel_String(t *testing.T) {
	if got := WARN.String(); got != "WARN" {
		t.Errorf("WARN.String() = %v", got)
	}
	if got := LogLevel(99).String(); got != "UNKNOWN" {
		t.Errorf("LogLevel(99).String() = %v, want UNKNOWN", got)
	}
}

func TestNewLogger_Defaults(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs", "subdir")

	logger, err := NewLogger(Config{LogDir: logDir, Level: INFO})
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Close()

	if logger.maxDays != 7 {
		t.Errorf("Expected default maxDays 7, got %d", logger.maxDays)
	}
	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		t.Error("Log directory was not created")
	}
}

func TestLogger_LineLayout(t *testing.T) {
	tmpDir := t.TempDir()

	logger, err := NewLogger(Config{LogDir: tmpDir, Level: DEBUG})
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	logger.Debug("debug message %d", 1)
	logger.Error("error message")
	logger.Close()

	lines := strings.Split(strings.TrimSpace(readLog(t, tmpDir, time.Now().Format("2006-01-02"))), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d: %q", len(lines), lines)
	}
	// [2006-01-02 15:04:05] [DEBUG] debug message 1
	if len(lines[0]) < 22 || lines[0][0] != '[' || lines[0][20] != ']' {
		t.Errorf("Line should start with a bracketed timestamp: %q", lines[0])
	}
	if !strings.HasSuffix(lines[0], " [DEBUG] debug message 1") {
		t.Errorf("Unexpected debug line: %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], " [ERROR] error message") {
		t.Errorf("Unexpected error line: %q", lines[1])
	}
}

func TestLogger_LevelEnabler(t *testing.T) {
	tmpDir := t.TempDir()

	logger, err := NewLogger(Config{LogDir: tmpDir, Level: WARN})
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	core := logger.sugar.Desugar().Core()
	if core.Enabled(zapcore.InfoLevel) {
		t.Error("Core should reject INFO at WARN level")
	}
	if !core.Enabled(zapcore.WarnLevel) {
		t.Error("Core should accept WARN at WARN level")
	}

	logger.Debug("debug message")
	logger.Info("info message")
	logger.GetWriter(INFO).Write([]byte("info via writer\n"))
	logger.Warn("warn message")
	logger.GetWriter(ERROR).Write([]byte("error via writer\n"))
	logger.Close()

	logContent := readLog(t, tmpDir, time.Now().Format("2006-01-02"))
	for _, dropped := range []string{"[DEBUG]", "[INFO]", "info via writer"} {
		if strings.Contains(logContent, dropped) {
			t.Errorf("%s should be filtered out, got:\n%s", dropped, logContent)
		}
	}
	for _, kept := range []string{"[WARN] warn message", "[ERROR] error via writer"} {
		if !strings.Contains(logContent, kept) {
			t.Errorf("Log should contain %q, got:\n%s", kept, logContent)
		}
	}
}

func TestLogger_ConsoleTee(t *testing.T) {
	tmpDir := t.TempDir()
	var console bytes.Buffer

	logger, err := NewLogger(Config{LogDir: tmpDir, Level: INFO, ConsoleOut: true, Console: &console})
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	logger.Debug("hidden")
	logger.Warn("careful %d", 3)
	logger.Close()

	if !strings.Contains(console.String(), "[WARN] careful 3") {
		t.Errorf("Console should mirror the file, got: %q", console.String())
	}
	if strings.Contains(console.String(), "hidden") {
		t.Errorf("Console should honor the level, got: %q", console.String())
	}
	if !strings.Contains(readLog(t, tmpDir, time.Now().Format("2006-01-02")), "[WARN] careful 3") {
		t.Error("File should still receive the entry")
	}
}

func TestLogger_ConsoleOffIgnoresWriter(t *testing.T) {
	var console bytes.Buffer

	logger, err := NewLogger(Config{LogDir: t.TempDir(), Level: INFO, Console: &console})
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	logger.Error("file only")
	logger.Close()

	if console.Len() != 0 {
		t.Errorf("Console should stay empty without ConsoleOut, got: %q", console.String())
	}
}

func TestLogger_DayRollover(t *testing.T) {
	tmpDir := t.TempDir()

	logger, err := NewLogger(Config{LogDir: tmpDir, Level: INFO, MaxDays: 30})
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	day := time.Date(2024, 3, 9, 23, 59, 0, 0, time.Local)
	logger.mu.Lock()
	logger.now = func() time.Time { return day }
	logger.mu.Unlock()
	logger.Info("before midnight")

	logger.mu.Lock()
	logger.now = func() time.Time { return day.Add(2 * time.Minute) }
	logger.mu.Unlock()
	logger.Info("after midnight")
	logger.Close()

	first := readLog(t, tmpDir, "2024-03-09")
	second := readLog(t, tmpDir, "2024-03-10")
	if !strings.Contains(first, "before midnight") || strings.Contains(first, "after midnight") {
		t.Errorf("Unexpected content for 2024-03-09:\n%s", first)
	}
	if !strings.Contains(second, "after midnight") || strings.Contains(second, "before midnight") {
		t.Errorf("Unexpected content for 2024-03-10:\n%s", second)
	}
}

func TestPackageLevelFunctions_WithNilLogger(t *testing.T) {
	savedLogger := defaultLogger
	defaultLogger = nil
	defer func() { defaultLogger = savedLogger }()

	// These should not panic when default logger is nil
	Debug("test")
	Info("test")
	Warn("test")
	Error("test")

	if GetDefault() != nil {
		t.Error("GetDefault should return nil when no logger is initialized")
	}
	if GetWriter(ERROR) != io.Discard {
		t.Error("GetWriter should discard before Init")
	}
	if err := Close(); err != nil {
		t.Errorf("Close with nil logger returned error: %v", err)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    LogLevel
		wantErr bool
	}{
		{"debug", DEBUG, false},
		{"INFO", INFO, false},
		{"", INFO, false},
		{" warn ", WARN, false},
		{"warning", WARN, false},
		{"error", ERROR, false},
		{"verbose", INFO, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCleanOldLogs(t *testing.T) {
	tmpDir := t.TempDir()

	for _, day := range []string{"2024-01-01", "2024-01-02", "2024-01-03"} {
		path := filepath.Join(tmpDir, "pokemate-"+day+".log")
		if err := os.WriteFile(path, []byte("old\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	l := &Logger{logDir: tmpDir, maxDays: 1}
	l.cleanOldLogs()

	files, err := filepath.Glob(filepath.Join(tmpDir, "pokemate-*.log"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 {
		t.Fatalf("Expected 1 log file to remain, got %d", len(files))
	}
	if filepath.Base(files[0]) != "pokemate-2024-01-03.log" {
		t.Errorf("Newest log should remain, got %s", files[0])
	}
}
