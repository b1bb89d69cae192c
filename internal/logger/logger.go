package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel defines log level
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l LogLevel) zapLevel() zapcore.Level {
	switch l {
	case DEBUG:
		return zapcore.DebugLevel
	case WARN:
		return zapcore.WarnLevel
	case ERROR:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// ParseLevel parses a config level name such as "info" or "WARN".
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DEBUG, nil
	case "INFO", "":
		return INFO, nil
	case "WARN", "WARNING":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	default:
		return INFO, fmt.Errorf("unknown log level: %s", s)
	}
}

const filePrefix = "pokemate-"

// Logger is a leveled zap logger writing to daily rotated files
type Logger struct {
	mu          sync.Mutex
	level       zap.AtomicLevel
	logDir      string
	maxDays     int
	currentFile *os.File
	currentDate string
	now         func() time.Time
	sugar       *zap.SugaredLogger
}

var (
	defaultLogger *Logger
	once          sync.Once
)

// Config logger configuration
type Config struct {
	LogDir     string    // Log directory
	Level      LogLevel  // Log level
	MaxDays    int       // Max days to keep logs
	ConsoleOut bool      // Output to the console as well; stdout belongs to the MCP transport
	Console    io.Writer // Console destination, stderr when nil
}

// Init initializes the default logger
func Init(cfg Config) error {
	var err error
	once.Do(func() {
		defaultLogger, err = NewLogger(cfg)
	})
	return err
}

// NewLogger creates a new logger instance
func NewLogger(cfg Config) (*Logger, error) {
	if cfg.MaxDays <= 0 {
		cfg.MaxDays = 7
	}

	if err := os.MkdirAll(cfg.LogDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	l := &Logger{
		level:   zap.NewAtomicLevelAt(cfg.Level.zapLevel()),
		logDir:  cfg.LogDir,
		maxDays: cfg.MaxDays,
		now:     time.Now,
	}

	if err := l.rotateIfNeeded(); err != nil {
		return nil, err
	}

	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:     "time",
		LevelKey:    "level",
		MessageKey:  "msg",
		LineEnding:  zapcore.DefaultLineEnding,
		EncodeTime:  bracketTime,
		EncodeLevel: bracketLevel,
		// Matches the "[time] [LEVEL] message" layout of earlier log files.
		ConsoleSeparator: " ",
	})
	core := zapcore.NewCore(encoder, zapcore.AddSync(&fileSink{logger: l}), l.level)
	if cfg.ConsoleOut {
		var console io.Writer = os.Stderr
		if cfg.Console != nil {
			console = cfg.Console
		}
		core = zapcore.NewTee(core, zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(console)), l.level))
	}
	l.sugar = zap.New(core).Sugar()

	return l, nil
}

func bracketTime(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + t.Format("2006-01-02 15:04:05") + "]")
}

func bracketLevel(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + level.CapitalString() + "]")
}

// fileSink feeds zap output into the current day's file.
type fileSink struct {
	logger *Logger
}

func (s *fileSink) Write(p []byte) (int, error) {
	l := s.logger
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.rotateIfNeeded(); err != nil {
		return 0, err
	}
	if l.currentFile == nil {
		return len(p), nil
	}
	return l.currentFile.Write(p)
}

// rotateIfNeeded checks if log rotation is needed and performs it.
// Callers hold l.mu, except during construction.
func (l *Logger) rotateIfNeeded() error {
	today := l.now().Format("2006-01-02")
	if l.currentDate == today && l.currentFile != nil {
		return nil
	}

	if l.currentFile != nil {
		l.currentFile.Close()
	}

	filename := filepath.Join(l.logDir, fmt.Sprintf("%s%s.log", filePrefix, today))
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	l.currentFile = f
	l.currentDate = today

	go l.cleanOldLogs()

	return nil
}

// cleanOldLogs removes log files older than maxDays
func (l *Logger) cleanOldLogs() {
	files, err := filepath.Glob(filepath.Join(l.logDir, filePrefix+"*.log"))
	if err != nil {
		return
	}

	if len(files) <= l.maxDays {
		return
	}

	// Names sort by date
	sort.Strings(files)

	for i := 0; i < len(files)-l.maxDays; i++ {
		os.Remove(files[i])
	}
}

func (l *Logger) log(level LogLevel, format string, args ...interface{}) {
	switch level {
	case DEBUG:
		l.sugar.Debugf(format, args...)
	case INFO:
		l.sugar.Infof(format, args...)
	case WARN:
		l.sugar.Warnf(format, args...)
	default:
		l.sugar.Errorf(format, args...)
	}
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(DEBUG, format, args...)
}

// Info logs an info message
func (l *Logger) Info(format string, args ...interface{}) {
	l.log(INFO, format, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, args ...interface{}) {
	l.log(WARN, format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.log(ERROR, format, args...)
}

// Close flushes and closes the logger
func (l *Logger) Close() error {
	_ = l.sugar.Sync()

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.currentFile != nil {
		err := l.currentFile.Close()
		l.currentFile = nil
		return err
	}
	return nil
}

// GetWriter returns an io.Writer for the logger at the specified level
func (l *Logger) GetWriter(level LogLevel) io.Writer {
	return &logWriter{logger: l, level: level}
}

// logWriter implements io.Writer interface
type logWriter struct {
	logger *Logger
	level  LogLevel
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	msg := strings.TrimSpace(string(p))
	if msg != "" {
		w.logger.log(w.level, "%s", msg)
	}
	return len(p), nil
}

// Package-level functions using the default logger

// Debug logs a debug message using the default logger
func Debug(format string, args ...interface{}) {
	if defaultLogger != nil {
		defaultLogger.Debug(format, args...)
	}
}

// Info logs an info message using the default logger
func Info(format string, args ...interface{}) {
	if defaultLogger != nil {
		defaultLogger.Info(format, args...)
	}
}

// Warn logs a warning message using the default logger
func Warn(format string, args ...interface{}) {
	if defaultLogger != nil {
		defaultLogger.Warn(format, args...)
	}
}

// Error logs an error message using the default logger
func Error(format string, args ...interface{}) {
	if defaultLogger != nil {
		defaultLogger.Error(format, args...)
	}
}

// GetWriter returns a writer logging to the default logger at level, or
// io.Discard before Init.
func GetWriter(level LogLevel) io.Writer {
	if defaultLogger == nil {
		return io.Discard
	}
	return defaultLogger.GetWriter(level)
}

// Close closes the default logger
func Close() error {
	if defaultLogger != nil {
		return defaultLogger.Close()
	}
	return nil
}

// GetDefault returns the default logger
func GetDefault() *Logger {
	return defaultLogger
}
