package logger

import (
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	logger   *slog.Logger
	logLevel slog.Level
	once     sync.Once
)

func init() {
	Initialize()
}

// Initialize sets up the process-wide logger from the environment.
// LOG_LEVEL picks the level (DEBUG/INFO/WARN/ERROR), SCREENCMP_DEBUG=1 is a
// shorthand for DEBUG, and LOG_FORMAT=json switches to the JSON handler.
// Logs go to stderr so they never corrupt the alternate-screen TUI.
func Initialize() {
	once.Do(func() {
		levelStr := os.Getenv("LOG_LEVEL")
		if levelStr == "" {
			if debug := os.Getenv("SCREENCMP_DEBUG"); debug == "1" || debug == "true" {
				levelStr = "DEBUG"
			} else {
				levelStr = "INFO"
			}
		}

		switch strings.ToUpper(levelStr) {
		case "DEBUG":
			logLevel = slog.LevelDebug
		case "WARN", "WARNING":
			logLevel = slog.LevelWarn
		case "ERROR":
			logLevel = slog.LevelError
		default:
			logLevel = slog.LevelInfo
		}

		opts := &slog.HandlerOptions{Level: logLevel}

		var handler slog.Handler
		if strings.EqualFold(os.Getenv("LOG_FORMAT"), "json") {
			handler = slog.NewJSONHandler(os.Stderr, opts)
		} else {
			handler = slog.NewTextHandler(os.Stderr, opts)
		}

		logger = slog.New(handler)
	})
}

// GetLogger returns the process-wide logger.
func GetLogger() *slog.Logger {
	if logger == nil {
		Initialize()
	}
	return logger
}

// GetLevel returns the configured log level.
func GetLevel() slog.Level {
	if logger == nil {
		Initialize()
	}
	return logLevel
}

func Debug(msg string, args ...any) {
	GetLogger().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	GetLogger().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	GetLogger().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	GetLogger().Error(msg, args...)
}
