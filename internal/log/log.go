// Package log — структурное логирование поверх slog
// с разумными умолчаниями.
package log

import (
	"log/slog"
	"os"
	"sync"
)

var (
	logger *slog.Logger
	once   sync.Once
)

// Init настраивает глобальный логгер.
// Допустимые уровни: "debug", "info", "warn", "error".
func Init(level string, json bool) {
	once.Do(func() {
		var lvl slog.Level
		switch level {
		case "debug":
			lvl = slog.LevelDebug
		case "warn":
			lvl = slog.LevelWarn
		case "error":
			lvl = slog.LevelError
		default:
			lvl = slog.LevelInfo
		}

		opts := &slog.HandlerOptions{
			Level: lvl,
		}

		if json {
			logger = slog.New(slog.NewJSONHandler(os.Stdout, opts))
		} else {
			logger = slog.New(slog.NewTextHandler(os.Stdout, opts))
		}

		slog.SetDefault(logger)
	})
}

// L возвращает глобальный логгер.
func L() *slog.Logger {
	if logger == nil {
		Init("info", false)
	}
	return logger
}

// Debug пишет сообщение уровня debug.
func Debug(msg string, args ...any) {
	L().Debug(msg, args...)
}

// Info пишет сообщение уровня info.
func Info(msg string, args ...any) {
	L().Info(msg, args...)
}

// Warn пишет сообщение уровня warn.
func Warn(msg string, args ...any) {
	L().Warn(msg, args...)
}

// Error пишет сообщение уровня error.
func Error(msg string, args ...any) {
	L().Error(msg, args...)
}
