package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/venkatesh141/Ecom/config"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps slog.Logger with package-level convenience functions.
type Logger struct {
	*slog.Logger
}

var logger *Logger

// InitLogger initializes the global logger from config.
func InitLogger(cfg *config.Logger) error {
	var (
		handler slog.Handler
		level   slog.Level
		writer  io.Writer
	)

	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	switch cfg.Output {
	case "file":
		logDir := filepath.Dir(cfg.FilePath)
		if err := os.MkdirAll(logDir, 0755); err != nil {
			return err
		}

		writer = &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   true,
		}
	default:
		writer = os.Stdout
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: cfg.Level == "debug",
	}

	switch cfg.Format {
	case "text":
		handler = slog.NewTextHandler(writer, opts)
	default:
		handler = slog.NewJSONHandler(writer, opts)
	}

	logger = &Logger{
		Logger: slog.New(handler),
	}

	Info("Logger initialized", "level", cfg.Level, "format", cfg.Format, "output", cfg.Output)
	return nil
}

// GetLogger returns the global logger, falling back to slog's default before
// InitLogger has run.
func GetLogger() *Logger {
	if logger == nil {
		return &Logger{Logger: slog.Default()}
	}
	return logger
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

func InfoContext(ctx context.Context, msg string, args ...any) {
	GetLogger().InfoContext(ctx, msg, args...)
}

func ErrorContext(ctx context.Context, msg string, args ...any) {
	GetLogger().ErrorContext(ctx, msg, args...)
}

// With returns a logger carrying additional fields.
func With(args ...any) *Logger {
	return &Logger{Logger: GetLogger().With(args...)}
}
