package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

var Log *slog.Logger

// Options controls the process logger
type Options struct {
	Level string
	// File enables an additional rotating log file
	File string
}

func init() {
	// Usable before Init, e.g. from tests
	Log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

func Init(opts Options) {
	var out io.Writer = os.Stdout
	if opts.File != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    50, // megabytes
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		})
	}

	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level: ParseLevel(opts.Level),
	})
	Log = slog.New(handler)
	slog.SetDefault(Log)
}

// ParseLevel maps a config string to a slog level, defaulting to info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
