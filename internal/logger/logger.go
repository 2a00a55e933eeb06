package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ekisa-team/singalong/internal/env"
	"github.com/ekisa-team/singalong/internal/xfs"
)

const (
	defaultLogFile    = "logs/singalong.log"
	defaultMaxSizeMB  = 10
	defaultMaxBackups = 3
	defaultMaxAgeDays = 28
)

type options struct {
	level     slog.Leveler
	logToFile bool
	logFile   string
	output    io.Writer
}

// Option configures the logger.
type Option func(*options)

// WithLevel sets the minimum level. Passing a *slog.LevelVar lets callers
// change the level after the logger is built.
func WithLevel(level slog.Leveler) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithLogToFile enables writing logs to a rotated file in addition to stderr.
func WithLogToFile(enabled bool) Option {
	return func(o *options) {
		o.logToFile = enabled
	}
}

// WithLogFile sets the log file path. A leading "~" is expanded.
func WithLogFile(path string) Option {
	return func(o *options) {
		if path != "" {
			o.logFile = xfs.PathMangle(path)
		}
	}
}

// WithOutput replaces stderr as the console destination.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.output = w
	}
}

// New builds a logger for the given environment. Development gets colored
// text output, production gets JSON.
func New(environment env.Environment, opts ...Option) *slog.Logger {
	log, _ := Open(environment, opts...)
	return log
}

// Open is like New but also returns the log file so callers can close it.
// The closer is nil unless logging to a file is enabled.
func Open(environment env.Environment, opts ...Option) (*slog.Logger, io.Closer) {
	o := &options{
		level:   slog.LevelInfo,
		logFile: defaultLogFile,
		output:  os.Stderr,
	}
	for _, opt := range opts {
		opt(o)
	}

	w := o.output
	var closer io.Closer
	if o.logToFile {
		file := &lumberjack.Logger{
			Filename:   o.logFile,
			MaxSize:    defaultMaxSizeMB,
			MaxBackups: defaultMaxBackups,
			MaxAge:     defaultMaxAgeDays,
		}
		w = io.MultiWriter(w, file)
		closer = file
	}

	if environment.IsProduction() {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: o.level})), closer
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      o.level,
		TimeFormat: time.Kitchen,
		NoColor:    o.logToFile,
	})), closer
}

// ParseLevel maps a config level name to a slog.Level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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
