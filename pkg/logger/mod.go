package logger

import (
	"context"
	"io"
	"os"
	"sync"

	charmlog "github.com/charmbracelet/log"
)

var (
	defaultLogger *loggerImpl
	defaultOnce   sync.Once
)

type (
	LogLevel string

	// Logger defines the interface for structured logging
	Logger interface {
		Debug(msg string, keyvals ...any)
		Info(msg string, keyvals ...any)
		Warn(msg string, keyvals ...any)
		Error(msg string, keyvals ...any)
		With(keyvals ...any) Logger
	}

	// loggerImpl implements Logger using the charm logger
	loggerImpl struct {
		charmLogger *charmlog.Logger
	}
)

const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
)

func (c LogLevel) String() string {
	return string(c)
}

func (c LogLevel) ToCharmlogLevel() charmlog.Level {
	switch c {
	case DebugLevel:
		return charmlog.DebugLevel
	case InfoLevel:
		return charmlog.InfoLevel
	case WarnLevel:
		return charmlog.WarnLevel
	case ErrorLevel:
		return charmlog.ErrorLevel
	default:
		return charmlog.InfoLevel
	}
}

func (l *loggerImpl) Debug(msg string, keyvals ...any) {
	l.charmLogger.Debug(msg, keyvals...)
}

func (l *loggerImpl) Info(msg string, keyvals ...any) {
	l.charmLogger.Info(msg, keyvals...)
}

func (l *loggerImpl) Warn(msg string, keyvals ...any) {
	l.charmLogger.Warn(msg, keyvals...)
}

func (l *loggerImpl) Error(msg string, keyvals ...any) {
	l.charmLogger.Error(msg, keyvals...)
}

func (l *loggerImpl) With(keyvals ...any) Logger {
	return &loggerImpl{charmLogger: l.charmLogger.With(keyvals...)}
}

type Config struct {
	Level      LogLevel
	Output     io.Writer
	JSON       bool
	TimeFormat string
}

func DefaultConfig() *Config {
	return &Config{
		Level:      InfoLevel,
		Output:     os.Stderr,
		JSON:       false,
		TimeFormat: "15:04:05",
	}
}

// NewLogger creates a standalone logger from the configuration.
func NewLogger(cfg *Config) Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	charmLogger := charmlog.NewWithOptions(cfg.Output, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           cfg.Level.ToCharmlogLevel(),
	})
	if cfg.JSON {
		charmLogger.SetFormatter(charmlog.JSONFormatter)
	} else {
		charmLogger.SetFormatter(charmlog.TextFormatter)
	}
	return &loggerImpl{charmLogger: charmLogger}
}

// Init sets the process-wide default logger.
func Init(cfg *Config) {
	if impl, ok := NewLogger(cfg).(*loggerImpl); ok {
		defaultLogger = impl
	}
}

// FromContext returns the logger carried by the context, falling back to the
// process default.
func FromContext(ctx context.Context) Logger {
	if ctx != nil {
		if l, ok := ctx.Value(ctxKey{}).(Logger); ok {
			return l
		}
	}
	return getDefault()
}

// ContextWithLogger attaches a logger to the context.
func ContextWithLogger(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

type ctxKey struct{}

func getDefault() Logger {
	defaultOnce.Do(func() {
		if defaultLogger == nil {
			Init(DefaultConfig())
		}
	})
	return defaultLogger
}

func Debug(msg string, args ...any) {
	getDefault().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	getDefault().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	getDefault().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	getDefault().Error(msg, args...)
}
