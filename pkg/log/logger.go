// Package log provides structured logging for the amesgo pipeline on top of
// log/slog, with a handler that extracts cockroachdb/errors stack traces
// into a dedicated attribute and a zerolog bridge for data-quality warnings.
package log

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/rs/zerolog"

	"github.com/YuminosukeSato/amesgo/pkg/errors"
)

// SetupLogger installs the default slog logger with JSON output at the
// given level and routes pipeline warnings through zerolog.
func SetupLogger(loglevel string) {
	ops := slog.HandlerOptions{
		AddSource: true,
		Level:     ToLogLevel(loglevel),
	}
	handler := slog.NewJSONHandler(os.Stdout, &ops)
	errFmtHandler := WrapByErrFmtHandler(handler)
	slog.SetDefault(slog.New(errFmtHandler))

	zl := zerolog.New(os.Stderr).With().Timestamp().Logger()
	errors.SetZerologWarnFunc(func(warning error) {
		ev := zl.Warn()
		if obj, ok := warning.(zerolog.LogObjectMarshaler); ok {
			ev.Object("warning", obj)
		}
		ev.Msg(warning.Error())
	})
}

// ToLogLevel maps a level name onto a slog.Level.
func ToLogLevel(level string) slog.Level {
	switch level {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		panic(fmt.Sprintf("invalid log level :%s", level))
	}
}

const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
)

// ErrAttr is a wrapper to pass err to slog.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}
