// Package logger configures the process-wide slog logger.
package logger

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"
)

// Options selects level, format, and the optional Sentry sink.
type Options struct {
	Level     string // debug, info, warn, error
	Format    string // text or json
	SentryDSN string
}

// Init builds the logger, installs it as slog's default, and returns a flush
// function to call before exit.
// Errors are also sent to Sentry when a DSN is configured.
func Init(w io.Writer, o Options) (*slog.Logger, func()) {
	level := ParseLevel(o.Level)
	opts := &slog.HandlerOptions{Level: level}

	var handlers []slog.Handler
	if strings.EqualFold(o.Format, "json") {
		handlers = append(handlers, slog.NewJSONHandler(w, opts))
	} else {
		handlers = append(handlers, slog.NewTextHandler(w, opts))
	}

	flush := func() {}
	if o.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn: o.SentryDSN,
		})
		if err == nil {
			handlers = append(handlers, slogsentry.Option{
				Level: slog.LevelError,
			}.NewSentryHandler())
			flush = func() { sentry.Flush(2 * time.Second) }
		}
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = slogmulti.Fanout(handlers...)
	} else {
		handler = handlers[0]
	}

	log := slog.New(handler)
	slog.SetDefault(log)
	return log, flush
}

// ParseLevel maps a config string to a level, defaulting to warn so the CLI
// stays quiet.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
