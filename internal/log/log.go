// Package log provides the slog loggers used by the urlx command.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"braces.dev/errtrace"
	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"

	"github.com/VolodymyrBor/urlx"
)

var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	slogformatter.FormatByType(func(u *urlx.URL) slog.Value {
		return slog.StringValue(u.Redacted())
	}),
	slogformatter.FormatByType(func(q urlx.Query) slog.Value {
		attrs := make([]slog.Attr, 0, q.Len())
		for k, v := range q.All() {
			attrs = append(attrs, slog.String(k, v))
		}
		return slog.GroupValue(attrs...)
	}),
	slogformatter.FormatByType(func(p urlx.Path) slog.Value {
		return slog.StringValue("/" + p.String())
	}),
)

// Options configures [New].
type Options struct {
	// Level is the minimum level of emitted records.
	Level slog.Leveler
	// Dev switches to the developer handler with sorted keys and colored values.
	Dev bool
	// AddSource adds the caller location to every record.
	AddSource bool
}

// New returns a logger writing to w.
func New(w io.Writer, opts *Options) *slog.Logger {
	if opts == nil {
		opts = &Options{}
	}
	level := opts.Level
	if level == nil {
		level = slog.LevelInfo
	}

	if opts.Dev {
		return slog.New(newHandler(
			devslog.NewHandler(w, &devslog.Options{
				HandlerOptions: &slog.HandlerOptions{
					AddSource: opts.AddSource,
					Level:     level,
				},
				SortKeys:   true,
				TimeFormat: time.RFC3339Nano,
			}),
		))
	}
	return slog.New(newHandler(
		console.NewHandler(w, &console.HandlerOptions{
			AddSource:  opts.AddSource,
			Level:      level,
			TimeFormat: time.RFC3339Nano,
		}),
	))
}

// Def is a default logger.
var Def = New(os.Stderr, &Options{Level: slog.LevelInfo})

// Dev is a developer logger.
var Dev = New(os.Stderr, &Options{Level: slog.LevelDebug, Dev: true, AddSource: true})

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

// Noop is a noop logger.
var Noop = slog.New(noopHandler{})

// ParseLevel parses a level name such as "debug", "info", "warn" or "error".
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, errtrace.Wrap(err)
	}
	return lvl, nil
}
