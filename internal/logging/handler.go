package logging

import (
	"context"
	"log"
	"log/slog"
	"strings"
)

type handler struct {
	logger *Logger
	attrs  []slog.Attr
	group  string
}

// Handler adapts the logger to slog so standard library components (an
// http.Server ErrorLog, for one) land in the same stream.
func (l *Logger) Handler() slog.Handler {
	return &handler{logger: l}
}

// StdLogger returns a *log.Logger that records each line at level.
func (l *Logger) StdLogger(level slog.Level) *log.Logger {
	return slog.NewLogLogger(l.Handler(), level)
}

func (h *handler) Enabled(_ context.Context, level slog.Level) bool {
	if h.logger == nil {
		return false
	}
	return level > slog.LevelDebug || h.logger.debugEnabled.Load()
}

func (h *handler) Handle(_ context.Context, r slog.Record) error {
	if h.logger == nil {
		return nil
	}
	attrs := make([]slog.Attr, 0, len(h.attrs)+r.NumAttrs())
	attrs = append(attrs, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, h.qualify(a))
		return true
	})
	publish := r.Level > slog.LevelDebug || h.logger.debugEnabled.Load()
	h.logger.record(Event{
		Time:    r.Time,
		Level:   r.Level,
		Message: strings.TrimSpace(r.Message),
		Fields:  attrsToMap(attrs),
	}, publish)
	return nil
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	next.attrs = append(next.attrs, h.attrs...)
	for _, a := range attrs {
		next.attrs = append(next.attrs, h.qualify(a))
	}
	return &next
}

func (h *handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	if h.group != "" {
		name = h.group + "." + name
	}
	next.group = name
	return &next
}

func (h *handler) qualify(a slog.Attr) slog.Attr {
	if h.group == "" {
		return a
	}
	a.Key = h.group + "." + a.Key
	return a
}
