package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

type Logger struct {
	debugEnabled atomic.Bool
	terminalOut  atomic.Bool
	pretty       bool
	out          io.Writer
	fileSink     *fileSink
	mu           sync.RWMutex
	nextID       int
	subscribers  map[int]func(Event)
}

type Event struct {
	Time    time.Time
	Level   slog.Level
	Message string
	Fields  map[string]any
}

func New(debug bool) *Logger {
	return newLogger(os.Stderr, shouldPrettyPrint(), debug)
}

// NewWriter logs plain lines to w. Tests use it to capture output.
func NewWriter(w io.Writer, debug bool) *Logger {
	return newLogger(w, false, debug)
}

func newLogger(w io.Writer, pretty bool, debug bool) *Logger {
	logger := &Logger{
		pretty:      pretty,
		out:         w,
		subscribers: map[int]func(Event){},
	}
	logger.debugEnabled.Store(debug)
	logger.terminalOut.Store(true)
	return logger
}

func Field(key string, value any) slog.Attr {
	return slog.Any(key, value)
}

func (l *Logger) Debugf(format string, args ...any) {
	l.Debug(fmt.Sprintf(format, args...))
}

// Debug events always reach the file sink; terminal output and subscribers
// only see them while debug is enabled.
func (l *Logger) Debug(msg string, fields ...slog.Attr) {
	if l == nil {
		return
	}
	l.log(slog.LevelDebug, msg, fields, l.debugEnabled.Load())
}

func (l *Logger) Info(msg string, fields ...slog.Attr) {
	if l == nil {
		return
	}
	l.log(slog.LevelInfo, msg, fields, true)
}

func (l *Logger) Warn(msg string, fields ...slog.Attr) {
	if l == nil {
		return
	}
	l.log(slog.LevelWarn, msg, fields, true)
}

func (l *Logger) Error(msg string, fields ...slog.Attr) {
	if l == nil {
		return
	}
	l.log(slog.LevelError, msg, fields, true)
}

func (l *Logger) DebugEnabled() bool {
	return l != nil && l.debugEnabled.Load()
}

func (l *Logger) SetDebugEnabled(enabled bool) {
	if l == nil {
		return
	}
	l.debugEnabled.Store(enabled)
}

// SetTerminalOutputEnabled stops writes to the terminal while a full-screen
// host owns it. Subscribers and the file sink keep receiving events.
func (l *Logger) SetTerminalOutputEnabled(enabled bool) {
	if l == nil {
		return
	}
	l.terminalOut.Store(enabled)
}

func (l *Logger) EnableFilePersistence(maxBytes int64) (string, error) {
	if l == nil {
		return "", nil
	}
	dir, err := DefaultLogDirPath()
	if err != nil {
		return "", err
	}
	sink, err := newFileSink(dir, maxBytes)
	if err != nil {
		return "", err
	}
	l.swapSink(sink)
	return dir, nil
}

func (l *Logger) swapSink(sink *fileSink) {
	l.mu.Lock()
	old := l.fileSink
	l.fileSink = sink
	l.mu.Unlock()
	if old != nil {
		_ = old.Close()
	}
}

func (l *Logger) Close() error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	sink := l.fileSink
	l.fileSink = nil
	l.mu.Unlock()
	if sink == nil {
		return nil
	}
	return sink.Close()
}

// Subscribe registers fn for every published event and returns a func that
// removes it.
func (l *Logger) Subscribe(fn func(Event)) func() {
	if l == nil {
		panic("logging.Logger.Subscribe: logger must not be nil")
	}
	if fn == nil {
		panic("logging.Logger.Subscribe: callback must not be nil")
	}
	l.mu.Lock()
	id := l.nextID
	l.nextID++
	l.subscribers[id] = fn
	l.mu.Unlock()
	return func() {
		l.mu.Lock()
		delete(l.subscribers, id)
		l.mu.Unlock()
	}
}

func (l *Logger) log(level slog.Level, msg string, attrs []slog.Attr, publish bool) {
	l.record(Event{
		Time:    time.Now(),
		Level:   level,
		Message: msg,
		Fields:  attrsToMap(attrs),
	}, publish)
}

func (l *Logger) record(event Event, publish bool) {
	l.mu.RLock()
	sink := l.fileSink
	l.mu.RUnlock()
	if sink != nil {
		_ = sink.WriteEvent(event)
	}
	if !publish {
		return
	}
	if l.terminalOut.Load() {
		l.emit(event)
	}
	l.publishEvent(event)
}

func (l *Logger) emit(event Event) {
	if l.out == nil {
		return
	}
	if l.pretty {
		_, _ = io.WriteString(l.out, FormatEventANSI(event))
		return
	}
	_, _ = io.WriteString(l.out, FormatEventLine(event))
}

func (l *Logger) publishEvent(event Event) {
	l.mu.RLock()
	if len(l.subscribers) == 0 {
		l.mu.RUnlock()
		return
	}
	callbacks := make([]func(Event), 0, len(l.subscribers))
	for _, cb := range l.subscribers {
		callbacks = append(callbacks, cb)
	}
	l.mu.RUnlock()

	for _, cb := range callbacks {
		cb(event)
	}
}
