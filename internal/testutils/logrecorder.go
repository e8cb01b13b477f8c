package testutils

import (
	"context"
	"log/slog"
	"sync"
)

// LogEntry represents a simplified log record for testing
type LogEntry map[string]interface{}

// Message returns the record message.
func (e LogEntry) Message() string {
	msg, _ := e["message"].(string)
	return msg
}

// LogRecorder is a memory-backed slog.Handler that keeps every record it
// receives, including attributes added through Logger.With.
type LogRecorder struct {
	store *recorderStore
	attrs []slog.Attr
	level slog.Level
}

// recorderStore is shared between a recorder and the handlers derived from it.
type recorderStore struct {
	mu      sync.Mutex
	entries []LogEntry
}

// NewLogRecorder creates a recorder capturing records at level and above.
func NewLogRecorder(level slog.Level) *LogRecorder {
	return &LogRecorder{
		store: &recorderStore{},
		level: level,
	}
}

// Logger returns a logger writing to the recorder.
func (h *LogRecorder) Logger() *slog.Logger {
	return slog.New(h)
}

// Enabled satisfies slog.Handler interface
func (h *LogRecorder) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle satisfies slog.Handler interface
func (h *LogRecorder) Handle(_ context.Context, r slog.Record) error {
	entry := make(LogEntry, len(h.attrs)+r.NumAttrs()+2)
	entry["level"] = r.Level.String()
	entry["message"] = r.Message

	for _, attr := range h.attrs {
		entry[attr.Key] = attr.Value.Any()
	}
	r.Attrs(func(attr slog.Attr) bool {
		entry[attr.Key] = attr.Value.Any()
		return true
	})

	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	h.store.entries = append(h.store.entries, entry)
	return nil
}

// WithAttrs satisfies slog.Handler interface
func (h *LogRecorder) WithAttrs(attrs []slog.Attr) slog.Handler {
	combined := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	combined = append(combined, h.attrs...)
	combined = append(combined, attrs...)
	return &LogRecorder{store: h.store, attrs: combined, level: h.level}
}

// WithGroup satisfies slog.Handler interface. Groups are flattened.
func (h *LogRecorder) WithGroup(_ string) slog.Handler {
	return h
}

// Entries returns all captured log entries
func (h *LogRecorder) Entries() []LogEntry {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()

	result := make([]LogEntry, len(h.store.entries))
	copy(result, h.store.entries)
	return result
}

// Find returns the first entry with the given message.
func (h *LogRecorder) Find(message string) (LogEntry, bool) {
	for _, entry := range h.Entries() {
		if entry.Message() == message {
			return entry, true
		}
	}
	return nil, false
}

// Clear resets the captured log entries
func (h *LogRecorder) Clear() {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()

	h.store.entries = nil
}
