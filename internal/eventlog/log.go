package eventlog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/yanun0323/errors"
	"github.com/yanun0323/logs"
)

// Log accumulates events in memory and persists them as a single JSON array.
// It is constructed and owned explicitly; there is no process-wide instance.
type Log struct {
	mu     sync.Mutex
	path   string
	events []Event
}

// NewLog creates an empty log that flushes to path.
func NewLog(path string) *Log {
	return &Log{path: path}
}

// Append records an event, stamping it when the caller left the timestamp
// zero. Append never fails.
func (l *Log) Append(e Event) {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}
	l.mu.Lock()
	l.events = append(l.events, e)
	l.mu.Unlock()
}

// Events returns a copy of the recorded events.
func (l *Log) Events() []Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

// Len returns the number of recorded events.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.events)
}

// Flush writes all events to the log path as one JSON array.
func (l *Log) Flush() error {
	l.mu.Lock()
	events := l.events
	if events == nil {
		events = []Event{}
	}
	data, err := json.MarshalIndent(events, "", "  ")
	l.mu.Unlock()
	if err != nil {
		return errors.Wrap(err, "marshal event log")
	}
	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "create event log dir")
		}
	}
	if err := os.WriteFile(l.path, data, 0o644); err != nil {
		return errors.Wrap(err, "write event log")
	}
	return nil
}

// Close flushes the log. Persistence failure is reported, never fatal.
func (l *Log) Close() {
	if err := l.Flush(); err != nil {
		logs.Errorf("flush event log to %s, err: %+v", l.path, err)
		return
	}
	logs.Infof("saved %d events to %s", l.Len(), l.path)
}
