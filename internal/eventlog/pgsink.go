package eventlog

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/yanun0323/errors"
	"github.com/yanun0323/logs"
	"gorm.io/gorm"
)

// EventRecord is the relational shape of an event.
type EventRecord struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Timestamp time.Time `gorm:"index"`
	Kind      string    `gorm:"index;size:32"`
	Data      string
}

// TableName keeps the table name stable across gorm naming strategies.
func (EventRecord) TableName() string {
	return "pipeline_events"
}

// PGSink buffers events and persists them to Postgres on flush.
type PGSink struct {
	mu  sync.Mutex
	db  *gorm.DB
	buf []Event
}

// NewPGSink migrates the event table and returns a sink bound to db.
func NewPGSink(db *gorm.DB) (*PGSink, error) {
	if err := db.AutoMigrate(&EventRecord{}); err != nil {
		return nil, errors.Wrap(err, "migrate event table")
	}
	return &PGSink{db: db}, nil
}

// Append buffers an event for the next flush.
func (s *PGSink) Append(e Event) {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}
	s.mu.Lock()
	s.buf = append(s.buf, e)
	s.mu.Unlock()
}

// Flush inserts the buffered events in one batch. The buffer is kept on
// failure so a later flush can retry.
func (s *PGSink) Flush() error {
	s.mu.Lock()
	pending := s.buf
	s.mu.Unlock()
	if len(pending) == 0 {
		return nil
	}

	records := make([]EventRecord, 0, len(pending))
	for _, e := range pending {
		data, err := json.Marshal(e.Data)
		if err != nil {
			return errors.Wrap(err, "marshal event data")
		}
		records = append(records, EventRecord{
			Timestamp: e.Timestamp,
			Kind:      string(e.Kind),
			Data:      string(data),
		})
	}
	if err := s.db.Create(&records).Error; err != nil {
		return errors.Wrap(err, "insert events")
	}

	s.mu.Lock()
	s.buf = s.buf[len(pending):]
	s.mu.Unlock()
	return nil
}

// Close flushes the sink. Persistence failure is reported, never fatal.
func (s *PGSink) Close() {
	if err := s.Flush(); err != nil {
		logs.Errorf("flush events to postgres, err: %+v", err)
	}
}
