package history

import (
	"sync"

	"video-enhancer/internal/domain"
)

// Log is the append-only list of finished enhancements, newest first.
type Log struct {
	mu      sync.RWMutex
	records []domain.HistoryRecord
}

// NewLog creates a log holding seed in the given order.
func NewLog(seed ...domain.HistoryRecord) *Log {
	records := make([]domain.HistoryRecord, 0, len(seed))
	for _, record := range seed {
		records = append(records, clone(record))
	}
	return &Log{records: records}
}

// Append puts record at the front of the log.
func (l *Log) Append(record domain.HistoryRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()

	next := make([]domain.HistoryRecord, 0, len(l.records)+1)
	next = append(next, clone(record))
	l.records = append(next, l.records...)
}

// List returns a copy of all records, newest first.
func (l *Log) List() []domain.HistoryRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.HistoryRecord, len(l.records))
	for i, record := range l.records {
		out[i] = clone(record)
	}
	return out
}

// Len reports the number of records.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}

// clone detaches the feature slice so callers cannot mutate stored records.
func clone(record domain.HistoryRecord) domain.HistoryRecord {
	record.Features = append([]string(nil), record.Features...)
	return record
}
