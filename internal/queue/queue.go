package queue

import (
	"sync"

	"github.com/google/uuid"

	"video-enhancer/internal/domain"
	"video-enhancer/internal/preview"
)

// DefaultCapacity is the maximum number of clips held at once.
const DefaultCapacity = 12

// Queue holds pending uploads and owns the preview pointer for the first one.
type Queue struct {
	mu       sync.Mutex
	items    []domain.QueuedItem
	capacity int
	preview  *preview.Pointer
	newID    func() string
}

// New creates an empty queue. A non-positive capacity falls back to DefaultCapacity.
func New(capacity int, alloc preview.Allocator) *Queue {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Queue{
		capacity: capacity,
		preview:  preview.NewPointer(alloc),
		newID:    uuid.NewString,
	}
}

// Add merges candidates into the queue and returns the new queue.
// In batch mode candidates are appended; otherwise the first candidate
// replaces everything. Entries with the same name and size collapse into
// the position of the first one, keeping the most recently selected file.
func (q *Queue) Add(candidates []domain.FileRef, batchMode bool) []domain.QueuedItem {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(candidates) == 0 {
		return q.snapshot()
	}

	merged := make([]domain.QueuedItem, 0, len(q.items)+len(candidates))
	if batchMode {
		merged = append(merged, q.items...)
		for _, file := range candidates {
			merged = append(merged, q.newItem(file))
		}
	} else {
		merged = append(merged, q.newItem(candidates[0]))
	}

	q.items = dedupe(merged, q.capacity)
	if len(q.items) > 0 {
		q.preview.Assign(sourceOf(q.items[0]))
	}
	return q.snapshot()
}

// Remove drops the item with the given id and returns the new queue.
func (q *Queue) Remove(id string) []domain.QueuedItem {
	q.mu.Lock()
	defer q.mu.Unlock()

	next := make([]domain.QueuedItem, 0, len(q.items))
	for _, item := range q.items {
		if item.ID != id {
			next = append(next, item)
		}
	}
	q.items = next

	if len(q.items) == 0 {
		q.preview.Release()
	} else {
		q.preview.Assign(sourceOf(q.items[0]))
	}
	return q.snapshot()
}

// Clear empties the queue and releases the preview.
func (q *Queue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = nil
	q.preview.Release()
}

// Close releases the preview on teardown. The queue contents are kept.
func (q *Queue) Close() {
	q.preview.Release()
}

// Items returns a copy of the current queue.
func (q *Queue) Items() []domain.QueuedItem {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.snapshot()
}

// Len reports the number of queued items.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// PreviewURL returns the live preview URL or "" when the queue is empty.
func (q *Queue) PreviewURL() string {
	return q.preview.URL()
}

func (q *Queue) newItem(file domain.FileRef) domain.QueuedItem {
	return domain.QueuedItem{
		ID:   q.newID(),
		Name: file.Name,
		Size: file.Size,
		Path: file.Path,
	}
}

func (q *Queue) snapshot() []domain.QueuedItem {
	out := make([]domain.QueuedItem, len(q.items))
	copy(out, q.items)
	return out
}

// dedupe collapses equal keys and truncates to capacity.
func dedupe(items []domain.QueuedItem, capacity int) []domain.QueuedItem {
	index := make(map[string]int, len(items))
	out := make([]domain.QueuedItem, 0, len(items))
	for _, item := range items {
		if pos, ok := index[item.Key()]; ok {
			out[pos] = item
			continue
		}
		index[item.Key()] = len(out)
		out = append(out, item)
	}
	if len(out) > capacity {
		out = out[:capacity]
	}
	return out
}

func sourceOf(item domain.QueuedItem) preview.Source {
	return preview.Source{Name: item.Name, Path: item.Path}
}
