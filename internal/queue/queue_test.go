package queue

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"video-enhancer/internal/domain"
	"video-enhancer/internal/preview"
)

// recordingAllocator tracks allocations so tests can check pairing.
type recordingAllocator struct {
	next     int
	live     map[string]preview.Source
	released map[string]bool
}

func newRecordingAllocator() *recordingAllocator {
	return &recordingAllocator{
		live:     make(map[string]preview.Source),
		released: make(map[string]bool),
	}
}

func (a *recordingAllocator) Allocate(src preview.Source) string {
	a.next++
	u := fmt.Sprintf("blob:%d", a.next)
	a.live[u] = src
	return u
}

func (a *recordingAllocator) Release(u string) {
	delete(a.live, u)
	a.released[u] = true
}

func file(name string, size int64) domain.FileRef {
	return domain.FileRef{Name: name, Size: size, Path: "/clips/" + name}
}

// TestAddBatchNeverExceedsCapacityOrDuplicates checks the queue invariants over random adds.
func TestAddBatchNeverExceedsCapacityOrDuplicates(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	q := New(DefaultCapacity, newRecordingAllocator())

	for round := 0; round < 200; round++ {
		var batch []domain.FileRef
		count := rng.IntN(6)
		for i := 0; i < count; i++ {
			n := rng.IntN(20)
			batch = append(batch, file(fmt.Sprintf("clip-%d.mp4", n), int64(n%3)))
		}

		items := q.Add(batch, true)
		require.LessOrEqual(t, len(items), DefaultCapacity)

		seen := map[string]bool{}
		for _, item := range items {
			require.False(t, seen[item.Key()], "duplicate key %s", item.Key())
			seen[item.Key()] = true
		}
	}
}

// TestAddDedupeKeepsFirstPositionLastValue mirrors insertion-ordered map semantics.
func TestAddDedupeKeepsFirstPositionLastValue(t *testing.T) {
	q := New(DefaultCapacity, newRecordingAllocator())
	q.Add([]domain.FileRef{file("a.mp4", 1), file("b.mp4", 2)}, true)

	again := domain.FileRef{Name: "a.mp4", Size: 1, Path: "/other/a.mp4"}
	items := q.Add([]domain.FileRef{file("c.mp4", 3), again}, true)

	require.Len(t, items, 3)
	assert.Equal(t, "a.mp4", items[0].Name)
	assert.Equal(t, "/other/a.mp4", items[0].Path)
	assert.Equal(t, "b.mp4", items[1].Name)
	assert.Equal(t, "c.mp4", items[2].Name)
}

// TestAddSameNameDifferentSizeIsDistinct uses the composite key, not the name.
func TestAddSameNameDifferentSizeIsDistinct(t *testing.T) {
	q := New(DefaultCapacity, newRecordingAllocator())
	items := q.Add([]domain.FileRef{file("a.mp4", 1), file("a.mp4", 2)}, true)
	assert.Len(t, items, 2)
}

// TestAddTruncatesToCapacity keeps the first twelve entries.
func TestAddTruncatesToCapacity(t *testing.T) {
	q := New(DefaultCapacity, newRecordingAllocator())
	var batch []domain.FileRef
	for i := 0; i < 15; i++ {
		batch = append(batch, file(fmt.Sprintf("clip-%02d.mp4", i), int64(i)))
	}

	items := q.Add(batch, true)
	require.Len(t, items, DefaultCapacity)
	assert.Equal(t, "clip-00.mp4", items[0].Name)
	assert.Equal(t, "clip-11.mp4", items[11].Name)
}

// TestAddSingleModeReplacesQueue keeps only the first newly selected file.
func TestAddSingleModeReplacesQueue(t *testing.T) {
	q := New(DefaultCapacity, newRecordingAllocator())
	q.Add([]domain.FileRef{file("a.mp4", 1), file("b.mp4", 2)}, true)

	items := q.Add([]domain.FileRef{file("c.mp4", 3), file("d.mp4", 4)}, false)
	require.Len(t, items, 1)
	assert.Equal(t, "c.mp4", items[0].Name)

	items = q.Add([]domain.FileRef{file("e.mp4", 5)}, false)
	require.Len(t, items, 1)
	assert.Equal(t, "e.mp4", items[0].Name)
}

// TestAddEmptySelectionIsNoop leaves queue and preview untouched.
func TestAddEmptySelectionIsNoop(t *testing.T) {
	alloc := newRecordingAllocator()
	q := New(DefaultCapacity, alloc)
	q.Add([]domain.FileRef{file("a.mp4", 1)}, true)
	before := q.PreviewURL()

	items := q.Add(nil, true)
	assert.Len(t, items, 1)
	assert.Equal(t, before, q.PreviewURL())
	assert.Len(t, alloc.live, 1)
}

// TestPreviewFollowsFirstItem checks pointer replacement and release on remove.
func TestPreviewFollowsFirstItem(t *testing.T) {
	alloc := newRecordingAllocator()
	q := New(DefaultCapacity, alloc)

	items := q.Add([]domain.FileRef{file("a.mp4", 1), file("b.mp4", 2)}, true)
	first := q.PreviewURL()
	require.NotEmpty(t, first)
	assert.Equal(t, "/clips/a.mp4", alloc.live[first].Path)

	items = q.Remove(items[0].ID)
	require.Len(t, items, 1)
	second := q.PreviewURL()
	assert.NotEqual(t, first, second)
	assert.True(t, alloc.released[first])
	assert.Equal(t, "/clips/b.mp4", alloc.live[second].Path)
	assert.Len(t, alloc.live, 1)

	items = q.Remove(items[0].ID)
	assert.Empty(t, items)
	assert.Empty(t, q.PreviewURL())
	assert.Empty(t, alloc.live)
	assert.True(t, alloc.released[second])
}

// TestRemoveUnknownIDKeepsQueue leaves entries in place.
func TestRemoveUnknownIDKeepsQueue(t *testing.T) {
	q := New(DefaultCapacity, newRecordingAllocator())
	q.Add([]domain.FileRef{file("a.mp4", 1)}, true)

	items := q.Remove("missing")
	assert.Len(t, items, 1)
	assert.NotEmpty(t, q.PreviewURL())
}

// TestClearAndCloseReleasePreview covers run completion and teardown.
func TestClearAndCloseReleasePreview(t *testing.T) {
	reg := preview.NewRegistry()
	q := New(0, reg)

	q.Add([]domain.FileRef{file("a.mp4", 1)}, true)
	require.Equal(t, 1, reg.Live())
	q.Clear()
	assert.Equal(t, 0, q.Len())
	assert.Equal(t, 0, reg.Live())

	q.Add([]domain.FileRef{file("b.mp4", 2)}, true)
	q.Close()
	assert.Equal(t, 1, q.Len())
	assert.Equal(t, 0, reg.Live())
}
