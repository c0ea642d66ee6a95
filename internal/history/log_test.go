package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"video-enhancer/internal/domain"
)

// TestAppendPrependsNewest verifies most-recent-first ordering.
func TestAppendPrependsNewest(t *testing.T) {
	log := NewLog(Presets()...)
	require.Equal(t, 3, log.Len())

	log.Append(domain.HistoryRecord{ID: "a", FileName: "a.mp4"})
	log.Append(domain.HistoryRecord{ID: "b", FileName: "b.mp4"})

	list := log.List()
	require.Len(t, list, 5)
	assert.Equal(t, "b", list[0].ID)
	assert.Equal(t, "a", list[1].ID)
	assert.Equal(t, "hx-192", list[2].ID)
}

// TestListReturnsDetachedCopies keeps stored records immutable.
func TestListReturnsDetachedCopies(t *testing.T) {
	log := NewLog()
	features := []string{"AI NR 72%"}
	log.Append(domain.HistoryRecord{ID: "a", Features: features})
	features[0] = "mutated"

	list := log.List()
	list[0].Features[0] = "also mutated"

	assert.Equal(t, "AI NR 72%", log.List()[0].Features[0])
}

// TestPresetsAreCompleted checks the seed records.
func TestPresetsAreCompleted(t *testing.T) {
	for _, record := range Presets() {
		assert.Equal(t, domain.RecordStatusCompleted, record.Status, record.ID)
		assert.NotEmpty(t, record.Features, record.ID)
	}
}
