package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

// TestMetricsRecordAndServe checks collectors and the HTTP handler.
func TestMetricsRecordAndServe(t *testing.T) {
	m := New()
	m.RunFinished("completed", 2*time.Second)
	m.ItemEnhanced()
	m.ItemEnhanced()
	m.QueueLength(4)
	m.Progress(55)
	m.IntakeRejected(3)
	m.IntakeRejected(0)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.runsTotal.WithLabelValues("completed")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.itemsTotal))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.queueLength))
	assert.Equal(t, 55.0, testutil.ToFloat64(m.runProgress))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.intakeRejects))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "enhancer_items_enhanced_total 2")
}

// TestNilMetricsIsSafe lets callers skip metrics entirely.
func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.RunFinished("completed", time.Second)
	m.ItemEnhanced()
	m.QueueLength(1)
	m.Progress(1)
	m.IntakeRejected(1)
}
