package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveLookup(t *testing.T) {
	t.Parallel()

	m := New()
	m.ObserveLookup(OutcomeRemote, 10*time.Millisecond)
	m.ObserveLookup(OutcomeFallback, 5*time.Millisecond)
	m.ObserveLookup(OutcomeFallback, 5*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.LookupsTotal.WithLabelValues(OutcomeRemote)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.LookupsTotal.WithLabelValues(OutcomeFallback)))
}

func TestMetrics_Counters(t *testing.T) {
	t.Parallel()

	m := New()
	m.RemoteFailed()
	m.HistoryWriteFailed()
	m.HistoryWriteFailed()
	m.AudioFailed()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RemoteFailuresTotal))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.HistoryWriteFailures))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AudioFailuresTotal))
}

func TestMetrics_IndependentInstances(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		_ = New()
		_ = New()
	})
}

func TestMetrics_Handler(t *testing.T) {
	t.Parallel()

	m := New()
	m.ObserveLookup(OutcomeNotFound, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `wordlookup_lookups_total{outcome="not_found"} 1`))
}
