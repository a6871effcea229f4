package metrics_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"depot/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	m.IncrementParcelsReceived()
	m.AddParcelsSigned(3)
	m.AddParcelsSentBack(2)
	m.IncrementPickups()
	m.IncrementLabelScans(true)
	m.IncrementLabelScans(false)
	m.IncrementLabelScans(false)
	m.ObserveCall(true, nil)
	m.ObserveCall(false, nil)
	m.ObserveCall(false, errors.New("timeout"))
	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/parcels/pending", http.StatusOK, time.Now())

	assert.InDelta(t, 1, testutil.ToFloat64(m.ParcelsReceived), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(m.ParcelsSigned), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.ParcelsSentBack), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Pickups), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.LabelScans.WithLabelValues("false")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Calls.WithLabelValues(metrics.CallDelivered)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Calls.WithLabelValues(metrics.CallNotDelivered)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Calls.WithLabelValues(metrics.CallFailed)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(
		m.HTTPRequests.WithLabelValues(http.MethodGet, "/api/v1/parcels/pending", "200"),
	), 0)
}

func TestNew_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		metrics.New(prometheus.NewRegistry())
		metrics.New(prometheus.NewRegistry())
	})
}
