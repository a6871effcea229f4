// Package metrics holds the Prometheus metrics of the depot.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Call outcomes.
const (
	CallDelivered    = "delivered"
	CallNotDelivered = "not_delivered"
	CallFailed       = "failed"
)

type Metrics struct {
	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	ParcelsReceived     prometheus.Counter
	ParcelsSigned       prometheus.Counter
	ParcelsSentBack     prometheus.Counter
	Pickups             prometheus.Counter
	LabelScans          *prometheus.CounterVec
	Calls               *prometheus.CounterVec
}

// New creates the metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "depot_http_requests_total",
			Help: "Total number of HTTP requests by route and status code",
		}, []string{"method", "route", "code"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "depot_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"method", "route"}),
		ParcelsReceived: factory.NewCounter(prometheus.CounterOpts{
			Name: "depot_parcels_received_total",
			Help: "Total number of parcels recorded at intake",
		}),
		ParcelsSigned: factory.NewCounter(prometheus.CounterOpts{
			Name: "depot_parcels_signed_total",
			Help: "Total number of parcels signed for, single or in a pickup",
		}),
		ParcelsSentBack: factory.NewCounter(prometheus.CounterOpts{
			Name: "depot_parcels_sent_back_total",
			Help: "Total number of parcels returned to the courier",
		}),
		Pickups: factory.NewCounter(prometheus.CounterOpts{
			Name: "depot_pickups_total",
			Help: "Total number of pickup events",
		}),
		LabelScans: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "depot_label_scans_total",
			Help: "Total number of label scans by whether text was recognized",
		}, []string{"recognized"}),
		Calls: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "depot_calls_total",
			Help: "Total number of recipient calls by outcome",
		}, []string{"outcome"}),
	}
}

// ObserveHTTPRequest records one served request. Call with time.Now() taken before the handler ran.
func (m *Metrics) ObserveHTTPRequest(method, route string, code int, start time.Time) {
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
}

func (m *Metrics) IncrementParcelsReceived() {
	m.ParcelsReceived.Inc()
}

func (m *Metrics) AddParcelsSigned(n int) {
	m.ParcelsSigned.Add(float64(n))
}

func (m *Metrics) AddParcelsSentBack(n int) {
	m.ParcelsSentBack.Add(float64(n))
}

func (m *Metrics) IncrementPickups() {
	m.Pickups.Inc()
}

func (m *Metrics) IncrementLabelScans(recognized bool) {
	m.LabelScans.WithLabelValues(strconv.FormatBool(recognized)).Inc()
}

// ObserveCall records the outcome of one recipient call.
func (m *Metrics) ObserveCall(delivered bool, err error) {
	switch {
	case delivered:
		m.Calls.WithLabelValues(CallDelivered).Inc()
	case err != nil:
		m.Calls.WithLabelValues(CallFailed).Inc()
	default:
		m.Calls.WithLabelValues(CallNotDelivered).Inc()
	}
}
