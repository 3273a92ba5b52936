package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the attendance module.
type Metrics struct {
	// Clock-in and clock-out outcomes
	ClockIn  *prometheus.CounterVec
	ClockOut *prometheus.CounterVec

	// Shifts closed by the system because their effective end elapsed
	AutoCheckouts prometheus.Counter

	// Distance between the reported fix and the outlet
	GeofenceDistance prometheus.Histogram

	// Shift mutation transaction latency by operation
	TransactionLatency *prometheus.HistogramVec

	// Aggregation query latency by query
	AggregationLatency *prometheus.HistogramVec

	// Access gate cache lookups by result
	AccessCache *prometheus.CounterVec
}

// New creates a new Metrics instance registered with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ClockIn: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "attendance_clock_in_total",
			Help: "Total clock-in attempts by outcome",
		}, []string{"outcome"}), // outcome: "ongoing", "late", "conflict", "location_rejected", "error"

		ClockOut: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "attendance_clock_out_total",
			Help: "Total clock-out attempts by outcome",
		}, []string{"outcome"}),

		AutoCheckouts: factory.NewCounter(prometheus.CounterOpts{
			Name: "attendance_auto_checkouts_total",
			Help: "Total shifts closed automatically after their effective end",
		}),

		GeofenceDistance: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "attendance_geofence_distance_meters",
			Help:    "Distance between reported GPS fixes and the outlet",
			Buckets: []float64{5, 10, 25, 50, 75, 100, 150, 250, 500, 1000, 5000},
		}),

		TransactionLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "attendance_transaction_duration_seconds",
			Help:    "Duration of shift mutation transactions",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"operation"}),

		AggregationLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "attendance_aggregation_duration_seconds",
			Help:    "Duration of attendance aggregation reads",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"query"}),

		AccessCache: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "attendance_access_cache_total",
			Help: "Access gate cache lookups by result",
		}, []string{"result"}), // result: "hit", "miss", "error"
	}
}

// IncClockIn records a clock-in outcome.
func (m *Metrics) IncClockIn(outcome string) {
	if m != nil {
		m.ClockIn.WithLabelValues(outcome).Inc()
	}
}

// IncClockOut records a clock-out outcome.
func (m *Metrics) IncClockOut(outcome string) {
	if m != nil {
		m.ClockOut.WithLabelValues(outcome).Inc()
	}
}

// AddAutoCheckouts records shifts closed by auto-checkout.
func (m *Metrics) AddAutoCheckouts(n int) {
	if m != nil && n > 0 {
		m.AutoCheckouts.Add(float64(n))
	}
}

// ObserveDistance records a geofence distance when one was computed.
func (m *Metrics) ObserveDistance(meters *float64) {
	if m != nil && meters != nil {
		m.GeofenceDistance.Observe(*meters)
	}
}

// ObserveTransaction records the duration of a shift mutation.
func (m *Metrics) ObserveTransaction(operation string, d time.Duration) {
	if m != nil {
		m.TransactionLatency.WithLabelValues(operation).Observe(d.Seconds())
	}
}

// ObserveAggregation records the duration of an aggregation read.
func (m *Metrics) ObserveAggregation(query string, d time.Duration) {
	if m != nil {
		m.AggregationLatency.WithLabelValues(query).Observe(d.Seconds())
	}
}

// IncAccessCache records an access cache lookup.
func (m *Metrics) IncAccessCache(result string) {
	if m != nil {
		m.AccessCache.WithLabelValues(result).Inc()
	}
}
