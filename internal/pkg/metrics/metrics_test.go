package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.IncClockIn("ongoing")
	m.IncClockIn("ongoing")
	m.IncClockIn("conflict")
	m.IncClockOut("completed")
	m.AddAutoCheckouts(2)
	m.AddAutoCheckouts(0)
	m.IncAccessCache("hit")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ClockIn.WithLabelValues("ongoing")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ClockIn.WithLabelValues("conflict")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ClockOut.WithLabelValues("completed")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.AutoCheckouts))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AccessCache.WithLabelValues("hit")))
}

func TestMetrics_Histograms(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	d := 85.0
	m.ObserveDistance(&d)
	m.ObserveDistance(nil)
	m.ObserveTransaction("clock_in", 20*time.Millisecond)
	m.ObserveAggregation("shifts", 5*time.Millisecond)

	assert.Equal(t, 1, testutil.CollectAndCount(m.GeofenceDistance))
	assert.Equal(t, 1, testutil.CollectAndCount(m.TransactionLatency))
	assert.Equal(t, 1, testutil.CollectAndCount(m.AggregationLatency))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncClockIn("ongoing")
		m.IncClockOut("completed")
		m.AddAutoCheckouts(1)
		m.ObserveDistance(nil)
		m.ObserveTransaction("clock_out", time.Second)
		m.ObserveAggregation("employees", time.Second)
		m.IncAccessCache("miss")
	})
}
