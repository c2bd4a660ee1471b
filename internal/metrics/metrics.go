// Package metrics exposes Prometheus metrics for a running tickclock.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the clock counters and gauges. A nil *Metrics is valid and
// records nothing, so callers without a registry can pass nil around.
type Metrics struct {
	ticks       prometheus.Counter
	seconds     prometheus.Counter
	alarmsFired prometheus.Counter

	timeValid    prometheus.Gauge
	alarmEnabled prometheus.Gauge
}

// New creates the clock metrics and registers them with reg.
// It panics if any metric is already registered, like prometheus.MustRegister.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tickclock_ticks_total",
			Help: "Total number of ticks fed to the clock",
		}),
		seconds: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tickclock_seconds_total",
			Help: "Total number of whole seconds the clock has advanced",
		}),
		alarmsFired: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tickclock_alarms_fired_total",
			Help: "Total number of times the alarm went off",
		}),
		timeValid: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "tickclock_time_valid",
			Help: "1 if the clock time has been set, 0 otherwise",
		}),
		alarmEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "tickclock_alarm_enabled",
			Help: "1 if the alarm is enabled, 0 otherwise",
		}),
	}

	reg.MustRegister(m.ticks, m.seconds, m.alarmsFired, m.timeValid, m.alarmEnabled)
	return m
}

// Tick records one tick.
func (m *Metrics) Tick() {
	if m == nil {
		return
	}
	m.ticks.Inc()
}

// Second records one elapsed second.
func (m *Metrics) Second() {
	if m == nil {
		return
	}
	m.seconds.Inc()
}

// AlarmFired records one alarm.
func (m *Metrics) AlarmFired() {
	if m == nil {
		return
	}
	m.alarmsFired.Inc()
}

// SetState updates the validity gauges.
func (m *Metrics) SetState(timeValid, alarmEnabled bool) {
	if m == nil {
		return
	}
	m.timeValid.Set(boolToFloat(timeValid))
	m.alarmEnabled.Set(boolToFloat(alarmEnabled))
}

// Handler returns an http.Handler serving the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
