package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.Tick()
	m.Tick()
	m.Tick()
	m.Second()
	m.AlarmFired()

	assert.InDelta(t, 3, testutil.ToFloat64(m.ticks), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.seconds), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.alarmsFired), 0)
}

func TestMetrics_SetState(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.SetState(true, false)
	assert.InDelta(t, 1, testutil.ToFloat64(m.timeValid), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(m.alarmEnabled), 0)

	m.SetState(false, true)
	assert.InDelta(t, 0, testutil.ToFloat64(m.timeValid), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.alarmEnabled), 0)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.Tick()
		m.Second()
		m.AlarmFired()
		m.SetState(true, true)
	})
}

func TestNew_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)

	assert.Panics(t, func() { New(reg) })
}

func TestHandler_ServesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.Tick()
	m.SetState(true, true)

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "tickclock_ticks_total 1")
	assert.Contains(t, string(body), "tickclock_time_valid 1")
	assert.Contains(t, string(body), "tickclock_alarm_enabled 1")
}
