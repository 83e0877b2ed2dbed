package server

import (
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/haulage-game/haulage/pkg/events"
	"github.com/haulage-game/haulage/pkg/world"
)

// Metrics holds Prometheus metric descriptors for the console server.
type Metrics struct {
	world     *world.World
	startTime time.Time

	sessionsConnected *prometheus.GaugeVec
	connectionsTotal  *prometheus.CounterVec
	linesTotal        prometheus.Counter
	matchedTotal      *prometheus.CounterVec
	affectedTotal     *prometheus.CounterVec
	entitiesTotal     *prometheus.GaugeVec
	uptimeSeconds     prometheus.Gauge
	goroutines        prometheus.Gauge
}

// NewMetrics creates and registers Prometheus metrics for the server.
func NewMetrics(w *world.World, startTime time.Time) *Metrics {
	m := &Metrics{
		world:     w,
		startTime: startTime,
		sessionsConnected: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "haulage_sessions_connected",
			Help: "Number of currently connected console sessions by transport.",
		}, []string{"transport"}),
		connectionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "haulage_connections_total",
			Help: "Total connections since server start.",
		}, []string{"transport"}),
		linesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "haulage_console_lines_total",
			Help: "Total console lines processed since server start.",
		}),
		matchedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "haulage_entities_matched_total",
			Help: "Total entities matched by batch commands.",
		}, []string{"kind"}),
		affectedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "haulage_entities_affected_total",
			Help: "Total entities affected by batch commands.",
		}, []string{"kind"}),
		entitiesTotal: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "haulage_entities_total",
			Help: "Current entity pool sizes.",
		}, []string{"kind"}),
		uptimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "haulage_uptime_seconds",
			Help: "Server uptime in seconds.",
		}),
		goroutines: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "haulage_goroutines",
			Help: "Number of active goroutines.",
		}),
	}

	prometheus.MustRegister(
		m.sessionsConnected,
		m.connectionsTotal,
		m.linesTotal,
		m.matchedTotal,
		m.affectedTotal,
		m.entitiesTotal,
		m.uptimeSeconds,
		m.goroutines,
	)
	return m
}

// Receive implements events.Subscriber so the metrics collector can be
// registered as a global bus subscriber.
func (m *Metrics) Receive(ev events.Event) {
	if ev.Type != events.EvCommand {
		return
	}
	m.linesTotal.Inc()
	m.matchedTotal.WithLabelValues(ev.Kind).Add(float64(ev.Matched))
	m.affectedTotal.WithLabelValues(ev.Kind).Add(float64(ev.Affected))
}

// Closed implements events.Subscriber.
func (m *Metrics) Closed() bool { return false }

// Update refreshes gauges computed from current state.
func (m *Metrics) Update() {
	vehicles, towns, industries := m.world.Counts()
	m.entitiesTotal.WithLabelValues("vehicle").Set(float64(vehicles))
	m.entitiesTotal.WithLabelValues("town").Set(float64(towns))
	m.entitiesTotal.WithLabelValues("industry").Set(float64(industries))
	m.uptimeSeconds.Set(time.Since(m.startTime).Seconds())
	m.goroutines.Set(float64(runtime.NumGoroutine()))
}

// Handler returns the /metrics HTTP handler, refreshing gauges per scrape.
func (m *Metrics) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.Update()
		promhttp.Handler().ServeHTTP(w, r)
	})
}
