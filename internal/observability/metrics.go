package observability

import (
	"context"
	"errors"
	"net/http"
	"time"

	"reward-indexer/internal/core/domain"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

const namespace = "reward_indexer"

var subscriptionStates = []domain.SubscriptionState{
	domain.SubscriptionDisconnected,
	domain.SubscriptionConnecting,
	domain.SubscriptionSubscribed,
	domain.SubscriptionReconnecting,
	domain.SubscriptionFailed,
}

// Metrics holds the indexer's Prometheus collectors. It implements
// ports.IngestMetrics.
type Metrics struct {
	registry *prometheus.Registry

	BatchesReceived   prometheus.Counter
	LogsReceived      prometheus.Counter
	EventsCredited    prometheus.Counter
	EventsRejected    *prometheus.CounterVec
	DecodeErrors      prometheus.Counter
	SubscriptionGauge *prometheus.GaugeVec
	LedgerRecipients  prometheus.Gauge
}

// NewMetrics registers all collectors on a fresh registry, together with
// the Go runtime and process collectors.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		// Ingest
		BatchesReceived: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ingest",
			Name:      "batches_received_total",
			Help:      "Total number of log batches delivered by the subscription",
		}),
		LogsReceived: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ingest",
			Name:      "logs_received_total",
			Help:      "Total number of raw logs delivered by the subscription",
		}),
		EventsCredited: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ingest",
			Name:      "events_credited_total",
			Help:      "Total number of payout transfers credited to the ledger",
		}),
		EventsRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ingest",
			Name:      "events_rejected_total",
			Help:      "Total number of logs skipped by the event filter",
		}, []string{"reason"}),
		DecodeErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ingest",
			Name:      "decode_errors_total",
			Help:      "Total number of malformed transfer logs",
		}),

		// Subscription
		SubscriptionGauge: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "subscription",
			Name:      "state",
			Help:      "Current subscription state (1 for the active state, 0 otherwise)",
		}, []string{"state"}),

		// Ledger
		LedgerRecipients: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "recipients",
			Help:      "Number of distinct recipients in the ledger",
		}),
	}
}

func (m *Metrics) BatchReceived(size int) {
	m.BatchesReceived.Inc()
	m.LogsReceived.Add(float64(size))
}

func (m *Metrics) EventCredited() {
	m.EventsCredited.Inc()
}

func (m *Metrics) EventRejected(reason string) {
	m.EventsRejected.WithLabelValues(reason).Inc()
}

func (m *Metrics) DecodeFailed() {
	m.DecodeErrors.Inc()
}

// SubscriptionState sets the gauge for state to 1 and every other known
// state to 0.
func (m *Metrics) SubscriptionState(state domain.SubscriptionState) {
	for _, s := range subscriptionStates {
		v := 0.0
		if s == state {
			v = 1
		}
		m.SubscriptionGauge.WithLabelValues(string(s)).Set(v)
	}
}

func (m *Metrics) LedgerSize(recipients int) {
	m.LedgerRecipients.Set(float64(recipients))
}

// Registry exposes the underlying registry for tests and extra collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns an HTTP handler for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Server exposes /metrics on its own listener, away from the read API.
type Server struct {
	server *http.Server
	log    zerolog.Logger
}

// NewServer builds the metrics listener. Only GET /metrics is routed.
func NewServer(addr string, m *Metrics, log zerolog.Logger) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.GET("/metrics", gin.WrapH(m.Handler()))

	return &Server{
		server: &http.Server{
			Addr:              addr,
			Handler:           engine,
			ReadHeaderTimeout: 5 * time.Second,
		},
		log: log.With().Str("component", "metrics").Logger(),
	}
}

// Start serves in the background. Listener errors are logged, not fatal.
func (s *Server) Start() {
	go func() {
		s.log.Info().Str("addr", s.server.Addr).Msg("Metrics server starting")
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error().Err(err).Msg("Metrics server failed")
		}
	}()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
