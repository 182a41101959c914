package metrics

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/Fivegen-LLC/peplink-monitor/internal/errs"
)

const (
	namespace = "peplink"

	resultOK      = "ok"
	resultNull    = "null"
	resultFailure = "error"

	shutdownTimeout   = 5 * time.Second
	readHeaderTimeout = 5 * time.Second
)

type Service struct {
	registry *prometheus.Registry

	signalQuality *prometheus.GaugeVec
	polls         *prometheus.CounterVec
	pollErrors    *prometheus.CounterVec
	lastPoll      *prometheus.GaugeVec
}

func NewService() *Service {
	service := &Service{
		registry: prometheus.NewRegistry(),

		signalQuality: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "cellular",
			Name:      "signal_quality_ratio",
			Help:      "Composite cellular signal quality, 0..1",
		}, []string{"connection"}),
		polls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "poll",
			Name:      "total",
			Help:      "Total number of router polls",
		}, []string{"connection", "result"}), // result: ok/null/error
		pollErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "poll",
			Name:      "errors_total",
			Help:      "Total number of failed router polls",
		}, []string{"connection", "kind"}),
		lastPoll: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "poll",
			Name:      "last_timestamp_seconds",
			Help:      "Timestamp of the last finished poll",
		}, []string{"connection"}),
	}

	service.registry.MustRegister(
		service.signalQuality,
		service.polls,
		service.pollErrors,
		service.lastPoll,
		collectors.NewGoCollector(),
	)

	return service
}

// ObserveQuality records a numeric poll result.
func (s *Service) ObserveQuality(connection string, ratio float64) {
	s.signalQuality.WithLabelValues(connection).Set(ratio)
	s.observePoll(connection, resultOK)
}

// ObserveNoData records a poll that ended with "null".
func (s *Service) ObserveNoData(connection string) {
	s.signalQuality.DeleteLabelValues(connection)
	s.observePoll(connection, resultNull)
}

func (s *Service) ObserveFailure(connection string, err error) {
	s.pollErrors.WithLabelValues(connection, ErrorKind(err)).Inc()
	s.observePoll(connection, resultFailure)
}

func (s *Service) observePoll(connection, result string) {
	s.polls.WithLabelValues(connection, result).Inc()
	s.lastPoll.WithLabelValues(connection).SetToCurrentTime()
}

// Handler exposes /metrics and /health.
func (s *Service) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	return router
}

// Serve blocks until ctx is done or the listener fails.
func (s *Service) Serve(ctx context.Context, addr string) (err error) {
	listener, err := new(net.ListenConfig).Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("Serve: %w", err)
	}

	server := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Serve: shutdown metrics server")
		}
	}()

	log.Info().
		Str("addr", listener.Addr().String()).
		Msg("Serve: metrics server started")

	if err = server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("Serve: %w", err)
	}

	return nil
}

// ErrorKind maps a poll error to a metric label.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, errs.ErrTimeout):
		return "timeout"
	case errors.Is(err, errs.ErrNoData):
		return "no_data"
	case errors.Is(err, errs.ErrSession):
		return "session"
	case errors.Is(err, errs.ErrConfiguration):
		return "configuration"
	case errors.Is(err, errs.ErrInvalidSignalQuality):
		return "invalid_quality"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "other"
	}
}
