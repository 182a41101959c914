package poller

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Fivegen-LLC/peplink-monitor/internal/constants"
	"github.com/Fivegen-LLC/peplink-monitor/internal/entities"
	"github.com/Fivegen-LLC/peplink-monitor/internal/environment"
	"github.com/Fivegen-LLC/peplink-monitor/internal/errs"
)

type (
	IQueryService interface {
		Query(ctx context.Context, cfg environment.Monitor) (result string, err error)
	}

	IPublisher interface {
		Name() string
		Publish(ctx context.Context, delta entities.Delta) (err error)
	}

	IMetrics interface {
		ObserveQuality(connection string, ratio float64)
		ObserveNoData(connection string)
		ObserveFailure(connection string, err error)
	}
)

// Service queries the router on a fixed interval and publishes every numeric result.
type Service struct {
	queryService IQueryService
	metrics      IMetrics
	publishers   []IPublisher
	cfg          environment.Monitor
	interval     time.Duration
}

func NewService(queryService IQueryService, metrics IMetrics, cfg environment.Monitor, interval time.Duration, publishers ...IPublisher) *Service {
	return &Service{
		queryService: queryService,
		metrics:      metrics,
		publishers:   publishers,
		cfg:          cfg,
		interval:     interval,
	}
}

// Start polls once right away, then on every tick until ctx is done.
// Polls never overlap, ticks missed during a slow poll are dropped.
func (s *Service) Start(ctx context.Context) {
	log.Info().
		Str("host", s.cfg.Host).
		Str("connection", s.cfg.ConnectionName).
		Dur("interval", s.interval).
		Msg("Start: polling started")

	s.poll(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("Start: polling stopped")
			return

		case <-ticker.C:
			s.poll(ctx)
		}
	}
}

func (s *Service) poll(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	if err := s.Poll(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}

		log.Error().
			Err(err).
			Str("connection", s.cfg.ConnectionName).
			Msg("poll")
	}
}

// Poll runs one query and hands a numeric result to metrics and publishers.
func (s *Service) Poll(ctx context.Context) (err error) {
	runID := uuid.NewString()
	logger := log.With().
		Str("run", runID).
		Str("connection", s.cfg.ConnectionName).
		Logger()

	started := time.Now()
	result, err := s.queryService.Query(ctx, s.cfg)
	if err != nil {
		s.metrics.ObserveFailure(s.cfg.ConnectionName, err)
		return fmt.Errorf("Poll: %w", err)
	}

	if result == constants.NullResult {
		logger.Info().Msg("Poll: no signal quality data available")
		s.metrics.ObserveNoData(s.cfg.ConnectionName)
		return nil
	}

	ratio, err := strconv.ParseFloat(result, 64)
	if err != nil {
		err = fmt.Errorf("%w: %q", errs.ErrInvalidSignalQuality, result)
		s.metrics.ObserveFailure(s.cfg.ConnectionName, err)
		return fmt.Errorf("Poll: %w", err)
	}

	s.metrics.ObserveQuality(s.cfg.ConnectionName, ratio)
	logger.Info().
		Float64("ratio", ratio).
		Dur("took", time.Since(started)).
		Msg("Poll: signal quality updated")

	delta := entities.NewSignalQualityDelta(s.cfg.ConnectionName, ratio, time.Now())

	var publishErr error
	for _, publisher := range s.publishers {
		if err = publisher.Publish(ctx, delta); err != nil {
			publishErr = errors.Join(publishErr, fmt.Errorf("%s: %w", publisher.Name(), err))
			continue
		}

		logger.Debug().
			Str("publisher", publisher.Name()).
			Msg("Poll: delta published")
	}

	if publishErr != nil {
		return fmt.Errorf("Poll: %w", publishErr)
	}

	return nil
}
