package natspub

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"github.com/Fivegen-LLC/peplink-monitor/internal/constants"
	"github.com/Fivegen-LLC/peplink-monitor/internal/entities"
	"github.com/Fivegen-LLC/peplink-monitor/internal/errs"
)

const (
	maxReconnects = 60
	reconnectWait = 2 * time.Second
)

type (
	IConn interface {
		Publish(subject string, data []byte) error
		IsConnected() bool
		Close()
	}

	ConnectFunc func(url string) (conn IConn, err error)

	// Service publishes signal quality deltas to a NATS subject.
	Service struct {
		url     string
		subject string
		connect ConnectFunc

		mu   sync.Mutex
		conn IConn
	}
)

func NewService(url, subject string, connect ConnectFunc) *Service {
	return &Service{
		url:     url,
		subject: subject,
		connect: connect,
	}
}

// Connect dials NATS and keeps reconnecting in the background.
func Connect(url string) (conn IConn, err error) {
	nc, err := nats.Connect(url,
		nats.Name(constants.AppName),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(maxReconnects),
		nats.ReconnectWait(reconnectWait),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Warn().Err(err).Msg("Connect: nats disconnected")
			}
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			log.Info().Msg("Connect: nats reconnected")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("Connect: %w", err)
	}

	return nc, nil
}

func (s *Service) Name() string {
	return "nats"
}

func (s *Service) Start() (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn != nil {
		return fmt.Errorf("Start: publisher already started")
	}

	if s.conn, err = s.connect(s.url); err != nil {
		return fmt.Errorf("Start: %w", err)
	}

	log.Info().
		Str("url", s.url).
		Str("subject", s.subject).
		Msg("Start: nats publisher started")
	return nil
}

func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return
	}

	s.conn.Close()
	s.conn = nil
}

func (s *Service) Publish(_ context.Context, delta entities.Delta) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return fmt.Errorf("Publish: %w", errs.ErrPublisherNotStarted)
	}

	payload, err := json.Marshal(delta)
	if err != nil {
		return fmt.Errorf("Publish: %w", err)
	}

	if err = s.conn.Publish(s.subject, payload); err != nil {
		return fmt.Errorf("Publish: %w", err)
	}

	log.Trace().
		Str("subject", s.subject).
		RawJSON("delta", payload).
		Bool("connected", s.conn.IsConnected()).
		Msg("Publish: delta published")
	return nil
}
