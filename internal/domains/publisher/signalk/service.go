package signalk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/Fivegen-LLC/peplink-monitor/internal/constants"
	"github.com/Fivegen-LLC/peplink-monitor/internal/entities"
	"github.com/Fivegen-LLC/peplink-monitor/internal/errs"
)

type (
	Config struct {
		URL        string
		Username   string
		Password   string
		PingPeriod time.Duration
	}

	// Service writes signal quality deltas to the Signal K websocket stream.
	// The connection is opened on first publish and reopened after failures.
	Service struct {
		cfg    Config
		login  *loginClient
		dialer *websocket.Dialer

		mu      sync.Mutex
		conn    *websocket.Conn
		started bool
	}
)

func NewService(cfg Config) *Service {
	if cfg.PingPeriod <= 0 {
		cfg.PingPeriod = constants.WSPingPeriod
	}

	return &Service{
		cfg:   cfg,
		login: newLoginClient(cfg.URL),
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: constants.WSDialTimeout,
		},
	}
}

func (s *Service) Name() string {
	return "signalk"
}

// Start runs the keepalive loop until ctx is done.
func (s *Service) Start(ctx context.Context) {
	s.mu.Lock()
	s.started = true
	s.mu.Unlock()

	go s.run(ctx)
}

func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.started = false
	s.closeLocked()
}

func (s *Service) Publish(ctx context.Context, delta entities.Delta) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return fmt.Errorf("Publish: %w", errs.ErrPublisherNotStarted)
	}

	if s.conn == nil {
		if err = s.connectLocked(ctx); err != nil {
			return fmt.Errorf("Publish: %w", err)
		}
	}

	if err = s.conn.SetWriteDeadline(time.Now().Add(constants.WSWriteTimeout)); err != nil {
		s.closeLocked()
		return fmt.Errorf("Publish: %w", err)
	}

	if err = s.conn.WriteJSON(delta); err != nil {
		s.closeLocked()
		return fmt.Errorf("Publish: %w", err)
	}

	log.Trace().
		Any("delta", delta).
		Msg("Publish: delta sent to signal k")
	return nil
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.PingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.Stop()
			return

		case <-ticker.C:
			s.ping()
		}
	}
}

func (s *Service) ping() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return
	}

	if err := s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(s.cfg.PingPeriod)); err != nil {
		log.Error().
			Err(err).
			Msg("ping: ping websocket failed")
		s.closeLocked()
	}
}

func (s *Service) connectLocked(ctx context.Context) (err error) {
	header := http.Header{}
	if lo.IsNotEmpty(s.cfg.Username) {
		token, loginErr := s.login.Login(ctx, s.cfg.Username, s.cfg.Password)
		if loginErr != nil {
			return fmt.Errorf("connectLocked: %w", loginErr)
		}

		if lo.IsNotEmpty(token) {
			header.Set("Authorization", "Bearer "+token)
		}
	}

	streamURL, err := StreamURL(s.cfg.URL)
	if err != nil {
		return fmt.Errorf("connectLocked: %w", err)
	}

	conn, resp, err := s.dialer.DialContext(ctx, streamURL, header)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return fmt.Errorf("connectLocked: %w", err)
	}

	s.conn = conn
	go s.read(conn)

	log.Info().
		Str("url", streamURL).
		Msg("connectLocked: signal k stream connected")
	return nil
}

// read drains server messages so control frames are handled.
func (s *Service) read(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			log.Debug().
				Err(err).
				Msg("read: signal k stream closed")

			s.mu.Lock()
			if s.conn == conn {
				s.closeLocked()
			}
			s.mu.Unlock()
			return
		}
	}
}

func (s *Service) closeLocked() {
	if s.conn == nil {
		return
	}

	_ = s.conn.Close()
	s.conn = nil
}

// StreamURL turns the server base URL into its delta stream endpoint.
func StreamURL(baseURL string) (streamURL string, err error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return streamURL, fmt.Errorf("StreamURL: %w", err)
	}

	switch parsed.Scheme {
	case "http", "ws":
		parsed.Scheme = "ws"
	case "https", "wss":
		parsed.Scheme = "wss"
	default:
		return streamURL, fmt.Errorf("StreamURL: unsupported scheme %q: %w", parsed.Scheme, errs.ErrConfiguration)
	}

	parsed.Path = constants.SignalKStreamPath
	parsed.RawQuery = url.Values{"subscribe": []string{"none"}}.Encode()

	return parsed.String(), nil
}
