package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc"

	"github.com/Fivegen-LLC/peplink-monitor/internal/errs"
)

const (
	readBufferSize = 4096
)

type (
	// Endpoint is the router ssh address and credentials.
	Endpoint struct {
		Host     string
		Port     int
		Username string
		Password string
	}

	// IShell is an interactive remote shell channel.
	IShell interface {
		Stdin() io.Writer
		Stdout() io.Reader
		Stderr() io.Reader
		// Close tears the transport down, repeated calls are no-ops.
		Close() (err error)
	}

	IDialer interface {
		Dial(ctx context.Context, endpoint Endpoint) (shell IShell, err error)
	}

	Service struct {
		dialer  IDialer
		timeout time.Duration
	}

	chunk struct {
		data []byte
		err  error
	}
)

func NewService(dialer IDialer, timeout time.Duration) *Service {
	return &Service{
		dialer:  dialer,
		timeout: timeout,
	}
}

// Run opens a shell on the router, issues "get wan" and returns the cleaned command output.
func (s *Service) Run(ctx context.Context, endpoint Endpoint) (transcript string, err error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	shell, err := s.dialer.Dial(ctx, endpoint)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return transcript, fmt.Errorf("Run: %w: %w", errs.ErrTimeout, err)
		}

		return transcript, fmt.Errorf("Run: %w: %w", errs.ErrSession, err)
	}

	var (
		wg     conc.WaitGroup
		done   = make(chan struct{})
		stdout = make(chan chunk)
		stderr = make(chan chunk)
	)
	wg.Go(func() { pump(shell.Stdout(), stdout, done) })
	wg.Go(func() { pump(shell.Stderr(), stderr, done) })
	defer func() {
		close(done)
		if closeErr := shell.Close(); closeErr != nil {
			log.Debug().Err(closeErr).Msg("Run: close shell")
		}
		wg.Wait()
	}()

	stdin := newQueuedWriter(shell.Stdin(), done)
	exchange := newExchange(stdin)
	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return transcript, fmt.Errorf("Run: %w after %s (state: %s)", errs.ErrTimeout, s.timeout, exchange.state)
			}

			return transcript, fmt.Errorf("Run: %w", ctx.Err())

		case writeErr := <-stdin.errs:
			return transcript, fmt.Errorf("Run: %w: stdin: %w", errs.ErrSession, writeErr)

		case c := <-stderr:
			if len(c.data) > 0 {
				return transcript, fmt.Errorf("Run: %w: stderr: %s", errs.ErrSession, c.data)
			}

			if errors.Is(c.err, io.EOF) {
				// stderr finished, keep reading stdout only
				stderr = nil
				continue
			}

			if c.err != nil {
				return transcript, fmt.Errorf("Run: %w: stderr: %w", errs.ErrSession, c.err)
			}

		case c := <-stdout:
			if len(c.data) > 0 {
				if err = exchange.feed(c.data); err != nil {
					return transcript, fmt.Errorf("Run: %w: %w", errs.ErrSession, err)
				}
			}

			if errors.Is(c.err, io.EOF) {
				exchange.close()
				log.Debug().
					Int("bytes", exchange.output.Len()).
					Msg("Run: raw ssh output received")

				if transcript, err = ExtractTranscript(exchange.output.String()); err != nil {
					return transcript, fmt.Errorf("Run: %w", err)
				}

				return transcript, nil
			}

			if c.err != nil {
				return transcript, fmt.Errorf("Run: %w: stream: %w", errs.ErrSession, c.err)
			}
		}
	}
}

// pump forwards reads from r until an error, every send gives way to done.
func pump(r io.Reader, out chan<- chunk, done <-chan struct{}) {
	buf := make([]byte, readBufferSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			data := make([]byte, n)
			copy(data, buf[:n])

			select {
			case out <- chunk{data: data}:
			case <-done:
				return
			}
		}

		if err != nil {
			select {
			case out <- chunk{err: err}:
			case <-done:
			}

			return
		}
	}
}
