package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"sync"
	"time"

	"golang.org/x/crypto/ssh"

	"github.com/Fivegen-LLC/peplink-monitor/internal/constants"
)

type (
	SSHDialer struct {
		handshakeTimeout time.Duration
	}

	sshShell struct {
		client  *ssh.Client
		session *ssh.Session

		stdin  io.WriteCloser
		stdout io.Reader
		stderr io.Reader

		closeOnce sync.Once
		closeErr  error
	}
)

func NewSSHDialer(handshakeTimeout time.Duration) *SSHDialer {
	return &SSHDialer{
		handshakeTimeout: handshakeTimeout,
	}
}

// Dial connects to the router and starts an interactive shell on a pty.
func (d *SSHDialer) Dial(ctx context.Context, endpoint Endpoint) (shell IShell, err error) {
	var (
		addr   = net.JoinHostPort(endpoint.Host, strconv.Itoa(endpoint.Port))
		dialer = net.Dialer{Timeout: d.handshakeTimeout}
		config = &ssh.ClientConfig{
			User: endpoint.Username,
			Auth: []ssh.AuthMethod{
				ssh.Password(endpoint.Password),
				ssh.KeyboardInteractive(func(_, _ string, questions []string, _ []bool) (answers []string, err error) {
					answers = make([]string, len(questions))
					for i := range answers {
						answers[i] = endpoint.Password
					}

					return answers, nil
				}),
			},
			HostKeyCallback: ssh.InsecureIgnoreHostKey(), //nolint:gosec // routers use self-generated host keys
			Timeout:         d.handshakeTimeout,
		}
	)

	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return shell, fmt.Errorf("Dial: %w", err)
	}

	// the handshake and channel setup ignore ctx, closing the conn unblocks them
	stop := context.AfterFunc(ctx, func() {
		_ = conn.Close()
	})

	clientConn, chans, reqs, err := ssh.NewClientConn(conn, addr, config)
	if err != nil {
		stop()
		_ = conn.Close()
		return shell, fmt.Errorf("Dial: %w", err)
	}

	client := ssh.NewClient(clientConn, chans, reqs)
	opened, err := openShell(client)
	if err != nil {
		stop()
		_ = client.Close()
		return shell, fmt.Errorf("Dial: %w", err)
	}

	if !stop() {
		_ = opened.Close()
		return shell, fmt.Errorf("Dial: %w", ctx.Err())
	}

	return opened, nil
}

func openShell(client *ssh.Client) (shell *sshShell, err error) {
	session, err := client.NewSession()
	if err != nil {
		return shell, fmt.Errorf("openShell: %w", err)
	}

	shell = &sshShell{
		client:  client,
		session: session,
	}

	modes := ssh.TerminalModes{
		ssh.ECHO:          1,
		ssh.TTY_OP_ISPEED: 14400,
		ssh.TTY_OP_OSPEED: 14400,
	}
	if err = session.RequestPty(constants.SSHTerminal, constants.SSHTermHeight, constants.SSHTermWidth, modes); err != nil {
		return nil, fmt.Errorf("openShell: %w", err)
	}

	if shell.stdin, err = session.StdinPipe(); err != nil {
		return nil, fmt.Errorf("openShell: %w", err)
	}

	if shell.stdout, err = session.StdoutPipe(); err != nil {
		return nil, fmt.Errorf("openShell: %w", err)
	}

	if shell.stderr, err = session.StderrPipe(); err != nil {
		return nil, fmt.Errorf("openShell: %w", err)
	}

	if err = session.Shell(); err != nil {
		return nil, fmt.Errorf("openShell: %w", err)
	}

	return shell, nil
}

func (s *sshShell) Stdin() io.Writer  { return s.stdin }
func (s *sshShell) Stdout() io.Reader { return s.stdout }
func (s *sshShell) Stderr() io.Reader { return s.stderr }

func (s *sshShell) Close() (err error) {
	s.closeOnce.Do(func() {
		sessionErr := s.session.Close()
		if errors.Is(sessionErr, io.EOF) {
			sessionErr = nil
		}

		s.closeErr = errors.Join(sessionErr, s.client.Close())
	})

	return s.closeErr
}
