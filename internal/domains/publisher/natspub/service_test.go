package natspub_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fivegen-LLC/peplink-monitor/internal/domains/publisher/natspub"
	"github.com/Fivegen-LLC/peplink-monitor/internal/entities"
	"github.com/Fivegen-LLC/peplink-monitor/internal/errs"
)

var (
	errTestError = errors.New("test error")
	testDelta    = entities.NewSignalQualityDelta("T-Mobile", 0.52, time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC))
)

type (
	message struct {
		subject string
		data    []byte
	}

	fakeConn struct {
		publishErr error
		messages   []message
		closed     bool
	}
)

func (c *fakeConn) Publish(subject string, data []byte) error {
	if c.publishErr != nil {
		return c.publishErr
	}

	c.messages = append(c.messages, message{subject: subject, data: data})
	return nil
}

func (c *fakeConn) IsConnected() bool {
	return !c.closed
}

func (c *fakeConn) Close() {
	c.closed = true
}

func newTestService(conn *fakeConn, connectErr error) *natspub.Service {
	return natspub.NewService("nats://127.0.0.1:4222", "peplink.cellular.signal_quality", func(string) (natspub.IConn, error) {
		if connectErr != nil {
			return nil, connectErr
		}

		return conn, nil
	})
}

func TestService_Publish(t *testing.T) {
	t.Parallel()

	conn := new(fakeConn)
	service := newTestService(conn, nil)
	require.NoError(t, service.Start())

	require.NoError(t, service.Publish(t.Context(), testDelta))
	require.Len(t, conn.messages, 1)
	assert.Equal(t, "peplink.cellular.signal_quality", conn.messages[0].subject)

	var published entities.Delta
	require.NoError(t, json.Unmarshal(conn.messages[0].data, &published))
	assert.Equal(t, testDelta, published)

	service.Stop()
	assert.True(t, conn.closed)
	require.ErrorIs(t, service.Publish(t.Context(), testDelta), errs.ErrPublisherNotStarted)
}

func TestService_Errors(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name        string
		conn        *fakeConn
		connectErr  error
		start       bool
		expectedErr error
	}{
		{
			name:        "not started",
			conn:        new(fakeConn),
			expectedErr: errs.ErrPublisherNotStarted,
		},
		{
			name:        "publish error",
			conn:        &fakeConn{publishErr: errTestError},
			start:       true,
			expectedErr: errTestError,
		},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			service := newTestService(testCase.conn, testCase.connectErr)
			if testCase.start {
				require.NoError(t, service.Start())
			}

			err := service.Publish(t.Context(), testDelta)
			require.ErrorIs(t, err, testCase.expectedErr)
		})
	}
}

func TestService_Start(t *testing.T) {
	t.Parallel()

	t.Run("connect error", func(t *testing.T) {
		t.Parallel()

		service := newTestService(nil, errTestError)
		require.ErrorIs(t, service.Start(), errTestError)
	})

	t.Run("twice", func(t *testing.T) {
		t.Parallel()

		service := newTestService(new(fakeConn), nil)
		require.NoError(t, service.Start())
		require.Error(t, service.Start())
	})
}
