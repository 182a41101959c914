package session

import (
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_queuedWriter(t *testing.T) {
	t.Parallel()

	t.Run("stalled peer", func(t *testing.T) {
		t.Parallel()

		reader, writer := io.Pipe()
		t.Cleanup(func() { _ = reader.Close() })

		done := make(chan struct{})
		t.Cleanup(func() { close(done) })

		q := newQueuedWriter(writer, done)

		// nobody reads the pipe, writes still return right away
		for range writeQueueSize {
			n, err := q.Write([]byte("get wan\n"))
			require.NoError(t, err)
			assert.Equal(t, len("get wan\n"), n)
		}
	})

	t.Run("delivers in order", func(t *testing.T) {
		t.Parallel()

		reader, writer := io.Pipe()
		done := make(chan struct{})
		t.Cleanup(func() { close(done) })

		q := newQueuedWriter(writer, done)
		_, err := q.Write([]byte("get wan\n"))
		require.NoError(t, err)
		_, err = q.Write([]byte("exit\n"))
		require.NoError(t, err)

		buf := make([]byte, len("get wan\nexit\n"))
		_, err = io.ReadFull(reader, buf)
		require.NoError(t, err)
		assert.Equal(t, "get wan\nexit\n", string(buf))
	})

	t.Run("write error", func(t *testing.T) {
		t.Parallel()

		done := make(chan struct{})
		t.Cleanup(func() { close(done) })

		q := newQueuedWriter(failingWriter{}, done)
		_, err := q.Write([]byte("exit\n"))
		require.NoError(t, err)

		select {
		case err = <-q.errs:
			require.EqualError(t, err, "broken pipe")
		case <-time.After(5 * time.Second):
			t.Fatal("write error not reported")
		}
	})

	t.Run("closed", func(t *testing.T) {
		t.Parallel()

		done := make(chan struct{})
		close(done)

		q := newQueuedWriter(io.Discard, done)
		_, err := q.Write([]byte("exit\n"))
		require.ErrorIs(t, err, io.ErrClosedPipe)
	})
}
