package session

import (
	"bytes"
	"errors"
	"io"
)

const (
	writeQueueSize = 4
)

var (
	errWriteQueueFull = errors.New("write queue full")
)

// queuedWriter hands writes to its own goroutine, the caller never waits on the peer.
// The first failed write is reported on errs and stops the goroutine.
type queuedWriter struct {
	queue chan []byte
	errs  chan error
	done  <-chan struct{}
}

func newQueuedWriter(w io.Writer, done <-chan struct{}) *queuedWriter {
	q := &queuedWriter{
		queue: make(chan []byte, writeQueueSize),
		errs:  make(chan error, 1),
		done:  done,
	}
	go q.run(w)

	return q
}

func (q *queuedWriter) Write(p []byte) (n int, err error) {
	select {
	case <-q.done:
		return 0, io.ErrClosedPipe
	default:
	}

	select {
	case q.queue <- bytes.Clone(p):
		return len(p), nil
	default:
		return 0, errWriteQueueFull
	}
}

func (q *queuedWriter) run(w io.Writer) {
	for {
		select {
		case <-q.done:
			return

		case data := <-q.queue:
			if _, err := w.Write(data); err != nil {
				q.errs <- err
				return
			}
		}
	}
}
