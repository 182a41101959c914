package errs

import (
	"errors"
)

var (
	ErrConfiguration = errors.New("invalid configuration")
)

var (
	ErrSession = errors.New("session error")
	ErrTimeout = errors.New("session timeout")
	ErrNoData  = errors.New("no WAN connection data found in output")
)

var (
	ErrInvalidSignalQuality = errors.New("invalid signal quality value")
	ErrPublisherNotStarted  = errors.New("publisher not started")
	ErrAPIError             = errors.New("api error")
)
