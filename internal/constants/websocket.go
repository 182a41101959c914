package constants

import (
	"time"
)

const (
	SignalKStreamPath  = "/signalk/v1/stream"
	SignalKLoginPath   = "/signalk/v1/auth/login"
	SignalKContext     = "vessels.self"
	SignalKQualityPath = "communication.cellular.signalQuality"
	SignalKDefaultSrc  = "cellular"
)

const (
	WSPingPeriod   = 4 * time.Second
	WSWriteTimeout = 5 * time.Second
	WSDialTimeout  = 10 * time.Second
)
