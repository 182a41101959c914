package infrastructure

import (
	"sync"

	"github.com/Fivegen-LLC/peplink-monitor/internal/constants"
	"github.com/Fivegen-LLC/peplink-monitor/internal/domains/metrics"
	"github.com/Fivegen-LLC/peplink-monitor/internal/domains/monitor"
	"github.com/Fivegen-LLC/peplink-monitor/internal/domains/publisher/natspub"
	"github.com/Fivegen-LLC/peplink-monitor/internal/domains/publisher/signalk"
	"github.com/Fivegen-LLC/peplink-monitor/internal/domains/quality"
	"github.com/Fivegen-LLC/peplink-monitor/internal/domains/session"
	"github.com/Fivegen-LLC/peplink-monitor/internal/domains/wan"
)

var (
	monitorService     *monitor.Service
	monitorServiceOnce sync.Once
)

func (k *Kernel) InjectMonitorService() *monitor.Service {
	monitorServiceOnce.Do(func() {
		monitorService = monitor.NewService(
			k.InjectSessionService(),
			k.InjectWANParser(),
		)
	})

	return monitorService
}

var (
	sessionService     *session.Service
	sessionServiceOnce sync.Once
)

func (k *Kernel) InjectSessionService() *session.Service {
	sessionServiceOnce.Do(func() {
		sessionService = session.NewService(
			k.InjectSSHDialer(),
			constants.SessionTimeout,
		)
	})

	return sessionService
}

var (
	sshDialer     *session.SSHDialer
	sshDialerOnce sync.Once
)

func (k *Kernel) InjectSSHDialer() *session.SSHDialer {
	sshDialerOnce.Do(func() {
		sshDialer = session.NewSSHDialer(constants.SessionTimeout)
	})

	return sshDialer
}

var (
	wanParser     *wan.Parser
	wanParserOnce sync.Once
)

func (k *Kernel) InjectWANParser() *wan.Parser {
	wanParserOnce.Do(func() {
		wanParser = wan.NewParser(quality.Score)
	})

	return wanParser
}

var (
	metricsService     *metrics.Service
	metricsServiceOnce sync.Once
)

func (k *Kernel) InjectMetricsService() *metrics.Service {
	metricsServiceOnce.Do(func() {
		metricsService = metrics.NewService()
	})

	return metricsService
}

var (
	natsPublisher     *natspub.Service
	natsPublisherOnce sync.Once
)

func (k *Kernel) InjectNATSPublisher() *natspub.Service {
	natsPublisherOnce.Do(func() {
		natsPublisher = natspub.NewService(
			k.env.NATSURL,
			k.env.NATSSubject,
			natspub.Connect,
		)
	})

	return natsPublisher
}

var (
	signalKPublisher     *signalk.Service
	signalKPublisherOnce sync.Once
)

func (k *Kernel) InjectSignalKPublisher() *signalk.Service {
	signalKPublisherOnce.Do(func() {
		signalKPublisher = signalk.NewService(signalk.Config{
			URL:        k.env.SignalKURL,
			Username:   k.env.SignalKUsername,
			Password:   k.env.SignalKPassword,
			PingPeriod: constants.WSPingPeriod,
		})
	})

	return signalKPublisher
}
