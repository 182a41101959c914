package infrastructure

import (
	"github.com/Fivegen-LLC/peplink-monitor/internal/domains/monitor"
	"github.com/Fivegen-LLC/peplink-monitor/internal/domains/monitor/poller"
	"github.com/Fivegen-LLC/peplink-monitor/internal/environment"
)

type IInjector interface {
	InjectMonitorService() *monitor.Service
}

type Kernel struct {
	env environment.Environment
}

func Inject(env environment.Environment) (k *Kernel) {
	return &Kernel{
		env: env,
	}
}

func (k *Kernel) Env() environment.Environment {
	return k.env
}

// InjectPollerService wires the poller with every configured publisher.
func (k *Kernel) InjectPollerService() *poller.Service {
	var publishers []poller.IPublisher
	if k.env.HasNATS() {
		publishers = append(publishers, k.InjectNATSPublisher())
	}
	if k.env.HasSignalK() {
		publishers = append(publishers, k.InjectSignalKPublisher())
	}

	return poller.NewService(
		k.InjectMonitorService(),
		k.InjectMetricsService(),
		k.env.Monitor,
		k.env.PollInterval,
		publishers...,
	)
}
