package environment

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Fivegen-LLC/peplink-monitor/internal/constants"
	"github.com/Fivegen-LLC/peplink-monitor/internal/errs"
)

const (
	envPrefix = "PEPLINK"
)

// viper keys, env variables are PEPLINK_<KEY>.
const (
	KeyHost            = "host"
	KeyPort            = "port"
	KeyUsername        = "username"
	KeyPassword        = "password"
	KeyConnection      = "connection"
	KeyPollInterval    = "poll_interval"
	KeyLogLevel        = "log_level"
	KeyLogFile         = "log_file"
	KeyMetricsAddr     = "metrics_addr"
	KeyNATSURL         = "nats_url"
	KeyNATSSubject     = "nats_subject"
	KeySignalKURL      = "signalk_url"
	KeySignalKUsername = "signalk_username"
	KeySignalKPassword = "signalk_password"
)

var (
	validate = validator.New()
)

type Environment struct {
	Monitor
	Agent
	Publisher
}

// Monitor is everything one router query needs.
type Monitor struct {
	Host           string `validate:"required"`
	Port           int    `validate:"min=1,max=65535"`
	Username       string `validate:"required"`
	Password       string `validate:"required"`
	ConnectionName string `validate:"required"`
}

type Agent struct {
	PollInterval time.Duration `validate:"min=10s"`
	LogfilePath  string
	LogLevel     string `validate:"required"`
	MetricsAddr  string
}

type Publisher struct {
	NATSURL         string
	NATSSubject     string
	SignalKURL      string `validate:"omitempty,url"`
	SignalKUsername string
	SignalKPassword string
}

// New reads PEPLINK_* environment variables, flags from the given set win over env.
func New(flags *pflag.FlagSet) (e Environment, err error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault(KeyPort, constants.DefaultSSHPort)
	v.SetDefault(KeyUsername, constants.DefaultUsername)
	v.SetDefault(KeyPollInterval, constants.DefaultPollInterval.String())
	v.SetDefault(KeyLogLevel, constants.DefaultLogLevel)
	v.SetDefault(KeyNATSSubject, constants.MQSignalQuality)

	if flags != nil {
		for _, key := range []string{KeyHost, KeyPort, KeyUsername, KeyConnection} {
			if flag := flags.Lookup(key); flag != nil {
				if err = v.BindPFlag(key, flag); err != nil {
					return e, fmt.Errorf("New: %w", err)
				}
			}
		}
	}

	e.Monitor = Monitor{
		Host:           strings.TrimSpace(v.GetString(KeyHost)),
		Port:           v.GetInt(KeyPort),
		Username:       v.GetString(KeyUsername),
		Password:       v.GetString(KeyPassword),
		ConnectionName: v.GetString(KeyConnection),
	}

	e.Agent.LogfilePath = v.GetString(KeyLogFile)
	e.Agent.LogLevel = v.GetString(KeyLogLevel)
	e.Agent.MetricsAddr = v.GetString(KeyMetricsAddr)
	if e.Agent.PollInterval, err = parseInterval(v.GetString(KeyPollInterval)); err != nil {
		return e, fmt.Errorf("New: %w: %w", errs.ErrConfiguration, err)
	}

	e.Publisher = Publisher{
		NATSURL:         v.GetString(KeyNATSURL),
		NATSSubject:     v.GetString(KeyNATSSubject),
		SignalKURL:      strings.TrimSuffix(v.GetString(KeySignalKURL), "/"),
		SignalKUsername: v.GetString(KeySignalKUsername),
		SignalKPassword: v.GetString(KeySignalKPassword),
	}

	return e, nil
}

// Validate checks the router settings.
func (m Monitor) Validate() (err error) {
	if err = validate.Struct(m); err != nil {
		return fmt.Errorf("Validate: %w: %w", errs.ErrConfiguration, err)
	}

	return nil
}

// Validate checks the polling and publishing settings.
func (e Environment) Validate() (err error) {
	if err = e.Monitor.Validate(); err != nil {
		return fmt.Errorf("Validate: %w", err)
	}

	if err = validate.Struct(e.Agent); err != nil {
		return fmt.Errorf("Validate: %w: %w", errs.ErrConfiguration, err)
	}

	if err = validate.Struct(e.Publisher); err != nil {
		return fmt.Errorf("Validate: %w: %w", errs.ErrConfiguration, err)
	}

	return nil
}

func (e Agent) IsDebug() bool {
	return e.LogLevel == "debug" || e.LogLevel == "trace"
}

func (e Publisher) HasNATS() bool {
	return lo.IsNotEmpty(e.NATSURL)
}

func (e Publisher) HasSignalK() bool {
	return lo.IsNotEmpty(e.SignalKURL)
}

// parseInterval accepts plain seconds ("30") or a duration ("1m").
func parseInterval(raw string) (interval time.Duration, err error) {
	raw = strings.TrimSpace(raw)
	if seconds, convErr := strconv.Atoi(raw); convErr == nil {
		return time.Duration(seconds) * time.Second, nil
	}

	if interval, err = time.ParseDuration(raw); err != nil {
		return interval, fmt.Errorf("parseInterval: %w", err)
	}

	return interval, nil
}
