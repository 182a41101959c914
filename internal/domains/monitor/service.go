package monitor

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/Fivegen-LLC/peplink-monitor/internal/constants"
	"github.com/Fivegen-LLC/peplink-monitor/internal/domains/quality"
	"github.com/Fivegen-LLC/peplink-monitor/internal/domains/session"
	"github.com/Fivegen-LLC/peplink-monitor/internal/entities"
	"github.com/Fivegen-LLC/peplink-monitor/internal/environment"
)

type (
	ISessionService interface {
		Run(ctx context.Context, endpoint session.Endpoint) (transcript string, err error)
	}

	IParser interface {
		Parse(transcript, targetName string) entities.WANConnections
	}

	Service struct {
		sessionService ISessionService
		parser         IParser
	}
)

func NewService(sessionService ISessionService, parser IParser) *Service {
	return &Service{
		sessionService: sessionService,
		parser:         parser,
	}
}

// Collect queries the router and returns every WAN connection it reports.
func (s *Service) Collect(ctx context.Context, cfg environment.Monitor) (connections entities.WANConnections, err error) {
	if err = cfg.Validate(); err != nil {
		return connections, fmt.Errorf("Collect: %w", err)
	}

	log.Debug().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("connection", cfg.ConnectionName).
		Msg("Collect: querying router")

	transcript, err := s.sessionService.Run(ctx, session.Endpoint{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Username: cfg.Username,
		Password: cfg.Password,
	})
	if err != nil {
		return connections, fmt.Errorf("Collect: %w", err)
	}

	connections = s.parser.Parse(transcript, cfg.ConnectionName)
	for _, connection := range connections {
		event := log.Debug().
			Int("number", connection.Number).
			Str("name", connection.Name).
			Str("type", connection.Type).
			Str("status", connection.Status)
		if cellular, found := connection.CellularStatus(); found {
			rssi, _ := cellular.String(constants.FieldRSSI)
			signalQuality, _ := cellular.String(constants.FieldSignalQuality)
			event = event.
				Str("rssi", rssi).
				Str("signal quality", signalQuality)
		}

		event.Msg("Collect: parsed WAN connection")
	}

	return connections, nil
}

// Query returns the signal quality of the configured connection as a ratio
// with three decimals ("0.820"), or "null" when the router reports none.
func (s *Service) Query(ctx context.Context, cfg environment.Monitor) (result string, err error) {
	connections, err := s.Collect(ctx, cfg)
	if err != nil {
		return result, fmt.Errorf("Query: %w", err)
	}

	target, found := SelectTarget(connections, cfg.ConnectionName)
	if !found {
		logMissingTarget(connections, cfg.ConnectionName)
		return constants.NullResult, nil
	}

	signalQuality, found := target.SignalQuality()
	if !found {
		log.Debug().
			Str("connection", cfg.ConnectionName).
			Msg("Query: no signal quality data available")
		return constants.NullResult, nil
	}

	ratio, err := quality.Ratio(signalQuality)
	if err != nil {
		return result, fmt.Errorf("Query: %w", err)
	}

	result = strconv.FormatFloat(ratio, 'f', 3, 64)
	log.Debug().
		Str("signal quality", signalQuality).
		Str("ratio", result).
		Msg("Query: found signal quality")

	return result, nil
}

// SelectTarget finds the cellular connection named targetName that reports cellular status.
func SelectTarget(connections entities.WANConnections, targetName string) (target entities.WANConnection, found bool) {
	return lo.Find(connections, func(item entities.WANConnection) bool {
		_, hasCellular := item.CellularStatus()
		return item.Name == targetName && item.Type == constants.ConnectionTypeCellular && hasCellular
	})
}

func logMissingTarget(connections entities.WANConnections, targetName string) {
	if named, found := lo.Find(connections, func(item entities.WANConnection) bool {
		return item.Name == targetName
	}); found {
		log.Debug().
			Str("connection", targetName).
			Str("type", named.Type).
			Msg("Query: connection found but it is not cellular or has no cellular status")
		return
	}

	log.Debug().
		Str("connection", targetName).
		Strs("available", lo.Map(connections, func(item entities.WANConnection, _ int) string {
			return item.Name
		})).
		Msg("Query: no connection found with this name")
}
