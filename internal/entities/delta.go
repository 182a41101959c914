package entities

import (
	"time"

	"github.com/samber/lo"

	"github.com/Fivegen-LLC/peplink-monitor/internal/constants"
)

const (
	// JavaScript Date.toISOString layout, Signal K servers expect it.
	deltaTimestampLayout = "2006-01-02T15:04:05.000Z"
)

type (
	// Delta is a Signal K delta message carrying one signal quality sample.
	Delta struct {
		Context string        `json:"context"`
		Updates []DeltaUpdate `json:"updates"`
	}

	DeltaUpdate struct {
		Source    DeltaSource  `json:"source"`
		Timestamp string       `json:"timestamp"`
		Values    []DeltaValue `json:"values"`
	}

	DeltaSource struct {
		Label string `json:"label"`
		Type  string `json:"type"`
		Src   string `json:"src"`
	}

	DeltaValue struct {
		Path  string  `json:"path"`
		Value float64 `json:"value"`
	}
)

// NewSignalQualityDelta builds the delta published for every numeric poll result.
func NewSignalQualityDelta(connectionName string, ratio float64, at time.Time) Delta {
	return Delta{
		Context: constants.SignalKContext,
		Updates: []DeltaUpdate{
			{
				Source: DeltaSource{
					Label: constants.AppLabel,
					Type:  constants.SourceType,
					Src:   lo.Ternary(lo.IsEmpty(connectionName), constants.SignalKDefaultSrc, connectionName),
				},
				Timestamp: at.UTC().Format(deltaTimestampLayout),
				Values: []DeltaValue{
					{
						Path:  constants.SignalKQualityPath,
						Value: ratio,
					},
				},
			},
		},
	}
}

// Ratio returns the first signal quality value of the delta.
func (d Delta) Ratio() (ratio float64, found bool) {
	for _, update := range d.Updates {
		for _, value := range update.Values {
			if value.Path == constants.SignalKQualityPath {
				return value.Value, true
			}
		}
	}

	return ratio, false
}
