package entities

import (
	"github.com/Fivegen-LLC/peplink-monitor/internal/constants"
)

// Section holds the fields of one indented block of a WAN connection, e.g. "Cellular Status".
// Values are int64, float64 or string.
type Section map[string]any

// WANConnection is one "WAN Connection [n]" entry of the router "get wan" output.
type WANConnection struct {
	Number     int                `json:"connectionNumber"`
	Name       string             `json:"connectionName"`
	Status     string             `json:"connectionStatus"`
	Type       string             `json:"connectionType"`
	Method     string             `json:"connectionMethod"`
	DNSServers []string           `json:"dnsServers,omitempty"`
	Fields     map[string]any     `json:"fields,omitempty"`
	Sections   map[string]Section `json:"sections,omitempty"`
}

type WANConnections []WANConnection

func NewWANConnection(number int) *WANConnection {
	return &WANConnection{
		Number:   number,
		Fields:   make(map[string]any),
		Sections: make(map[string]Section),
	}
}

// CellularStatus returns the "Cellular Status" section if the router reported one.
func (c WANConnection) CellularStatus() (section Section, found bool) {
	section, found = c.Sections[constants.SectionCellularStatus]
	return section, found
}

// SignalQuality returns synthesized composite percentage, e.g. "82%".
func (c WANConnection) SignalQuality() (quality string, found bool) {
	section, found := c.CellularStatus()
	if !found {
		return "", false
	}

	quality, found = section[constants.FieldSignalQuality].(string)
	return quality, found
}

// String returns value as the router printed it.
func (s Section) String(key string) (value string, found bool) {
	raw, found := s[key]
	if !found {
		return "", false
	}

	return FormatValue(raw), true
}
