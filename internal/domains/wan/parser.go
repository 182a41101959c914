package wan

import (
	"bufio"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/Fivegen-LLC/peplink-monitor/internal/constants"
	"github.com/Fivegen-LLC/peplink-monitor/internal/entities"
)

var (
	headerRe        = regexp.MustCompile(`^WAN Connection \[(\d+)\]$`)
	sectionRe       = regexp.MustCompile(`^\s{4}[A-Za-z]`)
	continuationRe  = regexp.MustCompile(`^\s{40,}`)
	keyValueRe      = regexp.MustCompile(`^(.+?)\s*:\s*(.+)$`)
	intRe           = regexp.MustCompile(`^\d+$`)
	floatRe         = regexp.MustCompile(`^\d+\.\d+$`)
	keyCharsRe      = regexp.MustCompile(`[^a-zA-Z0-9 ]`)
	whitespaceRe    = regexp.MustCompile(`\s+`)
	cellularMetrics = []string{constants.FieldRSSI, constants.FieldSINR, constants.FieldRSRP, constants.FieldRSRQ}
)

type (
	ScoreFunc func(rssi, sinr, rsrp, rsrq string) string

	// Parser turns "get wan" transcripts into connection records.
	Parser struct {
		score ScoreFunc
	}

	// parseState is the open record and the section new fields go to.
	parseState struct {
		connections entities.WANConnections
		current     *entities.WANConnection
		section     string
	}
)

func NewParser(score ScoreFunc) *Parser {
	return &Parser{
		score: score,
	}
}

// Parse reads connection records in router order and adds signalQuality
// to the cellular status of the connection named targetName.
func (p *Parser) Parse(transcript, targetName string) entities.WANConnections {
	state := new(parseState)

	scanner := bufio.NewScanner(strings.NewReader(transcript))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if lo.IsEmpty(strings.TrimSpace(line)) {
			continue
		}

		state.consume(line)
	}
	state.closeCurrent()

	for i := range state.connections {
		if state.connections[i].Name == targetName {
			p.applySignalQuality(&state.connections[i])
		}
	}

	return state.connections
}

func (s *parseState) consume(line string) {
	trimmed := strings.TrimSpace(line)

	if match := headerRe.FindStringSubmatch(trimmed); match != nil {
		number, err := strconv.Atoi(match[1])
		if err != nil {
			return
		}

		s.closeCurrent()
		s.current = entities.NewWANConnection(number)
		return
	}

	// nothing before the first header belongs to a connection
	if s.current == nil {
		return
	}

	switch {
	case sectionRe.MatchString(line) && !strings.Contains(line, ":"):
		s.section = sectionKey(trimmed)
		s.current.Sections[s.section] = entities.Section{}

	case continuationRe.MatchString(line) && s.current.DNSServers != nil:
		s.current.DNSServers = append(s.current.DNSServers, trimmed)

	default:
		match := keyValueRe.FindStringSubmatch(trimmed)
		if match == nil {
			return
		}

		s.setField(strings.TrimSpace(match[1]), strings.TrimSpace(match[2]))
	}
}

func (s *parseState) setField(label, rawValue string) {
	key := fieldKey(label)
	if !lo.IsEmpty(s.section) {
		s.current.Sections[s.section][key] = convertValue(rawValue)
		return
	}

	switch key {
	case "connectionName":
		s.current.Name = rawValue
	case "connectionStatus":
		s.current.Status = rawValue
	case "connectionType":
		s.current.Type = rawValue
	case "connectionMethod":
		s.current.Method = rawValue
	case constants.FieldDNSServers:
		s.current.DNSServers = []string{rawValue}
	default:
		s.current.Fields[key] = convertValue(rawValue)
	}
}

func (s *parseState) closeCurrent() {
	if s.current != nil {
		s.connections = append(s.connections, *s.current)
	}

	s.current = nil
	s.section = ""
}

func (p *Parser) applySignalQuality(connection *entities.WANConnection) {
	cellular, found := connection.CellularStatus()
	if !found {
		return
	}

	metrics := make([]string, 0, len(cellularMetrics))
	for _, key := range cellularMetrics {
		value, ok := cellular[key]
		if !ok || !entities.IsTruthy(value) {
			log.Debug().
				Str("connection", connection.Name).
				Str("metric", key).
				Msg("applySignalQuality: missing signal value, cannot calculate quality")
			return
		}

		metrics = append(metrics, entities.FormatValue(value))
	}

	signalQuality := p.score(metrics[0], metrics[1], metrics[2], metrics[3])
	cellular[constants.FieldSignalQuality] = signalQuality

	log.Debug().
		Str("connection", connection.Name).
		Strs("metrics", metrics).
		Str("signal quality", signalQuality).
		Msg("applySignalQuality: calculated signal quality")
}

// sectionKey turns "Cellular Status" into "cellularStatus".
func sectionKey(header string) string {
	key := whitespaceRe.ReplaceAllString(header, "")
	if lo.IsEmpty(key) {
		return key
	}

	runes := []rune(key)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// fieldKey turns "DNS Servers" into "dnsServers".
func fieldKey(label string) string {
	var (
		buf   strings.Builder
		words = strings.Split(keyCharsRe.ReplaceAllString(label, ""), " ")
	)
	for i, word := range words {
		if i == 0 {
			buf.WriteString(strings.ToLower(word))
			continue
		}

		if lo.IsEmpty(word) {
			continue
		}

		buf.WriteString(strings.ToUpper(word[:1]))
		buf.WriteString(strings.ToLower(word[1:]))
	}

	return buf.String()
}

func convertValue(raw string) any {
	switch {
	case intRe.MatchString(raw):
		if value, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return value
		}

	case floatRe.MatchString(raw):
		if value, err := strconv.ParseFloat(raw, 64); err == nil {
			return value
		}
	}

	return raw
}
