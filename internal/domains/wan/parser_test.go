package wan_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fivegen-LLC/peplink-monitor/internal/domains/quality"
	"github.com/Fivegen-LLC/peplink-monitor/internal/domains/wan"
	"github.com/Fivegen-LLC/peplink-monitor/internal/entities"
)

const (
	testTarget = "T-Mobile"
)

var (
	continuationIndent = strings.Repeat(" ", 40)
)

func starlinkLines() []string {
	return []string{
		"WAN Connection [1]",
		"Connection Name         : Starlink",
		"Connection Status       : Connected",
		"Connection Type         : Ethernet",
		"Connection Method       : DHCP",
		"IP Address              : 100.64.0.10",
		"Priority                : 1",
		"Uptime Ratio            : 99.5",
		"DNS Servers             : 8.8.8.8",
		continuationIndent + "8.8.4.4",
	}
}

func cellularLines(metrics ...string) []string {
	lines := []string{
		"WAN Connection [2]",
		"Connection Name         : T-Mobile",
		"Connection Status       : Connected",
		"Connection Type         : Cellular",
		"Connection Method       : DHCP",
		"    Cellular Status",
	}
	lines = append(lines, metrics...)

	return append(lines,
		"    Band                : LTE Band 2 (1900 MHz)",
		"    Signal Strength     : 4",
		"    SIM Card",
		"    IMSI                : 310260000000000",
	)
}

func allMetrics() []string {
	return []string{
		"    RSSI                : -75 dBm",
		"    SINR                : 15 dB",
		"    RSRP                : -95 dBm",
		"    RSRQ                : -10 dB",
	}
}

func transcript(blocks ...[]string) string {
	var lines []string
	for _, block := range blocks {
		lines = append(lines, block...)
	}

	return strings.Join(lines, "\n")
}

func newParser() *wan.Parser {
	return wan.NewParser(quality.Score)
}

func TestParser_Parse(t *testing.T) {
	t.Parallel()

	connections := newParser().Parse(transcript(starlinkLines(), cellularLines(allMetrics()...)), testTarget)
	require.Len(t, connections, 2)

	starlink := connections[0]
	assert.Equal(t, 1, starlink.Number)
	assert.Equal(t, "Starlink", starlink.Name)
	assert.Equal(t, "Connected", starlink.Status)
	assert.Equal(t, "Ethernet", starlink.Type)
	assert.Equal(t, "DHCP", starlink.Method)
	assert.Equal(t, []string{"8.8.8.8", "8.8.4.4"}, starlink.DNSServers)
	assert.Equal(t, "100.64.0.10", starlink.Fields["ipAddress"])
	assert.Equal(t, int64(1), starlink.Fields["priority"])
	assert.Equal(t, 99.5, starlink.Fields["uptimeRatio"])
	assert.Empty(t, starlink.Sections)

	cellular := connections[1]
	assert.Equal(t, 2, cellular.Number)
	assert.Equal(t, "Cellular", cellular.Type)
	assert.Nil(t, cellular.DNSServers)

	status, found := cellular.CellularStatus()
	require.True(t, found)
	assert.Equal(t, "-75 dBm", status["rssi"])
	assert.Equal(t, "15 dB", status["sinr"])
	assert.Equal(t, "-95 dBm", status["rsrp"])
	assert.Equal(t, "-10 dB", status["rsrq"])
	assert.Equal(t, "LTE Band 2 (1900 MHz)", status["band"])
	assert.Equal(t, int64(4), status["signalStrength"])
	assert.Equal(t, "52%", status["signalQuality"])

	simCard, found := cellular.Sections["sIMCard"]
	require.True(t, found)
	assert.Equal(t, int64(310260000000000), simCard["imsi"])
	assert.NotContains(t, status, "imsi")
}

func TestParser_Parse_SignalQuality(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name          string
		target        string
		metrics       []string
		expectQuality bool
	}{
		{
			name:          "all metrics present",
			target:        testTarget,
			metrics:       allMetrics(),
			expectQuality: true,
		},
		{
			name:    "other target",
			target:  "Verizon",
			metrics: allMetrics(),
		},
		{
			name:    "missing rsrq",
			target:  testTarget,
			metrics: allMetrics()[:3],
		},
		{
			name:   "zero sinr is not usable",
			target: testTarget,
			metrics: []string{
				"    RSSI                : -75 dBm",
				"    SINR                : 0",
				"    RSRP                : -95 dBm",
				"    RSRQ                : -10 dB",
			},
		},
		{
			name:    "no metrics",
			target:  testTarget,
			metrics: nil,
		},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			connections := newParser().Parse(transcript(cellularLines(testCase.metrics...)), testCase.target)
			require.Len(t, connections, 1)

			_, found := connections[0].SignalQuality()
			assert.Equal(t, testCase.expectQuality, found)
		})
	}
}

func TestParser_Parse_Idempotent(t *testing.T) {
	t.Parallel()

	input := transcript(starlinkLines(), cellularLines(allMetrics()...))
	parser := newParser()

	assert.Equal(t, parser.Parse(input, testTarget), parser.Parse(input, testTarget))
}

func TestParser_Parse_Lenient(t *testing.T) {
	t.Parallel()

	input := transcript(
		[]string{
			"Connection Name : orphan",
			"    Orphan Section",
		},
		[]string{
			"WAN Connection [3]",
			"Connection Name : WiFi",
			"-----------------",
			"garbage without separator",
			"",
			"   ",
			"    Cellular Status",
			"    RSSI : -60 dBm",
			"    Cellular Status",
			"    SINR : 10 dB",
		},
	)

	connections := newParser().Parse(input, "WiFi")
	require.Len(t, connections, 1)

	connection := connections[0]
	assert.Equal(t, 3, connection.Number)
	assert.Equal(t, "WiFi", connection.Name)
	assert.NotContains(t, connection.Sections, "orphanSection")

	// a repeated section header starts an empty section
	status, found := connection.CellularStatus()
	require.True(t, found)
	assert.Equal(t, entities.Section{"sinr": "10 dB"}, status)
}

func TestParser_Parse_CRLF(t *testing.T) {
	t.Parallel()

	input := strings.Join(cellularLines(allMetrics()...), "\r\n")

	connections := newParser().Parse(input, testTarget)
	require.Len(t, connections, 1)

	signalQuality, found := connections[0].SignalQuality()
	require.True(t, found)
	assert.Equal(t, "52%", signalQuality)
}

func TestParser_Parse_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, newParser().Parse("", testTarget))
}
