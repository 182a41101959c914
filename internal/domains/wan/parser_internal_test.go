package wan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_fieldKey(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		label    string
		expected string
	}{
		{label: "DNS Servers", expected: "dnsServers"},
		{label: "Connection Name", expected: "connectionName"},
		{label: "RSSI", expected: "rssi"},
		{label: "IP Address", expected: "ipAddress"},
		{label: "Signal Strength (bars)", expected: "signalStrengthBars"},
		{label: "Up  Time", expected: "upTime"},
		{label: "IMEI/MEID", expected: "imeimeid"},
	}

	for _, testCase := range testTable {
		assert.Equal(t, testCase.expected, fieldKey(testCase.label), testCase.label)
	}
}

func Test_sectionKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "cellularStatus", sectionKey("Cellular Status"))
	assert.Equal(t, "sIMCard", sectionKey("SIM Card"))
	assert.Equal(t, "wiFiStatus", sectionKey("WiFi  Status"))
}

func Test_convertValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(42), convertValue("42"))
	assert.Equal(t, 3.5, convertValue("3.5"))
	assert.Equal(t, "-75 dBm", convertValue("-75 dBm"))
	assert.Equal(t, "-75", convertValue("-75"))
	assert.Equal(t, "1.2.3", convertValue("1.2.3"))
}
