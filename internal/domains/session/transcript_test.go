package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fivegen-LLC/peplink-monitor/internal/domains/session"
	"github.com/Fivegen-LLC/peplink-monitor/internal/errs"
)

func TestExtractTranscript(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name        string
		output      string
		expected    string
		expectedErr error
	}{
		{
			name: "prompt bounded",
			output: "banner\r\nPeplink> get wan\r\n" +
				"WAN Connection [1]\r\n" +
				"Connection Name : T-Mobile\r\n" +
				"\r\n" +
				"    Cellular Status\r\n" +
				"Peplink> exit\r\n" +
				"WAN Connection [9]\r\n",
			expected: "WAN Connection [1]\nConnection Name : T-Mobile\n    Cellular Status",
		},
		{
			name:     "no closing prompt",
			output:   "WAN Connection [1]\nConnection Name : Starlink\n",
			expected: "WAN Connection [1]\nConnection Name : Starlink",
		},
		{
			name:     "prompt line mentioning WAN Connection is skipped, not a boundary",
			output:   "WAN Connection [1]\n> WAN Connection [2]\nConnection Name : WiFi\n> ",
			expected: "WAN Connection [1]\nConnection Name : WiFi",
		},
		{
			name:        "no marker",
			output:      "Peplink> get wan\r\n% Unknown command\r\nPeplink> ",
			expectedErr: errs.ErrNoData,
		},
		{
			name:        "empty output",
			output:      "",
			expectedErr: errs.ErrNoData,
		},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			transcript, err := session.ExtractTranscript(testCase.output)
			if testCase.expectedErr != nil {
				require.ErrorIs(t, err, testCase.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCase.expected, transcript)
		})
	}
}
