package metrics_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fivegen-LLC/peplink-monitor/internal/domains/metrics"
	"github.com/Fivegen-LLC/peplink-monitor/internal/errs"
)

func scrape(t *testing.T, service *metrics.Service) string {
	t.Helper()

	server := httptest.NewServer(service.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL + "/metrics") //nolint:noctx // test
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return string(body)
}

func TestService_Observe(t *testing.T) {
	t.Parallel()

	service := metrics.NewService()
	service.ObserveQuality("T-Mobile", 0.52)
	service.ObserveNoData("Verizon")
	service.ObserveFailure("T-Mobile", fmt.Errorf("Run: %w", errs.ErrTimeout))

	body := scrape(t, service)
	assert.Contains(t, body, `peplink_cellular_signal_quality_ratio{connection="T-Mobile"} 0.52`)
	assert.NotContains(t, body, `peplink_cellular_signal_quality_ratio{connection="Verizon"}`)
	assert.Contains(t, body, `peplink_poll_total{connection="T-Mobile",result="ok"} 1`)
	assert.Contains(t, body, `peplink_poll_total{connection="T-Mobile",result="error"} 1`)
	assert.Contains(t, body, `peplink_poll_total{connection="Verizon",result="null"} 1`)
	assert.Contains(t, body, `peplink_poll_errors_total{connection="T-Mobile",kind="timeout"} 1`)
}

func TestService_NoDataClearsQuality(t *testing.T) {
	t.Parallel()

	service := metrics.NewService()
	service.ObserveQuality("T-Mobile", 0.8)
	service.ObserveNoData("T-Mobile")

	body := scrape(t, service)
	assert.NotContains(t, body, `peplink_cellular_signal_quality_ratio{connection="T-Mobile"}`)
}

func TestService_Health(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(metrics.NewService().Handler())
	defer server.Close()

	resp, err := http.Get(server.URL + "/health") //nolint:noctx // test
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestService_Serve(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = metrics.NewService().Serve(ctx, "127.0.0.1:0")
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestErrorKind(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "timeout", err: fmt.Errorf("Query: %w", errs.ErrTimeout), expected: "timeout"},
		{name: "no data", err: fmt.Errorf("Run: %w: %w", errs.ErrSession, errs.ErrNoData), expected: "no_data"},
		{name: "session", err: fmt.Errorf("Run: %w", errs.ErrSession), expected: "session"},
		{name: "configuration", err: errs.ErrConfiguration, expected: "configuration"},
		{name: "invalid quality", err: errs.ErrInvalidSignalQuality, expected: "invalid_quality"},
		{name: "canceled", err: fmt.Errorf("Run: %w", context.Canceled), expected: "canceled"},
		{name: "other", err: errors.New("boom"), expected: "other"},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, metrics.ErrorKind(testCase.err))
		})
	}
}
