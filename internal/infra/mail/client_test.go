package mail

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"content-service/internal/infra/httpclient"
)

const testEndpoint = "https://mail.example.com/api/messages"

func newTestClient() *Client {
	cfg := Config{
		From: "noreply@example.com",
		To:   []string{"ops@example.com"},
		HTTP: httpclient.ClientConfig{
			BaseURL: "https://mail.example.com",
			Timeout: 5 * time.Second,
			Retry: httpclient.RetryConfig{
				MaxAttempts: 3,
				WaitTime:    10 * time.Millisecond,
				MaxWaitTime: 50 * time.Millisecond,
			},
			CB: httpclient.CBConfig{
				MaxRequests:  5,
				Interval:     60 * time.Second,
				Timeout:      15 * time.Second,
				FailureRatio: 0.6,
			},
		},
	}
	client := New(cfg, zap.NewNop())

	// Activate httpmock for this client's HTTP transport
	httpmock.ActivateNonDefault(client.client.GetClient())

	return client
}

func TestSend_Success(t *testing.T) {
	client := newTestClient()
	defer httpmock.DeactivateAndReset()

	var got Message
	httpmock.RegisterResponder(http.MethodPost, testEndpoint,
		func(req *http.Request) (*http.Response, error) {
			require.NoError(t, json.NewDecoder(req.Body).Decode(&got))

			return httpmock.NewJsonResponse(http.StatusAccepted, map[string]string{"status": "queued"})
		},
	)

	err := client.Send(context.Background(), "Hot content digest", "top items ...")
	require.NoError(t, err)

	assert.Equal(t, "noreply@example.com", got.From)
	assert.Equal(t, []string{"ops@example.com"}, got.To)
	assert.Equal(t, "Hot content digest", got.Subject)
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
}

func TestSend_RetriesOn5xx(t *testing.T) {
	client := newTestClient()
	defer httpmock.DeactivateAndReset()

	calls := 0
	httpmock.RegisterResponder(http.MethodPost, testEndpoint,
		func(_ *http.Request) (*http.Response, error) {
			calls++
			if calls < 3 {
				return httpmock.NewStringResponse(http.StatusBadGateway, "relay down"), nil
			}

			return httpmock.NewJsonResponse(http.StatusAccepted, map[string]string{"status": "queued"})
		},
	)

	err := client.Send(context.Background(), "digest", "body")
	require.NoError(t, err)
	assert.Equal(t, 3, calls, "expected two retries before success")
}

func TestSend_ClientErrorNotRetried(t *testing.T) {
	client := newTestClient()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(http.MethodPost, testEndpoint,
		httpmock.NewStringResponder(http.StatusUnprocessableEntity, "bad recipient"),
	)

	err := client.Send(context.Background(), "digest", "body")
	require.Error(t, err)
	assert.Equal(t, 1, httpmock.GetTotalCallCount(), "4xx must not be retried")
}

func TestSend_BreakerOpensAfterFailures(t *testing.T) {
	client := newTestClient()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(http.MethodPost, testEndpoint,
		httpmock.NewStringResponder(http.StatusInternalServerError, "boom"),
	)

	// Exhaust retries repeatedly until the breaker trips
	for i := 0; i < 5; i++ {
		err := client.Send(context.Background(), "digest", "body")
		require.Error(t, err)
	}

	before := httpmock.GetTotalCallCount()
	err := client.Send(context.Background(), "digest", "body")
	require.Error(t, err)
	assert.Equal(t, before, httpmock.GetTotalCallCount(), "open breaker must short-circuit without calling out")
}

func TestHealthCheck(t *testing.T) {
	client := newTestClient()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(http.MethodGet, "https://mail.example.com/health",
		httpmock.NewStringResponder(http.StatusOK, `{"status":"healthy"}`),
	)

	assert.NoError(t, client.HealthCheck(context.Background()))

	httpmock.RegisterResponder(http.MethodGet, "https://mail.example.com/health",
		httpmock.NewStringResponder(http.StatusServiceUnavailable, "down"),
	)

	assert.Error(t, client.HealthCheck(context.Background()))
}
