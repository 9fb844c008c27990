package judge_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/godilite/review-server/internal/judge"
)

// fastBackoff keeps retry tests quick without changing the attempt count.
func fastBackoff() judge.BackoffPolicy {
	return judge.BackoffPolicy{
		Delays:      []time.Duration{time.Millisecond},
		MaxAttempts: 3,
	}
}

func completionEnvelope(content string, promptTokens, completionTokens int64) []byte {
	envelope := map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
		"usage": map[string]any{
			"prompt_tokens":     promptTokens,
			"completion_tokens": completionTokens,
		},
	}
	raw, _ := json.Marshal(envelope)
	return raw
}

func newTestClient(t *testing.T, serverURL string) *judge.HTTPClient {
	t.Helper()
	client, err := judge.NewHTTPClient(
		judge.WithBaseURL(serverURL),
		judge.WithAPIKey("test-key"),
		judge.WithBackoff(fastBackoff()),
	)
	require.NoError(t, err)
	return client
}

func TestNewHTTPClientValidation(t *testing.T) {
	t.Run("api key required", func(t *testing.T) {
		_, err := judge.NewHTTPClient()
		assert.Error(t, err)
	})

	t.Run("at least one attempt required", func(t *testing.T) {
		_, err := judge.NewHTTPClient(
			judge.WithAPIKey("k"),
			judge.WithBackoff(judge.BackoffPolicy{}),
		)
		assert.Error(t, err)
	})
}

func TestCompleteSuccess(t *testing.T) {
	var authHeader atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader.Store(r.Header.Get("Authorization"))

		var req map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "json_object", req["response_format"].(map[string]any)["type"])

		w.Write(completionEnvelope(`{"score": 8, "reasoning": "solid notes"}`, 120, 40))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	obj, err := client.Complete(context.Background(), "system", "user")
	require.NoError(t, err)
	assert.Equal(t, float64(8), obj["score"])
	assert.Equal(t, "solid notes", obj["reasoning"])
	assert.Equal(t, "Bearer test-key", authHeader.Load())

	usage := client.Usage()
	assert.Equal(t, int64(120), usage.PromptTokens)
	assert.Equal(t, int64(40), usage.CompletionTokens)
	assert.Equal(t, int64(160), usage.TotalTokens)
	assert.Equal(t, int64(1), usage.RequestCount)
}

func TestCompleteRetriesRateLimit(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write(completionEnvelope(`{"score": 5}`, 10, 5))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	obj, err := client.Complete(context.Background(), "system", "user")
	require.NoError(t, err)
	assert.Equal(t, float64(5), obj["score"])
	assert.Equal(t, int32(3), atomic.LoadInt32(&hits))
}

func TestCompleteExhaustsRetries(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.Complete(context.Background(), "system", "user")
	require.Error(t, err)

	var exhausted *judge.ExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, 3, exhausted.Attempts)
	assert.True(t, errors.Is(err, judge.ErrConnection))
	assert.Equal(t, int32(3), atomic.LoadInt32(&hits))
}

func TestCompleteDoesNotRetryClientErrors(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "model not found"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.Complete(context.Background(), "system", "user")
	require.Error(t, err)
	assert.True(t, errors.Is(err, judge.ErrInvalidRequest))
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestCompleteRepairsMalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Trailing comma: invalid JSON that the repair pass can recover.
		w.Write(completionEnvelope(`{"score": 7, "evidence": "ok",}`, 10, 5))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	obj, err := client.Complete(context.Background(), "system", "user")
	require.NoError(t, err)
	assert.Equal(t, float64(7), obj["score"])
}

func TestCompleteEmptyCompletion(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte(`{"choices": [], "usage": {"prompt_tokens": 10, "completion_tokens": 0}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.Complete(context.Background(), "system", "user")
	require.Error(t, err)
	assert.True(t, errors.Is(err, judge.ErrInvalidResponse))
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestUsageAccumulatesAndResets(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(completionEnvelope(`{"score": 1}`, 100, 50))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	for i := 0; i < 3; i++ {
		_, err := client.Complete(context.Background(), "system", "user")
		require.NoError(t, err)
	}

	usage := client.Usage()
	assert.Equal(t, int64(300), usage.PromptTokens)
	assert.Equal(t, int64(150), usage.CompletionTokens)
	assert.Equal(t, int64(3), usage.RequestCount)

	final := client.ResetUsage()
	assert.Equal(t, int64(450), final.TotalTokens)

	after := client.Usage()
	assert.Zero(t, after.TotalTokens)
	assert.Zero(t, after.RequestCount)
}

func TestEstimatedCost(t *testing.T) {
	snapshot := judge.UsageSnapshot{
		PromptTokens:     1_000_000,
		CompletionTokens: 500_000,
	}
	assert.InDelta(t, 7.50, snapshot.EstimatedCost(), 0.001)

	assert.Zero(t, judge.UsageSnapshot{}.EstimatedCost())
}
