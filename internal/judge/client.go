// Package judge implements the criterion-judge contract: structured-JSON
// calls to an external language model with retry, failure classification,
// lenient response reconstruction, and cumulative usage tracking.
package judge

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kaptinlin/jsonrepair"
	"go.uber.org/zap"
)

// Client is the judge transport contract: one logical call sends a system
// instruction plus user context and yields a parsed JSON object.
type Client interface {
	Complete(ctx context.Context, system, user string) (map[string]any, error)
	Usage() UsageSnapshot
	ResetUsage() UsageSnapshot
}

// Options configures the HTTP judge client.
type Options struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
	Backoff     BackoffPolicy
	HTTPClient  *http.Client
	Logger      *zap.Logger

	sleep func(ctx context.Context, d time.Duration) error
}

// Option mutates the client options.
type Option func(*Options)

func WithBaseURL(url string) Option {
	return func(o *Options) { o.BaseURL = url }
}

func WithAPIKey(key string) Option {
	return func(o *Options) { o.APIKey = key }
}

func WithModel(model string) Option {
	return func(o *Options) { o.Model = model }
}

func WithTemperature(t float64) Option {
	return func(o *Options) { o.Temperature = t }
}

func WithMaxTokens(n int) Option {
	return func(o *Options) { o.MaxTokens = n }
}

func WithTimeout(d time.Duration) Option {
	return func(o *Options) { o.Timeout = d }
}

func WithBackoff(p BackoffPolicy) Option {
	return func(o *Options) { o.Backoff = p }
}

func WithHTTPClient(c *http.Client) Option {
	return func(o *Options) { o.HTTPClient = c }
}

func WithLogger(l *zap.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// withSleep replaces the retry sleep, letting tests run without timers.
func withSleep(fn func(ctx context.Context, d time.Duration) error) Option {
	return func(o *Options) { o.sleep = fn }
}

// HTTPClient talks to an OpenAI-compatible chat-completions endpoint and
// enforces a JSON-object response format on every call.
type HTTPClient struct {
	opts   Options
	http   *http.Client
	logger *zap.Logger
	usage  usageTracker
}

// NewHTTPClient builds a client from options.
func NewHTTPClient(opts ...Option) (*HTTPClient, error) {
	options := Options{
		BaseURL:     "https://api.openai.com/v1",
		Model:       "gpt-4o",
		Temperature: 0.1,
		MaxTokens:   2000,
		Timeout:     30 * time.Second,
		Backoff:     DefaultBackoff(),
		Logger:      zap.NewNop(),
		sleep: func(ctx context.Context, d time.Duration) error {
			select {
			case <-time.After(d):
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	}
	for _, opt := range opts {
		opt(&options)
	}

	if options.APIKey == "" {
		return nil, fmt.Errorf("judge API key is required")
	}
	if options.Backoff.MaxAttempts < 1 {
		return nil, fmt.Errorf("backoff must allow at least one attempt")
	}

	httpClient := options.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.Timeout}
	}

	return &HTTPClient{
		opts:   options,
		http:   httpClient,
		logger: options.Logger.Named("judge-client"),
	}, nil
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	Temperature    float64       `json:"temperature"`
	MaxTokens      int           `json:"max_tokens"`
	ResponseFormat formatSpec    `json:"response_format"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type formatSpec struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int64 `json:"prompt_tokens"`
		CompletionTokens int64 `json:"completion_tokens"`
	} `json:"usage"`
}

// Complete performs one logical judge call, retrying transient failures per
// the backoff policy. On exhaustion it returns an ExhaustedError wrapping
// the last classified cause.
func (c *HTTPClient) Complete(ctx context.Context, system, user string) (map[string]any, error) {
	var lastErr error
	for attempt := 0; attempt < c.opts.Backoff.MaxAttempts; attempt++ {
		result, err := c.complete(ctx, system, user)
		if err == nil {
			return result, nil
		}
		if !retryable(err) {
			return nil, err
		}

		lastErr = err
		if attempt == c.opts.Backoff.MaxAttempts-1 {
			break
		}
		delay := c.opts.Backoff.Delay(attempt)
		c.logger.Warn("judge call failed, retrying",
			zap.Int("attempt", attempt+1),
			zap.Duration("delay", delay),
			zap.Error(err))
		if err := c.opts.sleep(ctx, delay); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
	}
	return nil, &ExhaustedError{Attempts: c.opts.Backoff.MaxAttempts, Cause: lastErr}
}

func (c *HTTPClient) complete(ctx context.Context, system, user string) (map[string]any, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	body, err := json.Marshal(chatRequest{
		Model: c.opts.Model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature:    c.opts.Temperature,
		MaxTokens:      c.opts.MaxTokens,
		ResponseFormat: formatSpec{Type: "json_object"},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: marshal request: %v", ErrInvalidRequest, err)
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost,
		c.opts.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrInvalidRequest, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.opts.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || reqCtx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrConnection, err)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("%w: status %d", ErrRateLimited, resp.StatusCode)
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("%w: status %d", ErrConnection, resp.StatusCode)
	case resp.StatusCode >= 400:
		return nil, fmt.Errorf("%w: status %d: %s", ErrInvalidRequest, resp.StatusCode, truncateBody(raw))
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("%w: decode envelope: %v", ErrInvalidResponse, err)
	}
	c.usage.add(parsed.Usage.PromptTokens, parsed.Usage.CompletionTokens)

	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("%w: empty completion", ErrInvalidResponse)
	}

	return decodeObject(parsed.Choices[0].Message.Content)
}

// decodeObject parses the completion content as a JSON object, attempting a
// repair pass on malformed payloads before giving up.
func decodeObject(content string) (map[string]any, error) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(content), &obj); err == nil {
		return obj, nil
	}

	repaired, err := jsonrepair.JSONRepair(content)
	if err != nil {
		return nil, fmt.Errorf("%w: unparseable payload", ErrInvalidResponse)
	}
	if err := json.Unmarshal([]byte(repaired), &obj); err != nil {
		return nil, fmt.Errorf("%w: payload is not a JSON object", ErrInvalidResponse)
	}
	return obj, nil
}

// Usage returns the cumulative token usage.
func (c *HTTPClient) Usage() UsageSnapshot {
	return c.usage.current()
}

// ResetUsage zeroes the counters and returns the final snapshot.
func (c *HTTPClient) ResetUsage() UsageSnapshot {
	return c.usage.reset()
}

func truncateBody(raw []byte) string {
	const max = 256
	if len(raw) > max {
		return string(raw[:max]) + "..."
	}
	return string(raw)
}
