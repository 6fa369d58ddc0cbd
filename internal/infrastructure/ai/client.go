// Copyright The Projectly Authors.
// SPDX-License-Identifier: MIT

// Package ai is the HTTP client for the transcription and summary service.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand"
	"net/http"
	"time"

	"github.com/projectly/meeting-service/internal/domain"
	"github.com/projectly/meeting-service/internal/domain/models"
)

const (
	// DefaultClientTimeout is the default HTTP client timeout for AI service requests
	DefaultClientTimeout = 30 * time.Second
	// Default retry configuration
	DefaultMaxRetries        = 3
	DefaultInitialBackoff    = 1 * time.Second
	DefaultMaxBackoff        = 30 * time.Second
	DefaultBackoffMultiplier = 2.0
)

// Config holds the configuration for the AI service client
type Config struct {
	BaseURL string
	APIKey  string
	// Optional: override timeout for HTTP requests
	Timeout time.Duration
	// Optional: retry configuration
	MaxRetries        int
	InitialBackoff    time.Duration
	MaxBackoff        time.Duration
	BackoffMultiplier float64
}

// Client talks to the AI processing service over HTTP.
type Client struct {
	httpClient *http.Client
	config     Config
}

// Ensure that Client implements the domain port
var _ domain.AIClient = (*Client)(nil)

// NewClient creates a new AI service client
func NewClient(config Config) *Client {
	if config.Timeout == 0 {
		config.Timeout = DefaultClientTimeout
	}
	if config.MaxRetries == 0 {
		config.MaxRetries = DefaultMaxRetries
	}
	if config.InitialBackoff == 0 {
		config.InitialBackoff = DefaultInitialBackoff
	}
	if config.MaxBackoff == 0 {
		config.MaxBackoff = DefaultMaxBackoff
	}
	if config.BackoffMultiplier == 0 {
		config.BackoffMultiplier = DefaultBackoffMultiplier
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		config: config,
	}
}

type submitRequest struct {
	AudioURL string `json:"audio_url"`
	Language string `json:"language"`
}

type submitResponse struct {
	Token string `json:"token"`
}

type statusResponse struct {
	Done   bool   `json:"done"`
	Status string `json:"status"`
}

// SubmitAudio hands a readable audio URL to the service and returns the
// processing token for later polling.
func (c *Client) SubmitAudio(ctx context.Context, audioURL, language string) (string, error) {
	body := submitRequest{AudioURL: audioURL, Language: language}

	var out submitResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v1/submissions", body, &out); err != nil {
		return "", fmt.Errorf("submitting audio: %w", err)
	}
	if out.Token == "" {
		return "", fmt.Errorf("submitting audio: service returned empty token")
	}
	return out.Token, nil
}

// GetStatus polls a submission by token.
func (c *Client) GetStatus(ctx context.Context, token string) (bool, string, error) {
	var out statusResponse
	path := fmt.Sprintf("/v1/submissions/%s/status", token)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return false, "", fmt.Errorf("fetching submission status: %w", err)
	}
	return out.Done, out.Status, nil
}

// GetReport fetches the finished report for a token.
func (c *Client) GetReport(ctx context.Context, token string) (*models.AIReport, error) {
	var report models.AIReport
	path := fmt.Sprintf("/v1/submissions/%s/report", token)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &report); err != nil {
		return nil, fmt.Errorf("fetching submission report: %w", err)
	}
	return &report, nil
}

// doJSON performs an authenticated request with retry logic and decodes the
// JSON response into out.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var jsonBody []byte
	if body != nil {
		var err error
		jsonBody, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	url := c.config.BaseURL + path
	var lastErr error
	var lastStatus int

	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := c.calculateBackoff(attempt - 1)
			slog.DebugContext(ctx, "retrying AI service request",
				"method", method,
				"path", path,
				"attempt", attempt,
				"backoff", backoff,
			)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		resp, err := c.execute(ctx, method, url, jsonBody)
		if err != nil {
			lastErr, lastStatus = err, 0
			continue
		}

		if resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests {
			lastErr = fmt.Errorf("AI service returned status %d", resp.StatusCode)
			lastStatus = resp.StatusCode
			_ = resp.Body.Close()
			continue
		}

		return decodeResponse(resp, out)
	}

	slog.ErrorContext(ctx, "AI service request failed after retries",
		"method", method,
		"path", path,
		"status_code", lastStatus,
		"max_retries", c.config.MaxRetries,
	)
	return lastErr
}

func (c *Client) execute(ctx context.Context, method, url string, jsonBody []byte) (*http.Response, error) {
	var bodyReader io.Reader
	if jsonBody != nil {
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	}

	return c.httpClient.Do(req)
}

func decodeResponse(resp *http.Response, out any) error {
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("AI service returned status %d: %s", resp.StatusCode, string(payload))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// calculateBackoff calculates the backoff duration for a retry attempt with jitter
func (c *Client) calculateBackoff(attempt int) time.Duration {
	if attempt <= 0 {
		return c.config.InitialBackoff
	}

	backoff := float64(c.config.InitialBackoff) * math.Pow(c.config.BackoffMultiplier, float64(attempt))
	if time.Duration(backoff) > c.config.MaxBackoff {
		backoff = float64(c.config.MaxBackoff)
	}

	// Jitter of up to ±25% prevents synchronized retries.
	jitter := backoff * 0.25 * (rand.Float64()*2 - 1)
	backoffWithJitter := time.Duration(backoff + jitter)
	if backoffWithJitter < c.config.InitialBackoff {
		backoffWithJitter = c.config.InitialBackoff
	}

	return backoffWithJitter
}
