// Copyright The Projectly Authors.
// SPDX-License-Identifier: MIT

package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *Client {
	return NewClient(Config{
		BaseURL:        baseURL,
		APIKey:         "test-key",
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
	})
}

func TestSubmitAudio(t *testing.T) {
	t.Run("successful submission", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/submissions", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

			var body submitRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "https://example.com/audio.mp3", body.AudioURL)
			assert.Equal(t, "en", body.Language)

			_ = json.NewEncoder(w).Encode(submitResponse{Token: "tok-123"})
		}))
		defer server.Close()

		token, err := newTestClient(server.URL).SubmitAudio(context.Background(), "https://example.com/audio.mp3", "en")
		require.NoError(t, err)
		assert.Equal(t, "tok-123", token)
	})

	t.Run("empty token is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(submitResponse{})
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).SubmitAudio(context.Background(), "https://example.com/audio.mp3", "en")
		assert.Error(t, err)
	})

	t.Run("retries on server error", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) < 3 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			_ = json.NewEncoder(w).Encode(submitResponse{Token: "tok-after-retry"})
		}))
		defer server.Close()

		token, err := newTestClient(server.URL).SubmitAudio(context.Background(), "https://example.com/audio.mp3", "en")
		require.NoError(t, err)
		assert.Equal(t, "tok-after-retry", token)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("does not retry client errors", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).SubmitAudio(context.Background(), "https://example.com/audio.mp3", "en")
		assert.Error(t, err)
		assert.Equal(t, int32(1), calls.Load())
	})
}

func TestGetStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/submissions/tok-123/status", r.URL.Path)
		_ = json.NewEncoder(w).Encode(statusResponse{Done: true, Status: "completed"})
	}))
	defer server.Close()

	done, status, err := newTestClient(server.URL).GetStatus(context.Background(), "tok-123")
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, "completed", status)
}

func TestGetReport(t *testing.T) {
	t.Run("successful fetch", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/submissions/tok-123/report", r.URL.Path)
			_, _ = w.Write([]byte(`{"transcript":"hello","summary":"short","key_points":["a","b"]}`))
		}))
		defer server.Close()

		report, err := newTestClient(server.URL).GetReport(context.Background(), "tok-123")
		require.NoError(t, err)
		assert.Equal(t, "hello", report.Transcript)
		assert.Equal(t, "short", report.Summary)
		assert.Equal(t, []string{"a", "b"}, report.KeyPoints)
	})

	t.Run("not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).GetReport(context.Background(), "tok-unknown")
		assert.Error(t, err)
	})
}
