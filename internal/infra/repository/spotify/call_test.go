package spotify

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpotifyClient_Call(t *testing.T) {
	t.Run("sends bearer token and returns body", func(t *testing.T) {
		ts := newTestServer(t, nil, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))
			assert.Equal(t, "/v1/me", r.URL.Path)
			writeJSON(w, http.StatusOK, `{"ok":true}`)
		})
		client, _ := newTestClient(t, ts)

		body, err := client.call(context.Background(), "/me", time.Second)
		require.NoError(t, err)
		assert.JSONEq(t, `{"ok":true}`, string(body))
	})

	t.Run("timeout", func(t *testing.T) {
		ts := newTestServer(t, nil, func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(5 * time.Second):
			}
		})
		client, _ := newTestClient(t, ts)

		start := time.Now()
		_, err := client.call(context.Background(), "/slow", 50*time.Millisecond)

		assert.Less(t, time.Since(start), 2*time.Second)
		assert.ErrorIs(t, err, ErrTimeout)
		assert.NotErrorIs(t, err, ErrAPI)

		var timeoutErr *TimeoutError
		require.True(t, errors.As(err, &timeoutErr))
		assert.Equal(t, "/slow", timeoutErr.Path)
		assert.Equal(t, 50*time.Millisecond, timeoutErr.Timeout)
	})

	t.Run("server error", func(t *testing.T) {
		ts := newTestServer(t, nil, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusInternalServerError, `{"error":{"status":500,"message":"boom"}}`)
		})
		client, hook := newTestClient(t, ts)

		_, err := client.call(context.Background(), "/broken", time.Second)
		assert.ErrorIs(t, err, ErrAPI)

		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
		assert.Equal(t, "Internal Server Error", apiErr.Status)
		assert.Equal(t, "/broken", apiErr.Path)
		assert.Contains(t, apiErr.Body, "boom")

		entry := hook.LastEntry()
		require.NotNil(t, entry)
		assert.Equal(t, logrus.ErrorLevel, entry.Level)
		assert.Equal(t, "API error response", entry.Message)
	})

	t.Run("invalid json", func(t *testing.T) {
		ts := newTestServer(t, nil, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `<html>`)
		})
		client, _ := newTestClient(t, ts)

		_, err := client.call(context.Background(), "/html", time.Second)
		assert.ErrorIs(t, err, ErrAPI)
		assert.ErrorIs(t, err, errInvalidJSON)
	})

	t.Run("transport failure", func(t *testing.T) {
		ts := newTestServer(t, nil, nil)
		closed := httptest.NewServer(http.NotFoundHandler())
		closed.Close()

		client, _ := newTestClient(t, ts, func(c *SpotifyClientConfig) { c.APIBaseURL = closed.URL })

		_, err := client.call(context.Background(), "/unreachable", time.Second)
		assert.ErrorIs(t, err, ErrAPI)
		assert.NotErrorIs(t, err, ErrTimeout)

		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Zero(t, apiErr.StatusCode)
	})

	t.Run("auth failure skips the request", func(t *testing.T) {
		ts := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusBadRequest, `{"error":"invalid_client"}`)
		}, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `{}`)
		})
		client, _ := newTestClient(t, ts)

		_, err := client.call(context.Background(), "/me", time.Second)
		assert.ErrorIs(t, err, ErrAuth)
		assert.Zero(t, ts.apiRequests.Load())
	})

	t.Run("pacing wait past the deadline times out", func(t *testing.T) {
		ts := newTestServer(t, nil, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `{}`)
		})
		client, _ := newTestClient(t, ts, func(c *SpotifyClientConfig) { c.RequestsPerSecond = 0.01 })

		_, err := client.call(context.Background(), "/first", time.Second)
		require.NoError(t, err)

		_, err = client.call(context.Background(), "/second", 50*time.Millisecond)
		assert.ErrorIs(t, err, ErrTimeout)
		assert.EqualValues(t, 1, ts.apiRequests.Load())
	})
}
