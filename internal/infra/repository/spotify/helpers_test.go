package spotify

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

const testToken = "test-token"

type testServer struct {
	*httptest.Server
	tokenRequests atomic.Int32
	apiRequests   atomic.Int32
}

func tokenResponse(token string, expiresIn int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"access_token":%q,"token_type":"Bearer","expires_in":%d}`, token, expiresIn)
	}
}

// newTestServer serves the token endpoint at /api/token and the API under /v1/.
// A nil token handler issues testToken valid for an hour.
func newTestServer(t *testing.T, token, api http.HandlerFunc) *testServer {
	t.Helper()

	if token == nil {
		token = tokenResponse(testToken, 3600)
	}

	ts := &testServer{}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/token", func(w http.ResponseWriter, r *http.Request) {
		ts.tokenRequests.Add(1)
		token(w, r)
	})
	mux.HandleFunc("/v1/", func(w http.ResponseWriter, r *http.Request) {
		ts.apiRequests.Add(1)
		if api == nil {
			http.NotFound(w, r)
			return
		}
		api(w, r)
	})

	ts.Server = httptest.NewServer(mux)
	t.Cleanup(ts.Close)

	return ts
}

func newTestClient(t *testing.T, ts *testServer, configure ...func(*SpotifyClientConfig)) (*SpotifyClient, *test.Hook) {
	t.Helper()

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	config := SpotifyClientConfig{
		ClientID:     "test-id",
		ClientSecret: "test-secret",
		TokenURL:     ts.URL + "/api/token",
		APIBaseURL:   ts.URL + "/v1",
		Logger:       logger,
	}
	for _, fn := range configure {
		fn(&config)
	}

	client, err := New(config)
	require.NoError(t, err)

	return client, hook
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprint(w, body)
}

func countMessages(hook *test.Hook, message string) int {
	count := 0
	for _, entry := range hook.AllEntries() {
		if entry.Message == message {
			count++
		}
	}
	return count
}

// memoryTokenCache is a cache.Cache backed by a map.
type memoryTokenCache struct {
	mu     sync.Mutex
	values map[string]string
	ttls   map[string]time.Duration
	gets   int
}

func newMemoryTokenCache() *memoryTokenCache {
	return &memoryTokenCache{
		values: map[string]string{},
		ttls:   map[string]time.Duration{},
	}
}

func (c *memoryTokenCache) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gets++
	value, ok := c.values[key]
	if !ok {
		return "", fmt.Errorf("cache miss: %s", key)
	}
	return value, nil
}

func (c *memoryTokenCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.values[key] = string(value)
	c.ttls[key] = ttl
	return nil
}
