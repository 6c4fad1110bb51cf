package spotify

import (
	"net/http"
	"sync"
	"time"

	"github.com/angristan/spotify-browse/internal/infra/repository/cache"
	"github.com/sirupsen/logrus"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"
)

const (
	DefaultAPIBaseURL = "https://api.spotify.com/v1"
	DefaultTimeout    = 10 * time.Second
)

type SpotifyClientConfig struct {
	ClientID     string
	ClientSecret string

	// TokenURL and APIBaseURL default to the public Spotify endpoints.
	TokenURL   string
	APIBaseURL string

	HTTPClient *http.Client
	Timeout    time.Duration

	// RequestsPerSecond paces resource requests. Zero disables pacing.
	RequestsPerSecond float64

	// TokenCache shares the access token between processes. Optional.
	TokenCache cache.Cache

	Logger logrus.FieldLogger
	Tracer trace.Tracer
}

type SpotifyClient struct {
	tracer      trace.Tracer
	logger      logrus.FieldLogger
	httpClient  *http.Client
	credentials clientcredentials.Config
	baseURL     string
	timeout     time.Duration
	limiter     *rate.Limiter
	tokenCache  cache.Cache
	tokenKey    string
	now         func() time.Time

	tokenMu sync.Mutex
	token   cachedToken
}

func New(config SpotifyClientConfig) (*SpotifyClient, error) {
	if config.ClientID == "" || config.ClientSecret == "" {
		return nil, ErrMissingCredentials
	}

	tokenURL := config.TokenURL
	if tokenURL == "" {
		tokenURL = spotifyauth.TokenURL
	}

	baseURL := config.APIBaseURL
	if baseURL == "" {
		baseURL = DefaultAPIBaseURL
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	timeout := config.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	logger := config.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	tracer := config.Tracer
	if tracer == nil {
		tracer = otel.Tracer("spotify-client")
	}

	var limiter *rate.Limiter
	if config.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(config.RequestsPerSecond), 1)
	}

	return &SpotifyClient{
		tracer:     tracer,
		logger:     logger.WithField("component", "spotify"),
		httpClient: httpClient,
		credentials: clientcredentials.Config{
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
			TokenURL:     tokenURL,
			AuthStyle:    oauth2.AuthStyleInHeader,
		},
		baseURL:    baseURL,
		timeout:    timeout,
		limiter:    limiter,
		tokenCache: config.TokenCache,
		tokenKey:   "spotify:token:" + config.ClientID,
		now:        time.Now,
	}, nil
}
