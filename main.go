package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appspotify "github.com/angristan/spotify-browse/internal/app/services/spotify"
	server "github.com/angristan/spotify-browse/internal/infra/http"
	handler "github.com/angristan/spotify-browse/internal/infra/http/handlers/spotify"
	cacheRedis "github.com/angristan/spotify-browse/internal/infra/repository/cache/redis"
	"github.com/angristan/spotify-browse/internal/infra/repository/spotify"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
)

func main() {
	err := LoadEnv()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load environment variables")
	}

	config := GetEnv()
	setupLogger(config)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := setupTracing(ctx, config.OTLPEndpoint)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to set up tracing")
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logrus.WithError(err).Warn("Failed to flush traces")
		}
	}()

	tracer := otel.Tracer(serviceName)

	clientConfig := spotify.SpotifyClientConfig{
		ClientID:          config.SpotifyClientID,
		ClientSecret:      config.SpotifyClientSecret,
		HTTPClient:        &http.Client{Timeout: 30 * time.Second},
		Timeout:           config.SpotifyTimeout,
		RequestsPerSecond: config.SpotifyRPS,
		Logger:            logrus.StandardLogger(),
		Tracer:            tracer,
	}

	if config.RedisURL != "" {
		tokenCache, err := cacheRedis.NewCacheFromURL(ctx, config.RedisURL, 0)
		if err != nil {
			logrus.WithError(err).Fatal("Failed to connect to Redis")
		}
		defer tokenCache.Close()

		clientConfig.TokenCache = tokenCache
	}

	spotifyClient, err := spotify.New(clientConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create Spotify client")
	}

	browseService := appspotify.New(tracer, spotifyClient)
	spotifyHandler := handler.New(tracer, logrus.StandardLogger(), browseService)

	srv, err := server.New(server.NewConfig(config.Port, false), spotifyHandler)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create HTTP server")
	}

	go func() {
		logrus.WithField("addr", srv.Addr).Info("Starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("HTTP server failed")
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Failed to shut down HTTP server")
	}
}
