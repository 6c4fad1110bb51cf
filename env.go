package main

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Env struct {
	SpotifyClientID     string        `env:"SPOTIFY_CLIENT_ID" env-required:"true"`
	SpotifyClientSecret string        `env:"SPOTIFY_CLIENT_SECRET" env-required:"true"`
	SpotifyTimeout      time.Duration `env:"SPOTIFY_TIMEOUT" env-default:"10s"`
	SpotifyRPS          float64       `env:"SPOTIFY_RPS" env-default:"0"`

	// Shares the access token between replicas when set.
	RedisURL string `env:"REDIS_URL"`

	Port string `env:"PORT" env-default:"1323"`

	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`

	LogFormat string `env:"LOG_FORMAT" env-default:"json"`
	LogLevel  string `env:"LOG_LEVEL" env-default:"info"`
}

var env Env

func LoadEnv() error {
	err := godotenv.Load()
	if err != nil {
		logrus.WithError(err).Warn("Failed to load env variables from file")
	}

	return cleanenv.ReadEnv(&env)
}

func GetEnv() *Env {
	return &env
}

func setupLogger(config *Env) {
	if config.LogFormat == "text" {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	level, err := logrus.ParseLevel(config.LogLevel)
	if err != nil {
		logrus.WithError(err).Warnf("Unknown log level %q, using info", config.LogLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}
