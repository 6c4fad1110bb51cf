package spotify

import (
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"
)

type SpotifyHandler struct {
	tracer               trace.Tracer
	logger               logrus.FieldLogger
	spotifyBrowseService SpotifyService
}

func New(
	tracer trace.Tracer,
	logger logrus.FieldLogger,
	spotifyBrowseService SpotifyService,
) *SpotifyHandler {
	return &SpotifyHandler{
		tracer:               tracer,
		logger:               logger,
		spotifyBrowseService: spotifyBrowseService,
	}
}
