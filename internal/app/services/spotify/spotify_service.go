package spotify

import (
	"fmt"

	"go.opentelemetry.io/otel/trace"
)

type SpotifyBrowseService struct {
	tracer        trace.Tracer
	spotifyClient SpotifyClient
}

func New(
	tracer trace.Tracer,
	spotifyClient SpotifyClient,
) SpotifyBrowseService {
	return SpotifyBrowseService{
		tracer:        tracer,
		spotifyClient: spotifyClient,
	}
}

var (
	ErrSpotifyClient = fmt.Errorf("spotify client error")
)
