package spotify

import (
	"context"
	"errors"
	"net/http"

	appspotify "github.com/angristan/spotify-browse/internal/app/services/spotify"
	repository "github.com/angristan/spotify-browse/internal/infra/repository/spotify"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/codes"
)

func (h *SpotifyHandler) TopArtists(c *gin.Context) {
	respond(c, h, "SpotifyHandler.TopArtists", h.spotifyBrowseService.TopArtists)
}

func (h *SpotifyHandler) NewReleases(c *gin.Context) {
	respond(c, h, "SpotifyHandler.NewReleases", h.spotifyBrowseService.NewReleases)
}

func (h *SpotifyHandler) Playlists(c *gin.Context) {
	respond(c, h, "SpotifyHandler.Playlists", h.spotifyBrowseService.Playlists)
}

func (h *SpotifyHandler) FeaturedPlaylists(c *gin.Context) {
	respond(c, h, "SpotifyHandler.FeaturedPlaylists", h.spotifyBrowseService.FeaturedPlaylists)
}

func (h *SpotifyHandler) Categories(c *gin.Context) {
	respond(c, h, "SpotifyHandler.Categories", h.spotifyBrowseService.Categories)
}

func (h *SpotifyHandler) Home(c *gin.Context) {
	respond(c, h, "SpotifyHandler.Home", h.spotifyBrowseService.Home)
}

func respond[T any](c *gin.Context, h *SpotifyHandler, spanName string, fetch func(context.Context) (T, error)) {
	ctx, span := h.tracer.Start(c.Request.Context(), spanName)
	defer span.End()

	result, err := fetch(ctx)
	if err != nil {
		status, message := errorResponse(err)

		span.RecordError(err)
		span.SetStatus(codes.Error, message)
		h.logger.WithError(err).WithField("status", status).Error("Spotify request failed")

		c.JSON(status, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, result)
}

func errorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, repository.ErrTimeout):
		return http.StatusGatewayTimeout, "spotify request timed out"
	case errors.Is(err, repository.ErrAuth):
		return http.StatusBadGateway, "spotify authentication failed"
	case errors.Is(err, repository.ErrAPI), errors.Is(err, appspotify.ErrSpotifyClient):
		return http.StatusBadGateway, "spotify client error"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
