package server

import (
	"github.com/gin-gonic/gin"
)

type SpotifyHandler interface {
	TopArtists(ctx *gin.Context)
	NewReleases(ctx *gin.Context)
	Playlists(ctx *gin.Context)
	FeaturedPlaylists(ctx *gin.Context)
	Categories(ctx *gin.Context)
	Home(ctx *gin.Context)
}
