package server

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

type Server struct {
	*http.Server
}

func New(cfg Config, sh SpotifyHandler) (*Server, error) {
	engine := gin.New()

	httpPort, err := strconv.Atoi(cfg.Port)
	if err != nil {
		return nil, fmt.Errorf("invalid port %q: %w", cfg.Port, err)
	}

	if !cfg.disableMiddleware {
		engine.Use(gin.Recovery())
		engine.Use(gin.Logger())
		engine.Use(otelgin.Middleware("spotify-browse"))
	}

	engine.GET("/home", sh.Home)
	engine.GET("/artists/top", sh.TopArtists)
	engine.GET("/albums/new-releases", sh.NewReleases)
	engine.GET("/playlists", sh.Playlists)
	engine.GET("/playlists/featured", sh.FeaturedPlaylists)
	engine.GET("/categories", sh.Categories)

	// Playlists can spend two request timeouts: the search, then the fallback round.
	internalServer := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%d", httpPort),
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return &Server{internalServer}, nil
}
