package server_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	server "github.com/angristan/spotify-browse/internal/infra/http"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type routeRecorder struct{}

func (routeRecorder) TopArtists(c *gin.Context)        { c.String(http.StatusOK, "TopArtists") }
func (routeRecorder) NewReleases(c *gin.Context)       { c.String(http.StatusOK, "NewReleases") }
func (routeRecorder) Playlists(c *gin.Context)         { c.String(http.StatusOK, "Playlists") }
func (routeRecorder) FeaturedPlaylists(c *gin.Context) { c.String(http.StatusOK, "FeaturedPlaylists") }
func (routeRecorder) Categories(c *gin.Context)        { c.String(http.StatusOK, "Categories") }
func (routeRecorder) Home(c *gin.Context)              { c.String(http.StatusOK, "Home") }

func TestServer_Routes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	srv, err := server.New(server.NewConfig("1323", true), routeRecorder{})
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:1323", srv.Addr)

	routes := map[string]string{
		"/home":                "Home",
		"/artists/top":         "TopArtists",
		"/albums/new-releases": "NewReleases",
		"/playlists":           "Playlists",
		"/playlists/featured":  "FeaturedPlaylists",
		"/categories":          "Categories",
	}

	for path, want := range routes {
		t.Run(path, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			srv.Handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))

			assert.Equal(t, http.StatusOK, recorder.Code)
			assert.Equal(t, want, recorder.Body.String())
		})
	}

	t.Run("unknown route", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		srv.Handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/search/artist/twice", nil))
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestServer_InvalidPort(t *testing.T) {
	_, err := server.New(server.NewConfig("http", true), routeRecorder{})
	assert.Error(t, err)
}
