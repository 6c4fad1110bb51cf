package spotify

import (
	"context"

	appspotify "github.com/angristan/spotify-browse/internal/app/services/spotify"
	spotifyLib "github.com/zmb3/spotify/v2"
)

type SpotifyService interface {
	TopArtists(ctx context.Context) ([]spotifyLib.FullArtist, error)
	NewReleases(ctx context.Context) ([]spotifyLib.SimpleAlbum, error)
	Playlists(ctx context.Context) ([]spotifyLib.SimplePlaylist, error)
	FeaturedPlaylists(ctx context.Context) ([]spotifyLib.SimplePlaylist, error)
	Categories(ctx context.Context) ([]spotifyLib.Category, error)
	Home(ctx context.Context) (appspotify.Home, error)
}
