package spotify

import (
	"context"

	spotifyLib "github.com/zmb3/spotify/v2"
)

type SpotifyClient interface {
	TopArtists(ctx context.Context) ([]spotifyLib.FullArtist, error)
	NewReleases(ctx context.Context) ([]spotifyLib.SimpleAlbum, error)
	Playlists(ctx context.Context) ([]spotifyLib.SimplePlaylist, error)
	FeaturedPlaylists(ctx context.Context) ([]spotifyLib.SimplePlaylist, error)
	Categories(ctx context.Context) ([]spotifyLib.Category, error)
}
