package spotify

import (
	"context"
	"fmt"

	spotifyLib "github.com/zmb3/spotify/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"
)

// Home is everything the landing page shows, fetched in one go.
type Home struct {
	TopArtists  []spotifyLib.FullArtist     `json:"top_artists"`
	NewReleases []spotifyLib.SimpleAlbum    `json:"new_releases"`
	Playlists   []spotifyLib.SimplePlaylist `json:"playlists"`
	Categories  []spotifyLib.Category       `json:"categories"`
}

func (s SpotifyBrowseService) TopArtists(ctx context.Context) ([]spotifyLib.FullArtist, error) {
	return browse(ctx, s, "TopArtists", s.spotifyClient.TopArtists)
}

func (s SpotifyBrowseService) NewReleases(ctx context.Context) ([]spotifyLib.SimpleAlbum, error) {
	return browse(ctx, s, "NewReleases", s.spotifyClient.NewReleases)
}

func (s SpotifyBrowseService) Playlists(ctx context.Context) ([]spotifyLib.SimplePlaylist, error) {
	return browse(ctx, s, "Playlists", s.spotifyClient.Playlists)
}

func (s SpotifyBrowseService) FeaturedPlaylists(ctx context.Context) ([]spotifyLib.SimplePlaylist, error) {
	return browse(ctx, s, "FeaturedPlaylists", s.spotifyClient.FeaturedPlaylists)
}

func (s SpotifyBrowseService) Categories(ctx context.Context) ([]spotifyLib.Category, error) {
	return browse(ctx, s, "Categories", s.spotifyClient.Categories)
}

// Home fetches the four landing page sections concurrently. The first
// failure cancels the other requests and is returned.
func (s SpotifyBrowseService) Home(ctx context.Context) (Home, error) {
	ctx, span := s.tracer.Start(ctx, "SpotifyBrowseService.Home")
	defer span.End()

	var home Home
	wg, wgCtx := errgroup.WithContext(ctx)

	wg.Go(func() (err error) {
		home.TopArtists, err = s.TopArtists(wgCtx)
		return err
	})
	wg.Go(func() (err error) {
		home.NewReleases, err = s.NewReleases(wgCtx)
		return err
	})
	wg.Go(func() (err error) {
		home.Playlists, err = s.Playlists(wgCtx)
		return err
	})
	wg.Go(func() (err error) {
		home.Categories, err = s.Categories(wgCtx)
		return err
	})

	if err := wg.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Home{}, err
	}

	return home, nil
}

func browse[T any](
	ctx context.Context,
	s SpotifyBrowseService,
	operation string,
	fetch func(context.Context) ([]T, error),
) ([]T, error) {
	ctx, span := s.tracer.Start(ctx, "SpotifyBrowseService."+operation)
	defer span.End()

	items, err := fetch(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("%w: %w", ErrSpotifyClient, err)
	}

	span.SetAttributes(attribute.Int("results", len(items)))

	return items, nil
}
