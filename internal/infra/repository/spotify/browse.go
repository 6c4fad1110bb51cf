package spotify

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/goccy/go-json"
	"github.com/samber/lo"
	"github.com/tidwall/gjson"
	spotifyLib "github.com/zmb3/spotify/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

var (
	// TopArtistIDs are the artists returned by TopArtists, in order.
	TopArtistIDs = []spotifyLib.ID{
		"4q3ewBCX7sLwd24euuV69X",
		"1Xyo4u8uXC1ZmMpatF05PJ",
		"66CXWjxzNUsdJxJ2JdwvnR",
		"06HL4z0CvFAxyc27GXpf02",
		"3TVXtAsR1Inumwj472S9r4",
	}

	// FallbackPlaylistIDs are fetched one by one when the playlist search fails.
	FallbackPlaylistIDs = []spotifyLib.ID{
		"37i9dQZF1DXcBWIGoYBM5M",
		"37i9dQZF1DX0XUsuxWHRQd",
		"37i9dQZF1DX4dyzvuaRJ0n",
		"37i9dQZF1DX1lVhptIYRda",
		"37i9dQZF1DX10zKzsJ2jva",
		"37i9dQZF1DX4JAvHpjipBk",
	}
)

const (
	newReleasesPath       = "/browse/new-releases?limit=6"
	featuredPlaylistsPath = "/browse/featured-playlists?limit=6"
	categoriesPath        = "/browse/categories?limit=6"
	playlistSearchPath    = "/search?q=top+playlist&type=playlist&limit=6"
)

func (client *SpotifyClient) TopArtists(ctx context.Context) ([]spotifyLib.FullArtist, error) {
	ctx, span := client.tracer.Start(ctx, "SpotifyClient.TopArtists")
	defer span.End()

	ids := lo.Map(TopArtistIDs, func(id spotifyLib.ID, _ int) string { return string(id) })
	path := "/artists?ids=" + strings.Join(ids, ",")

	body, err := client.call(ctx, path, client.timeout)
	if err != nil {
		return nil, err
	}

	return unwrap[spotifyLib.FullArtist](body, path, "artists")
}

func (client *SpotifyClient) NewReleases(ctx context.Context) ([]spotifyLib.SimpleAlbum, error) {
	ctx, span := client.tracer.Start(ctx, "SpotifyClient.NewReleases")
	defer span.End()

	body, err := client.call(ctx, newReleasesPath, client.timeout)
	if err != nil {
		return nil, err
	}

	return unwrap[spotifyLib.SimpleAlbum](body, newReleasesPath, "albums.items")
}

func (client *SpotifyClient) Categories(ctx context.Context) ([]spotifyLib.Category, error) {
	ctx, span := client.tracer.Start(ctx, "SpotifyClient.Categories")
	defer span.End()

	body, err := client.call(ctx, categoriesPath, client.timeout)
	if err != nil {
		return nil, err
	}

	return unwrap[spotifyLib.Category](body, categoriesPath, "categories.items")
}

// FeaturedPlaylists returns the editorial featured playlists. Unlike
// Playlists it has no fallback.
func (client *SpotifyClient) FeaturedPlaylists(ctx context.Context) ([]spotifyLib.SimplePlaylist, error) {
	ctx, span := client.tracer.Start(ctx, "SpotifyClient.FeaturedPlaylists")
	defer span.End()

	body, err := client.call(ctx, featuredPlaylistsPath, client.timeout)
	if err != nil {
		return nil, err
	}

	return unwrap[spotifyLib.SimplePlaylist](body, featuredPlaylistsPath, "playlists.items")
}

// Playlists searches for top playlists. If the search fails for any reason,
// it fetches FallbackPlaylistIDs concurrently instead and returns the ones
// that could be fetched, in list order. It never returns an error from the
// fallback path; when every fallback request fails the result is empty.
func (client *SpotifyClient) Playlists(ctx context.Context) ([]spotifyLib.SimplePlaylist, error) {
	ctx, span := client.tracer.Start(ctx, "SpotifyClient.Playlists")
	defer span.End()

	playlists, err := client.searchPlaylists(ctx)
	if err == nil {
		return playlists, nil
	}

	client.logger.WithError(err).Warn("Playlist search failed, falling back to known playlists")
	span.AddEvent("Falling back to known playlists", trace.WithAttributes(
		attribute.String("error", err.Error()),
	))

	playlists = client.fallbackPlaylists(ctx)

	span.SetAttributes(attribute.Int("spotify.fallback_playlists", len(playlists)))

	return playlists, nil
}

func (client *SpotifyClient) searchPlaylists(ctx context.Context) ([]spotifyLib.SimplePlaylist, error) {
	body, err := client.call(ctx, playlistSearchPath, client.timeout)
	if err != nil {
		return nil, err
	}

	return unwrap[spotifyLib.SimplePlaylist](body, playlistSearchPath, "playlists.items")
}

func (client *SpotifyClient) fallbackPlaylists(ctx context.Context) []spotifyLib.SimplePlaylist {
	results := make([]*spotifyLib.SimplePlaylist, len(FallbackPlaylistIDs))

	var wg errgroup.Group
	for i, id := range FallbackPlaylistIDs {
		i, id := i, id
		wg.Go(func() error {
			playlist, err := client.playlist(ctx, id)
			if err != nil {
				client.logger.WithError(err).WithField("playlist_id", id).Warn("Dropping fallback playlist")
				return nil
			}

			results[i] = playlist
			return nil
		})
	}
	_ = wg.Wait()

	return lo.FilterMap(results, func(playlist *spotifyLib.SimplePlaylist, _ int) (spotifyLib.SimplePlaylist, bool) {
		if playlist == nil {
			return spotifyLib.SimplePlaylist{}, false
		}
		return *playlist, true
	})
}

func (client *SpotifyClient) playlist(ctx context.Context, id spotifyLib.ID) (*spotifyLib.SimplePlaylist, error) {
	path := "/playlists/" + url.PathEscape(string(id))

	body, err := client.call(ctx, path, client.timeout)
	if err != nil {
		return nil, err
	}

	var playlist spotifyLib.SimplePlaylist
	if err := json.Unmarshal(body, &playlist); err != nil {
		return nil, &APIError{Path: path, Err: fmt.Errorf("decoding playlist: %w", err)}
	}

	return &playlist, nil
}

// unwrap decodes the array found at field in body, dropping null entries.
func unwrap[T any](body []byte, path string, field string) ([]T, error) {
	result := gjson.GetBytes(body, field)
	if !result.IsArray() {
		return nil, &APIError{Path: path, Err: fmt.Errorf("response has no %q array", field)}
	}

	var items []*T
	if err := json.Unmarshal([]byte(result.Raw), &items); err != nil {
		return nil, &APIError{Path: path, Err: fmt.Errorf("decoding %q: %w", field, err)}
	}

	return lo.FilterMap(items, func(item *T, _ int) (T, bool) {
		if item == nil {
			var zero T
			return zero, false
		}
		return *item, true
	}), nil
}
