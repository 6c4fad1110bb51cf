package mocks

import (
	"context"

	appspotify "github.com/angristan/spotify-browse/internal/app/services/spotify"
	"github.com/stretchr/testify/mock"
	spotifyLib "github.com/zmb3/spotify/v2"
)

type MockSpotifyService struct {
	mock.Mock
}

func (m *MockSpotifyService) TopArtists(ctx context.Context) ([]spotifyLib.FullArtist, error) {
	args := m.Called(ctx)
	artists, _ := args.Get(0).([]spotifyLib.FullArtist)
	return artists, args.Error(1)
}

func (m *MockSpotifyService) NewReleases(ctx context.Context) ([]spotifyLib.SimpleAlbum, error) {
	args := m.Called(ctx)
	albums, _ := args.Get(0).([]spotifyLib.SimpleAlbum)
	return albums, args.Error(1)
}

func (m *MockSpotifyService) Playlists(ctx context.Context) ([]spotifyLib.SimplePlaylist, error) {
	args := m.Called(ctx)
	playlists, _ := args.Get(0).([]spotifyLib.SimplePlaylist)
	return playlists, args.Error(1)
}

func (m *MockSpotifyService) FeaturedPlaylists(ctx context.Context) ([]spotifyLib.SimplePlaylist, error) {
	args := m.Called(ctx)
	playlists, _ := args.Get(0).([]spotifyLib.SimplePlaylist)
	return playlists, args.Error(1)
}

func (m *MockSpotifyService) Categories(ctx context.Context) ([]spotifyLib.Category, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]spotifyLib.Category)
	return categories, args.Error(1)
}

func (m *MockSpotifyService) Home(ctx context.Context) (appspotify.Home, error) {
	args := m.Called(ctx)
	home, _ := args.Get(0).(appspotify.Home)
	return home, args.Error(1)
}
