package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	spotifyLib "github.com/zmb3/spotify/v2"
)

type MockSpotifyClient struct {
	mock.Mock
}

func (m *MockSpotifyClient) TopArtists(ctx context.Context) ([]spotifyLib.FullArtist, error) {
	args := m.Called(ctx)
	artists, _ := args.Get(0).([]spotifyLib.FullArtist)
	return artists, args.Error(1)
}

func (m *MockSpotifyClient) NewReleases(ctx context.Context) ([]spotifyLib.SimpleAlbum, error) {
	args := m.Called(ctx)
	albums, _ := args.Get(0).([]spotifyLib.SimpleAlbum)
	return albums, args.Error(1)
}

func (m *MockSpotifyClient) Playlists(ctx context.Context) ([]spotifyLib.SimplePlaylist, error) {
	args := m.Called(ctx)
	playlists, _ := args.Get(0).([]spotifyLib.SimplePlaylist)
	return playlists, args.Error(1)
}

func (m *MockSpotifyClient) FeaturedPlaylists(ctx context.Context) ([]spotifyLib.SimplePlaylist, error) {
	args := m.Called(ctx)
	playlists, _ := args.Get(0).([]spotifyLib.SimplePlaylist)
	return playlists, args.Error(1)
}

func (m *MockSpotifyClient) Categories(ctx context.Context) ([]spotifyLib.Category, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]spotifyLib.Category)
	return categories, args.Error(1)
}
