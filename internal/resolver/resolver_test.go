package resolver_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	spotifyAPI "github.com/zmb3/spotify"

	"github.com/madsholme/spotlink/internal/e2e_test/mocks"
	"github.com/madsholme/spotlink/internal/playable"
	"github.com/madsholme/spotlink/internal/resolver"
	"github.com/madsholme/spotlink/internal/spotify"
)

const (
	trackID    = "4uLU6hMCjMI75M1A2tKUQC"
	playlistID = "37i9dQZF1DXa2SPUyWl8Y5"
	albumID    = "08tZq3FDsspdU6ycn8Jl2o"
)

func TestResolveTrackURI(t *testing.T) {
	assert := assert.New(t)
	res, ctrl, apiMock := beforeEach(t)
	defer ctrl.Finish()

	apiMock.EXPECT().GetTrack(spotifyAPI.ID(trackID)).Times(1).Return(fullTrack(trackID, "Bohemian Rhapsody"), nil)

	resolved, err := res.Resolve(context.Background(), "spotify:track:"+trackID)
	assert.NoError(err)

	track, ok := resolved.(*playable.Track)
	assert.True(ok)
	assert.Equal("Queen - Bohemian Rhapsody", track.DisplayName())
}

func TestResolveFallsBackToSearch(t *testing.T) {
	assert := assert.New(t)
	res, ctrl, apiMock := beforeEach(t)
	defer ctrl.Finish()

	apiMock.EXPECT().Search("queen bohemian rhapsody", spotifyAPI.SearchType(spotifyAPI.SearchTypeTrack)).Times(1).
		Return(&spotifyAPI.SearchResult{
			Tracks: &spotifyAPI.FullTrackPage{
				Tracks: []spotifyAPI.FullTrack{*fullTrack(trackID, "Bohemian Rhapsody")},
			},
		}, nil)

	resolved, err := res.Resolve(context.Background(), "queen bohemian rhapsody")
	assert.NoError(err)
	assert.Equal("Queen - Bohemian Rhapsody", resolved.DisplayName())
}

func TestResolveSearchWithoutMatch(t *testing.T) {
	assert := assert.New(t)
	res, ctrl, apiMock := beforeEach(t)
	defer ctrl.Finish()

	apiMock.EXPECT().Search(gomock.Any(), spotifyAPI.SearchType(spotifyAPI.SearchTypeTrack)).Times(1).
		Return(&spotifyAPI.SearchResult{Tracks: &spotifyAPI.FullTrackPage{}}, nil)

	_, err := res.Resolve(context.Background(), "askjdhakjsdhkajshd")
	assert.True(errors.Is(err, resolver.ErrNoMatch))
}

func TestResolveDoesNotSearchForBrokenLinks(t *testing.T) {
	assert := assert.New(t)
	res, ctrl, _ := beforeEach(t)
	defer ctrl.Finish()

	// A malformed Spotify link must fail instead of being treated as text
	_, err := res.Resolve(context.Background(), "https://open.spotify.com/track/way-too-short")
	assert.True(errors.Is(err, spotify.ErrUnsupportedQuery))
}

func TestPlaylistCollectsAllPages(t *testing.T) {
	assert := assert.New(t)
	res, ctrl, apiMock := beforeEach(t)
	defer ctrl.Finish()

	apiMock.EXPECT().GetPlaylistOpt(spotifyAPI.ID(playlistID), gomock.Any()).Times(1).
		Return(&spotifyAPI.FullPlaylist{
			SimplePlaylist: spotifyAPI.SimplePlaylist{
				ID:    spotifyAPI.ID(playlistID),
				Name:  "Rock Classics",
				Owner: spotifyAPI.User{DisplayName: "Spotify"},
			},
		}, nil)

	// 60 tracks in total, so a second page has to be requested
	apiMock.EXPECT().GetPlaylistTracksOpt(spotifyAPI.ID(playlistID), gomock.Any(), gomock.Any()).Times(1).
		Return(playlistPage(60, 50), nil)
	apiMock.EXPECT().GetPlaylistTracksOpt(spotifyAPI.ID(playlistID), gomock.Any(), gomock.Any()).Times(1).
		Return(playlistPage(60, 10), nil)

	playlist, err := res.Playlist(context.Background(), playlistID)
	assert.NoError(err)
	assert.Equal("Rock Classics", playlist.Name)
	assert.Equal("Spotify", playlist.Owner)
	assert.Len(playlist.Tracks, 60)
}

func TestAlbumCollectsAllPages(t *testing.T) {
	assert := assert.New(t)
	res, ctrl, apiMock := beforeEach(t)
	defer ctrl.Finish()

	apiMock.EXPECT().GetAlbum(spotifyAPI.ID(albumID)).Times(1).
		Return(&spotifyAPI.FullAlbum{
			SimpleAlbum: spotifyAPI.SimpleAlbum{
				ID:      spotifyAPI.ID(albumID),
				Name:    "A Night at the Opera",
				Artists: []spotifyAPI.SimpleArtist{{Name: "Queen"}},
			},
		}, nil)

	apiMock.EXPECT().GetAlbumTracksOpt(spotifyAPI.ID(albumID), gomock.Any()).Times(1).
		Return(albumPage(12, 12), nil)

	album, err := res.Album(context.Background(), albumID)
	assert.NoError(err)
	assert.Equal("Queen", album.Artist)
	assert.Len(album.Tracks, 12)
	assert.Equal("A Night at the Opera", album.Tracks[0].AlbumName)
}

func TestResolveWithCancelledContext(t *testing.T) {
	assert := assert.New(t)
	res, ctrl, _ := beforeEach(t)
	defer ctrl.Finish()

	ctx, cancelFn := context.WithCancel(context.Background())
	cancelFn()

	_, err := res.Resolve(ctx, "spotify:track:"+trackID)
	assert.True(errors.Is(err, context.Canceled))
}

func TestPartial(t *testing.T) {
	assert := assert.New(t)
	res, ctrl, _ := beforeEach(t)
	defer ctrl.Finish()

	partial := res.Partial("spotify:playlist:" + playlistID)
	assert.Equal(spotify.KindPlaylist, partial.Kind())
	assert.Equal("spotify:playlist:"+playlistID, partial.Query)

	// Plain text is kept as-is, without a kind
	partial = res.Partial("  queen bohemian rhapsody ")
	assert.Equal(spotify.Kind(""), partial.Kind())
	assert.Equal("queen bohemian rhapsody", partial.Query)
}

func beforeEach(t *testing.T) (*resolver.Resolver, *gomock.Controller, *mocks.MockSpotAPI) {
	ctrl := gomock.NewController(t)

	apiMock := mocks.NewMockSpotAPI(ctrl)
	res := resolver.New(func(ctx context.Context) (spotify.SpotAPI, error) {
		return apiMock, nil
	})

	return res, ctrl, apiMock
}

func fullTrack(id, name string) *spotifyAPI.FullTrack {
	return &spotifyAPI.FullTrack{
		SimpleTrack: spotifyAPI.SimpleTrack{
			ID:      spotifyAPI.ID(id),
			Name:    name,
			Artists: []spotifyAPI.SimpleArtist{{Name: "Queen"}},
		},
	}
}

func playlistPage(total, count int) *spotifyAPI.PlaylistTrackPage {
	page := &spotifyAPI.PlaylistTrackPage{}
	page.Total = total

	for i := 0; i < count; i++ {
		page.Tracks = append(page.Tracks, spotifyAPI.PlaylistTrack{
			Track: *fullTrack(trackID, "Some Track"),
		})
	}

	return page
}

func albumPage(total, count int) *spotifyAPI.SimpleTrackPage {
	page := &spotifyAPI.SimpleTrackPage{}
	page.Total = total

	for i := 0; i < count; i++ {
		page.Tracks = append(page.Tracks, spotifyAPI.SimpleTrack{
			ID:      spotifyAPI.ID(trackID),
			Name:    "Some Track",
			Artists: []spotifyAPI.SimpleArtist{{Name: "Queen"}},
		})
	}

	return page
}
