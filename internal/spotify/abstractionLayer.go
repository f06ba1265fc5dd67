package spotify

import (
	spotifyAPI "github.com/zmb3/spotify"
)

// SpotAPI is the subset of the Spotify Web API client spotlink relies on.
// Narrowing the concrete client down to an interface keeps it replaceable
// in tests.
type SpotAPI interface {
	GetTrack(id spotifyAPI.ID) (*spotifyAPI.FullTrack, error)
	GetAlbum(id spotifyAPI.ID) (*spotifyAPI.FullAlbum, error)
	GetAlbumTracksOpt(id spotifyAPI.ID, opt *spotifyAPI.Options) (*spotifyAPI.SimpleTrackPage, error)
	GetPlaylistOpt(playlistID spotifyAPI.ID, fields string) (*spotifyAPI.FullPlaylist, error)
	GetPlaylistTracksOpt(playlistID spotifyAPI.ID, opt *spotifyAPI.Options, fields string) (*spotifyAPI.PlaylistTrackPage, error)
	Search(query string, t spotifyAPI.SearchType) (*spotifyAPI.SearchResult, error)
}
