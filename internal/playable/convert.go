package playable

import (
	"strings"

	spotifyAPI "github.com/zmb3/spotify"
)

// FromFullTrack converts a Web API track including its album metadata.
func FromFullTrack(full *spotifyAPI.FullTrack) *Track {
	track := fromSimpleTrack(full.SimpleTrack)
	track.AlbumName = full.Album.Name
	track.AlbumArtURL = largestImageURL(full.Album.Images)
	track.ISRC = full.ExternalIDs["isrc"]

	return track
}

// FromPlaylist combines playlist metadata with the items collected across
// all pages. Items that are no tracks (episodes, since removed entries) are
// skipped, so the result may hold fewer tracks than the playlist reports.
func FromPlaylist(playlist *spotifyAPI.FullPlaylist, items []spotifyAPI.PlaylistTrack) *Playlist {
	tracks := make([]Track, 0, len(items))

	for i := range items {
		if items[i].Track.ID == "" {
			continue
		}

		tracks = append(tracks, *FromFullTrack(&items[i].Track))
	}

	return &Playlist{
		ID:          string(playlist.ID),
		Name:        playlist.Name,
		Owner:       playlist.Owner.DisplayName,
		Description: playlist.Description,
		TrackTotal:  len(tracks),
		Tracks:      tracks,
	}
}

// FromAlbum combines album metadata with the simple tracks collected across
// all pages. Simple tracks do not repeat the album info, it is filled in
// from the album itself.
func FromAlbum(album *spotifyAPI.FullAlbum, simpleTracks []spotifyAPI.SimpleTrack) *Album {
	artURL := largestImageURL(album.Images)

	tracks := make([]Track, 0, len(simpleTracks))

	for _, simple := range simpleTracks {
		track := fromSimpleTrack(simple)
		track.AlbumName = album.Name
		track.AlbumArtURL = artURL

		tracks = append(tracks, *track)
	}

	return &Album{
		ID:          string(album.ID),
		Name:        album.Name,
		Artist:      joinArtists(album.Artists),
		ReleaseDate: album.ReleaseDate,
		ArtURL:      artURL,
		TrackTotal:  len(tracks),
		Tracks:      tracks,
	}
}

func fromSimpleTrack(simple spotifyAPI.SimpleTrack) *Track {
	artists := make([]string, len(simple.Artists))
	for i, artist := range simple.Artists {
		artists[i] = artist.Name
	}

	return &Track{
		ID:          string(simple.ID),
		Title:       simple.Name,
		Artists:     artists,
		DurationMs:  simple.Duration,
		TrackNumber: simple.TrackNumber,
		Explicit:    simple.Explicit,
		PreviewURL:  simple.PreviewURL,
	}
}

func joinArtists(artists []spotifyAPI.SimpleArtist) string {
	names := make([]string, len(artists))
	for i, artist := range artists {
		names[i] = artist.Name
	}

	return strings.Join(names, ", ")
}

// The Web API sorts images by size, largest first.
func largestImageURL(images []spotifyAPI.Image) string {
	if len(images) == 0 {
		return ""
	}

	return images[0].URL
}
