// Package playable holds the resources spotlink hands to playback backends.
// A playable carries Spotify metadata plus the text queries a backend feeds
// to its own search sources, since Spotify itself cannot be streamed from.
package playable

import (
	"strings"

	"github.com/madsholme/spotlink/internal/spotify"
)

// Playable is implemented by every resolvable Spotify resource.
type Playable interface {
	// Kind names the Spotify entity this playable was resolved from.
	Kind() spotify.Kind
	// DisplayName is what a bot or UI would print for this resource.
	DisplayName() string
	// SpotifyURI returns the "spotify:<kind>:<id>" form, empty if unknown.
	SpotifyURI() string
	// Link returns the open.spotify.com URL, empty if unknown.
	Link() string
	// SearchQueries returns one query per contained track, in order.
	SearchQueries() []string
}

// Track is a single resolved track.
type Track struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Artists     []string `json:"artists"`
	AlbumName   string   `json:"albumName"`
	AlbumArtURL string   `json:"albumArtURL,omitempty"`
	DurationMs  int      `json:"durationMs"`
	TrackNumber int      `json:"trackNumber"`
	ISRC        string   `json:"isrc,omitempty"`
	Explicit    bool     `json:"explicit"`
	PreviewURL  string   `json:"previewURL,omitempty"`
}

func (t *Track) Kind() spotify.Kind {
	return spotify.KindTrack
}

func (t *Track) DisplayName() string {
	if len(t.Artists) == 0 {
		return t.Title
	}

	return strings.Join(t.Artists, ", ") + " - " + t.Title
}

func (t *Track) SpotifyURI() string {
	return spotify.URI(spotify.KindTrack, t.ID)
}

func (t *Track) Link() string {
	return spotify.Link(spotify.KindTrack, t.ID)
}

// SearchQuery is the text a playback backend feeds to its search source in
// order to find a playable rendition of this track.
func (t *Track) SearchQuery() string {
	return t.DisplayName()
}

func (t *Track) SearchQueries() []string {
	return []string{t.SearchQuery()}
}

// Playlist is a resolved playlist including all of its tracks.
type Playlist struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Owner       string  `json:"owner"`
	Description string  `json:"description,omitempty"`
	TrackTotal  int     `json:"trackTotal"`
	Tracks      []Track `json:"tracks"`
}

func (p *Playlist) Kind() spotify.Kind {
	return spotify.KindPlaylist
}

func (p *Playlist) DisplayName() string {
	return p.Name
}

func (p *Playlist) SpotifyURI() string {
	return spotify.URI(spotify.KindPlaylist, p.ID)
}

func (p *Playlist) Link() string {
	return spotify.Link(spotify.KindPlaylist, p.ID)
}

func (p *Playlist) SearchQueries() []string {
	return trackQueries(p.Tracks)
}

// Album is a resolved album including all of its tracks.
type Album struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Artist      string  `json:"artist"`
	ReleaseDate string  `json:"releaseDate,omitempty"`
	ArtURL      string  `json:"artURL,omitempty"`
	TrackTotal  int     `json:"trackTotal"`
	Tracks      []Track `json:"tracks"`
}

func (a *Album) Kind() spotify.Kind {
	return spotify.KindAlbum
}

func (a *Album) DisplayName() string {
	if a.Artist == "" {
		return a.Name
	}

	return a.Artist + " - " + a.Name
}

func (a *Album) SpotifyURI() string {
	return spotify.URI(spotify.KindAlbum, a.ID)
}

func (a *Album) Link() string {
	return spotify.Link(spotify.KindAlbum, a.ID)
}

func (a *Album) SearchQueries() []string {
	return trackQueries(a.Tracks)
}

// Partial defers resolution to playtime: it only carries the raw query.
// Full metadata is missing until the query has actually been resolved.
type Partial struct {
	QueryKind spotify.Kind `json:"kind,omitempty"`
	Query     string       `json:"query"`
}

func (p *Partial) Kind() spotify.Kind {
	return p.QueryKind
}

func (p *Partial) DisplayName() string {
	return p.Query
}

func (p *Partial) SpotifyURI() string {
	return ""
}

func (p *Partial) Link() string {
	return ""
}

func (p *Partial) SearchQueries() []string {
	return []string{p.Query}
}

func trackQueries(tracks []Track) []string {
	queries := make([]string, len(tracks))

	for i := range tracks {
		queries[i] = tracks[i].SearchQuery()
	}

	return queries
}
