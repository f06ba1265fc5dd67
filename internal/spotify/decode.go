package spotify

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// Kind describes which Spotify entity a query points at.
type Kind string

const (
	KindTrack    Kind = "track"
	KindPlaylist Kind = "playlist"
	KindAlbum    Kind = "album"
)

// Query is the decoded form of a Spotify share link or URI.
type Query struct {
	Kind Kind   `json:"kind"`
	ID   string `json:"id"`
}

// Spotify IDs are 22 base62 characters.
var idPattern = regexp.MustCompile(`^[0-9A-Za-z]{22}$`)

// DecodeQuery parses a Spotify URI ("spotify:track:<id>") or share link
// ("https://open.spotify.com/track/<id>?si=...") into a Query. Share links
// may carry an "intl-xx" locale segment and arbitrary query parameters,
// both are ignored. Anything else yields ErrUnsupportedQuery.
func DecodeQuery(raw string) (Query, error) {
	raw = strings.TrimSpace(raw)

	if strings.HasPrefix(raw, "spotify:") {
		return decodeURI(raw)
	}

	if strings.Contains(raw, "open.spotify.com/") {
		return decodeLink(raw)
	}

	return Query{}, fmt.Errorf("%w: '%s'", ErrUnsupportedQuery, raw)
}

// ValidID reports whether the given string can be a Spotify ID at all.
func ValidID(id string) bool {
	return idPattern.MatchString(id)
}

// Link returns the open.spotify.com URL for the given entity.
func Link(kind Kind, id string) string {
	return fmt.Sprintf("https://open.spotify.com/%s/%s", kind, id)
}

// URI returns the "spotify:<kind>:<id>" form for the given entity.
func URI(kind Kind, id string) string {
	return fmt.Sprintf("spotify:%s:%s", kind, id)
}

func decodeURI(raw string) (Query, error) {
	splits := strings.Split(raw, ":")

	if len(splits) != 3 {
		return Query{}, fmt.Errorf("%w: '%s'", ErrUnsupportedQuery, raw)
	}

	return queryFor(splits[1], splits[2], raw)
}

func decodeLink(raw string) (Query, error) {
	if !strings.Contains(raw, "://") {
		// Links copied from chats etc. frequently lack the scheme
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host != "open.spotify.com" {
		return Query{}, fmt.Errorf("%w: '%s'", ErrUnsupportedQuery, raw)
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segments) > 0 && strings.HasPrefix(segments[0], "intl-") {
		segments = segments[1:]
	}

	if len(segments) != 2 {
		return Query{}, fmt.Errorf("%w: '%s'", ErrUnsupportedQuery, raw)
	}

	return queryFor(segments[0], segments[1], raw)
}

func queryFor(kind, id, raw string) (Query, error) {
	switch Kind(kind) {
	case KindTrack, KindPlaylist, KindAlbum:
	default:
		return Query{}, fmt.Errorf("%w: '%s'", ErrUnsupportedQuery, raw)
	}

	if !ValidID(id) {
		return Query{}, fmt.Errorf("%w: '%s' is not a valid Spotify ID", ErrUnsupportedQuery, id)
	}

	return Query{Kind: Kind(kind), ID: id}, nil
}
