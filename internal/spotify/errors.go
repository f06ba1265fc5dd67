package spotify

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedQuery is returned when the input is neither a Spotify URI
	// nor an open.spotify.com link pointing at a track, playlist or album.
	ErrUnsupportedQuery = errors.New("not a supported Spotify link or URI")
)

// AuthError reports a rejected attempt to obtain a bearer token from the
// accounts service, e.g. because of revoked or mistyped app credentials.
type AuthError struct {
	StatusCode int
	Err        error
}

func (e *AuthError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("authenticating against Spotify failed (status %d): %s", e.StatusCode, e.Err)
	}

	return fmt.Sprintf("authenticating against Spotify failed: %s", e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}
