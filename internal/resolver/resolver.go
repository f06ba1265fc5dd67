// Package resolver turns raw user queries into playables by combining query
// decoding with the Spotify Web API.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	spotifyAPI "github.com/zmb3/spotify"

	"github.com/madsholme/spotlink/internal/constants"
	"github.com/madsholme/spotlink/internal/playable"
	"github.com/madsholme/spotlink/internal/spotify"
)

var (
	ErrNoMatch = errors.New("no track matched the given query")

	resolutionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "spotlink",
		Name:      "resolutions_total",
		Help:      "Resolution attempts partitioned by kind and outcome.",
	}, []string{"kind", "outcome"})
)

const (
	outcomeOK      = "ok"
	outcomeError   = "error"
	outcomeNoMatch = "no_match"
)

// APIProvider hands out a ready-to-use Web API client. It is a function so
// tests can swap in a mock where production code hands out the real client.
type APIProvider func(ctx context.Context) (spotify.SpotAPI, error)

type Resolver struct {
	api       APIProvider
	pageLimit int
}

func New(api APIProvider) *Resolver {
	return &Resolver{
		api:       api,
		pageLimit: constants.PagingLimit,
	}
}

// Resolve dispatches on the kind of the given query. Plain text that is
// neither a Spotify URI nor a link falls back to a track search.
func (r *Resolver) Resolve(ctx context.Context, raw string) (playable.Playable, error) {
	query, err := spotify.DecodeQuery(raw)
	if err != nil {
		if errors.Is(err, spotify.ErrUnsupportedQuery) && !looksLikeLink(raw) {
			return r.Search(ctx, raw)
		}

		return nil, err
	}

	switch query.Kind {
	case spotify.KindTrack:
		return r.Track(ctx, query.ID)
	case spotify.KindPlaylist:
		return r.Playlist(ctx, query.ID)
	case spotify.KindAlbum:
		return r.Album(ctx, query.ID)
	default:
		return nil, fmt.Errorf("%w: '%s'", spotify.ErrUnsupportedQuery, raw)
	}
}

// Partial wraps the raw query without touching the Web API. The backend is
// expected to resolve it at playtime.
func (r *Resolver) Partial(raw string) *playable.Partial {
	query, err := spotify.DecodeQuery(raw)
	if err != nil {
		return &playable.Partial{Query: strings.TrimSpace(raw)}
	}

	return &playable.Partial{QueryKind: query.Kind, Query: strings.TrimSpace(raw)}
}

func (r *Resolver) Track(ctx context.Context, id string) (*playable.Track, error) {
	api, err := r.apiFor(ctx)
	if err != nil {
		return nil, err
	}

	full, err := api.GetTrack(spotifyAPI.ID(id))
	if err != nil {
		resolutionsTotal.WithLabelValues(string(spotify.KindTrack), outcomeError).Inc()

		return nil, fmt.Errorf("could not fetch track '%s': %w", id, err)
	}

	resolutionsTotal.WithLabelValues(string(spotify.KindTrack), outcomeOK).Inc()

	return playable.FromFullTrack(full), nil
}

func (r *Resolver) Playlist(ctx context.Context, id string) (*playable.Playlist, error) {
	api, err := r.apiFor(ctx)
	if err != nil {
		return nil, err
	}

	list, err := api.GetPlaylistOpt(spotifyAPI.ID(id), "id,name,description,owner(display_name),tracks(total)")
	if err != nil {
		resolutionsTotal.WithLabelValues(string(spotify.KindPlaylist), outcomeError).Inc()

		return nil, fmt.Errorf("could not fetch playlist '%s': %w", id, err)
	}

	items, err := r.playlistItems(ctx, api, spotifyAPI.ID(id))
	if err != nil {
		resolutionsTotal.WithLabelValues(string(spotify.KindPlaylist), outcomeError).Inc()

		return nil, fmt.Errorf("could not fetch tracks of playlist '%s': %w", id, err)
	}

	resolutionsTotal.WithLabelValues(string(spotify.KindPlaylist), outcomeOK).Inc()

	return playable.FromPlaylist(list, items), nil
}

func (r *Resolver) Album(ctx context.Context, id string) (*playable.Album, error) {
	api, err := r.apiFor(ctx)
	if err != nil {
		return nil, err
	}

	album, err := api.GetAlbum(spotifyAPI.ID(id))
	if err != nil {
		resolutionsTotal.WithLabelValues(string(spotify.KindAlbum), outcomeError).Inc()

		return nil, fmt.Errorf("could not fetch album '%s': %w", id, err)
	}

	tracks, err := r.albumTracks(ctx, api, spotifyAPI.ID(id))
	if err != nil {
		resolutionsTotal.WithLabelValues(string(spotify.KindAlbum), outcomeError).Inc()

		return nil, fmt.Errorf("could not fetch tracks of album '%s': %w", id, err)
	}

	resolutionsTotal.WithLabelValues(string(spotify.KindAlbum), outcomeOK).Inc()

	return playable.FromAlbum(album, tracks), nil
}

// Search resolves plain text to the first matching track.
func (r *Resolver) Search(ctx context.Context, text string) (*playable.Track, error) {
	api, err := r.apiFor(ctx)
	if err != nil {
		return nil, err
	}

	results, err := api.Search(text, spotifyAPI.SearchTypeTrack)
	if err != nil {
		resolutionsTotal.WithLabelValues("search", outcomeError).Inc()

		return nil, fmt.Errorf("search for '%s' failed: %w", text, err)
	}

	if results.Tracks == nil || len(results.Tracks.Tracks) == 0 {
		resolutionsTotal.WithLabelValues("search", outcomeNoMatch).Inc()

		return nil, fmt.Errorf("%w: '%s'", ErrNoMatch, text)
	}

	resolutionsTotal.WithLabelValues("search", outcomeOK).Inc()

	return playable.FromFullTrack(&results.Tracks.Tracks[0]), nil
}

// apiFor checks for cancellation before handing out a client. The wrapped
// library itself is not context-aware.
func (r *Resolver) apiFor(ctx context.Context) (spotify.SpotAPI, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return r.api(ctx)
}

func (r *Resolver) playlistItems(ctx context.Context, api spotify.SpotAPI, id spotifyAPI.ID) ([]spotifyAPI.PlaylistTrack, error) {
	offset := 0
	limit := r.pageLimit
	options := spotifyAPI.Options{
		Limit:  &limit,
		Offset: &offset,
	}

	var items []spotifyAPI.PlaylistTrack

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page, err := api.GetPlaylistTracksOpt(id, &options, "total,limit,items(track)")
		if err != nil {
			return nil, err
		}

		items = append(items, page.Tracks...)

		offset += limit
		if offset >= page.Total || len(page.Tracks) == 0 {
			return items, nil
		}
	}
}

func (r *Resolver) albumTracks(ctx context.Context, api spotify.SpotAPI, id spotifyAPI.ID) ([]spotifyAPI.SimpleTrack, error) {
	offset := 0
	limit := r.pageLimit
	options := spotifyAPI.Options{
		Limit:  &limit,
		Offset: &offset,
	}

	var tracks []spotifyAPI.SimpleTrack

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page, err := api.GetAlbumTracksOpt(id, &options)
		if err != nil {
			return nil, err
		}

		tracks = append(tracks, page.Tracks...)

		offset += limit
		if offset >= page.Total || len(page.Tracks) == 0 {
			return tracks, nil
		}
	}
}

func looksLikeLink(raw string) bool {
	raw = strings.TrimSpace(raw)

	return strings.HasPrefix(raw, "spotify:") || strings.Contains(raw, "://") || strings.Contains(raw, "open.spotify.com")
}
