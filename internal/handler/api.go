package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi"
	"github.com/rs/zerolog/hlog"
	spotifyAPI "github.com/zmb3/spotify"

	"github.com/madsholme/spotlink/internal/constants"
	"github.com/madsholme/spotlink/internal/persistence"
	"github.com/madsholme/spotlink/internal/playable"
	"github.com/madsholme/spotlink/internal/resolver"
	"github.com/madsholme/spotlink/internal/spotify"
)

type decodedQuery struct {
	spotify.Query
	URI  string `json:"uri"`
	Link string `json:"link"`
}

func DecodeHandler(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("q")
	if raw == "" {
		http.Error(w, "Query parameter 'q' is missing.", http.StatusBadRequest)
		return
	}

	query, err := spotify.DecodeQuery(raw)
	if err != nil {
		hlog.FromRequest(r).Debug().Err(err).Str("query", raw).Msg("Could not decode query.")
		http.Error(w, "The given query is not a supported Spotify link or URI.", http.StatusUnprocessableEntity)
		return
	}

	writeJSON(w, r, decodedQuery{
		Query: query,
		URI:   spotify.URI(query.Kind, query.ID),
		Link:  spotify.Link(query.Kind, query.ID),
	})
}

func ResolveHandler(w http.ResponseWriter, r *http.Request) {
	res := r.Context().Value(constants.FieldKeyResolver).(*resolver.Resolver)

	raw := r.URL.Query().Get("q")
	if raw == "" {
		http.Error(w, "Query parameter 'q' is missing.", http.StatusBadRequest)
		return
	}

	if r.URL.Query().Get("partial") == "true" {
		writeJSON(w, r, res.Partial(raw))
		return
	}

	resolved, err := res.Resolve(r.Context(), raw)
	if err != nil {
		respondResolveError(w, r, err)
		return
	}

	writeJSON(w, r, resolved)
}

func TrackHandler(w http.ResponseWriter, r *http.Request) {
	res := r.Context().Value(constants.FieldKeyResolver).(*resolver.Resolver)

	id, ok := checkIDParameter(w, r)
	if !ok {
		return
	}

	track, err := res.Track(r.Context(), id)
	if err != nil {
		respondResolveError(w, r, err)
		return
	}

	writeJSON(w, r, track)
}

func PlaylistHandler(w http.ResponseWriter, r *http.Request) {
	res := r.Context().Value(constants.FieldKeyResolver).(*resolver.Resolver)

	id, ok := checkIDParameter(w, r)
	if !ok {
		return
	}

	playlist, err := res.Playlist(r.Context(), id)
	if err != nil {
		respondResolveError(w, r, err)
		return
	}

	writeJSON(w, r, playlist)
}

func AlbumHandler(w http.ResponseWriter, r *http.Request) {
	res := r.Context().Value(constants.FieldKeyResolver).(*resolver.Resolver)

	id, ok := checkIDParameter(w, r)
	if !ok {
		return
	}

	album, err := res.Album(r.Context(), id)
	if err != nil {
		respondResolveError(w, r, err)
		return
	}

	writeJSON(w, r, album)
}

func LibraryGetHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	dao := ctx.Value(constants.FieldKeyDao).(persistence.LibraryPersistor)
	owner := ctx.Value(constants.FieldKeyOwner).(string)

	entries, err := dao.LoadEntries(owner)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("Failed loading library from DB.")
		http.Error(w, "Could not retrieve library from DB.", http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, enrichEntries(entries))
}

type libraryPostRequest struct {
	Query string `json:"query"`
}

// LibraryPostHandler resolves the query supplied in the body and pins the
// result. Without a slot in the context the entry is appended, with one the
// entry in that slot is replaced.
func LibraryPostHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	res := ctx.Value(constants.FieldKeyResolver).(*resolver.Resolver)
	dao := ctx.Value(constants.FieldKeyDao).(persistence.LibraryPersistor)
	owner := ctx.Value(constants.FieldKeyOwner).(string)
	slot, ok := ctx.Value(constants.FieldKeySlot).(int)
	if !ok {
		slot = -1
	}

	var req libraryPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Query) == "" {
		http.Error(w, "Request body has to be a JSON object with a non-empty 'query' field.", http.StatusBadRequest)
		return
	}

	resolved, err := res.Resolve(ctx, req.Query)
	if err != nil {
		respondResolveError(w, r, err)
		return
	}

	entry := entryFromPlayable(resolved)
	if entry == nil {
		http.Error(w, "Only fully resolved tracks, playlists and albums can be pinned.", http.StatusUnprocessableEntity)
		return
	}

	entries, err := dao.LoadEntries(owner)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("Failed loading library from DB.")
		http.Error(w, "Could not retrieve library from DB.", http.StatusInternalServerError)
		return
	}

	// replace, if < 0 then append a new slot
	if slot >= 0 {
		if slot >= len(entries) {
			hlog.FromRequest(r).Debug().Int("slot", slot).Msg("Slot is out of range.")
			http.Error(w, "'slot' is not in the range of existing slots.", http.StatusBadRequest)
			return
		}

		entries[slot] = entry
	} else {
		entries = append(entries, entry)
	}

	if err := dao.SaveEntries(owner, entries); err != nil {
		hlog.FromRequest(r).Error().Err(err).Interface("entries", entries).Msg("Could not persist library in DB.")
		http.Error(w, "Could not persist library in DB.", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func LibraryDeleteHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	dao := ctx.Value(constants.FieldKeyDao).(persistence.LibraryPersistor)
	owner := ctx.Value(constants.FieldKeyOwner).(string)
	slot := ctx.Value(constants.FieldKeySlot).(int)

	entries, err := dao.LoadEntries(owner)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("Failed loading library from DB.")
		http.Error(w, "Could not retrieve library from DB.", http.StatusInternalServerError)
		return
	}

	if slot >= len(entries) {
		hlog.FromRequest(r).Debug().Int("slot", slot).Msg("Unable to delete entry - slot out of range.")
		http.Error(w, "'slot' is not in the range of existing slots.", http.StatusBadRequest)
		return
	}

	entries = append(entries[:slot], entries[slot+1:]...)

	if err := dao.SaveEntries(owner, entries); err != nil {
		hlog.FromRequest(r).Error().Err(err).Interface("entries", entries).Msg("Could not persist library in DB.")
		http.Error(w, "Could not persist library in DB.", http.StatusInternalServerError)
	}
}

func OwnerExportHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	dao := ctx.Value(constants.FieldKeyDao).(persistence.LibraryPersistor)
	owner := ctx.Value(constants.FieldKeyOwner).(string)

	json, err := dao.FetchJSONDump(owner)
	if err != nil {
		if errors.Is(err, persistence.ErrOwnerNotFound) {
			hlog.FromRequest(r).Debug().Msg("Owner requested an export - but nothing found in DB.")
			http.Error(w, "No data stored in db for this owner.", http.StatusBadRequest)
		} else {
			hlog.FromRequest(r).Error().Err(err).Msg("Failed exporting owner data.")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(json)
}

func OwnerDeleteHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	dao := ctx.Value(constants.FieldKeyDao).(persistence.LibraryPersistor)
	owner := ctx.Value(constants.FieldKeyOwner).(string)

	err := dao.DeleteOwnerRecord(owner)
	if err != nil {
		if errors.Is(err, persistence.ErrOwnerNotFound) {
			hlog.FromRequest(r).Debug().Msg("Owner requested deletion - but nothing found in DB.")
			http.Error(w, "No data stored in db for this owner.", http.StatusBadRequest)
		} else {
			hlog.FromRequest(r).Error().Err(err).Msg("Failed deleting owner data.")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

func checkIDParameter(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")

	if !spotify.ValidID(id) {
		http.Error(w, "The given id is not a valid Spotify ID.", http.StatusBadRequest)
		return "", false
	}

	return id, true
}

func respondResolveError(w http.ResponseWriter, r *http.Request, err error) {
	var authErr *spotify.AuthError
	var apiErr spotifyAPI.Error

	switch {
	case errors.Is(err, spotify.ErrUnsupportedQuery):
		hlog.FromRequest(r).Debug().Err(err).Msg("Could not decode query.")
		http.Error(w, "The given query is not a supported Spotify link or URI.", http.StatusUnprocessableEntity)
	case errors.Is(err, resolver.ErrNoMatch):
		http.Error(w, "Nothing on Spotify matched the given query.", http.StatusNotFound)
	case errors.As(err, &authErr):
		hlog.FromRequest(r).Error().Err(err).Msg("Could not authenticate against Spotify.")
		http.Error(w, "Could not authenticate against Spotify. Please check the configured credentials.", http.StatusBadGateway)
	case errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound:
		http.Error(w, "Spotify does not know the requested resource.", http.StatusNotFound)
	default:
		hlog.FromRequest(r).Error().Err(err).Msg("Resolution failed.")
		http.Error(w, "Could not resolve the given query via Spotify.", http.StatusBadGateway)
	}
}

type enrichedEntry struct {
	*persistence.Entry
	Link string `json:"link"`
}

func enrichEntries(entries []*persistence.Entry) []*enrichedEntry {
	enriched := make([]*enrichedEntry, len(entries))

	for i, entry := range entries {
		enriched[i] = &enrichedEntry{
			Entry: entry,
			Link:  spotify.Link(spotify.Kind(entry.Kind), entry.SpotifyID),
		}
	}

	return enriched
}

func entryFromPlayable(resolved playable.Playable) *persistence.Entry {
	entry := &persistence.Entry{
		Kind:      string(resolved.Kind()),
		Name:      resolved.DisplayName(),
		SavedAtTs: time.Now().Unix(),
	}

	switch v := resolved.(type) {
	case *playable.Track:
		entry.SpotifyID = v.ID
		entry.ArtistName = strings.Join(v.Artists, ", ")
		entry.ArtURL = v.AlbumArtURL
		entry.TrackTotal = 1
		entry.SearchQuery = v.SearchQuery()
	case *playable.Playlist:
		entry.SpotifyID = v.ID
		entry.Name = v.Name
		entry.ArtistName = v.Owner
		entry.TrackTotal = v.TrackTotal
	case *playable.Album:
		entry.SpotifyID = v.ID
		entry.ArtistName = v.Artist
		entry.ArtURL = v.ArtURL
		entry.TrackTotal = v.TrackTotal
	default:
		return nil
	}

	return entry
}

func writeJSON(w http.ResponseWriter, r *http.Request, payload interface{}) {
	json, err := json.Marshal(payload)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Interface("payload", payload).Msg("Could not serialize response payload.")
		http.Error(w, "Failed to serialize response.", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(json)
}
