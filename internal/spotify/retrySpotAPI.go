package spotify

// DO NOT EDIT!
// This code is generated with http://github.com/hexdigest/gowrap tool
// using resilienceWrapper.tmpl template

//go:generate gowrap gen -p github.com/madsholme/spotlink/internal/spotify -i SpotAPI -t resilienceWrapper.tmpl -o retrySpotAPI.go

// To be used with https://github.com/hexdigest/gowrap
// Based on https://github.com/hexdigest/gowrap/blob/a00b5e810bdf0db43652c86216d4dfd2fc8c9afc/templates/retry
import (
	"time"

	"github.com/rs/zerolog/log"
	spotifyAPI "github.com/zmb3/spotify"
)

// SpotAPIWithRetry implements SpotAPI interface instrumented with retries
type SpotAPIWithRetry struct {
	SpotAPI
	_retryCount int
	_waitFor    time.Duration
}

// NewSpotAPIWithRetry returns SpotAPIWithRetry
func NewSpotAPIWithRetry(base SpotAPI, retryCount int, waitFor time.Duration) SpotAPIWithRetry {
	return SpotAPIWithRetry{
		SpotAPI:     base,
		_retryCount: retryCount,
		_waitFor:    waitFor,
	}
}

// GetTrack implements SpotAPI
func (_d SpotAPIWithRetry) GetTrack(id spotifyAPI.ID) (fp1 *spotifyAPI.FullTrack, err error) {
	fp1, err = _d.SpotAPI.GetTrack(id)
	if err == nil || _d._retryCount < 1 {
		return
	}
	_ticker := time.NewTicker(_d._waitFor)
	defer _ticker.Stop()
	for _i := 0; _i < _d._retryCount && err != nil; _i++ {
		<-_ticker.C
		fp1, err = _d.SpotAPI.GetTrack(id)
		if err != nil {
			log.Warn().Msgf("Call to 'GetTrack' only succeeded due to retrying %d time(s).", _i+1)
		}
	}
	return
}

// GetAlbum implements SpotAPI
func (_d SpotAPIWithRetry) GetAlbum(id spotifyAPI.ID) (fp1 *spotifyAPI.FullAlbum, err error) {
	fp1, err = _d.SpotAPI.GetAlbum(id)
	if err == nil || _d._retryCount < 1 {
		return
	}
	_ticker := time.NewTicker(_d._waitFor)
	defer _ticker.Stop()
	for _i := 0; _i < _d._retryCount && err != nil; _i++ {
		<-_ticker.C
		fp1, err = _d.SpotAPI.GetAlbum(id)
		if err != nil {
			log.Warn().Msgf("Call to 'GetAlbum' only succeeded due to retrying %d time(s).", _i+1)
		}
	}
	return
}

// GetAlbumTracksOpt implements SpotAPI
func (_d SpotAPIWithRetry) GetAlbumTracksOpt(id spotifyAPI.ID, opt *spotifyAPI.Options) (sp1 *spotifyAPI.SimpleTrackPage, err error) {
	sp1, err = _d.SpotAPI.GetAlbumTracksOpt(id, opt)
	if err == nil || _d._retryCount < 1 {
		return
	}
	_ticker := time.NewTicker(_d._waitFor)
	defer _ticker.Stop()
	for _i := 0; _i < _d._retryCount && err != nil; _i++ {
		<-_ticker.C
		sp1, err = _d.SpotAPI.GetAlbumTracksOpt(id, opt)
		if err != nil {
			log.Warn().Msgf("Call to 'GetAlbumTracksOpt' only succeeded due to retrying %d time(s).", _i+1)
		}
	}
	return
}

// GetPlaylistOpt implements SpotAPI
func (_d SpotAPIWithRetry) GetPlaylistOpt(playlistID spotifyAPI.ID, fields string) (fp1 *spotifyAPI.FullPlaylist, err error) {
	fp1, err = _d.SpotAPI.GetPlaylistOpt(playlistID, fields)
	if err == nil || _d._retryCount < 1 {
		return
	}
	_ticker := time.NewTicker(_d._waitFor)
	defer _ticker.Stop()
	for _i := 0; _i < _d._retryCount && err != nil; _i++ {
		<-_ticker.C
		fp1, err = _d.SpotAPI.GetPlaylistOpt(playlistID, fields)
		if err != nil {
			log.Warn().Msgf("Call to 'GetPlaylistOpt' only succeeded due to retrying %d time(s).", _i+1)
		}
	}
	return
}

// GetPlaylistTracksOpt implements SpotAPI
func (_d SpotAPIWithRetry) GetPlaylistTracksOpt(playlistID spotifyAPI.ID, opt *spotifyAPI.Options, fields string) (pp1 *spotifyAPI.PlaylistTrackPage, err error) {
	pp1, err = _d.SpotAPI.GetPlaylistTracksOpt(playlistID, opt, fields)
	if err == nil || _d._retryCount < 1 {
		return
	}
	_ticker := time.NewTicker(_d._waitFor)
	defer _ticker.Stop()
	for _i := 0; _i < _d._retryCount && err != nil; _i++ {
		<-_ticker.C
		pp1, err = _d.SpotAPI.GetPlaylistTracksOpt(playlistID, opt, fields)
		if err != nil {
			log.Warn().Msgf("Call to 'GetPlaylistTracksOpt' only succeeded due to retrying %d time(s).", _i+1)
		}
	}
	return
}

// Search implements SpotAPI
func (_d SpotAPIWithRetry) Search(query string, t spotifyAPI.SearchType) (sp1 *spotifyAPI.SearchResult, err error) {
	sp1, err = _d.SpotAPI.Search(query, t)
	if err == nil || _d._retryCount < 1 {
		return
	}
	_ticker := time.NewTicker(_d._waitFor)
	defer _ticker.Stop()
	for _i := 0; _i < _d._retryCount && err != nil; _i++ {
		<-_ticker.C
		sp1, err = _d.SpotAPI.Search(query, t)
		if err != nil {
			log.Warn().Msgf("Call to 'Search' only succeeded due to retrying %d time(s).", _i+1)
		}
	}
	return
}
