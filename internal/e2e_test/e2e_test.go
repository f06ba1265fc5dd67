package e2e_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/gavv/httpexpect/v2"
	"github.com/golang/mock/gomock"
	spotifyAPI "github.com/zmb3/spotify"

	main "github.com/madsholme/spotlink/internal"
	"github.com/madsholme/spotlink/internal/constants"
	"github.com/madsholme/spotlink/internal/e2e_test/mocks"
	"github.com/madsholme/spotlink/internal/persistence"
	"github.com/madsholme/spotlink/internal/spotify"
)

const (
	testPassword = "open sesame"
	trackID      = "4uLU6hMCjMI75M1A2tKUQC"
	playlistID   = "37i9dQZF1DXcBWIGoYBM5M"
)

func TestAuthRequired(t *testing.T) {
	e, ctrl, _, _ := beforeEach(t)
	defer ctrl.Finish()

	// No credentials at all
	e.GET("/api/decode").WithQuery("q", spotify.URI(spotify.KindTrack, trackID)).
		Expect().Status(http.StatusUnauthorized)

	// Wrong password
	e.GET("/api/decode").WithQuery("q", spotify.URI(spotify.KindTrack, trackID)).
		WithHeader(constants.AuthHeaderName, "Bearer not quite").
		Expect().Status(http.StatusUnauthorized)
}

func TestDecode(t *testing.T) {
	e, ctrl, _, _ := beforeEach(t)
	defer ctrl.Finish()

	r := authed(e.GET("/api/decode")).WithQuery("q", "https://open.spotify.com/intl-de/track/"+trackID+"?si=abc123").
		Expect()
	r.Status(http.StatusOK)

	o := r.JSON().Object()
	o.Value("kind").Equal("track")
	o.Value("id").Equal(trackID)
	o.Value("uri").Equal("spotify:track:" + trackID)
	o.Value("link").Equal("https://open.spotify.com/track/" + trackID)

	// Missing parameter
	authed(e.GET("/api/decode")).Expect().Status(http.StatusBadRequest)

	// Not a Spotify link at all
	authed(e.GET("/api/decode")).WithQuery("q", "https://example.com/track/"+trackID).
		Expect().Status(http.StatusUnprocessableEntity)
}

func TestResolveTrack(t *testing.T) {
	e, ctrl, _, apiMock := beforeEach(t)
	defer ctrl.Finish()

	apiMock.EXPECT().GetTrack(spotifyAPI.ID(trackID)).Times(1).Return(fakeFullTrack(), nil)

	r := authed(e.GET("/api/resolve")).WithQuery("q", spotify.URI(spotify.KindTrack, trackID)).
		Expect()
	r.Status(http.StatusOK)

	o := r.JSON().Object()
	o.Value("id").Equal(trackID)
	o.Value("title").Equal("Bohemian Rhapsody")
	o.Value("artists").Array().Equal([]interface{}{"Queen"})
	o.Value("albumName").Equal("A Night at the Opera")
}

func TestResolvePartial(t *testing.T) {
	e, ctrl, _, _ := beforeEach(t)
	defer ctrl.Finish()

	// partial=true must not touch the Web API at all
	r := authed(e.GET("/api/resolve")).
		WithQuery("q", spotify.URI(spotify.KindPlaylist, playlistID)).
		WithQuery("partial", "true").
		Expect()
	r.Status(http.StatusOK)

	o := r.JSON().Object()
	o.Value("kind").Equal("playlist")
	o.Value("query").Equal(spotify.URI(spotify.KindPlaylist, playlistID))
}

func TestResolveUnknownTrack(t *testing.T) {
	e, ctrl, _, apiMock := beforeEach(t)
	defer ctrl.Finish()

	apiMock.EXPECT().GetTrack(spotifyAPI.ID(trackID)).Times(1).
		Return(nil, spotifyAPI.Error{Message: "non existing id", Status: http.StatusNotFound})

	authed(e.GET("/api/tracks/"+trackID)).Expect().Status(http.StatusNotFound)
}

func TestLibraryRoundtrip(t *testing.T) {
	e, ctrl, daoMock, apiMock := beforeEach(t)
	defer ctrl.Finish()

	apiMock.EXPECT().GetTrack(spotifyAPI.ID(trackID)).Times(1).Return(fakeFullTrack(), nil)
	daoMock.EXPECT().LoadEntries("alice").Times(1).Return([]*persistence.Entry{}, nil)

	var saved []*persistence.Entry
	daoMock.EXPECT().SaveEntries("alice", gomock.Any()).Times(1).
		DoAndReturn(func(ownerID string, entries []*persistence.Entry) error {
			saved = entries

			return nil
		})

	authed(e.POST("/api/library")).
		WithHeader(constants.OwnerHeaderName, "alice").
		WithJSON(map[string]string{"query": spotify.URI(spotify.KindTrack, trackID)}).
		Expect().Status(http.StatusCreated)

	if len(saved) != 1 {
		t.Fatalf("Expected exactly one entry to be persisted, got %d.", len(saved))
	}

	daoMock.EXPECT().LoadEntries("alice").Times(1).Return(saved, nil)

	r := authed(e.GET("/api/library")).WithHeader(constants.OwnerHeaderName, "alice").Expect()
	r.Status(http.StatusOK)

	o := r.JSON().Array().First().Object()
	o.Value("spotifyID").Equal(trackID)
	o.Value("name").Equal("Queen - Bohemian Rhapsody")
	o.Value("searchQuery").Equal("Queen - Bohemian Rhapsody")
	o.Value("link").Equal("https://open.spotify.com/track/" + trackID)
}

func TestLibraryPostRejectsGarbage(t *testing.T) {
	e, ctrl, _, _ := beforeEach(t)
	defer ctrl.Finish()

	authed(e.POST("/api/library")).
		WithJSON(map[string]string{"query": ""}).
		Expect().Status(http.StatusBadRequest)
}

func TestLibraryDeleteSlotOutOfRange(t *testing.T) {
	e, ctrl, daoMock, _ := beforeEach(t)
	defer ctrl.Finish()

	daoMock.EXPECT().LoadEntries(constants.DefaultOwnerID).Times(1).Return([]*persistence.Entry{}, nil)

	authed(e.DELETE("/api/library/3")).Expect().Status(http.StatusBadRequest)
}

func TestOwnerExportAndDeletion(t *testing.T) {
	e, ctrl, daoMock, _ := beforeEach(t)
	defer ctrl.Finish()

	daoMock.EXPECT().FetchJSONDump("alice").Times(1).Return([]byte(`{"entries":[]}`), nil)

	r := authed(e.GET("/api/you")).WithHeader(constants.OwnerHeaderName, "alice").Expect()
	r.Status(http.StatusOK)
	r.JSON().Object().Value("entries").Array().Empty()

	daoMock.EXPECT().DeleteOwnerRecord("alice").Times(1).Return(persistence.ErrOwnerNotFound)

	authed(e.DELETE("/api/you")).WithHeader(constants.OwnerHeaderName, "alice").
		Expect().Status(http.StatusBadRequest)
}

func beforeEach(t *testing.T) (*httpexpect.Expect, *gomock.Controller, *mocks.MockLibraryPersistor, *mocks.MockSpotAPI) {
	ctrl := gomock.NewController(t)

	daoMock := mocks.NewMockLibraryPersistor(ctrl)
	apiMock := mocks.NewMockSpotAPI(ctrl)
	apiMockCreator := func(ctx context.Context) (spotify.SpotAPI, error) {
		return apiMock, nil
	}

	handler := main.SetupForTest(daoMock, apiMockCreator, testPassword)

	e := httpexpect.WithConfig(httpexpect.Config{
		Client: &http.Client{
			Transport: httpexpect.NewBinder(handler),
			Jar:       httpexpect.NewJar(),
		},
		Reporter: httpexpect.NewAssertReporter(t),
		Printers: []httpexpect.Printer{
			httpexpect.NewDebugPrinter(t, true),
		},
	})

	return e, ctrl, daoMock, apiMock
}

func authed(r *httpexpect.Request) *httpexpect.Request {
	return r.WithHeader(constants.AuthHeaderName, "Bearer "+testPassword)
}

func fakeFullTrack() *spotifyAPI.FullTrack {
	return &spotifyAPI.FullTrack{
		SimpleTrack: spotifyAPI.SimpleTrack{
			ID:          spotifyAPI.ID(trackID),
			Name:        "Bohemian Rhapsody",
			Artists:     []spotifyAPI.SimpleArtist{{Name: "Queen"}},
			Duration:    354320,
			TrackNumber: 11,
		},
		Album: spotifyAPI.SimpleAlbum{
			Name:   "A Night at the Opera",
			Images: []spotifyAPI.Image{{URL: "https://i.scdn.co/image/large", Width: 640, Height: 640}},
		},
		ExternalIDs: map[string]string{"isrc": "GBUM71029604"},
	}
}
