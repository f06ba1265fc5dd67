package spotify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeQuery(t *testing.T) {
	assert := assert.New(t)

	q, err := DecodeQuery("spotify:track:4uLU6hMCjMI75M1A2tKUQC")
	assert.NoError(err)
	assert.Equal(Query{Kind: KindTrack, ID: "4uLU6hMCjMI75M1A2tKUQC"}, q)

	q, err = DecodeQuery("spotify:playlist:37i9dQZF1DXa2SPUyWl8Y5")
	assert.NoError(err)
	assert.Equal(Query{Kind: KindPlaylist, ID: "37i9dQZF1DXa2SPUyWl8Y5"}, q)

	q, err = DecodeQuery("https://open.spotify.com/album/08tZq3FDsspdU6ycn8Jl2o")
	assert.NoError(err)
	assert.Equal(Query{Kind: KindAlbum, ID: "08tZq3FDsspdU6ycn8Jl2o"}, q)

	// Share links carry tracking parameters and sometimes a locale segment
	q, err = DecodeQuery("https://open.spotify.com/intl-de/track/4uLU6hMCjMI75M1A2tKUQC?si=f81cb10d")
	assert.NoError(err)
	assert.Equal(Query{Kind: KindTrack, ID: "4uLU6hMCjMI75M1A2tKUQC"}, q)

	// Links pasted from chats frequently lack the scheme
	q, err = DecodeQuery("open.spotify.com/track/4uLU6hMCjMI75M1A2tKUQC")
	assert.NoError(err)
	assert.Equal(Query{Kind: KindTrack, ID: "4uLU6hMCjMI75M1A2tKUQC"}, q)

	// Surrounding whitespace is tolerated
	q, err = DecodeQuery("  spotify:track:4uLU6hMCjMI75M1A2tKUQC\n")
	assert.NoError(err)
	assert.Equal("4uLU6hMCjMI75M1A2tKUQC", q.ID)
}

func TestDecodeQueryRejectsGarbage(t *testing.T) {
	assert := assert.New(t)

	for _, raw := range []string{
		"",
		"just some text",
		"spotify:track",
		"spotify:track:tooShort",
		"spotify:artist:4uLU6hMCjMI75M1A2tKUQC",
		"spotify:al:bum:08tZq3FDsspdU6ycn8Jl2o",
		"https://example.com/track/4uLU6hMCjMI75M1A2tKUQC",
		"https://open.spotify.com/track",
		"https://open.spotify.com/track/not-a-valid-id",
	} {
		_, err := DecodeQuery(raw)
		assert.True(errors.Is(err, ErrUnsupportedQuery), "expected ErrUnsupportedQuery for '%s'", raw)
	}
}

func TestValidID(t *testing.T) {
	assert := assert.New(t)

	assert.True(ValidID("4uLU6hMCjMI75M1A2tKUQC"))
	assert.False(ValidID(""))
	assert.False(ValidID("4uLU6hMCjMI75M1A2tKUQ"))
	assert.False(ValidID("4uLU6hMCjMI75M1A2tKUQC1"))
	assert.False(ValidID("4uLU6hMCjMI75M1A2tKUQ_"))
}

func TestLinkAndURI(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("https://open.spotify.com/playlist/37i9dQZF1DXa2SPUyWl8Y5", Link(KindPlaylist, "37i9dQZF1DXa2SPUyWl8Y5"))
	assert.Equal("spotify:album:08tZq3FDsspdU6ycn8Jl2o", URI(KindAlbum, "08tZq3FDsspdU6ycn8Jl2o"))
}
