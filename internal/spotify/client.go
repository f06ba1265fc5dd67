package spotify

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	spotifyAPI "github.com/zmb3/spotify"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	tokenMaxAttempts = 3
	apiRetryCount    = 2
	apiRetryWait     = 100 * time.Millisecond

	backoffBase   = 500 * time.Millisecond
	backoffCeil   = 5 * time.Second
	backoffMaxExp = 4
)

// Client talks to the Spotify Web API on behalf of the application itself,
// using the OAuth2 client credentials flow. The bearer token is fetched
// lazily, reused while valid and replaced transparently once it expired.
// Client is safe for concurrent use.
type Client struct {
	conf *clientcredentials.Config

	mu    sync.Mutex
	token *oauth2.Token
	api   SpotAPI

	// newAPI builds the Web API client for a freshly obtained token
	newAPI func(token *oauth2.Token) SpotAPI
}

// NewClient returns a Client for the given app credentials as issued by the
// Spotify developer dashboard. No network traffic happens before the first
// call to API.
func NewClient(clientID, clientSecret string) (*Client, error) {
	if clientID == "" || clientSecret == "" {
		return nil, errors.New("both a Spotify client ID and a client secret are required")
	}

	return &Client{
		conf: &clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     spotifyAPI.TokenURL,
		},
		newAPI: func(token *oauth2.Token) SpotAPI {
			client := spotifyAPI.Authenticator{}.NewClient(token)

			return NewSpotAPIWithRetry(&client, apiRetryCount, apiRetryWait)
		},
	}, nil
}

// API hands out a ready-to-use Web API client, fetching or refreshing the
// bearer token first in case the current one is missing or expired.
func (c *Client) API(ctx context.Context) (SpotAPI, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.api != nil && c.token.Valid() {
		return c.api, nil
	}

	token, err := c.fetchToken(ctx)
	if err != nil {
		return nil, err
	}

	log.Debug().Time("expiry", token.Expiry).Msg("Obtained a fresh bearer token.")

	c.token = token
	c.api = c.newAPI(token)

	return c.api, nil
}

// fetchToken runs the client credentials flow. Transient failures are retried
// with exponential backoff, rejections by the token endpoint are not - those
// surface immediately as *AuthError.
func (c *Client) fetchToken(ctx context.Context) (*oauth2.Token, error) {
	backoff := NewExponentialBackoff(backoffBase, backoffCeil, backoffMaxExp)

	var lastErr error

	for attempt := 0; attempt < tokenMaxAttempts; attempt++ {
		if attempt > 0 {
			delay := backoff.Delay()
			log.Debug().Dur("delay", delay).Int("attempt", attempt+1).Msg("Retrying to obtain bearer token.")

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		token, err := c.conf.Token(ctx)
		if err == nil {
			return token, nil
		}

		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.Response.StatusCode < 500 {
			return nil, &AuthError{StatusCode: retrieveErr.Response.StatusCode, Err: err}
		}

		lastErr = err
	}

	return nil, fmt.Errorf("could not obtain bearer token from Spotify: %w", lastErr)
}
