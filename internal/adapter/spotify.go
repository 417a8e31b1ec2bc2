package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-bio-link/internal/config"
	"github.com/MKhiriev/go-bio-link/internal/logger"
	"github.com/MKhiriev/go-bio-link/internal/utils"
	"github.com/MKhiriev/go-bio-link/models"
)

// spotifyClient talks to the Spotify Web API for the now-playing widget.
type spotifyClient struct {
	client *utils.HTTPClient
	token  string
	logger *logger.Logger
}

// NewSpotifyClient constructs a [NowPlayingClient] against the configured
// Spotify endpoint. Returns an error if the provider address is missing or
// malformed.
func NewSpotifyClient(provider config.Provider, timeout time.Duration, logger *logger.Logger) (NowPlayingClient, error) {
	client, err := newProviderClient(provider.Address, timeout)
	if err != nil {
		return nil, err
	}

	return &spotifyClient{client: client, token: provider.Token, logger: logger}, nil
}

// currentlyPlayingResponse mirrors the subset of the Spotify
// currently-playing payload the widget needs.
type currentlyPlayingResponse struct {
	IsPlaying  bool  `json:"is_playing"`
	ProgressMs int64 `json:"progress_ms"`
	Item       struct {
		Name    string `json:"name"`
		Artists []struct {
			Name string `json:"name"`
		} `json:"artists"`
		Album struct {
			Images []struct {
				URL string `json:"url"`
			} `json:"images"`
		} `json:"album"`
	} `json:"item"`
}

// CurrentTrack implements [NowPlayingClient]. A 204 response means nothing
// is playing and yields a nil payload without error.
func (s *spotifyClient) CurrentTrack(ctx context.Context) (*models.NowPlaying, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.token).
		Get("/v1/me/player/currently-playing")
	if err != nil {
		return nil, fmt.Errorf("now-playing request: %w", err)
	}
	if resp.StatusCode() == http.StatusNoContent {
		return nil, nil
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("now-playing request: %w", err)
	}

	var payload currentlyPlayingResponse
	if err = json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, fmt.Errorf("now-playing response: %w", err)
	}

	nowPlaying := &models.NowPlaying{
		Track:      payload.Item.Name,
		IsPlaying:  payload.IsPlaying,
		ProgressMs: payload.ProgressMs,
		FetchedAt:  time.Now(),
	}
	if len(payload.Item.Artists) > 0 {
		nowPlaying.Artist = payload.Item.Artists[0].Name
	}
	if len(payload.Item.Album.Images) > 0 {
		nowPlaying.AlbumArt = payload.Item.Album.Images[0].URL
	}

	return nowPlaying, nil
}
