// Package adapter holds the HTTP clients for the third-party widget
// providers. Each client degrades to a nil payload on upstream failure:
// a broken integration must never break the page that embeds it.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-bio-link/models"
)

// NowPlayingClient fetches the currently playing track for the music widget.
type NowPlayingClient interface {
	// CurrentTrack returns the track playing right now, or a nil payload
	// when nothing is playing.
	CurrentTrack(ctx context.Context) (*models.NowPlaying, error)
}

// WeatherClient fetches current conditions for the weather widget.
type WeatherClient interface {
	CurrentWeather(ctx context.Context, latitude, longitude float64) (*models.Weather, error)
}

// CodeActivityClient fetches today's coding time for the code activity widget.
type CodeActivityClient interface {
	// TodayActivity uses the profile-supplied API token; the server holds
	// no WakaTime credential of its own.
	TodayActivity(ctx context.Context, apiToken string) (*models.CodeActivity, error)
}

// ContributionsClient fetches contribution counts for the GitHub widget.
type ContributionsClient interface {
	YearContributions(ctx context.Context, username string) (*models.Contributions, error)
}
