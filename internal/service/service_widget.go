package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-bio-link/internal/adapter"
	"github.com/MKhiriev/go-bio-link/internal/logger"
	"github.com/MKhiriev/go-bio-link/internal/workers"
	"github.com/MKhiriev/go-bio-link/models"
)

// widgetService is the concrete implementation of WidgetService. It fans
// out to the third-party widget providers for every widget the profile has
// enabled, caching results so repeat page views within the cache TTL do not
// hit rate-limited upstreams.
//
// Upstream failures degrade to a missing widget, never to a failed page.
type widgetService struct {
	profileService ProfileService

	nowPlaying    adapter.NowPlayingClient
	weather       adapter.WeatherClient
	codeActivity  adapter.CodeActivityClient
	contributions adapter.ContributionsClient

	cache  *workers.WidgetCache
	logger *logger.Logger
}

// NewWidgetService constructs a WidgetService. Any client may be nil when
// its provider is not configured; the corresponding widget then simply
// never renders.
func NewWidgetService(
	profileService ProfileService,
	nowPlaying adapter.NowPlayingClient,
	weather adapter.WeatherClient,
	codeActivity adapter.CodeActivityClient,
	contributions adapter.ContributionsClient,
	cache *workers.WidgetCache,
	logger *logger.Logger,
) WidgetService {
	return &widgetService{
		profileService: profileService,
		nowPlaying:     nowPlaying,
		weather:        weather,
		codeActivity:   codeActivity,
		contributions:  contributions,
		cache:          cache,
		logger:         logger,
	}
}

// GetWidgets returns the live widget payloads for the profile.
//
// Widget enablement comes from the effective configuration, which the
// normalizer has already gated on the profile's entitlement: for a
// non-premium profile every toggle is off and the result is empty without
// any provider call.
func (w *widgetService) GetWidgets(ctx context.Context, profileID int64) (models.WidgetSet, error) {
	log := logger.FromContext(ctx)

	cfg, err := w.profileService.GetEffectiveConfig(ctx, profileID)
	if err != nil {
		return models.WidgetSet{}, err
	}

	widgets := cfg.PremiumFeatures.ProfileWidgets
	if !widgets.NowPlaying && !widgets.Weather && !widgets.CodeActivity && !widgets.Contributions {
		return models.WidgetSet{}, nil
	}

	if cached, ok := w.cache.Get(profileID); ok {
		return cached, nil
	}

	var set models.WidgetSet
	var wg sync.WaitGroup

	if widgets.NowPlaying && w.nowPlaying != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			playing, err := w.nowPlaying.CurrentTrack(ctx)
			if err != nil {
				log.Warn().Err(err).Int64("id", profileID).Msg("now-playing widget fetch failed")
				return
			}
			set.NowPlaying = playing
		}()
	}

	if widgets.Weather && w.weather != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			weather, err := w.weather.CurrentWeather(ctx, widgets.WeatherLatitude, widgets.WeatherLongitude)
			if err != nil {
				log.Warn().Err(err).Int64("id", profileID).Msg("weather widget fetch failed")
				return
			}
			if weather != nil {
				weather.Location = widgets.WeatherLocation
			}
			set.Weather = weather
		}()
	}

	if widgets.CodeActivity && w.codeActivity != nil && cfg.WakatimeToken != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			activity, err := w.codeActivity.TodayActivity(ctx, cfg.WakatimeToken)
			if err != nil {
				log.Warn().Err(err).Int64("id", profileID).Msg("code-activity widget fetch failed")
				return
			}
			set.CodeActivity = activity
		}()
	}

	if widgets.Contributions && w.contributions != nil && widgets.GitHubUsername != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			contributions, err := w.contributions.YearContributions(ctx, widgets.GitHubUsername)
			if err != nil {
				log.Warn().Err(err).Int64("id", profileID).Msg("contributions widget fetch failed")
				return
			}
			set.Contributions = contributions
		}()
	}

	wg.Wait()

	w.cache.Put(profileID, set)

	return set, nil
}
