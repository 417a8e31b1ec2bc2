package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-bio-link/internal/config"
	"github.com/MKhiriev/go-bio-link/internal/logger"
	"github.com/MKhiriev/go-bio-link/internal/utils"
	"github.com/MKhiriev/go-bio-link/models"
)

// weatherClient talks to an Open-Meteo compatible forecast API. No
// credentials are required.
type weatherClient struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewWeatherClient constructs a [WeatherClient] against the configured
// forecast endpoint.
func NewWeatherClient(provider config.Provider, timeout time.Duration, logger *logger.Logger) (WeatherClient, error) {
	client, err := newProviderClient(provider.Address, timeout)
	if err != nil {
		return nil, err
	}

	return &weatherClient{client: client, logger: logger}, nil
}

type forecastResponse struct {
	CurrentWeather struct {
		Temperature float64 `json:"temperature"`
		WeatherCode int     `json:"weathercode"`
	} `json:"current_weather"`
}

// CurrentWeather implements [WeatherClient].
func (w *weatherClient) CurrentWeather(ctx context.Context, latitude, longitude float64) (*models.Weather, error) {
	resp, err := w.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"latitude":        strconv.FormatFloat(latitude, 'f', 4, 64),
			"longitude":       strconv.FormatFloat(longitude, 'f', 4, 64),
			"current_weather": "true",
		}).
		Get("/v1/forecast")
	if err != nil {
		return nil, fmt.Errorf("weather request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("weather request: %w", err)
	}

	var payload forecastResponse
	if err = json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, fmt.Errorf("weather response: %w", err)
	}

	return &models.Weather{
		TemperatureC: payload.CurrentWeather.Temperature,
		Condition:    weatherCondition(payload.CurrentWeather.WeatherCode),
		FetchedAt:    time.Now(),
	}, nil
}

// weatherCondition maps WMO interpretation codes to display labels.
func weatherCondition(code int) string {
	switch {
	case code == 0:
		return "clear"
	case code <= 3:
		return "partly cloudy"
	case code <= 48:
		return "fog"
	case code <= 57:
		return "drizzle"
	case code <= 67:
		return "rain"
	case code <= 77:
		return "snow"
	case code <= 82:
		return "showers"
	case code <= 86:
		return "snow showers"
	default:
		return "thunderstorm"
	}
}
