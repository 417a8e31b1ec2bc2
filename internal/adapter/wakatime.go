package adapter

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-bio-link/internal/config"
	"github.com/MKhiriev/go-bio-link/internal/logger"
	"github.com/MKhiriev/go-bio-link/internal/utils"
	"github.com/MKhiriev/go-bio-link/models"
)

// wakatimeClient talks to the WakaTime API for the code activity widget.
// Authentication is per profile: each request carries the API token stored
// in the owner's page configuration.
type wakatimeClient struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewWakaTimeClient constructs a [CodeActivityClient] against the
// configured WakaTime endpoint.
func NewWakaTimeClient(provider config.Provider, timeout time.Duration, logger *logger.Logger) (CodeActivityClient, error) {
	client, err := newProviderClient(provider.Address, timeout)
	if err != nil {
		return nil, err
	}

	return &wakatimeClient{client: client, logger: logger}, nil
}

type statusBarResponse struct {
	Data struct {
		GrandTotal struct {
			TotalSeconds float64 `json:"total_seconds"`
			Text         string  `json:"text"`
		} `json:"grand_total"`
	} `json:"data"`
}

// TodayActivity implements [CodeActivityClient]. WakaTime uses HTTP Basic
// auth with the API key as the username.
func (w *wakatimeClient) TodayActivity(ctx context.Context, apiToken string) (*models.CodeActivity, error) {
	if apiToken == "" {
		return nil, fmt.Errorf("code-activity request: %w", ErrUnauthorized)
	}

	resp, err := w.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(apiToken))).
		Get("/api/v1/users/current/status_bar/today")
	if err != nil {
		return nil, fmt.Errorf("code-activity request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("code-activity request: %w", err)
	}

	var payload statusBarResponse
	if err = json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, fmt.Errorf("code-activity response: %w", err)
	}

	return &models.CodeActivity{
		TotalSeconds:  payload.Data.GrandTotal.TotalSeconds,
		HumanReadable: payload.Data.GrandTotal.Text,
		FetchedAt:     time.Now(),
	}, nil
}
