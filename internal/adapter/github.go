package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-bio-link/internal/config"
	"github.com/MKhiriev/go-bio-link/internal/logger"
	"github.com/MKhiriev/go-bio-link/internal/utils"
	"github.com/MKhiriev/go-bio-link/models"
)

// githubClient talks to the GitHub GraphQL API for the contribution graph
// widget. A server-wide token is used; contribution calendars of public
// accounts do not need user-scoped credentials.
type githubClient struct {
	client *utils.HTTPClient
	token  string
	logger *logger.Logger
}

// NewGitHubClient constructs a [ContributionsClient] against the configured
// GitHub endpoint.
func NewGitHubClient(provider config.Provider, timeout time.Duration, logger *logger.Logger) (ContributionsClient, error) {
	client, err := newProviderClient(provider.Address, timeout)
	if err != nil {
		return nil, err
	}

	return &githubClient{client: client, token: provider.Token, logger: logger}, nil
}

const contributionsQuery = `query($login: String!) {
  user(login: $login) {
    contributionsCollection {
      contributionCalendar { totalContributions }
    }
  }
}`

type contributionsResponse struct {
	Data struct {
		User struct {
			ContributionsCollection struct {
				ContributionCalendar struct {
					TotalContributions int `json:"totalContributions"`
				} `json:"contributionCalendar"`
			} `json:"contributionsCollection"`
		} `json:"user"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// YearContributions implements [ContributionsClient].
func (g *githubClient) YearContributions(ctx context.Context, username string) (*models.Contributions, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+g.token).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"query":     contributionsQuery,
			"variables": map[string]string{"login": username},
		}).
		Post("/graphql")
	if err != nil {
		return nil, fmt.Errorf("contributions request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("contributions request: %w", err)
	}

	var payload contributionsResponse
	if err = json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, fmt.Errorf("contributions response: %w", err)
	}
	if len(payload.Errors) > 0 {
		return nil, fmt.Errorf("contributions request: %s", payload.Errors[0].Message)
	}

	return &models.Contributions{
		Total:     payload.Data.User.ContributionsCollection.ContributionCalendar.TotalContributions,
		Username:  username,
		FetchedAt: time.Now(),
	}, nil
}
