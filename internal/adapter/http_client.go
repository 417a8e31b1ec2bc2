package adapter

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-bio-link/internal/utils"
)

// newProviderClient builds a resty client for one widget provider with the
// base URL normalised and the shared outbound timeout applied.
func newProviderClient(address string, timeout time.Duration) (*utils.HTTPClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid provider address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return client, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
