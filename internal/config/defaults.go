package config

import "time"

// defaultConfig returns the built-in fallback values used when no other
// source sets a field. Secrets (token sign key, integration credentials)
// deliberately have no default.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "go-bio-link",
			TokenDuration: 24 * time.Hour,
			Version:       "dev",
		},
		Storage: Storage{
			DB: DB{
				Driver: "pgx",
			},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Integrations: Integrations{
			Spotify: Provider{
				Address: "https://api.spotify.com",
			},
			Weather: Provider{
				Address: "https://api.open-meteo.com",
			},
			WakaTime: Provider{
				Address: "https://api.wakatime.com",
			},
			GitHub: Provider{
				Address: "https://api.github.com",
			},
			RequestTimeout: 10 * time.Second,
		},
		Workers: Workers{
			WidgetRefreshInterval: 5 * time.Minute,
		},
	}
}
