package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// validTestConfig returns a config that passes validate().
func validTestConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.App.TokenSignKey = "test-sign-key"
	cfg.Storage.DB.DSN = "postgres://localhost/biolink"
	return cfg
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result and that earlier configs win.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			Storage: Storage{DB: DB{DSN: "postgres://first/biolink"}},
		},
		&StructuredConfig{
			App:     App{TokenSignKey: "sign-key"},
			Storage: Storage{DB: DB{DSN: "postgres://second/biolink"}},
		},
		defaultConfig(),
	)

	cfg, err := b.build()
	require.NoError(t, err)

	// first source wins for DSN, second contributes the sign key
	assert.Equal(t, "postgres://first/biolink", cfg.Storage.DB.DSN)
	assert.Equal(t, "sign-key", cfg.App.TokenSignKey)

	// defaults fill everything neither source set
	assert.Equal(t, "pgx", cfg.Storage.DB.Driver)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 5*time.Minute, cfg.Workers.WidgetRefreshInterval)
}

// TestBuild_ValidationFailure verifies that a merged config missing required
// fields is rejected.
func TestBuild_ValidationFailure(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, defaultConfig()) // no DSN, no sign key

	_, err := b.build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_FileMergedWhenPathSet(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{
			"token_sign_key": "from-json",
			"token_duration": "2h",
		},
		"storage": map[string]any{
			"db": map[string]any{"dsn": "postgres://json/biolink"},
		},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	cfg, err := b.withJSON().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "from-json", cfg.App.TokenSignKey)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "postgres://json/biolink", cfg.Storage.DB.DSN)
}

func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	_, err := b.withJSON().build()
	require.Error(t, err)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:   "valid",
			mutate: func(cfg *StructuredConfig) {},
		},
		{
			name:    "missing DSN",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "unknown driver",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = "oracle" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "missing HTTP address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "zero refresh interval",
			mutate:  func(cfg *StructuredConfig) { cfg.Workers.WidgetRefreshInterval = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
