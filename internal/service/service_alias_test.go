package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/MKhiriev/go-bio-link/internal/logger"
	"github.com/MKhiriev/go-bio-link/internal/store"
	"github.com/MKhiriev/go-bio-link/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAliasService(repo *mockProfileRepository) AliasService {
	return NewAliasService(repo, NewProfileService(repo, logger.Nop()), logger.Nop())
}

func premiumCaller(id int64) func(ctx context.Context, profileID int64) (models.Profile, error) {
	return func(_ context.Context, profileID int64) (models.Profile, error) {
		if profileID != id {
			return models.Profile{}, store.ErrNoProfileWasFound
		}
		return models.Profile{ProfileID: id, Username: "caller", IsActive: true, IsPremium: true}, nil
	}
}

func TestCheckAlias_Available(t *testing.T) {
	repo := &mockProfileRepository{
		findByIDFn: premiumCaller(1),
	}

	check, err := newAliasService(repo).CheckAlias(context.Background(), 1, "my-cool-page")
	require.NoError(t, err)
	assert.True(t, check.Available)
	assert.Empty(t, check.Reason)
}

func TestCheckAlias_InvalidFormat(t *testing.T) {
	svc := newAliasService(&mockProfileRepository{findByIDFn: premiumCaller(1)})

	for _, alias := range []string{"", "ab", "has spaces", "UPPER!case?", "-leading"} {
		_, err := svc.CheckAlias(context.Background(), 1, alias)
		assert.ErrorIs(t, err, ErrInvalidAlias, "alias %q", alias)
	}
}

func TestCheckAlias_LowercasesBeforeValidation(t *testing.T) {
	repo := &mockProfileRepository{findByIDFn: premiumCaller(1)}

	check, err := newAliasService(repo).CheckAlias(context.Background(), 1, "  My-Cool-Page  ")
	require.NoError(t, err)
	assert.True(t, check.Available)
}

func TestCheckAlias_PremiumRequired(t *testing.T) {
	repo := &mockProfileRepository{
		findByIDFn: func(_ context.Context, profileID int64) (models.Profile, error) {
			return models.Profile{ProfileID: profileID, IsActive: true}, nil
		},
	}

	_, err := newAliasService(repo).CheckAlias(context.Background(), 1, "my-cool-page")
	assert.ErrorIs(t, err, ErrPremiumRequired)
}

func TestCheckAlias_LapsedPremiumRejected(t *testing.T) {
	repo := &mockProfileRepository{
		findByIDFn: func(_ context.Context, profileID int64) (models.Profile, error) {
			return models.Profile{
				ProfileID:        profileID,
				IsActive:         true,
				IsPremium:        true,
				PremiumExpiresAt: time.Now().Add(-time.Minute),
			}, nil
		},
	}

	_, err := newAliasService(repo).CheckAlias(context.Background(), 1, "my-cool-page")
	assert.ErrorIs(t, err, ErrPremiumRequired)
}

func TestCheckAlias_ReservedRoute(t *testing.T) {
	repo := &mockProfileRepository{findByIDFn: premiumCaller(1)}

	check, err := newAliasService(repo).CheckAlias(context.Background(), 1, "dashboard")
	require.NoError(t, err)
	assert.False(t, check.Available)
	assert.Contains(t, check.Reason, "reserved")
}

func TestCheckAlias_ReservedRouteConflictsWithoutPremium(t *testing.T) {
	// Reserved names must read as a conflict for every caller, so their
	// check runs before the entitlement gate and touches no stored data.
	repo := &mockProfileRepository{
		findByIDFn: func(_ context.Context, profileID int64) (models.Profile, error) {
			return models.Profile{
				ProfileID:        profileID,
				IsActive:         true,
				IsPremium:        true,
				PremiumExpiresAt: time.Now().Add(-time.Hour),
			}, nil
		},
	}

	check, err := newAliasService(repo).CheckAlias(context.Background(), 1, "dashboard")
	require.NoError(t, err)
	assert.False(t, check.Available)
	assert.Contains(t, check.Reason, "reserved")
}

func TestCheckAlias_ReservedRouteNeedsNoProfileRecord(t *testing.T) {
	repo := &mockProfileRepository{
		findByIDFn: func(_ context.Context, _ int64) (models.Profile, error) {
			t.Fatal("reserved names must conflict before any profile lookup")
			return models.Profile{}, nil
		},
	}

	check, err := newAliasService(repo).CheckAlias(context.Background(), 1, "api")
	require.NoError(t, err)
	assert.False(t, check.Available)
}

func TestCheckAlias_CollidesWithOtherUsername(t *testing.T) {
	repo := &mockProfileRepository{
		findByIDFn: premiumCaller(1),
		findFoldFn: func(_ context.Context, username string) (models.Profile, error) {
			if username == "grace" {
				return models.Profile{ProfileID: 2, Username: "grace"}, nil
			}
			return models.Profile{}, store.ErrNoProfileWasFound
		},
	}

	check, err := newAliasService(repo).CheckAlias(context.Background(), 1, "grace")
	require.NoError(t, err)
	assert.False(t, check.Available)
}

func TestCheckAlias_OwnUsernameAllowed(t *testing.T) {
	repo := &mockProfileRepository{
		findByIDFn: premiumCaller(1),
		findFoldFn: func(_ context.Context, username string) (models.Profile, error) {
			if username == "caller" {
				return models.Profile{ProfileID: 1, Username: "caller"}, nil
			}
			return models.Profile{}, store.ErrNoProfileWasFound
		},
	}

	check, err := newAliasService(repo).CheckAlias(context.Background(), 1, "caller")
	require.NoError(t, err)
	assert.True(t, check.Available)
}

func TestCheckAlias_CollidesWithOtherAlias(t *testing.T) {
	repo := &mockProfileRepository{
		findByIDFn: premiumCaller(1),
		listFn: func(_ context.Context) ([]models.Profile, error) {
			return []models.Profile{
				// Lapsed premium still holds its alias: renewal must not
				// find the name gone. The stored casing does not matter.
				{
					ProfileID:        2,
					Username:         "grace",
					IsPremium:        true,
					PremiumExpiresAt: time.Now().Add(-time.Hour),
					Config:           json.RawMessage(`{"premium_features":{"page_alias":"Amazing-Grace"}}`),
				},
			}, nil
		},
	}

	check, err := newAliasService(repo).CheckAlias(context.Background(), 1, "amazing-grace")
	require.NoError(t, err)
	assert.False(t, check.Available)
}

func TestCheckAlias_OwnAliasStaysAvailable(t *testing.T) {
	repo := &mockProfileRepository{
		findByIDFn: func(_ context.Context, profileID int64) (models.Profile, error) {
			return models.Profile{
				ProfileID: profileID,
				Username:  "caller",
				IsActive:  true,
				IsPremium: true,
				Config:    json.RawMessage(`{"premium_features":{"page_alias":"my-cool-page"}}`),
			}, nil
		},
		listFn: func(ctx context.Context) ([]models.Profile, error) {
			caller, _ := premiumCaller(1)(ctx, 1)
			caller.Config = json.RawMessage(`{"premium_features":{"page_alias":"my-cool-page"}}`)
			return []models.Profile{caller}, nil
		},
	}

	check, err := newAliasService(repo).CheckAlias(context.Background(), 1, "my-cool-page")
	require.NoError(t, err)
	assert.True(t, check.Available, "re-checking your own alias must stay available")
}

func TestSetAlias_PersistsThroughMergePath(t *testing.T) {
	var saved json.RawMessage

	repo := &mockProfileRepository{
		findByIDFn: func(_ context.Context, profileID int64) (models.Profile, error) {
			return models.Profile{
				ProfileID: profileID,
				Username:  "caller",
				IsActive:  true,
				IsPremium: true,
				Config:    json.RawMessage(`{"hero_title":"Keep Me"}`),
			}, nil
		},
		saveConfigFn: func(_ context.Context, _ int64, config json.RawMessage) error {
			saved = config
			return nil
		},
	}

	check, err := newAliasService(repo).SetAlias(context.Background(), 1, "My-Cool-Page")
	require.NoError(t, err)
	require.True(t, check.Available)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(saved, &doc))

	// merged, not replaced: the existing hero title survives the claim
	assert.Equal(t, "Keep Me", doc["hero_title"])

	premiumFeatures, ok := doc["premium_features"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "my-cool-page", premiumFeatures["page_alias"])
}

func TestSetAlias_TakenAliasNotPersisted(t *testing.T) {
	repo := &mockProfileRepository{
		findByIDFn: premiumCaller(1),
		listFn: func(_ context.Context) ([]models.Profile, error) {
			return []models.Profile{
				{
					ProfileID: 2,
					Username:  "grace",
					IsPremium: true,
					Config:    json.RawMessage(`{"premium_features":{"page_alias":"taken"}}`),
				},
			}, nil
		},
		saveConfigFn: func(_ context.Context, _ int64, _ json.RawMessage) error {
			t.Fatal("a taken alias must not be persisted")
			return nil
		},
	}

	check, err := newAliasService(repo).SetAlias(context.Background(), 1, "taken")
	require.NoError(t, err)
	assert.False(t, check.Available)
}
