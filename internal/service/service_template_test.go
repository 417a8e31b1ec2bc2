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

func newTemplateService(templates *mockTemplateRepository, profiles *mockProfileRepository) TemplateService {
	return NewTemplateService(templates, profiles, NewProfileService(profiles, logger.Nop()), logger.Nop())
}

func TestListTemplates(t *testing.T) {
	templates := &mockTemplateRepository{
		listFn: func(_ context.Context) ([]models.Template, error) {
			return []models.Template{{TemplateID: 1, Name: "Minimal"}}, nil
		},
	}

	list, err := newTemplateService(templates, &mockProfileRepository{}).ListTemplates(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Minimal", list[0].Name)
}

func TestApplyTemplate_MergesOntoStoredConfig(t *testing.T) {
	var saved json.RawMessage

	templates := &mockTemplateRepository{
		findByIDFn: func(_ context.Context, templateID int64) (models.Template, error) {
			return models.Template{
				TemplateID: templateID,
				Name:       "Midnight",
				Config:     json.RawMessage(`{"styles":{"global":{"background_color":"#0b0b12"}}}`),
			}, nil
		},
	}
	profiles := &mockProfileRepository{
		findByIDFn: func(_ context.Context, profileID int64) (models.Profile, error) {
			return models.Profile{
				ProfileID: profileID,
				IsActive:  true,
				Config:    json.RawMessage(`{"projects":[{"title":"Analytical Engine"}]}`),
			}, nil
		},
		saveConfigFn: func(_ context.Context, _ int64, config json.RawMessage) error {
			saved = config
			return nil
		},
	}

	_, err := newTemplateService(templates, profiles).ApplyTemplate(context.Background(), 1, 2)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(saved, &doc))

	// applying a theme never wipes existing content
	assert.Contains(t, doc, "projects")
	assert.Contains(t, doc, "styles")
}

func TestApplyTemplate_PremiumOnlyRequiresEntitlement(t *testing.T) {
	templates := &mockTemplateRepository{
		findByIDFn: func(_ context.Context, templateID int64) (models.Template, error) {
			return models.Template{TemplateID: templateID, Name: "Neon", PremiumOnly: true, Config: json.RawMessage(`{}`)}, nil
		},
	}
	profiles := &mockProfileRepository{
		findByIDFn: func(_ context.Context, profileID int64) (models.Profile, error) {
			return models.Profile{ProfileID: profileID, IsActive: true}, nil
		},
		saveConfigFn: func(_ context.Context, _ int64, _ json.RawMessage) error {
			t.Fatal("premium template must not be applied without entitlement")
			return nil
		},
	}

	_, err := newTemplateService(templates, profiles).ApplyTemplate(context.Background(), 1, 2)
	assert.ErrorIs(t, err, ErrPremiumRequired)
}

func TestApplyTemplate_PremiumProfileAllowed(t *testing.T) {
	applied := false

	templates := &mockTemplateRepository{
		findByIDFn: func(_ context.Context, templateID int64) (models.Template, error) {
			return models.Template{TemplateID: templateID, Name: "Neon", PremiumOnly: true, Config: json.RawMessage(`{}`)}, nil
		},
	}
	profiles := &mockProfileRepository{
		findByIDFn: func(_ context.Context, profileID int64) (models.Profile, error) {
			return models.Profile{
				ProfileID:        profileID,
				IsActive:         true,
				IsPremium:        true,
				PremiumExpiresAt: time.Now().Add(time.Hour),
			}, nil
		},
		saveConfigFn: func(_ context.Context, _ int64, _ json.RawMessage) error {
			applied = true
			return nil
		},
	}

	_, err := newTemplateService(templates, profiles).ApplyTemplate(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.True(t, applied)
}

func TestApplyTemplate_UnknownTemplate(t *testing.T) {
	_, err := newTemplateService(&mockTemplateRepository{}, &mockProfileRepository{}).ApplyTemplate(context.Background(), 1, 404)
	assert.ErrorIs(t, err, store.ErrNoTemplateWasFound)
}
