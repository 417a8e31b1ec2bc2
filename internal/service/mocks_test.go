package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-bio-link/internal/store"
	"github.com/MKhiriev/go-bio-link/models"
)

// ─────────────────────────────────────────────
// Mock: store.ProfileRepository
// ─────────────────────────────────────────────

type mockProfileRepository struct {
	createFn     func(ctx context.Context, profile models.Profile) (models.Profile, error)
	findByIDFn   func(ctx context.Context, profileID int64) (models.Profile, error)
	findFoldFn   func(ctx context.Context, username string) (models.Profile, error)
	findExactFn  func(ctx context.Context, username string) (models.Profile, error)
	saveConfigFn func(ctx context.Context, profileID int64, config json.RawMessage) error
	listFn       func(ctx context.Context) ([]models.Profile, error)
	searchFn     func(ctx context.Context, filter models.ProfileFilter) ([]models.Profile, error)
}

func (m *mockProfileRepository) CreateProfile(ctx context.Context, profile models.Profile) (models.Profile, error) {
	if m.createFn != nil {
		return m.createFn(ctx, profile)
	}
	return profile, nil
}

func (m *mockProfileRepository) FindProfileByID(ctx context.Context, profileID int64) (models.Profile, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, profileID)
	}
	return models.Profile{}, store.ErrNoProfileWasFound
}

func (m *mockProfileRepository) FindProfileByUsernameFold(ctx context.Context, username string) (models.Profile, error) {
	if m.findFoldFn != nil {
		return m.findFoldFn(ctx, username)
	}
	return models.Profile{}, store.ErrNoProfileWasFound
}

func (m *mockProfileRepository) FindProfileByUsernameExact(ctx context.Context, username string) (models.Profile, error) {
	if m.findExactFn != nil {
		return m.findExactFn(ctx, username)
	}
	return models.Profile{}, store.ErrNoProfileWasFound
}

func (m *mockProfileRepository) SaveConfig(ctx context.Context, profileID int64, config json.RawMessage) error {
	if m.saveConfigFn != nil {
		return m.saveConfigFn(ctx, profileID, config)
	}
	return nil
}

func (m *mockProfileRepository) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockProfileRepository) SearchProfiles(ctx context.Context, filter models.ProfileFilter) ([]models.Profile, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, filter)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: store.TemplateRepository
// ─────────────────────────────────────────────

type mockTemplateRepository struct {
	listFn     func(ctx context.Context) ([]models.Template, error)
	findByIDFn func(ctx context.Context, templateID int64) (models.Template, error)
}

func (m *mockTemplateRepository) ListTemplates(ctx context.Context) ([]models.Template, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockTemplateRepository) FindTemplateByID(ctx context.Context, templateID int64) (models.Template, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, templateID)
	}
	return models.Template{}, store.ErrNoTemplateWasFound
}
