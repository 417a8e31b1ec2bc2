// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/go-bio-link/internal/config"
	"github.com/MKhiriev/go-bio-link/internal/logger"
	"github.com/MKhiriev/go-bio-link/internal/service"
	"github.com/MKhiriev/go-bio-link/internal/validators"
	"github.com/MKhiriev/go-bio-link/models"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerProfileFn func(ctx context.Context, username, password string) (models.Profile, error)
	loginFn           func(ctx context.Context, username, password string) (models.Profile, error)
	createTokenFn     func(ctx context.Context, profile models.Profile) (models.Token, error)
	parseTokenFn      func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterProfile(ctx context.Context, username, password string) (models.Profile, error) {
	return m.registerProfileFn(ctx, username, password)
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (models.Profile, error) {
	return m.loginFn(ctx, username, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, profile models.Profile) (models.Token, error) {
	if m.createTokenFn == nil {
		return models.Token{SignedString: "signed.jwt.token"}, nil
	}
	return m.createTokenFn(ctx, profile)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

type mockProfileService struct {
	getProfileFn         func(ctx context.Context, profileID int64) (models.Profile, error)
	getEffectiveConfigFn func(ctx context.Context, profileID int64) (models.PageConfig, error)
	getStoredConfigFn    func(ctx context.Context, profileID int64) (json.RawMessage, error)
	saveConfigSectionFn  func(ctx context.Context, profileID int64, section json.RawMessage) (json.RawMessage, error)
}

func (m *mockProfileService) GetProfile(ctx context.Context, profileID int64) (models.Profile, error) {
	return m.getProfileFn(ctx, profileID)
}

func (m *mockProfileService) GetEffectiveConfig(ctx context.Context, profileID int64) (models.PageConfig, error) {
	return m.getEffectiveConfigFn(ctx, profileID)
}

func (m *mockProfileService) GetStoredConfig(ctx context.Context, profileID int64) (json.RawMessage, error) {
	return m.getStoredConfigFn(ctx, profileID)
}

func (m *mockProfileService) SaveConfigSection(ctx context.Context, profileID int64, section json.RawMessage) (json.RawMessage, error) {
	return m.saveConfigSectionFn(ctx, profileID, section)
}

type mockResolverService struct {
	resolvePageFn func(ctx context.Context, segment string, viewerID int64) (models.Page, error)
}

func (m *mockResolverService) ResolvePage(ctx context.Context, segment string, viewerID int64) (models.Page, error) {
	return m.resolvePageFn(ctx, segment, viewerID)
}

type mockAliasService struct {
	checkAliasFn func(ctx context.Context, profileID int64, alias string) (models.AliasCheck, error)
	setAliasFn   func(ctx context.Context, profileID int64, alias string) (models.AliasCheck, error)
}

func (m *mockAliasService) CheckAlias(ctx context.Context, profileID int64, alias string) (models.AliasCheck, error) {
	return m.checkAliasFn(ctx, profileID, alias)
}

func (m *mockAliasService) SetAlias(ctx context.Context, profileID int64, alias string) (models.AliasCheck, error) {
	return m.setAliasFn(ctx, profileID, alias)
}

type mockTemplateService struct {
	listTemplatesFn func(ctx context.Context) ([]models.Template, error)
	applyTemplateFn func(ctx context.Context, profileID, templateID int64) (json.RawMessage, error)
}

func (m *mockTemplateService) ListTemplates(ctx context.Context) ([]models.Template, error) {
	return m.listTemplatesFn(ctx)
}

func (m *mockTemplateService) ApplyTemplate(ctx context.Context, profileID, templateID int64) (json.RawMessage, error) {
	return m.applyTemplateFn(ctx, profileID, templateID)
}

type mockWidgetService struct {
	getWidgetsFn func(ctx context.Context, profileID int64) (models.WidgetSet, error)
}

func (m *mockWidgetService) GetWidgets(ctx context.Context, profileID int64) (models.WidgetSet, error) {
	return m.getWidgetsFn(ctx, profileID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler over the given service set with a real
// dashboard validator and a no-op logger. Nil service fields are fine as
// long as the exercised handler does not touch them.
func newTestHandler(t *testing.T, services *service.Services) *Handler {
	t.Helper()
	cfg := config.App{
		Version:      "test",
		TokenSignKey: "test-sign-key",
	}
	return NewHandler(services, validators.NewDashboardValidator(), cfg, logger.Nop())
}
