// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/go-bio-link/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func sectionUpdate(section, payload string) models.ConfigSectionUpdate {
	return models.ConfigSectionUpdate{
		Section: section,
		Payload: json.RawMessage(payload),
	}
}

// ---------------------------------------------------------------------------
// TestNewDashboardValidator
// ---------------------------------------------------------------------------

func TestNewDashboardValidator(t *testing.T) {
	v := NewDashboardValidator()
	require.NotNil(t, v)
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch_UnsupportedType(t *testing.T) {
	v := NewDashboardValidator()

	err := v.Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestValidate_Dispatch_PointerAndValue(t *testing.T) {
	v := NewDashboardValidator()
	ctx := context.Background()

	creds := models.CredentialsRequest{Username: "grace", Password: "correct-horse"}
	assert.NoError(t, v.Validate(ctx, creds))
	assert.NoError(t, v.Validate(ctx, &creds))

	alias := models.AliasRequest{Alias: "my-cool-page"}
	assert.NoError(t, v.Validate(ctx, alias))
	assert.NoError(t, v.Validate(ctx, &alias))
}

// ---------------------------------------------------------------------------
// TestValidate_Credentials
// ---------------------------------------------------------------------------

func TestValidate_Credentials(t *testing.T) {
	v := NewDashboardValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		request models.CredentialsRequest
		wantErr bool
	}{
		{name: "valid", request: models.CredentialsRequest{Username: "grace", Password: "correct-horse"}},
		{name: "missing username", request: models.CredentialsRequest{Password: "correct-horse"}, wantErr: true},
		{name: "username too short", request: models.CredentialsRequest{Username: "ab", Password: "correct-horse"}, wantErr: true},
		{name: "missing password", request: models.CredentialsRequest{Username: "grace"}, wantErr: true},
		{name: "password too short", request: models.CredentialsRequest{Username: "grace", Password: "short"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.request)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidationFailed)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_Credentials_ErrorNamesField(t *testing.T) {
	v := NewDashboardValidator()

	err := v.Validate(context.Background(), models.CredentialsRequest{Username: "grace"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password is required")
}

// ---------------------------------------------------------------------------
// TestValidate_Alias
// ---------------------------------------------------------------------------

func TestValidate_Alias(t *testing.T) {
	v := NewDashboardValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.AliasRequest{Alias: "my-cool-page"}))
	assert.ErrorIs(t, v.Validate(ctx, models.AliasRequest{}), ErrValidationFailed)
	assert.ErrorIs(t, v.Validate(ctx, models.AliasRequest{Alias: "ab"}), ErrValidationFailed)
}

// ---------------------------------------------------------------------------
// TestValidate_SectionUpdate
// ---------------------------------------------------------------------------

func TestValidate_SectionUpdate(t *testing.T) {
	v := NewDashboardValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		update  models.ConfigSectionUpdate
		wantErr error
	}{
		{
			name:   "hero section with hero keys",
			update: sectionUpdate(SectionHero, `{"hero_title":"Hi","hero_subtitle":"there"}`),
		},
		{
			name:   "layout section",
			update: sectionUpdate(SectionLayout, `{"layout":["hero","about"],"section_visibility":{"hero":true}}`),
		},
		{
			name:   "premium section",
			update: sectionUpdate(SectionPremium, `{"premium_features":{"page_alias":"grace-dev"}}`),
		},
		{
			name:    "unknown section",
			update:  sectionUpdate("billing", `{"plan":"pro"}`),
			wantErr: ErrUnknownSection,
		},
		{
			name:    "empty payload",
			update:  sectionUpdate(SectionHero, ``),
			wantErr: ErrEmptySectionPayload,
		},
		{
			name:    "null payload",
			update:  sectionUpdate(SectionHero, `null`),
			wantErr: ErrEmptySectionPayload,
		},
		{
			name:    "payload is an array",
			update:  sectionUpdate(SectionHero, `[1,2,3]`),
			wantErr: ErrMalformedPayload,
		},
		{
			name:    "key from a different section",
			update:  sectionUpdate(SectionHero, `{"about_text":"smuggled"}`),
			wantErr: ErrFieldOutsideSection,
		},
		{
			name:    "premium key in styles section",
			update:  sectionUpdate(SectionStyles, `{"wakatime_token":"waka_secret"}`),
			wantErr: ErrFieldOutsideSection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.update)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_SectionUpdate_EmptyObjectAllowed(t *testing.T) {
	// An empty object is a valid no-op save; merge semantics make it harmless.
	v := NewDashboardValidator()

	err := v.Validate(context.Background(), sectionUpdate(SectionAbout, `{}`))
	assert.NoError(t, err)
}
