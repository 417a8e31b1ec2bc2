package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-bio-link/models"
)

type AuthService interface {
	RegisterProfile(ctx context.Context, username, password string) (models.Profile, error)
	Login(ctx context.Context, username, password string) (models.Profile, error)
	CreateToken(ctx context.Context, profile models.Profile) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type ProfileService interface {
	GetProfile(ctx context.Context, profileID int64) (models.Profile, error)

	// GetEffectiveConfig returns the profile's stored partial document
	// completed against the default template and normalized for the
	// profile's current entitlement.
	GetEffectiveConfig(ctx context.Context, profileID int64) (models.PageConfig, error)

	// GetStoredConfig returns the raw partial document as persisted,
	// for dashboard editing.
	GetStoredConfig(ctx context.Context, profileID int64) (json.RawMessage, error)

	// SaveConfigSection deep-merges a partial document onto the stored one
	// and persists the result. The stored document stays partial.
	SaveConfigSection(ctx context.Context, profileID int64, section json.RawMessage) (json.RawMessage, error)
}

type ResolverService interface {
	// ResolvePage maps a public URL segment to a renderable page.
	// viewerID carries the authenticated profile ID when present (owners may
	// preview their own hidden page); pass 0 for anonymous visitors.
	ResolvePage(ctx context.Context, segment string, viewerID int64) (models.Page, error)
}

type AliasService interface {
	CheckAlias(ctx context.Context, profileID int64, alias string) (models.AliasCheck, error)
	SetAlias(ctx context.Context, profileID int64, alias string) (models.AliasCheck, error)
}

type TemplateService interface {
	ListTemplates(ctx context.Context) ([]models.Template, error)
	ApplyTemplate(ctx context.Context, profileID, templateID int64) (json.RawMessage, error)
}

type WidgetService interface {
	GetWidgets(ctx context.Context, profileID int64) (models.WidgetSet, error)
}
