package store

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-bio-link/models"
)

// ProfileRepository is the persistence contract for profile records.
//
// Lookup methods return [ErrNoProfileWasFound] when no record matches;
// absence is an expected outcome, not a failure.
type ProfileRepository interface {
	// CreateProfile persists a new profile and returns it with
	// server-assigned fields populated.
	CreateProfile(ctx context.Context, profile models.Profile) (models.Profile, error)

	// FindProfileByID looks a profile up by its internal identifier.
	FindProfileByID(ctx context.Context, profileID int64) (models.Profile, error)

	// FindProfileByUsernameFold looks a profile up by username,
	// case-insensitively. Backed by an expression index on
	// lower(username); this is the hot path of URL resolution.
	FindProfileByUsernameFold(ctx context.Context, username string) (models.Profile, error)

	// FindProfileByUsernameExact looks a profile up by the verbatim,
	// case-sensitive username. Only needed for records created before
	// lowercase normalization was enforced.
	FindProfileByUsernameExact(ctx context.Context, username string) (models.Profile, error)

	// SaveConfig replaces the stored partial configuration document of
	// the given profile.
	SaveConfig(ctx context.Context, profileID int64, config json.RawMessage) error

	// ListProfiles returns every profile, including inactive ones.
	// Used by the alias scan and the alias collision check, which must
	// see hidden profiles too.
	ListProfiles(ctx context.Context) ([]models.Profile, error)

	// SearchProfiles returns profiles matching the filter, ordered by
	// username.
	SearchProfiles(ctx context.Context, filter models.ProfileFilter) ([]models.Profile, error)
}

// TemplateRepository is the persistence contract for the starter template
// gallery.
type TemplateRepository interface {
	// ListTemplates returns every template in the gallery.
	ListTemplates(ctx context.Context) ([]models.Template, error)

	// FindTemplateByID looks a template up by its identifier. Returns
	// [ErrNoTemplateWasFound] when the template does not exist.
	FindTemplateByID(ctx context.Context, templateID int64) (models.Template, error)
}
