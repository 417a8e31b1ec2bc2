package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-bio-link/internal/logger"
	"github.com/MKhiriev/go-bio-link/internal/pageconfig"
	"github.com/MKhiriev/go-bio-link/internal/store"
	"github.com/MKhiriev/go-bio-link/models"
)

// profileService is the concrete implementation of ProfileService. It owns
// the read and write paths of a profile's configuration document.
type profileService struct {
	profileRepository store.ProfileRepository
	logger            *logger.Logger
}

// NewProfileService constructs a ProfileService over the given repository.
func NewProfileService(profileRepository store.ProfileRepository, logger *logger.Logger) ProfileService {
	return &profileService{
		profileRepository: profileRepository,
		logger:            logger,
	}
}

// GetProfile returns the profile record for the given identifier.
func (p *profileService) GetProfile(ctx context.Context, profileID int64) (models.Profile, error) {
	profile, err := p.profileRepository.FindProfileByID(ctx, profileID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", profileID).Msg("profile lookup failed")
		return models.Profile{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	return profile, nil
}

// GetEffectiveConfig completes the stored partial document against the
// default template and normalizes it for the profile's entitlement at the
// time of the call. The entitlement is re-derived on every read: a lapsed
// subscription takes effect on the next render, no cached flag to expire.
func (p *profileService) GetEffectiveConfig(ctx context.Context, profileID int64) (models.PageConfig, error) {
	profile, err := p.GetProfile(ctx, profileID)
	if err != nil {
		return models.PageConfig{}, err
	}

	cfg, err := pageconfig.MergeRaw(ctx, profile.Config)
	if err != nil {
		return models.PageConfig{}, fmt.Errorf("error completing config document: %w", err)
	}

	premium := pageconfig.EffectivePremium(profile, time.Now())
	cfg = pageconfig.Normalize(cfg, premium)

	return cfg, nil
}

// GetStoredConfig returns the persisted partial document verbatim. The
// dashboard edits against this, not against the completed document, so
// saving back never freezes current defaults into the profile.
func (p *profileService) GetStoredConfig(ctx context.Context, profileID int64) (json.RawMessage, error) {
	profile, err := p.GetProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}

	if len(profile.Config) == 0 {
		return json.RawMessage(`{}`), nil
	}

	return profile.Config, nil
}

// SaveConfigSection deep-merges the incoming partial document onto the
// stored one and persists the result, returning the new stored document.
//
// Returns ErrInvalidDataProvided if the incoming document is not a JSON
// object, or a wrapped storage error if persistence fails.
func (p *profileService) SaveConfigSection(ctx context.Context, profileID int64, section json.RawMessage) (json.RawMessage, error) {
	log := logger.FromContext(ctx)

	profile, err := p.GetProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}

	merged, err := pageconfig.MergePartial(ctx, profile.Config, section)
	if err != nil {
		log.Err(err).Int64("id", profileID).Msg("rejecting malformed config section")
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := p.profileRepository.SaveConfig(ctx, profileID, merged); err != nil {
		log.Err(err).Int64("id", profileID).Msg("config save failed")
		return nil, fmt.Errorf("config save failed: %w", err)
	}

	return merged, nil
}
