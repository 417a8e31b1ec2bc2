package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-bio-link/internal/logger"
	"github.com/MKhiriev/go-bio-link/internal/pageconfig"
	"github.com/MKhiriev/go-bio-link/internal/store"
	"github.com/MKhiriev/go-bio-link/models"
)

// aliasService is the concrete implementation of AliasService. It checks
// and claims vanity page aliases for premium profiles.
type aliasService struct {
	profileRepository store.ProfileRepository
	profileService    ProfileService
	logger            *logger.Logger
}

// NewAliasService constructs an AliasService. Alias writes go through the
// ProfileService save path so they follow the same merge semantics as any
// other dashboard edit.
func NewAliasService(profileRepository store.ProfileRepository, profileService ProfileService, logger *logger.Logger) AliasService {
	return &aliasService{
		profileRepository: profileRepository,
		profileService:    profileService,
		logger:            logger,
	}
}

// CheckAlias reports whether the candidate alias may be claimed by the
// given profile. A taken alias is a regular outcome, not an error; errors
// are reserved for malformed input, missing entitlement and storage
// failures.
//
// An alias is unavailable when:
//   - it collides with a reserved application route;
//   - it matches any profile's username (case-insensitively), unless that
//     profile is the caller;
//   - another profile already holds it as an alias. Premium state of the
//     other holder does not matter here: a lapsed subscription may renew,
//     and handing its alias away meanwhile would silently break the
//     renewed page.
//
// Returns ErrInvalidAlias for a malformed candidate and ErrPremiumRequired
// when the caller's entitlement has lapsed.
func (a *aliasService) CheckAlias(ctx context.Context, profileID int64, alias string) (models.AliasCheck, error) {
	log := logger.FromContext(ctx)

	alias = strings.ToLower(strings.TrimSpace(alias))
	if !identifierPattern.MatchString(alias) {
		return models.AliasCheck{}, ErrInvalidAlias
	}

	// Reserved names conflict no matter who asks. This must not depend on
	// the caller's entitlement or on any stored data.
	if isReservedRoute(alias) {
		return models.AliasConflict("this name is reserved"), nil
	}

	caller, err := a.profileRepository.FindProfileByID(ctx, profileID)
	if err != nil {
		log.Err(err).Int64("id", profileID).Msg("profile lookup failed")
		return models.AliasCheck{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	if !pageconfig.EffectivePremium(caller, time.Now()) {
		return models.AliasCheck{}, ErrPremiumRequired
	}

	other, err := a.profileRepository.FindProfileByUsernameFold(ctx, alias)
	switch {
	case err == nil:
		if other.ProfileID != profileID {
			return models.AliasConflict("this name belongs to another page"), nil
		}
		// Claiming your own username as alias is pointless but harmless.
	case !errors.Is(err, store.ErrNoProfileWasFound):
		log.Err(err).Str("alias", alias).Msg("username collision check failed")
		return models.AliasCheck{}, fmt.Errorf("username collision check failed: %w", err)
	}

	profiles, err := a.profileRepository.ListProfiles(ctx)
	if err != nil {
		log.Err(err).Str("alias", alias).Msg("alias collision scan failed")
		return models.AliasCheck{}, fmt.Errorf("alias collision scan failed: %w", err)
	}

	for _, profile := range profiles {
		if profile.ProfileID == profileID {
			continue
		}
		if strings.EqualFold(storedAlias(profile.Config), alias) {
			return models.AliasConflict("this name belongs to another page"), nil
		}
	}

	return models.AliasAvailable(), nil
}

// SetAlias claims the alias for the profile after re-running the
// availability check, then persists it through the regular config merge
// path. The check and the write are not atomic; the resolver tolerates the
// resulting (unlikely) duplicate by letting the earlier record win.
func (a *aliasService) SetAlias(ctx context.Context, profileID int64, alias string) (models.AliasCheck, error) {
	check, err := a.CheckAlias(ctx, profileID, alias)
	if err != nil {
		return models.AliasCheck{}, err
	}
	if !check.Available {
		return check, nil
	}

	alias = strings.ToLower(strings.TrimSpace(alias))

	section, err := json.Marshal(map[string]any{
		"premium_features": map[string]any{"page_alias": alias},
	})
	if err != nil {
		return models.AliasCheck{}, fmt.Errorf("error serializing alias document: %w", err)
	}

	if _, err := a.profileService.SaveConfigSection(ctx, profileID, section); err != nil {
		return models.AliasCheck{}, err
	}

	return check, nil
}
