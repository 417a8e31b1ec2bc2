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

// resolverService is the concrete implementation of ResolverService. It maps
// a public URL segment to the owning profile and assembles the renderable
// page.
//
// Resolution precedence, first hit wins:
//  1. case-insensitive username match (single indexed lookup);
//  2. exact username match, for records created before lowercase
//     normalization was enforced;
//  3. page alias match across all profiles, honored only while the owning
//     profile's premium entitlement is current.
//
// Visibility is checked after resolution, not during: a hidden profile still
// claims its username and alias, so lookup order stays deterministic no
// matter who is asking.
type resolverService struct {
	profileRepository store.ProfileRepository
	logger            *logger.Logger
}

// NewResolverService constructs a ResolverService over the given repository.
func NewResolverService(profileRepository store.ProfileRepository, logger *logger.Logger) ResolverService {
	return &resolverService{
		profileRepository: profileRepository,
		logger:            logger,
	}
}

// ResolvePage implements ResolverService.
//
// Returns ErrPageNotFound when no profile claims the segment, when the
// segment is a reserved application route, or when the resolved profile is
// hidden and the viewer is not its owner. All three collapse into the same
// error on purpose: the public surface must not reveal whether a hidden
// page exists.
func (r *resolverService) ResolvePage(ctx context.Context, segment string, viewerID int64) (models.Page, error) {
	log := logger.FromContext(ctx)

	segment = strings.TrimSpace(segment)
	if segment == "" || isReservedRoute(segment) {
		return models.Page{}, ErrPageNotFound
	}

	profile, err := r.resolveProfile(ctx, segment)
	if err != nil {
		return models.Page{}, err
	}

	if !profile.IsActive && profile.ProfileID != viewerID {
		log.Debug().
			Int64("id", profile.ProfileID).
			Str("segment", segment).
			Msg("hidden page requested by non-owner")
		return models.Page{}, ErrPageNotFound
	}

	cfg, err := pageconfig.MergeRaw(ctx, profile.Config)
	if err != nil {
		return models.Page{}, fmt.Errorf("error completing config document: %w", err)
	}

	premium := pageconfig.EffectivePremium(profile, time.Now())
	cfg = pageconfig.Normalize(cfg, premium)

	// The WakaTime token is consumed server-side by the code activity
	// widget; the rendered page never needs it, even for its owner.
	cfg.WakatimeToken = ""

	return models.Page{
		ProfileID: profile.ProfileID,
		Username:  profile.Username,
		Premium:   premium,
		Config:    cfg,
	}, nil
}

func (r *resolverService) resolveProfile(ctx context.Context, segment string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	profile, err := r.profileRepository.FindProfileByUsernameFold(ctx, segment)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, store.ErrNoProfileWasFound) {
		log.Err(err).Str("segment", segment).Msg("username lookup failed")
		return models.Profile{}, fmt.Errorf("username lookup failed: %w", err)
	}

	profile, err = r.profileRepository.FindProfileByUsernameExact(ctx, segment)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, store.ErrNoProfileWasFound) {
		log.Err(err).Str("segment", segment).Msg("username lookup failed")
		return models.Profile{}, fmt.Errorf("username lookup failed: %w", err)
	}

	return r.resolveByAlias(ctx, segment)
}

// resolveByAlias scans premium profiles for one whose configured page alias
// matches the segment. The alias only routes while the owner's premium
// entitlement is current: after a lapse the vanity URL goes dark but the
// alias value itself stays in the stored document, so it springs back on
// renewal without re-entry.
//
// Hidden profiles stay in the scan on purpose: visibility is the caller's
// concern, and a hidden profile must still claim its alias.
func (r *resolverService) resolveByAlias(ctx context.Context, segment string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	profiles, err := r.profileRepository.SearchProfiles(ctx, models.ProfileFilter{
		IncludeHidden: true,
		PremiumOnly:   true,
	})
	if err != nil {
		log.Err(err).Str("segment", segment).Msg("alias scan failed")
		return models.Profile{}, fmt.Errorf("alias scan failed: %w", err)
	}

	now := time.Now()
	var match *models.Profile

	for i := range profiles {
		profile := profiles[i]

		if !pageconfig.EffectivePremium(profile, now) {
			continue
		}
		if !strings.EqualFold(storedAlias(profile.Config), segment) {
			continue
		}

		if match != nil {
			// Alias uniqueness is advisory, not a schema constraint. If two
			// premium profiles ever hold the same alias the earlier record
			// keeps routing.
			log.Warn().
				Str("alias", segment).
				Int64("kept", match.ProfileID).
				Int64("ignored", profile.ProfileID).
				Msg("duplicate page alias detected")
			continue
		}
		match = &profiles[i]
	}

	if match == nil {
		return models.Profile{}, ErrPageNotFound
	}

	return *match, nil
}

// storedAlias pulls the page alias out of a stored partial document without
// completing it against the default template: the template never carries an
// alias, so the stored value is the whole truth. A malformed document simply
// has no alias.
func storedAlias(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var cfg models.PageConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		// A shape mismatch on an unrelated field still decodes the alias;
		// anything else means the document carries no usable alias.
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return ""
		}
	}

	return cfg.PremiumFeatures.PageAlias
}
