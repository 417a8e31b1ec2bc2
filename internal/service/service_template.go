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

// templateService is the concrete implementation of TemplateService. It
// exposes the starter template catalog and applies a chosen template to a
// profile's configuration.
type templateService struct {
	templateRepository store.TemplateRepository
	profileRepository  store.ProfileRepository
	profileService     ProfileService
	logger             *logger.Logger
}

// NewTemplateService constructs a TemplateService.
func NewTemplateService(templateRepository store.TemplateRepository, profileRepository store.ProfileRepository, profileService ProfileService, logger *logger.Logger) TemplateService {
	return &templateService{
		templateRepository: templateRepository,
		profileRepository:  profileRepository,
		profileService:     profileService,
		logger:             logger,
	}
}

// ListTemplates returns the template catalog.
func (t *templateService) ListTemplates(ctx context.Context) ([]models.Template, error) {
	templates, err := t.templateRepository.ListTemplates(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("template listing failed")
		return nil, fmt.Errorf("template listing failed: %w", err)
	}

	return templates, nil
}

// ApplyTemplate merges the template's document onto the profile's stored
// configuration and returns the new stored document. Template values win
// over existing ones; everything the template does not mention survives,
// so applying a color theme never wipes the profile's projects.
//
// Returns ErrPremiumRequired when a premium-only template is applied by a
// profile whose entitlement is not current.
func (t *templateService) ApplyTemplate(ctx context.Context, profileID, templateID int64) (json.RawMessage, error) {
	log := logger.FromContext(ctx)

	template, err := t.templateRepository.FindTemplateByID(ctx, templateID)
	if err != nil {
		log.Err(err).Int64("templateID", templateID).Msg("template lookup failed")
		return nil, fmt.Errorf("template lookup failed: %w", err)
	}

	if template.PremiumOnly {
		profile, err := t.profileRepository.FindProfileByID(ctx, profileID)
		if err != nil {
			log.Err(err).Int64("id", profileID).Msg("profile lookup failed")
			return nil, fmt.Errorf("profile lookup failed: %w", err)
		}
		if !pageconfig.EffectivePremium(profile, time.Now()) {
			return nil, ErrPremiumRequired
		}
	}

	merged, err := t.profileService.SaveConfigSection(ctx, profileID, template.Config)
	if err != nil {
		return nil, err
	}

	log.Info().
		Int64("id", profileID).
		Int64("templateID", templateID).
		Str("template", template.Name).
		Msg("template applied")

	return merged, nil
}
