package validators

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-bio-link/models"
)

// Section name constants accepted by the dashboard save endpoint. Each
// section maps to a fixed set of top-level page configuration keys; a save
// may only touch the keys of the section it targets.
const (
	SectionHero     = "hero"
	SectionAbout    = "about"
	SectionProjects = "projects"
	SectionSkillset = "skillset"
	SectionStyles   = "styles"
	SectionLayout   = "layout"
	SectionAudio    = "audio"
	SectionPremium  = "premium"
)

// sectionKeys maps every known dashboard section to the top-level page
// configuration keys it is allowed to write.
var sectionKeys = map[string]map[string]struct{}{
	SectionHero:     keySet("hero_title", "hero_subtitle"),
	SectionAbout:    keySet("about_text"),
	SectionProjects: keySet("projects"),
	SectionSkillset: keySet("skills"),
	SectionStyles:   keySet("styles"),
	SectionLayout:   keySet("layout", "section_visibility", "section_backgrounds"),
	SectionAudio:    keySet("audio"),
	SectionPremium:  keySet("light_rays_enabled", "wakatime_token", "cursor_url", "premium_features"),
}

func keySet(keys ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		set[key] = struct{}{}
	}
	return set
}

// DashboardValidator implements the Validator interface for every payload
// accepted by the dashboard API: credentials, alias requests, and per-section
// configuration saves.
//
// Struct payloads are checked against their `validate` tags; section saves
// additionally have their top-level keys checked against the section's
// allowed key set.
type DashboardValidator struct {
	validate *validator.Validate
}

// NewDashboardValidator constructs a new DashboardValidator
// and returns it as the Validator interface.
func NewDashboardValidator() Validator {
	return &DashboardValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate dispatches validation to the appropriate type-specific method.
// Both value and pointer forms of the supported models are accepted.
func (v *DashboardValidator) Validate(ctx context.Context, value any, _ ...string) error {
	switch payload := value.(type) {
	case models.CredentialsRequest:
		return v.validateStruct(payload)
	case *models.CredentialsRequest:
		return v.validateStruct(*payload)
	case models.AliasRequest:
		return v.validateStruct(payload)
	case *models.AliasRequest:
		return v.validateStruct(*payload)
	case models.ConfigSectionUpdate:
		return v.validateSectionUpdate(payload)
	case *models.ConfigSectionUpdate:
		return v.validateSectionUpdate(*payload)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}
}

func (v *DashboardValidator) validateStruct(payload any) error {
	if err := v.validate.Struct(payload); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func (v *DashboardValidator) validateSectionUpdate(update models.ConfigSectionUpdate) error {
	allowed, ok := sectionKeys[update.Section]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSection, update.Section)
	}

	if len(update.Payload) == 0 {
		return ErrEmptySectionPayload
	}

	var document map[string]json.RawMessage
	if err := json.Unmarshal(update.Payload, &document); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if document == nil {
		return ErrEmptySectionPayload
	}

	for key := range document {
		if _, ok := allowed[key]; !ok {
			return fmt.Errorf("%w: %q is not part of section %q", ErrFieldOutsideSection, key, update.Section)
		}
	}

	return nil
}

// formatValidationError converts validator/v10 field errors into a single
// human-readable message wrapped in [ErrValidationFailed], so that transport
// layers can match the sentinel while still surfacing field names.
func formatValidationError(err error) error {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fieldError := range fieldErrors {
		switch fieldError.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required", strings.ToLower(fieldError.Field())))
		case "min":
			messages = append(messages, fmt.Sprintf("%s must be at least %s characters", strings.ToLower(fieldError.Field()), fieldError.Param()))
		case "max":
			messages = append(messages, fmt.Sprintf("%s must be at most %s characters", strings.ToLower(fieldError.Field()), fieldError.Param()))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid", strings.ToLower(fieldError.Field())))
		}
	}

	return fmt.Errorf("%w: %s", ErrValidationFailed, strings.Join(messages, "; "))
}
