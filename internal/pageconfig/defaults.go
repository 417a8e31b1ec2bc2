package pageconfig

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-bio-link/models"
)

// Default returns the default page configuration template. It is the single
// authority for which keys exist: the merge result never contains a known
// nested key that is absent here.
//
// Every call returns a fresh value so callers may modify the result freely.
func Default() models.PageConfig {
	return models.PageConfig{
		HeroTitle:    "Hey, I'm new here",
		HeroSubtitle: "Welcome to my page",
		AboutText:    "",
		Projects:     []models.Project{},
		Skills:       []string{},
		Styles: models.SectionStyles{
			Hero: models.SectionStyle{
				TitleColor:      "#ffffff",
				TitleFont:       "Inter",
				TextColor:       "#d4d4d8",
				TextFont:        "Inter",
				AccentColor:     "#8b5cf6",
				BackgroundColor: "transparent",
			},
			About: models.SectionStyle{
				TitleColor:      "#ffffff",
				TitleFont:       "Inter",
				TextColor:       "#d4d4d8",
				TextFont:        "Inter",
				AccentColor:     "#8b5cf6",
				BackgroundColor: "transparent",
			},
			Projects: models.SectionStyle{
				TitleColor:      "#ffffff",
				TitleFont:       "Inter",
				TextColor:       "#d4d4d8",
				TextFont:        "Inter",
				AccentColor:     "#8b5cf6",
				BackgroundColor: "transparent",
			},
			Skillset: models.SectionStyle{
				TitleColor:      "#ffffff",
				TitleFont:       "Inter",
				TextColor:       "#d4d4d8",
				TextFont:        "Inter",
				AccentColor:     "#8b5cf6",
				BackgroundColor: "transparent",
			},
			Global: models.SectionStyle{
				TitleColor:      "#ffffff",
				TitleFont:       "Inter",
				TextColor:       "#d4d4d8",
				TextFont:        "Inter",
				AccentColor:     "#8b5cf6",
				BackgroundColor: "#09090b",
			},
		},
		Layout: []string{"hero", "about", "projects", "skillset"},
		SectionVisibility: models.SectionVisibility{
			Hero:     true,
			About:    true,
			Projects: true,
			Skillset: true,
		},
		SectionBackgrounds: models.SectionBackgrounds{},
		Audio: models.AudioSettings{
			TrackURL: "",
			Autoplay: false,
			Loop:     true,
			Volume:   0.5,
		},
		CursorURL:        "",
		LightRaysEnabled: false,
		WakatimeToken:    "",
		PremiumFeatures: models.PremiumFeatures{
			ExclusiveBadge:      false,
			CustomFontsEnabled:  false,
			TypewriterAnimation: false,
			PageAlias:           "",
			SpecialEffects:      models.SpecialEffects{},
			Metadata: models.PageMetadata{
				PageTitle:  "",
				FaviconURL: "",
			},
			SEO: models.SEOSettings{
				Description: "",
				Keywords:    []string{},
				OGImageURL:  "",
			},
			ProfileWidgets: models.ProfileWidgets{},
		},
	}
}

// defaultDocument returns the template as a generic JSON document, the form
// the merge operates on. The key set of this document defines which
// top-level keys are "known"; anything else in a stored document is
// passthrough.
func defaultDocument() (map[string]any, error) {
	buf, err := json.Marshal(Default())
	if err != nil {
		return nil, fmt.Errorf("error serializing default template: %w", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(buf, &doc); err != nil {
		return nil, fmt.Errorf("error deserializing default template: %w", err)
	}

	return doc, nil
}
