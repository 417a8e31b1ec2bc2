package models

import (
	"encoding/json"
	"fmt"
)

// PageConfig is the fully-populated page configuration used for rendering.
// Instances are produced by merging a stored partial document onto the
// default template; after the merge every nested field is guaranteed to be
// set, so consumers never need to null-check nested style or premium keys.
//
// Unknown top-level keys found in a stored document are preserved in Extra
// and re-emitted on serialization for forward compatibility.
type PageConfig struct {
	// HeroTitle is the headline shown at the top of the page.
	HeroTitle string `json:"hero_title"`

	// HeroSubtitle is the secondary line under the headline.
	HeroSubtitle string `json:"hero_subtitle"`

	// AboutText is the free-form about section body.
	AboutText string `json:"about_text"`

	// Projects lists the portfolio entries shown in the projects section.
	Projects []Project `json:"projects"`

	// Skills lists the skill badges shown in the skillset section.
	Skills []string `json:"skills"`

	// Styles holds the per-section style bundles.
	Styles SectionStyles `json:"styles"`

	// Layout is the render order of the page sections.
	Layout []string `json:"layout"`

	// SectionVisibility toggles individual sections on and off.
	SectionVisibility SectionVisibility `json:"section_visibility"`

	// SectionBackgrounds holds the per-section background images.
	SectionBackgrounds SectionBackgrounds `json:"section_backgrounds"`

	// Audio configures the optional background audio player.
	Audio AudioSettings `json:"audio"`

	// CursorURL is the custom cursor image, empty for the browser default.
	CursorURL string `json:"cursor_url"`

	// LightRaysEnabled toggles the light-rays background effect.
	// Premium-gated.
	LightRaysEnabled bool `json:"light_rays_enabled"`

	// WakatimeToken is the owner's WakaTime API token used by the code
	// activity widget. Premium-gated; cleared for non-premium profiles.
	WakatimeToken string `json:"wakatime_token"`

	// PremiumFeatures groups every setting that requires an effective
	// premium entitlement.
	PremiumFeatures PremiumFeatures `json:"premium_features"`

	// Extra carries unknown top-level keys from the stored document.
	// They are passed through untouched so that a newer dashboard build
	// does not lose data when served by an older backend.
	Extra map[string]json.RawMessage `json:"-"`
}

// Project is a single portfolio entry.
type Project struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	ImageURL    string   `json:"image_url"`
	Tags        []string `json:"tags"`
}

// SectionStyles groups the style bundles of every page section plus the
// page-wide globals.
type SectionStyles struct {
	Hero     SectionStyle `json:"hero"`
	About    SectionStyle `json:"about"`
	Projects SectionStyle `json:"projects"`
	Skillset SectionStyle `json:"skillset"`
	Global   SectionStyle `json:"global"`
}

// SectionStyle holds the visual settings of a single section.
type SectionStyle struct {
	TitleColor      string `json:"title_color"`
	TitleFont       string `json:"title_font"`
	TextColor       string `json:"text_color"`
	TextFont        string `json:"text_font"`
	AccentColor     string `json:"accent_color"`
	BackgroundColor string `json:"background_color"`
}

// SectionVisibility toggles page sections individually.
type SectionVisibility struct {
	Hero     bool `json:"hero"`
	About    bool `json:"about"`
	Projects bool `json:"projects"`
	Skillset bool `json:"skillset"`
}

// SectionBackgrounds holds per-section background image URLs.
type SectionBackgrounds struct {
	Hero     string `json:"hero"`
	About    string `json:"about"`
	Projects string `json:"projects"`
	Skillset string `json:"skillset"`
}

// AudioSettings configures the background audio player.
type AudioSettings struct {
	TrackURL string  `json:"track_url"`
	Autoplay bool    `json:"autoplay"`
	Loop     bool    `json:"loop"`
	Volume   float64 `json:"volume"`
}

// PremiumFeatures groups every premium-gated setting. All of its fields are
// forced to inert defaults when the owning profile is not effectively
// premium, regardless of what was stored.
type PremiumFeatures struct {
	// ExclusiveBadge shows the premium badge next to the username.
	ExclusiveBadge bool `json:"exclusive_badge"`

	// CustomFontsEnabled unlocks non-standard fonts in section styles.
	CustomFontsEnabled bool `json:"custom_fonts_enabled"`

	// TypewriterAnimation animates the hero title.
	TypewriterAnimation bool `json:"typewriter_animation"`

	// PageAlias is an optional secondary routing name for the page.
	// Username lookups always take precedence over aliases.
	PageAlias string `json:"page_alias"`

	// SpecialEffects is the mutually-exclusive visual effect bundle.
	SpecialEffects SpecialEffects `json:"special_effects"`

	// Metadata holds browser-tab presentation settings.
	Metadata PageMetadata `json:"metadata"`

	// SEO holds search-engine and link-preview settings.
	SEO SEOSettings `json:"seo"`

	// ProfileWidgets toggles the live third-party widgets.
	ProfileWidgets ProfileWidgets `json:"profile_widgets"`
}

// PageMetadata holds browser-tab presentation settings.
type PageMetadata struct {
	PageTitle  string `json:"page_title"`
	FaviconURL string `json:"favicon_url"`
}

// SEOSettings holds search-engine and link-preview settings.
type SEOSettings struct {
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	OGImageURL  string   `json:"og_image_url"`
}

// ProfileWidgets toggles the live third-party widgets shown on the page
// and carries their per-profile parameters.
type ProfileWidgets struct {
	NowPlaying    bool `json:"now_playing"`
	Weather       bool `json:"weather"`
	CodeActivity  bool `json:"code_activity"`
	Contributions bool `json:"contributions"`

	// WeatherLatitude, WeatherLongitude and WeatherLocation parameterize
	// the weather widget: coordinates for the forecast lookup plus the
	// label shown on the page.
	WeatherLatitude  float64 `json:"weather_latitude,omitempty"`
	WeatherLongitude float64 `json:"weather_longitude,omitempty"`
	WeatherLocation  string  `json:"weather_location,omitempty"`

	// GitHubUsername is the account whose contribution graph is shown.
	GitHubUsername string `json:"github_username,omitempty"`
}

// pageConfigAlias exists to marshal the known fields of PageConfig without
// recursing into its custom MarshalJSON.
type pageConfigAlias PageConfig

// MarshalJSON serializes the configuration with its passthrough Extra keys
// folded back into the top-level object. Known fields always win over an
// Extra key of the same name.
func (c PageConfig) MarshalJSON() ([]byte, error) {
	known, err := json.Marshal(pageConfigAlias(c))
	if err != nil {
		return nil, err
	}

	if len(c.Extra) == 0 {
		return known, nil
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(known, &doc); err != nil {
		return nil, fmt.Errorf("error re-reading serialized page config: %w", err)
	}

	for key, value := range c.Extra {
		if _, exists := doc[key]; !exists {
			doc[key] = value
		}
	}

	return json.Marshal(doc)
}
