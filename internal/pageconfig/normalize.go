package pageconfig

import (
	"github.com/MKhiriev/go-bio-link/models"
)

// Normalize enforces the invariants a merged configuration must satisfy
// before it is handed to rendering:
//
//   - at most one special effect is enabled: when a stored document claims
//     several, the first one in the fixed precedence order of
//     [models.Effect] wins and the rest are switched off;
//   - when premium is false, every premium-gated setting is reset to its
//     inert default regardless of what was stored, so a lapsed subscription
//     can never silently re-activate paid features on a later read.
//
// Entitlement is re-derived on every read (see [EffectivePremium]); stored
// state is never trusted. Normalize changes values only, never the shape,
// and is idempotent for a fixed premium flag. It never fails: ambiguous
// effect bundles collapse to their first active effect, absent ones stay
// disabled.
func Normalize(cfg models.PageConfig, premium bool) models.PageConfig {
	effects := &cfg.PremiumFeatures.SpecialEffects
	effects.SetActive(effects.Active())

	if !premium {
		cfg.LightRaysEnabled = false
		cfg.WakatimeToken = ""

		features := &cfg.PremiumFeatures
		features.ExclusiveBadge = false
		features.CustomFontsEnabled = false
		features.TypewriterAnimation = false
		features.SpecialEffects.SetActive(models.EffectNone)
		features.ProfileWidgets = models.ProfileWidgets{}
		// PageAlias stays in place: it is gated at resolution time, and
		// clearing it here would discard the user's setting on re-save.
	}

	return cfg
}
