package pageconfig

import (
	"time"

	"github.com/MKhiriev/go-bio-link/models"
)

// EffectivePremium derives the entitlement gate from a profile's premium
// flag and optional expiry: premium is effective while the flag is set and
// the expiry is either unset or still in the future.
//
// The result is computed fresh on every call and must never be cached or
// persisted — a subscription can lapse between an edit and a later read,
// and only re-derivation catches that.
func EffectivePremium(p models.Profile, now time.Time) bool {
	if !p.IsPremium {
		return false
	}

	return p.PremiumExpiresAt.IsZero() || p.PremiumExpiresAt.After(now)
}
