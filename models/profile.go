package models

import (
	"encoding/json"
	"time"
)

// Profile represents a single link-in-bio page owner together with the
// partial page configuration they have saved through the dashboard.
// It is the unit of resolution for public page URLs.
type Profile struct {
	// ProfileID is the internal unique identifier of the profile.
	// It is not exposed via JSON and is used only at the persistence layer.
	ProfileID int64 `json:"-"`

	// Username is the unique handle of the profile. New records are
	// lowercase-normalized at registration time; records created before
	// normalization was enforced may carry mixed case.
	Username string `json:"username"`

	// PasswordHash stores the Argon2id-encoded password of the owner.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// Config is the raw partial page configuration document as persisted
	// by the dashboard. It may be empty, shallow, or from an older schema
	// version; it is completed against the default template on every read.
	Config json.RawMessage `json:"config,omitempty"`

	// IsActive controls public visibility. Inactive profiles resolve as
	// not found for everyone except their owner.
	IsActive bool `json:"is_active"`

	// IsPremium marks a paid subscription. Together with PremiumExpiresAt
	// it determines the effective premium status; neither field is ever
	// trusted on its own.
	IsPremium bool `json:"is_premium"`

	// PremiumExpiresAt is the subscription expiry. The zero value means
	// the subscription does not expire.
	PremiumExpiresAt time.Time `json:"premium_expires_at,omitempty"`

	// CreatedAt is the timestamp when the profile was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last dashboard edit.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Profile model.
func (p Profile) TableName() string {
	return "profiles"
}

// ProfileFilter describes optional criteria for listing profiles.
// Zero-valued fields are ignored when the query is built.
type ProfileFilter struct {
	UsernamePrefix string
	PremiumOnly    bool
	IncludeHidden  bool
	Limit          uint64
	Offset         uint64
}
