package models

import (
	"encoding/json"
	"time"
)

// Template is a curated starter page configuration users can apply to their
// profile from the dashboard. Applying a template replaces the stored
// partial document; the usual merge against the default template still runs
// on every read.
type Template struct {
	// TemplateID is the internal unique identifier of the template.
	TemplateID int64 `json:"id"`

	// Name is the display name shown in the template gallery.
	Name string `json:"name"`

	// Description is a short gallery blurb.
	Description string `json:"description"`

	// Config is the partial page configuration the template carries.
	Config json.RawMessage `json:"config"`

	// PremiumOnly restricts the template to effectively-premium profiles.
	PremiumOnly bool `json:"premium_only"`

	// CreatedAt is the timestamp when the template was added.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Template model.
func (t Template) TableName() string {
	return "templates"
}
