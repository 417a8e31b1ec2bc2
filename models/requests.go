package models

import "encoding/json"

// CredentialsRequest is the payload of the register and login endpoints.
type CredentialsRequest struct {
	// Username is the desired (or existing) profile handle. Length limits
	// mirror the service-level identifier rules; the full character-set
	// check happens in the service layer.
	Username string `json:"username" validate:"required,min=3,max=63"`

	// Password is the plaintext password. It is hashed immediately after
	// validation and never stored or logged in clear form.
	Password string `json:"password" validate:"required,min=8,max=128"`
}

// AliasRequest is the payload of the alias check and alias set endpoints.
type AliasRequest struct {
	// Alias is the candidate vanity URL segment.
	Alias string `json:"alias" validate:"required,min=3,max=63"`
}

// ConfigSectionUpdate describes one dashboard save: a named section of the
// page configuration together with the partial document the owner edited.
// The payload's top-level keys must belong to the named section; this keeps
// a compromised dashboard tab from overwriting unrelated parts of the page.
type ConfigSectionUpdate struct {
	Section string          `json:"-"`
	Payload json.RawMessage `json:"-"`
}
