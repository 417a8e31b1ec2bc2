package models

// AliasCheck is the outcome of an alias availability check. A taken alias is
// an expected, user-facing validation result, not an error, so it travels as
// a value rather than through the error return.
type AliasCheck struct {
	// Available reports whether the candidate alias may be claimed.
	Available bool `json:"available"`

	// Reason is a human-readable explanation when Available is false,
	// empty otherwise.
	Reason string `json:"reason,omitempty"`
}

// AliasAvailable is the positive check outcome.
func AliasAvailable() AliasCheck {
	return AliasCheck{Available: true}
}

// AliasConflict builds a negative check outcome with the given reason.
func AliasConflict(reason string) AliasCheck {
	return AliasCheck{Available: false, Reason: reason}
}
