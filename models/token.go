package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT token with convenience accessors for dashboard
// authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
//
// ProfileID is a cached, parsed copy of the "sub" (subject) claim converted
// to int64 so that handlers do not repeat string-to-int parsing.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// ProfileID is the owner identifier extracted from the "sub" claim.
	ProfileID int64 `json:"-"`
}

// GetProfileID extracts the profile identifier from the token's "sub"
// (subject) claim, parses it as a base-10 int64, and returns the result.
//
// Returns an error if the subject claim is missing, empty, or cannot be
// converted to int64.
func (t *Token) GetProfileID() (int64, error) {
	profileIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting ProfileID from token: %w", err)
	}

	profileID, err := strconv.ParseInt(profileIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting ProfileID from token to int64: %w", err)
	}

	return profileID, nil
}

// String returns the compact JWS serialization of the token
// (the signed, base64url-encoded header.payload.signature string).
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
