package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-bio-link/internal/config"
	"github.com/MKhiriev/go-bio-link/internal/crypto"
	"github.com/MKhiriev/go-bio-link/internal/logger"
	"github.com/MKhiriev/go-bio-link/internal/store"
	"github.com/MKhiriev/go-bio-link/internal/utils"
	"github.com/MKhiriev/go-bio-link/models"
)

// authService is the concrete implementation of AuthService.
// It handles profile registration, credential verification, and JWT token
// lifecycle using a ProfileRepository for persistence and Argon2id for
// password hashing.
type authService struct {
	// profileRepository is the data-access layer used to create and look up profiles.
	profileRepository store.ProfileRepository

	// hasher derives and verifies Argon2id password hashes.
	hasher crypto.PasswordHasherService

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// ProfileRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(profileRepository store.ProfileRepository, hasher crypto.PasswordHasherService, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		profileRepository: profileRepository,
		hasher:            hasher,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		logger:            logger,
	}
}

// RegisterProfile creates a new profile.
//
// The username is lowercased before validation and storage, so new accounts
// are always findable through the case-insensitive index. Profiles start
// active, non-premium, with an empty configuration document: their page
// renders entirely from the default template until the first dashboard save.
//
// Returns the persisted profile (with a server-assigned ProfileID) or:
//   - ErrInvalidUsername if the username fails the format check.
//   - ErrReservedUsername if the username would shadow an application route.
//   - ErrInvalidDataProvided if the password is empty.
//   - A wrapped storage error if the repository call fails (e.g. username
//     already taken — see store.ErrUsernameAlreadyExists).
func (a *authService) RegisterProfile(ctx context.Context, username, password string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	username = strings.ToLower(strings.TrimSpace(username))
	if !identifierPattern.MatchString(username) {
		log.Error().Str("username", username).Msg("invalid username provided")
		return models.Profile{}, ErrInvalidUsername
	}
	if isReservedRoute(username) {
		log.Error().Str("username", username).Msg("reserved username requested")
		return models.Profile{}, ErrReservedUsername
	}
	if password == "" {
		log.Error().Str("username", username).Msg("empty password provided")
		return models.Profile{}, ErrInvalidDataProvided
	}

	passwordHash, err := a.hasher.HashPassword(password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.Profile{}, fmt.Errorf("password hashing failed: %w", err)
	}

	profile := models.Profile{
		Username:     username,
		PasswordHash: passwordHash,
		Config:       json.RawMessage(`{}`),
		IsActive:     true,
	}

	registered, err := a.profileRepository.CreateProfile(ctx, profile)
	if err != nil {
		log.Err(err).Str("username", username).Msg("profile creation ended with error")
		return models.Profile{}, fmt.Errorf("profile creation ended with error: %w", err)
	}

	return registered, nil
}

// Login authenticates an existing profile.
//
// The lookup is case-insensitive so that pre-normalization accounts can
// still sign in with any casing of their name.
//
// Returns the authenticated profile record or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - A wrapped storage error if the repository lookup fails (e.g. profile
//     not found — see store.ErrNoProfileWasFound).
//   - ErrWrongPassword if the password does not verify against the stored hash.
func (a *authService) Login(ctx context.Context, username, password string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid credentials provided")
		return models.Profile{}, ErrInvalidDataProvided
	}

	found, err := a.profileRepository.FindProfileByUsernameFold(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("profile search by username failed")
		return models.Profile{}, fmt.Errorf("profile search by username failed: %w", err)
	}

	ok, err := a.hasher.VerifyPassword(password, found.PasswordHash)
	if err != nil {
		log.Err(err).Int64("id", found.ProfileID).Msg("password verification failed")
		return models.Profile{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !ok {
		log.Error().
			Int64("id", found.ProfileID).
			Str("username", found.Username).
			Msg("wrong password")
		return models.Profile{}, ErrWrongPassword
	}

	return found, nil
}

// CreateToken issues a signed JWT for the given profile.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, profile models.Profile) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, profile.ProfileID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
