package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-bio-link/internal/logger"
	"github.com/MKhiriev/go-bio-link/models"
)

// profileRepository is the SQL-backed implementation of [ProfileRepository].
// It handles profile creation and lookup against the "profiles" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type profileRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProfileRepository constructs a [ProfileRepository] backed by the
// provided database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		db:     db,
		logger: logger,
	}
}

// CreateProfile persists a new profile record and returns the fully
// populated [models.Profile] with server-assigned fields (ProfileID,
// CreatedAt, UpdatedAt).
//
// The INSERT uses the [createProfile] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created profile.
//
// Error handling:
//   - unique violation on the username → [ErrUsernameAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *profileRepository) CreateProfile(ctx context.Context, profile models.Profile) (models.Profile, error) {
	log := logger.FromContext(ctx)

	var expiresAt sql.NullTime
	if !profile.PremiumExpiresAt.IsZero() {
		expiresAt = sql.NullTime{Time: profile.PremiumExpiresAt, Valid: true}
	}

	row := r.db.QueryRowContext(ctx, createProfile,
		profile.Username, profile.PasswordHash, []byte(profile.Config),
		profile.IsActive, profile.IsPremium, expiresAt)

	created, err := scanProfile(row)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.CreateProfile").Msg("error: profile was not created")

		if isUniqueViolation(err) {
			return models.Profile{}, ErrUsernameAlreadyExists
		}
		return models.Profile{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindProfileByID retrieves a profile record by its internal identifier.
func (r *profileRepository) FindProfileByID(ctx context.Context, profileID int64) (models.Profile, error) {
	return r.findOne(ctx, findProfileByID, profileID)
}

// FindProfileByUsernameFold retrieves a profile whose username matches the
// given one case-insensitively. The [findProfileByUsernameFold] query
// compares lower(username) so the expression index created by the schema
// migration is used; this lookup must never degrade into a table scan.
func (r *profileRepository) FindProfileByUsernameFold(ctx context.Context, username string) (models.Profile, error) {
	return r.findOne(ctx, findProfileByUsernameFold, username)
}

// FindProfileByUsernameExact retrieves a profile by the verbatim username.
// Only resolves records created before lowercase normalization was enforced.
func (r *profileRepository) FindProfileByUsernameExact(ctx context.Context, username string) (models.Profile, error) {
	return r.findOne(ctx, findProfileByUsernameExact, username)
}

func (r *profileRepository) findOne(ctx context.Context, query string, arg any) (models.Profile, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, query, arg)

	profile, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Profile{}, ErrNoProfileWasFound
		}

		log.Err(err).Str("func", "*profileRepository.findOne").Msg("error: scanning error")
		return models.Profile{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return profile, nil
}

// SaveConfig replaces the stored partial configuration of the given profile.
//
// Error handling:
//   - zero affected rows → [ErrConfigNotSaved] (profile does not exist).
//   - Any driver-level error → wrapped as "unexpected DB error".
func (r *profileRepository) SaveConfig(ctx context.Context, profileID int64, config json.RawMessage) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, saveProfileConfig, profileID, []byte(config))
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.SaveConfig").Msg("error: config update failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrConfigNotSaved
	}

	return nil
}

// ListProfiles returns every profile record, including inactive ones. The
// alias scan and the alias collision check both need the full set: hidden
// profiles still own their username and alias.
func (r *profileRepository) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	return r.queryProfiles(ctx, listProfiles)
}

// SearchProfiles returns profiles matching the filter, ordered by username.
// The query is assembled dynamically with squirrel (see [buildSearchQuery]).
func (r *profileRepository) SearchProfiles(ctx context.Context, filter models.ProfileFilter) ([]models.Profile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSearchQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.SearchProfiles").Msg("error: building search query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryProfiles(ctx, query, args...)
}

func (r *profileRepository) queryProfiles(ctx context.Context, query string, args ...any) ([]models.Profile, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.queryProfiles").Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var profiles []models.Profile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			log.Err(err).Str("func", "*profileRepository.queryProfiles").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		profiles = append(profiles, profile)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return profiles, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (models.Profile, error) {
	var profile models.Profile
	var config []byte
	var expiresAt sql.NullTime

	err := row.Scan(
		&profile.ProfileID,
		&profile.Username,
		&profile.PasswordHash,
		&config,
		&profile.IsActive,
		&profile.IsPremium,
		&expiresAt,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return models.Profile{}, err
	}

	profile.Config = json.RawMessage(config)
	if expiresAt.Valid {
		profile.PremiumExpiresAt = expiresAt.Time
	}

	return profile, nil
}
