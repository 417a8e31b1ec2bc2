package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-bio-link/models"
)

const (
	profileColumns = `profile_id, username, password_hash, config, is_active, is_premium, premium_expires_at, created_at, updated_at`

	createProfile = `INSERT INTO profiles (username, password_hash, config, is_active, is_premium, premium_expires_at)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING ` + profileColumns + `;`

	findProfileByID = `SELECT ` + profileColumns + `
    FROM profiles
    WHERE profile_id = $1;`

	findProfileByUsernameFold = `SELECT ` + profileColumns + `
    FROM profiles
    WHERE lower(username) = lower($1);`

	findProfileByUsernameExact = `SELECT ` + profileColumns + `
    FROM profiles
    WHERE username = $1;`

	saveProfileConfig = `UPDATE profiles
    SET config = $2, updated_at = CURRENT_TIMESTAMP
    WHERE profile_id = $1;`

	listProfiles = `SELECT ` + profileColumns + `
    FROM profiles;`

	listTemplates = `SELECT template_id, name, description, config, premium_only, created_at
    FROM templates
    ORDER BY template_id;`

	findTemplateByID = `SELECT template_id, name, description, config, premium_only, created_at
    FROM templates
    WHERE template_id = $1;`
)

// buildSearchQuery assembles the filtered profile listing query. squirrel is
// used here because the WHERE clause varies with the filter; the static
// queries above stay as plain constants.
func buildSearchQuery(filter models.ProfileFilter) (string, []any, error) {
	builder := sq.Select(strings.Split(profileColumns, ", ")...).
		From("profiles").
		PlaceholderFormat(sq.Dollar)

	if !filter.IncludeHidden {
		builder = builder.Where(sq.Eq{"is_active": true})
	}

	if filter.PremiumOnly {
		builder = builder.Where(sq.Eq{"is_premium": true})
	}

	if filter.UsernamePrefix != "" {
		prefix := strings.ToLower(filter.UsernamePrefix)
		builder = builder.Where(sq.Like{"username": prefix + "%"})
	}

	builder = builder.OrderBy("username ASC")

	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		builder = builder.Offset(filter.Offset)
	}

	return builder.ToSql()
}
