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

// templateRepository is the SQL-backed implementation of [TemplateRepository].
// Templates are read-only from the application's point of view: the catalog
// is seeded by schema migrations.
type templateRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTemplateRepository constructs a [TemplateRepository] backed by the
// provided database connection and logger.
func NewTemplateRepository(db *DB, logger *logger.Logger) TemplateRepository {
	logger.Debug().Msg("creating template repository")
	return &templateRepository{
		db:     db,
		logger: logger,
	}
}

// ListTemplates returns the full template catalog ordered by identifier.
func (r *templateRepository) ListTemplates(ctx context.Context) ([]models.Template, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listTemplates)
	if err != nil {
		log.Err(err).Str("func", "*templateRepository.ListTemplates").Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var templates []models.Template
	for rows.Next() {
		template, err := scanTemplate(rows)
		if err != nil {
			log.Err(err).Str("func", "*templateRepository.ListTemplates").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		templates = append(templates, template)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return templates, nil
}

// FindTemplateByID retrieves a single template record.
// Returns [ErrNoTemplateWasFound] if no template has the given identifier.
func (r *templateRepository) FindTemplateByID(ctx context.Context, templateID int64) (models.Template, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findTemplateByID, templateID)

	template, err := scanTemplate(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Template{}, ErrNoTemplateWasFound
		}

		log.Err(err).Str("func", "*templateRepository.FindTemplateByID").Msg("error: scanning error")
		return models.Template{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return template, nil
}

func scanTemplate(row rowScanner) (models.Template, error) {
	var template models.Template
	var config []byte

	err := row.Scan(
		&template.TemplateID,
		&template.Name,
		&template.Description,
		&config,
		&template.PremiumOnly,
		&template.CreatedAt,
	)
	if err != nil {
		return models.Template{}, err
	}

	template.Config = json.RawMessage(config)
	return template, nil
}
