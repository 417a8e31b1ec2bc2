package store

import (
	"github.com/MKhiriev/go-bio-link/internal/logger"
)

// Storages aggregates all repositories over a single database connection.
type Storages struct {
	ProfileRepository
	TemplateRepository
}

// NewStorages wires every repository to the shared [DB] handle.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	logger.Debug().Msg("creating storages")
	return &Storages{
		ProfileRepository:  NewProfileRepository(db, logger),
		TemplateRepository: NewTemplateRepository(db, logger),
	}
}
