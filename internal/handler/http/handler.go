package http

import (
	"github.com/MKhiriev/go-bio-link/internal/config"
	"github.com/MKhiriev/go-bio-link/internal/logger"
	"github.com/MKhiriev/go-bio-link/internal/service"
	"github.com/MKhiriev/go-bio-link/internal/utils"
	"github.com/MKhiriev/go-bio-link/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator

	// appVersion is served by the version endpoint.
	appVersion string

	// etagKey keys the HMAC used to derive ETag values for public pages.
	// Derived from the token signing key; the auth secret itself never
	// keys ETag hashes.
	etagKey string

	logger *logger.Logger
}

func NewHandler(services *service.Services, validator validators.Validator, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		validator:  validator,
		appVersion: cfg.Version,
		etagKey:    utils.HashString("page-etag", cfg.TokenSignKey),
		logger:     logger,
	}
}
