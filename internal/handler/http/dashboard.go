package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-bio-link/internal/logger"
	"github.com/MKhiriev/go-bio-link/internal/utils"
	"github.com/MKhiriev/go-bio-link/models"
)

// dashboardConfigResponse pairs the raw partial document the owner edits
// with the effective view the public page renders, so the dashboard can show
// both without a second round trip.
type dashboardConfigResponse struct {
	Stored    json.RawMessage   `json:"stored"`
	Effective models.PageConfig `json:"effective"`
}

func (h *Handler) getDashboardConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	profileID, ok := utils.GetProfileIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	stored, err := h.services.ProfileService.GetStoredConfig(ctx, profileID)
	if err != nil {
		log.Err(err).Int64("id", profileID).Msg("error loading stored config")
		respondError(w, err)
		return
	}

	effective, err := h.services.ProfileService.GetEffectiveConfig(ctx, profileID)
	if err != nil {
		log.Err(err).Int64("id", profileID).Msg("error building effective config")
		respondError(w, err)
		return
	}

	response := dashboardConfigResponse{
		Stored:    stored,
		Effective: effective,
	}
	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing dashboard config")
	}
}

func (h *Handler) saveConfigSection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	profileID, ok := utils.GetProfileIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		log.Err(err).Msg("error reading request body")
		http.Error(w, "error reading request body", http.StatusBadRequest)
		return
	}

	update := models.ConfigSectionUpdate{
		Section: chi.URLParam(r, "section"),
		Payload: payload,
	}
	if err := h.validator.Validate(ctx, update); err != nil {
		log.Err(err).Str("section", update.Section).Msg("invalid section payload")
		respondError(w, err)
		return
	}

	merged, err := h.services.ProfileService.SaveConfigSection(ctx, profileID, update.Payload)
	if err != nil {
		log.Err(err).Int64("id", profileID).Str("section", update.Section).Msg("error saving config section")
		respondError(w, err)
		return
	}

	log.Info().Int64("id", profileID).Str("section", update.Section).Msg("config section saved")

	w.Header().Set("Content-Type", "application/json")
	w.Write(merged)
}

func (h *Handler) checkAlias(w http.ResponseWriter, r *http.Request) {
	h.handleAlias(w, r, h.services.AliasService.CheckAlias)
}

func (h *Handler) setAlias(w http.ResponseWriter, r *http.Request) {
	h.handleAlias(w, r, h.services.AliasService.SetAlias)
}

func (h *Handler) handleAlias(w http.ResponseWriter, r *http.Request, operation func(ctx context.Context, profileID int64, alias string) (models.AliasCheck, error)) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	profileID, ok := utils.GetProfileIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request models.AliasRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, request); err != nil {
		log.Err(err).Msg("invalid alias payload")
		respondError(w, err)
		return
	}

	result, err := operation(ctx, profileID, request.Alias)
	if err != nil {
		log.Err(err).Int64("id", profileID).Msg("alias operation failed")
		respondError(w, err)
		return
	}

	if _, err := utils.WriteJSON(w, result, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing alias check result")
	}
}

func (h *Handler) listTemplates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	templates, err := h.services.TemplateService.ListTemplates(ctx)
	if err != nil {
		log.Err(err).Msg("error listing templates")
		respondError(w, err)
		return
	}

	if _, err := utils.WriteJSON(w, templates, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing template list")
	}
}

func (h *Handler) applyTemplate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	profileID, ok := utils.GetProfileIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	templateID, err := strconv.ParseInt(chi.URLParam(r, "templateID"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid template id")
		http.Error(w, "invalid template id", http.StatusBadRequest)
		return
	}

	merged, err := h.services.TemplateService.ApplyTemplate(ctx, profileID, templateID)
	if err != nil {
		log.Err(err).Int64("id", profileID).Int64("template_id", templateID).Msg("error applying template")
		respondError(w, err)
		return
	}

	log.Info().Int64("id", profileID).Int64("template_id", templateID).Msg("template applied")

	w.Header().Set("Content-Type", "application/json")
	w.Write(merged)
}
