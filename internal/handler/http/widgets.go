package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-bio-link/internal/logger"
	"github.com/MKhiriev/go-bio-link/internal/utils"
	"github.com/MKhiriev/go-bio-link/models"
)

func (h *Handler) getPageWidgets(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	widgets, err := h.resolveWidgets(w, r)
	if err != nil {
		// response already written by resolveWidgets
		return
	}

	if _, err := utils.WriteJSON(w, widgets, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing widgets payload")
	}
}

func (h *Handler) getPageWidget(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	widgets, err := h.resolveWidgets(w, r)
	if err != nil {
		return
	}

	var payload any
	switch name := chi.URLParam(r, "widget"); name {
	case "now-playing":
		payload = widgets.NowPlaying
	case "weather":
		payload = widgets.Weather
	case "code-activity":
		payload = widgets.CodeActivity
	case "contributions":
		payload = widgets.Contributions
	default:
		log.Debug().Str("widget", name).Msg("unknown widget requested")
		http.Error(w, "unknown widget", http.StatusNotFound)
		return
	}

	if isNilWidget(payload) {
		// widget disabled for the profile or upstream data unavailable
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if _, err := utils.WriteJSON(w, payload, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing widget payload")
	}
}

// resolveWidgets maps the URL segment to a profile and fetches its widget
// set. On failure it writes the error response itself and returns a non-nil
// error so callers can simply bail out.
func (h *Handler) resolveWidgets(w http.ResponseWriter, r *http.Request) (models.WidgetSet, error) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	segment := chi.URLParam(r, "segment")
	viewerID, _ := utils.GetProfileIDFromContext(ctx)

	page, err := h.services.ResolverService.ResolvePage(ctx, segment, viewerID)
	if err != nil {
		log.Err(err).Str("segment", segment).Msg("page resolution failed")
		respondError(w, err)
		return models.WidgetSet{}, err
	}

	widgets, err := h.services.WidgetService.GetWidgets(ctx, page.ProfileID)
	if err != nil {
		log.Err(err).Int64("id", page.ProfileID).Msg("error fetching widgets")
		respondError(w, err)
		return models.WidgetSet{}, err
	}

	return widgets, nil
}

func isNilWidget(payload any) bool {
	switch widget := payload.(type) {
	case *models.NowPlaying:
		return widget == nil
	case *models.Weather:
		return widget == nil
	case *models.CodeActivity:
		return widget == nil
	case *models.Contributions:
		return widget == nil
	default:
		return payload == nil
	}
}
