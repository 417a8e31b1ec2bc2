package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-bio-link/internal/logger"
	"github.com/MKhiriev/go-bio-link/internal/utils"
)

func (h *Handler) getPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	segment := chi.URLParam(r, "segment")
	viewerID, _ := utils.GetProfileIDFromContext(ctx)

	page, err := h.services.ResolverService.ResolvePage(ctx, segment, viewerID)
	if err != nil {
		log.Err(err).Str("segment", segment).Msg("page resolution failed")
		respondError(w, err)
		return
	}

	body, err := json.Marshal(page)
	if err != nil {
		log.Err(err).Msg("error serializing page payload")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	// ETag lets browsers revalidate the page payload cheaply; the value is
	// keyed so that it is not a usable content digest.
	etag := `"` + utils.HashString(string(body), h.etagKey) + `"`
	if r.Header.Get("If-None-Match") == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}
