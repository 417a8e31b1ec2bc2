package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-bio-link/internal/logger"
	"github.com/MKhiriev/go-bio-link/internal/service"
	"github.com/MKhiriev/go-bio-link/internal/store"
	"github.com/MKhiriev/go-bio-link/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, request); err != nil {
		log.Err(err).Msg("invalid registration payload")
		respondError(w, err)
		return
	}

	registeredProfile, err := h.services.AuthService.RegisterProfile(ctx, request.Username, request.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidUsername) || errors.Is(err, service.ErrReservedUsername):
			log.Err(err).Msg("invalid username provided")
			respondError(w, err)
			return
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			log.Err(err).Msg("username already exists")
			http.Error(w, "username already exists", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during profile registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredProfile)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundProfile, err := h.services.AuthService.Login(ctx, request.Username, request.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoProfileWasFound) || errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("no profile was found/wrong password")
			http.Error(w, "invalid username/password", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during profile login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", foundProfile.ProfileID).Msg("profile successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundProfile)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	w.WriteHeader(http.StatusOK)
}
