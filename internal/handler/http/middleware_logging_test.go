// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-bio-link/internal/service"
	"github.com/stretchr/testify/assert"
)

// TestWithLogging_PassesThrough verifies that the logging middleware is
// transparent to the downstream handler: status and body reach the client
// unchanged.
func TestWithLogging_PassesThrough(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	mw := h.withLogging(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	}))

	rec := httptest.NewRecorder()
	mw.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/version/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "short and stout", rec.Body.String())
}

func TestResponseWriter_CapturesStatusAndSize(t *testing.T) {
	rec := httptest.NewRecorder()
	lw := &responseWriter{ResponseWriter: rec}

	lw.WriteHeader(http.StatusCreated)
	lw.WriteHeader(http.StatusInternalServerError) // ignored, header already written
	n, err := lw.Write([]byte("hello"))

	assert.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, http.StatusCreated, lw.status)
	assert.Equal(t, 5, lw.size)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestResponseWriter_ImplicitOKOnWrite(t *testing.T) {
	rec := httptest.NewRecorder()
	lw := &responseWriter{ResponseWriter: rec}

	lw.Write([]byte("ok"))
	lw.Write([]byte(" again"))

	assert.Equal(t, http.StatusOK, lw.status)
	assert.Equal(t, 8, lw.size)
}
