// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-bio-link/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTraceID_GeneratesWhenAbsent(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	mw := h.withTraceID(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	mw.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/version/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestWithTraceID_PropagatesIncoming(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	mw := h.withTraceID(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	req.Header.Set(traceIDHeader, "trace-from-client")
	rec := httptest.NewRecorder()

	mw.ServeHTTP(rec, req)

	assert.Equal(t, "trace-from-client", rec.Header().Get(traceIDHeader))
}
