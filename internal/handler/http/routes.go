package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Get("/api/version/", h.getServerVersion)
		r.Get("/api/templates", h.listTemplates)
	})

	// public page resolution; an owner with a valid token may preview a
	// hidden page, everyone else resolves anonymously
	router.Group(func(r chi.Router) {
		r.Use(h.optionalAuth)
		r.Get("/api/page/{segment}", h.getPage)
		r.Get("/api/page/{segment}/widgets", h.getPageWidgets)
		r.Get("/api/page/{segment}/widgets/{widget}", h.getPageWidget)
	})

	// dashboard routes for the authenticated owner
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/dashboard/config", h.getDashboardConfig)
		r.Put("/api/dashboard/config/{section}", h.saveConfigSection)
		r.Post("/api/dashboard/alias/check", h.checkAlias)
		r.Put("/api/dashboard/alias", h.setAlias)
		r.Post("/api/dashboard/template/{templateID}", h.applyTemplate)
	})

	return router
}
