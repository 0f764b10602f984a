package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// compressedContentTypes are the response types compressed for clients that
// accept gzip.
var compressedContentTypes = []string{"application/json", "text/plain"}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGunzip)
	router.Use(middleware.Compress(gzipLevel, compressedContentTypes...))
	if h.options.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.options.RequestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/health", h.getHealth)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/user/profile", h.profile)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
