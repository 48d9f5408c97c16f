package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	router.Get("/api/version", h.getServerVersion)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Post("/api/user/register", h.register)
		r.Post("/api/auth/token", h.refreshToken)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		// the websocket handshake must reach the hijackable writer
		r.Get("/hub", h.serveHub)

		r.Group(func(r chi.Router) {
			r.Use(withGZip)
			r.Get("/api/users/me", h.me)
			r.Post("/api/devices", h.registerDevice)
			r.Delete("/api/devices/{deviceID}", h.unregisterDevice)
			r.Post("/api/files/queue", h.queueUploads)
		})
	})

	router.MethodNotAllowed(hideMethodNotAllowed(router))

	return router
}
