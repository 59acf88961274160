package newsletterapi

import (
	"net/http"

	"github.com/sitebase-io/sitebase/internal/app/system/apicors"
	"github.com/go-chi/chi/v5"
)

// Routes returns a router with the newsletter subscriber endpoints.
//
// When mounted at /api/newsletter:
//   - POST   /api/newsletter       - Subscribe an email address
//   - GET    /api/newsletter       - List all subscribers
//   - GET    /api/newsletter/{id}  - Get one subscriber
//   - PATCH  /api/newsletter/{id}  - Update subscriber status
//   - DELETE /api/newsletter/{id}  - Delete subscriber
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(apicors.Middleware())

	r.Post("/", h.SubscribeHandler)
	r.Get("/", h.ListHandler)

	r.Route("/{id}", func(sr chi.Router) {
		sr.Get("/", h.GetHandler)
		sr.Patch("/", h.UpdateStatusHandler)
		sr.Delete("/", h.DeleteHandler)
	})

	return r
}
