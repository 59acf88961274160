package contactapi

import (
	"net/http"

	"github.com/sitebase-io/sitebase/internal/app/system/apicors"
	"github.com/go-chi/chi/v5"
)

// Routes returns a router with the contact message endpoints.
//
// When mounted at /api/contact:
//   - POST   /api/contact       - Submit a message
//   - GET    /api/contact       - List all messages
//   - GET    /api/contact/{id}  - Get one message
//   - PATCH  /api/contact/{id}  - Update message status
//   - DELETE /api/contact/{id}  - Delete message
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(apicors.Middleware())

	r.Post("/", h.CreateHandler)
	r.Get("/", h.ListHandler)

	r.Route("/{id}", func(sr chi.Router) {
		sr.Get("/", h.GetHandler)
		sr.Patch("/", h.UpdateStatusHandler)
		sr.Delete("/", h.DeleteHandler)
	})

	return r
}
