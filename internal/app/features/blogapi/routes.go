package blogapi

import (
	"net/http"

	"github.com/sitebase-io/sitebase/internal/app/system/apicors"
	"github.com/go-chi/chi/v5"
)

// Routes returns a router with the public blog post endpoints.
//
// When mounted at /api/blogs:
//   - GET    /api/blogs             - List posts (Published unless ?status=)
//   - POST   /api/blogs             - Create post
//   - GET    /api/blogs/{slugOrId}  - Get one post
//   - PUT    /api/blogs/{slugOrId}  - Update post
//   - DELETE /api/blogs/{slugOrId}  - Delete post
//
// CORS is permissive since the site frontend may be served from a
// different origin.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(apicors.Middleware())

	r.Get("/", h.ListHandler)
	r.Post("/", h.CreateHandler)

	r.Route("/{slugOrId}", func(sr chi.Router) {
		sr.Get("/", h.GetHandler)
		sr.Put("/", h.UpdateHandler)
		sr.Delete("/", h.DeleteHandler)
	})

	return r
}

// AdminRoutes returns a router with the back-office blog listing.
//
// When mounted at /api/admin/blogs:
//   - GET /api/admin/blogs - List posts of all statuses
func AdminRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(apicors.Middleware())

	r.Get("/", h.AdminListHandler)

	return r
}
