// Package newsletterapi provides the newsletter subscriber API endpoints.
//
// Endpoints (mounted at /api/newsletter):
//   - POST   /api/newsletter       - Subscribe an email address (public form)
//   - GET    /api/newsletter       - List all subscribers
//   - GET    /api/newsletter/{id}  - Get one subscriber
//   - PATCH  /api/newsletter/{id}  - Update subscriber status
//   - DELETE /api/newsletter/{id}  - Delete subscriber
//
// All subscribers are stored in the newsletter_subscribers collection.
package newsletterapi

import (
	"errors"
	"net/http"
	"strings"

	newsletterstore "github.com/sitebase-io/sitebase/internal/app/store/newsletter"
	"github.com/sitebase-io/sitebase/internal/app/store/storeutil"
	"github.com/sitebase-io/sitebase/internal/app/system/inputval"
	"github.com/sitebase-io/sitebase/internal/app/system/jsonutil"
	"github.com/sitebase-io/sitebase/internal/app/system/normalize"
	"github.com/sitebase-io/sitebase/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Handler handles newsletter subscriber API requests.
type Handler struct {
	store  *newsletterstore.Store
	logger *zap.Logger
}

// NewHandler creates a new newsletterapi handler.
func NewHandler(store *newsletterstore.Store, logger *zap.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// SubscribeHandler handles POST /api/newsletter.
func (h *Handler) SubscribeHandler(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email string `json:"email"`
	}
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "Invalid JSON payload")
		return
	}

	email := normalize.Email(in.Email)
	if email == "" {
		jsonutil.BadRequest(w, "email is required")
		return
	}
	if !inputval.IsValidEmail(email) {
		jsonutil.BadRequest(w, "a valid email address is required")
		return
	}

	sub, err := h.store.Subscribe(r.Context(), email)
	if errors.Is(err, storeutil.ErrDuplicate) {
		jsonutil.Conflict(w, "Email already subscribed")
		return
	}
	if err != nil {
		h.logger.Error("failed to subscribe email", zap.Error(err))
		jsonutil.InternalError(w, "Failed to subscribe")
		return
	}

	h.logger.Debug("newsletter subscription added", zap.String("id", sub.ID.Hex()))
	jsonutil.Created(w, sub)
}

// ListHandler handles GET /api/newsletter.
func (h *Handler) ListHandler(w http.ResponseWriter, r *http.Request) {
	subs, err := h.store.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list subscribers", zap.Error(err))
		jsonutil.InternalError(w, "Failed to fetch subscribers")
		return
	}
	jsonutil.OK(w, subs)
}

// GetHandler handles GET /api/newsletter/{id}.
func (h *Handler) GetHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	sub, err := h.store.Get(r.Context(), id)
	if errors.Is(err, storeutil.ErrNotFound) {
		jsonutil.NotFound(w, "Subscriber not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to fetch subscriber", zap.String("id", id.Hex()), zap.Error(err))
		jsonutil.InternalError(w, "Failed to fetch subscriber")
		return
	}
	jsonutil.OK(w, sub)
}

// UpdateStatusHandler handles PATCH /api/newsletter/{id}.
// Switches a subscriber between Active and Inactive without losing the
// original join date.
func (h *Handler) UpdateStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var in struct {
		Status string `json:"status"`
	}
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "Invalid JSON payload")
		return
	}

	status := normalize.Status(in.Status)
	if !models.IsValidSubscriberStatus(status) {
		jsonutil.BadRequest(w, "status must be one of: "+strings.Join(models.AllSubscriberStatuses(), ", "))
		return
	}

	sub, err := h.store.UpdateStatus(r.Context(), id, status)
	if errors.Is(err, storeutil.ErrNotFound) {
		jsonutil.NotFound(w, "Subscriber not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to update subscriber", zap.String("id", id.Hex()), zap.Error(err))
		jsonutil.InternalError(w, "Failed to update subscriber")
		return
	}
	jsonutil.OK(w, sub)
}

// DeleteHandler handles DELETE /api/newsletter/{id}.
func (h *Handler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	sub, err := h.store.Delete(r.Context(), id)
	if errors.Is(err, storeutil.ErrNotFound) {
		jsonutil.NotFound(w, "Subscriber not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to delete subscriber", zap.String("id", id.Hex()), zap.Error(err))
		jsonutil.InternalError(w, "Failed to delete subscriber")
		return
	}
	jsonutil.OK(w, sub)
}

// pathID parses the {id} path parameter, writing a 400 when it is not a
// valid ObjectID.
func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	raw := chi.URLParam(r, "id")
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		jsonutil.BadRequest(w, "Invalid subscriber ID")
		return primitive.NilObjectID, false
	}
	return id, true
}
