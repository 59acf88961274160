// Package contactapi provides the contact message API endpoints.
//
// Endpoints (mounted at /api/contact):
//   - POST   /api/contact       - Submit a contact message (public form)
//   - GET    /api/contact       - List all messages
//   - GET    /api/contact/{id}  - Get one message
//   - PATCH  /api/contact/{id}  - Update message status (triage workflow)
//   - DELETE /api/contact/{id}  - Delete message
//
// All messages are stored in the contact_messages collection.
package contactapi

import (
	"errors"
	"net/http"
	"strings"

	contactstore "github.com/sitebase-io/sitebase/internal/app/store/contact"
	"github.com/sitebase-io/sitebase/internal/app/store/storeutil"
	"github.com/sitebase-io/sitebase/internal/app/system/inputval"
	"github.com/sitebase-io/sitebase/internal/app/system/jsonutil"
	"github.com/sitebase-io/sitebase/internal/app/system/mailer"
	"github.com/sitebase-io/sitebase/internal/app/system/normalize"
	"github.com/sitebase-io/sitebase/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Handler handles contact message API requests.
type Handler struct {
	store       *contactstore.Store
	mailer      *mailer.Mailer
	notifyEmail string
	logger      *zap.Logger
}

// NewHandler creates a new contactapi handler. mailer may be nil and
// notifyEmail empty, in which case no notification is sent on new messages.
func NewHandler(store *contactstore.Store, m *mailer.Mailer, notifyEmail string, logger *zap.Logger) *Handler {
	return &Handler{
		store:       store,
		mailer:      m,
		notifyEmail: notifyEmail,
		logger:      logger,
	}
}

// createInput carries the validated fields of an incoming message.
// Field order decides which missing field gets named first.
type createInput struct {
	Name    string `validate:"required" label:"name" json:"name"`
	Email   string `validate:"required" label:"email" json:"email"`
	Phone   string `validate:"required" label:"phone" json:"phone"`
	Subject string `validate:"required" label:"subject" json:"subject"`
	Message string `validate:"required" label:"message" json:"message"`
}

// CreateHandler handles POST /api/contact.
func (h *Handler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var in createInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "Invalid JSON payload")
		return
	}

	in.Name = normalize.Field(in.Name)
	in.Email = normalize.Email(in.Email)
	in.Phone = normalize.Field(in.Phone)
	in.Subject = normalize.Field(in.Subject)
	in.Message = normalize.Field(in.Message)

	if res := inputval.Validate(in); res.HasErrors() {
		jsonutil.BadRequest(w, res.First())
		return
	}
	if !inputval.IsValidEmail(in.Email) {
		jsonutil.BadRequest(w, "a valid email address is required")
		return
	}

	msg, err := h.store.Create(r.Context(), contactstore.CreateInput{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Subject: in.Subject,
		Message: in.Message,
	})
	if err != nil {
		h.logger.Error("failed to create contact message", zap.Error(err))
		jsonutil.InternalError(w, "Failed to submit contact message")
		return
	}

	h.notify(msg)

	h.logger.Debug("contact message created",
		zap.String("id", msg.ID.Hex()),
		zap.String("subject", msg.Subject),
	)
	jsonutil.Created(w, msg)
}

// notify sends the new-message notification email in the background.
// Send failures are logged and never surfaced to the submitter.
func (h *Handler) notify(msg models.ContactMessage) {
	if h.mailer == nil || h.notifyEmail == "" {
		return
	}
	go func() {
		if err := h.mailer.Send(mailer.ContactNotification(h.notifyEmail, msg)); err != nil {
			h.logger.Warn("failed to send contact notification",
				zap.String("id", msg.ID.Hex()),
				zap.Error(err),
			)
		}
	}()
}

// ListHandler handles GET /api/contact.
func (h *Handler) ListHandler(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.store.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list contact messages", zap.Error(err))
		jsonutil.InternalError(w, "Failed to fetch contact messages")
		return
	}
	jsonutil.OK(w, msgs)
}

// GetHandler handles GET /api/contact/{id}.
func (h *Handler) GetHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	msg, err := h.store.Get(r.Context(), id)
	if errors.Is(err, storeutil.ErrNotFound) {
		jsonutil.NotFound(w, "Contact message not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to fetch contact message", zap.String("id", id.Hex()), zap.Error(err))
		jsonutil.InternalError(w, "Failed to fetch contact message")
		return
	}
	jsonutil.OK(w, msg)
}

// UpdateStatusHandler handles PATCH /api/contact/{id}.
// Only the status field can change; the message body is immutable.
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
	if !models.IsValidContactStatus(status) {
		jsonutil.BadRequest(w, "status must be one of: "+strings.Join(models.AllContactStatuses(), ", "))
		return
	}

	msg, err := h.store.UpdateStatus(r.Context(), id, status)
	if errors.Is(err, storeutil.ErrNotFound) {
		jsonutil.NotFound(w, "Contact message not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to update contact message", zap.String("id", id.Hex()), zap.Error(err))
		jsonutil.InternalError(w, "Failed to update contact message")
		return
	}
	jsonutil.OK(w, msg)
}

// DeleteHandler handles DELETE /api/contact/{id}.
func (h *Handler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	msg, err := h.store.Delete(r.Context(), id)
	if errors.Is(err, storeutil.ErrNotFound) {
		jsonutil.NotFound(w, "Contact message not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to delete contact message", zap.String("id", id.Hex()), zap.Error(err))
		jsonutil.InternalError(w, "Failed to delete contact message")
		return
	}
	jsonutil.OK(w, msg)
}

// pathID parses the {id} path parameter, writing a 400 when it is not a
// valid ObjectID.
func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	raw := chi.URLParam(r, "id")
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		jsonutil.BadRequest(w, "Invalid message ID")
		return primitive.NilObjectID, false
	}
	return id, true
}
