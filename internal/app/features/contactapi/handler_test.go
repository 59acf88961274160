package contactapi

import (
	"encoding/json"
	"net/http"
	"testing"

	contactstore "github.com/sitebase-io/sitebase/internal/app/store/contact"
	"github.com/sitebase-io/sitebase/internal/domain/models"
	"github.com/sitebase-io/sitebase/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*Handler, *contactstore.Store) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	store := contactstore.New(db)
	// No mailer configured; notifications are skipped in tests.
	return NewHandler(store, nil, "", zap.NewNop()), store
}

func decodeMessage(t *testing.T, env testutil.Envelope) models.ContactMessage {
	t.Helper()
	var msg models.ContactMessage
	if err := json.Unmarshal(env.Data, &msg); err != nil {
		t.Fatalf("failed to decode message from envelope: %v", err)
	}
	return msg
}

func validBody() map[string]string {
	return map[string]string{
		"name":    "Riley Example",
		"email":   "riley@example.com",
		"phone":   "555-0101",
		"subject": "Question about services",
		"message": "Please tell me more.",
	}
}

func TestHandler_Create(t *testing.T) {
	h, _ := newTestHandler(t)
	router := Routes(h)

	t.Run("successful submit", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/", validBody())
		rec := testutil.NewRecorder()

		router.ServeHTTP(rec, req)

		rec.AssertStatus(t, http.StatusCreated)
		env := rec.DecodeEnvelope(t)
		if !env.Success {
			t.Fatalf("expected success envelope, got error %q", env.Error)
		}

		msg := decodeMessage(t, env)
		if msg.Status != models.ContactStatusUnread {
			t.Errorf("status = %q, want Unread", msg.Status)
		}
		if msg.ID.IsZero() {
			t.Error("message id should be set")
		}
	})

	t.Run("missing fields name the first one", func(t *testing.T) {
		tests := []struct {
			drop string
			want string
		}{
			{"name", "name is required"},
			{"email", "email is required"},
			{"phone", "phone is required"},
			{"subject", "subject is required"},
			{"message", "message is required"},
		}
		for _, tt := range tests {
			t.Run(tt.drop, func(t *testing.T) {
				body := validBody()
				delete(body, tt.drop)

				req := testutil.NewJSONRequest(t, http.MethodPost, "/", body)
				rec := testutil.NewRecorder()
				router.ServeHTTP(rec, req)

				rec.AssertStatus(t, http.StatusBadRequest)
				env := rec.DecodeEnvelope(t)
				if env.Error != tt.want {
					t.Errorf("error = %q, want %q", env.Error, tt.want)
				}
			})
		}
	})

	t.Run("blank phone rejected", func(t *testing.T) {
		body := validBody()
		body["phone"] = "   "

		req := testutil.NewJSONRequest(t, http.MethodPost, "/", body)
		rec := testutil.NewRecorder()
		router.ServeHTTP(rec, req)

		rec.AssertStatus(t, http.StatusBadRequest)
		env := rec.DecodeEnvelope(t)
		if env.Error != "phone is required" {
			t.Errorf("error = %q, want %q", env.Error, "phone is required")
		}
	})

	t.Run("malformed email rejected", func(t *testing.T) {
		body := validBody()
		body["email"] = "not-an-email"

		req := testutil.NewJSONRequest(t, http.MethodPost, "/", body)
		rec := testutil.NewRecorder()
		router.ServeHTTP(rec, req)

		rec.AssertStatus(t, http.StatusBadRequest)
	})

	t.Run("invalid json rejected", func(t *testing.T) {
		req := testutil.NewRequest(http.MethodPost, "/")
		rec := testutil.NewRecorder()
		router.ServeHTTP(rec, req)

		rec.AssertStatus(t, http.StatusBadRequest)
	})
}

func TestHandler_List(t *testing.T) {
	h, store := newTestHandler(t)
	router := Routes(h)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for _, subject := range []string{"Alpha", "Beta"} {
		_, err := store.Create(ctx, contactstore.CreateInput{
			Name:    "Sender",
			Email:   "sender@example.com",
			Phone:   "555-0100",
			Subject: subject,
			Message: "body",
		})
		if err != nil {
			t.Fatalf("Create(%q) error = %v", subject, err)
		}
	}

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/"))

	rec.AssertStatus(t, http.StatusOK)
	env := rec.DecodeEnvelope(t)

	var msgs []models.ContactMessage
	if err := json.Unmarshal(env.Data, &msgs); err != nil {
		t.Fatalf("failed to decode messages: %v", err)
	}
	if len(msgs) != 2 {
		t.Errorf("list count = %d, want 2", len(msgs))
	}
}

func TestHandler_UpdateStatus(t *testing.T) {
	h, store := newTestHandler(t)
	router := Routes(h)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, contactstore.CreateInput{
		Name:    "Sender",
		Email:   "sender@example.com",
		Phone:   "555-0100",
		Subject: "Triage",
		Message: "body",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	t.Run("valid status transition", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPatch, "/"+created.ID.Hex(),
			map[string]string{"status": models.ContactStatusRead})
		rec := testutil.NewRecorder()
		router.ServeHTTP(rec, req)

		rec.AssertStatus(t, http.StatusOK)
		msg := decodeMessage(t, rec.DecodeEnvelope(t))
		if msg.Status != models.ContactStatusRead {
			t.Errorf("status = %q, want Read", msg.Status)
		}
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPatch, "/"+created.ID.Hex(),
			map[string]string{"status": "Archived"})
		rec := testutil.NewRecorder()
		router.ServeHTTP(rec, req)

		rec.AssertStatus(t, http.StatusBadRequest)
		rec.AssertContains(t, "status must be one of")
	})

	t.Run("unknown id", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPatch, "/"+primitive.NewObjectID().Hex(),
			map[string]string{"status": models.ContactStatusRead})
		rec := testutil.NewRecorder()
		router.ServeHTTP(rec, req)

		rec.AssertStatus(t, http.StatusNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPatch, "/not-hex",
			map[string]string{"status": models.ContactStatusRead})
		rec := testutil.NewRecorder()
		router.ServeHTTP(rec, req)

		rec.AssertStatus(t, http.StatusBadRequest)
	})
}

func TestHandler_Delete(t *testing.T) {
	h, store := newTestHandler(t)
	router := Routes(h)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, contactstore.CreateInput{
		Name:    "Sender",
		Email:   "sender@example.com",
		Phone:   "555-0100",
		Subject: "Remove",
		Message: "body",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewRequest(http.MethodDelete, "/"+created.ID.Hex()))
	rec.AssertStatus(t, http.StatusOK)

	rec = testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewRequest(http.MethodDelete, "/"+created.ID.Hex()))
	rec.AssertStatus(t, http.StatusNotFound)
}
