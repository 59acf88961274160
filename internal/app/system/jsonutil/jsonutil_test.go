package jsonutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestOK(t *testing.T) {
	rec := httptest.NewRecorder()
	OK(rec, map[string]string{"hello": "world"})

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var env struct {
		Success bool              `json:"success"`
		Data    map[string]string `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if !env.Success {
		t.Error("success should be true")
	}
	if env.Data["hello"] != "world" {
		t.Errorf("data = %v, want hello=world", env.Data)
	}
}

func TestCreated(t *testing.T) {
	rec := httptest.NewRecorder()
	Created(rec, "made")

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
}

func TestError_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	NotFound(rec, "thing not found")

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}

	body := rec.Body.String()
	if !strings.Contains(body, `"success":false`) {
		t.Errorf("body = %s, want success:false", body)
	}
	if !strings.Contains(body, `"thing not found"`) {
		t.Errorf("body = %s, want error message", body)
	}
	// No data key on failures
	if strings.Contains(body, `"data"`) {
		t.Errorf("body = %s, should omit data on failure", body)
	}
}

func TestErrorHelpers_StatusCodes(t *testing.T) {
	tests := []struct {
		name string
		fn   func(http.ResponseWriter, string)
		want int
	}{
		{"BadRequest", BadRequest, http.StatusBadRequest},
		{"NotFound", NotFound, http.StatusNotFound},
		{"Conflict", Conflict, http.StatusConflict},
		{"InternalError", InternalError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.fn(rec, "boom")
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"a@b.co"}`))

	var in struct {
		Email string `json:"email"`
	}
	if err := Decode(req, &in); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if in.Email != "a@b.co" {
		t.Errorf("email = %q, want 'a@b.co'", in.Email)
	}

	bad := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{broken`))
	if err := Decode(bad, &in); err == nil {
		t.Error("Decode() of malformed JSON should error")
	}
}
