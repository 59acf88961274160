package blogapi

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"
	"time"

	blogstore "github.com/sitebase-io/sitebase/internal/app/store/blog"
	"github.com/sitebase-io/sitebase/internal/app/system/uploads"
	"github.com/sitebase-io/sitebase/internal/domain/models"
	"github.com/sitebase-io/sitebase/internal/testutil"
	"github.com/dalemusser/waffle/pantry/storage"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*Handler, *blogstore.Store) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	store := blogstore.New(db)

	fileStore, err := storage.NewLocal(storage.LocalConfig{
		BasePath: t.TempDir(),
		BaseURL:  "/uploads",
	})
	if err != nil {
		t.Fatalf("failed to create local storage: %v", err)
	}

	logger := zap.NewNop()
	return NewHandler(store, uploads.New(fileStore, logger), logger), store
}

// postForm builds a multipart request body from field values plus an
// optional fake image file.
func postForm(t *testing.T, fields map[string]string, withImage bool) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			t.Fatalf("failed to write field %q: %v", name, err)
		}
	}
	if withImage {
		fw, err := w.CreateFormFile("image", "cover.jpg")
		if err != nil {
			t.Fatalf("failed to create form file: %v", err)
		}
		if _, err := io.Copy(fw, strings.NewReader("fake image bytes")); err != nil {
			t.Fatalf("failed to write form file: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func postFields(title string) map[string]string {
	return map[string]string{
		"title":    title,
		"excerpt":  "Short excerpt",
		"content":  "<p>Body content</p>",
		"category": "News",
		"status":   models.BlogStatusPublished,
	}
}

func decodePost(t *testing.T, env testutil.Envelope) models.BlogPost {
	t.Helper()
	var post models.BlogPost
	if err := json.Unmarshal(env.Data, &post); err != nil {
		t.Fatalf("failed to decode post from envelope: %v", err)
	}
	return post
}

func TestHandler_Create(t *testing.T) {
	h, _ := newTestHandler(t)
	router := Routes(h)

	t.Run("successful create", func(t *testing.T) {
		body, contentType := postForm(t, postFields("Getting Started with Next.js!!"), true)
		req := testutil.NewMultipartRequest(http.MethodPost, "/", body, contentType)
		rec := testutil.NewRecorder()

		router.ServeHTTP(rec, req)

		rec.AssertStatus(t, http.StatusCreated)
		env := rec.DecodeEnvelope(t)
		if !env.Success {
			t.Fatalf("expected success envelope, got error %q", env.Error)
		}

		post := decodePost(t, env)
		if post.Slug != "getting-started-with-next-js" {
			t.Errorf("slug = %q, want 'getting-started-with-next-js'", post.Slug)
		}
		if post.ID.IsZero() {
			t.Error("post id should be set")
		}
		if !strings.HasPrefix(post.ImageURL, "/uploads/") {
			t.Errorf("imageUrl = %q, want /uploads/ prefix", post.ImageURL)
		}
		if !strings.HasSuffix(post.ImageURL, "-cover.jpg") {
			t.Errorf("imageUrl = %q, want uuid-prefixed original name", post.ImageURL)
		}
	})

	t.Run("missing title", func(t *testing.T) {
		fields := postFields("")
		delete(fields, "title")
		body, contentType := postForm(t, fields, true)
		req := testutil.NewMultipartRequest(http.MethodPost, "/", body, contentType)
		rec := testutil.NewRecorder()

		router.ServeHTTP(rec, req)

		rec.AssertStatus(t, http.StatusBadRequest)
		env := rec.DecodeEnvelope(t)
		if env.Error != "title is required" {
			t.Errorf("error = %q, want 'title is required'", env.Error)
		}
	})

	t.Run("missing image", func(t *testing.T) {
		body, contentType := postForm(t, postFields("No Image Post"), false)
		req := testutil.NewMultipartRequest(http.MethodPost, "/", body, contentType)
		rec := testutil.NewRecorder()

		router.ServeHTTP(rec, req)

		rec.AssertStatus(t, http.StatusBadRequest)
		env := rec.DecodeEnvelope(t)
		if env.Error != "image is required" {
			t.Errorf("error = %q, want 'image is required'", env.Error)
		}
	})

	t.Run("duplicate title conflicts", func(t *testing.T) {
		body, contentType := postForm(t, postFields("Repeated Title"), true)
		req := testutil.NewMultipartRequest(http.MethodPost, "/", body, contentType)
		rec := testutil.NewRecorder()
		router.ServeHTTP(rec, req)
		rec.AssertStatus(t, http.StatusCreated)

		body, contentType = postForm(t, postFields("Repeated Title"), true)
		req = testutil.NewMultipartRequest(http.MethodPost, "/", body, contentType)
		rec = testutil.NewRecorder()
		router.ServeHTTP(rec, req)

		rec.AssertStatus(t, http.StatusConflict)
	})

	t.Run("invalid status", func(t *testing.T) {
		fields := postFields("Bad Status Post")
		fields["status"] = "archived"
		body, contentType := postForm(t, fields, true)
		req := testutil.NewMultipartRequest(http.MethodPost, "/", body, contentType)
		rec := testutil.NewRecorder()

		router.ServeHTTP(rec, req)

		rec.AssertStatus(t, http.StatusBadRequest)
		rec.AssertContains(t, "status must be one of")
	})
}

func TestHandler_List(t *testing.T) {
	h, store := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	mkPost := func(title, slug, status string) {
		t.Helper()
		_, err := store.Create(ctx, blogstore.CreateInput{
			Title:    title,
			Excerpt:  "e",
			Content:  "c",
			Slug:     slug,
			Category: "News",
			ImageURL: "/uploads/x.jpg",
			Status:   status,
		})
		if err != nil {
			t.Fatalf("Create(%q) error = %v", slug, err)
		}
	}
	mkPost("Live Post", "live-post", models.BlogStatusPublished)
	mkPost("Hidden Post", "hidden-post", models.BlogStatusDraft)

	t.Run("public list defaults to published", func(t *testing.T) {
		rec := testutil.NewRecorder()
		Routes(h).ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/"))

		rec.AssertStatus(t, http.StatusOK)
		env := rec.DecodeEnvelope(t)

		var posts []models.BlogPost
		if err := json.Unmarshal(env.Data, &posts); err != nil {
			t.Fatalf("failed to decode posts: %v", err)
		}
		if len(posts) != 1 || posts[0].Slug != "live-post" {
			t.Errorf("public list = %d posts, want only 'live-post'", len(posts))
		}
	})

	t.Run("public list with explicit status", func(t *testing.T) {
		rec := testutil.NewRecorder()
		Routes(h).ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/?status=Draft"))

		rec.AssertStatus(t, http.StatusOK)
		env := rec.DecodeEnvelope(t)

		var posts []models.BlogPost
		if err := json.Unmarshal(env.Data, &posts); err != nil {
			t.Fatalf("failed to decode posts: %v", err)
		}
		if len(posts) != 1 || posts[0].Slug != "hidden-post" {
			t.Errorf("draft list = %d posts, want only 'hidden-post'", len(posts))
		}
	})

	t.Run("admin list shows all statuses", func(t *testing.T) {
		rec := testutil.NewRecorder()
		AdminRoutes(h).ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/"))

		rec.AssertStatus(t, http.StatusOK)
		env := rec.DecodeEnvelope(t)

		var posts []models.BlogPost
		if err := json.Unmarshal(env.Data, &posts); err != nil {
			t.Fatalf("failed to decode posts: %v", err)
		}
		if len(posts) != 2 {
			t.Errorf("admin list = %d posts, want 2", len(posts))
		}
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		rec := testutil.NewRecorder()
		Routes(h).ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/?status=bogus"))
		rec.AssertStatus(t, http.StatusBadRequest)
	})
}

func TestHandler_Get(t *testing.T) {
	h, store := newTestHandler(t)
	router := Routes(h)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, blogstore.CreateInput{
		Title:    "Findable Post",
		Excerpt:  "e",
		Content:  "c",
		Slug:     "findable-post",
		Category: "News",
		ImageURL: "/uploads/x.jpg",
		Status:   models.BlogStatusPublished,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	t.Run("by slug", func(t *testing.T) {
		rec := testutil.NewRecorder()
		router.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/findable-post"))

		rec.AssertStatus(t, http.StatusOK)
		post := decodePost(t, rec.DecodeEnvelope(t))
		if post.ID != created.ID {
			t.Errorf("post id = %v, want %v", post.ID, created.ID)
		}
	})

	t.Run("by object id", func(t *testing.T) {
		rec := testutil.NewRecorder()
		router.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/"+created.ID.Hex()))

		rec.AssertStatus(t, http.StatusOK)
		post := decodePost(t, rec.DecodeEnvelope(t))
		if post.Slug != "findable-post" {
			t.Errorf("post slug = %q, want 'findable-post'", post.Slug)
		}
	})

	t.Run("not found", func(t *testing.T) {
		rec := testutil.NewRecorder()
		router.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/missing-post"))
		rec.AssertStatus(t, http.StatusNotFound)
	})
}

func TestHandler_Update(t *testing.T) {
	h, store := newTestHandler(t)
	router := Routes(h)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Create(ctx, blogstore.CreateInput{
		Title:    "Mutable Post",
		Excerpt:  "original excerpt",
		Content:  "c",
		Slug:     "mutable-post",
		Category: "News",
		ImageURL: "/uploads/x.jpg",
		Status:   models.BlogStatusDraft,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	t.Run("partial update keeps slug and other fields", func(t *testing.T) {
		body, contentType := postForm(t, map[string]string{
			"title":  "Mutable Post Renamed",
			"status": models.BlogStatusPublished,
		}, false)
		req := testutil.NewMultipartRequest(http.MethodPut, "/mutable-post", body, contentType)
		rec := testutil.NewRecorder()

		router.ServeHTTP(rec, req)

		rec.AssertStatus(t, http.StatusOK)
		post := decodePost(t, rec.DecodeEnvelope(t))
		if post.Title != "Mutable Post Renamed" {
			t.Errorf("title = %q, want 'Mutable Post Renamed'", post.Title)
		}
		if post.Slug != "mutable-post" {
			t.Errorf("slug = %q, want 'mutable-post' (never recomputed)", post.Slug)
		}
		if post.Status != models.BlogStatusPublished {
			t.Errorf("status = %q, want Published", post.Status)
		}
		if post.Excerpt != "original excerpt" {
			t.Errorf("excerpt = %q, want 'original excerpt' (unchanged)", post.Excerpt)
		}
	})

	t.Run("replacement image", func(t *testing.T) {
		body, contentType := postForm(t, map[string]string{}, true)
		req := testutil.NewMultipartRequest(http.MethodPut, "/mutable-post", body, contentType)
		rec := testutil.NewRecorder()

		router.ServeHTTP(rec, req)

		rec.AssertStatus(t, http.StatusOK)
		post := decodePost(t, rec.DecodeEnvelope(t))
		if !strings.HasSuffix(post.ImageURL, "-cover.jpg") {
			t.Errorf("imageUrl = %q, want replacement upload", post.ImageURL)
		}
	})

	t.Run("explicit date", func(t *testing.T) {
		want := time.Date(2024, 3, 15, 8, 30, 0, 0, time.UTC)
		body, contentType := postForm(t, map[string]string{
			"date": want.Format(time.RFC3339),
		}, false)
		req := testutil.NewMultipartRequest(http.MethodPut, "/mutable-post", body, contentType)
		rec := testutil.NewRecorder()

		router.ServeHTTP(rec, req)

		rec.AssertStatus(t, http.StatusOK)
		post := decodePost(t, rec.DecodeEnvelope(t))
		if !post.Date.Equal(want) {
			t.Errorf("date = %v, want %v", post.Date, want)
		}
	})

	t.Run("malformed date rejected", func(t *testing.T) {
		body, contentType := postForm(t, map[string]string{"date": "15/03/2024"}, false)
		req := testutil.NewMultipartRequest(http.MethodPut, "/mutable-post", body, contentType)
		rec := testutil.NewRecorder()

		router.ServeHTTP(rec, req)
		rec.AssertStatus(t, http.StatusBadRequest)
	})

	t.Run("not found", func(t *testing.T) {
		body, contentType := postForm(t, map[string]string{"excerpt": "x"}, false)
		req := testutil.NewMultipartRequest(http.MethodPut, "/no-such-post", body, contentType)
		rec := testutil.NewRecorder()

		router.ServeHTTP(rec, req)
		rec.AssertStatus(t, http.StatusNotFound)
	})
}

func TestHandler_Delete(t *testing.T) {
	h, store := newTestHandler(t)
	router := Routes(h)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Create(ctx, blogstore.CreateInput{
		Title:    "Short Lived",
		Excerpt:  "e",
		Content:  "c",
		Slug:     "short-lived",
		Category: "News",
		ImageURL: "/uploads/x.jpg",
		Status:   models.BlogStatusPublished,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewRequest(http.MethodDelete, "/short-lived"))
	rec.AssertStatus(t, http.StatusOK)

	rec = testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewRequest(http.MethodDelete, "/short-lived"))
	rec.AssertStatus(t, http.StatusNotFound)
}
