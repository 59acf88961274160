// Package blogapi provides the blog post API endpoints.
//
// Endpoints (mounted at /api/blogs, admin listing at /api/admin/blogs):
//   - GET    /api/blogs             - List posts (defaults to Published)
//   - POST   /api/blogs             - Create post (multipart form with image)
//   - GET    /api/blogs/{slugOrId}  - Get one post by slug or ID
//   - PUT    /api/blogs/{slugOrId}  - Update post fields
//   - DELETE /api/blogs/{slugOrId}  - Delete post
//   - GET    /api/admin/blogs       - List posts of all statuses
//
// All posts are stored in the blog_posts collection.
package blogapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	blogstore "github.com/sitebase-io/sitebase/internal/app/store/blog"
	"github.com/sitebase-io/sitebase/internal/app/store/storeutil"
	"github.com/sitebase-io/sitebase/internal/app/system/htmlsanitize"
	"github.com/sitebase-io/sitebase/internal/app/system/inputval"
	"github.com/sitebase-io/sitebase/internal/app/system/jsonutil"
	"github.com/sitebase-io/sitebase/internal/app/system/normalize"
	"github.com/sitebase-io/sitebase/internal/app/system/slugify"
	"github.com/sitebase-io/sitebase/internal/app/system/uploads"
	"github.com/sitebase-io/sitebase/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxUploadSize = 32 << 20 // 32MB

// Handler handles blog post API requests.
type Handler struct {
	store    *blogstore.Store
	uploader *uploads.Uploader
	logger   *zap.Logger
}

// NewHandler creates a new blogapi handler.
func NewHandler(store *blogstore.Store, uploader *uploads.Uploader, logger *zap.Logger) *Handler {
	return &Handler{
		store:    store,
		uploader: uploader,
		logger:   logger,
	}
}

// createInput carries the validated fields of a new post.
type createInput struct {
	Title    string `validate:"required" label:"title" json:"title"`
	Excerpt  string `validate:"required" label:"excerpt" json:"excerpt"`
	Content  string `validate:"required" label:"content" json:"content"`
	Category string `validate:"required" label:"category" json:"category"`
	ImageURL string `validate:"required" label:"image" json:"imageUrl"`
}

// ListHandler handles GET /api/blogs.
// The public listing shows Published posts unless ?status= says otherwise.
func (h *Handler) ListHandler(w http.ResponseWriter, r *http.Request) {
	status := normalize.QueryParam(r.URL.Query().Get("status"))
	if status == "" {
		status = models.BlogStatusPublished
	}
	if !models.IsValidBlogStatus(status) {
		jsonutil.BadRequest(w, "status must be one of: "+strings.Join(models.AllBlogStatuses(), ", "))
		return
	}
	h.list(w, r, status)
}

// AdminListHandler handles GET /api/admin/blogs.
// The back-office listing shows every status unless ?status= filters it.
func (h *Handler) AdminListHandler(w http.ResponseWriter, r *http.Request) {
	status := normalize.QueryParam(r.URL.Query().Get("status"))
	if status != "" && !models.IsValidBlogStatus(status) {
		jsonutil.BadRequest(w, "status must be one of: "+strings.Join(models.AllBlogStatuses(), ", "))
		return
	}
	h.list(w, r, status)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request, status string) {
	posts, err := h.store.List(r.Context(), status)
	if err != nil {
		h.logger.Error("failed to list blog posts", zap.Error(err))
		jsonutil.InternalError(w, "Failed to fetch blog posts")
		return
	}
	jsonutil.OK(w, posts)
}

// GetHandler handles GET /api/blogs/{slugOrId}.
func (h *Handler) GetHandler(w http.ResponseWriter, r *http.Request) {
	ident := chi.URLParam(r, "slugOrId")

	post, err := h.store.Get(r.Context(), ident)
	if errors.Is(err, storeutil.ErrNotFound) {
		jsonutil.NotFound(w, "Blog post not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to fetch blog post", zap.String("ident", ident), zap.Error(err))
		jsonutil.InternalError(w, "Failed to fetch blog post")
		return
	}
	jsonutil.OK(w, post)
}

// CreateHandler handles POST /api/blogs.
// The request is a multipart form carrying the post fields and an "image"
// file. The slug is derived from the title and never changes afterward.
func (h *Handler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		jsonutil.BadRequest(w, "Invalid form data or file too large (max 32MB)")
		return
	}

	imageURL, err := h.saveImageIfPresent(r)
	if err != nil {
		h.logger.Error("failed to store blog image", zap.Error(err))
		jsonutil.InternalError(w, "Failed to store uploaded image")
		return
	}
	if imageURL == "" {
		imageURL = normalize.Field(r.FormValue("imageUrl"))
	}

	in := createInput{
		Title:    normalize.Field(r.FormValue("title")),
		Excerpt:  normalize.Field(r.FormValue("excerpt")),
		Content:  normalize.Field(r.FormValue("content")),
		Category: normalize.Field(r.FormValue("category")),
		ImageURL: imageURL,
	}
	if res := inputval.Validate(in); res.HasErrors() {
		jsonutil.BadRequest(w, res.First())
		return
	}

	youtubeURL := normalize.Field(r.FormValue("youtubeUrl"))
	if youtubeURL != "" && !inputval.IsValidHTTPURL(youtubeURL) {
		jsonutil.BadRequest(w, "youtubeUrl must be a valid URL starting with http:// or https://")
		return
	}

	status := normalize.Status(r.FormValue("status"))
	if status == "" {
		status = models.BlogStatusDraft
	}
	if !models.IsValidBlogStatus(status) {
		jsonutil.BadRequest(w, "status must be one of: "+strings.Join(models.AllBlogStatuses(), ", "))
		return
	}

	slug := slugify.Slug(in.Title)
	if slug == "" {
		jsonutil.BadRequest(w, "title must contain at least one letter or number")
		return
	}

	post, err := h.store.Create(ctx, blogstore.CreateInput{
		Title:      in.Title,
		Excerpt:    in.Excerpt,
		Content:    htmlsanitize.Sanitize(in.Content),
		Content2:   htmlsanitize.Sanitize(normalize.Field(r.FormValue("content2"))),
		Content3:   htmlsanitize.Sanitize(normalize.Field(r.FormValue("content3"))),
		Slug:       slug,
		Category:   in.Category,
		ImageURL:   in.ImageURL,
		YoutubeURL: youtubeURL,
		Status:     status,
	})
	if errors.Is(err, storeutil.ErrDuplicate) {
		jsonutil.Conflict(w, "A blog post with this title already exists")
		return
	}
	if err != nil {
		h.logger.Error("failed to create blog post", zap.String("slug", slug), zap.Error(err))
		jsonutil.InternalError(w, "Failed to create blog post")
		return
	}

	h.logger.Debug("blog post created",
		zap.String("id", post.ID.Hex()),
		zap.String("slug", post.Slug),
	)
	jsonutil.Created(w, post)
}

// UpdateHandler handles PUT /api/blogs/{slugOrId}.
// Only fields present in the form are written; the slug is never recomputed,
// so links to a published post keep working after a title edit.
func (h *Handler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ident := chi.URLParam(r, "slugOrId")

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		jsonutil.BadRequest(w, "Invalid form data or file too large (max 32MB)")
		return
	}

	var in blogstore.UpdateInput
	if v, ok := formValue(r, "title"); ok {
		if v == "" {
			jsonutil.BadRequest(w, "title is required")
			return
		}
		in.Title = &v
	}
	if v, ok := formValue(r, "excerpt"); ok {
		in.Excerpt = &v
	}
	if v, ok := formValue(r, "content"); ok {
		s := htmlsanitize.Sanitize(v)
		in.Content = &s
	}
	if v, ok := formValue(r, "content2"); ok {
		s := htmlsanitize.Sanitize(v)
		in.Content2 = &s
	}
	if v, ok := formValue(r, "content3"); ok {
		s := htmlsanitize.Sanitize(v)
		in.Content3 = &s
	}
	if v, ok := formValue(r, "category"); ok {
		in.Category = &v
	}
	if v, ok := formValue(r, "youtubeUrl"); ok {
		if v != "" && !inputval.IsValidHTTPURL(v) {
			jsonutil.BadRequest(w, "youtubeUrl must be a valid URL starting with http:// or https://")
			return
		}
		in.YoutubeURL = &v
	}
	if v, ok := formValue(r, "date"); ok {
		d, err := time.Parse(time.RFC3339, v)
		if err != nil {
			jsonutil.BadRequest(w, "date must be an RFC 3339 timestamp")
			return
		}
		in.Date = &d
	}
	if v, ok := formValue(r, "status"); ok {
		if !models.IsValidBlogStatus(v) {
			jsonutil.BadRequest(w, "status must be one of: "+strings.Join(models.AllBlogStatuses(), ", "))
			return
		}
		in.Status = &v
	}

	imageURL, err := h.saveImageIfPresent(r)
	if err != nil {
		h.logger.Error("failed to store blog image", zap.Error(err))
		jsonutil.InternalError(w, "Failed to store uploaded image")
		return
	}
	if imageURL != "" {
		in.ImageURL = &imageURL
	} else if v, ok := formValue(r, "imageUrl"); ok && v != "" {
		in.ImageURL = &v
	}

	post, err := h.store.Update(ctx, ident, in)
	if errors.Is(err, storeutil.ErrNotFound) {
		jsonutil.NotFound(w, "Blog post not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to update blog post", zap.String("ident", ident), zap.Error(err))
		jsonutil.InternalError(w, "Failed to update blog post")
		return
	}
	jsonutil.OK(w, post)
}

// DeleteHandler handles DELETE /api/blogs/{slugOrId}.
// The stored image file is left behind; uploads accumulate until cleaned
// out of band.
func (h *Handler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	ident := chi.URLParam(r, "slugOrId")

	post, err := h.store.Delete(r.Context(), ident)
	if errors.Is(err, storeutil.ErrNotFound) {
		jsonutil.NotFound(w, "Blog post not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to delete blog post", zap.String("ident", ident), zap.Error(err))
		jsonutil.InternalError(w, "Failed to delete blog post")
		return
	}

	h.logger.Debug("blog post deleted",
		zap.String("id", post.ID.Hex()),
		zap.String("slug", post.Slug),
	)
	jsonutil.OK(w, post)
}

// saveImageIfPresent stores the "image" multipart file when one was sent and
// returns its public URL, or "" when the form has no file.
func (h *Handler) saveImageIfPresent(r *http.Request) (string, error) {
	file, header, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	return h.uploader.SaveImage(r.Context(), file, header.Filename, contentType)
}

// formValue reports whether a multipart form field was sent at all, so a PUT
// can tell "clear this field" apart from "leave it alone".
func formValue(r *http.Request, name string) (string, bool) {
	if r.MultipartForm == nil {
		return "", false
	}
	vals, ok := r.MultipartForm.Value[name]
	if !ok || len(vals) == 0 {
		return "", false
	}
	return normalize.Field(vals[0]), true
}
