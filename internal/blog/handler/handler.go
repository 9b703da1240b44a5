// Package handler wires blog endpoints to the blog service.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"inkwell/internal/blog/models"
	"inkwell/internal/blog/service"
	"inkwell/pkg/platform/httputil"
	"inkwell/pkg/requestcontext"
)

// Service defines the blog operations the transport needs.
type Service interface {
	Posts(ctx context.Context) []models.Post
	FindBySlug(ctx context.Context, slug models.Slug) (models.Post, error)
	SeeAlso(ctx context.Context, slug models.Slug) []models.SeeAlsoLink
	Content(ctx context.Context, post models.Post) (string, error)
	ValidateManifest(entries []models.ManifestEntry) service.ValidationReport
}

// Handler exposes the blog catalog over HTTP.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a blog handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts blog endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/posts", h.HandleListPosts)
	r.Get("/posts/{slug}", h.HandleGetPost)
	r.Post("/manifest/validate", h.HandleValidateManifest)
}

// PostSummary is one entry in the post listing.
type PostSummary struct {
	Title string      `json:"title"`
	Slug  models.Slug `json:"slug"`
}

// PostResponse is a full post with its markdown body.
type PostResponse struct {
	Title   string               `json:"title"`
	Slug    models.Slug          `json:"slug"`
	Hidden  bool                 `json:"hidden,omitempty"`
	Content string               `json:"content"`
	SeeAlso []models.SeeAlsoLink `json:"see_also"`
}

// HandleListPosts handles GET /posts requests.
func (h *Handler) HandleListPosts(w http.ResponseWriter, r *http.Request) {
	posts := h.service.Posts(r.Context())

	summaries := make([]PostSummary, 0, len(posts))
	for _, post := range posts {
		summaries = append(summaries, PostSummary{
			Title: post.Title.Value(),
			Slug:  post.Slug,
		})
	}
	httputil.WriteJSON(w, http.StatusOK, summaries)
}

// HandleGetPost handles GET /posts/{slug} requests. An unknown or malformed
// slug lands on the newest visible post; only an empty catalog is a 404.
func (h *Handler) HandleGetPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := requestcontext.Now(ctx)

	slug, err := models.ParseSlug(chi.URLParam(r, "slug"))
	if err != nil {
		// Treated like an unknown slug: the reader still gets a post.
		slug = ""
	}

	post, err := h.service.FindBySlug(ctx, slug)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	content, err := h.service.Content(ctx, post)
	if err != nil {
		h.logger.ErrorContext(ctx, "content fetch failed",
			"request_id", requestID,
			"slug", post.Slug,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "post served",
		"request_id", requestID,
		"client_ip", requestcontext.ClientIP(ctx),
		"slug", post.Slug,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, PostResponse{
		Title:   post.Title.Value(),
		Slug:    post.Slug,
		Hidden:  post.Hidden,
		Content: content,
		SeeAlso: h.service.SeeAlso(ctx, post.Slug),
	})
}

// HandleValidateManifest handles POST /manifest/validate requests: a dry run
// of manifest validation for authors, nothing is published.
func (h *Handler) HandleValidateManifest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	entries, err := httputil.Decode[[]models.ManifestEntry](r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	report := h.service.ValidateManifest(entries)

	h.logger.InfoContext(ctx, "manifest validated",
		"request_id", requestID,
		"accepted", report.Accepted,
		"rejected", report.Rejected,
	)

	httputil.WriteJSON(w, http.StatusOK, report)
}
