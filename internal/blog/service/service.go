// Package service orchestrates the blog catalog: it loads the manifest from
// the remote source with a local fallback, validates entries into posts, and
// serves markdown content through the cache.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"inkwell/internal/blog/cache"
	"inkwell/internal/blog/metrics"
	"inkwell/internal/blog/models"
	"inkwell/internal/blog/source"
	dErrors "inkwell/pkg/domain-errors"
	"inkwell/pkg/platform/circuit"
)

// warmConcurrency caps parallel content fetches during Warm so a cold start
// does not hammer the remote host.
const warmConcurrency = 4

// Service serves validated posts and their markdown content.
type Service struct {
	local   source.Source
	remote  source.Source
	cache   cache.ContentCache
	breaker *circuit.Breaker
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
	fetches singleflight.Group

	mu    sync.RWMutex
	posts []models.Post // newest first
}

type Option func(s *Service)

// WithRemote adds a remote source tried before the local one.
func WithRemote(remote source.Source) Option {
	return func(s *Service) {
		s.remote = remote
	}
}

// WithCache replaces the default in-process content cache.
func WithCache(c cache.ContentCache) Option {
	return func(s *Service) {
		s.cache = c
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// New constructs a Service over a local content source.
func New(local source.Source, opts ...Option) *Service {
	s := &Service{
		local:   local,
		cache:   cache.NewMemory(5 * time.Minute),
		breaker: circuit.New("remote-content"),
		logger:  slog.Default(),
		tracer:  otel.Tracer("inkwell/blog"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reload fetches the manifest, validates its entries into posts, and swaps
// the catalog. Invalid entries are skipped with a warning; only a manifest
// that cannot be loaded at all fails the reload. The content cache is
// invalidated so readers see updated markdown.
func (s *Service) Reload(ctx context.Context) error {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "blog.Reload")
	defer span.End()

	entries, origin, err := s.loadManifest(ctx)
	if err != nil {
		span.RecordError(err)
		return err
	}

	posts := make([]models.Post, 0, len(entries))
	for _, entry := range entries {
		post, err := models.ParsePost(entry)
		if err != nil {
			s.metrics.IncrementRejected()
			s.logger.Warn("skipping invalid manifest entry",
				"title", entry.Title, "error", err)
			continue
		}
		s.metrics.IncrementAccepted()
		posts = append(posts, post)
	}
	// The manifest lists oldest first; readers want newest first.
	slices.Reverse(posts)

	s.mu.Lock()
	s.posts = posts
	s.mu.Unlock()

	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("content cache invalidation failed", "error", err)
	}

	s.metrics.ObserveReload(start)
	s.logger.Info("manifest reloaded", "source", origin, "posts", len(posts))
	return nil
}

// loadManifest prefers the remote source and falls back to local. Reload is
// infrequent, so it always probes the remote even when the breaker is open;
// a successful probe resets the breaker for the content path.
func (s *Service) loadManifest(ctx context.Context) ([]models.ManifestEntry, string, error) {
	if s.remote != nil {
		entries, err := s.remote.Manifest(ctx)
		if err == nil {
			s.breaker.Reset()
			return entries, "remote", nil
		}
		_, change := s.breaker.RecordFailure()
		if change.Opened {
			s.logger.Warn("circuit breaker opened", "breaker", s.breaker.Name())
		}
		s.logger.Warn("remote manifest unavailable, using local copy", "error", err)
	}

	entries, err := s.local.Manifest(ctx)
	if err != nil {
		return nil, "", dErrors.Wrap(dErrors.CodeUnavailable, "load manifest", err)
	}
	return entries, "local", nil
}

// Posts returns the visible posts, newest first.
func (s *Service) Posts(_ context.Context) []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	visible := make([]models.Post, 0, len(s.posts))
	for _, post := range s.posts {
		if !post.Hidden {
			visible = append(visible, post)
		}
	}
	return visible
}

// FindBySlug returns the post with the given slug. Hidden posts are
// reachable by direct slug even though listings omit them. An unknown slug
// lands the reader on the newest visible post rather than an error page;
// only an empty catalog is CodeNotFound.
func (s *Service) FindBySlug(_ context.Context, slug models.Slug) (models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, post := range s.posts {
		if post.Slug == slug {
			return post, nil
		}
	}
	for _, post := range s.posts {
		if !post.Hidden {
			return post, nil
		}
	}
	return models.Post{}, dErrors.New(dErrors.CodeNotFound, "no posts available")
}

// SeeAlso returns links to the other visible posts, newest first.
func (s *Service) SeeAlso(_ context.Context, slug models.Slug) []models.SeeAlsoLink {
	s.mu.RLock()
	defer s.mu.RUnlock()

	links := make([]models.SeeAlsoLink, 0, len(s.posts))
	for _, post := range s.posts {
		if post.Hidden || post.Slug == slug {
			continue
		}
		links = append(links, models.SeeAlsoLink{
			Title: post.Title.Value(),
			Slug:  post.Slug,
		})
	}
	return links
}

// Content returns the markdown body for a post, served from cache when
// possible. Concurrent requests for the same document share one fetch.
func (s *Service) Content(ctx context.Context, post models.Post) (string, error) {
	ctx, span := s.tracer.Start(ctx, "blog.Content",
		trace.WithAttributes(attribute.String("post.slug", post.Slug.String())))
	defer span.End()

	key := post.Path.Value()
	if body, err := s.cache.Get(ctx, key); err == nil {
		s.metrics.IncrementCacheHit()
		return body, nil
	}
	s.metrics.IncrementCacheMiss()

	body, err, _ := s.fetches.Do(key, func() (any, error) {
		return s.fetchContent(ctx, key)
	})
	if err != nil {
		span.RecordError(err)
		return "", err
	}
	return body.(string), nil
}

// fetchContent tries the remote source while the breaker allows it, falls
// back to local, and caches whatever it got.
func (s *Service) fetchContent(ctx context.Context, path string) (string, error) {
	if s.remote != nil && !s.breaker.IsOpen() {
		body, err := s.remote.Content(ctx, path)
		if err == nil {
			s.breaker.RecordSuccess()
			s.metrics.IncrementFetch("remote", "ok")
			s.storeInCache(ctx, path, body)
			return body, nil
		}
		s.metrics.IncrementFetch("remote", "error")
		if dErrors.HasCode(err, dErrors.CodeUnavailable) {
			_, change := s.breaker.RecordFailure()
			if change.Opened {
				s.logger.Warn("circuit breaker opened", "breaker", s.breaker.Name())
			}
		}
		s.logger.Warn("remote content unavailable, using local copy",
			"path", path, "error", err)
	}

	body, err := s.local.Content(ctx, path)
	if err != nil {
		s.metrics.IncrementFetch("local", "error")
		return "", err
	}
	s.metrics.IncrementFetch("local", "ok")
	s.storeInCache(ctx, path, body)
	return body, nil
}

func (s *Service) storeInCache(ctx context.Context, key, body string) {
	if err := s.cache.Set(ctx, key, body); err != nil {
		s.logger.Warn("content cache write failed", "path", key, "error", err)
	}
}

// Warm prefetches content for every post so the first reader after a reload
// is not the one paying for the fetch. Failures are logged, not returned;
// warming is best effort.
func (s *Service) Warm(ctx context.Context) {
	s.mu.RLock()
	posts := slices.Clone(s.posts)
	s.mu.RUnlock()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(warmConcurrency)
	for _, post := range posts {
		g.Go(func() error {
			if _, err := s.Content(ctx, post); err != nil {
				s.logger.Warn("content warmup failed",
					"slug", post.Slug, "error", err)
			}
			return nil
		})
	}
	_ = g.Wait()
}

// ValidationResult reports the outcome for one manifest entry.
type ValidationResult struct {
	Title    string      `json:"title"`
	Slug     models.Slug `json:"slug,omitempty"`
	Accepted bool        `json:"accepted"`
	Reason   string      `json:"reason,omitempty"`
}

// ValidationReport summarizes a dry-run validation of a manifest.
type ValidationReport struct {
	Accepted int                `json:"accepted"`
	Rejected int                `json:"rejected"`
	Results  []ValidationResult `json:"results"`
}

// ValidateManifest runs every entry through the same validation Reload uses,
// without touching the catalog, and additionally flags slug collisions,
// which Reload tolerates but make a post unreachable. Authors call this
// before publishing.
func (s *Service) ValidateManifest(entries []models.ManifestEntry) ValidationReport {
	report := ValidationReport{Results: make([]ValidationResult, 0, len(entries))}
	seen := make(map[models.Slug]bool, len(entries))
	for _, entry := range entries {
		post, err := models.ParsePost(entry)
		if err != nil {
			report.Rejected++
			report.Results = append(report.Results, ValidationResult{
				Title:  entry.Title,
				Reason: err.Error(),
			})
			continue
		}
		if seen[post.Slug] {
			report.Rejected++
			report.Results = append(report.Results, ValidationResult{
				Title:  entry.Title,
				Slug:   post.Slug,
				Reason: fmt.Sprintf("slug %q collides with an earlier entry", post.Slug),
			})
			continue
		}
		seen[post.Slug] = true
		report.Accepted++
		report.Results = append(report.Results, ValidationResult{
			Title:    post.Title.Value(),
			Slug:     post.Slug,
			Accepted: true,
		})
	}
	return report
}
