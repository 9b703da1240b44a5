package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell/internal/blog/models"
	dErrors "inkwell/pkg/domain-errors"
	"inkwell/pkg/platform/sentinel"
)

type fakeSource struct {
	mu            sync.Mutex
	manifest      []models.ManifestEntry
	manifestErr   error
	content       map[string]string
	contentErr    error
	manifestCalls int
	contentCalls  int
}

func (f *fakeSource) Manifest(context.Context) ([]models.ManifestEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.manifestCalls++
	if f.manifestErr != nil {
		return nil, f.manifestErr
	}
	return f.manifest, nil
}

func (f *fakeSource) Content(_ context.Context, path string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.contentCalls++
	if f.contentErr != nil {
		return "", f.contentErr
	}
	body, ok := f.content[path]
	if !ok {
		return "", dErrors.Wrap(dErrors.CodeNotFound, "missing "+path, sentinel.ErrNotFound)
	}
	return body, nil
}

func (f *fakeSource) calls() (manifest, content int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.manifestCalls, f.contentCalls
}

var errRemoteDown = dErrors.Wrap(dErrors.CodeUnavailable, "remote down", sentinel.ErrUnavailable)

func entry(title, markdown string) models.ManifestEntry {
	return models.ManifestEntry{Title: title, Markdown: markdown}
}

func mustReload(t *testing.T, s *Service) {
	t.Helper()
	require.NoError(t, s.Reload(context.Background()))
}

func TestService_Reload(t *testing.T) {
	ctx := context.Background()

	t.Run("prefers the remote manifest and reverses order", func(t *testing.T) {
		remote := &fakeSource{manifest: []models.ManifestEntry{
			entry("Oldest", "oldest.md"),
			entry("Newest", "newest.md"),
		}}
		local := &fakeSource{manifest: []models.ManifestEntry{entry("Stale", "stale.md")}}
		s := New(local, WithRemote(remote))

		mustReload(t, s)

		posts := s.Posts(ctx)
		require.Len(t, posts, 2)
		assert.Equal(t, "Newest", posts[0].Title.Value())
		assert.Equal(t, "Oldest", posts[1].Title.Value())
		manifestCalls, _ := local.calls()
		assert.Zero(t, manifestCalls)
	})

	t.Run("falls back to the local manifest", func(t *testing.T) {
		remote := &fakeSource{manifestErr: errRemoteDown}
		local := &fakeSource{manifest: []models.ManifestEntry{entry("Local", "local.md")}}
		s := New(local, WithRemote(remote))

		mustReload(t, s)

		posts := s.Posts(ctx)
		require.Len(t, posts, 1)
		assert.Equal(t, "Local", posts[0].Title.Value())
	})

	t.Run("skips invalid entries without failing the reload", func(t *testing.T) {
		local := &fakeSource{manifest: []models.ManifestEntry{
			entry("Good", "good.md"),
			entry("", "no-title.md"),
			entry("No markdown", ""),
			entry("1234", "letterless-title.md"),
		}}
		s := New(local)

		mustReload(t, s)

		posts := s.Posts(ctx)
		require.Len(t, posts, 1)
		assert.Equal(t, "Good", posts[0].Title.Value())
	})

	t.Run("fails when no manifest is reachable", func(t *testing.T) {
		remote := &fakeSource{manifestErr: errRemoteDown}
		local := &fakeSource{manifestErr: sentinel.ErrNotFound}
		s := New(local, WithRemote(remote))

		err := s.Reload(ctx)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnavailable))
	})
}

func TestService_FindBySlug(t *testing.T) {
	ctx := context.Background()
	local := &fakeSource{manifest: []models.ManifestEntry{
		entry("First post", "first.md"),
		{Title: "Secret notes", Markdown: "secret.md", Hidden: true},
		entry("Second post", "second.md"),
	}}
	s := New(local)
	mustReload(t, s)

	t.Run("finds a post by its slug", func(t *testing.T) {
		post, err := s.FindBySlug(ctx, "first-post")
		require.NoError(t, err)
		assert.Equal(t, "First post", post.Title.Value())
	})

	t.Run("hidden posts are reachable by direct slug", func(t *testing.T) {
		post, err := s.FindBySlug(ctx, "secret-notes")
		require.NoError(t, err)
		assert.True(t, post.Hidden)
	})

	t.Run("hidden posts are not listed", func(t *testing.T) {
		for _, post := range s.Posts(ctx) {
			assert.False(t, post.Hidden)
		}
	})

	t.Run("unknown slug lands on the newest visible post", func(t *testing.T) {
		post, err := s.FindBySlug(ctx, "no-such-post")
		require.NoError(t, err)
		assert.Equal(t, "Second post", post.Title.Value())
	})

	t.Run("empty catalog is not found", func(t *testing.T) {
		empty := New(&fakeSource{})
		mustReload(t, empty)

		_, err := empty.FindBySlug(ctx, "anything")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func TestService_SeeAlso(t *testing.T) {
	ctx := context.Background()
	local := &fakeSource{manifest: []models.ManifestEntry{
		entry("First post", "first.md"),
		{Title: "Secret notes", Markdown: "secret.md", Hidden: true},
		entry("Second post", "second.md"),
	}}
	s := New(local)
	mustReload(t, s)

	links := s.SeeAlso(ctx, "second-post")
	require.Len(t, links, 1)
	assert.Equal(t, "First post", links[0].Title)
	assert.Equal(t, models.Slug("first-post"), links[0].Slug)
}

func TestService_Content(t *testing.T) {
	ctx := context.Background()

	newCatalog := func(t *testing.T, local *fakeSource, opts ...Option) (*Service, models.Post) {
		t.Helper()
		s := New(local, opts...)
		mustReload(t, s)
		post, err := s.FindBySlug(ctx, "first-post")
		require.NoError(t, err)
		return s, post
	}

	t.Run("serves repeated reads from cache", func(t *testing.T) {
		local := &fakeSource{
			manifest: []models.ManifestEntry{entry("First post", "first.md")},
			content:  map[string]string{"first.md": "# Hello"},
		}
		s, post := newCatalog(t, local)

		for range 3 {
			body, err := s.Content(ctx, post)
			require.NoError(t, err)
			assert.Equal(t, "# Hello", body)
		}
		_, contentCalls := local.calls()
		assert.Equal(t, 1, contentCalls)
	})

	t.Run("falls back to local content when the remote fails", func(t *testing.T) {
		remote := &fakeSource{
			manifest:   []models.ManifestEntry{entry("First post", "first.md")},
			contentErr: errRemoteDown,
		}
		local := &fakeSource{content: map[string]string{"first.md": "# Local"}}
		s, post := newCatalog(t, local, WithRemote(remote))

		body, err := s.Content(ctx, post)
		require.NoError(t, err)
		assert.Equal(t, "# Local", body)
	})

	t.Run("repeated remote failures open the breaker", func(t *testing.T) {
		remote := &fakeSource{
			manifest:   []models.ManifestEntry{entry("First post", "first.md")},
			contentErr: errRemoteDown,
		}
		local := &fakeSource{content: map[string]string{"first.md": "# Local"}}
		s, post := newCatalog(t, local, WithRemote(remote))

		// Drive the breaker past its failure threshold, dodging the cache
		// with an invalidation between reads.
		for range 6 {
			_, err := s.Content(ctx, post)
			require.NoError(t, err)
			require.NoError(t, s.cache.Invalidate(ctx))
		}
		_, callsWhenOpened := remote.calls()

		_, err := s.Content(ctx, post)
		require.NoError(t, err)
		_, callsAfter := remote.calls()
		assert.Equal(t, callsWhenOpened, callsAfter, "open breaker should skip the remote")
	})

	t.Run("missing everywhere is not found", func(t *testing.T) {
		local := &fakeSource{manifest: []models.ManifestEntry{entry("First post", "first.md")}}
		s, post := newCatalog(t, local)

		_, err := s.Content(ctx, post)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func TestService_Warm(t *testing.T) {
	ctx := context.Background()
	local := &fakeSource{
		manifest: []models.ManifestEntry{
			entry("First post", "first.md"),
			entry("Second post", "second.md"),
		},
		content: map[string]string{
			"first.md":  "# First",
			"second.md": "# Second",
		},
	}
	s := New(local)
	mustReload(t, s)

	s.Warm(ctx)
	_, callsAfterWarm := local.calls()
	assert.Equal(t, 2, callsAfterWarm)

	for _, slug := range []models.Slug{"first-post", "second-post"} {
		post, err := s.FindBySlug(ctx, slug)
		require.NoError(t, err)
		_, err = s.Content(ctx, post)
		require.NoError(t, err)
	}
	_, callsAfterReads := local.calls()
	assert.Equal(t, 2, callsAfterReads, "warmed reads should hit the cache")
}

func TestService_ValidateManifest(t *testing.T) {
	s := New(&fakeSource{})

	report := s.ValidateManifest([]models.ManifestEntry{
		entry("Good post", "good.md"),
		entry("", "no-title.md"),
		entry("Good, post!", "colliding-slug.md"),
	})

	assert.Equal(t, 1, report.Accepted)
	assert.Equal(t, 2, report.Rejected)
	require.Len(t, report.Results, 3)
	assert.True(t, report.Results[0].Accepted)
	assert.Equal(t, models.Slug("good-post"), report.Results[0].Slug)
	assert.False(t, report.Results[1].Accepted)
	assert.NotEmpty(t, report.Results[1].Reason)
	assert.False(t, report.Results[2].Accepted)
	assert.Contains(t, report.Results[2].Reason, "collides")
}
