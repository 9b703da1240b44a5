package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "inkwell/pkg/domain-errors"
	"inkwell/pkg/platform/sentinel"
)

func newFakeGitHub(t *testing.T, docs map[string]string) *GitHub {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := docs[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return NewGitHub(srv.URL)
}

func TestGitHub_Manifest(t *testing.T) {
	ctx := context.Background()

	t.Run("fetches and decodes manifest", func(t *testing.T) {
		g := newFakeGitHub(t, map[string]string{
			"/manifest.json": `[{"title": "Remote post", "markdown": "remote.md"}]`,
		})

		entries, err := g.Manifest(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "Remote post", entries[0].Title)
	})

	t.Run("missing manifest is not found", func(t *testing.T) {
		g := newFakeGitHub(t, nil)
		_, err := g.Manifest(ctx)
		require.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("undecodable manifest is unavailable", func(t *testing.T) {
		g := newFakeGitHub(t, map[string]string{"/manifest.json": `<html>rate limited</html>`})
		_, err := g.Manifest(ctx)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnavailable))
	})
}

func TestGitHub_Content(t *testing.T) {
	ctx := context.Background()

	t.Run("fetches markdown body", func(t *testing.T) {
		g := newFakeGitHub(t, map[string]string{"/remote.md": "# Remote"})
		body, err := g.Content(ctx, "remote.md")
		require.NoError(t, err)
		assert.Equal(t, "# Remote", body)
	})

	t.Run("unreachable host is unavailable", func(t *testing.T) {
		g := NewGitHub("http://127.0.0.1:1")
		_, err := g.Content(ctx, "remote.md")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnavailable))
	})

	t.Run("server error is unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		t.Cleanup(srv.Close)

		_, err := NewGitHub(srv.URL).Content(ctx, "remote.md")
		require.ErrorIs(t, err, sentinel.ErrUnavailable)
	})
}
