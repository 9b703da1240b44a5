package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"inkwell/internal/blog/models"
	dErrors "inkwell/pkg/domain-errors"
	"inkwell/pkg/platform/sentinel"
)

// maxContentBytes caps a single fetched document; posts are text, anything
// larger is a misconfigured URL.
const maxContentBytes = 4 << 20

// GitHub reads content over HTTP from a raw-file base URL, typically a
// raw.githubusercontent.com tree holding manifest.json and the markdown
// files next to it.
type GitHub struct {
	baseURL string
	client  *http.Client
}

// NewGitHub creates a remote source for the given base URL.
func NewGitHub(baseURL string) *GitHub {
	return &GitHub{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Manifest fetches and decodes <base>/manifest.json.
func (g *GitHub) Manifest(ctx context.Context) ([]models.ManifestEntry, error) {
	raw, err := g.fetch(ctx, ManifestFile)
	if err != nil {
		return nil, err
	}
	var entries []models.ManifestEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, dErrors.Wrap(dErrors.CodeUnavailable, "decode remote manifest", err)
	}
	return entries, nil
}

// Content fetches the markdown body at <base>/<path>.
func (g *GitHub) Content(ctx context.Context, path string) (string, error) {
	raw, err := g.fetch(ctx, path)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func (g *GitHub) fetch(ctx context.Context, path string) ([]byte, error) {
	url := fmt.Sprintf("%s/%s", g.baseURL, path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeUnavailable, "build remote request", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeUnavailable, fmt.Sprintf("fetch %s", url), err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, dErrors.Wrap(dErrors.CodeNotFound,
			fmt.Sprintf("remote document %s", path), sentinel.ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		return nil, dErrors.Wrap(dErrors.CodeUnavailable,
			fmt.Sprintf("remote returned %d for %s", resp.StatusCode, url), sentinel.ErrUnavailable)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxContentBytes))
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeUnavailable, "read remote body", err)
	}
	return raw, nil
}
