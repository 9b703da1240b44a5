package source

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"inkwell/internal/blog/models"
	dErrors "inkwell/pkg/domain-errors"
	"inkwell/pkg/platform/sentinel"
	strutil "inkwell/pkg/platform/strings"
)

// Local reads content from a directory holding manifest.json and markdown
// files. It backs local development and the fallback path when the remote
// source is unreachable.
type Local struct {
	dir string
}

// NewLocal creates a local source over the given directory.
func NewLocal(dir string) *Local {
	return &Local{dir: dir}
}

// Manifest reads and decodes manifest.json.
func (l *Local) Manifest(_ context.Context) ([]models.ManifestEntry, error) {
	raw, err := os.ReadFile(filepath.Join(l.dir, ManifestFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, dErrors.Wrap(dErrors.CodeNotFound, "local manifest", sentinel.ErrNotFound)
		}
		return nil, dErrors.Wrap(dErrors.CodeUnavailable, "read local manifest", err)
	}
	var entries []models.ManifestEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, dErrors.Wrap(dErrors.CodeUnavailable, "decode local manifest", err)
	}
	return entries, nil
}

// Content reads the markdown file at the manifest path. The path is resolved
// strictly inside the content directory.
func (l *Local) Content(_ context.Context, path string) (string, error) {
	clean := filepath.Clean(path)
	if clean == ".." || filepath.IsAbs(clean) || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "path %q escapes content directory", path)
	}
	raw, err := os.ReadFile(filepath.Join(l.dir, clean))
	if err != nil {
		if os.IsNotExist(err) {
			return "", dErrors.Wrap(dErrors.CodeNotFound, "local markdown", sentinel.ErrNotFound)
		}
		return "", dErrors.Wrap(dErrors.CodeUnavailable, "read local markdown", err)
	}
	return string(raw), nil
}

// Orphans reports markdown files on disk that no manifest entry references,
// sorted by path. Useful as a manifest lint: a post written but never listed
// is unreachable.
func (l *Local) Orphans(ctx context.Context) ([]string, error) {
	entries, err := l.Manifest(ctx)
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		paths = append(paths, filepath.ToSlash(filepath.Clean(e.Markdown)))
	}
	listed := make(map[string]bool, len(paths))
	for _, p := range strutil.DedupeAndTrim(paths) {
		listed[p] = true
	}

	found, err := doublestar.Glob(os.DirFS(l.dir), "**/*.md")
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeUnavailable, "scan content directory", err)
	}

	var orphans []string
	for _, path := range found {
		if !listed[path] {
			orphans = append(orphans, path)
		}
	}
	sort.Strings(orphans)
	return orphans, nil
}
