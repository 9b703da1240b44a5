// Package source loads blog content from a backing store: a local content
// directory or a remote markdown repository. Sources return raw manifest
// entries and raw markdown; validation happens in the service layer.
package source

import (
	"context"

	"inkwell/internal/blog/models"
)

// ManifestFile is the well-known manifest name inside every source.
const ManifestFile = "manifest.json"

// Source is a read-only view over a content store.
type Source interface {
	// Manifest returns the raw manifest entries in declaration order.
	Manifest(ctx context.Context) ([]models.ManifestEntry, error)
	// Content returns the markdown body at the given manifest path.
	Content(ctx context.Context, path string) (string, error)
}
