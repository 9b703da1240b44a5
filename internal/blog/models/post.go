package models

import (
	dErrors "inkwell/pkg/domain-errors"
	"inkwell/pkg/refine"
)

// Post is a validated manifest entry. Invariant: Title and Path are
// non-empty and Slug derives from Title; instances come from ParsePost only,
// so holding a Post proves its entry passed validation.
type Post struct {
	Title  refine.NonEmpty
	Slug   Slug
	Path   refine.NonEmpty
	Hidden bool
}

// ParsePost validates a manifest entry at the trust boundary. An entry with
// an empty title or markdown path is rejected with CodeInvalidInput; a title
// containing no letters at all is rejected because it would slug to nothing.
func ParsePost(entry ManifestEntry) (Post, error) {
	title, err := refine.MakeNonEmpty(entry.Title)
	if err != nil {
		return Post{}, dErrors.Wrap(dErrors.CodeInvalidInput, "manifest entry title", err)
	}
	path, err := refine.MakeNonEmpty(entry.Markdown)
	if err != nil {
		return Post{}, dErrors.Wrap(dErrors.CodeInvalidInput, "manifest entry markdown path", err)
	}
	slug := Slugify(entry.Title)
	if slug == "" {
		return Post{}, dErrors.Newf(dErrors.CodeInvalidInput,
			"title %q yields an empty slug", entry.Title)
	}
	return Post{
		Title:  title,
		Slug:   slug,
		Path:   path,
		Hidden: entry.Hidden,
	}, nil
}

// SeeAlsoLink points a reader at another visible post.
type SeeAlsoLink struct {
	Title string `json:"title"`
	Slug  Slug   `json:"slug"`
}
