package models

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	dErrors "inkwell/pkg/domain-errors"
)

// Slug identifies a post in a URL path. A valid slug is lowercase ASCII
// letters in dash-separated runs, derived from a title by Slugify.
type Slug string

var (
	nonLetters = regexp.MustCompile(`[^a-zA-Z]+`)
	slugShape  = regexp.MustCompile(`^[a-z]+(-[a-z]+)*$`)

	// foldMarks decomposes accented letters and strips the combining marks,
	// so "café" slugs the same as "cafe".
	foldMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Slugify derives a slug from a post title: diacritics folded to ASCII,
// every run of non-letters collapsed to a single dash, edges trimmed,
// lowercased. "but, we shall see!" becomes "but-we-shall-see".
func Slugify(title string) Slug {
	folded, _, err := transform.String(foldMarks, strings.TrimSpace(title))
	if err != nil {
		// Transform only fails on malformed input; fall back to the raw
		// title, which the letter filter below still sanitizes.
		folded = strings.TrimSpace(title)
	}
	dashed := nonLetters.ReplaceAllString(folded, "-")
	return Slug(strings.ToLower(strings.Trim(dashed, "-")))
}

// ParseSlug validates an externally supplied slug, typically a URL path
// segment. Rejection is ordinary: an unknown or malformed slug makes the
// reader land on the newest post instead of an error page.
func ParseSlug(s string) (Slug, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "slug cannot be empty")
	}
	if !slugShape.MatchString(s) {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "malformed slug %q", s)
	}
	return Slug(s), nil
}

// String returns the string representation.
func (s Slug) String() string {
	return string(s)
}
