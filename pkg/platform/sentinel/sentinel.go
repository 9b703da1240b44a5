// Package sentinel holds shared sentinel errors for infrastructure facts.
// Sources and caches return these (optionally wrapped) so callers can branch
// on the fact without depending on the backing implementation.
//
// These represent factual states about resources, not validation failures:
//   - ErrNotFound: the content or cache entry does not exist
//   - ErrUnavailable: a backing source is temporarily unreachable
//
// For validation failures (bad input, constraint violations) use
// pkg/domain-errors instead.
package sentinel

import "errors"

var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("unavailable")
)
