// Package models holds the blog content domain: manifest entries as they
// arrive from a source, and posts as validated domain values. Raw entries
// cross the trust boundary through ParsePost only.
package models

// ManifestEntry is one record of a source's manifest.json, unvalidated.
type ManifestEntry struct {
	Title    string `json:"title"`
	Markdown string `json:"markdown"`
	Hidden   bool   `json:"hidden"`
}
