package config

import (
	"os"
	"time"
)

// Server captures process-level configuration.
type Server struct {
	Addr string
	// RemoteContentURL is the base URL of the remote markdown repository.
	// Empty means local-only serving.
	RemoteContentURL string
	// ContentDir is the local content directory holding manifest.json and
	// markdown files. Used directly in local mode and as the fallback when
	// the remote source fails.
	ContentDir string
	// RedisURL enables the Redis content cache when set; empty falls back to
	// the in-process cache.
	RedisURL string
	// ContentCacheTTL bounds how stale served content may be after an edit
	// upstream.
	ContentCacheTTL time.Duration
	// WatchContent enables the filesystem watcher over ContentDir.
	WatchContent bool
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("INKWELL_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	contentDir := os.Getenv("CONTENT_DIR")
	if contentDir == "" {
		contentDir = "raw"
	}

	ttl := 5 * time.Minute
	if raw := os.Getenv("CONTENT_CACHE_TTL"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil && parsed > 0 {
			ttl = parsed
		}
	}

	return Server{
		Addr:             addr,
		RemoteContentURL: os.Getenv("REMOTE_MARKDOWN_PATH"),
		ContentDir:       contentDir,
		RedisURL:         os.Getenv("REDIS_URL"),
		ContentCacheTTL:  ttl,
		WatchContent:     os.Getenv("WATCH_CONTENT") == "true",
	}
}
