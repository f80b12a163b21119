// Copyright 2025 - 2026, the Ofra CV Site contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import "time"

const (
	// Default HTTP cache max age in seconds.
	defaultHTTPCacheMaxAgeSeconds = 30
	// Default HTTP cache stale while revalidate in seconds.
	defaultHTTPCacheStaleWhileRevalidateSeconds = 60

	// Default thumbnail width in pixels.
	defaultThumbnailWidth = 480
	// Default number of cached thumbnail entries.
	defaultThumbnailCacheEntries = 200

	// Default thumbnail rate limit.
	defaultLimiterRequestsPerSecond = 20
	defaultLimiterBurst             = 40
)

// SetDefaults populates the configuration with default values.
func (cfg *ServerConfig) SetDefaults() {
	cfg.Site.DefaultLanguage = "he"
	cfg.Site.ImageDir = "./data/images"
	cfg.Site.DocumentDir = "./data/docs"
	cfg.Site.PrefsFile = "./data/prefs.json"

	cfg.Thumbnail.Width = defaultThumbnailWidth
	cfg.Thumbnail.CacheEntries = defaultThumbnailCacheEntries
	cfg.Thumbnail.Prewarm = true

	cfg.HTTPCache.MaxAge = defaultHTTPCacheMaxAgeSeconds * time.Second
	cfg.HTTPCache.StaleWhileRevalidate = defaultHTTPCacheStaleWhileRevalidateSeconds * time.Second

	cfg.Limiter.Enabled = false
	cfg.Limiter.RequestsPerSecond = defaultLimiterRequestsPerSecond
	cfg.Limiter.Burst = defaultLimiterBurst

	cfg.Instance.RepoURL = "https://github.com/Ehudaviv/Ofra-CV-Site"

	cfg.Log.Level = "info"
	cfg.Log.Outputs = []string{"/dev/stderr"}
	cfg.Log.Format = "console"
}
