// Copyright 2025 - 2026, the Ofra CV Site contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"net/http"

	"golang.org/x/time/rate"

	config "github.com/Ehudaviv/Ofra-CV-Site/configs"
)

var thumbLimiter *rate.Limiter

// InitRateLimit creates the shared token bucket for thumbnail rendering.
func InitRateLimit() {
	thumbLimiter = rate.NewLimiter(
		rate.Limit(config.Global.Limiter.RequestsPerSecond),
		config.Global.Limiter.Burst,
	)
}

// RateLimitThumbnails applies the token bucket to thumbnail requests only.
// Thumbnails are the one endpoint that does real CPU work per request.
func RateLimitThumbnails(w http.ResponseWriter, r *http.Request, next http.Handler) {
	if thumbLimiter != nil && isThumbnailPath(r.URL.Path) && !thumbLimiter.Allow() {
		http.Error(w, "Too Many Requests", http.StatusTooManyRequests)

		return
	}

	next.ServeHTTP(w, r)
}

func isThumbnailPath(path string) bool {
	const thumbPrefix = "/img/thumb/"

	return len(path) >= len(thumbPrefix) && path[:len(thumbPrefix)] == thumbPrefix
}
