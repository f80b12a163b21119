// Copyright 2025 - 2026, the Ofra CV Site contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"fmt"
	"maps"
	"net/http"
	"strings"

	config "github.com/Ehudaviv/Ofra-CV-Site/configs"
)

var (
	// baseHeaders defines the default headers to be set in responses.
	//
	// NOTE: we intentionally don't set CORP or HSTS headers.
	baseHeaders = http.Header{
		"Referrer-Policy":        {"no-referrer"},
		"X-Frame-Options":        {"DENY"},
		"X-Content-Type-Options": {"nosniff"},
		"Permissions-Policy":     {strings.Join(defaultPermissionsPolicy, ", ")},
	}

	// csp defines the Content-Security-Policy for all pages.
	//
	// All images, scripts and styles are served from this origin; the inline
	// allowance covers the small lazy-loading bootstrap in the layout.
	csp = strings.Join([]string{
		"base-uri 'self'",
		"default-src 'self'",
		"style-src 'self' 'unsafe-inline'",
		"font-src 'self'",
		"img-src 'self' data:",
		"script-src 'self'",
		"connect-src 'self'",
		"form-action 'self'",
		"frame-ancestors 'none'",
	}, "; ") + ";"

	// defaultPermissionsPolicy defines the default Permissions-Policy header.
	defaultPermissionsPolicy = []string{
		"accelerometer=()",
		"camera=()",
		"geolocation=()",
		"gyroscope=()",
		"magnetometer=()",
		"microphone=()",
		"midi=()",
		"payment=()",
		"usb=()",
	}
)

// SetResponseHeaders adds default headers to HTTP responses.
func SetResponseHeaders(w http.ResponseWriter, r *http.Request, next http.Handler) {
	headers := w.Header()

	maps.Insert(headers, maps.All(baseHeaders))

	if config.Global.Development.InDevelopment {
		invalidateCacheInDevelopment(headers)
	}

	setCacheControl(headers, r.URL.Path)

	headers.Set("Ofra-Version", config.BuildVersion)
	headers.Set("Ofra-Revision", config.Global.Build.Revision())
	headers.Set("Content-Security-Policy", csp)

	next.ServeHTTP(w, r)
}

// for `invalidateCache`
var firstDevResponse = true

// clear cache in development
func invalidateCacheInDevelopment(headers http.Header) {
	if firstDevResponse {
		firstDevResponse = false

		headers.Set("Clear-Site-Data", "cache")
	}
}

// setCacheControl sets appropriate cache control headers per path.
func setCacheControl(headers http.Header, path string) {
	// Pages default to a short shared cache with stale-while-revalidate.
	cacheDuration := fmt.Sprintf("max-age=%d, stale-while-revalidate=%d",
		int(config.Global.HTTPCache.MaxAge.Seconds()),
		int(config.Global.HTTPCache.StaleWhileRevalidate.Seconds()))

	// Longer caching for fonts (1 month)
	if strings.HasPrefix(path, "/fonts/") {
		cacheDuration = "max-age=2592000"
	}

	// JavaScript and CSS get a moderate cache time (1 week)
	if strings.HasPrefix(path, "/js/") || strings.HasPrefix(path, "/css/") {
		cacheDuration = "max-age=604800"
	}

	// Images can be cached for 2 weeks
	if strings.HasPrefix(path, "/img/") {
		cacheDuration = "max-age=1209600"
	}

	// Text files (robots.txt) and JSON files (manifest.json) get moderate caching (1 day)
	if strings.HasSuffix(path, ".txt") || strings.HasSuffix(path, ".json") {
		cacheDuration = "max-age=86400"
	}

	headers.Set("Cache-Control", cacheDuration)
}
