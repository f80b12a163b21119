// Copyright 2025 - 2026, the Ofra CV Site contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"net/http"
	"strings"
)

// NormalizeURL is a middleware that removes trailing slashes from URLs
// (except root) so each page has a single canonical path.
func NormalizeURL(w http.ResponseWriter, r *http.Request, next http.Handler) {
	if hasTrailingSlash(r) {
		removeTrailingSlash(w, r)

		return
	}

	next.ServeHTTP(w, r)
}

// hasTrailingSlash checks if a request path has a trailing slash (except root).
//
// File server prefixes keep their trailing slash; ServeMux needs it for
// prefix matching.
func hasTrailingSlash(r *http.Request) bool {
	path := r.URL.Path

	if path == "/" || strings.HasPrefix(path, "/img/") || strings.HasPrefix(path, "/docs/") {
		return false
	}

	return strings.HasSuffix(path, "/")
}

// removeTrailingSlash removes trailing slash and redirects.
func removeTrailingSlash(w http.ResponseWriter, r *http.Request) {
	url := r.URL

	if len(url.Path) > 1 {
		url.Path = strings.TrimSuffix(url.Path, "/")
	}

	http.Redirect(w, r, url.String(), http.StatusPermanentRedirect)
}
