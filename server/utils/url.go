// Copyright 2025 - 2026, the Ofra CV Site contributors
// SPDX-License-Identifier: AGPL-3.0-only

package utils

import (
	"net/http"
	"strings"
)

// GetQueryParam retrieves the value of a query parameter by name.
//
// If the parameter is not present, it returns the provided default value or an empty string.
func GetQueryParam(r *http.Request, name string, defaultValue ...string) string {
	v := r.URL.Query().Get(name)
	if v != "" {
		return v
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}

	return ""
}

// GetFormValue retrieves the value of a form parameter by name.
//
// It calls r.ParseForm() and then reads r.FormValue(name).
// If the parameter is not present, it returns the provided default value or an empty string.
func GetFormValue(r *http.Request, name string, defaultValue ...string) string {
	if err := r.ParseForm(); err == nil {
		if v := r.FormValue(name); v != "" {
			return v
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}

	return ""
}

// GetPathVar retrieves the value of a path variable by name.
//
// If the variable is not present, it returns the provided default value or an empty string.
func GetPathVar(r *http.Request, name string, defaultValue ...string) string {
	v := r.PathValue(name)
	if v != "" {
		return v
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}

	return ""
}

// GetOriginFromRequest returns the origin (scheme + host) from an HTTP request.
//
// The scheme is determined by first checking the X-Forwarded-Proto header,
// then the TLS connection status, defaulting to "http" if neither is set.
// The result is returned in the format "scheme://host".
func GetOriginFromRequest(r *http.Request) string {
	scheme := "http"

	// Check X-Forwarded-Proto header first
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	} else if r.TLS != nil {
		scheme = "https"
	}

	return scheme + "://" + r.Host
}

// SanitizeReturnPath ensures that string s is a same-origin relative path (no scheme/host).
// Returns "" if the value is unsafe; callers should fallback to "/".
func SanitizeReturnPath(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	// Disallow absolute URLs and scheme-relative URLs to prevent open redirects.
	if strings.Contains(s, "://") || strings.HasPrefix(s, "//") {
		return ""
	}

	// Must be absolute-path reference on this origin.
	if !strings.HasPrefix(s, "/") {
		return ""
	}

	return s
}
