// Copyright 2025 - 2026, the Ofra CV Site contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
This package defines the cookie names used by this application.
*/
package cookie

type CookieName string

// Cookie names defined as constants.
const (
	// LangCookie stores the visitor's preferred UI language ("he" or "en").
	LangCookie CookieName = "Lang"

	// CaptionsVisibleCookie stores whether lightbox captions are shown.
	CaptionsVisibleCookie CookieName = "CaptionsVisible"
)

// AllCookieNames defines all cookies that can be set by the user.
var AllCookieNames = []CookieName{
	LangCookie,
	CaptionsVisibleCookie,
}

// IsHttpOnly reports whether a cookie must be hidden from client scripts.
// Both preference cookies are read by the progressive-enhancement scripts.
func IsHttpOnly(CookieName) bool {
	return false
}
