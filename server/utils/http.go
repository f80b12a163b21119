// Copyright 2025 - 2026, the Ofra CV Site contributors
// SPDX-License-Identifier: AGPL-3.0-only

package utils

import (
	"net"
	"net/http"
	"strings"
)

// IsConnectionSecure returns whether a connection is secure.
//
// Target environments are (containerized and bare metal):
//   - Internet -> reverse proxy (e.g. cloudflare) -> reverse proxy -> application
//   - Internet -> reverse proxy -> application
//   - LAN -> reverse proxy -> application
//   - LAN -> application
//   - localhost -> application
//
// This function will incorrectly return false if the last reverse proxy
// in the chain has a public IP address, but this is expected to be a small minority
// of deployments.
func IsConnectionSecure(r *http.Request) bool {
	// Always secure if directly using TLS
	if r.TLS != nil {
		return true
	}

	// Parse IP from RemoteAddr
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return false // Can't determine if it's secure
	}

	parsedIP := net.ParseIP(host)
	if parsedIP == nil {
		return false // Invalid IP
	}

	// Only trust X-Forwarded-Proto from private IPs
	if parsedIP.IsPrivate() && r.Header.Get("X-Forwarded-Proto") == "https" {
		return true
	}

	return false
}

// RedirectToWhenceYouCame redirects the user back to the referring page if it's from the same origin.
//
// This helps prevent open redirects by checking the referrer against the current origin.
// If the referrer is not from the same origin, it responds with a 200 OK status.
//
// returnPath  Return to this URL. If empty, return to the referrer.
func RedirectToWhenceYouCame(w http.ResponseWriter, r *http.Request, returnPath string) {
	if returnPath == "" {
		referrer := r.Referer()
		if strings.HasPrefix(referrer, GetOriginFromRequest(r)) {
			returnPath = referrer
		}
	}

	if returnPath == "" {
		w.WriteHeader(http.StatusOK)
	} else {
		http.Redirect(w, r, returnPath, http.StatusSeeOther)
	}
}
