// Copyright 2025 - 2026, the Ofra CV Site contributors
// SPDX-License-Identifier: AGPL-3.0-only

package commondata

import (
	"net/http"

	"github.com/Ehudaviv/Ofra-CV-Site/core/cookie"
	"github.com/Ehudaviv/Ofra-CV-Site/core/untrusted"
	"github.com/Ehudaviv/Ofra-CV-Site/server/utils"
)

// PageCommonData holds common variables accessible in templates and handlers.
//
// It is automatically populated for each request and attached to the
// requestcontext.RequestContext.
//
// Usage:
//
//	// In an HTTP handler:
//	rc := requestcontext.FromRequest(r)
//	cd := rc.CommonData
//	// Now you can access fields like cd.BaseURL, cd.CurrentPath, etc.
type PageCommonData struct {
	// BaseURL is the origin URL (scheme + host) of the current request.
	BaseURL string

	// CurrentPath is the URL path from request (e.g., "/articles/threads").
	CurrentPath string

	// CurrentPathWithParams is the full request URI including query parameters.
	CurrentPathWithParams string

	// Queries is the URL query parameters (first value only for each key).
	Queries map[string]string

	// CookieList is all site cookies as key-value map.
	CookieList map[cookie.CookieName]string

	// CookieListOrdered is the same cookies in defined order for consistent display.
	CookieListOrdered []struct {
		K cookie.CookieName
		V string
	}

	// CaptionsVisible mirrors the CaptionsVisible cookie; captions default to shown.
	CaptionsVisible bool
}

// PopulatePageCommonData fills the PageCommonData struct from the request.
func PopulatePageCommonData(r *http.Request, data *PageCommonData) {
	data.BaseURL = utils.GetOriginFromRequest(r)
	data.CurrentPath = r.URL.Path
	data.CurrentPathWithParams = r.URL.RequestURI()

	data.Queries = make(map[string]string)

	for k, v := range r.URL.Query() {
		if len(v) > 0 {
			data.Queries[k] = v[0]
		}
	}

	data.CookieList = make(map[cookie.CookieName]string, len(cookie.AllCookieNames))
	data.CookieListOrdered = make([]struct {
		K cookie.CookieName
		V string
	}, 0, len(cookie.AllCookieNames))

	for _, name := range cookie.AllCookieNames {
		val := untrusted.GetCookie(r, name)

		data.CookieList[name] = val
		data.CookieListOrdered = append(data.CookieListOrdered, struct {
			K cookie.CookieName
			V string
		}{K: name, V: val})
	}

	data.CaptionsVisible = untrusted.GetCookie(r, cookie.CaptionsVisibleCookie) != "false"
}
