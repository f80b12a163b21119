// Copyright 2025 - 2026, the Ofra CV Site contributors
// SPDX-License-Identifier: AGPL-3.0-only

package set_request_context

import (
	"net/http"

	"github.com/Ehudaviv/Ofra-CV-Site/i18n"
	"github.com/Ehudaviv/Ofra-CV-Site/server/request_context"
)

// Service is the translation service whose active language seeds the
// per-request fallback. Set once from main before the server starts.
var Service *i18n.Service

// WithRequestContext is a middleware that attaches a RequestContext to each HTTP request.
func WithRequestContext(w http.ResponseWriter, r *http.Request, next http.Handler) {
	fallback := i18n.DefaultLanguage
	if Service != nil {
		fallback = Service.Language()
	}

	next.ServeHTTP(w, r.WithContext(request_context.WithRequestContext(r.Context(), r, fallback)))
}
