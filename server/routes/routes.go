// Copyright 2025 - 2026, the Ofra CV Site contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package routes contains the HTTP handlers for every page of the site.

Handlers return an error instead of writing error responses themselves;
middleware.CatchError turns returned errors into the themed error page.
*/
package routes

import (
	"github.com/Ehudaviv/Ofra-CV-Site/core/content"
	"github.com/Ehudaviv/Ofra-CV-Site/core/thumb"
	"github.com/Ehudaviv/Ofra-CV-Site/i18n"
	"github.com/Ehudaviv/Ofra-CV-Site/server/template"
)

// Deps holds the services handlers depend on. Populated once from main
// before the server starts accepting requests.
type Deps struct {
	I18n     *i18n.Service
	Catalog  *content.Catalog
	Thumbs   *thumb.Service
	Renderer *template.Renderer
}

var deps Deps

// Setup wires the handler dependencies.
func Setup(d Deps) {
	deps = d
}
