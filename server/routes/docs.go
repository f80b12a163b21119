// Copyright 2025 - 2026, the Ofra CV Site contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"io/fs"
	"net/http"
	"os"

	config "github.com/Ehudaviv/Ofra-CV-Site/configs"
)

// ArticleDocument serves a source document from the configured document
// directory. The document's name is the remaining request path.
func ArticleDocument(w http.ResponseWriter, r *http.Request) error {
	name := r.URL.Path

	if !fs.ValidPath(name) || name == "." {
		http.NotFound(w, r)

		return nil
	}

	docsFS := os.DirFS(config.Global.Site.DocumentDir)

	if _, err := fs.Stat(docsFS, name); err != nil {
		http.NotFound(w, r)

		return nil
	}

	// Documents open in the browser rather than downloading.
	w.Header().Set("Content-Disposition", "inline")

	http.ServeFileFS(w, r, docsFS, name)

	return nil
}
