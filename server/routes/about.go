// Copyright 2025 - 2026, the Ofra CV Site contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"fmt"
	"net/http"

	config "github.com/Ehudaviv/Ofra-CV-Site/configs"
	"github.com/Ehudaviv/Ofra-CV-Site/server/template"
)

// AboutData is the data for the about page.
type AboutData struct {
	Version  string
	Revision string
	Time     string
	RepoURL  string
}

// AboutPage is the handler for the /about page.
func AboutPage(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d, stale-while-revalidate=%d",
		int(config.Global.HTTPCache.MaxAge.Seconds()),
		int(config.Global.HTTPCache.StaleWhileRevalidate.Seconds())))

	pageData := AboutData{
		Version:  config.BuildVersion,
		Revision: config.Global.Build.Revision(),
		Time:     config.Global.Instance.StartingTime,
		RepoURL:  config.Global.Instance.RepoURL,
	}

	return deps.Renderer.Render(w, r, "about", template.TemplateData{
		Title: "about.title",
		Data:  pageData,
	})
}
