// Copyright 2025 - 2026, the Ofra CV Site contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"net/http"

	"github.com/Ehudaviv/Ofra-CV-Site/core/content"
	"github.com/Ehudaviv/Ofra-CV-Site/server/request_context"
	"github.com/Ehudaviv/Ofra-CV-Site/server/template"
)

// featuredExhibitCount is how many works the home page previews.
const featuredExhibitCount = 4

// IndexData is the data for the home page.
type IndexData struct {
	Featured []GalleryItem
	Articles []content.Article
}

// IndexPage is the handler for the root path.
func IndexPage(w http.ResponseWriter, r *http.Request) error {
	rc := request_context.FromRequest(r)

	exhibits := deps.Catalog.Exhibits
	if len(exhibits) > featuredExhibitCount {
		exhibits = exhibits[:featuredExhibitCount]
	}

	articles := deps.Catalog.Articles
	if len(articles) > 3 {
		articles = articles[:3]
	}

	pageData := IndexData{
		Featured: galleryItems(rc.Lang, exhibits),
		Articles: articles,
	}

	return deps.Renderer.Render(w, r, "index", template.TemplateData{
		Title: "home.title",
		Data:  pageData,
	})
}
