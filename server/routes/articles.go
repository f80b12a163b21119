// Copyright 2025 - 2026, the Ofra CV Site contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"net/http"

	"github.com/Ehudaviv/Ofra-CV-Site/core/content"
	"github.com/Ehudaviv/Ofra-CV-Site/server/template"
	"github.com/Ehudaviv/Ofra-CV-Site/server/utils"
)

// ArticlesData is the data for the articles index page.
type ArticlesData struct {
	Articles []content.Article
}

// ArticlesPage is the handler for the /articles page.
func ArticlesPage(w http.ResponseWriter, r *http.Request) error {
	return deps.Renderer.Render(w, r, "articles", template.TemplateData{
		Title: "articles.title",
		Data:  ArticlesData{Articles: deps.Catalog.Articles},
	})
}

// ArticleData is the data for a single article page.
type ArticleData struct {
	Article content.Article
	DocURL  string
}

// ArticlePage is the handler for the /articles/{id} page.
func ArticlePage(w http.ResponseWriter, r *http.Request) error {
	id := utils.GetPathVar(r, "id")

	article, ok := deps.Catalog.Article(id)
	if !ok {
		http.NotFound(w, r)

		return nil
	}

	pageData := ArticleData{
		Article: article,
	}

	if article.File != "" {
		pageData.DocURL = "/docs/" + article.File
	}

	return deps.Renderer.Render(w, r, "article", template.TemplateData{
		Title: article.TitleKey,
		Data:  pageData,
	})
}
