// Copyright 2025 - 2026, the Ofra CV Site contributors
// SPDX-License-Identifier: AGPL-3.0-only

package router

import (
	"fmt"
	"io/fs"
	"net/http"
	"net/http/pprof"

	config "github.com/Ehudaviv/Ofra-CV-Site/configs"
	"github.com/Ehudaviv/Ofra-CV-Site/server/assets"
	"github.com/Ehudaviv/Ofra-CV-Site/server/middleware"
	"github.com/Ehudaviv/Ofra-CV-Site/server/routes"
)

// DefineRoutes sets up all the routes for the application using our custom Router.
//
// It returns a *Router without middleware.
func (router *Router) DefineRoutes() {
	fileServerHandler := fileServer()

	// Serve specific files from the root of the 'assets' subdirectory.
	router.Handle("GET /manifest.json", fileServerHandler)
	router.Handle("GET /robots.txt", fileServerHandler)

	// Serve files from subdirectories within 'assets'.
	// Patterns ending in "/" are prefix matches.
	router.Handle("GET /img/", fileServerHandler)
	router.Handle("GET /css/", fileServerHandler)
	router.Handle("GET /js/", fileServerHandler)
	router.Handle("GET /fonts/", fileServerHandler)

	// Rendered thumbnails sit under the /img/ prefix but are generated,
	// not embedded; the more specific pattern wins in ServeMux.
	router.Handle("GET /img/thumb/", middleware.CatchError(StripPrefix("/img/thumb/", routes.Thumbnail)))
	router.Handle("GET /img/full/", middleware.CatchError(StripPrefix("/img/full/", routes.FullImage)))

	// Article documents from the configured document directory.
	router.Handle("GET /docs/", middleware.CatchError(StripPrefix("/docs/", routes.ArticleDocument)))

	// Gallery routes
	router.HandleFunc("GET /gallery", middleware.CatchError(routes.GalleryPage))

	// Article routes
	router.HandleFunc("GET /articles", middleware.CatchError(routes.ArticlesPage))
	router.HandleFunc("GET /articles/{id}", middleware.CatchError(routes.ArticlePage))

	// About routes
	router.HandleFunc("GET /about", middleware.CatchError(routes.AboutPage))

	// Settings routes
	router.HandleFunc("GET /settings", middleware.CatchError(routes.SettingsPage))
	router.HandleFunc("POST /settings/{action}", middleware.CatchError(routes.SettingsPOST))

	// Index page routes
	// /{$} matches only the root path
	router.HandleFunc("GET /{$}", middleware.CatchError(routes.IndexPage))

	if config.Global.Development.InDevelopment {
		registerDebugRoutes(router)
	}
}

// Serve static files from embedded assets.
func fileServer() http.HandlerFunc {
	staticContentFS, err := fs.Sub(assets.FS, "assets")
	if err != nil {
		panic(fmt.Errorf("failed to create sub-filesystem for embedded 'assets' directory: %w", err))
	}

	fileServer := http.FileServer(http.FS(staticContentFS))
	fileServerHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "max-age=3600")
		// Using a strong ETag for static files embedded via go:embed
		// ref: https://www.rfc-editor.org/rfc/rfc9110#weak.and.strong.validators
		//
		// Since go:embed requires rebuilding when files change, we use a per-instance
		// cache ID to ensure browsers fetch fresh content after any deployment.
		w.Header().Set("ETag", config.Global.Instance.FileServerCacheID)
		fileServer.ServeHTTP(w, r)
	})

	return fileServerHandler
}

func registerDebugRoutes(router *Router) {
	router.HandleFunc("GET /debug/pprof/", pprof.Index)
	router.HandleFunc("GET /debug/pprof/cmdline", pprof.Cmdline)
	router.HandleFunc("GET /debug/pprof/profile", pprof.Profile)
	router.HandleFunc("GET /debug/pprof/symbol", pprof.Symbol)
	router.HandleFunc("GET /debug/pprof/trace", pprof.Trace)
}
