// Copyright 2025 - 2026, the Ofra CV Site contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Ofra CV Site is the bilingual portfolio website of Ofra Aviv.
*/
package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	config "github.com/Ehudaviv/Ofra-CV-Site/configs"
	"github.com/Ehudaviv/Ofra-CV-Site/core/audit"
	"github.com/Ehudaviv/Ofra-CV-Site/core/content"
	"github.com/Ehudaviv/Ofra-CV-Site/core/prefs"
	"github.com/Ehudaviv/Ofra-CV-Site/core/thumb"
	"github.com/Ehudaviv/Ofra-CV-Site/i18n"
	"github.com/Ehudaviv/Ofra-CV-Site/server/assets"
	"github.com/Ehudaviv/Ofra-CV-Site/server/middleware/set_request_context"
	"github.com/Ehudaviv/Ofra-CV-Site/server/router"
	"github.com/Ehudaviv/Ofra-CV-Site/server/routes"
	"github.com/Ehudaviv/Ofra-CV-Site/server/template"
)

const (
	// Values for http.Server timeouts.
	// ref: gosec: G112
	readHeaderTimeout time.Duration = 15 * time.Second
	readTimeout       time.Duration = 15 * time.Second
	writeTimeout      time.Duration = 10 * time.Second
	idleTimeout       time.Duration = 30 * time.Second

	serverShutdownDeadline time.Duration = 5 * time.Second
)

var errChmodSocket = errors.New("failed to change unix socket permissions")

// embeddedContent holds our static web server content.
//
//go:embed assets/css assets/js assets/manifest.json assets/robots.txt
//go:embed assets/templates assets/locales assets/content
var embeddedContent embed.FS

// init assigns the embedded filesystem to the exported assets.FS variable.
//
//nolint:gochecknoinits // this is a good use of init()
func init() {
	assets.FS = embeddedContent
}

// main is the entry point of the application.
func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("Application failed")
	}
}

// run orchestrates the application startup and graceful shutdown.
//
//nolint:funlen
func run() error {
	audit.SetDefaultLogger()

	if err := config.Global.LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	siteFS, err := fs.Sub(assets.FS, "assets")
	if err != nil {
		return fmt.Errorf("failed to create sub-filesystem for embedded assets: %w", err)
	}

	svc, err := setupI18n(siteFS)
	if err != nil {
		return fmt.Errorf("failed to initialize translations: %w", err)
	}

	log.Info().Str("language", string(svc.Language())).Msg("Initialized translations")

	catalog, err := content.NewProvider(siteFS).Load()
	if err != nil {
		return fmt.Errorf("failed to load content catalog: %w", err)
	}

	thumbs, err := thumb.New(os.DirFS(config.Global.Site.ImageDir), config.Global.Thumbnail.CacheEntries)
	if err != nil {
		return fmt.Errorf("failed to create thumbnail service: %w", err)
	}

	if config.Global.Thumbnail.Prewarm {
		go thumbs.Prewarm(context.Background(), exhibitFiles(catalog), config.Global.Thumbnail.Width)
	}

	renderer, err := template.NewRenderer(siteFS, svc)
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}

	set_request_context.Service = svc
	routes.Setup(routes.Deps{
		I18n:     svc,
		Catalog:  catalog,
		Thumbs:   thumbs,
		Renderer: renderer,
	})

	router := router.NewRouter()
	router.DefineRoutes()
	router.RegisterMiddleware()

	// Create http.Server instance
	server := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	// Channel to listen for server errors
	serverErrors := make(chan error, 1)

	// Start main server in a goroutine
	go func() {
		listener, err := chooseListener()
		if err != nil {
			serverErrors <- fmt.Errorf("failed to create listener: %w", err)

			return
		}

		serverErrors <- server.Serve(listener)
	}()

	// Set up graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until a shutdown signal or a server error is received
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	case s := <-quit:
		log.Info().Str("signal", s.String()).Msg("Shutdown signal received")
		log.Info().Msg("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), serverShutdownDeadline)

		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
	}

	log.Info().Msg("Server exited gracefully")

	return nil
}

// setupI18n builds the translation service from the persisted preference and
// the embedded locale documents.
func setupI18n(siteFS fs.FS) (*i18n.Service, error) {
	store := prefs.NewFileStore(config.Global.Site.PrefsFile)

	svc := i18n.New(store, i18n.Language(config.Global.Site.DefaultLanguage))

	for _, lang := range i18n.Languages() {
		doc, err := fs.ReadFile(siteFS, "locales/"+string(lang)+".json")
		if err != nil {
			return nil, fmt.Errorf("reading locale %s: %w", lang, err)
		}

		if err := svc.LoadTranslations(lang, doc); err != nil {
			return nil, fmt.Errorf("loading locale %s: %w", lang, err)
		}
	}

	svc.Subscribe(func(lang i18n.Language) {
		log.Info().Str("language", string(lang)).Msg("Site language changed")
	})

	return svc, nil
}

// exhibitFiles lists the thumbnail source file names for prewarming.
func exhibitFiles(catalog *content.Catalog) []string {
	const thumbPrefix = "/img/thumb/"

	names := make([]string, 0, len(catalog.Exhibits))

	for _, img := range catalog.Exhibits {
		if strings.HasPrefix(img.ThumbURL, thumbPrefix) {
			names = append(names, path.Base(img.ThumbURL))
		}
	}

	return names
}

func chooseListener() (net.Listener, error) {
	// Check if we should use a Unix domain socket
	if config.Global.Basic.UnixSocket != "" {
		unixAddr := config.Global.Basic.UnixSocket

		unixListener, err := (&net.ListenConfig{}).Listen(context.Background(), "unix", unixAddr)
		if err != nil {
			return nil, fmt.Errorf("failed to start Unix socket listener on %v: %w", unixAddr, err)
		}

		if err := os.Chmod(unixAddr, config.Global.Basic.UnixSocketPermissions); err != nil {
			_ = unixListener.Close()

			return nil, fmt.Errorf("%w: %w", errChmodSocket, err)
		}

		// Assign the listener and log where we are listening
		log.Info().
			Str("address", unixAddr).
			Msg("Listening on Unix domain socket")

		return unixListener, nil
	}

	// Otherwise, fall back to TCP listener
	addr := net.JoinHostPort(config.Global.Basic.Host, config.Global.Basic.Port)

	tcpListener, err := (&net.ListenConfig{}).Listen(context.Background(), "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to start TCP listener on %v: %w", addr, err)
	}

	addr = tcpListener.Addr().String()

	// Extract the port for logging
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		_ = tcpListener.Close()

		return nil, fmt.Errorf("failed to parse listener address %q: %w", addr, err)
	}

	// Log the address and convenient URL for local development
	log.Info().
		Str("address", addr).
		Str("port", port).
		Str("url", fmt.Sprintf("http://localhost:%v/", port)).
		Msg("Listening on address")

	return tcpListener, nil
}
