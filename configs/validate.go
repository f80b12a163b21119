// Copyright 2025 - 2026, the Ofra CV Site contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"

	"github.com/rs/zerolog/log"
)

// validation errors.
var (
	errUnixSocketWithHostPort       = errors.New("unix socket configured - cannot specify Host and Port simultaneously")
	errUnixSocketInvalidPermissions = errors.New("invalid Basic.UnixSocketPermissions value")
	errInvalidDefaultLanguage       = errors.New(`Site.DefaultLanguage must be "he" or "en"`)
	errInvalidThumbnailWidth        = errors.New("Thumbnail.Width must be positive")
	errInvalidThumbnailCacheSize    = errors.New("Thumbnail.CacheEntries must be positive")
	errInvalidLimiterRate           = errors.New("Limiter.RequestsPerSecond must be positive when the limiter is enabled")
	errInvalidLogLevel              = errors.New("Log.Level must be one of debug, info, warn, error")
	errInvalidLogFormat             = errors.New("Log.Format must be console or json")
)

var fileModeOctalRegexp = regexp.MustCompile(`^0?[0-7]{3}$`)

// validateAndSet validates the server configuration and populates some fields.
func (cfg *ServerConfig) validateAndSet() error {
	// Handle listener configuration
	if cfg.Basic.UnixSocket != "" {
		if cfg.Basic.Host != "" || cfg.Basic.Port != "" {
			return errUnixSocketWithHostPort
		}

		// Handle unix socket permissions
		switch {
		case cfg.Basic.RawUnixSocketPermissions == "":
			cfg.Basic.UnixSocketPermissions = 0o666
		case fileModeOctalRegexp.MatchString(cfg.Basic.RawUnixSocketPermissions):
			rawModeUint64, _ := strconv.ParseUint(cfg.Basic.RawUnixSocketPermissions, 8, 32)

			cfg.Basic.UnixSocketPermissions = os.FileMode(rawModeUint64)
		default:
			return errUnixSocketInvalidPermissions
		}
	} else {
		// Set TCP defaults
		if cfg.Basic.Host == "" {
			cfg.Basic.Host = "localhost"
			log.Info().
				Str("host", cfg.Basic.Host).
				Msg("Binding to default host")
		}

		if cfg.Basic.Port == "" {
			cfg.Basic.Port = "8282"
			log.Info().
				Str("port", cfg.Basic.Port).
				Msg("Binding to default port")
		}
	}

	if cfg.Site.DefaultLanguage != "he" && cfg.Site.DefaultLanguage != "en" {
		return fmt.Errorf("%w: got %q", errInvalidDefaultLanguage, cfg.Site.DefaultLanguage)
	}

	if cfg.Thumbnail.Width <= 0 {
		return errInvalidThumbnailWidth
	}

	if cfg.Thumbnail.CacheEntries <= 0 {
		return errInvalidThumbnailCacheSize
	}

	if cfg.Limiter.Enabled && cfg.Limiter.RequestsPerSecond <= 0 {
		return errInvalidLimiterRate
	}

	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: got %q", errInvalidLogLevel, cfg.Log.Level)
	}

	switch cfg.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: got %q", errInvalidLogFormat, cfg.Log.Format)
	}

	return nil
}
