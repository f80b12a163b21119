// Copyright 2025 - 2026, the Ofra CV Site contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import "github.com/rs/zerolog/log"

// print logs a startup summary of the effective configuration.
func (cfg *ServerConfig) print() {
	event := log.Info()

	if cfg.Basic.UnixSocket != "" {
		event.Str("socket", cfg.Basic.UnixSocket)
	} else {
		event.Str("host", cfg.Basic.Host).Str("port", cfg.Basic.Port)
	}

	event.
		Str("version", BuildVersion).
		Str("revision", cfg.Build.Revision()).
		Str("default_language", cfg.Site.DefaultLanguage).
		Str("image_dir", cfg.Site.ImageDir).
		Bool("limiter", cfg.Limiter.Enabled).
		Msg("Configuration loaded")
}
