// Copyright 2025 - 2026, the Ofra CV Site contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a configuration that passes validateAndSet.
func validConfig() *ServerConfig {
	cfg := &ServerConfig{}
	cfg.SetDefaults()

	return cfg
}

func TestValidateAndSet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(cfg *ServerConfig)
		wantErr error
	}{
		{
			name:   "Defaults are valid",
			mutate: func(cfg *ServerConfig) {},
		},
		{
			name: "Unix socket excludes host and port",
			mutate: func(cfg *ServerConfig) {
				cfg.Basic.UnixSocket = "/tmp/ofra.sock"
				cfg.Basic.Host = "localhost"
			},
			wantErr: errUnixSocketWithHostPort,
		},
		{
			name: "Unix socket with valid permissions",
			mutate: func(cfg *ServerConfig) {
				cfg.Basic.UnixSocket = "/tmp/ofra.sock"
				cfg.Basic.RawUnixSocketPermissions = "0660"
			},
		},
		{
			name: "Unix socket with invalid permissions",
			mutate: func(cfg *ServerConfig) {
				cfg.Basic.UnixSocket = "/tmp/ofra.sock"
				cfg.Basic.RawUnixSocketPermissions = "0999"
			},
			wantErr: errUnixSocketInvalidPermissions,
		},
		{
			name: "Invalid default language",
			mutate: func(cfg *ServerConfig) {
				cfg.Site.DefaultLanguage = "fr"
			},
			wantErr: errInvalidDefaultLanguage,
		},
		{
			name: "Non-positive thumbnail width",
			mutate: func(cfg *ServerConfig) {
				cfg.Thumbnail.Width = 0
			},
			wantErr: errInvalidThumbnailWidth,
		},
		{
			name: "Non-positive thumbnail cache size",
			mutate: func(cfg *ServerConfig) {
				cfg.Thumbnail.CacheEntries = -1
			},
			wantErr: errInvalidThumbnailCacheSize,
		},
		{
			name: "Limiter enabled without a rate",
			mutate: func(cfg *ServerConfig) {
				cfg.Limiter.Enabled = true
				cfg.Limiter.RequestsPerSecond = 0
			},
			wantErr: errInvalidLimiterRate,
		},
		{
			name: "Limiter disabled ignores the rate",
			mutate: func(cfg *ServerConfig) {
				cfg.Limiter.Enabled = false
				cfg.Limiter.RequestsPerSecond = 0
			},
		},
		{
			name: "Invalid log level",
			mutate: func(cfg *ServerConfig) {
				cfg.Log.Level = "verbose"
			},
			wantErr: errInvalidLogLevel,
		},
		{
			name: "Invalid log format",
			mutate: func(cfg *ServerConfig) {
				cfg.Log.Format = "xml"
			},
			wantErr: errInvalidLogFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validateAndSet()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
		})
	}
}

// TestValidateAndSetTCPDefaults verifies that host and port fall back to the
// defaults only when no unix socket is configured.
func TestValidateAndSetTCPDefaults(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	require.NoError(t, cfg.validateAndSet())
	assert.Equal(t, "localhost", cfg.Basic.Host)
	assert.Equal(t, "8282", cfg.Basic.Port)

	cfg = validConfig()
	cfg.Basic.Host = "0.0.0.0"
	cfg.Basic.Port = "9000"
	require.NoError(t, cfg.validateAndSet())
	assert.Equal(t, "0.0.0.0", cfg.Basic.Host)
	assert.Equal(t, "9000", cfg.Basic.Port)

	cfg = validConfig()
	cfg.Basic.UnixSocket = "/tmp/ofra.sock"
	require.NoError(t, cfg.validateAndSet())
	assert.Empty(t, cfg.Basic.Host)
	assert.Empty(t, cfg.Basic.Port)
}

func TestReadEnv(t *testing.T) {
	t.Setenv("OFRA_DEFAULT_LANGUAGE", "en")
	t.Setenv("OFRA_THUMBNAIL_WIDTH", "640")
	t.Setenv("OFRA_THUMBNAIL_PREWARM", "false")
	t.Setenv("OFRA_CACHE_CONTROL_MAX_AGE", "90s")
	t.Setenv("OFRA_LOG_OUTPUTS", "/dev/stderr,/var/log/ofra.log")

	cfg := validConfig()
	require.NoError(t, readEnv(cfg))

	assert.Equal(t, "en", cfg.Site.DefaultLanguage)
	assert.Equal(t, 640, cfg.Thumbnail.Width)
	assert.False(t, cfg.Thumbnail.Prewarm)
	assert.Equal(t, 90*time.Second, cfg.HTTPCache.MaxAge)
	assert.Equal(t, []string{"/dev/stderr", "/var/log/ofra.log"}, cfg.Log.Outputs)
}

func TestReadEnvInvalidValue(t *testing.T) {
	t.Setenv("OFRA_THUMBNAIL_WIDTH", "not-a-number")

	cfg := validConfig()
	assert.Error(t, readEnv(cfg))
}

func TestShouldSkipServerLogging(t *testing.T) {
	t.Parallel()

	cfg := validConfig()

	assert.True(t, cfg.ShouldSkipServerLogging("/img/thumb/loom.jpg"))
	assert.True(t, cfg.ShouldSkipServerLogging("/css/style.css"))
	assert.False(t, cfg.ShouldSkipServerLogging("/gallery"))
	assert.False(t, cfg.ShouldSkipServerLogging("/"))
}
