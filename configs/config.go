// Copyright 2025 - 2026, the Ofra CV Site contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Ehudaviv/Ofra-CV-Site/core/idgen"
)

// Global exposes the server configuration.
var Global ServerConfig

// ServerConfig holds the application configuration.
type ServerConfig struct {
	Build buildInfo `yaml:"-"`

	Basic struct {
		Host                     string      `env:"OFRA_HOST,overwrite" yaml:"host"`
		Port                     string      `env:"OFRA_PORT,overwrite" yaml:"port"`
		UnixSocket               string      `env:"OFRA_UNIXSOCKET" yaml:"unixSocket"`
		RawUnixSocketPermissions string      `env:"OFRA_UNIXSOCKET_PERMISSIONS" yaml:"unixSocketPermissions"`
		UnixSocketPermissions    os.FileMode `yaml:"-"`
	} `yaml:"basic"`

	Site struct {
		// DefaultLanguage is used when no preference is persisted and the
		// request carries none. Must be "he" or "en".
		DefaultLanguage string `env:"OFRA_DEFAULT_LANGUAGE,overwrite" yaml:"defaultLanguage"`

		// ImageDir holds the gallery originals on disk.
		ImageDir string `env:"OFRA_IMAGE_DIR,overwrite" yaml:"imageDir"`

		// DocumentDir holds the article documents served under /docs/.
		DocumentDir string `env:"OFRA_DOCUMENT_DIR,overwrite" yaml:"documentDir"`

		// PrefsFile persists the server-side language preference.
		PrefsFile string `env:"OFRA_PREFS_FILE,overwrite" yaml:"prefsFile"`
	} `yaml:"site"`

	Thumbnail struct {
		Width        int  `env:"OFRA_THUMBNAIL_WIDTH,overwrite" yaml:"width"`
		CacheEntries int  `env:"OFRA_THUMBNAIL_CACHE_ENTRIES,overwrite" yaml:"cacheEntries"`
		Prewarm      bool `env:"OFRA_THUMBNAIL_PREWARM,overwrite" yaml:"prewarm"`
	} `yaml:"thumbnail"`

	HTTPCache struct {
		MaxAge               time.Duration `env:"OFRA_CACHE_CONTROL_MAX_AGE,overwrite" yaml:"cacheControlMaxAge"`
		StaleWhileRevalidate time.Duration `env:"OFRA_CACHE_CONTROL_STALE_WHILE_REVALIDATE,overwrite" yaml:"cacheControlStaleWhileRevalidate"`
	} `yaml:"httpCache"`

	Limiter struct {
		Enabled           bool    `env:"OFRA_LIMITER,overwrite" yaml:"enabled"`
		RequestsPerSecond float64 `env:"OFRA_LIMITER_RPS,overwrite" yaml:"requestsPerSecond"`
		Burst             int     `env:"OFRA_LIMITER_BURST,overwrite" yaml:"burst"`
	} `yaml:"limiter"`

	Instance struct {
		StartingTime      string `yaml:"-"`
		FileServerCacheID string `yaml:"-"`
		RepoURL           string `env:"OFRA_REPO_URL,overwrite" yaml:"repoUrl"`
	} `yaml:"instance"`

	Development struct {
		InDevelopment bool `env:"OFRA_DEV" yaml:"inDevelopment"`
	} `yaml:"development"`

	Log struct {
		Level   string   `env:"OFRA_LOG_LEVEL,overwrite" yaml:"logLevel"`
		Outputs []string `env:"OFRA_LOG_OUTPUTS,overwrite" yaml:"logOutputs"`
		Format  string   `env:"OFRA_LOG_FORMAT,overwrite" yaml:"logFormat"`
	} `yaml:"log"`
}

// LoadConfig loads the configuration from various sources.
func (cfg *ServerConfig) LoadConfig() error {
	parsedConfigFlagValue := parseCommandLineArgs()

	// Check if the -config flag was explicitly set by the user.
	configFlagUserSet := false

	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			configFlagUserSet = true
		}
	})

	var configFilePath string

	// Determine the config file path with the correct precedence:
	// 1. Command-line flag (-config)
	// 2. Environment variable (OFRA_CONFIGFILE)
	// 3. Default path with fallback check
	switch {
	case configFlagUserSet:
		configFilePath = parsedConfigFlagValue
	case os.Getenv("OFRA_CONFIGFILE") != "":
		configFilePath = os.Getenv("OFRA_CONFIGFILE")
	default:
		configFilePath = parsedConfigFlagValue

		if _, err := os.Stat(configFilePath); os.IsNotExist(err) {
			ymlPath := "./config.yml"
			if _, statErr := os.Stat(ymlPath); statErr == nil {
				configFilePath = ymlPath
			}
		}
	}

	cfg.SetDefaults()

	cfg.Build.load()

	cfg.Instance.FileServerCacheID = idgen.Make()
	cfg.Instance.StartingTime = time.Now().UTC().Format("2006-01-02 15:04")

	if err := cfg.readYAML(configFilePath); err != nil {
		return fmt.Errorf("error loading YAML config: %w", err)
	}

	if err := readEnv(cfg); err != nil {
		return fmt.Errorf("error loading environment variables: %w", err)
	}

	if err := cfg.validateAndSet(); err != nil {
		return fmt.Errorf("configuration invalid: %w", err)
	}

	cfg.setupAudit()

	cfg.print()

	// Heuristically check for containerized environment and warn if host is not a wildcard address.
	if isContainerized() && cfg.Basic.Host != "0.0.0.0" && cfg.Basic.Host != "::" {
		log.Warn().
			Str("host", cfg.Basic.Host).
			Msg("Running in a containerized environment but host is not a wildcard address (e.g., '0.0.0.0' or '::'). This may prevent the service from being accessible outside the container.")
	}

	return nil
}

var staticSkippedPathPrefixes = []string{"/img/", "/css/", "/js/", "/fonts/"}

// ShouldSkipServerLogging determines if a request should bypass the logging middleware.
func (cfg *ServerConfig) ShouldSkipServerLogging(path string) bool {
	for _, prefix := range staticSkippedPathPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	return false
}

// isContainerized checks for common indicators of a containerized environment.
//
// This is a heuristic and may not be 100% accurate.
func isContainerized() bool {
	// Check for a Kubernetes-injected environment variable.
	if os.Getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true
	}

	// Check for existence of container-specific files.
	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true
	}

	if _, err := os.Stat("/.containerenv"); err == nil {
		return true
	}

	return false
}
