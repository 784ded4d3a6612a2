// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"flag"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-yaml"

	"codeberg.org/embedded-rust-101/site/core/idgen"
)

// Global exposes the site configuration.
var Global SiteConfig

// SiteConfig holds the application configuration.
type SiteConfig struct {
	Build buildInfo `yaml:"-"`

	Basic struct {
		Host                     string      `env:"SITE_HOST"                   yaml:"host"`
		Port                     string      `env:"SITE_PORT"                   yaml:"port"`
		UnixSocket               string      `env:"SITE_UNIXSOCKET"             yaml:"unixSocket"`
		RawUnixSocketPermissions string      `env:"SITE_UNIXSOCKET_PERMISSIONS" yaml:"unixSocketPermissions"`
		UnixSocketPermissions    os.FileMode `yaml:"-"`
	} `yaml:"basic"`

	Site struct {
		Title    string `env:"SITE_TITLE"     yaml:"title"`
		Tagline  string `env:"SITE_TAGLINE"   yaml:"tagline"`
		BasePath string `env:"SITE_BASE_PATH" yaml:"basePath"`
		DocsPath string `env:"SITE_DOCS_PATH" yaml:"docsPath"`
		RawRepo  string `env:"SITE_REPO_URL"  yaml:"repoUrl"`
		Repo     url.URL `yaml:"-"`
	} `yaml:"site"`

	HTTPCache struct {
		MaxAge               time.Duration `env:"SITE_CACHE_CONTROL_MAX_AGE"                yaml:"cacheControlMaxAge"`
		StaleWhileRevalidate time.Duration `env:"SITE_CACHE_CONTROL_STALE_WHILE_REVALIDATE" yaml:"cacheControlStaleWhileRevalidate"`
	} `yaml:"httpCache"`

	// Cache configures the in-memory cache of rendered pages.
	Cache struct {
		Enabled  bool `env:"SITE_CACHE"          yaml:"enabled"`
		Size     int  `env:"SITE_CACHE_SIZE"     yaml:"cacheSize"`
		Compress bool `env:"SITE_CACHE_COMPRESS" yaml:"compress"`
	} `yaml:"cache"`

	// Output configures cmd/buildsite.
	Output struct {
		Dir         string `env:"SITE_OUTPUT_DIR"         yaml:"dir"`
		Precompress bool   `env:"SITE_OUTPUT_PRECOMPRESS" yaml:"precompress"`
	} `yaml:"output"`

	Instance struct {
		StartingTime string `yaml:"-"`
		AssetCacheID string `yaml:"-"`
	} `yaml:"-"`

	Development struct {
		InDevelopment bool `env:"SITE_DEV" yaml:"inDevelopment"`
	} `yaml:"development"`

	Log struct {
		Level   string   `env:"SITE_LOG_LEVEL"   yaml:"logLevel"`
		Outputs []string `env:"SITE_LOG_OUTPUTS" yaml:"logOutputs"`
		Format  string   `env:"SITE_LOG_FORMAT"  yaml:"logFormat"`
	} `yaml:"log"`

	Internationalization struct {
		// Strict mode for missing keys.
		//
		// When enabled, missing keys are logged (deduplicated per locale+key) and
		// visibly wrapped using markers.
		StrictMissingKeys bool `env:"SITE_STRICT_MISSING_KEYS" yaml:"strictMissingKeys"`
	} `yaml:"internationalization"`
}

// LoadConfig loads the configuration from various sources.
//
// Precedence, lowest first: defaults, YAML file, environment variables.
func (cfg *SiteConfig) LoadConfig() error {
	parsedConfigFlagValue := parseCommandLineArgs()

	configFlagUserSet := false

	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			configFlagUserSet = true
		}
	})

	var configFilePath string

	// Determine the config file path with the correct precedence:
	// 1. Command-line flag (-config)
	// 2. Environment variable (SITE_CONFIGFILE)
	// 3. Default path with fallback to ./config.yml
	switch envVar := os.Getenv("SITE_CONFIGFILE"); {
	case configFlagUserSet:
		configFilePath = parsedConfigFlagValue
	case envVar != "":
		configFilePath = envVar
	default:
		configFilePath = parsedConfigFlagValue

		if _, err := os.Stat(configFilePath); os.IsNotExist(err) {
			ymlPath := "./config.yml"
			if _, statErr := os.Stat(ymlPath); statErr == nil {
				configFilePath = ymlPath
			}
		}
	}

	return cfg.load(configFilePath)
}

// load applies every configuration layer from configFilePath onwards.
func (cfg *SiteConfig) load(configFilePath string) error {
	cfg.SetDefaults()

	cfg.Build.load()

	cfg.Instance.AssetCacheID = idgen.Make()
	cfg.Instance.StartingTime = time.Now().UTC().Format("2006-01-02 15:04")

	if err := cfg.readYAML(configFilePath); err != nil {
		return fmt.Errorf("error loading YAML config: %w", err)
	}

	if err := cfg.readEnv(); err != nil {
		return fmt.Errorf("error loading environment variables: %w", err)
	}

	if err := cfg.validateAndSet(); err != nil {
		return fmt.Errorf("configuration invalid: %w", err)
	}

	cfg.setupAudit()

	cfg.print()

	return nil
}

var skippedPathPrefixes = []string{"/img/", "/css/", "/healthz"}

// ShouldSkipServerLogging determines if a request should bypass request logging.
func (cfg *SiteConfig) ShouldSkipServerLogging(path string) bool {
	for _, prefix := range skippedPathPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	return false
}

// DocsURL returns the site-relative link to the documentation entry point.
func (cfg *SiteConfig) DocsURL() string {
	return cfg.Site.BasePath + strings.TrimPrefix(cfg.Site.DocsPath, "/")
}

// GetDurationEncoderOption returns a YAML encoder option that marshals
// time.Duration into a human-readable string format (e.g., "30m", "1h").
func GetDurationEncoderOption() yaml.EncodeOption {
	return yaml.CustomMarshaler[time.Duration](
		func(d time.Duration) ([]byte, error) {
			return yaml.Marshal(d.String())
		},
	)
}
