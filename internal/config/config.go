// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Default values applied by [StructuredConfig.applyDefaults] after all
// sources have been merged.
const (
	// DefaultLogLevel is used when LOG_LEVEL is not provided by any source.
	DefaultLogLevel = "INFO"

	// DefaultLogFormat selects the JSON encoder of zerolog.
	DefaultLogFormat = "json"

	// DefaultHeadlessMode mirrors the value documented for HEADLESS_MODE.
	DefaultHeadlessMode = "False"

	// DefaultMirrorURL is the public download host for msedgedriver builds.
	DefaultMirrorURL = "https://msedgedriver.microsoft.com"

	// DefaultPageLoadTimeout bounds a single page navigation in the browser.
	DefaultPageLoadTimeout = 30 * time.Second

	// DefaultCacheDirName is the directory created under the user's home
	// directory when WDM_CACHE_PATH is not set.
	DefaultCacheDirName = ".wdm"
)

// StructuredConfig is the top-level configuration container for the
// lms-automation application. It is built once at startup by merging the
// .env file, process environment variables and command-line flags, and is
// then passed by pointer to every component that needs it.
//
// Scalar fields carry an env tag naming the variable read by caarlos0/env.
type StructuredConfig struct {
	// Log holds the verbosity and output format of the application logger.
	Log Log

	// Driver holds settings used to resolve the msedgedriver binary and to
	// open a browser session.
	Driver Driver

	// Backup holds settings for the data backup utility.
	Backup Backup

	// Overlay holds settings for the in-page message overlay.
	Overlay Overlay

	// EnvFilePath is the path of the .env file loaded before environment
	// variables are parsed. Defaults to "../.env" relative to the executable.
	// Env: ENV_FILE
	EnvFilePath string `env:"ENV_FILE"`
}

// Log holds logger settings.
type Log struct {
	// Level is a case-insensitive level name (DEBUG, INFO, WARNING, ERROR...).
	// Env: LOG_LEVEL
	Level string `env:"LOG_LEVEL"`

	// Format is either "json" or "console".
	// Env: LOG_FORMAT
	Format string `env:"LOG_FORMAT"`
}

// Driver holds browser driver settings.
type Driver struct {
	// Local forces the driver cache to live on the local file system.
	// It is always true and is not read from WDM_LOCAL, whatever its value.
	Local bool `env:"-"`

	// CachePath is the directory where downloaded driver binaries are kept.
	// Env: WDM_CACHE_PATH
	CachePath string `env:"WDM_CACHE_PATH"`

	// HeadlessMode enables headless browsing when equal to "true" in any case.
	// Any other value, including an empty one, leaves the window visible.
	// Env: HEADLESS_MODE
	HeadlessMode string `env:"HEADLESS_MODE"`

	// Version pins the msedgedriver version. Empty means latest stable.
	// Env: EDGE_DRIVER_VERSION
	Version string `env:"EDGE_DRIVER_VERSION"`

	// MirrorURL is the base URL driver archives are downloaded from.
	// Env: EDGE_DRIVER_MIRROR
	MirrorURL string `env:"EDGE_DRIVER_MIRROR"`

	// PageLoadTimeout is applied to the browser session after it is opened.
	// Env: PAGE_LOAD_TIMEOUT
	PageLoadTimeout time.Duration `env:"PAGE_LOAD_TIMEOUT"`
}

// Backup holds settings for the backup utility.
type Backup struct {
	// Dir overrides the backup root supplied by the caller when non-empty.
	// Env: BACKUP_DIR
	Dir string `env:"BACKUP_DIR"`

	// SourceDir is the directory whose data files are backed up by the CLI.
	// It has no environment variable and is set with -backup-source only.
	SourceDir string `env:"-"`

	// DefaultRoot is the caller-supplied backup root used when Dir is empty.
	// Set with -backup-dir; BACKUP_DIR still takes precedence over it.
	DefaultRoot string `env:"-"`
}

// Overlay holds settings for the message overlay injected into the page.
type Overlay struct {
	// Message is shown in the overlay right after injection when non-empty.
	// Env: OVERLAY_MESSAGE
	Message string `env:"OVERLAY_MESSAGE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. .env file (never overrides variables already present in the process)
//  2. Environment variables
//  3. Command-line flags
//
// Defaults are filled in for every field still empty after merging.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args).
		withDotEnv().
		withEnv().
		build()
}
