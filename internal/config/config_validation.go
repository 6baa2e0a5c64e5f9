// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// applyDefaults fills every field still empty after all sources have been
// merged. WDM_LOCAL is forced on regardless of its configured value.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}

	cfg.Driver.Local = true
	if cfg.Driver.HeadlessMode == "" {
		cfg.Driver.HeadlessMode = DefaultHeadlessMode
	}
	if cfg.Driver.MirrorURL == "" {
		cfg.Driver.MirrorURL = DefaultMirrorURL
	}
	if cfg.Driver.PageLoadTimeout == 0 {
		cfg.Driver.PageLoadTimeout = DefaultPageLoadTimeout
	}
}

// validate checks that the final merged [StructuredConfig] can be used at
// startup. Level names are checked by the logger.
func (cfg *StructuredConfig) validate() error {
	switch strings.ToLower(cfg.Log.Format) {
	case "json", "console":
	default:
		return ErrInvalidLogConfigs
	}

	if cfg.Driver.PageLoadTimeout < 0 {
		return ErrInvalidDriverConfigs
	}
	if !strings.HasPrefix(cfg.Driver.MirrorURL, "http://") && !strings.HasPrefix(cfg.Driver.MirrorURL, "https://") {
		return ErrInvalidDriverConfigs
	}

	return nil
}
