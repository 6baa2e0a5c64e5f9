package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a merged
// configuration group is unusable.
var (
	// ErrInvalidLogConfigs indicates an unsupported log output format.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidDriverConfigs indicates invalid driver settings
	// (for example, a negative page-load timeout or a mirror URL without
	// an http(s) scheme).
	ErrInvalidDriverConfigs = errors.New("invalid driver configuration")
)
