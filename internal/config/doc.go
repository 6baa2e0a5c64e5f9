// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file
//  2. Environment variables
//  3. Command-line flags
//
// The result is a single [StructuredConfig] that is built once and passed to
// every component explicitly; the package never writes to the process
// environment. The main entry point is [GetStructuredConfig].
package config
