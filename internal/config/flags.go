package config

import (
	"flag"
	"fmt"
	"strconv"
	"time"
)

// headlessFlag is a boolean flag that records whether it was set at all, so
// an absent -headless does not override HEADLESS_MODE from the environment.
type headlessFlag struct {
	value string
}

// String implements flag.Value.
func (h *headlessFlag) String() string {
	return h.value
}

// Set implements flag.Value. It accepts any value strconv.ParseBool accepts
// and stores it as "true" or "false".
func (h *headlessFlag) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}

	h.value = strconv.FormatBool(v)
	return nil
}

// IsBoolFlag lets "-headless" be used without a value.
func (h *headlessFlag) IsBoolFlag() bool {
	return true
}

// ParseFlags parses all configuration flags from args (without the program
// name).
//
// Flags:
//
//	-log-level logging verbosity name (DEBUG, INFO, WARNING, ERROR)
//	-log-format json or console
//	-headless run the browser without a window
//	-cache-path driver binary cache directory
//	-driver-version msedgedriver version to install
//	-page-load-timeout page-load timeout (e.g., "30s", "1m")
//	-env-file path of the .env file
//	-backup-source directory whose data files are backed up
//	-backup-dir backup destination root
//	-message overlay message shown after the session starts
func ParseFlags(args []string) (*StructuredConfig, error) {
	var logLevel, logFormat string
	var cachePath, driverVersion string
	var pageLoadTimeout time.Duration
	var envFilePath string
	var backupSource, backupDir string
	var headless headlessFlag
	var message string

	fs := flag.NewFlagSet("lms-automation", flag.ContinueOnError)
	fs.StringVar(&logLevel, "log-level", "", "Logging level name")
	fs.StringVar(&logFormat, "log-format", "", "Log output format: json or console")
	fs.Var(&headless, "headless", "Run the browser in headless mode")
	fs.StringVar(&cachePath, "cache-path", "", "Driver binary cache directory")
	fs.StringVar(&driverVersion, "driver-version", "", "msedgedriver version to install")
	fs.DurationVar(&pageLoadTimeout, "page-load-timeout", 0, "Page load timeout (e.g., 30s, 1m)")
	fs.StringVar(&envFilePath, "env-file", "", "Path of the .env file")
	fs.StringVar(&backupSource, "backup-source", "", "Directory whose data files are backed up")
	fs.StringVar(&backupDir, "backup-dir", "", "Backup destination root, overridden by BACKUP_DIR")
	fs.StringVar(&message, "message", "", "Message shown in the page overlay")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Log: Log{
			Level:  logLevel,
			Format: logFormat,
		},
		Driver: Driver{
			CachePath:       cachePath,
			HeadlessMode:    headless.value,
			Version:         driverVersion,
			PageLoadTimeout: pageLoadTimeout,
		},
		Backup: Backup{
			SourceDir:   backupSource,
			DefaultRoot: backupDir,
		},
		Overlay: Overlay{
			Message: message,
		},
		EnvFilePath: envFilePath,
	}, nil
}
