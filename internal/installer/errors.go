package installer

import "errors"

// Sentinel errors returned (wrapped) by [EdgeInstaller.Install]. Callers
// should use [errors.Is] to match against these values.
var (
	// ErrUnsupportedPlatform is returned when no msedgedriver build exists for
	// the current operating system and architecture.
	ErrUnsupportedPlatform = errors.New("unsupported platform")

	// ErrDownload is returned when the mirror cannot be reached or answers
	// with a non-2xx status.
	ErrDownload = errors.New("driver download failed")

	// ErrInvalidVersion is returned when the version published by the mirror
	// (or the pinned one) is not a dotted numeric version.
	ErrInvalidVersion = errors.New("invalid driver version")

	// ErrNoBinaryInArchive is returned when the downloaded archive does not
	// contain the driver executable.
	ErrNoBinaryInArchive = errors.New("driver binary not found in archive")
)
