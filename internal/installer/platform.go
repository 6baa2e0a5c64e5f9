package installer

import (
	"fmt"
)

// Platform identifies a msedgedriver build, e.g. "linux64" or "mac64_m1".
type Platform string

// Platforms published on the msedgedriver mirror.
const (
	PlatformWin64   Platform = "win64"
	PlatformWin32   Platform = "win32"
	PlatformWinArm  Platform = "arm64"
	PlatformMac64   Platform = "mac64"
	PlatformMacM1   Platform = "mac64_m1"
	PlatformLinux64 Platform = "linux64"
)

// DetectPlatform maps a GOOS/GOARCH pair to the matching driver build.
func DetectPlatform(goos, goarch string) (Platform, error) {
	switch goos + "/" + goarch {
	case "windows/amd64":
		return PlatformWin64, nil
	case "windows/386":
		return PlatformWin32, nil
	case "windows/arm64":
		return PlatformWinArm, nil
	case "darwin/amd64":
		return PlatformMac64, nil
	case "darwin/arm64":
		return PlatformMacM1, nil
	case "linux/amd64":
		return PlatformLinux64, nil
	}

	return "", fmt.Errorf("%w: %s/%s", ErrUnsupportedPlatform, goos, goarch)
}

// BinaryName returns the file name of the driver executable on p.
func (p Platform) BinaryName() string {
	switch p {
	case PlatformWin64, PlatformWin32, PlatformWinArm:
		return "msedgedriver.exe"
	default:
		return "msedgedriver"
	}
}

// ArchiveName returns the name of the zip archive published for p.
func (p Platform) ArchiveName() string {
	return "edgedriver_" + string(p) + ".zip"
}
