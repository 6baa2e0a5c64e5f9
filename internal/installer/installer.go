// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package installer resolves a msedgedriver binary for the current platform.
//
// Binaries are downloaded from the Edge driver mirror with a resty client and
// kept in a versioned cache directory:
//
//	<cache>/drivers/edgedriver/<platform>/<version>/msedgedriver[.exe]
//
// A cached binary is returned without touching the network.
package installer

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"time"

	"github.com/MKhiriev/lms-automation/internal/config"
	"github.com/MKhiriev/lms-automation/internal/logger"
	"github.com/go-resty/resty/v2"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	downloadTimeout = 2 * time.Minute
	latestStableURI = "/LATEST_STABLE"
	driverName      = "edgedriver"
)

var versionPattern = regexp.MustCompile(`^\d+(\.\d+){1,3}$`)

// EdgeInstaller downloads and caches msedgedriver builds.
type EdgeInstaller struct {
	client   *resty.Client
	version  string
	platform Platform

	logger *logger.Logger
}

// NewEdgeInstaller constructs an installer for the running platform.
//
// cfg.MirrorURL is used as the resty base URL and cfg.Version, when set, pins
// the driver version instead of asking the mirror for the latest stable one.
// Returns an error wrapping [ErrUnsupportedPlatform] when no build exists for
// runtime.GOOS/runtime.GOARCH.
func NewEdgeInstaller(cfg config.Driver, log *logger.Logger) (*EdgeInstaller, error) {
	platform, err := DetectPlatform(runtime.GOOS, runtime.GOARCH)
	if err != nil {
		return nil, err
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.MirrorURL, "/")).
		SetTimeout(downloadTimeout)

	return &EdgeInstaller{
		client:   client,
		version:  strings.TrimSpace(cfg.Version),
		platform: platform,
		logger:   log,
	}, nil
}

// Install returns the path of a ready-to-run driver binary inside cacheDir,
// downloading and extracting it first on a cache miss.
func (i *EdgeInstaller) Install(ctx context.Context, cacheDir string) (string, error) {
	version, err := i.resolveVersion(ctx)
	if err != nil {
		return "", err
	}

	targetDir := filepath.Join(cacheDir, "drivers", driverName, string(i.platform), version)
	binaryPath := filepath.Join(targetDir, i.platform.BinaryName())

	if info, err := os.Stat(binaryPath); err == nil && info.Mode().IsRegular() {
		i.logger.Debug().
			Str("version", version).
			Str("path", binaryPath).
			Msg("driver found in cache")
		return binaryPath, nil
	}

	i.logger.Info().
		Str("version", version).
		Str("platform", string(i.platform)).
		Msg("downloading driver")

	archive, err := i.download(ctx, "/"+version+"/"+i.platform.ArchiveName())
	if err != nil {
		return "", err
	}

	if err = os.MkdirAll(targetDir, 0o755); err != nil {
		return "", fmt.Errorf("create driver directory: %w", err)
	}
	if err = extractBinary(archive, i.platform.BinaryName(), binaryPath); err != nil {
		return "", err
	}

	i.logger.Info().Str("path", binaryPath).Msg("driver installed")
	return binaryPath, nil
}

func (i *EdgeInstaller) resolveVersion(ctx context.Context) (string, error) {
	version := i.version
	if version == "" {
		body, err := i.download(ctx, latestStableURI)
		if err != nil {
			return "", err
		}
		if version, err = decodeVersion(body); err != nil {
			return "", err
		}
		i.logger.Debug().Str("version", version).Msg("resolved latest stable driver version")
	}

	if !versionPattern.MatchString(version) {
		return "", fmt.Errorf("%w: %q", ErrInvalidVersion, version)
	}

	return version, nil
}

func (i *EdgeInstaller) download(ctx context.Context, uri string) ([]byte, error) {
	resp, err := i.client.R().
		SetContext(ctx).
		Get(uri)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %w", ErrDownload, uri, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("%w: GET %s: %w", ErrDownload, uri, err)
	}

	return resp.Body(), nil
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return fmt.Errorf("http %d: %s", resp.StatusCode(), http.StatusText(resp.StatusCode()))
}

// decodeVersion reads the LATEST_STABLE payload, which the mirror publishes
// as UTF-16 with a byte order mark. UTF-8 payloads are accepted as well.
func decodeVersion(body []byte) (string, error) {
	decoded, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), body)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidVersion, err)
	}

	version := strings.TrimSpace(string(decoded))
	if !versionPattern.MatchString(version) {
		return "", fmt.Errorf("%w: %q", ErrInvalidVersion, version)
	}

	return version, nil
}

// extractBinary writes the archive entry named binaryName to dst with mode
// 0755. The file is written next to dst and renamed into place.
func extractBinary(archive []byte, binaryName, dst string) error {
	reader, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return fmt.Errorf("open driver archive: %w", err)
	}

	for _, entry := range reader.File {
		if entry.FileInfo().IsDir() || filepath.Base(entry.Name) != binaryName {
			continue
		}

		src, err := entry.Open()
		if err != nil {
			return fmt.Errorf("open archive entry %s: %w", entry.Name, err)
		}
		defer src.Close()

		tmp, err := os.CreateTemp(filepath.Dir(dst), binaryName+".*.tmp")
		if err != nil {
			return fmt.Errorf("create driver file: %w", err)
		}
		defer os.Remove(tmp.Name())

		if _, err = io.Copy(tmp, src); err != nil {
			tmp.Close()
			return fmt.Errorf("write driver file: %w", err)
		}
		if err = tmp.Close(); err != nil {
			return fmt.Errorf("close driver file: %w", err)
		}
		if err = os.Chmod(tmp.Name(), 0o755); err != nil {
			return fmt.Errorf("chmod driver file: %w", err)
		}

		return os.Rename(tmp.Name(), dst)
	}

	return fmt.Errorf("%w: %s", ErrNoBinaryInArchive, binaryName)
}
