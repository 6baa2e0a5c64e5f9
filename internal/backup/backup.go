// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package backup copies LMS data files into a timestamped backup folder.
//
// Every run creates (or reuses, within the same second) a folder named
// LMS_Data_Backup_<YYYYMMDD_HHMMSS> under the backup root and copies the
// top-level .csv, .xls and .xlsx files of the source directory into it,
// keeping their permissions and modification times. A run stops at the first
// failure and reports it as a [*CopyError] together with the files already
// copied.
package backup

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/lms-automation/internal/config"
	"github.com/MKhiriev/lms-automation/internal/logger"
	"github.com/MKhiriev/lms-automation/models"
	"github.com/google/uuid"
)

const (
	// FolderPrefix starts the name of every backup folder.
	FolderPrefix = "LMS_Data_Backup_"

	// TimestampLayout is the second-resolution suffix of a backup folder.
	TimestampLayout = "20060102_150405"
)

// Extensions lists the file suffixes that are backed up. Matching is
// case-sensitive.
var Extensions = []string{".csv", ".xls", ".xlsx"}

// Option configures a [Utility].
type Option func(*Utility)

// WithClock replaces time.Now as the source of the folder timestamp.
func WithClock(now func() time.Time) Option {
	return func(u *Utility) {
		u.now = now
	}
}

// Utility runs backups.
type Utility struct {
	cfg config.Backup
	now func() time.Time

	logger *logger.Logger
}

// New constructs a Utility. cfg.Dir, when set, replaces the root passed to
// [Utility.Run].
func New(cfg config.Backup, log *logger.Logger, opts ...Option) *Utility {
	u := &Utility{
		cfg:    cfg,
		now:    time.Now,
		logger: log,
	}
	for _, opt := range opts {
		opt(u)
	}

	return u
}

// FolderName returns the backup folder name for the clock reading t.
func FolderName(t time.Time) string {
	return FolderPrefix + t.Format(TimestampLayout)
}

// Root returns the configured backup root, falling back to defaultRoot.
func (u *Utility) Root(defaultRoot string) string {
	if u.cfg.Dir != "" {
		return u.cfg.Dir
	}

	return defaultRoot
}

// Run backs up sourceDir into a new folder under [Utility.Root].
//
// The report is returned in every case. On failure it lists the files copied
// before the failing one and err is a [*CopyError] naming the operation and
// path that failed, or wraps [ErrInterrupted] when ctx was cancelled.
func (u *Utility) Run(ctx context.Context, sourceDir, defaultRoot string) (models.BackupReport, error) {
	started := u.now()
	report := models.BackupReport{
		RunID:     uuid.NewString(),
		Folder:    filepath.Join(u.Root(defaultRoot), FolderName(started)),
		StartedAt: started,
		Copied:    []string{},
	}
	log := &logger.Logger{Logger: u.logger.With().Str("run_id", report.RunID).Logger()}

	if err := u.run(ctx, sourceDir, &report, log); err != nil {
		log.Error().
			Err(err).
			Int("copied", len(report.Copied)).
			Msg("error during backup process")
		return report, err
	}

	log.Info().
		Int("copied", len(report.Copied)).
		Int("skipped", len(report.Skipped)).
		Msg("backup process completed successfully")
	return report, nil
}

func (u *Utility) run(ctx context.Context, sourceDir string, report *models.BackupReport, log *logger.Logger) error {
	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		return &CopyError{Op: OpRead, Path: sourceDir, Err: err}
	}

	if err = os.MkdirAll(report.Folder, 0o755); err != nil {
		return &CopyError{Op: OpMkdir, Path: report.Folder, Err: err}
	}
	log.Info().Str("folder", report.Folder).Msg("created backup folder")

	for _, entry := range entries {
		name := entry.Name()
		if !HasBackupExtension(name) {
			report.Skipped = append(report.Skipped, name)
			continue
		}

		if err = ctx.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrInterrupted, err)
		}

		src := filepath.Join(sourceDir, name)
		info, statErr := os.Stat(src)
		if statErr != nil {
			return &CopyError{Op: OpCopy, Path: src, Err: statErr}
		}
		if !info.Mode().IsRegular() {
			report.Skipped = append(report.Skipped, name)
			continue
		}

		if err = copyFile(src, filepath.Join(report.Folder, name), info); err != nil {
			return &CopyError{Op: OpCopy, Path: src, Err: err}
		}
		report.Copied = append(report.Copied, name)
		log.Info().Str("file", name).Msg("backed up file")
	}

	return nil
}

// HasBackupExtension reports whether name ends in one of [Extensions].
func HasBackupExtension(name string) bool {
	return slices.ContainsFunc(Extensions, func(ext string) bool {
		return strings.HasSuffix(name, ext)
	})
}

// Succeeded reports whether a run finished without error.
func Succeeded(err error) bool {
	return err == nil
}

// copyFile copies src to dst and then applies the permission bits and
// modification time recorded in info.
func copyFile(src, dst string, info os.FileInfo) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err = io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err = out.Close(); err != nil {
		return err
	}

	if err = os.Chmod(dst, info.Mode().Perm()); err != nil {
		return err
	}

	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}
