package models

import "time"

// BackupReport describes one run of the backup utility.
//
// On failure the report is still returned and lists the files that had been
// copied before the run was aborted.
type BackupReport struct {
	// RunID identifies the run in log entries.
	RunID string `json:"run_id"`
	// Folder is the timestamped directory files were copied into.
	Folder string `json:"folder"`
	// StartedAt is the clock reading the folder name was derived from.
	StartedAt time.Time `json:"started_at"`
	// Copied lists the names of files copied into Folder, in copy order.
	Copied []string `json:"copied"`
	// Skipped lists top-level entries of the source directory that did not
	// match a backed-up extension or were not regular files.
	Skipped []string `json:"skipped,omitempty"`
}
