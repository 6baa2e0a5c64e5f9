package backup

import "errors"

// Operations reported by [CopyError].
const (
	OpRead  = "read"
	OpMkdir = "mkdir"
	OpCopy  = "copy"
)

// ErrInterrupted is returned when the context is cancelled between copies.
var ErrInterrupted = errors.New("backup interrupted")

// CopyError records the operation and path that aborted a backup run.
type CopyError struct {
	Op   string
	Path string
	Err  error
}

func (e *CopyError) Error() string {
	return "backup " + e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *CopyError) Unwrap() error {
	return e.Err
}
