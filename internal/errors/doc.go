// Package errors provides error handling utilities for the committer application.
//
// This package defines the sentinel errors and typed errors used throughout the
// application, so that every failure carries enough context to be logged once at
// the point where the run is aborted.
//
// # Error Types
//
//   - ConfigError: the settings file is missing, malformed, or out of range
//   - IOError: the target file could not be read or written
//   - ToolLaunchError: the git executable could not be started at all
//   - OperationError: a git command ran and exited with a non-zero status
//   - LockError: another instance holds the lock for the same target file
//
// Each typed error wraps a sentinel (ErrInvalidConfiguration, ErrFileAccess,
// ErrToolLaunch, ErrOperationFailed, ErrLockAcquisitionFailure), so callers can
// branch with errors.Is without caring about the concrete type.
//
// # Usage
//
//	if err != nil {
//	    return errors.Wrap(err, "failed to open settings")
//	}
//
//	var opErr *errors.OperationError
//	if errors.As(err, &opErr) {
//	    logger.Error("git %s exited with %d", opErr.Operation, opErr.ExitCode)
//	}
//
// Wrap and Wrapf attach a stack trace through github.com/pkg/errors; Join
// combines cleanup failures through go.uber.org/multierr.
package errors
