package errors

import (
	"errors"
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Sentinel errors that can be used with errors.Is() for error type checking
var (
	// ErrInvalidConfiguration indicates a missing or malformed settings file
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrFileAccess indicates the target file could not be read or written
	ErrFileAccess = errors.New("target file access failed")

	// ErrToolLaunch indicates the version-control tool could not be started at all
	ErrToolLaunch = errors.New("failed to launch version-control tool")

	// ErrOperationFailed indicates a version-control command exited with a non-zero status
	ErrOperationFailed = errors.New("version-control operation failed")

	// ErrNotGitRepository indicates the working directory is not inside a git work tree
	ErrNotGitRepository = errors.New("not a git repository")

	// ErrLockAcquisitionFailure indicates a lock file could not be acquired
	ErrLockAcquisitionFailure = errors.New("failed to acquire lock")

	// ErrAlreadyRunning indicates another committer instance is working on the same file
	ErrAlreadyRunning = errors.New("another committer instance is already running for this file")
)

// New creates a new error with the given message.
func New(message string) error {
	return errors.New(message)
}

// Errorf creates a new formatted error.
func Errorf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// Wrap annotates err with a message and a stack trace.
// Returns nil if err is nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// Wrapf annotates err with a formatted message and a stack trace.
// Returns nil if err is nil.
func Wrapf(err error, format string, args ...interface{}) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// Is reports whether target is in err's chain.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join combines several errors into one, dropping nils.
func Join(errs ...error) error {
	return multierr.Combine(errs...)
}

// ConfigError represents an error in the settings file.
// It includes the parameter name, its value if available, and the underlying error.
type ConfigError struct {
	Parameter string
	Value     interface{}
	Err       error
}

// Error implements the error interface with details about the invalid configuration.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("configuration error for %s = %v: %v", e.Parameter, e.Value, e.Err)
	}
	return fmt.Sprintf("configuration error for %s: %v", e.Parameter, e.Err)
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError with the given parameters.
func NewConfigError(parameter string, value interface{}, err error) *ConfigError {
	return &ConfigError{
		Parameter: parameter,
		Value:     value,
		Err:       err,
	}
}

// IOError represents a failure reading or writing the target file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError. The cause is wrapped around ErrFileAccess
// so callers can match on either.
func NewIOError(op, path string, err error) *IOError {
	return &IOError{
		Op:   op,
		Path: path,
		Err:  fmt.Errorf("%w: %w", ErrFileAccess, err),
	}
}

// ToolLaunchError is returned when the external tool could not be started.
// It is an environment fault, not an operation result.
type ToolLaunchError struct {
	Tool string
	Args []string
	Err  error
}

// Error implements the error interface.
func (e *ToolLaunchError) Error() string {
	return fmt.Sprintf("failed to run %s %s: %v", e.Tool, strings.Join(e.Args, " "), e.Err)
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *ToolLaunchError) Unwrap() error {
	return e.Err
}

// NewToolLaunchError creates a new ToolLaunchError wrapping ErrToolLaunch.
func NewToolLaunchError(tool string, args []string, err error) *ToolLaunchError {
	return &ToolLaunchError{
		Tool: tool,
		Args: args,
		Err:  fmt.Errorf("%w: %w", ErrToolLaunch, err),
	}
}

// OperationError represents a version-control command that ran and exited
// with a non-zero status. It captures the command details, exit code and
// whatever the command wrote to stderr.
type OperationError struct {
	Operation string
	Args      []string
	ExitCode  int
	Output    string
	Err       error
}

// Error implements the error interface with a detailed, user-friendly error message.
func (e *OperationError) Error() string {
	msg := fmt.Sprintf("git %s failed (exit status %d)", e.Operation, e.ExitCode)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg = fmt.Sprintf("%s: %s", msg, out)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *OperationError) Unwrap() error {
	return e.Err
}

// NewOperationError creates a new OperationError wrapping ErrOperationFailed.
func NewOperationError(operation string, args []string, exitCode int, output string) *OperationError {
	return &OperationError{
		Operation: operation,
		Args:      args,
		ExitCode:  exitCode,
		Output:    output,
		Err:       ErrOperationFailed,
	}
}

// LockError represents an error that occurred when interacting with file locks.
// It includes the lock file path, process ID if available, and underlying error.
type LockError struct {
	LockFile string
	PID      int
	Err      error
}

// Error implements the error interface with details about the lock file and process.
func (e *LockError) Error() string {
	if e.PID > 0 {
		return fmt.Sprintf("lock error with file %s (PID: %d): %v", e.LockFile, e.PID, e.Err)
	}
	return fmt.Sprintf("lock error with file %s: %v", e.LockFile, e.Err)
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *LockError) Unwrap() error {
	return e.Err
}

// NewLockError creates a new LockError with the given parameters.
func NewLockError(lockFile string, pid int, err error) *LockError {
	return &LockError{
		LockFile: lockFile,
		PID:      pid,
		Err:      err,
	}
}
