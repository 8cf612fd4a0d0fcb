package git

import (
	"bytes"
	"context"
	"os/exec"

	committerErrors "github.com/bashhack/committer/internal/errors"
)

// CommandExecutor defines an interface for executing commands
type CommandExecutor interface {
	// ExecuteWithContext runs a command and reports how it ended.
	ExecuteWithContext(ctx context.Context, name string, args ...string) error
}

// ExecExecutor is the default implementation of CommandExecutor
// that delegates to the os/exec package.
//
// Errors are classified into two kinds:
//   - *errors.ToolLaunchError when the process could not be started
//   - *errors.OperationError when it ran and exited with a non-zero status,
//     carrying whatever the command wrote to stderr
type ExecExecutor struct{}

// NewExecExecutor creates a new ExecExecutor
func NewExecExecutor() *ExecExecutor {
	return &ExecExecutor{}
}

// ExecuteWithContext implements CommandExecutor.ExecuteWithContext
func (e *ExecExecutor) ExecuteWithContext(ctx context.Context, name string, args ...string) error {
	var stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	// A killed process on cancellation is shutdown, not a failed operation
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	var exitErr *exec.ExitError
	if committerErrors.As(err, &exitErr) {
		return committerErrors.NewOperationError(subcommand(args), args, exitErr.ExitCode(), stderr.String())
	}

	return committerErrors.NewToolLaunchError(name, args, err)
}

// subcommand skips git's global "-C <path>" option and returns the first
// remaining argument.
func subcommand(args []string) string {
	for i := 0; i < len(args); i++ {
		if args[i] == "-C" {
			i++
			continue
		}
		return args[i]
	}
	return ""
}
