package git

import (
	"context"
	"strings"

	"github.com/bashhack/committer/internal/logger"
)

// CommitPrefix starts every commit message created by committer.
const CommitPrefix = "[committer] commit"

// CommitMessage returns the commit message for an identifier:
// "[committer] commit #<id>".
func CommitMessage(id string) string {
	return CommitPrefix + " #" + id
}

// Invoker runs the three version-control operations of an iteration against
// one work tree. Each operation is a single git invocation with a fixed
// argument list; nil means the command exited with status zero.
type Invoker struct {
	// repoPath is the work tree passed to git with -C
	repoPath string

	// logger records every attempted invocation
	logger logger.Logger

	// executor runs git and classifies failures
	executor CommandExecutor
}

// NewInvoker creates an Invoker backed by the os/exec executor.
func NewInvoker(repoPath string, log logger.Logger) *Invoker {
	return NewInvokerWithExecutor(repoPath, log, NewExecExecutor())
}

// NewInvokerWithExecutor creates an Invoker with a custom executor.
func NewInvokerWithExecutor(repoPath string, log logger.Logger, executor CommandExecutor) *Invoker {
	return &Invoker{
		repoPath: repoPath,
		logger:   log,
		executor: executor,
	}
}

// Stage marks every working-tree change for the next commit (git add .).
func (i *Invoker) Stage(ctx context.Context) error {
	return i.runGitCommand(ctx, "add", ".")
}

// Commit records the staged changes with message (git commit -m <message>).
func (i *Invoker) Commit(ctx context.Context, message string) error {
	return i.runGitCommand(ctx, "commit", "-m", message)
}

// Publish pushes to the given remote and branch (git push <remote> <branch>).
func (i *Invoker) Publish(ctx context.Context, remote, branch string) error {
	return i.runGitCommand(ctx, "push", remote, branch)
}

// runGitCommand executes a git command in the repository directory with context.
func (i *Invoker) runGitCommand(ctx context.Context, args ...string) error {
	i.logger.Info("Running: git %s", strings.Join(args, " "))

	var allArgs []string
	if i.repoPath != "" {
		allArgs = append(allArgs, "-C", i.repoPath)
	}
	allArgs = append(allArgs, args...)

	return i.executor.ExecuteWithContext(ctx, "git", allArgs...)
}
