// Package git runs the version-control side of a committer iteration.
//
// An Invoker issues the three git invocations of one iteration against a
// single work tree:
//
//	git add .
//	git commit -m "[committer] commit #<id>"
//	git push <remote_origin_url> <branch_name>
//
// Every invocation is logged as "Running: git <args>" before it starts.
// Success means the command exited with status zero. A command that ran and
// exited non-zero returns an *errors.OperationError; a command that could not
// be started at all returns an *errors.ToolLaunchError, which callers treat as
// fatal.
//
// Repository inspection (IsRepository, CurrentBranch) uses go-git and never
// shells out.
//
// # Usage
//
//	inv := git.NewInvoker("/path/to/repo", log)
//	if err := inv.Stage(ctx); err != nil {
//	    // Handle error
//	}
//	if err := inv.Commit(ctx, git.CommitMessage(id)); err != nil {
//	    // Handle error
//	}
//	if err := inv.Publish(ctx, "origin", "main"); err != nil {
//	    // Handle error
//	}
//
// # Concurrency Model
//
// An Invoker holds no mutable state and may be shared, but git itself does not
// tolerate concurrent writers on one work tree.
package git
