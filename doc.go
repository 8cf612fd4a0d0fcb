// Package committer keeps a git repository's history moving.
//
// committer reads a small JSON settings file, then repeatedly edits one
// target file with a pseudo-random change, commits it with a message of the
// form "[committer] commit #<identifier>", pushes to the configured remote
// and branch, and sleeps for a fixed or random interval.
//
// # Quick Start
//
//	# Navigate to your Git repository
//	cd /path/to/your/repo
//
//	# Describe what to edit and where to push
//	cat > committer.json <<EOF
//	{
//	  "remote_origin_url": "origin",
//	  "branch_name": "main",
//	  "file_path": "activity.txt",
//	  "commit_schedule": 30,
//	  "random_schedule": false
//	}
//	EOF
//
//	# Start committer
//	committer
//
//	# Press Ctrl+C to stop and view the session summary
//
// # Failure Handling
//
// Every failure stops the run. There is no retry. After a failed edit, add,
// commit or push, committer prints the error and waits for Enter before
// exiting.
//
// # Package Layout
//
//   - cmd/committer: command-line entry point
//   - internal/config: settings file and runtime options
//   - internal/scheduler: the main loop and delay computation
//   - internal/mutate: the target-file edit
//   - internal/idgen: identifiers
//   - internal/git: git invocations and repository inspection
//   - internal/lock: single-instance lock per target file
//   - internal/prompt: the acknowledgment gate
//   - internal/logger, internal/errors: logging and error types
package committer
