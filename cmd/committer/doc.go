// Package main implements committer, a tool that keeps a repository's
// history moving.
//
// On start committer reads committer.json (falling back to the legacy
// comitter.json), then repeats one cycle until a step fails or it is
// interrupted:
//
//  1. edit the target file: truncate it at a random byte or append a fresh
//     six-character identifier followed by a space
//  2. git add .
//  3. git commit -m "[committer] commit #<identifier>"
//  4. git push <remote_origin_url> <branch_name>
//  5. sleep until commit_schedule minutes (or a random 5-60 minutes) have
//     passed since the cycle began
//
// # Settings File
//
//	{
//	  "remote_origin_url": "origin",
//	  "branch_name": "main",
//	  "file_path": "f.txt",
//	  "commit_schedule": 10,
//	  "random_schedule": false
//	}
//
// A relative file_path is resolved inside the repository.
//
// # Basic Usage
//
//	committer                       # Run with ./committer.json in the current repository
//	committer -c ~/bot.json         # Use another settings file
//	committer --repo ~/src/notes    # Operate on another work tree
//	committer --once                # Run one cycle and exit
//
// # Configuration Options
//
//	-c, --config       Settings file (env: COMMITTER_CONFIG)
//	--repo             Git work tree (env: COMMITTER_REPO_PATH)
//	--quiet            Hide informational messages (env: COMMITTER_VERBOSE=false)
//	--non-interactive  Do not wait for a key press after a failure (env: COMMITTER_NON_INTERACTIVE)
//	--once             Run a single cycle
//	--debug            Enable structured logging to a file (env: COMMITTER_DEBUG)
//	--log-file         Log file path (env: COMMITTER_LOG_FILE)
//	--version          Print version information
//
// # Exit Status
//
// A failed step is logged, "Press any key to exit..." is shown and committer
// exits with status 1 once a line is entered. Startup errors and a git binary
// that cannot be launched exit 1 immediately. SIGINT, SIGTERM and SIGHUP stop
// the loop, print a session summary and exit 0.
//
// Only one committer may edit a given target file at a time; a second
// instance fails to acquire the lock and exits.
package main
