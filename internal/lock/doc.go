// Package lock keeps a second committer instance away from a target file
// that is already being edited.
//
// A Locker combines an O_EXCL-created lock file, an exclusive non-blocking
// flock on it and the owner's PID written inside. The lock file name is
// derived from a hash of the target file's absolute path:
//
//	$TMPDIR/committer-<hash>.lock
//
// When the flock is held by a live process Acquire fails with a LockError
// wrapping errors.ErrAlreadyRunning. A lock file whose flock is free, or whose
// recorded PID is dead, is taken over.
//
// Usage:
//
//	locker, err := lock.New("/path/to/repo/f.txt")
//	if err != nil {
//	    // Handle error
//	}
//	if err := locker.Acquire(); err != nil {
//	    // Another instance is running
//	}
//	defer locker.Release()
//
// A Locker is not safe for concurrent use. Only Unix-like systems are
// supported.
package lock
