package lock

import (
	"crypto/sha256"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"

	committerErrors "github.com/bashhack/committer/internal/errors"
)

// Locker prevents two committer instances from editing the same target file.
type Locker struct {
	lockFile string
	lockFd   *os.File
	pid      int
	acquired bool
}

// New creates a Locker for the target file, with its lock file in the
// system's temporary directory.
func New(targetPath string) (*Locker, error) {
	return NewInDir(os.TempDir(), targetPath)
}

// NewInDir creates a Locker whose lock file lives in dir.
func NewInDir(dir, targetPath string) (*Locker, error) {
	abs, err := filepath.Abs(targetPath)
	if err != nil {
		return nil, committerErrors.NewLockError("", 0,
			committerErrors.Wrap(err, "failed to resolve target path"))
	}

	hash := fmt.Sprintf("%x", sha256.Sum256([]byte(abs)))[:16]

	return &Locker{
		lockFile: filepath.Join(dir, fmt.Sprintf("committer-%s.lock", hash)),
		pid:      os.Getpid(),
	}, nil
}

// LockFile returns the path of the lock file.
func (l *Locker) LockFile() string {
	return l.lockFile
}

// Acquired reports whether the lock is currently held.
func (l *Locker) Acquired() bool {
	return l.acquired
}

// Acquire takes the lock. An existing lock file is reused when nobody holds
// its flock; a lock held by a dead process is removed and recreated.
func (l *Locker) Acquire() error {
	err := l.lockAndStamp(os.O_CREATE | os.O_EXCL | os.O_RDWR)
	if err == nil || !committerErrors.Is(err, fs.ErrExist) {
		return err
	}

	err = l.lockAndStamp(os.O_RDWR)
	if err == nil {
		return nil
	}
	if committerErrors.Is(err, unix.EWOULDBLOCK) || committerErrors.Is(err, unix.EAGAIN) {
		return l.handleBlockedLock()
	}
	return err
}

// lockAndStamp opens the lock file with flags, takes a non-blocking flock and
// writes our PID into it. Open errors keep their cause so callers can match
// fs.ErrExist.
func (l *Locker) lockAndStamp(flags int) error {
	fd, err := os.OpenFile(l.lockFile, flags, 0o666)
	if err != nil {
		return committerErrors.NewLockError(l.lockFile, 0, err)
	}
	l.lockFd = fd

	if err := unix.Flock(int(fd.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		l.closeFileDescriptor()
		return committerErrors.NewLockError(l.lockFile, 0,
			committerErrors.Wrap(err, "failed to acquire lock"))
	}

	if err := l.writePid(); err != nil {
		if releaseErr := l.Release(); releaseErr != nil {
			return committerErrors.Join(err, releaseErr)
		}
		return err
	}

	l.acquired = true
	return nil
}

// handleBlockedLock decides whether the holder of the lock is alive.
func (l *Locker) handleBlockedLock() error {
	otherPid, err := l.readLockFilePid()
	if err != nil {
		return committerErrors.NewLockError(l.lockFile, 0,
			committerErrors.Wrap(err, "another committer instance is running, but couldn't identify its PID"))
	}

	if isProcessRunning(otherPid) {
		return committerErrors.NewLockError(l.lockFile, otherPid, committerErrors.ErrAlreadyRunning)
	}

	if err := os.Remove(l.lockFile); err != nil {
		return committerErrors.NewLockError(l.lockFile, otherPid,
			committerErrors.Wrapf(err, "found stale lock file from PID %d, but failed to remove it", otherPid))
	}

	return l.lockAndStamp(os.O_CREATE | os.O_EXCL | os.O_RDWR)
}

func (l *Locker) writePid() error {
	if err := l.lockFd.Truncate(0); err != nil {
		return committerErrors.NewLockError(l.lockFile, l.pid,
			committerErrors.Wrap(err, "failed to truncate lock file"))
	}
	if _, err := l.lockFd.WriteAt([]byte(strconv.Itoa(l.pid)), 0); err != nil {
		return committerErrors.NewLockError(l.lockFile, l.pid,
			committerErrors.Wrap(err, "failed to write PID to lock file"))
	}
	return nil
}

func (l *Locker) readLockFilePid() (int, error) {
	data, err := os.ReadFile(l.lockFile)
	if err != nil {
		return 0, committerErrors.Wrap(err, "failed to read lock file")
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, committerErrors.Wrap(err, "invalid PID in lock file")
	}
	return pid, nil
}

func (l *Locker) closeFileDescriptor() {
	if l.lockFd != nil {
		_ = l.lockFd.Close()
		l.lockFd = nil
	}
}

// isProcessRunning checks if a process exists using signal 0
func isProcessRunning(pid int) bool {
	if pid <= 0 {
		return false
	}
	err := unix.Kill(pid, 0)
	return err == nil || err == unix.EPERM
}

// Release unlocks, closes and removes the lock file. It is a no-op when the
// lock is not held. Every cleanup step is attempted; the first failure is
// returned.
func (l *Locker) Release() error {
	if l.lockFd == nil {
		return nil
	}

	var err error

	if flockErr := unix.Flock(int(l.lockFd.Fd()), unix.LOCK_UN); flockErr != nil {
		err = committerErrors.NewLockError(l.lockFile, l.pid,
			committerErrors.Wrap(flockErr, "failed to release lock"))
	}

	if closeErr := l.lockFd.Close(); closeErr != nil && err == nil {
		err = committerErrors.NewLockError(l.lockFile, l.pid,
			committerErrors.Wrap(closeErr, "failed to close lock file"))
	}

	l.lockFd = nil
	l.acquired = false

	if removeErr := os.Remove(l.lockFile); removeErr != nil && !os.IsNotExist(removeErr) && err == nil {
		err = committerErrors.NewLockError(l.lockFile, l.pid,
			committerErrors.Wrap(removeErr, "failed to remove lock file"))
	}

	return err
}
