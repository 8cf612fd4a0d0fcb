package lock

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	committerErrors "github.com/bashhack/committer/internal/errors"
)

func newTestLocker(t *testing.T, dir, target string) *Locker {
	t.Helper()

	locker, err := NewInDir(dir, target)
	require.NoError(t, err)
	t.Cleanup(func() { _ = locker.Release() })
	return locker
}

func TestNewDerivesLockFileFromTarget(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := newTestLocker(t, dir, "/repo/a.txt")
	b := newTestLocker(t, dir, "/repo/b.txt")
	again := newTestLocker(t, dir, "/repo/a.txt")

	assert.Equal(t, dir, filepath.Dir(a.LockFile()))
	assert.Regexp(t, `^committer-[0-9a-f]{16}\.lock$`, filepath.Base(a.LockFile()))
	assert.NotEqual(t, a.LockFile(), b.LockFile())
	assert.Equal(t, a.LockFile(), again.LockFile())
}

func TestNewUsesTempDir(t *testing.T) {
	t.Parallel()

	locker, err := New("/repo/f.txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean(os.TempDir()), filepath.Dir(locker.LockFile()))
}

func TestAcquireAndRelease(t *testing.T) {
	t.Parallel()

	locker := newTestLocker(t, t.TempDir(), "/repo/f.txt")

	require.NoError(t, locker.Acquire())
	assert.True(t, locker.Acquired())

	data, err := os.ReadFile(locker.LockFile())
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(os.Getpid()), string(data))

	require.NoError(t, locker.Release())
	assert.False(t, locker.Acquired())
	assert.NoFileExists(t, locker.LockFile())

	// releasing twice is harmless
	assert.NoError(t, locker.Release())
}

func TestAcquireWhileHeld(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	first := newTestLocker(t, dir, "/repo/f.txt")
	second := newTestLocker(t, dir, "/repo/f.txt")

	require.NoError(t, first.Acquire())

	err := second.Acquire()
	require.Error(t, err)
	assert.True(t, committerErrors.Is(err, committerErrors.ErrAlreadyRunning))

	var lockErr *committerErrors.LockError
	require.True(t, committerErrors.As(err, &lockErr))
	assert.Equal(t, os.Getpid(), lockErr.PID)
	assert.False(t, second.Acquired())

	require.NoError(t, first.Release())
	require.NoError(t, second.Acquire())
}

func TestAcquireOverStaleLockFile(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		content string
	}{
		"NonExistentPID":   {content: "999999"},
		"InvalidPIDFormat": {content: "not-a-pid"},
		"EmptyLockFile":    {content: ""},
		"CurrentPID":       {content: strconv.Itoa(os.Getpid())},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			locker := newTestLocker(t, t.TempDir(), "/repo/f.txt")
			require.NoError(t, os.WriteFile(locker.LockFile(), []byte(tc.content), 0o666))

			require.NoError(t, locker.Acquire())

			data, err := os.ReadFile(locker.LockFile())
			require.NoError(t, err)
			assert.Equal(t, strconv.Itoa(os.Getpid()), string(data))
		})
	}
}

func TestAcquireUnwritableDir(t *testing.T) {
	t.Parallel()

	locker := newTestLocker(t, filepath.Join(t.TempDir(), "missing"), "/repo/f.txt")

	err := locker.Acquire()
	require.Error(t, err)

	var lockErr *committerErrors.LockError
	assert.True(t, committerErrors.As(err, &lockErr))
}

func TestIsProcessRunning(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		pid      int
		expected bool
	}{
		"CurrentProcess": {pid: os.Getpid(), expected: true},
		"NegativePID":    {pid: -1, expected: false},
		"ZeroPID":        {pid: 0, expected: false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, isProcessRunning(tc.pid))
		})
	}
}
