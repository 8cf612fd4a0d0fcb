package errors

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	originalErr := New("original error")
	wrappedErr := Wrap(originalErr, "wrapped message")

	assert.True(t, Is(wrappedErr, originalErr))
	assert.Equal(t, "wrapped message: original error", wrappedErr.Error())
	assert.Nil(t, Wrap(nil, "nothing to wrap"))
}

func TestWrapf(t *testing.T) {
	originalErr := New("original error")
	wrappedErr := Wrapf(originalErr, "wrapped message with %s", "format")

	assert.True(t, Is(wrappedErr, originalErr))
	assert.Equal(t, "wrapped message with format: original error", wrappedErr.Error())
}

func TestJoin(t *testing.T) {
	first := New("first")
	second := New("second")

	assert.NoError(t, Join(nil, nil))

	joined := Join(first, nil, second)
	require.Error(t, joined)
	assert.True(t, Is(joined, first))
	assert.True(t, Is(joined, second))
}

func TestConfigError(t *testing.T) {
	err := errors.New("invalid value")
	configErr := NewConfigError("commit_schedule", -1, err)

	assert.Equal(t, "configuration error for commit_schedule = -1: invalid value", configErr.Error())
	assert.True(t, errors.Is(configErr, err))

	configErr = NewConfigError("file", nil, err)
	assert.Equal(t, "configuration error for file: invalid value", configErr.Error())
}

func TestIOError(t *testing.T) {
	ioErr := NewIOError("read", "notes.txt", fs.ErrPermission)

	assert.Contains(t, ioErr.Error(), "failed to read notes.txt")
	assert.True(t, errors.Is(ioErr, ErrFileAccess))
	assert.True(t, errors.Is(ioErr, fs.ErrPermission))
}

func TestToolLaunchError(t *testing.T) {
	cause := errors.New("executable file not found in $PATH")
	launchErr := NewToolLaunchError("git", []string{"add", "."}, cause)

	assert.Equal(t, "failed to run git add .: failed to launch version-control tool: executable file not found in $PATH", launchErr.Error())
	assert.True(t, errors.Is(launchErr, ErrToolLaunch))
	assert.True(t, errors.Is(launchErr, cause))
	assert.False(t, errors.Is(launchErr, ErrOperationFailed))
}

func TestOperationError(t *testing.T) {
	tests := map[string]struct {
		output   string
		expected string
	}{
		"WithOutput": {
			output:   "fatal: not a git repository\n",
			expected: "git add failed (exit status 128): fatal: not a git repository: version-control operation failed",
		},
		"WithoutOutput": {
			output:   "",
			expected: "git add failed (exit status 1): version-control operation failed",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			code := 1
			if tc.output != "" {
				code = 128
			}
			opErr := NewOperationError("add", []string{"."}, code, tc.output)

			assert.Equal(t, tc.expected, opErr.Error())
			assert.True(t, errors.Is(opErr, ErrOperationFailed))
			assert.False(t, errors.Is(opErr, ErrToolLaunch))

			var target *OperationError
			require.True(t, As(opErr, &target))
			assert.Equal(t, code, target.ExitCode)
		})
	}
}

func TestLockError(t *testing.T) {
	err := errors.New("file not found")
	lockErr := NewLockError("/tmp/lock.file", 1234, err)

	assert.Equal(t, "lock error with file /tmp/lock.file (PID: 1234): file not found", lockErr.Error())

	lockErr = NewLockError("/tmp/lock.file", 0, err)
	assert.Equal(t, "lock error with file /tmp/lock.file: file not found", lockErr.Error())
	assert.True(t, errors.Is(lockErr, err))
}

func TestSentinelsThroughWrap(t *testing.T) {
	wrapped := Wrap(NewConfigError("settings", nil, ErrInvalidConfiguration), "startup")

	assert.True(t, Is(wrapped, ErrInvalidConfiguration))

	var cfgErr *ConfigError
	assert.True(t, As(wrapped, &cfgErr))
	assert.Equal(t, "settings", cfgErr.Parameter)
}
