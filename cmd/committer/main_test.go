package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bashhack/committer/internal/config"
	committerErrors "github.com/bashhack/committer/internal/errors"
)

func TestExecuteVersion(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, scenarioSettings)
	env.app.Options.VersionInfo = config.VersionInfo{Version: "1.0.0", Commit: "abc123", Date: "2024-01-01"}

	code := execute(context.Background(), env.app, []string{"--version"})

	assert.Equal(t, 0, code)
	assert.Equal(t, "committer 1.0.0 (abc123) built on 2024-01-01\n", env.stdout.String())
	assert.Empty(t, env.executor.Calls)
}

func TestExecuteExitCodes(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		settings     string
		args         []string
		setup        func(env *testEnv)
		expectedCode int
		stderr       string
		summary      bool
	}{
		"OnceSucceeds": {
			settings:     scenarioSettings,
			expectedCode: 0,
		},
		"SignalStopsLoop": {
			settings: scenarioSettings,
			setup: func(env *testEnv) {
				env.app.Runner = &MockRunner{RunErr: context.Canceled}
			},
			expectedCode: 0,
			summary:      true,
		},
		"InvalidSettings": {
			settings:     `{"remote_origin_url": 1}`,
			expectedCode: 1,
			stderr:       "❌ Error: configuration error",
		},
		"UnknownFlag": {
			settings:     scenarioSettings,
			args:         []string{"--no-such-flag"},
			expectedCode: 1,
			stderr:       "unknown flag",
		},
		"UnexpectedArgument": {
			settings:     scenarioSettings,
			args:         []string{"extra"},
			expectedCode: 1,
			stderr:       "❌ Error:",
		},
		"StepFailureNotRepeated": {
			settings: scenarioSettings,
			setup: func(env *testEnv) {
				env.executor.FailOn["push"] = committerErrors.NewOperationError("push", nil, 1, "rejected")
			},
			expectedCode: 1,
		},
		"GitCannotLaunch": {
			settings: scenarioSettings,
			setup: func(env *testEnv) {
				env.executor.FailOn["add"] = committerErrors.NewToolLaunchError("git", []string{"add", "."}, assert.AnError)
			},
			expectedCode: 1,
			stderr:       "❌ Error: failed to stage changes",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv(t, tc.settings)
			if tc.setup != nil {
				tc.setup(env)
			}

			code := execute(context.Background(), env.app, tc.args)

			assert.Equal(t, tc.expectedCode, code)
			if tc.stderr != "" {
				assert.Contains(t, env.stderr.String(), tc.stderr)
			} else {
				assert.Empty(t, env.stderr.String())
			}
			if tc.summary {
				runner, ok := env.app.Runner.(*MockRunner)
				require.True(t, ok)
				assert.True(t, runner.SummaryCalled)
			}
			assert.True(t, env.locker.ReleaseCalled)
		})
	}
}

func TestExecuteFlagsOverrideOptions(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, scenarioSettings)
	env.app.Runner = &MockRunner{}

	code := execute(context.Background(), env.app, []string{"--quiet", "--repo", "/repo", "-c", "/repo/committer.json"})

	require.Equal(t, 0, code)
	assert.False(t, env.app.Options.Verbose)
	assert.Equal(t, "/repo/committer.json", env.app.Options.ConfigPath)
}
