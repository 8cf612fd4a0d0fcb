//go:build integration

package integration

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bashhack/committer/internal/testutil"
)

func requireIntegration(t *testing.T) {
	t.Helper()
	if os.Getenv("COMMITTER_INTEGRATION_TESTS") != "1" {
		t.Skip("Skipping integration test. Set COMMITTER_INTEGRATION_TESTS=1 to run")
	}
	testutil.RequireGit(t)
}

// buildCommitter compiles the binary once per package run.
func buildCommitter(t *testing.T) string {
	t.Helper()

	bin := filepath.Join("..", "..", "build", "committer")
	if _, err := os.Stat(bin); os.IsNotExist(err) {
		buildCmd := exec.Command("go", "build", "-o", bin, "../../cmd/committer")
		out, err := buildCmd.CombinedOutput()
		require.NoError(t, err, "Failed to build committer binary: %s", out)
	}

	abs, err := filepath.Abs(bin)
	require.NoError(t, err)
	return abs
}

// writeSettings writes committer.json into the work tree and returns its path.
func writeSettings(t *testing.T, repo testutil.Repo, body string) string {
	t.Helper()

	path := filepath.Join(repo.WorkTree, "committer.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// committerCommand prepares a committer run inside the work tree with a
// private lock and log location.
func committerCommand(t *testing.T, bin string, repo testutil.Repo, args ...string) *exec.Cmd {
	t.Helper()

	cmd := exec.Command(bin, args...)
	cmd.Dir = repo.WorkTree
	cmd.Env = append(os.Environ(),
		"TMPDIR="+t.TempDir(),
		"XDG_DATA_HOME="+t.TempDir(),
	)
	return cmd
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		return exitErr.ExitCode()
	}
	return -1
}
