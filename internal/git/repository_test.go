package git

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bashhack/committer/internal/testutil"
)

func TestIsRepository(t *testing.T) {
	repo := testutil.NewRepo(t)

	nested := filepath.Join(repo.WorkTree, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	tests := map[string]struct {
		path     string
		expected bool
	}{
		"WorkTreeRoot": {path: repo.WorkTree, expected: true},
		"NestedDir":    {path: nested, expected: true},
		"PlainDir":     {path: t.TempDir(), expected: false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			ok, err := IsRepository(tc.path)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, ok)
		})
	}
}

func TestCurrentBranchUnborn(t *testing.T) {
	repo := testutil.NewRepo(t)

	branch, err := CurrentBranch(repo.WorkTree)
	require.NoError(t, err)
	assert.Equal(t, repo.Branch, branch)
	assert.NotEmpty(t, branch)
}

func TestCurrentBranchOutsideRepository(t *testing.T) {
	t.Parallel()

	_, err := CurrentBranch(t.TempDir())
	assert.Error(t, err)
}
