// Package testutil holds helpers shared by tests that need a real git work
// tree and remote.
package testutil

import (
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Repo is a temporary work tree wired to a bare remote on disk.
type Repo struct {
	WorkTree string
	Remote   string
	Branch   string
}

// RequireGit skips the test when the git executable is unavailable.
func RequireGit(t testing.TB) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not found in PATH")
	}
}

// NewRepo creates a work tree with a local identity and an empty bare remote.
// The work tree's branch is unborn until the first commit.
func NewRepo(t testing.TB) Repo {
	t.Helper()
	RequireGit(t)

	root := t.TempDir()
	workTree := filepath.Join(root, "work")
	remote := filepath.Join(root, "remote.git")

	repo, err := gogit.PlainInit(workTree, false)
	if err != nil {
		t.Fatalf("Failed to init work tree: %v", err)
	}

	cfg, err := repo.Config()
	if err != nil {
		t.Fatalf("Failed to read repository config: %v", err)
	}
	cfg.User.Name = "Committer Test"
	cfg.User.Email = "committer@example.com"
	cfg.Raw.Section("commit").SetOption("gpgsign", "false")
	if err := repo.SetConfig(cfg); err != nil {
		t.Fatalf("Failed to write repository config: %v", err)
	}

	if _, err := gogit.PlainInit(remote, true); err != nil {
		t.Fatalf("Failed to init bare remote: %v", err)
	}

	head, err := repo.Reference(plumbing.HEAD, false)
	if err != nil {
		t.Fatalf("Failed to read HEAD: %v", err)
	}

	return Repo{
		WorkTree: workTree,
		Remote:   remote,
		Branch:   head.Target().Short(),
	}
}

// RemoteHead returns the commit the remote's branch points at, or nil when
// the branch was never pushed.
func (r Repo) RemoteHead(t testing.TB) *object.Commit {
	t.Helper()

	remote, err := gogit.PlainOpen(r.Remote)
	if err != nil {
		t.Fatalf("Failed to open remote: %v", err)
	}

	ref, err := remote.Reference(plumbing.NewBranchReferenceName(r.Branch), true)
	if err != nil {
		return nil
	}

	commit, err := remote.CommitObject(ref.Hash())
	if err != nil {
		t.Fatalf("Failed to read remote commit: %v", err)
	}
	return commit
}

// CommitMessages returns the subjects of the work tree's history, newest first.
// An unborn branch yields no messages.
func (r Repo) CommitMessages(t testing.TB) []string {
	t.Helper()

	repo, err := gogit.PlainOpen(r.WorkTree)
	if err != nil {
		t.Fatalf("Failed to open work tree: %v", err)
	}

	if _, err := repo.Head(); err != nil {
		return nil
	}

	iter, err := repo.Log(&gogit.LogOptions{})
	if err != nil {
		t.Fatalf("Failed to read log: %v", err)
	}

	var messages []string
	_ = iter.ForEach(func(c *object.Commit) error {
		messages = append(messages, strings.TrimSpace(c.Message))
		return nil
	})
	return messages
}
