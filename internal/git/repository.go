package git

import (
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	committerErrors "github.com/bashhack/committer/internal/errors"
)

// IsRepository checks if the given path is inside a git work tree.
// Returns (false, nil) when no repository is found in path or any parent,
// and (false, err) when the repository exists but cannot be read.
func IsRepository(path string) (bool, error) {
	_, err := openRepository(path)
	if err == nil {
		return true, nil
	}
	if committerErrors.Is(err, gogit.ErrRepositoryNotExists) {
		return false, nil
	}
	return false, err
}

// CurrentBranch returns the short name of the branch HEAD points at.
// It works on an unborn branch (no commits yet) and returns an empty string
// when HEAD is detached.
func CurrentBranch(path string) (string, error) {
	repo, err := openRepository(path)
	if err != nil {
		return "", err
	}

	head, err := repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return "", committerErrors.Wrap(err, "failed to read HEAD")
	}
	if head.Type() != plumbing.SymbolicReference {
		return "", nil
	}
	return head.Target().Short(), nil
}

func openRepository(path string) (*gogit.Repository, error) {
	return gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{DetectDotGit: true})
}
