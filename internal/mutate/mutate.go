// Package mutate applies one pseudo-random edit to the target file per
// iteration so there is always something to commit.
package mutate

import (
	"io/fs"

	"github.com/spf13/afero"

	committerErrors "github.com/bashhack/committer/internal/errors"
	"github.com/bashhack/committer/internal/random"
)

// Kind identifies which edit was applied.
type Kind int

const (
	// Appended means the identifier and a trailing space were added.
	Appended Kind = iota
	// Truncated means the content was cut at a random byte offset.
	Truncated
)

func (k Kind) String() string {
	switch k {
	case Appended:
		return "append"
	case Truncated:
		return "truncate"
	default:
		return "unknown"
	}
}

// Result describes one applied edit.
type Result struct {
	Kind         Kind
	LengthBefore int
	LengthAfter  int
}

// Mutator edits a single file through an afero filesystem.
type Mutator struct {
	fs   afero.Fs
	rand random.Source
	perm fs.FileMode
}

// New creates a Mutator. A nil filesystem means the OS filesystem.
func New(filesystem afero.Fs, src random.Source) *Mutator {
	if filesystem == nil {
		filesystem = afero.NewOsFs()
	}
	if src == nil {
		src = random.Default()
	}
	return &Mutator{fs: filesystem, rand: src, perm: 0o644}
}

// Apply reads path, edits it and writes it back in full.
//
// A missing file counts as empty content. With probability 1/2, and only if
// the content is non-empty, the content is cut before a byte offset drawn
// uniformly from [0, len). Otherwise id followed by one space is appended.
// The cut is byte-level and can split a multi-byte character.
func (m *Mutator) Apply(path, id string) (Result, error) {
	content, err := afero.ReadFile(m.fs, path)
	if err != nil {
		if !committerErrors.Is(err, fs.ErrNotExist) {
			return Result{}, committerErrors.NewIOError("read", path, err)
		}
		content = nil
	}

	res := Result{LengthBefore: len(content)}

	truncate := m.rand.IntN(2) == 0
	if truncate && len(content) > 0 {
		cut := m.rand.IntN(len(content))
		content = content[:cut]
		res.Kind = Truncated
	} else {
		content = append(content, id+" "...)
		res.Kind = Appended
	}
	res.LengthAfter = len(content)

	if err := afero.WriteFile(m.fs, path, content, m.perm); err != nil {
		return Result{}, committerErrors.NewIOError("write", path, err)
	}
	return res, nil
}
