package scm

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/spf13/afero"
)

// GitRepo resolves historical content through a git object store and
// workspace content through an afero filesystem rooted at the repository.
type GitRepo struct {
	repo *git.Repository
	fs   afero.Fs
	root string
}

// Open opens the repository at root for plotting.
func Open(root string) (*GitRepo, error) {
	repo, err := git.PlainOpen(root)
	if err != nil {
		return nil, fmt.Errorf("failed to open repository at '%s': %w", root, err)
	}
	return NewGitRepo(repo, afero.NewBasePathFs(afero.NewOsFs(), root), root), nil
}

// NewGitRepo wires an already-open repository with the filesystem used for
// workspace reads.
func NewGitRepo(repo *git.Repository, fs afero.Fs, root string) *GitRepo {
	return &GitRepo{repo: repo, fs: fs, root: root}
}

// Root returns the repository root path.
func (r *GitRepo) Root() string {
	return r.root
}

func (r *GitRepo) Resolve(_ context.Context, path, rev string) ([]byte, error) {
	if rev == WorkspaceRevision {
		content, err := afero.ReadFile(r.fs, path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("'%s' at '%s': %w", path, rev, ErrNotFound)
			}
			return nil, fmt.Errorf("failed to read '%s' from workspace: %w", path, err)
		}
		return content, nil
	}

	hash, err := r.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		// an unresolvable revision is a history gap, not an environment failure
		if errors.Is(err, plumbing.ErrReferenceNotFound) || errors.Is(err, plumbing.ErrObjectNotFound) {
			return nil, fmt.Errorf("'%s' at '%s': %w", path, rev, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to resolve revision '%s': %w", rev, err)
	}
	commit, err := r.repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("failed to load commit for revision '%s': %w", rev, err)
	}
	file, err := commit.File(path)
	if err != nil {
		if errors.Is(err, object.ErrFileNotFound) {
			return nil, fmt.Errorf("'%s' at '%s': %w", path, rev, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read '%s' at revision '%s': %w", path, rev, err)
	}
	content, err := file.Contents()
	if err != nil {
		return nil, fmt.Errorf("failed to read '%s' at revision '%s': %w", path, rev, err)
	}
	return []byte(content), nil
}

func (r *GitRepo) IsModified(_ context.Context) (bool, error) {
	worktree, err := r.repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("failed to access worktree: %w", err)
	}
	status, err := worktree.Status()
	if err != nil {
		return false, fmt.Errorf("failed to read worktree status: %w", err)
	}
	return !status.IsClean(), nil
}
