package scm

import (
	"context"
	"errors"
)

const (
	// WorkspaceRevision is the reserved label for the live, possibly
	// uncommitted working tree.
	WorkspaceRevision = "workspace"
	// HeadRevision names the most recent checkpoint.
	HeadRevision = "HEAD"
)

// ErrNotFound reports that a file does not exist at the requested revision.
// It is distinguishable from storage failures so history gaps can be
// tolerated while environment errors propagate.
var ErrNotFound = errors.New("file not found at revision")

// Repo resolves metric file content across revisions and answers the
// dirty-state query used for implicit revision defaulting.
type Repo interface {
	// Resolve returns the content of path as it existed at rev. The
	// WorkspaceRevision label reads the live working tree.
	Resolve(ctx context.Context, path, rev string) ([]byte, error)
	// IsModified reports whether the working tree has uncommitted changes.
	IsModified(ctx context.Context) (bool, error)
}
