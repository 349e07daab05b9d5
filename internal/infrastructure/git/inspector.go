// Package git summarizes a working copy for the prompt using go-git.
//
// Only discovery failures are reported to callers. Every other lookup
// (worktree status, HEAD, tags, upstream, stash, operation state) degrades
// to the zero value of its field so a partly broken repository still renders.
package git

import (
	"context"
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/doeshing/sigil/internal/domain"
	"github.com/doeshing/sigil/internal/ports"
)

// Inspector implements ports.RepositoryInspector on top of go-git.
type Inspector struct {
	logger ports.Logger
}

// NewInspector builds an inspector that reports degraded lookups to logger.
func NewInspector(logger ports.Logger) *Inspector {
	return &Inspector{logger: logger}
}

// ComputeStatus discovers the repository enclosing dir and summarizes it.
func (i *Inspector) ComputeStatus(ctx context.Context, dir string) (domain.RepositoryStatus, error) {
	repo, err := discover(dir)
	if err != nil {
		return domain.RepositoryStatus{}, err
	}

	status := domain.RepositoryStatus{
		State: field[domain.RepositoryState](i, "state")(readState(repo)),
	}

	counts := field[worktreeCounts](i, "worktree")(countWorktree(repo))
	status.NewFiles = counts.newFiles
	status.IndexFiles = counts.indexFiles
	status.WorkingFiles = counts.workingFiles

	head, headErr := headHash(repo)
	if headErr == nil {
		status.Hash = head.String()
		status.Tag = field[string](i, "tag")(tagAt(repo, head))
	} else {
		i.degraded("head", headErr)
	}
	status.Branch = field[string](i, "branch")(branchName(repo))

	if status.Branch != "" && headErr == nil {
		upstream := field[plumbing.Hash](i, "upstream")(upstreamHash(repo, status.Branch))
		if !upstream.IsZero() {
			div := field[divergence](i, "divergence")(aheadBehind(ctx, repo, head, upstream))
			status.Ahead = div.ahead
			status.Behind = div.behind
		}
	}

	status.StashCount = field[int](i, "stash")(stashCount(repo))

	i.logger.Debug("repository status computed", map[string]interface{}{
		"dir":    dir,
		"branch": status.Branch,
		"hash":   status.Hash,
		"state":  status.State.String(),
	})
	return status, nil
}

func discover(dir string) (*gogit.Repository, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotARepository, dir)
		}
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrNotARepository, dir, err)
	}
	return repo, nil
}

func headHash(repo *gogit.Repository) (plumbing.Hash, error) {
	ref, err := repo.Head()
	if err != nil {
		return plumbing.ZeroHash, err
	}
	return ref.Hash(), nil
}

// branchName reads the symbolic HEAD, so an unborn branch still has a name
// and a detached HEAD yields "".
func branchName(repo *gogit.Repository) (string, error) {
	ref, err := repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return "", err
	}
	if ref.Type() != plumbing.SymbolicReference || !ref.Target().IsBranch() {
		return "", nil
	}
	return ref.Target().Short(), nil
}

// field wraps a lookup so that its failure is logged and collapses to the
// zero value of the status field it feeds.
func field[T any](i *Inspector, name string) func(T, error) T {
	return func(value T, err error) T {
		if err != nil {
			i.degraded(name, err)
			var zero T
			return zero
		}
		return value
	}
}

func (i *Inspector) degraded(field string, err error) {
	i.logger.Debug("repository lookup degraded", map[string]interface{}{
		"field": field,
		"error": err.Error(),
	})
}

var _ ports.RepositoryInspector = (*Inspector)(nil)
