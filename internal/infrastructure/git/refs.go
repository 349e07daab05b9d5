package git

import (
	"errors"
	"sort"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// tagAt returns the first tag name, in lexical order, whose target peels to
// commit. Lightweight and annotated tags are both considered.
func tagAt(repo *gogit.Repository, commit plumbing.Hash) (string, error) {
	iter, err := repo.Tags()
	if err != nil {
		return "", err
	}
	defer iter.Close()

	var names []string
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		target := ref.Hash()
		if tag, err := repo.TagObject(target); err == nil {
			if peeled, err := tag.Commit(); err == nil {
				target = peeled.Hash
			}
		}
		if target == commit {
			names = append(names, ref.Name().Short())
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", nil
	}
	sort.Strings(names)
	return names[0], nil
}

// upstreamHash resolves the tracking reference configured for branch.
// A branch without branch.<name>.remote and branch.<name>.merge has no
// upstream and yields the zero hash.
func upstreamHash(repo *gogit.Repository, branch string) (plumbing.Hash, error) {
	cfg, err := repo.Config()
	if err != nil {
		return plumbing.ZeroHash, err
	}
	tracking, ok := cfg.Branches[branch]
	if !ok || tracking.Remote == "" || tracking.Merge == "" {
		return plumbing.ZeroHash, nil
	}

	name := tracking.Merge
	if tracking.Remote != "." {
		name = plumbing.NewRemoteReferenceName(tracking.Remote, tracking.Merge.Short())
	}

	ref, err := repo.Reference(name, true)
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		// Configured but never fetched.
		return plumbing.ZeroHash, nil
	}
	if err != nil {
		return plumbing.ZeroHash, err
	}
	return ref.Hash(), nil
}
